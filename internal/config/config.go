package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Wishlist      Wishlist      `mapstructure:",squash"`
	CustomerStats CustomerStats `mapstructure:",squash"`
	WishlistProbe WishlistProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Wishlist configura a integração opcional com o serviço de lista de
// desejos. Quando Enabled é falso o serviço sobe com o integrador ausente e
// o dashboard exibe contagem zero.
type Wishlist struct {
	URL         string `mapstructure:"wishlist_url"`
	AccessToken string `mapstructure:"wishlist_access_token"`
	Enabled     bool   `mapstructure:"wishlist_enabled"`
}

// CustomerStats controla o registro das rotas do dashboard de estatísticas.
type CustomerStats struct {
	Enabled bool `mapstructure:"customer_stats_enabled"`
}

// WishlistProbe configura o agendador que verifica periodicamente a conexão
// com o serviço de lista de desejos.
type WishlistProbe struct {
	CronSchedule string `mapstructure:"wishlist_probe_cron"`
	Enabled      bool   `mapstructure:"wishlist_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/customerstats")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("WISHLIST_URL", "http://localhost:9000/api/v1")
	viper.SetDefault("WISHLIST_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("WISHLIST_ENABLED", false)

	// O dashboard de estatísticas fica habilitado por padrão, igual à opção
	// da página de configurações da loja.
	viper.SetDefault("CUSTOMER_STATS_ENABLED", true)

	viper.SetDefault("WISHLIST_PROBE_CRON", "0 */6 * * *")
	viper.SetDefault("WISHLIST_PROBE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
