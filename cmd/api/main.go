package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/bronzebyte/customer-stats-api/infrastructure/database/postgres"
	"github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist"
	"github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist/wishlistclient"
	"github.com/bronzebyte/customer-stats-api/infrastructure/repository"
	"github.com/bronzebyte/customer-stats-api/internal/api"
	"github.com/bronzebyte/customer-stats-api/internal/config"
	"github.com/bronzebyte/customer-stats-api/internal/scheduler"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/authenticating"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/configuring"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/exporting"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)

	authenticator := authenticating.NewService(customerRepo, cfg)

	// O serviço de wishlist é um colaborador opcional: quando desabilitado
	// na configuração, o dashboard reporta contagem zero.
	var wishlistIntegrator wishlist.WishlistIntegrator
	if cfg.Wishlist.Enabled {
		wishlistClient := wishlistclient.NewClient(cfg)
		wishlistIntegrator = wishlist.New(cfg, wishlistClient)
	} else {
		logrus.Info("Integração de wishlist desabilitada, usando contagem zero")
		wishlistIntegrator = wishlist.NewAbsent()
	}

	reportService := reporting.NewService(cfg, orderRepo, productRepo, wishlistIntegrator)
	exportService := exporting.NewService(orderRepo)
	settingsService := configuring.NewService(settingsRepo)

	wishlistProbeService := scheduler.NewWishlistProbeService(wishlistIntegrator, cfg)

	if err := wishlistProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de wishlist")
	} else {
		logrus.Info("Agendador de verificação de wishlist iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		exportService,
		settingsService,
		authenticator,
		wishlistProbeService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
