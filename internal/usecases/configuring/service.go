package configuring

import (
	"github.com/bronzebyte/customer-stats-api/infrastructure/repository"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
)

// SettingsService expõe as configurações da loja para os handlers. O toggle
// do dashboard é consultado a cada requisição para que a mudança feita pelo
// administrador valha sem reiniciar o serviço.
type SettingsService interface {
	GetSettings() (*domain.StoreSettings, error)
	UpdateSettings(req *domain.UpdateStoreSettingsRequest) (*domain.StoreSettings, error)
	// CustomerStatsEnabled informa se o dashboard está habilitado. Falha de
	// leitura degrada para habilitado, o padrão da loja.
	CustomerStatsEnabled() bool
}

type Service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) SettingsService {
	return &Service{
		settingsRepo: settingsRepo,
	}
}

func (s *Service) GetSettings() (*domain.StoreSettings, error) {
	return s.settingsRepo.Get()
}

func (s *Service) UpdateSettings(req *domain.UpdateStoreSettingsRequest) (*domain.StoreSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	if req.CustomerStatsEnabled != nil {
		settings.CustomerStatsEnabled = *req.CustomerStatsEnabled
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Service) CustomerStatsEnabled() bool {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		log.L.WithError(err).Warn("settings: erro ao ler configurações, assumindo dashboard habilitado")
		return true
	}

	return settings.CustomerStatsEnabled
}
