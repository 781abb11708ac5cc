package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist"
	"github.com/bronzebyte/customer-stats-api/internal/config"
)

// WishlistProbeConfig representa a configuração do agendador de verificação
// do serviço de wishlist.
type WishlistProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// WishlistProbeService verifica periodicamente a conexão com o serviço de
// wishlist. O resultado fica disponível para o endpoint de status e o
// dashboard segue degradando para zero enquanto o serviço estiver fora.
type WishlistProbeService struct {
	scheduler       *gocron.Scheduler
	config          WishlistProbeConfig
	wishlistService wishlist.WishlistIntegrator

	probeMutex       sync.Mutex
	probeRunning     bool
	available        bool
	lastProbeStarted time.Time
	lastProbeDone    time.Time
}

// NewWishlistProbeService cria uma nova instância do serviço de verificação
func NewWishlistProbeService(
	wishlistService wishlist.WishlistIntegrator,
	appConfig *config.Config,
) *WishlistProbeService {
	probeConfig := WishlistProbeConfig{
		CronSchedule: appConfig.WishlistProbe.CronSchedule,
		Enabled:      appConfig.WishlistProbe.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração do agendador de verificação de wishlist carregada")

	return &WishlistProbeService{
		scheduler:       scheduler,
		config:          probeConfig,
		wishlistService: wishlistService,
	}
}

// Start inicia o agendador
func (s *WishlistProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação periódica de wishlist desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação de wishlist")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de wishlist: %w", err)
	}

	s.scheduler.StartAsync()

	// Primeira verificação logo na subida, sem esperar o cron
	go s.probe()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação de wishlist")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualProbe dispara uma verificação fora do agendamento
func (s *WishlistProbeService) TriggerManualProbe() {
	go s.probe()
}

// Available informa se a última verificação encontrou o serviço no ar
func (s *WishlistProbeService) Available() bool {
	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()
	return s.available
}

// Status retorna os dados exibidos no endpoint de status das crons
func (s *WishlistProbeService) Status() map[string]any {
	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.probeRunning,
		"available":         s.available,
		"last_probe_start":  s.lastProbeStarted,
		"last_probe_finish": s.lastProbeDone,
	}
}

func (s *WishlistProbeService) probe() {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Verificação de wishlist já em andamento, ignorando")
		return
	}
	s.probeRunning = true
	s.lastProbeStarted = time.Now()
	s.probeMutex.Unlock()

	ok, err := s.wishlistService.CheckConnection()

	s.probeMutex.Lock()
	s.probeRunning = false
	s.available = ok
	s.lastProbeDone = time.Now()
	s.probeMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Warn("Serviço de wishlist indisponível, dashboard seguirá com contagem zero")
		return
	}

	logrus.WithField("available", ok).Info("Verificação de wishlist concluída")
}
