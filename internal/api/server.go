package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bronzebyte/customer-stats-api/internal/api/handler"
	"github.com/bronzebyte/customer-stats-api/internal/api/handler/router"
	"github.com/bronzebyte/customer-stats-api/internal/config"
	"github.com/bronzebyte/customer-stats-api/internal/scheduler"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/authenticating"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/configuring"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/exporting"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/reporting"
	"github.com/bronzebyte/customer-stats-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportService reporting.Reporter,
	exportService exporting.Exporter,
	settingsService configuring.SettingsService,
	authenticator authenticating.Authenticator,
	wishlistProbeService *scheduler.WishlistProbeService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		WishlistProbeService: wishlistProbeService,
	}

	opts := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Settings(settingsService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}

	// As rotas do dashboard só existem quando a funcionalidade está
	// habilitada na configuração. Com a flag desligada o servidor sobe
	// apenas com autenticação e administração.
	if config.CustomerStats.Enabled {
		opts = append(opts, router.WithRoutes(
			handler.CustomerStats(reportService, exportService, settingsService)...,
		))
	} else {
		logrus.Info("Estatísticas de clientes desabilitadas, rotas do dashboard não registradas")
	}

	rt := router.New(opts...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
