package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/internal/api/handler"
	"github.com/contafy/bookkeeper-api/internal/api/handler/router"
	"github.com/contafy/bookkeeper-api/internal/config"
	"github.com/contafy/bookkeeper-api/internal/usecases/authenticating"
	"github.com/contafy/bookkeeper-api/internal/usecases/bracketing"
	"github.com/contafy/bookkeeper-api/internal/usecases/company"
	"github.com/contafy/bookkeeper-api/internal/usecases/filing"
	"github.com/contafy/bookkeeper-api/internal/usecases/invoicing"
	"github.com/contafy/bookkeeper-api/internal/usecases/registering"
	"github.com/contafy/bookkeeper-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	registrar registering.Registrar,
	companyService company.CompanyService,
	invoiceIssuer invoicing.Issuer,
	bracketScheduler bracketing.Scheduler,
	filer filing.Filer,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Members(registrar)...),
		router.WithRoutes(handler.Companies(companyService)...),
		router.WithRoutes(handler.InvoiceRecipients(registrar)...),
		router.WithRoutes(handler.Invoices(invoiceIssuer)...),
		router.WithRoutes(handler.Cnaes(registrar)...),
		router.WithRoutes(handler.SimpleNationalGroups(bracketScheduler)...),
		router.WithRoutes(handler.Das(filer)...),
	)

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
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
