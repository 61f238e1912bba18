package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/serproclient"
	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/api"
	"github.com/contafy/bookkeeper-api/internal/config"
	"github.com/contafy/bookkeeper-api/internal/usecases/authenticating"
	"github.com/contafy/bookkeeper-api/internal/usecases/bracketing"
	"github.com/contafy/bookkeeper-api/internal/usecases/company"
	"github.com/contafy/bookkeeper-api/internal/usecases/filing"
	"github.com/contafy/bookkeeper-api/internal/usecases/invoicing"
	"github.com/contafy/bookkeeper-api/internal/usecases/regimes"
	"github.com/contafy/bookkeeper-api/internal/usecases/registering"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	userRepo := repository.NewUserRepository(pgConn)
	memberRepo := repository.NewMemberRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	recipientRepo := repository.NewInvoiceRecipientRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	cnaeRepo := repository.NewCnaeRepository(pgConn)
	taxRegimeRepo := repository.NewTaxRegimeRepository(pgConn)
	groupRepo := repository.NewSimpleNationalGroupRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	registrar := registering.NewService(memberRepo, recipientRepo, cnaeRepo, userRepo)

	regimeLedger := regimes.NewService(taxRegimeRepo)
	companyService := company.NewService(companyRepo, memberRepo, regimeLedger)

	invoiceIssuer := invoicing.NewService(invoiceRepo, companyRepo, recipientRepo)
	bracketScheduler := bracketing.NewService(groupRepo)

	serproClient, err := serproclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o cliente do Integra Contador")
	}
	filer := filing.NewService(serproClient)

	server, err := api.New(
		cfg,
		authenticator,
		registrar,
		companyService,
		invoiceIssuer,
		bracketScheduler,
		filer,
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
