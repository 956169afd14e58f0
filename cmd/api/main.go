package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/database/postgres"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/api"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/scheduler"
	"github.com/alikitto/ad-dash/internal/usecases/adsetting"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
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
	spendRepo := repository.NewAdsetSpendRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	// Serviço de conjuntos com cache local de gastos diários
	adsetService := adsetting.NewService(cfg, metaIntegrator).WithSpendCache(spendRepo)

	spendSyncService := scheduler.NewSpendSyncService(spendRepo, adsetService, cfg)
	if err := spendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de gastos diários")
	} else {
		logrus.Info("Agendador de sincronização de gastos diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		adsetService,
		authenticator,
		spendSyncService,
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

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
