package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txmerge/internal/address"
	"txmerge/internal/bignum"
	"txmerge/internal/config"
	"txmerge/internal/core"
	"txmerge/internal/db"
	"txmerge/internal/ethereum"
	"txmerge/internal/events"
	"txmerge/internal/hexnum"
	"txmerge/internal/http/handler"
	"txmerge/internal/http/handler/middleware"
	"txmerge/internal/http/payload"
	"txmerge/internal/http/server"
	"txmerge/internal/pending"
	"txmerge/internal/repository"
	"txmerge/internal/telemetry"
	"txmerge/pkg/jwt"
	"txmerge/pkg/log"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "txmerge"

func Start() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer logger.Sync() //nolint:errcheck

	shutdownTracing, err := telemetry.InitTracer(context.Background(), serviceName, config.OtelEndpoint)
	if err != nil {
		// tracing is optional; keep serving with the no-op provider
		logger.Warnw("failed to initialize tracing", "error", err, "endpoint", config.OtelEndpoint)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnw("failed to flush traces", "error", err)
		}
	}()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTransactionRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	store, closeCache, err := newTransactionStore(logger, repo, config)
	if err != nil {
		logger.Errorw("failed to connect to cache", "error", err, "addr", config.RedisAddr)
		return err
	}
	defer closeCache()

	publisher, closePublisher, err := newPublisher(config)
	if err != nil {
		logger.Errorw("failed to create event producer", "error", err)
		return err
	}
	defer closePublisher()

	client, err := rpc.DialContext(context.Background(), config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err, "url", config.NodeURL)
		return err
	}
	defer client.Close()

	nodeService := ethereum.NewNodeService(client)

	// parsing pipeline
	codec, err := bignum.NewCodec(config.NumericBackend)
	if err != nil {
		logger.Errorw("failed to select numeric backend", "error", err, "backend", config.NumericBackend)
		return err
	}
	parser := pending.NewParser(hexnum.NewNormalizer(codec))

	updater := core.NewUpdater(logger, store, nodeService, parser, publisher)

	// handler
	txHlr := handler.NewTransactionHandler(
		logger,
		payload.Decoder{},
		updater,
		address.NewRule().Error(config.AddressErrorMessage),
		core.Coin{
			Index:  config.CoinIndex,
			Symbol: config.CoinSymbol,
			Name:   config.CoinName,
		})

	// middleware
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))
	auth := middleware.NewAuthMiddleware(logger, jwtService)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewTracingMiddleware().Tracing(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.Handle(handler.PostPending, auth.Authenticate(http.HandlerFunc(txHlr.HandlePostPending)))
	mux.Handle(handler.RefreshTransaction, auth.Authenticate(http.HandlerFunc(txHlr.HandleRefreshTransaction)))
	mux.Handle(handler.RefreshTransactions, auth.Authenticate(http.HandlerFunc(txHlr.HandleRefreshTransactions)))
	mux.HandleFunc(handler.GetTransaction, txHlr.HandleGetTransaction)
	mux.HandleFunc(handler.ValidateAddress, txHlr.HandleValidateAddress)
	mux.Handle("GET /metrics", promhttp.Handler())

	logger.Infow("starting service",
		"port", config.Port,
		"numeric_backend", config.NumericBackend,
		"coin", config.CoinSymbol,
		"cache", config.RedisAddr != "",
		"events", len(config.KafkaBrokers) > 0)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// newTransactionStore puts the redis cache in front of repo when an address
// is configured.
func newTransactionStore(logger *zap.SugaredLogger, repo *repository.TransactionRepository, cfg config.App) (core.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		return repo, func() {}, nil
	}

	cache, err := db.NewRedisCache(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	closeCache := func() {
		if err := cache.Close(); err != nil {
			logger.Warnw("failed to close cache", "error", err)
		}
	}
	return repository.NewCachedRepository(logger, repo, cache, cfg.CacheTTL), closeCache, nil
}

func newPublisher(cfg config.App) (core.Publisher, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		return core.NopPublisher{}, func() {}, nil
	}

	producer, err := events.NewProducer(events.ProducerConfig{
		Brokers:     cfg.KafkaBrokers,
		TopicPrefix: cfg.KafkaTopicPrefix,
	})
	if err != nil {
		return nil, nil, err
	}
	return producer, func() { _ = producer.Close() }, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
