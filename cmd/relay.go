package cmd

import (
	"context"
	"fliprelay/internal/config"
	"fliprelay/internal/core"
	"fliprelay/internal/db"
	"fliprelay/internal/ethereum"
	"fliprelay/internal/http/handler"
	"fliprelay/internal/http/handler/middleware"
	"fliprelay/internal/http/server"
	"fliprelay/internal/metrics"
	"fliprelay/internal/repository"
	"fliprelay/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// dialChain opens the JSON-RPC connection; replaced in tests.
var dialChain = func(ctx context.Context, rawURL string) (ethereum.EthClient, error) {
	return ethereum.Dial(ctx, rawURL)
}

func Start() error {
	logger := log.NewZapLogger("fliprelay", zapcore.InfoLevel)
	defer logger.Sync()

	appConfig, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		return err
	}

	key, err := appConfig.SigningKey()
	if err != nil {
		logger.Errorw("failed to load signing key", "error", err)
		return err
	}

	ctx := context.Background()

	// fulfillment journal
	var repo core.Repository
	if appConfig.DBConnectionURL != "" {
		dbConn, err := db.NewPostgresDB(appConfig.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}
		defer dbConn.Close()

		journal := repository.NewFulfillmentRepository(dbConn)
		if err := journal.Migrate(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		repo = journal
	}

	client, err := dialChain(ctx, appConfig.RPCURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return err
	}
	defer client.Close()

	flipContract, err := ethereum.NewFlipContract(ctx, logger, client, ethereum.ContractConfig{
		Address:      appConfig.Contract(),
		Key:          key,
		PollInterval: appConfig.PollInterval,
		Streaming:    appConfig.Streaming(),
	})
	if err != nil {
		logger.Errorw("failed to bind contract", "error", err)
		return err
	}

	relay := core.NewRelay(logger, flipContract, repo)

	if err := relay.CheckBalance(ctx); err != nil {
		logger.Errorw("startup health check failed", "error", err)
		return err
	}

	var srv *server.HTTPServer
	if appConfig.APIPort != "" {
		srv = server.NewHTTP(logger, newRouter(logger, relay), appConfig.APIPort)
	}

	err = run(ctx, relay, srv)
	if err != nil {
		logger.Errorw("relay stopped with an error", "error", err)
	}
	return err
}

func newRouter(logger *zap.SugaredLogger, relay handler.RelayService) http.Handler {
	relayHlr := handler.NewRelayHandler(logger, relay)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.GetRelayStatus, relayHlr.HandleGetStatus)
	mux.HandleFunc(handler.GetFulfillments, relayHlr.HandleGetFulfillments)
	mux.Handle("GET /metrics", metrics.Handler())

	// middleware
	hdlr := metrics.InstrumentHandler(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return hdlr
}

// run blocks until a shutdown signal arrives, the listener terminates or
// the status API fails. A nil srv runs the relay alone.
func run(ctx context.Context, relay *core.Relay, srv *server.HTTPServer) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	relayErr := make(chan error, 1)
	go func() {
		relayErr <- relay.Run(ctx)
	}()

	var srvErr <-chan error
	if srv != nil {
		srvErr = srv.Run()
	}

	var err error
	select {
	case <-sig:
	case err = <-relayErr:
	case err = <-srvErr:
	}

	cancel()

	if srv != nil {
		if sdErr := srv.Shutdown(); sdErr != nil && err == nil {
			err = sdErr
		}
	}

	return err
}
