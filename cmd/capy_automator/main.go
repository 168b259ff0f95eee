package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capy_automator/internal/app/catalog"
	"capy_automator/internal/app/port"
	"capy_automator/internal/app/service"
	"capy_automator/internal/infrastructure/catalogloader"
	"capy_automator/internal/infrastructure/configloader"
	"capy_automator/internal/infrastructure/faucet"
	suiclient "capy_automator/internal/infrastructure/network/client"
	networkdefinition "capy_automator/internal/infrastructure/network/definition"
	"capy_automator/internal/infrastructure/restapi"
	"capy_automator/internal/infrastructure/resultstore"
	"capy_automator/internal/infrastructure/walletloader"
	"capy_automator/internal/pkg/logger"
	"capy_automator/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultConfigPath = "config/config.yml"

func main() {
	// Временный логгер нужен только до загрузки конфига
	tempZapLogger, errTempLog := zap.NewDevelopment()
	if errTempLog != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to initialize temporary zapLogger: %v\n", errTempLog)
		os.Exit(1)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := configloader.Load(configPath)
	if err != nil {
		tempZapLogger.Fatal("Failed to load configuration", zap.String("path", configPath), zap.Error(err))
	}

	zapLogger, err := logger.NewZap(cfg.Logging.Level)
	if err != nil {
		tempZapLogger.Fatal("Failed to initialize zapLogger", zap.Error(err))
	}
	defer zapLogger.Sync() //nolint:errcheck // best effort on exit
	logger.InitZap(zapLogger, cfg.Logging.Level)

	appLogger := logger.NewSlogAdapter()
	logger.Debug("Debug logging enabled")

	wallets, err := walletloader.NewWalletFileLoader(cfg.Files.Wallets, appLogger.Info).GetWallets()
	if err != nil {
		logger.Fatal("Failed to load wallets", "path", cfg.Files.Wallets, "error", err)
	}

	netDef, err := networkdefinition.Resolve(cfg.Network, appLogger)
	if err != nil {
		logger.Fatal("Failed to resolve network", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)

	chain, err := suiclient.NewSuiClient(ctx, netDef, cfg, zapLogger, recorder)
	if err != nil {
		logger.Fatal("Failed to create Sui client", "network", netDef.Name, "error", err)
	}
	defer chain.Close()
	logger.Info("Sui client ready", "network", netDef.Name, "rpc", netDef.RPCURL)

	var gasFaucet port.FaucetClient
	if cfg.Faucet.Enabled {
		gasFaucet = faucet.NewFaucetClient(netDef.FaucetURL,
			time.Duration(cfg.Faucet.RequestTimeoutMillis)*time.Millisecond, zapLogger)
	}

	store := resultstore.NewMemoryStore()
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())) //nolint:gosec // not security sensitive

	assetCatalog := catalog.New()
	if cfg.Files.Accessories != "" {
		items, err := catalogloader.NewAccessoryFileLoader(cfg.Files.Accessories, appLogger.Info, appLogger.Warn).LoadAccessories()
		if err != nil {
			logger.Fatal("Failed to load accessories", "path", cfg.Files.Accessories, "error", err)
		}
		assetCatalog = catalog.NewWithAccessories(items)
	}

	pipeline := service.NewLifecyclePipeline(chain, assetCatalog, rng, appLogger, cfg, recorder)
	runner := service.NewWalletRunner(chain, pipeline, gasFaucet, store, netDef, appLogger, cfg, recorder)

	runCtx, finish := context.WithCancel(ctx)
	defer finish()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer finish()
		runner.Run(gctx, wallets)
		return nil
	})

	if cfg.Server.Enabled {
		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:           restapi.SetupRouter(restapi.NewResultsHandler(store), promhttp.Handler()),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("Starting status server", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Status server failed", "error", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Status server shutdown failed", "error", err)
			}
			return nil
		})
	}

	_ = g.Wait()
	logger.Info("All wallets processed")
}
