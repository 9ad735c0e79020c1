// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"house-price-api/internal/artifacts"
	"house-price-api/internal/common/config"
	"house-price-api/internal/common/logger"
	"house-price-api/internal/common/observability"
	"house-price-api/internal/pipeline/validate"
	"house-price-api/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "house-price-api",
	Short: "House price prediction API",
	Long:  "Serves point-in-time price predictions for residential properties from a pre-trained regression model.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the prediction server",
	Run:   runServe,
}

func init() {
	serveCmd.Flags().String("address", "", "listen address (overrides config)")
	viper.BindPFlags(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	if addr := viper.GetString("address"); addr != "" {
		cfg.Server.Address = addr
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// Artifacts are loaded once; a malformed deployment fails fast here
	// rather than per-request.
	predictor, err := artifacts.Load(cfg.Artifacts)
	if err != nil {
		zapLog.Fatal("artifact load failed", zap.Error(err))
	}
	zapLog.Info("artifacts loaded",
		zap.String("model", cfg.Artifacts.ModelPath),
		zap.String("scaler", cfg.Artifacts.ScalerPath),
		zap.String("modelVersion", predictor.ModelVersion()),
	)

	validator, err := validate.New()
	if err != nil {
		zapLog.Fatal("schema compile failed", zap.Error(err))
	}

	srv := server.NewHTTPServer(cfg.Server, validator, predictor, log, obs)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		zapLog.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("server failed", zap.Error(err))
			signalCh <- os.Interrupt
		}
	}()

	sig := <-signalCh
	zapLog.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}
}
