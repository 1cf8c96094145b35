// Package main boots the product catalog HTTP server.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fairyhunter13/product-catalog-api/internal/catalog"
	"github.com/fairyhunter13/product-catalog-api/internal/config"
	httpapi "github.com/fairyhunter13/product-catalog-api/internal/http"
	"github.com/fairyhunter13/product-catalog-api/internal/obs"
)

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		obs.Logger.WithError(err).Warn("dotenv_load_failed")
	}

	cfg, err := config.Load()
	if err != nil {
		obs.Logger.WithError(err).Fatal("config_invalid")
	}
	if err := obs.InitLogger(cfg.Environment(), cfg.LogLevel); err != nil {
		obs.Logger.WithError(err).Fatal("logger_init_failed")
	}
	obs.Logger.WithField("env", cfg.Environment()).Info("service_starting")

	srv, app, err := build(cfg)
	if err != nil {
		obs.Logger.WithError(err).Fatal("service_build_failed")
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		obs.Logger.WithError(errors.Wrapf(err, "listen on %s", cfg.HTTPAddr)).Fatal("http_listen_failed")
	}
	go func() {
		obs.Logger.WithField("addr", ln.Addr().String()).Debug("http_listen")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			obs.Logger.WithError(err).Error("http_server_error")
			os.Exit(1)
		}
	}()
	obs.Logger.Infof("Serveur démarré sur %s", cfg.PublicURL)
	obs.Logger.Infof("Documentation API disponible sur %s", cfg.DocsURL())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.WithField("signal", s.String()).Info("shutdown_signal")

	app.StartShutdown()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.WithError(err).Error("http_shutdown_error")
	}
	obs.Logger.Info("service_stopped")
}

func build(cfg config.Config) (*http.Server, *httpapi.App, error) {
	st, err := catalog.FromConfig(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build catalog")
	}
	obs.Logger.WithFields(logrus.Fields{
		"mode":     cfg.CatalogMode,
		"products": st.Len(),
	}).Info("catalog_ready")

	app, err := httpapi.NewApp(cfg, st, obs.NewMetrics("catalog"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "build http app")
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, app, nil
}
