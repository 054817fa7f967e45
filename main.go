package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-site/pkg/config"
	"clinic-site/pkg/handlers"
	"clinic-site/pkg/locales"
	"clinic-site/pkg/logger"
	"clinic-site/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.Init()

	log, err := logger.New(config.Env)
	if err != nil {
		panic(err)
	}

	if config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := exitCode(log, run(ctx, log))
	stop()
	os.Exit(code)
}

// exitCode logs a failed run and flushes the logger before the process exits.
func exitCode(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = log.Sync()
	return code
}

func run(ctx context.Context, log *zap.Logger) error {
	provider, err := services.NewProvider(locales.FS, config.DefaultLanguage)
	if err != nil {
		return err
	}

	site, err := services.LoadSiteConfig(config.SiteConfigPath)
	if err != nil {
		return err
	}
	if u := config.GetAppURL(); u != "" {
		site.BaseURL = u
	}

	// Left as a nil interface when the CMS is not configured.
	var cms services.PostSource
	if config.SanityEnabled() {
		client, err := services.NewSanityClient(ctx, services.SanityConfig{
			ProjectID:  config.SanityProjectID,
			Dataset:    config.SanityDataset,
			APIVersion: config.SanityAPIVersion,
			UseCDN:     config.SanityUseCDN,
			Token:      config.SanityToken,
			Timeout:    config.CMSTimeout,
		})
		if err != nil {
			return err
		}
		cms = client
		log.Info("content source enabled",
			zap.String("project", config.SanityProjectID),
			zap.String("dataset", config.SanityDataset))
	}

	blog := services.NewBlogService(cms, services.GetPostsCache, log, config.PrimaryPosts)
	h := handlers.NewHandler(provider, blog, site, handlers.Contact{
		WhatsAppNumber: config.WhatsAppNumber,
		PhoneNumber:    config.PhoneNumber,
		Email:          config.ContactEmail,
	}, config.BlogImageDir, log)

	router, err := handlers.NewRouter(h, config.SessionSecret, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go reloadOnHangup(ctx, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", config.ListenAddr), zap.String("default_language", string(provider.Default())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// reloadOnHangup drops the bundled post cache on SIGHUP so edited content is
// picked up without a restart.
func reloadOnHangup(ctx context.Context, log *zap.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			services.InvalidateCache()
			log.Info("bundled posts cache cleared")
		}
	}
}
