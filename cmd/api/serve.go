package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joefazee/holidays/app"
	"github.com/joefazee/holidays/app/api"
	"github.com/joefazee/holidays/app/calendar"
	"github.com/joefazee/holidays/app/countries"
	"github.com/joefazee/holidays/app/database"
	apiDoc "github.com/joefazee/holidays/app/doc"
	"github.com/joefazee/holidays/app/user"
	_ "github.com/joefazee/holidays/docs"
	"github.com/joefazee/holidays/internal/cache"
	"github.com/joefazee/holidays/internal/deps"
	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/internal/router"
	"github.com/joefazee/holidays/internal/sanitizer"
	"github.com/joefazee/holidays/internal/security"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *app.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, closeFn, err := buildContainer(cfg, log)
	if err != nil {
		log.Error(err, map[string]interface{}{"stage": "bootstrap"})
		return err
	}
	defer closeFn()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, container),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down server", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

var openDB = database.New

// buildContainer opens every shared resource. The returned func releases them.
func buildContainer(cfg *app.Config, log logger.Logger) (*deps.Container, func(), error) {
	if err := cfg.User.Validate(); err != nil {
		return nil, nil, err
	}

	db, err := openDB(&cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	tokenMaker, err := security.NewMaker(cfg.User.TokenType, cfg.User.SymmetricKey)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	userCache, err := cache.New[bool](cfg.Cache.Options())
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	c := deps.NewContainer()
	c.DB = db
	c.Logger = log
	c.TokenMaker = tokenMaker
	c.TokenTTL = cfg.User.TTL()
	c.Sanitizer = sanitizer.NewHTMLStripper()
	c.Cache = userCache
	c.Nager = provider.NewNagerClient(cfg.Providers.Nager())
	c.CountriesNow = provider.NewCountriesNowClient(cfg.Providers.CountriesNow())

	user.InitRepositories(c)

	closeFn := func() {
		switch cc := userCache.(type) {
		case interface{ Stop() }:
			cc.Stop()
		case io.Closer:
			if err := cc.Close(); err != nil {
				log.Error(err, map[string]interface{}{"stage": "close cache"})
			}
		}
		closeDB()
	}
	return c, closeFn, nil
}

func newRouter(cfg *app.Config, c *deps.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware(), api.RequestLogger(c.Logger))

	mounter := router.NewMounter(c, "/api/v1")

	mounter.Public(r).Mount(
		func(rg *gin.RouterGroup, _ *deps.Container) {
			rg.GET("/healthz", api.HealthCheck(cfg.Env, cfg.Version))
		},
		countries.Mount,
		user.MountPublic,
	)

	mounter.Authenticated(r, user.Authenticate(c)).Mount(
		user.MountAuthenticated,
		calendar.Mount,
	)

	apiDoc.Init(r, cfg.Env)
	return r
}
