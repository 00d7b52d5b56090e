package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/pkg/auth"
	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/integrations"
	"droscher.com/MovieCatalog/pkg/loader"
	"droscher.com/MovieCatalog/pkg/repository"
	"droscher.com/MovieCatalog/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".MovieCatalog.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliContext *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliContext.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	c, err := catalog.New(catalog.Repositories{Movies: repo, Picks: repo, Reviews: repo, Favorites: repo}, conf.Catalog, logger)
	if err != nil {
		logger.Error("error building catalog", zap.Error(err))

		return err
	}

	movieIntegrations := integrations.GetIntegrations(conf.Integrations.Movie, logger)

	authManager := auth.NewAuthManager(conf, repo, logger)
	interceptors := connect.WithInterceptors(authManager.AuthInterceptor())

	mux := server.Routes(server.Services{
		Movies:    server.NewMovieServer(c, loader.New(c.Movies, c.Picks, logger), movieIntegrations, logger),
		Picks:     server.NewPickServer(c.Picks, logger),
		Reviews:   server.NewReviewServer(c.Reviews, logger),
		Favorites: server.NewFavoriteServer(c.Favorites, logger),
		Users:     server.NewUserServer(repo, repo, logger),
	}, interceptors)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("serving movie catalog", zap.String("address", address), zap.Strings("services", server.ServiceNames))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(mux)
}
