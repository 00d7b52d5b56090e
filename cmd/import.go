package cmd

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/pkg/catalog"
	"droscher.com/MovieCatalog/pkg/loader"
	"droscher.com/MovieCatalog/pkg/repository"
)

type ImportCmd struct {
	ConfigFile string `default:".MovieCatalog.toml" help:"Path to config file" short:"c"`
	File       string `arg:"" help:"JSON file with the movies to import" type:"existingfile"`
	User       string `help:"Email of the user recorded as creator" short:"u"`
	Force      bool   `help:"Import entries even when a movie with the same title exists"`
}

func (i *ImportCmd) Run(cliContext *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !cliContext.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	entries, err := loader.ReadFile(i.File)
	if err != nil {
		logger.Error("error reading import file", zap.String("file", i.File), zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var createdBy *uint

	if i.User != "" {
		user, err := repo.GetUserFromEmail(ctx, i.User)
		if err != nil {
			logger.Error("error finding user", zap.String("email", i.User), zap.Error(err))

			return err
		}

		createdBy = &user.ID
	}

	c, err := catalog.New(catalog.Repositories{Movies: repo, Picks: repo, Reviews: repo, Favorites: repo}, conf.Catalog, logger)
	if err != nil {
		logger.Error("error building catalog", zap.Error(err))

		return err
	}

	movieLoader := loader.New(c.Movies, c.Picks, logger)
	movieLoader.SkipExisting = !i.Force

	report := movieLoader.Load(ctx, entries, createdBy)
	for _, err := range report.Errors() {
		logger.Warn("entry not imported", zap.Error(err))
	}

	return nil
}
