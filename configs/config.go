package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Integrations struct {
	Movie []string `default:"imdb_web"`
}

// Catalog holds the limits applied by the catalog components.
type Catalog struct {
	DefaultPageSize int     `default:"100"`
	MaxPageSize     int     `default:"500"`
	MinSearchLength int     `default:"2"`
	MinScore        float64 `default:"0"`
	MaxScore        float64 `default:"10"`
	MinYear         int     `default:"1890"`
	MaxYearsAhead   int     `default:"5"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
	Catalog      Catalog
}

type Auth struct {
	SecretKey string `validate:"required"`
	Audience  string
	Domain    string
}

const envPrefix = "MOVIECATALOG" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.Catalog.check(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Catalog) check() error {
	if c.DefaultPageSize <= 0 || c.MaxPageSize <= 0 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("%w: page sizes must be positive and default <= max (default %d, max %d)",
			ErrConfiguration, c.DefaultPageSize, c.MaxPageSize)
	}

	if c.MinScore >= c.MaxScore {
		return fmt.Errorf("%w: score bounds [%v, %v] are empty", ErrConfiguration, c.MinScore, c.MaxScore)
	}

	return nil
}
