package database

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the score and user-state database. database.driver selects
// postgres (default) or sqlite, the latter using database.path.
func New(config *viper.Viper, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if log != nil && log.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if dialector.Name() == "sqlite" {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func dialectorFor(config *viper.Viper) (gorm.Dialector, error) {
	switch strings.ToLower(config.GetString("database.driver")) {
	case "sqlite":
		path := config.GetString("database.path")
		if path == "" {
			path = "words7000.db"
		}
		return sqlite.Open(path), nil
	case "postgres", "":
		return postgres.Open(postgresDSN(config)), nil
	default:
		return nil, fmt.Errorf("unsupported database.driver %q", config.GetString("database.driver"))
	}
}

func postgresDSN(config *viper.Viper) string {
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.GetString("database.host"),
		config.GetString("database.username"),
		config.GetString("database.password"),
		config.GetString("database.dbname"),
		config.GetInt("database.port"),
		sslmode,
		timezone,
	)
}
