package database

import (
	"fmt"
	"strings"

	"cricket/config"
	"cricket/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the configured database, migrates the schema and stores the
// handle for GetDB.
func Init(cfg *config.Config, level zerolog.Level) error {
	db, err := Open(cfg.Database.Driver, cfg.Database.URL, GormLogLevel(level))
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	return nil
}

// Open connects to a postgres or sqlite database. SQLite connections always
// have foreign keys enabled so that player rows follow their team on delete.
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(ensureForeignKeysEnabledDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Team{}, &models.Player{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// GormLogLevel maps the application log level onto gorm's SQL logger.
func GormLogLevel(level zerolog.Level) logger.LogLevel {
	switch {
	case level <= zerolog.DebugLevel:
		return logger.Info
	case level <= zerolog.WarnLevel:
		return logger.Warn
	case level == zerolog.ErrorLevel:
		return logger.Error
	default:
		return logger.Silent
	}
}

func ensureForeignKeysEnabledDSN(dsn string) string {
	if strings.Contains(dsn, "_fk=") || strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_fk=1"
	}
	return dsn + "?_fk=1"
}

func GetDB() *gorm.DB {
	return DB
}
