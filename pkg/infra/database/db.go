package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain/advertisement"
	"github.com/caraudioevents/platform/pkg/domain/auditlog"
	"github.com/caraudioevents/platform/pkg/domain/directory"
	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
	"github.com/caraudioevents/platform/pkg/domain/event"
	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/domain/payment"
	"github.com/caraudioevents/platform/pkg/domain/ratelimit"
	"github.com/caraudioevents/platform/pkg/domain/registration"
	"github.com/caraudioevents/platform/pkg/domain/supportticket"
	"github.com/caraudioevents/platform/pkg/domain/team"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

// DB represents the database connection
type DB struct {
	logger *logrus.Logger
	*gorm.DB
}

// Config holds database configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewDB creates a new database connection
func NewDB(logger *logrus.Logger, cfg *Config) (*DB, error) {
	logger.WithFields(logrus.Fields{
		"host":    cfg.Host,
		"port":    cfg.Port,
		"db":      cfg.DBName,
		"user":    cfg.User,
		"sslmode": cfg.SSLMode,
	}).Info("connecting to database")

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := &DB{logger: logger, DB: gormDB}

	logger.Info("applying database migrations")
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	return db.DB.AutoMigrate(
		&user.User{},
		&navigation.Item{},
		&event.Event{},
		&registration.Registration{},
		&payment.Payment{},
		&team.Team{},
		&team.Membership{},
		&directory.Listing{},
		&emailtemplate.Template{},
		&advertisement.Advertisement{},
		&supportticket.Ticket{},
		&auditlog.Entry{},
		&ratelimit.Window{},
	)
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
