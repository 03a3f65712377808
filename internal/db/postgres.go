package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/platform/envutil"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

// PostgresService owns the pooled gorm handle. It is constructed once at
// startup and injected into repos; nothing else opens connections.
type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	host := envutil.Str("PGHOST", "localhost")
	port := envutil.Str("PGPORT", "5432")
	user := envutil.Str("PGUSER", "postgres")
	password := envutil.Str("PGPASSWORD", "")
	name := envutil.Str("PGDATABASE", "gratitude")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

	serviceLog.Info("Connecting to Postgres...", "host", host, "database", name)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&domain.Entry{},
		&domain.Mood{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
