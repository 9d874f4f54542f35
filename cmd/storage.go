package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"drones/internal/adapters/out/memory"
	"drones/internal/adapters/out/postgres"
	"drones/internal/core/ports"
	"drones/internal/seed"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// Storage is the opened persistence backend.
type Storage struct {
	UoWFactory ports.UnitOfWorkFactory
	db         *gorm.DB
}

// OpenStorage connects the backend named by config.Storage. The in-memory
// backend starts empty.
func OpenStorage(config Config) (*Storage, error) {
	switch config.Storage {
	case StorageMemory:
		return &Storage{UoWFactory: memory.NewUnitOfWorkFactory(memory.NewStore())}, nil
	case StoragePostgres:
		db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Storage{UoWFactory: postgres.NewGormUnitOfWorkFactory(db), db: db}, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}
}

// Migrate creates or updates the schema. It is a no-op for memory storage.
func (s *Storage) Migrate() error {
	if s.db == nil {
		return nil
	}
	return postgres.Migrate(s.db)
}

// Seed loads the default fleet and medication catalog.
func (s *Storage) Seed(ctx context.Context, logger *slog.Logger) error {
	return seed.Apply(ctx, s.UoWFactory, seed.Default(), logger)
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
