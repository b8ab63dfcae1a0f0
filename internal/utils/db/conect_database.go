package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/logger"
)

// ConnectDataBase abre o PostgreSQL apontado pelo DSN.
func ConnectDataBase(dsn string, log *zap.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("conectar postgres: %w", err)
	}
	return database, nil
}

// ConnectMemoria abre um SQLite em memória. O pool fica limitado a uma conexão
// porque cada conexão ":memory:" enxerga um banco diferente.
func ConnectMemoria(log *zap.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite em memória: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return database, nil
}
