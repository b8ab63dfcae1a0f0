package db

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetDB escolhe o banco conforme a configuração: sem DATABASE_URL os dados
// vivem apenas enquanto o processo estiver de pé.
func GetDB(databaseURL string, log *zap.Logger) (*gorm.DB, error) {
	if databaseURL == "" {
		log.Info("DATABASE_URL vazio, usando sqlite em memória")
		return ConnectMemoria(log)
	}
	return ConnectDataBase(databaseURL, log)
}
