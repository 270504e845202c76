package database

import (
	"gorm.io/gorm"
)

func InitCanvasDatabase(dbConfig *DatabaseConfig) (*gorm.DB, error) {
	return NewConnection(dbConfig)
}
