package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogql/internal/config"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
)

// Connect открывает соединение с PostgreSQL по переданной конфигурации.
// Соединение передается в конструкторы хранилищ, глобальной переменной нет.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		cfg.SSLMode,
	)

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return db, nil
}

// Migrate приводит схему БД к актуальным моделям.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
