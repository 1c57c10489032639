// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/biza/internal/domain"
	"github.com/dangerclosesec/biza/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables the repositories use
func AutoMigrate(db *gorm.DB) error {
	slog.Info("Migrating evaluation history schema")
	if err := db.AutoMigrate(&model.Evaluation{}); err != nil {
		return fmt.Errorf("auto-migrating evaluations: %w", err)
	}
	return nil
}

// translateError maps GORM's not-found error onto domain.ErrNotFound
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
