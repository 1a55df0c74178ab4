package db

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reverse-logistics/internal/config"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

// SeedAdmin creates the first admin from ADMIN_EMAIL/ADMIN_PASSWORD when no
// user with that email exists yet. The dashboard has no self-registration.
func SeedAdmin(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("admin user seeded", zap.String("email", email))
	return nil
}
