package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/models"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Validation("email already registered")
		}
		return apperr.Persistence(err)
	}
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
