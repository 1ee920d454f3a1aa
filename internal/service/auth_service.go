package service

import (
	"context"
	"time"

	"finlearn_backend/internal/config"
	"finlearn_backend/internal/model"
	"finlearn_backend/internal/progress"
	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Records  *repository.RecordRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, records *repository.RecordRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Records:  records,
		Cfg:      cfg,
	}
}

// Register creates the user row and seeds the profile and progress
// records in the KV store so the first profile fetch never misses.
func (s *AuthService) Register(ctx context.Context, user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := model.ProfileRecord{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   now,
		LastActive:  now,
	}
	if err := s.Records.SaveProfile(ctx, user.ID, profile); err != nil {
		return err
	}
	return s.Records.SaveProgress(ctx, user.ID, progress.NewRecord())
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
