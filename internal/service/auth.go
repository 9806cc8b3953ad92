package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository"
)

var (
	ErrUsernameExists     = repository.ErrUsernameExists
	ErrAccountNotFound    = repository.ErrAccountNotFound
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AccountRepository interface {
	CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error)
	CreateHospital(ctx context.Context, hospital domain.Hospital) (domain.Hospital, error)
	CreateHealthWorker(ctx context.Context, worker domain.HealthWorker) (domain.HealthWorker, error)
	FindByUsername(ctx context.Context, role domain.Role, username string) (domain.Identity, string, error)
	FindByID(ctx context.Context, role domain.Role, id uint) (domain.Identity, error)
	FindHospitalByID(ctx context.Context, id uint) (domain.Hospital, error)
	FindHealthWorkerByID(ctx context.Context, id uint) (domain.HealthWorker, error)
	FindHospitals(ctx context.Context) ([]domain.Hospital, error)
	FindHealthWorkersByHospitalID(ctx context.Context, hospitalID uint) ([]domain.HealthWorker, error)
}

type AuthService struct {
	repo AccountRepository
}

func NewAuthService(repo AccountRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) SignupParent(ctx context.Context, parent domain.Parent) (domain.Parent, error) {
	hashedPassword, err := hashPassword(parent.Password)
	if err != nil {
		return domain.Parent{}, err
	}
	parent.Password = hashedPassword

	created, err := s.repo.CreateParent(ctx, parent)
	if err != nil {
		return domain.Parent{}, fmt.Errorf("s.repo.CreateParent -> %w", err)
	}

	return created, nil
}

func (s *AuthService) SignupHospital(ctx context.Context, hospital domain.Hospital) (domain.Hospital, error) {
	hashedPassword, err := hashPassword(hospital.Password)
	if err != nil {
		return domain.Hospital{}, err
	}
	hospital.Password = hashedPassword

	created, err := s.repo.CreateHospital(ctx, hospital)
	if err != nil {
		return domain.Hospital{}, fmt.Errorf("s.repo.CreateHospital -> %w", err)
	}

	return created, nil
}

// Login fails with ErrInvalidCredentials for an unknown username and for a
// wrong password alike.
func (s *AuthService) Login(ctx context.Context, role domain.Role, username, password string) (domain.Identity, error) {
	identity, hash, err := s.repo.FindByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return identity, nil
}

// GetIdentity reloads the account a session was issued for.
func (s *AuthService) GetIdentity(ctx context.Context, session domain.Session) (domain.Identity, error) {
	identity, err := s.repo.FindByID(ctx, session.Role, session.ID)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return nil, ErrAccountNotFound
		}

		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return identity, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	return string(hash), nil
}
