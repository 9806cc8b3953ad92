package service

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

type HospitalService struct {
	repo AccountRepository
}

func NewHospitalService(repo AccountRepository) *HospitalService {
	return &HospitalService{
		repo: repo,
	}
}

func (s *HospitalService) AddHealthWorker(ctx context.Context, hospitalID uint, worker domain.HealthWorker) (domain.HealthWorker, error) {
	hashedPassword, err := hashPassword(worker.Password)
	if err != nil {
		return domain.HealthWorker{}, err
	}
	worker.Password = hashedPassword
	worker.HospitalID = hospitalID

	created, err := s.repo.CreateHealthWorker(ctx, worker)
	if err != nil {
		return domain.HealthWorker{}, fmt.Errorf("s.repo.CreateHealthWorker -> %w", err)
	}

	return created, nil
}

func (s *HospitalService) ListHealthWorkers(ctx context.Context, hospitalID uint) ([]domain.HealthWorker, error) {
	workers, err := s.repo.FindHealthWorkersByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindHealthWorkersByHospitalID -> %w", err)
	}

	return workers, nil
}
