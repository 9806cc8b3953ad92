package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
)

var (
	ErrUsernameExists   = dao.ErrUsernameExists
	ErrAccountNotFound  = dao.ErrAccountNotFound
	ErrHospitalNotFound = dao.ErrHospitalNotFound
)

type AccountDAO interface {
	InsertParent(ctx context.Context, parent dao.Parent) (dao.Parent, error)
	InsertHospital(ctx context.Context, hospital dao.Hospital) (dao.Hospital, error)
	InsertHealthWorker(ctx context.Context, worker dao.HealthWorker) (dao.HealthWorker, error)
	FindParentByUsername(ctx context.Context, username string) (dao.Parent, error)
	FindHospitalByUsername(ctx context.Context, username string) (dao.Hospital, error)
	FindHealthWorkerByUsername(ctx context.Context, username string) (dao.HealthWorker, error)
	FindParentByID(ctx context.Context, id uint) (dao.Parent, error)
	FindHospitalByID(ctx context.Context, id uint) (dao.Hospital, error)
	FindHealthWorkerByID(ctx context.Context, id uint) (dao.HealthWorker, error)
	FindHospitals(ctx context.Context) ([]dao.Hospital, error)
	FindHealthWorkersByHospitalID(ctx context.Context, hospitalID uint) ([]dao.HealthWorker, error)
}

type AccountRepository struct {
	dao AccountDAO
}

func NewAccountRepository(dao AccountDAO) *AccountRepository {
	return &AccountRepository{
		dao: dao,
	}
}

func (r *AccountRepository) CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error) {
	created, err := r.dao.InsertParent(ctx, dao.Parent{
		Username: parent.Username,
		Password: parent.Password,
		Name:     parent.Name,
		Contact:  parent.Contact,
	})
	if err != nil {
		return domain.Parent{}, fmt.Errorf("r.dao.InsertParent -> %w", err)
	}

	return parentDaoToDomain(created), nil
}

func (r *AccountRepository) CreateHospital(ctx context.Context, hospital domain.Hospital) (domain.Hospital, error) {
	created, err := r.dao.InsertHospital(ctx, dao.Hospital{
		Name:     hospital.Name,
		Username: hospital.Username,
		Password: hospital.Password,
	})
	if err != nil {
		return domain.Hospital{}, fmt.Errorf("r.dao.InsertHospital -> %w", err)
	}

	return hospitalDaoToDomain(created), nil
}

func (r *AccountRepository) CreateHealthWorker(ctx context.Context, worker domain.HealthWorker) (domain.HealthWorker, error) {
	created, err := r.dao.InsertHealthWorker(ctx, dao.HealthWorker{
		HospitalID: worker.HospitalID,
		Name:       worker.Name,
		Username:   worker.Username,
		Password:   worker.Password,
	})
	if err != nil {
		return domain.HealthWorker{}, fmt.Errorf("r.dao.InsertHealthWorker -> %w", err)
	}

	return healthWorkerDaoToDomain(created), nil
}

// FindByUsername looks the username up in the table that belongs to role.
func (r *AccountRepository) FindByUsername(ctx context.Context, role domain.Role, username string) (domain.Identity, string, error) {
	switch role {
	case domain.RoleParent:
		found, err := r.dao.FindParentByUsername(ctx, username)
		if err != nil {
			return nil, "", fmt.Errorf("r.dao.FindParentByUsername -> %w", err)
		}
		return parentDaoToDomain(found), found.Password, nil

	case domain.RoleHospital:
		found, err := r.dao.FindHospitalByUsername(ctx, username)
		if err != nil {
			return nil, "", fmt.Errorf("r.dao.FindHospitalByUsername -> %w", err)
		}
		return hospitalDaoToDomain(found), found.Password, nil

	case domain.RoleHealthWorker:
		found, err := r.dao.FindHealthWorkerByUsername(ctx, username)
		if err != nil {
			return nil, "", fmt.Errorf("r.dao.FindHealthWorkerByUsername -> %w", err)
		}
		return healthWorkerDaoToDomain(found), found.Password, nil

	default:
		return nil, "", domain.ErrInvalidRole
	}
}

func (r *AccountRepository) FindByID(ctx context.Context, role domain.Role, id uint) (domain.Identity, error) {
	switch role {
	case domain.RoleParent:
		found, err := r.dao.FindParentByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindParentByID -> %w", err)
		}
		return parentDaoToDomain(found), nil

	case domain.RoleHospital:
		found, err := r.dao.FindHospitalByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindHospitalByID -> %w", err)
		}
		return hospitalDaoToDomain(found), nil

	case domain.RoleHealthWorker:
		found, err := r.dao.FindHealthWorkerByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindHealthWorkerByID -> %w", err)
		}
		return healthWorkerDaoToDomain(found), nil

	default:
		return nil, domain.ErrInvalidRole
	}
}

func (r *AccountRepository) FindHospitalByID(ctx context.Context, id uint) (domain.Hospital, error) {
	found, err := r.dao.FindHospitalByID(ctx, id)
	if err != nil {
		return domain.Hospital{}, fmt.Errorf("r.dao.FindHospitalByID -> %w", err)
	}

	return hospitalDaoToDomain(found), nil
}

func (r *AccountRepository) FindHealthWorkerByID(ctx context.Context, id uint) (domain.HealthWorker, error) {
	found, err := r.dao.FindHealthWorkerByID(ctx, id)
	if err != nil {
		return domain.HealthWorker{}, fmt.Errorf("r.dao.FindHealthWorkerByID -> %w", err)
	}

	return healthWorkerDaoToDomain(found), nil
}

func (r *AccountRepository) FindHospitals(ctx context.Context) ([]domain.Hospital, error) {
	found, err := r.dao.FindHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHospitals -> %w", err)
	}

	hospitals := make([]domain.Hospital, 0, len(found))
	for _, h := range found {
		hospitals = append(hospitals, hospitalDaoToDomain(h))
	}

	return hospitals, nil
}

func (r *AccountRepository) FindHealthWorkersByHospitalID(ctx context.Context, hospitalID uint) ([]domain.HealthWorker, error) {
	found, err := r.dao.FindHealthWorkersByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHealthWorkersByHospitalID -> %w", err)
	}

	workers := make([]domain.HealthWorker, 0, len(found))
	for _, w := range found {
		workers = append(workers, healthWorkerDaoToDomain(w))
	}

	return workers, nil
}

func parentDaoToDomain(p dao.Parent) domain.Parent {
	return domain.Parent{
		ID:        p.ID,
		Username:  p.Username,
		Password:  p.Password,
		Name:      p.Name,
		Contact:   p.Contact,
		CreatedAt: p.CreatedAt,
	}
}

func hospitalDaoToDomain(h dao.Hospital) domain.Hospital {
	return domain.Hospital{
		ID:        h.ID,
		Name:      h.Name,
		Username:  h.Username,
		Password:  h.Password,
		CreatedAt: h.CreatedAt,
	}
}

func healthWorkerDaoToDomain(w dao.HealthWorker) domain.HealthWorker {
	return domain.HealthWorker{
		ID:         w.ID,
		HospitalID: w.HospitalID,
		Name:       w.Name,
		Username:   w.Username,
		Password:   w.Password,
		CreatedAt:  w.CreatedAt,
	}
}
