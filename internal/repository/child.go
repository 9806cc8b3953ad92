package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
)

var ErrChildNotFound = dao.ErrChildNotFound

type ChildDAO interface {
	Insert(ctx context.Context, child dao.Child) (dao.Child, error)
	FindByID(ctx context.Context, id uint) (dao.Child, error)
	FindByParentID(ctx context.Context, parentID uint) ([]dao.Child, error)
}

type ChildRepository struct {
	dao ChildDAO
}

func NewChildRepository(dao ChildDAO) *ChildRepository {
	return &ChildRepository{
		dao: dao,
	}
}

func (r *ChildRepository) Create(ctx context.Context, child domain.Child) (domain.Child, error) {
	created, err := r.dao.Insert(ctx, dao.Child{
		ParentID:    child.ParentID,
		Name:        child.Name,
		DateOfBirth: child.DateOfBirth,
	})
	if err != nil {
		return domain.Child{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return childDaoToDomain(created), nil
}

func (r *ChildRepository) FindByID(ctx context.Context, id uint) (domain.Child, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Child{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return childDaoToDomain(found), nil
}

func (r *ChildRepository) FindByParentID(ctx context.Context, parentID uint) ([]domain.Child, error) {
	found, err := r.dao.FindByParentID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByParentID -> %w", err)
	}

	children := make([]domain.Child, 0, len(found))
	for _, c := range found {
		children = append(children, childDaoToDomain(c))
	}

	return children, nil
}

func childDaoToDomain(c dao.Child) domain.Child {
	return domain.Child{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Name:        c.Name,
		DateOfBirth: domain.CalendarDate(c.DateOfBirth),
		CreatedAt:   c.CreatedAt,
	}
}
