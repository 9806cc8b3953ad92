package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository"
)

var (
	ErrChildNotFound       = repository.ErrChildNotFound
	ErrInvalidDate         = errors.New("invalid date format (use YYYY-MM-DD)")
	ErrDateOfBirthInFuture = errors.New("date of birth is in the future")
)

type ChildRepository interface {
	Create(ctx context.Context, child domain.Child) (domain.Child, error)
	FindByID(ctx context.Context, id uint) (domain.Child, error)
	FindByParentID(ctx context.Context, parentID uint) ([]domain.Child, error)
}

type ChildService struct {
	repo ChildRepository
	now  func() time.Time
}

func NewChildService(repo ChildRepository) *ChildService {
	return &ChildService{
		repo: repo,
		now:  time.Now,
	}
}

// ParseDate accepts only real calendar dates in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

func (s *ChildService) AddChild(ctx context.Context, parentID uint, name, dateOfBirth string) (domain.Child, error) {
	dob, err := ParseDate(dateOfBirth)
	if err != nil {
		return domain.Child{}, err
	}
	if dob.After(domain.CalendarDate(s.now())) {
		return domain.Child{}, ErrDateOfBirthInFuture
	}

	created, err := s.repo.Create(ctx, domain.Child{
		ParentID:    parentID,
		Name:        name,
		DateOfBirth: dob,
	})
	if err != nil {
		return domain.Child{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ChildService) ListChildren(ctx context.Context, parentID uint) ([]domain.Child, error) {
	children, err := s.repo.FindByParentID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByParentID -> %w", err)
	}

	return children, nil
}
