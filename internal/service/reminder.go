package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

type ReminderService struct {
	childRepo ChildRepository
	repo      VaccinationRepository
	now       func() time.Time
}

func NewReminderService(childRepo ChildRepository, repo VaccinationRepository) *ReminderService {
	return &ReminderService{
		childRepo: childRepo,
		repo:      repo,
		now:       time.Now,
	}
}

// DueReminders evaluates reminders on every call; nothing is stored.
func (s *ReminderService) DueReminders(ctx context.Context, parentID uint) ([]domain.Reminder, error) {
	children, err := s.childRepo.FindByParentID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("s.childRepo.FindByParentID -> %w", err)
	}

	vaccines, err := s.repo.FindVaccines(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindVaccines -> %w", err)
	}

	childIDs := make([]uint, 0, len(children))
	for _, c := range children {
		childIDs = append(childIDs, c.ID)
	}

	recorded, err := s.repo.FindRecordedPairs(ctx, childIDs)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRecordedPairs -> %w", err)
	}

	return domain.DueReminders(s.now(), children, vaccines, recorded), nil
}
