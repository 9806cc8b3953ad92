package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
)

// Prepare creates the schema if needed and seeds the reference vaccines. It is
// safe to run on every startup.
func Prepare(db *gorm.DB) error {
	if err := dao.InitTables(db); err != nil {
		return fmt.Errorf("dao.InitTables -> %w", err)
	}

	vaccines := make([]dao.Vaccine, 0, len(domain.DefaultVaccines))
	for _, v := range domain.DefaultVaccines {
		vaccines = append(vaccines, dao.Vaccine{
			Name:                 v.Name,
			RecommendedAgeMonths: v.RecommendedAgeMonths,
		})
	}

	if err := dao.SeedVaccines(db, vaccines); err != nil {
		return fmt.Errorf("dao.SeedVaccines -> %w", err)
	}

	return nil
}
