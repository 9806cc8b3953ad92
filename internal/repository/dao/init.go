package dao

import (
	"fmt"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Parent{},
		&Hospital{},
		&HealthWorker{},
		&Child{},
		&Vaccine{},
		&VaccineRecord{},
		&Payment{},
	)
}

// SeedVaccines inserts every vaccine whose name is not present yet. Existing
// rows are left untouched.
func SeedVaccines(db *gorm.DB, vaccines []Vaccine) error {
	for _, v := range vaccines {
		row := Vaccine{}
		result := db.Where(Vaccine{Name: v.Name}).
			Attrs(Vaccine{RecommendedAgeMonths: v.RecommendedAgeMonths}).
			FirstOrCreate(&row)
		if result.Error != nil {
			return fmt.Errorf("seed vaccine %q -> %w", v.Name, result.Error)
		}
	}

	return nil
}
