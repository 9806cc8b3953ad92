package domain

import (
	"fmt"
	"time"
)

const daysPerMonth = 30

type Reminder struct {
	ChildID              uint   `json:"child_id"`
	ChildName            string `json:"child_name"`
	VaccineID            uint   `json:"vaccine_id"`
	VaccineName          string `json:"vaccine_name"`
	RecommendedAgeMonths int    `json:"recommended_age_months"`
	AgeMonths            int    `json:"age_months"`
}

func (r Reminder) Message() string {
	return fmt.Sprintf("%s is due for %s (Recommended at %d months)", r.ChildName, r.VaccineName, r.RecommendedAgeMonths)
}

// ChildVaccine identifies the existence of a record for a child and vaccine.
type ChildVaccine struct {
	ChildID   uint
	VaccineID uint
}

// AgeInMonths uses fixed 30 day months, floored.
func AgeInMonths(dateOfBirth, now time.Time) int {
	days := int(CalendarDate(now).Sub(CalendarDate(dateOfBirth)).Hours() / 24)

	months := days / daysPerMonth
	if days < 0 && days%daysPerMonth != 0 {
		months--
	}

	return months
}

// DueReminders lists, per child and vaccine, the vaccines a child has reached
// the recommended age for without having any record.
func DueReminders(now time.Time, children []Child, vaccines []Vaccine, recorded map[ChildVaccine]bool) []Reminder {
	reminders := []Reminder{}
	for _, child := range children {
		age := AgeInMonths(child.DateOfBirth, now)
		for _, vaccine := range vaccines {
			if recorded[ChildVaccine{ChildID: child.ID, VaccineID: vaccine.ID}] {
				continue
			}
			if age < vaccine.RecommendedAgeMonths {
				continue
			}

			reminders = append(reminders, Reminder{
				ChildID:              child.ID,
				ChildName:            child.Name,
				VaccineID:            vaccine.ID,
				VaccineName:          vaccine.Name,
				RecommendedAgeMonths: vaccine.RecommendedAgeMonths,
				AgeMonths:            age,
			})
		}
	}

	return reminders
}
