package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Parent struct {
	ID uint `gorm:"primaryKey"`

	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`
	Contact  string

	Children []Child `gorm:"foreignKey:ParentID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Hospital struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	HealthWorkers []HealthWorker `gorm:"foreignKey:HospitalID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type HealthWorker struct {
	ID uint `gorm:"primaryKey"`

	HospitalID uint     `gorm:"index;not null"`
	Hospital   Hospital `gorm:"foreignKey:HospitalID"`
	Name       string   `gorm:"not null"`
	Username   string   `gorm:"uniqueIndex;not null"`
	Password   string   `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AccountDAO struct {
	db *gorm.DB
}

func NewAccountDAO(db *gorm.DB) *AccountDAO {
	return &AccountDAO{
		db: db,
	}
}

func (d *AccountDAO) InsertParent(ctx context.Context, parent Parent) (Parent, error) {
	result := d.db.WithContext(ctx).Create(&parent)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Parent{}, ErrUsernameExists
		}

		return Parent{}, result.Error
	}

	return parent, nil
}

func (d *AccountDAO) InsertHospital(ctx context.Context, hospital Hospital) (Hospital, error) {
	result := d.db.WithContext(ctx).Create(&hospital)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Hospital{}, ErrUsernameExists
		}

		return Hospital{}, result.Error
	}

	return hospital, nil
}

func (d *AccountDAO) InsertHealthWorker(ctx context.Context, worker HealthWorker) (HealthWorker, error) {
	result := d.db.WithContext(ctx).Omit("Hospital").Create(&worker)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return HealthWorker{}, ErrUsernameExists
		}

		return HealthWorker{}, result.Error
	}

	return worker, nil
}

func (d *AccountDAO) FindParentByUsername(ctx context.Context, username string) (Parent, error) {
	var parent Parent

	result := d.db.WithContext(ctx).First(&parent, "username = ?", username)
	if result.Error != nil {
		return Parent{}, notFound(result.Error, ErrAccountNotFound)
	}

	return parent, nil
}

func (d *AccountDAO) FindHospitalByUsername(ctx context.Context, username string) (Hospital, error) {
	var hospital Hospital

	result := d.db.WithContext(ctx).First(&hospital, "username = ?", username)
	if result.Error != nil {
		return Hospital{}, notFound(result.Error, ErrAccountNotFound)
	}

	return hospital, nil
}

func (d *AccountDAO) FindHealthWorkerByUsername(ctx context.Context, username string) (HealthWorker, error) {
	var worker HealthWorker

	result := d.db.WithContext(ctx).First(&worker, "username = ?", username)
	if result.Error != nil {
		return HealthWorker{}, notFound(result.Error, ErrAccountNotFound)
	}

	return worker, nil
}

func (d *AccountDAO) FindParentByID(ctx context.Context, id uint) (Parent, error) {
	var parent Parent

	result := d.db.WithContext(ctx).First(&parent, id)
	if result.Error != nil {
		return Parent{}, notFound(result.Error, ErrAccountNotFound)
	}

	return parent, nil
}

func (d *AccountDAO) FindHospitalByID(ctx context.Context, id uint) (Hospital, error) {
	var hospital Hospital

	result := d.db.WithContext(ctx).First(&hospital, id)
	if result.Error != nil {
		return Hospital{}, notFound(result.Error, ErrHospitalNotFound)
	}

	return hospital, nil
}

func (d *AccountDAO) FindHealthWorkerByID(ctx context.Context, id uint) (HealthWorker, error) {
	var worker HealthWorker

	result := d.db.WithContext(ctx).First(&worker, id)
	if result.Error != nil {
		return HealthWorker{}, notFound(result.Error, ErrAccountNotFound)
	}

	return worker, nil
}

func (d *AccountDAO) FindHospitals(ctx context.Context) ([]Hospital, error) {
	var hospitals []Hospital

	result := d.db.WithContext(ctx).Order("id").Find(&hospitals)
	if result.Error != nil {
		return nil, result.Error
	}

	return hospitals, nil
}

func (d *AccountDAO) FindHealthWorkersByHospitalID(ctx context.Context, hospitalID uint) ([]HealthWorker, error) {
	var workers []HealthWorker

	result := d.db.WithContext(ctx).Where("hospital_id = ?", hospitalID).Order("id").Find(&workers)
	if result.Error != nil {
		return nil, result.Error
	}

	return workers, nil
}
