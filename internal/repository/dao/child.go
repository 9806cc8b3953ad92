package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Child struct {
	ID uint `gorm:"primaryKey"`

	ParentID    uint      `gorm:"index;not null"`
	Parent      Parent    `gorm:"foreignKey:ParentID"`
	Name        string    `gorm:"not null"`
	DateOfBirth time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName keeps gorm from naming the table "childs".
func (Child) TableName() string {
	return "children"
}

type ChildDAO struct {
	db *gorm.DB
}

func NewChildDAO(db *gorm.DB) *ChildDAO {
	return &ChildDAO{
		db: db,
	}
}

func (d *ChildDAO) Insert(ctx context.Context, child Child) (Child, error) {
	result := d.db.WithContext(ctx).Omit("Parent").Create(&child)
	if result.Error != nil {
		return Child{}, result.Error
	}

	return child, nil
}

func (d *ChildDAO) FindByID(ctx context.Context, id uint) (Child, error) {
	var child Child

	result := d.db.WithContext(ctx).First(&child, id)
	if result.Error != nil {
		return Child{}, notFound(result.Error, ErrChildNotFound)
	}

	return child, nil
}

func (d *ChildDAO) FindByParentID(ctx context.Context, parentID uint) ([]Child, error) {
	var children []Child

	result := d.db.WithContext(ctx).Where("parent_id = ?", parentID).Order("id").Find(&children)
	if result.Error != nil {
		return nil, result.Error
	}

	return children, nil
}
