package domain

import (
	"errors"
	"time"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleParent       Role = "parent"
	RoleHospital     Role = "hospital"
	RoleHealthWorker Role = "health_worker"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleParent, RoleHospital, RoleHealthWorker:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// Identity is an authenticated account. Each role has its own row shape.
type Identity interface {
	Role() Role
	IdentityID() uint
	DisplayName() string
}

type Parent struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Parent) Role() Role          { return RoleParent }
func (p Parent) IdentityID() uint    { return p.ID }
func (p Parent) DisplayName() string { return p.Name }

type Hospital struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (h Hospital) Role() Role          { return RoleHospital }
func (h Hospital) IdentityID() uint    { return h.ID }
func (h Hospital) DisplayName() string { return h.Name }

type HealthWorker struct {
	ID         uint      `json:"id"`
	HospitalID uint      `json:"hospital_id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

func (w HealthWorker) Role() Role          { return RoleHealthWorker }
func (w HealthWorker) IdentityID() uint    { return w.ID }
func (w HealthWorker) DisplayName() string { return w.Name }
