package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository"
)

func TestAuthService_SignupParent(t *testing.T) {
	ctx := context.Background()
	m := &mockAccountRepo{}
	m.On("CreateParent", ctx, mock.MatchedBy(func(p domain.Parent) bool {
		return p.Username == "alice" &&
			bcrypt.CompareHashAndPassword([]byte(p.Password), []byte("pass2")) == nil
	})).Return(domain.Parent{ID: 1, Username: "alice", Name: "Alice Smith"}, nil)

	s := NewAuthService(m)
	created, err := s.SignupParent(ctx, domain.Parent{Username: "alice", Password: "pass2", Name: "Alice Smith"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	m.AssertExpectations(t)
}

func TestAuthService_SignupParent_Duplicate(t *testing.T) {
	ctx := context.Background()
	m := &mockAccountRepo{}
	m.On("CreateParent", ctx, mock.Anything).Return(domain.Parent{}, repository.ErrUsernameExists)

	s := NewAuthService(m)
	_, err := s.SignupParent(ctx, domain.Parent{Username: "alice", Password: "pass2"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1"), bcrypt.MinCost)
	require.NoError(t, err)
	hospital := domain.Hospital{ID: 3, Name: "City Clinic", Username: "CityClinic"}

	tests := []struct {
		name     string
		username string
		password string
		found    bool
		wantErr  error
	}{
		{name: "valid", username: "CityClinic", password: "pass1", found: true},
		{name: "wrong password", username: "CityClinic", password: "nope", found: true, wantErr: ErrInvalidCredentials},
		{name: "unknown username", username: "ghost", password: "pass1", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockAccountRepo{}
			if tt.found {
				m.On("FindByUsername", ctx, domain.RoleHospital, tt.username).Return(hospital, string(hash), nil)
			} else {
				m.On("FindByUsername", ctx, domain.RoleHospital, tt.username).Return(nil, "", repository.ErrAccountNotFound)
			}

			s := NewAuthService(m)
			identity, err := s.Login(ctx, domain.RoleHospital, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.RoleHospital, identity.Role())
			assert.Equal(t, "City Clinic", identity.DisplayName())
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	m := &mockAccountRepo{}
	m.On("FindByUsername", ctx, domain.RoleParent, "alice").Return(nil, "", boom)

	s := NewAuthService(m)
	_, err := s.Login(ctx, domain.RoleParent, "alice", "pass2")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetIdentity(t *testing.T) {
	ctx := context.Background()
	m := &mockAccountRepo{}
	m.On("FindByID", ctx, domain.RoleHospital, uint(9)).Return(nil, repository.ErrHospitalNotFound)
	m.On("FindByID", ctx, domain.RoleParent, uint(1)).Return(domain.Parent{ID: 1, Name: "Alice Smith"}, nil)

	s := NewAuthService(m)

	_, err := s.GetIdentity(ctx, domain.Session{Role: domain.RoleHospital, ID: 9})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	identity, err := s.GetIdentity(ctx, domain.Session{Role: domain.RoleParent, ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", identity.DisplayName())
}

func TestHospitalService_AddHealthWorker(t *testing.T) {
	ctx := context.Background()
	m := &mockAccountRepo{}
	m.On("CreateHealthWorker", ctx, mock.MatchedBy(func(w domain.HealthWorker) bool {
		return w.HospitalID == 3 && w.Password != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(w.Password), []byte("secret")) == nil
	})).Return(domain.HealthWorker{ID: 4, HospitalID: 3, Name: "Nurse Joy"}, nil)

	s := NewHospitalService(m)
	created, err := s.AddHealthWorker(ctx, 3, domain.HealthWorker{HospitalID: 99, Name: "Nurse Joy", Username: "joy", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.HospitalID)
	m.AssertExpectations(t)
}
