package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/db"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type fixture struct {
	db       *gorm.DB
	accounts *dao.AccountDAO
	children *dao.ChildDAO
	records  *dao.VaccinationDAO
}

func newFixture(t *testing.T) fixture {
	gdb := db.SetupTestDB(t)

	return fixture{
		db:       gdb,
		accounts: dao.NewAccountDAO(gdb),
		children: dao.NewChildDAO(gdb),
		records:  dao.NewVaccinationDAO(gdb),
	}
}

func TestSeedVaccines_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, db.Prepare(f.db))
	require.NoError(t, dao.SeedVaccines(f.db, []dao.Vaccine{{Name: "DTP", RecommendedAgeMonths: 99}}))

	vaccines, err := f.records.FindVaccines(ctx)
	require.NoError(t, err)

	require.Len(t, vaccines, 2)
	assert.Equal(t, "DTP", vaccines[0].Name)
	assert.Equal(t, 2, vaccines[0].RecommendedAgeMonths)
	assert.Equal(t, "Measles", vaccines[1].Name)
	assert.Equal(t, 9, vaccines[1].RecommendedAgeMonths)
}

func TestAccountDAO_UniqueUsernames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	parent, err := f.accounts.InsertParent(ctx, dao.Parent{Username: "alice", Password: "x", Name: "Alice"})
	require.NoError(t, err)
	assert.NotZero(t, parent.ID)

	_, err = f.accounts.InsertParent(ctx, dao.Parent{Username: "alice", Password: "y", Name: "Other"})
	assert.ErrorIs(t, err, dao.ErrUsernameExists)

	found, err := f.accounts.FindParentByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	hospital, err := f.accounts.InsertHospital(ctx, dao.Hospital{Username: "CityClinic", Password: "x", Name: "City Clinic"})
	require.NoError(t, err)

	_, err = f.accounts.InsertHospital(ctx, dao.Hospital{Username: "CityClinic", Password: "x", Name: "Copy"})
	assert.ErrorIs(t, err, dao.ErrUsernameExists)

	worker, err := f.accounts.InsertHealthWorker(ctx, dao.HealthWorker{HospitalID: hospital.ID, Username: "nurse", Password: "x", Name: "Nurse"})
	require.NoError(t, err)
	assert.Equal(t, hospital.ID, worker.HospitalID)

	_, err = f.accounts.InsertHealthWorker(ctx, dao.HealthWorker{HospitalID: hospital.ID, Username: "nurse", Password: "x", Name: "Nurse 2"})
	assert.ErrorIs(t, err, dao.ErrUsernameExists)

	workers, err := f.accounts.FindHealthWorkersByHospitalID(ctx, hospital.ID)
	require.NoError(t, err)
	assert.Len(t, workers, 1)
}

func TestAccountDAO_UsernamesAreScopedPerTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.accounts.InsertParent(ctx, dao.Parent{Username: "same", Password: "x", Name: "P"})
	require.NoError(t, err)

	_, err = f.accounts.InsertHospital(ctx, dao.Hospital{Username: "same", Password: "x", Name: "H"})
	assert.NoError(t, err)
}

func TestAccountDAO_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.accounts.FindParentByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, dao.ErrAccountNotFound)

	_, err = f.accounts.FindHospitalByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, dao.ErrAccountNotFound)

	_, err = f.accounts.FindHealthWorkerByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, dao.ErrAccountNotFound)

	_, err = f.accounts.FindHospitalByID(ctx, 42)
	assert.ErrorIs(t, err, dao.ErrHospitalNotFound)
}

func TestChildDAO(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	parent, err := f.accounts.InsertParent(ctx, dao.Parent{Username: "alice", Password: "x", Name: "Alice"})
	require.NoError(t, err)

	for _, name := range []string{"Bobby", "Carla"} {
		_, err := f.children.Insert(ctx, dao.Child{ParentID: parent.ID, Name: name, DateOfBirth: day("2023-01-01")})
		require.NoError(t, err)
	}

	children, err := f.children.FindByParentID(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Bobby", children[0].Name)
	assert.Equal(t, "Carla", children[1].Name)
	assert.True(t, day("2023-01-01").Equal(children[0].DateOfBirth.UTC()))

	_, err = f.children.FindByID(ctx, 999)
	assert.ErrorIs(t, err, dao.ErrChildNotFound)
}

func TestChildDAO_ForeignKey(t *testing.T) {
	f := newFixture(t)

	_, err := f.children.Insert(context.Background(), dao.Child{ParentID: 999, Name: "Ghost", DateOfBirth: day("2023-01-01")})
	assert.Error(t, err)
}

func TestVaccinationDAO_AppointmentsAndPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hospital, err := f.accounts.InsertHospital(ctx, dao.Hospital{Username: "CityClinic", Password: "x", Name: "City Clinic"})
	require.NoError(t, err)
	parent, err := f.accounts.InsertParent(ctx, dao.Parent{Username: "alice", Password: "x", Name: "Alice"})
	require.NoError(t, err)
	child, err := f.children.Insert(ctx, dao.Child{ParentID: parent.ID, Name: "Bobby", DateOfBirth: day("2023-01-01")})
	require.NoError(t, err)
	vaccines, err := f.records.FindVaccines(ctx)
	require.NoError(t, err)

	record, err := f.records.InsertRecord(ctx, dao.VaccineRecord{
		ChildID:    child.ID,
		VaccineID:  vaccines[0].ID,
		HospitalID: hospital.ID,
		Date:       day("2024-03-01"),
		Status:     "Scheduled",
	})
	require.NoError(t, err)

	rows, err := f.records.FindParentAppointments(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, record.ID, rows[0].ID)
	assert.Equal(t, "Bobby", rows[0].ChildName)
	assert.Equal(t, "DTP", rows[0].VaccineName)
	assert.Equal(t, "City Clinic", rows[0].HospitalName)
	assert.Equal(t, "Scheduled", rows[0].Status)
	assert.Nil(t, rows[0].AmountCents)
	assert.Nil(t, rows[0].PaymentStatus)

	_, err = f.records.FindPaymentByRecordID(ctx, record.ID)
	assert.ErrorIs(t, err, dao.ErrPaymentNotFound)

	_, err = f.records.InsertPayment(ctx, dao.Payment{VaccineRecordID: record.ID, AmountCents: 5000, Status: "Paid", DatePaid: day("2024-03-02")})
	require.NoError(t, err)

	_, err = f.records.InsertPayment(ctx, dao.Payment{VaccineRecordID: record.ID, AmountCents: 5000, Status: "Paid", DatePaid: day("2024-03-02")})
	assert.ErrorIs(t, err, dao.ErrPaymentExists)

	var count int64
	require.NoError(t, f.db.Model(&dao.Payment{}).Where("vaccine_record_id = ?", record.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rows, err = f.records.FindParentAppointments(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].AmountCents)
	assert.Equal(t, int64(5000), *rows[0].AmountCents)
	require.NotNil(t, rows[0].PaymentStatus)
	assert.Equal(t, "Paid", *rows[0].PaymentStatus)

	hospitalRows, err := f.records.FindHospitalAppointments(ctx, hospital.ID)
	require.NoError(t, err)
	require.Len(t, hospitalRows, 1)
	assert.Equal(t, "Bobby", hospitalRows[0].ChildName)
	assert.Equal(t, "DTP", hospitalRows[0].VaccineName)

	records, err := f.records.FindRecordsByChildIDs(ctx, []uint{child.ID})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = f.records.FindRecordsByChildIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestVaccinationDAO_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.records.FindVaccineByID(ctx, 999)
	assert.ErrorIs(t, err, dao.ErrVaccineNotFound)

	_, err = f.records.FindRecordByID(ctx, 999)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
}
