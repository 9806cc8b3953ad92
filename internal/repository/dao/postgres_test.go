package dao_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/db"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
)

// startPostgres runs a throwaway Postgres container. Set DOCKERTEST=1 to
// enable; the test is skipped otherwise.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DOCKERTEST") != "1" {
		t.Skip("DOCKERTEST is not set")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vaccination",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(120)

	url := fmt.Sprintf("postgres://postgres:secret@%s/vaccination?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var gdb *gorm.DB
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		var err error
		gdb, err = db.OpenPostgresWithURL(url)
		if err != nil {
			return err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, db.Prepare(gdb))

	return gdb
}

func TestPostgres_UniqueViolations(t *testing.T) {
	gdb := startPostgres(t)
	ctx := context.Background()
	accounts := dao.NewAccountDAO(gdb)
	children := dao.NewChildDAO(gdb)
	records := dao.NewVaccinationDAO(gdb)

	parent, err := accounts.InsertParent(ctx, dao.Parent{Username: "alice", Password: "x", Name: "Alice"})
	require.NoError(t, err)

	_, err = accounts.InsertParent(ctx, dao.Parent{Username: "alice", Password: "x", Name: "Alice"})
	assert.ErrorIs(t, err, dao.ErrUsernameExists)

	hospital, err := accounts.InsertHospital(ctx, dao.Hospital{Username: "CityClinic", Password: "x", Name: "City Clinic"})
	require.NoError(t, err)

	child, err := children.Insert(ctx, dao.Child{ParentID: parent.ID, Name: "Bobby", DateOfBirth: day("2023-01-01")})
	require.NoError(t, err)

	vaccines, err := records.FindVaccines(ctx)
	require.NoError(t, err)
	require.Len(t, vaccines, 2)

	record, err := records.InsertRecord(ctx, dao.VaccineRecord{
		ChildID: child.ID, VaccineID: vaccines[0].ID, HospitalID: hospital.ID,
		Date: day("2024-03-01"), Status: "Scheduled",
	})
	require.NoError(t, err)

	_, err = records.InsertPayment(ctx, dao.Payment{VaccineRecordID: record.ID, AmountCents: 5000, Status: "Paid", DatePaid: day("2024-03-01")})
	require.NoError(t, err)

	_, err = records.InsertPayment(ctx, dao.Payment{VaccineRecordID: record.ID, AmountCents: 5000, Status: "Paid", DatePaid: day("2024-03-01")})
	assert.ErrorIs(t, err, dao.ErrPaymentExists)

	rows, err := records.FindParentAppointments(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].PaymentStatus)
	assert.Equal(t, "Paid", *rows[0].PaymentStatus)
}
