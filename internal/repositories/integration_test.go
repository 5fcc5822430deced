package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, string, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate("up", dsn))

	return db, dsn, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestMigrate_UpDownUp(t *testing.T) {
	db, dsn, cleanup := setupPostgres(t)
	defer cleanup()

	// Running up twice is a no-op
	assert.NoError(t, Migrate("up", dsn))

	assert.NoError(t, Migrate("down", dsn))
	var tables int
	assert.NoError(t, db.Get(&tables, `SELECT COUNT(*) FROM information_schema.tables WHERE table_name IN ('users', 'applications')`))
	assert.Equal(t, 0, tables)

	assert.NoError(t, Migrate("up", dsn))
}

func TestUserRepositories_Postgres(t *testing.T) {
	db, _, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewUserReadRepository(db, nil)
	writer := NewUserWriteRepository(db, nil)

	id, err := writer.Save(ctx, "alice@example.com", "hash1")
	assert.NoError(t, err)
	assert.Positive(t, id)

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, id, user.UserID)
			assert.Equal(t, "hash1", user.PasswordHash)
		}
	})

	t.Run("EmailIsCaseSensitive", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "Alice@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := writer.Save(ctx, "alice@example.com", "hash2")
		assert.ErrorIs(t, err, models.ErrAlreadyExists)
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		apps := NewApplicationWriteRepository(db, nil)
		for _, c := range []string{"Acme", "Beta", "Cobalt"} {
			_, err := apps.Save(ctx, id, c, "SWE", models.StatusApplied)
			assert.NoError(t, err)
		}

		assert.NoError(t, writer.Delete(ctx, id))

		var orphans int
		assert.NoError(t, db.Get(&orphans, `SELECT COUNT(*) FROM applications WHERE user_id = $1`, id))
		assert.Zero(t, orphans)

		assert.ErrorIs(t, writer.Delete(ctx, id), models.ErrNotFound)
	})
}

func TestApplicationRepositories_Postgres(t *testing.T) {
	db, _, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	users := NewUserWriteRepository(db, nil)
	reader := NewApplicationReadRepository(db, nil)
	writer := NewApplicationWriteRepository(db, nil)

	owner, err := users.Save(ctx, "owner@example.com", "hash")
	require.NoError(t, err)
	other, err := users.Save(ctx, "other@example.com", "hash")
	require.NoError(t, err)

	seed := []struct {
		company string
		role    string
		status  models.ApplicationStatus
	}{
		{"Delta", "Backend Engineer", models.StatusApplied},
		{"Acme", "SWE", models.StatusRejected},
		{"Cobalt", "Data Engineer", models.StatusInterview},
		{"Echo", "ACME Liaison", models.StatusOffer},
		{"Beta", "SRE", models.StatusRejected},
	}
	ids := map[string]int64{}
	for _, s := range seed {
		app, err := writer.Save(ctx, owner, s.company, s.role, s.status)
		require.NoError(t, err)
		ids[s.company] = app.ID
	}
	foreign, err := writer.Save(ctx, other, "Acme", "SWE", models.StatusApplied)
	require.NoError(t, err)

	t.Run("IDsAreUnique", func(t *testing.T) {
		seen := map[int64]bool{foreign.ID: true}
		for _, id := range ids {
			assert.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("GetRoundTrip", func(t *testing.T) {
		app, err := reader.GetByID(ctx, owner, ids["Acme"])
		assert.NoError(t, err)
		assert.Equal(t, "Acme", app.Company)
		assert.Equal(t, "SWE", app.Role)
		assert.Equal(t, models.StatusRejected, app.Status)
		assert.Equal(t, owner, app.UserID)
	})

	t.Run("ForeignRecordIsNotFound", func(t *testing.T) {
		_, err := reader.GetByID(ctx, owner, foreign.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = writer.Update(ctx, owner, foreign.ID, "X", "Y", models.StatusOffer)
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = writer.Delete(ctx, owner, foreign.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = reader.GetByID(ctx, owner, 1_000_000)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("ListIsOwnerScoped", func(t *testing.T) {
		apps, total, err := reader.List(ctx, owner, models.ApplicationFilter{Page: 1, Limit: 50, SortBy: "id", SortOrder: "desc"})
		assert.NoError(t, err)
		assert.Equal(t, 5, total)
		for _, a := range apps {
			assert.Equal(t, owner, a.UserID)
		}
	})

	t.Run("ListByStatus", func(t *testing.T) {
		status := models.StatusRejected
		apps, total, err := reader.List(ctx, owner, models.ApplicationFilter{Status: &status, Page: 1, Limit: 10, SortBy: "id", SortOrder: "desc"})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, a := range apps {
			assert.Equal(t, models.StatusRejected, a.Status)
		}
	})

	t.Run("ListByTextIsCaseInsensitiveOnCompanyOrRole", func(t *testing.T) {
		q := "acme"
		apps, total, err := reader.List(ctx, owner, models.ApplicationFilter{Query: &q, Page: 1, Limit: 10, SortBy: "company", SortOrder: "asc"})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		if assert.Len(t, apps, 2) {
			assert.Equal(t, "Acme", apps[0].Company)
			assert.Equal(t, "Echo", apps[1].Company)
		}
	})

	t.Run("ListWildcardsAreLiteral", func(t *testing.T) {
		q := "%"
		_, total, err := reader.List(ctx, owner, models.ApplicationFilter{Query: &q, Page: 1, Limit: 10, SortBy: "id", SortOrder: "desc"})
		assert.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("RequestedSortDeterminesPageOrder", func(t *testing.T) {
		var companies []string
		for page := 1; page <= 3; page++ {
			apps, total, err := reader.List(ctx, owner, models.ApplicationFilter{Page: page, Limit: 2, SortBy: "company", SortOrder: "asc"})
			assert.NoError(t, err)
			assert.Equal(t, 5, total)
			for _, a := range apps {
				companies = append(companies, a.Company)
			}
		}
		assert.Equal(t, []string{"Acme", "Beta", "Cobalt", "Delta", "Echo"}, companies)
	})

	t.Run("SecondPageOfTwo", func(t *testing.T) {
		apps, total, err := reader.List(ctx, owner, models.ApplicationFilter{Page: 2, Limit: 2, SortBy: "id", SortOrder: "asc"})
		assert.NoError(t, err)
		assert.Equal(t, 5, total)
		if assert.Len(t, apps, 2) {
			assert.Equal(t, ids["Cobalt"], apps[0].ID)
			assert.Equal(t, ids["Echo"], apps[1].ID)
		}
	})

	t.Run("SaveForMissingOwner", func(t *testing.T) {
		app, err := writer.Save(ctx, 1_000_000, "Acme", "SWE", models.StatusApplied)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, app)
	})

	t.Run("ExistsByCompanyRole", func(t *testing.T) {
		exists, err := reader.ExistsByCompanyRole(ctx, owner, "Acme", "SWE", 0)
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsByCompanyRole(ctx, owner, "Acme", "SWE", ids["Acme"])
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("UpdateToDuplicatePairIsRejected", func(t *testing.T) {
		_, err := writer.Update(ctx, owner, ids["Beta"], "Acme", "SWE", models.StatusOffer)
		assert.ErrorIs(t, err, models.ErrAlreadyExists)

		app, err := reader.GetByID(ctx, owner, ids["Beta"])
		assert.NoError(t, err)
		assert.Equal(t, "Beta", app.Company)
		assert.Equal(t, models.StatusRejected, app.Status)
	})

	t.Run("UpdateThenGet", func(t *testing.T) {
		updated, err := writer.Update(ctx, owner, ids["Delta"], "Delta", "Staff Engineer", models.StatusOffer)
		assert.NoError(t, err)
		assert.Equal(t, ids["Delta"], updated.ID)

		app, err := reader.GetByID(ctx, owner, ids["Delta"])
		assert.NoError(t, err)
		assert.Equal(t, "Staff Engineer", app.Role)
		assert.Equal(t, models.StatusOffer, app.Status)
	})

	t.Run("DeleteThenGet", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, owner, ids["Echo"])
		assert.NoError(t, err)
		assert.Equal(t, "Echo", deleted.Company)

		_, err = reader.GetByID(ctx, owner, ids["Echo"])
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
