package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

const applicationColumns = `id, user_id, company, role, status, created_at, updated_at`

// sortColumns maps whitelisted sort fields to SQL columns. Nothing else is
// ever interpolated into ORDER BY.
var sortColumns = map[string]string{
	models.SortByID:      "id",
	models.SortByCompany: "company",
	models.SortByRole:    "role",
	models.SortByStatus:  "status",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplicationReadRepository handles owner-scoped application reads
type ApplicationReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewApplicationReadRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationReadRepository {
	return &ApplicationReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns models.ErrNotFound both for missing ids and for ids owned
// by someone else.
func (r *ApplicationReadRepository) GetByID(ctx context.Context, userID, id int64) (*models.ApplicationDB, error) {
	const query = `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1 AND id = $2
	`

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, userID, id)

	logQuery(query, []any{userID, id}, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// List returns one page of the owner's applications matching the filter and
// the number of matches before pagination.
func (r *ApplicationReadRepository) List(ctx context.Context, userID int64, filter models.ApplicationFilter) ([]models.ApplicationDB, int, error) {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported sort field %q", filter.SortBy)
	}
	direction := "DESC"
	if filter.SortOrder == models.SortAsc {
		direction = "ASC"
	}

	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Query != nil {
		args = append(args, "%"+likeEscaper.Replace(*filter.Query)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(company ILIKE $%d OR role ILIKE $%d)", n, n))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	ex := executor(ctx, r.db, r.txGetter)

	countQuery := "SELECT COUNT(*) FROM applications WHERE " + cond

	var total int
	err := sqlx.GetContext(ctx, ex, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	order := fmt.Sprintf("%s %s", column, direction)
	if column != "id" {
		order += fmt.Sprintf(", id %s", direction)
	}
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())
	listQuery := fmt.Sprintf(
		"SELECT %s FROM applications WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		applicationColumns, cond, order, len(args)+1, len(args)+2,
	)

	apps := []models.ApplicationDB{}
	err = sqlx.SelectContext(ctx, ex, &apps, listQuery, pageArgs...)
	logQuery(listQuery, pageArgs, len(apps), err)
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// ExistsByCompanyRole reports whether the owner already has an application
// with this company and role, ignoring the one with excludeID.
func (r *ApplicationReadRepository) ExistsByCompanyRole(ctx context.Context, userID int64, company, role string, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM applications
			WHERE user_id = $1 AND company = $2 AND role = $3 AND id <> $4
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, userID, company, role, excludeID)

	logQuery(query, []any{userID, company, role, excludeID}, exists, err)

	return exists, err
}

// ApplicationWriteRepository handles owner-scoped application writes
type ApplicationWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewApplicationWriteRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationWriteRepository {
	return &ApplicationWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new application owned by userID.
func (r *ApplicationWriteRepository) Save(ctx context.Context, userID int64, company, role string, status models.ApplicationStatus) (*models.ApplicationDB, error) {
	const query = `
		INSERT INTO applications (user_id, company, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + applicationColumns

	args := []any{userID, company, role, string(status)}

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, args...)

	logQuery(query, args, app.ID, err)

	switch {
	case isUniqueViolation(err):
		return nil, models.ErrAlreadyExists
	case isForeignKeyViolation(err):
		// The owner no longer exists.
		return nil, models.ErrNotFound
	case err != nil:
		return nil, err
	}
	return &app, nil
}

// Update overwrites company, role and status in place.
func (r *ApplicationWriteRepository) Update(ctx context.Context, userID, id int64, company, role string, status models.ApplicationStatus) (*models.ApplicationDB, error) {
	const query = `
		UPDATE applications
		SET company = $3, role = $4, status = $5, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + applicationColumns

	args := []any{userID, id, company, role, string(status)}

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, args...)

	logQuery(query, args, app.ID, err)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, models.ErrNotFound
	case isUniqueViolation(err):
		return nil, models.ErrAlreadyExists
	case err != nil:
		return nil, err
	}
	return &app, nil
}

// Delete permanently removes one of the owner's applications.
func (r *ApplicationWriteRepository) Delete(ctx context.Context, userID, id int64) (*models.ApplicationDB, error) {
	const query = `
		DELETE FROM applications
		WHERE user_id = $1 AND id = $2
		RETURNING ` + applicationColumns

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, userID, id)

	logQuery(query, []any{userID, id}, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}
