package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with exactly this email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)

	logQuery(query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns its id. The users_email_key constraint
// turns a concurrent duplicate into models.ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (email, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, email, passwordHash)

	logQuery(query, []any{email, "[REDACTED]"}, id, err)

	if isUniqueViolation(err) {
		return 0, models.ErrAlreadyExists
	}
	return id, err
}

// Delete removes the user together with every application they own.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) error {
	const deleteApplications = `DELETE FROM applications WHERE user_id = $1`
	const deleteUser = `DELETE FROM users WHERE id = $1`

	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		res, err := ex.ExecContext(ctx, deleteApplications, userID)
		var removed int64
		if res != nil {
			removed, _ = res.RowsAffected()
		}
		logQuery(deleteApplications, []any{userID}, removed, err)
		if err != nil {
			return err
		}

		res, err = ex.ExecContext(ctx, deleteUser, userID)
		var rows int64
		if res != nil {
			rows, _ = res.RowsAffected()
		}
		logQuery(deleteUser, []any{userID}, rows, err)
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
