package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ebran/doorman"
)

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*doorman.User, error) {
	q := `SELECT id, firstname, lastname, email, password_hash, created_at FROM users WHERE email = $1`

	user := &doorman.User{}
	err := a.pool.QueryRow(ctx, q, email).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, doorman.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create inserts the record and maps a unique-violation on email to
// ErrUserExists. The database constraint decides conflicts, not any earlier
// lookup.
func (a *Adapter) Create(ctx context.Context, user *doorman.User) (*doorman.User, error) {
	q := `INSERT INTO users (firstname, lastname, email, password_hash) VALUES ($1, $2, $3, $4) RETURNING id, created_at`

	var id string
	var createdAt time.Time
	err := a.pool.QueryRow(ctx, q, user.FirstName, user.LastName, user.Email, user.PasswordHash).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, doorman.ErrUserExists
		}
		return nil, err
	}

	user.ID = id
	user.CreatedAt = createdAt
	return user, nil
}
