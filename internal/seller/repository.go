package seller

import (
	"context"
	"database/sql"
	"errors"

	"lapak-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*Seller, error)
	FindByEmail(ctx context.Context, email string) (*Seller, error)
	FindByUsername(ctx context.Context, username string) (*Seller, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the seller in a single statement; the unique constraints
// turn a duplicate registration into a conflict error without a separate
// existence check racing the insert. Username must be unique too, since it
// is the token subject and every authenticated request resolves it back to
// one seller row.
func (r *repository) Create(ctx context.Context, username, email, passwordHash string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	var s Seller
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO sellers (username, email, password) VALUES ($1, $2, $3) RETURNING id, username, email, password",
		username, email, passwordHash,
	).Scan(&s.ID, &s.Username, &s.Email, &s.Password)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			if pqErr.Constraint == "sellers_username_idx" {
				return nil, ErrUsernameExists
			}
			return nil, ErrEmailExists
		}

		log.Error("db: failed to insert seller",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	return &s, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, password FROM sellers WHERE email=$1",
		email,
	).Scan(&s.ID, &s.Username, &s.Email, &s.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, password FROM sellers WHERE username=$1",
		username,
	).Scan(&s.ID, &s.Username, &s.Email, &s.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}
