package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"lapak-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const productColumns = "id, name, price, discount, discount_price, seller_id"

type Repository interface {
	Create(ctx context.Context, p Product) (*Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	UpdateIfOwned(ctx context.Context, id, sellerID uuid.UUID, params UpdateParams) (*Product, error)
	DeleteIfOwned(ctx context.Context, id, sellerID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx,
		"INSERT INTO products (name, price, discount, discount_price, seller_id) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		p.Name, p.Price, p.Discount, p.DiscountPrice, p.SellerID,
	).Scan(&p.ID)

	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("seller_id", p.SellerID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=$1",
		id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Discount, &p.DiscountPrice, &p.SellerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Discount, &p.DiscountPrice, &p.SellerID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// UpdateIfOwned applies the non-nil patch fields in one statement whose
// filter includes the owner, so the ownership check and the write cannot
// be split by a concurrent request. No matching row means either the id
// does not exist or the caller is not the owner; both come back as
// ErrProductNotFound.
func (r *repository) UpdateIfOwned(ctx context.Context, id, sellerID uuid.UUID, params UpdateParams) (*Product, error) {
	sets := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.Discount != nil {
		addSet("discount", *params.Discount)
	}
	if params.DiscountPrice != nil {
		addSet("discount_price", *params.DiscountPrice)
	}

	if len(sets) == 0 {
		return nil, errors.New("empty update params")
	}

	args = append(args, id, sellerID)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id=$%d AND seller_id=$%d RETURNING %s",
		strings.Join(sets, ", "), len(args)-1, len(args), productColumns,
	)

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Price, &p.Discount, &p.DiscountPrice, &p.SellerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update product",
			zap.String("product_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

// DeleteIfOwned removes the product only when the caller owns it, with the
// same single-statement filter as UpdateIfOwned.
func (r *repository) DeleteIfOwned(ctx context.Context, id, sellerID uuid.UUID) error {
	var deleted uuid.UUID
	err := r.db.QueryRowContext(ctx,
		"DELETE FROM products WHERE id=$1 AND seller_id=$2 RETURNING id",
		id, sellerID,
	).Scan(&deleted)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrProductNotFound
	}
	return err
}
