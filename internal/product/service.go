package product

import (
	"context"

	"lapak-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, sellerID uuid.UUID, input NewProduct) (*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id, sellerID uuid.UUID, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id, sellerID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists a new product owned by the authenticated seller. The
// owner always comes from the caller's resolved identity, never from the
// request payload.
func (s *service) Create(ctx context.Context, sellerID uuid.UUID, input NewProduct) (*Product, error) {
	log := logger.FromCtx(ctx)

	created, err := s.repo.Create(ctx, Product{
		Name:          input.Name,
		Price:         input.Price,
		Discount:      input.Discount,
		DiscountPrice: input.DiscountPrice,
		SellerID:      sellerID,
	})
	if err != nil {
		return nil, err
	}

	log.Info("product created",
		zap.String("product_id", created.ID.String()),
		zap.String("seller_id", sellerID.String()),
	)

	return created, nil
}

// Reads are public; no ownership check.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update scoped to the owning seller. An empty
// patch degrades to a plain read of the target, so PUT with no fields is
// an idempotent no-op.
func (s *service) Update(ctx context.Context, id, sellerID uuid.UUID, params UpdateParams) (*Product, error) {
	if params.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	return s.repo.UpdateIfOwned(ctx, id, sellerID, params)
}

func (s *service) Delete(ctx context.Context, id, sellerID uuid.UUID) error {
	err := s.repo.DeleteIfOwned(ctx, id, sellerID)
	if err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deleted",
		zap.String("product_id", id.String()),
		zap.String("seller_id", sellerID.String()),
	)
	return nil
}
