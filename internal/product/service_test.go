package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p Product) (*Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) UpdateIfOwned(ctx context.Context, id, sellerID uuid.UUID, params UpdateParams) (*Product, error) {
	args := m.Called(ctx, id, sellerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) DeleteIfOwned(ctx context.Context, id, sellerID uuid.UUID) error {
	args := m.Called(ctx, id, sellerID)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("Owner comes from caller", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := NewProduct{Name: "Laptop", Price: 1000, Discount: 10, DiscountPrice: 900.0}
		stored := &Product{
			ID:            uuid.New(),
			Name:          input.Name,
			Price:         input.Price,
			Discount:      input.Discount,
			DiscountPrice: input.DiscountPrice,
			SellerID:      sellerID,
		}

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p Product) bool {
			return p.SellerID == sellerID && p.ID == uuid.Nil && p.Name == "Laptop"
		})).Return(stored, nil)

		p, err := svc.Create(ctx, sellerID, input)

		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, sellerID, p.SellerID)
		assert.NotEqual(t, uuid.Nil, p.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db error"))

		_, err := svc.Create(ctx, sellerID, NewProduct{Name: "Laptop", Price: 1000})
		assert.Error(t, err)
	})
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("GetByID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &Product{ID: id, Name: "Laptop"}

		mockRepo.On("FindByID", ctx, id).Return(expected, nil)

		p, err := svc.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, id).Return(nil, ErrProductNotFound)

		_, err := svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("GetAll", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := []Product{{ID: id, Name: "Laptop"}}

		mockRepo.On("FindAll", ctx).Return(expected, nil)

		products, err := svc.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	sellerID := uuid.New()

	t.Run("Empty patch is a no-op read", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		existing := &Product{ID: id, Name: "Laptop", Price: 1000, SellerID: sellerID}

		mockRepo.On("FindByID", ctx, id).Return(existing, nil)

		p, err := svc.Update(ctx, id, sellerID, UpdateParams{})

		assert.NoError(t, err)
		assert.Equal(t, existing, p)
		mockRepo.AssertNotCalled(t, "UpdateIfOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty patch on missing product", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, id).Return(nil, ErrProductNotFound)

		_, err := svc.Update(ctx, id, sellerID, UpdateParams{})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Non-empty patch goes through ownership filter", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		name := "Gaming Laptop"
		params := UpdateParams{Name: &name}
		updated := &Product{ID: id, Name: name, Price: 1000, SellerID: sellerID}

		mockRepo.On("UpdateIfOwned", ctx, id, sellerID, params).Return(updated, nil)

		p, err := svc.Update(ctx, id, sellerID, params)

		assert.NoError(t, err)
		assert.Equal(t, updated, p)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Not owner indistinguishable from missing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		name := "Gaming Laptop"
		otherSeller := uuid.New()

		mockRepo.On("UpdateIfOwned", ctx, id, otherSeller, mock.Anything).Return(nil, ErrProductNotFound)

		_, err := svc.Update(ctx, id, otherSeller, UpdateParams{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	sellerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("DeleteIfOwned", ctx, id, sellerID).Return(nil)

		err := svc.Delete(ctx, id, sellerID)
		assert.NoError(t, err)
	})

	t.Run("Not owner indistinguishable from missing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("DeleteIfOwned", ctx, id, sellerID).Return(ErrProductNotFound)

		err := svc.Delete(ctx, id, sellerID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
