package product

import "github.com/google/uuid"

type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	Discount      int       `json:"discount"`
	DiscountPrice float64   `json:"discount_price"`
	SellerID      uuid.UUID `json:"seller_id"`
}

// NewProduct carries the client-supplied fields of a creation request.
// The owner is never part of it; it comes from the authenticated caller.
type NewProduct struct {
	Name          string
	Price         int
	Discount      int
	DiscountPrice float64
}

// UpdateParams is a partial update. A nil field means "leave unchanged";
// there is no way to clear a field to a zero value by omitting it.
type UpdateParams struct {
	Name          *string
	Price         *int
	Discount      *int
	DiscountPrice *float64
}

// IsEmpty reports whether the patch touches no fields at all.
func (p UpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Discount == nil && p.DiscountPrice == nil
}
