package product

import "errors"

// ErrProductNotFound also covers ownership mismatches on update/delete:
// a caller who does not own the product gets the same answer as one asking
// for a product that never existed, so ownership is not leaked.
var ErrProductNotFound = errors.New("product not found")
