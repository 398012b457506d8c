package repository

import "go-inventory-sales/internal/model"

// ProductRepository is the in-memory product catalog. Every method that hands
// a product out returns a value copy, so stored records can only change
// through UpdateQuantity or Put.
//
// The repository is not safe for concurrent use; the owning service
// serializes access.
type ProductRepository interface {
	Put(product model.Product) (replaced bool)
	FindByID(id string) (model.Product, bool)
	Remove(id string) bool
	UpdateQuantity(id string, newQty int) bool
	FindAll() []model.Product
}

type productRepo struct {
	products map[string]model.Product
}

func NewProductRepo() ProductRepository {
	return &productRepo{products: make(map[string]model.Product)}
}

// Put inserts the product, overwriting any existing record with the same id.
func (r *productRepo) Put(product model.Product) bool {
	_, replaced := r.products[product.ID]
	r.products[product.ID] = product
	return replaced
}

func (r *productRepo) FindByID(id string) (model.Product, bool) {
	product, ok := r.products[id]
	return product, ok
}

func (r *productRepo) Remove(id string) bool {
	if _, ok := r.products[id]; !ok {
		return false
	}
	delete(r.products, id)
	return true
}

// UpdateQuantity sets the stock level unconditionally. Negative values are the
// caller's responsibility.
func (r *productRepo) UpdateQuantity(id string, newQty int) bool {
	product, ok := r.products[id]
	if !ok {
		return false
	}
	product.Quantity = newQty
	r.products[id] = product
	return true
}

// FindAll returns a snapshot of the catalog. Iteration order is not
// meaningful.
func (r *productRepo) FindAll() []model.Product {
	products := make([]model.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products
}
