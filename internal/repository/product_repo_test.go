package repository

import (
	"testing"

	"go-inventory-sales/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id string) model.Product {
	return model.Product{
		ID:           id,
		Name:         "Espresso Beans",
		Category:     "coffee",
		Price:        12.5,
		Quantity:     40,
		ReorderLevel: 10,
	}
}

func TestProductRepoPutAndFind(t *testing.T) {
	repo := NewProductRepo()

	replaced := repo.Put(sampleProduct("P1"))
	assert.False(t, replaced)

	found, ok := repo.FindByID("P1")
	require.True(t, ok)
	assert.Equal(t, sampleProduct("P1"), found)
}

func TestProductRepoPutOverwrites(t *testing.T) {
	repo := NewProductRepo()
	repo.Put(sampleProduct("P1"))

	updated := sampleProduct("P1")
	updated.Name = "Decaf Beans"
	updated.Quantity = 5

	assert.True(t, repo.Put(updated))

	found, ok := repo.FindByID("P1")
	require.True(t, ok)
	assert.Equal(t, "Decaf Beans", found.Name)
	assert.Equal(t, 5, found.Quantity)
}

func TestProductRepoRemove(t *testing.T) {
	repo := NewProductRepo()
	repo.Put(sampleProduct("P1"))

	assert.True(t, repo.Remove("P1"))
	assert.False(t, repo.Remove("P1"))

	_, ok := repo.FindByID("P1")
	assert.False(t, ok)
}

func TestProductRepoUpdateQuantity(t *testing.T) {
	repo := NewProductRepo()
	repo.Put(sampleProduct("P1"))

	assert.True(t, repo.UpdateQuantity("P1", 7))
	found, _ := repo.FindByID("P1")
	assert.Equal(t, 7, found.Quantity)

	assert.False(t, repo.UpdateQuantity("ghost", 7))
}

func TestProductRepoSnapshotsAreCopies(t *testing.T) {
	repo := NewProductRepo()
	repo.Put(sampleProduct("P1"))

	all := repo.FindAll()
	require.Len(t, all, 1)
	all[0].Quantity = 999

	byID, _ := repo.FindByID("P1")
	byID.Quantity = 777

	stored, _ := repo.FindByID("P1")
	assert.Equal(t, 40, stored.Quantity)
}
