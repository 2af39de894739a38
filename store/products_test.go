package store

import (
	"testing"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetProductsServesDefaultsWhenTableIsEmpty(t *testing.T) {
	db := openTestDB(t)

	products := GetProducts(db)
	defaults := DefaultProducts()
	require.Len(t, products, len(defaults))
	assert.Equal(t, defaults[0].ID, products[0].ID)
}

func TestGetProductsReadsTableWhenPopulated(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Product{ID: "AX-CUSTOM", Name: "Custom Board", Price: 5000, Stock: 2}).Error)

	products := GetProducts(db)
	require.Len(t, products, 1)
	assert.Equal(t, "AX-CUSTOM", products[0].ID)
}

func TestSaveProductsUpsertsByID(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SaveProducts(db, []models.Product{
		{ID: "AX-CORE-X2", Name: "Core-X2", Price: 58000, Stock: 15},
	}))
	require.NoError(t, SaveProducts(db, []models.Product{
		{ID: "AX-CORE-X2", Name: "Core-X2 Rev B", Price: 61000, Stock: 12},
	}))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	product, err := GetProductByID(db, "AX-CORE-X2")
	require.NoError(t, err)
	assert.Equal(t, "Core-X2 Rev B", product.Name)
	assert.Equal(t, 61000.0, product.Price)
	assert.Equal(t, 12, product.Stock)
}

func TestGetProductByIDMiss(t *testing.T) {
	db := openTestDB(t)
	_, err := GetProductByID(db, "NO-SUCH-SKU")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProductRemovesRow(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Product{ID: "AX-GONE", Name: "Short Run", Price: 900, Stock: 1}).Error)

	require.NoError(t, DeleteProduct(db, "AX-GONE"))

	_, err := GetProductByID(db, "AX-GONE")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
