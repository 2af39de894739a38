package checkout

import (
	"regexp"
	"testing"
	"time"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validForm = DeliveryForm{
	CustomerName: "Ahmed Benali",
	Phone:        "0551 23 45 67",
	Wilaya:       "16 Alger",
	DeliveryType: "home",
}

func TestBuildBatchOneOrderPerLine(t *testing.T) {
	items := []models.Product{
		{ID: "AX-CORE-X2", Name: "AXIS Core-X2 Neural Processor", Price: 58000},
		{ID: "LM-PRO-V", Name: "Logic Master Pro-V Dev Board", Price: 94000, DiscountPercentage: 10},
		{ID: "AX-CORE-X2", Name: "AXIS Core-X2 Neural Processor", Price: 58000},
	}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	orders, err := BuildBatch(items, validForm, now)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	idPattern := regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)
	for i, o := range orders {
		assert.Regexp(t, idPattern, o.ID)
		assert.Equal(t, "Ahmed Benali", o.CustomerName)
		assert.Equal(t, "0551 23 45 67", o.Phone)
		assert.Equal(t, "16 Alger", o.Wilaya)
		assert.Equal(t, models.DeliveryHome, o.DeliveryType)
		assert.Equal(t, models.OrderStatusPending, o.Status)
		assert.Equal(t, now, o.CreatedAt)
		assert.Equal(t, items[i].ID, o.ProductID)
		assert.Equal(t, items[i].Name, o.ProductName)
	}

	assert.Equal(t, 58000.0, orders[0].Amount)
	assert.InDelta(t, 84600, orders[1].Amount, 0.001)
}

func TestBuildBatchSnapshotsEffectivePrice(t *testing.T) {
	items := []models.Product{{ID: "LM-PRO-V", Name: "Dev Board", Price: 94000, DiscountPercentage: 10}}

	orders, err := BuildBatch(items, validForm, time.Now())
	require.NoError(t, err)
	assert.InDelta(t, items[0].EffectivePrice(), orders[0].Amount, 0.001)
}

func TestBuildBatchEmptyCart(t *testing.T) {
	_, err := BuildBatch(nil, validForm, time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildBatchUnknownWilaya(t *testing.T) {
	form := validForm
	form.Wilaya = "99 Nowhere"

	_, err := BuildBatch([]models.Product{{ID: "AX-CORE-X2"}}, form, time.Now())
	assert.ErrorIs(t, err, ErrUnknownWilaya)
}

func TestBuildBatchInvalidDeliveryType(t *testing.T) {
	form := validForm
	form.DeliveryType = "pickup"

	_, err := BuildBatch([]models.Product{{ID: "AX-CORE-X2"}}, form, time.Now())
	assert.Error(t, err)
}

func TestBuildBatchOfficeDelivery(t *testing.T) {
	form := validForm
	form.DeliveryType = "office"

	orders, err := BuildBatch([]models.Product{{ID: "AX-CORE-X2"}}, form, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryOffice, orders[0].DeliveryType)
}
