package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewOrderID())
	}
}

func TestMapOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "shipped", "delivered"} {
		status, err := MapOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}

	// Case-insensitive on input
	status, err := MapOrderStatus("DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, status)

	_, err = MapOrderStatus("cancelled")
	assert.Error(t, err)
}

func TestMapDeliveryType(t *testing.T) {
	home, err := MapDeliveryType("home")
	require.NoError(t, err)
	assert.Equal(t, DeliveryHome, home)

	office, err := MapDeliveryType("office")
	require.NoError(t, err)
	assert.Equal(t, DeliveryOffice, office)

	_, err = MapDeliveryType("pickup")
	assert.Error(t, err)
}
