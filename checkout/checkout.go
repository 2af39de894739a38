// Package checkout turns a cart plus a delivery form into a batch of order
// drafts, one per cart line.
package checkout

import (
	"errors"
	"time"

	"github.com/axis-silicon/storefront-api/models"
)

// DeliveryForm carries the customer and delivery fields shared by every order
// in a batch. Phone is free text; only presence is validated.
type DeliveryForm struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Wilaya       string `json:"wilaya" binding:"required"`
	DeliveryType string `json:"delivery_type" binding:"required"`
}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrUnknownWilaya = errors.New("unknown wilaya")
)

// Validate checks the form fields beyond binding: the wilaya must be one of
// the enumerated regions and the delivery type one of home/office.
func (f DeliveryForm) Validate() (models.DeliveryType, error) {
	if !models.IsWilaya(f.Wilaya) {
		return "", ErrUnknownWilaya
	}
	return models.MapDeliveryType(f.DeliveryType)
}

// BuildBatch produces one pending order per cart line. All orders share the
// form fields; product id, name and amount are snapshots of each line, with
// amount taken from the line's current effective price. Ids and created_at
// are assigned here, not by the persistence layer.
func BuildBatch(items []models.Product, form DeliveryForm, now time.Time) ([]models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	deliveryType, err := form.Validate()
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(items))
	for _, p := range items {
		orders = append(orders, models.Order{
			ID:           models.NewOrderID(),
			CustomerName: form.CustomerName,
			Phone:        form.Phone,
			Wilaya:       form.Wilaya,
			DeliveryType: deliveryType,
			ProductID:    p.ID,
			ProductName:  p.Name,
			Amount:       p.EffectivePrice(),
			Status:       models.OrderStatusPending,
			CreatedAt:    now,
		})
	}
	return orders, nil
}
