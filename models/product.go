package models

import (
	"crypto/rand"
	"strings"

	"github.com/lib/pq"
)

type Product struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	Category           string         `json:"category"` // category slug; not a DB-level foreign key
	Price              float64        `gorm:"not null" json:"price"`
	DiscountPercentage float64        `json:"discount_percentage"`
	Stock              int            `json:"stock"`
	Images             pq.StringArray `gorm:"type:text[]" json:"images"`
	Description        string         `json:"description"`
	Details            string         `json:"details"`
	Features           pq.StringArray `gorm:"type:text[]" json:"features"`
}

// EffectivePrice is the list price after applying the discount percentage.
// Always derived, never stored.
func (p Product) EffectivePrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}

func (p Product) IsDiscounted() bool {
	return p.DiscountPercentage > 0
}

// PrimaryImage returns the first image URL, or "" for a product with no images.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

const productIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewProductID generates a nine character base-36 id for products created
// without an explicit SKU.
func NewProductID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "product00"
	}
	for i, b := range buf {
		buf[i] = productIDAlphabet[int(b)%len(productIDAlphabet)]
	}
	return string(buf)
}

// Spec is one "Key: Value" line parsed out of the free-text details field.
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Specs parses the details field into its "Key: Value" lines.
func (p Product) Specs() []Spec {
	if p.Details == "" {
		return nil
	}
	var specs []Spec
	for _, line := range strings.Split(p.Details, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		specs = append(specs, Spec{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return specs
}

// ExtraDetails returns the details lines that are not "Key: Value" pairs.
func (p Product) ExtraDetails() string {
	var rest []string
	for _, line := range strings.Split(p.Details, "\n") {
		if !strings.Contains(line, ":") {
			rest = append(rest, line)
		}
	}
	return strings.Join(rest, "\n")
}
