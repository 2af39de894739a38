package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 94000, DiscountPercentage: 10}
	assert.InDelta(t, 84600, p.EffectivePrice(), 0.001)

	full := Product{Price: 58000, DiscountPercentage: 0}
	assert.Equal(t, 58000.0, full.EffectivePrice())

	free := Product{Price: 1000, DiscountPercentage: 100}
	assert.Equal(t, 0.0, free.EffectivePrice())
}

func TestEffectivePriceNeverExceedsListPrice(t *testing.T) {
	for _, discount := range []float64{0, 1, 25, 50, 99, 100} {
		p := Product{Price: 32500, DiscountPercentage: discount}
		assert.LessOrEqual(t, p.EffectivePrice(), p.Price)
	}
}

func TestIsDiscounted(t *testing.T) {
	assert.False(t, Product{DiscountPercentage: 0}.IsDiscounted())
	assert.True(t, Product{DiscountPercentage: 10}.IsDiscounted())
}

func TestPrimaryImage(t *testing.T) {
	assert.Equal(t, "", Product{}.PrimaryImage())

	p := Product{Images: []string{"first.jpg", "second.jpg"}}
	assert.Equal(t, "first.jpg", p.PrimaryImage())
}

func TestSpecsParsing(t *testing.T) {
	p := Product{Details: "Clock: 3.2GHz Boost\nSee datasheet for derating curves\nPower: 15W TDP"}

	specs := p.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, Spec{Key: "Clock", Value: "3.2GHz Boost"}, specs[0])
	assert.Equal(t, Spec{Key: "Power", Value: "15W TDP"}, specs[1])

	assert.Equal(t, "See datasheet for derating curves", p.ExtraDetails())
}

func TestSpecsEmptyDetails(t *testing.T) {
	assert.Nil(t, Product{}.Specs())
}

func TestNewProductID(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]{9}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, NewProductID())
	}
}
