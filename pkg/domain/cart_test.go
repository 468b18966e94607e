package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/pkg/domain"
)

func beans(id string, cents int) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       "beans-" + id,
		PriceCents: cents,
		Category:   domain.CategoryOriginals,
		InStock:    true,
	}
}

func TestCart_AddMergesByProduct(t *testing.T) {
	cart := domain.NewCart()

	cart.Add(beans("p1", 2500), 1)
	cart.Add(beans("p2", 2000), 2)
	cart.Add(beans("p1", 2500), 3)

	// Same product merges into one line; a new product appends.
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, "p1", cart.Items[0].Product.ID)
	assert.Equal(t, 6, cart.TotalItems())
}

func TestCart_SubtotalExactArithmetic(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(beans("p1", 2500), 2)
	cart.Add(beans("p2", 1999), 3)

	assert.Equal(t, 2*2500+3*1999, cart.SubtotalCents())
	assert.Equal(t, "$109", cart.SubtotalDisplay())
}

func TestCart_SetQuantity(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(beans("p1", 2500), 1)

	cart.SetQuantity("p1", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero or negative removes the line.
	cart.SetQuantity("p1", 0)
	assert.True(t, cart.IsEmpty())

	// Unknown product is a no-op.
	cart.SetQuantity("missing", 3)
	assert.True(t, cart.IsEmpty())
}

func TestCart_DecrementRemovesAtOne(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(beans("p1", 2500), 2)

	cart.Decrement("p1")
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.Decrement("p1")
	assert.True(t, cart.IsEmpty())

	cart.Decrement("p1")
	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveKeepsOrder(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(beans("p1", 2500), 1)
	cart.Add(beans("p2", 2000), 1)
	cart.Add(beans("p3", 1800), 1)

	cart.Remove("p2")

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].Product.ID)
	assert.Equal(t, "p3", cart.Items[1].Product.ID)
}

func TestCart_Clear(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(beans("p1", 2500), 2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0, cart.SubtotalCents())
}

func TestCartItem_Totals(t *testing.T) {
	item := domain.NewCartItem(beans("p1", 2500), 3)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 7500, item.TotalCents())
	assert.Equal(t, "$75", item.TotalDisplay())
}
