package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

func newTestService() (Service, *FakeRepository) {
	repo := NewFakeRepository()
	return NewService(repo, Options{}), repo
}

func validInput(name, sku string) ItemInput {
	quantity := 10
	price := decimal.RequireFromString("99.99")
	return ItemInput{
		Name:     name,
		SKU:      sku,
		Quantity: &quantity,
		Price:    &price,
		Category: "Electronics",
		Location: "Warehouse A",
	}
}

func TestCreate_Valid(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Test Item", "TEST-123"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Item", got.Name)
	assert.Equal(t, "TEST-123", got.SKU)
	assert.Equal(t, 10, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, "Warehouse A", got.Location)
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), ItemInput{})
	require.Error(t, err)

	var fieldErrors domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Len(t, fieldErrors, 4)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "sku")
	assert.Contains(t, fieldErrors, "quantity")
	assert.Contains(t, fieldErrors, "price")
}

func TestCreate_CollectsAllFieldErrors(t *testing.T) {
	svc, _ := newTestService()

	quantity := -5
	input := validInput("", "SKU-1")
	input.Quantity = &quantity

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var fieldErrors domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "quantity")
	assert.NotContains(t, fieldErrors, "sku")
}

func TestCreate_NegativePrice(t *testing.T) {
	svc, _ := newTestService()

	input := validInput("Item", "SKU-1")
	price := decimal.RequireFromString("-0.01")
	input.Price = &price

	_, err := svc.Create(context.Background(), input)

	var fieldErrors domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "price")
}

func TestCreate_ZeroQuantityAndPriceAllowed(t *testing.T) {
	svc, _ := newTestService()

	quantity := 0
	price := decimal.Zero
	input := validInput("Free Item", "FREE-1")
	input.Quantity = &quantity
	input.Price = &price

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 0, created.Quantity)
	assert.True(t, created.Price.IsZero())
}

func TestCreate_NameTooLong(t *testing.T) {
	svc, _ := newTestService()

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.Create(context.Background(), validInput(string(long), "SKU-1"))

	var fieldErrors domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "name")
}

func TestCreate_DuplicateSKU(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("First", "DUPLICATE-123"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, validInput("Second", "DUPLICATE-123"))
	require.Error(t, err)

	var fieldErrors domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "sku")

	// exactly one item with that sku
	page, err := repo.List(ctx, domain.ListFilter{Search: "DUPLICATE-123"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestCreate_IsActiveDefaultsTrue(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validInput("Item", "SKU-1"))
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}

func TestUpdate_KeepOwnSKU(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Old Name", "SAME-SKU"))
	require.NoError(t, err)

	input := validInput("Updated Name", "SAME-SKU")
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "SAME-SKU", updated.SKU)
}

func TestUpdate_TakenSKU(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput("A", "SKU-1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validInput("B", "SKU-2"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, validInput("A", "SKU-2"))
	require.Error(t, err)

	var fieldErrors domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "sku")

	// stored sku unchanged
	stored, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", stored.SKU)
}

func TestUpdate_IsActiveDefaultsFalse(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Item", "SKU-1"))
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	// is_active absent on update means false (unchecked checkbox)
	updated, err := svc.Update(ctx, created.ID, validInput("Item", "SKU-1"))
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 999, validInput("Item", "SKU-1"))
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUpdate_NotFoundWinsOverInvalidPayload(t *testing.T) {
	svc, _ := newTestService()

	// Unknown id with an invalid payload: the missing record decides
	_, err := svc.Update(context.Background(), 999, ItemInput{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	var fieldErrors domain.FieldErrors
	assert.False(t, errors.As(err, &fieldErrors))
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Item", "SKU-1"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrItemNotFound)
}

func TestList_Search(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i, name := range []string{"Laptop Computer", "Desktop Computer", "Mouse"} {
		_, err := svc.Create(ctx, validInput(name, fmt.Sprintf("SKU-%d", i)))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "Laptop", "", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Laptop Computer", page.Items[0].Name)
}

func TestList_EmptySearchDoesNotFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validInput(fmt.Sprintf("Item %d", i), fmt.Sprintf("SKU-%d", i)))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "", "", 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
}

func TestList_CategoryFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	electronics := validInput("TV", "SKU-1")
	_, err := svc.Create(ctx, electronics)
	require.NoError(t, err)

	radio := validInput("Radio", "SKU-2")
	_, err = svc.Create(ctx, radio)
	require.NoError(t, err)

	clothing := validInput("Shirt", "SKU-3")
	clothing.Category = "Clothing"
	_, err = svc.Create(ctx, clothing)
	require.NoError(t, err)

	page, err := svc.List(ctx, "", "Electronics", 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	page, err = svc.List(ctx, "", "NoSuchCategory", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestList_SearchAndCategoryCombine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a := validInput("Laptop Computer", "SKU-1")
	_, err := svc.Create(ctx, a)
	require.NoError(t, err)

	b := validInput("Laptop Bag", "SKU-2")
	b.Category = "Accessories"
	_, err = svc.Create(ctx, b)
	require.NoError(t, err)

	page, err := svc.List(ctx, "Laptop", "Accessories", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Laptop Bag", page.Items[0].Name)
}

func TestList_Pagination(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := svc.Create(ctx, validInput(fmt.Sprintf("Item %02d", i), fmt.Sprintf("SKU-%02d", i)))
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, "", "", 1)
	require.NoError(t, err)
	assert.Len(t, first.Items, domain.DefaultPageSize)
	assert.EqualValues(t, 20, first.TotalItems)
	assert.Equal(t, 2, first.TotalPages)
	// newest first
	assert.Equal(t, "Item 19", first.Items[0].Name)

	second, err := svc.List(ctx, "", "", 2)
	require.NoError(t, err)
	assert.Len(t, second.Items, 5)

	// invalid page clamps to the first page
	clamped, err := svc.List(ctx, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Page)
}

func TestList_CaseSensitivityOption(t *testing.T) {
	repo := NewFakeRepository()
	ctx := context.Background()

	insensitive := NewService(repo, Options{})
	_, err := insensitive.Create(ctx, validInput("Laptop Computer", "SKU-1"))
	require.NoError(t, err)

	page, err := insensitive.List(ctx, "laptop", "", 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	sensitive := NewService(repo, Options{CaseSensitiveSearch: true})
	page, err = sensitive.List(ctx, "laptop", "", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestCategories(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	names := []struct{ name, sku, category string }{
		{"A", "SKU-1", "Tools"},
		{"B", "SKU-2", "Electronics"},
		{"C", "SKU-3", "Electronics"},
		{"D", "SKU-4", ""},
	}
	for _, n := range names {
		input := validInput(n.name, n.sku)
		input.Category = n.category
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Tools"}, categories)
}
