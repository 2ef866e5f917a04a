package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/models"
)

func TestManagerCanAddMenuItem(t *testing.T) {
	f := newFixture()
	svc := f.menuService()
	burger := newBurger()

	require.NoError(t, svc.AddMenuItem(f.manager, burger))

	stored, ok := f.menu.FindByID("i2")
	require.True(t, ok)
	assert.Equal(t, "Burger", stored.Name())
	assert.Equal(t, 1, f.audits.Len())
	assert.True(t, f.audits.VerifyChain())
}

func TestWaiterAndChefCannotAddMenuItem(t *testing.T) {
	f := newFixture()
	svc := f.menuService()

	err := svc.AddMenuItem(f.waiter, newCola())
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.AddMenuItem(f.chef, newPasta())
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, 0, f.menu.Len())
	assert.Equal(t, 0, f.audits.Len())
}

func TestManagerCanUpdatePrice(t *testing.T) {
	f := newFixture()
	f.menu.Save(newPasta())
	svc := f.menuService()

	require.NoError(t, svc.UpdatePrice(f.manager, "i1", decimal.NewFromFloat(15.0)))

	updated, _ := f.menu.FindByID("i1")
	assert.True(t, updated.Price().Equal(decimal.NewFromFloat(15.0)))
	assert.Equal(t, 1, f.audits.Len())
}

func TestUpdatePriceReplacesWithAdjustedCopy(t *testing.T) {
	f := newFixture()
	pasta := newPasta()
	f.menu.Save(pasta)
	svc := f.menuService()

	require.NoError(t, svc.UpdatePrice(f.manager, "i1", decimal.NewFromFloat(15.0)))

	// The original value is untouched; only the stored copy changed.
	assert.True(t, pasta.Price().Equal(decimal.NewFromFloat(12.0)))

	updated, _ := f.menu.FindByID("i1")
	entree, ok := updated.(*models.Entree)
	require.True(t, ok)
	assert.Equal(t, "Pasta", entree.Name())
	assert.Equal(t, []string{"flour", "sauce"}, entree.RequiredIngredients())
	assert.Equal(t, 10, entree.PrepMinutes())
}

func TestUpdatePriceItemNotFound(t *testing.T) {
	f := newFixture()
	svc := f.menuService()

	err := svc.UpdatePrice(f.manager, "bad-id", decimal.NewFromFloat(10.0))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, f.audits.Len())
}

func TestWaiterCannotUpdatePrice(t *testing.T) {
	f := newFixture()
	f.menu.Save(newPasta())
	svc := f.menuService()

	err := svc.UpdatePrice(f.waiter, "i1", decimal.NewFromFloat(20.0))
	assert.ErrorIs(t, err, ErrUnauthorized)

	item, _ := f.menu.FindByID("i1")
	assert.True(t, item.Price().Equal(decimal.NewFromFloat(12.0)))
}

func TestAvailableItemsReturnsOnlyAvailable(t *testing.T) {
	f := newFixture()
	f.menu.Save(newPasta())
	wine := models.NewDrink("i9", "Wine", "Red wine", decimal.NewFromFloat(12.0), true)
	f.menu.Save(wine.WithAvailability(false))
	svc := f.menuService()

	results := svc.AvailableItems()

	require.Len(t, results, 1)
	assert.Equal(t, "i1", results[0].ID())
}

func TestItemsByCategory(t *testing.T) {
	f := newFixture()
	f.menu.Save(newPasta())
	f.menu.Save(newCola())
	svc := f.menuService()

	drinks := svc.ItemsByCategory(models.CategoryDrink)
	require.Len(t, drinks, 1)
	assert.Equal(t, "i3", drinks[0].ID())
}

func TestGetItem(t *testing.T) {
	f := newFixture()
	f.menu.Save(newPasta())
	svc := f.menuService()

	item, err := svc.GetItem("i1")
	require.NoError(t, err)
	assert.Equal(t, "Pasta", item.Name())

	_, err = svc.GetItem("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
