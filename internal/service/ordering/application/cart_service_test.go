// internal/service/ordering/application/cart_service_test.go
package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algashop/internal/service/ordering/domain"
)

func TestShoppingCartServiceFlow(t *testing.T) {
	ctx := context.Background()
	f := newOrderServiceFixture(t)

	customerID := domain.NewCustomerID().String()
	cartID, err := f.cartSvc.StartShopping(ctx, customerID)
	require.NoError(t, err)

	product := f.registerProduct(t, "Notebook X11", "100.00", true)
	require.NoError(t, f.cartSvc.AddToCart(ctx, cartID, product.ID().String(), 1))

	// 重复加购同一商品合并数量
	require.NoError(t, f.cartSvc.AddToCart(ctx, cartID, product.ID().String(), 2))

	cart, err := f.cartSvc.GetCart(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity().Value())
	assert.True(t, cart.TotalAmount().Equal(mustAppMoney(t, "300.00")))

	itemID := cart.Items()[0].ID().String()
	require.NoError(t, f.cartSvc.ChangeItemQuantity(ctx, cartID, itemID, 1))

	cart, err = f.cartSvc.GetCart(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems().Value())

	require.NoError(t, f.cartSvc.RemoveItem(ctx, cartID, itemID))

	cart, err = f.cartSvc.GetCart(ctx, cartID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestShoppingCartServiceRefreshItem(t *testing.T) {
	ctx := context.Background()
	f := newOrderServiceFixture(t)

	cartID, err := f.cartSvc.StartShopping(ctx, domain.NewCustomerID().String())
	require.NoError(t, err)

	product := f.registerProduct(t, "Notebook X11", "100.00", true)
	require.NoError(t, f.cartSvc.AddToCart(ctx, cartID, product.ID().String(), 1))

	// 目录中的商品变价后刷新条目
	repriced, err := domain.NewProduct(domain.ProductParams{
		ID:      product.ID(),
		Name:    product.Name(),
		Price:   mustAppMoney(t, "80.00"),
		InStock: true,
	})
	require.NoError(t, err)
	f.catalog.Register(repriced)

	require.NoError(t, f.cartSvc.RefreshItem(ctx, cartID, product.ID().String()))

	cart, err := f.cartSvc.GetCart(ctx, cartID)
	require.NoError(t, err)
	assert.True(t, cart.TotalAmount().Equal(mustAppMoney(t, "80.00")))
}

func TestShoppingCartServiceEmpty(t *testing.T) {
	ctx := context.Background()
	f := newOrderServiceFixture(t)

	cartID, err := f.cartSvc.StartShopping(ctx, domain.NewCustomerID().String())
	require.NoError(t, err)
	product := f.registerProduct(t, "Notebook X11", "100.00", true)
	require.NoError(t, f.cartSvc.AddToCart(ctx, cartID, product.ID().String(), 2))

	require.NoError(t, f.cartSvc.Empty(ctx, cartID))

	cart, err := f.cartSvc.GetCart(ctx, cartID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestShoppingCartServiceValidation(t *testing.T) {
	ctx := context.Background()
	f := newOrderServiceFixture(t)

	_, err := f.cartSvc.StartShopping(ctx, "not-a-uuid")
	assert.Error(t, err)

	cartID, err := f.cartSvc.StartShopping(ctx, domain.NewCustomerID().String())
	require.NoError(t, err)

	err = f.cartSvc.AddToCart(ctx, cartID, domain.NewProductID().String(), 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	product := f.registerProduct(t, "Notebook X11", "100.00", true)
	err = f.cartSvc.AddToCart(ctx, cartID, product.ID().String(), -1)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)

	err = f.cartSvc.AddToCart(ctx, cartID, product.ID().String(), 0)
	assert.ErrorIs(t, err, domain.ErrZeroItemQuantity)
}
