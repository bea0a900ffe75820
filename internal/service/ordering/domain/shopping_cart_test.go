// internal/service/ordering/domain/shopping_cart_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartShopping(t *testing.T) {
	customerID := NewCustomerID()
	cart, err := StartShopping(customerID)
	require.NoError(t, err)

	assert.Equal(t, customerID, cart.CustomerID())
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.TotalAmount().IsZero())
	assert.False(t, cart.CreatedAt().IsZero())

	_, err = StartShopping(CustomerID{})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestShoppingCartAddItem(t *testing.T) {
	product := testProduct(t, "Notebook X11", "3000.00", true)
	cart := testCartWith(t, product)

	require.Len(t, cart.Items(), 1)
	item := cart.Items()[0]
	assert.Equal(t, product.ID(), item.ProductID())
	assert.True(t, item.IsAvailable())
	assert.True(t, cart.TotalAmount().Equal(mustMoney(t, "3000.00")))
}

func TestShoppingCartMergesSameProduct(t *testing.T) {
	// 与订单不同，购物车按商品去重，重复加购合并数量
	product := testProduct(t, "Notebook X11", "100.00", true)
	cart := testCartWith(t, product)

	require.NoError(t, cart.AddItem(product, mustQuantity(t, 2)))

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity().Value())
	assert.True(t, cart.TotalAmount().Equal(mustMoney(t, "300.00")))
}

func TestShoppingCartAddItemZeroQuantity(t *testing.T) {
	cart, err := StartShopping(NewCustomerID())
	require.NoError(t, err)

	err = cart.AddItem(testProduct(t, "Notebook X11", "100.00", true), QuantityZero)
	assert.ErrorIs(t, err, ErrZeroItemQuantity)
}

func TestShoppingCartRemoveItem(t *testing.T) {
	cart := testCartWith(t, testProduct(t, "Notebook X11", "100.00", true))
	itemID := cart.Items()[0].ID()

	require.NoError(t, cart.RemoveItem(itemID))
	assert.True(t, cart.IsEmpty())

	err := cart.RemoveItem(itemID)
	var notContained ShoppingCartDoesNotContainItemError
	assert.ErrorAs(t, err, &notContained)
}

func TestShoppingCartChangeItemQuantity(t *testing.T) {
	cart := testCartWith(t, testProduct(t, "Notebook X11", "100.00", true))
	itemID := cart.Items()[0].ID()

	require.NoError(t, cart.ChangeItemQuantity(itemID, mustQuantity(t, 4)))
	assert.Equal(t, 4, cart.TotalItems().Value())
	assert.True(t, cart.TotalAmount().Equal(mustMoney(t, "400.00")))

	err := cart.ChangeItemQuantity(NewShoppingCartItemID(), mustQuantity(t, 1))
	var notContained ShoppingCartDoesNotContainItemError
	assert.ErrorAs(t, err, &notContained)
}

func TestShoppingCartRefreshItem(t *testing.T) {
	product := testProduct(t, "Notebook X11", "100.00", true)
	cart := testCartWith(t, product)

	// 商品变价和缺货会通过刷新镜像到条目
	updated, err := NewProduct(ProductParams{
		ID:      product.ID(),
		Name:    product.Name(),
		Price:   mustMoney(t, "150.00"),
		InStock: false,
	})
	require.NoError(t, err)

	require.NoError(t, cart.RefreshItem(updated))
	item := cart.Items()[0]
	assert.True(t, item.Price().Equal(mustMoney(t, "150.00")))
	assert.False(t, item.IsAvailable())
	assert.True(t, cart.TotalAmount().Equal(mustMoney(t, "150.00")))
	assert.True(t, cart.ContainsUnavailableItems())
}

func TestShoppingCartRefreshItemNotInCart(t *testing.T) {
	cart := testCartWith(t, testProduct(t, "Notebook X11", "100.00", true))

	err := cart.RefreshItem(testProduct(t, "Mouse", "50.00", true))
	var notContained ShoppingCartDoesNotContainItemError
	assert.ErrorAs(t, err, &notContained)
}

func TestShoppingCartItemRefreshIncompatibleProduct(t *testing.T) {
	product := testProduct(t, "Notebook X11", "100.00", true)
	cart := testCartWith(t, product)
	item := cart.Items()[0]

	other := testProduct(t, "Mouse", "50.00", true)
	err := item.refresh(other)
	var incompatible ShoppingCartItemIncompatibleProductError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, product.ID(), incompatible.ProductID)
}

func TestShoppingCartEmpty(t *testing.T) {
	cart := testCartWith(t,
		testProduct(t, "Notebook X11", "100.00", true),
		testProduct(t, "Mouse", "50.00", true),
	)
	require.False(t, cart.IsEmpty())

	cart.Empty()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.TotalAmount().IsZero())
	assert.Equal(t, QuantityZero, cart.TotalItems())
}

func TestExistingShoppingCart(t *testing.T) {
	original := testCartWith(t, testProduct(t, "Notebook X11", "100.00", true))

	rebuilt, err := ExistingShoppingCart(ExistingShoppingCartParams{
		ID:          original.ID(),
		CustomerID:  original.CustomerID(),
		TotalAmount: original.TotalAmount(),
		TotalItems:  original.TotalItems(),
		CreatedAt:   original.CreatedAt(),
		Items:       original.Items(),
		Version:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.Len(t, rebuilt.Items(), 1)
	assert.Equal(t, int64(1), rebuilt.Version())

	_, err = ExistingShoppingCart(ExistingShoppingCartParams{CustomerID: original.CustomerID()})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestExistingShoppingCartItemZeroQuantity(t *testing.T) {
	cart := testCartWith(t, testProduct(t, "Notebook X11", "100.00", true))
	item := cart.Items()[0]
	require.NoError(t, cart.ChangeItemQuantity(item.ID(), QuantityZero))

	// 重建路径与 ChangeItemQuantity 保持一致，不拒绝零数量
	rebuilt, err := ExistingShoppingCartItem(ExistingShoppingCartItemParams{
		ID:             item.ID(),
		ShoppingCartID: cart.ID(),
		ProductID:      item.ProductID(),
		ProductName:    item.ProductName(),
		Price:          item.Price(),
		Quantity:       QuantityZero,
		Available:      item.IsAvailable(),
		TotalAmount:    item.TotalAmount(),
	})
	require.NoError(t, err)
	assert.Equal(t, QuantityZero, rebuilt.Quantity())
}
