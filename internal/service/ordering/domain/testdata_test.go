// internal/service/ordering/domain/testdata_test.go
package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 测试共用的构建函数，任何一步构造失败都直接终止测试。

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustQuantity(t *testing.T, n int) Quantity {
	t.Helper()
	q, err := NewQuantity(n)
	require.NoError(t, err)
	return q
}

func testAddress(t *testing.T) Address {
	t.Helper()
	zip, err := NewZipCode("10001")
	require.NoError(t, err)
	addr, err := NewAddress(AddressParams{
		Street:       "Bourbon Street",
		Complement:   "apt 100",
		Neighborhood: "North Ville",
		Number:       "1134",
		City:         "New York",
		State:        "NY",
		ZipCode:      zip,
	})
	require.NoError(t, err)
	return addr
}

func testFullName(t *testing.T) FullName {
	t.Helper()
	name, err := NewFullName("John", "Doe")
	require.NoError(t, err)
	return name
}

func testBilling(t *testing.T) Billing {
	t.Helper()
	document, err := NewDocument("225-09-1992")
	require.NoError(t, err)
	phone, err := NewPhone("123-111-9911")
	require.NoError(t, err)
	email, err := NewEmail("john.doe@email.com")
	require.NoError(t, err)
	billing, err := NewBilling(BillingParams{
		FullName: testFullName(t),
		Document: document,
		Phone:    phone,
		Email:    email,
		Address:  testAddress(t),
	})
	require.NoError(t, err)
	return billing
}

func testShipping(t *testing.T, cost string) Shipping {
	t.Helper()
	document, err := NewDocument("225-09-1992")
	require.NoError(t, err)
	phone, err := NewPhone("123-111-9911")
	require.NoError(t, err)
	recipient, err := NewRecipient(RecipientParams{
		FullName: testFullName(t),
		Document: document,
		Phone:    phone,
	})
	require.NoError(t, err)
	shipping, err := NewShipping(ShippingParams{
		Cost:         mustMoney(t, cost),
		ExpectedDate: time.Now().AddDate(0, 0, 3),
		Recipient:    recipient,
		Address:      testAddress(t),
	})
	require.NoError(t, err)
	return shipping
}

func testProduct(t *testing.T, name, price string, inStock bool) Product {
	t.Helper()
	productName, err := NewProductName(name)
	require.NoError(t, err)
	product, err := NewProduct(ProductParams{
		ID:      NewProductID(),
		Name:    productName,
		Price:   mustMoney(t, price),
		InStock: inStock,
	})
	require.NoError(t, err)
	return product
}

func testCustomer(t *testing.T) *Customer {
	t.Helper()
	birthDate, err := NewBirthDate(time.Date(1991, 7, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	email, err := NewEmail("john.doe@email.com")
	require.NoError(t, err)
	phone, err := NewPhone("478-256-2504")
	require.NoError(t, err)
	document, err := NewDocument("255-08-0578")
	require.NoError(t, err)
	customer, err := NewCustomer(NewCustomerParams{
		FullName:                      testFullName(t),
		BirthDate:                     &birthDate,
		Email:                         email,
		Phone:                         phone,
		Document:                      document,
		PromotionNotificationsAllowed: true,
		Address:                       testAddress(t),
	})
	require.NoError(t, err)
	return customer
}

// testDraftOrderReadyToPlace 返回一张满足全部下单前置条件的草稿订单。
func testDraftOrderReadyToPlace(t *testing.T) *Order {
	t.Helper()
	order, err := DraftOrder(NewCustomerID())
	require.NoError(t, err)
	require.NoError(t, order.AddItem(testProduct(t, "Notebook X11", "3000.00", true), mustQuantity(t, 2)))
	require.NoError(t, order.ChangeBilling(testBilling(t)))
	require.NoError(t, order.ChangeShipping(testShipping(t, "20.00")))
	require.NoError(t, order.ChangePaymentMethod(PaymentMethodCreditCard))
	return order
}

// testCartWith 返回含给定商品各一件的购物车。
func testCartWith(t *testing.T, products ...Product) *ShoppingCart {
	t.Helper()
	cart, err := StartShopping(NewCustomerID())
	require.NoError(t, err)
	for _, product := range products {
		require.NoError(t, cart.AddItem(product, mustQuantity(t, 1)))
	}
	return cart
}
