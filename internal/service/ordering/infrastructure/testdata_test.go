// internal/service/ordering/infrastructure/testdata_test.go
package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"algashop/internal/service/ordering/domain"
)

// 测试共用的领域对象构建函数。

func mustMoney(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustQuantity(t *testing.T, n int) domain.Quantity {
	t.Helper()
	q, err := domain.NewQuantity(n)
	require.NoError(t, err)
	return q
}

func newTestAddress(t *testing.T) domain.Address {
	t.Helper()
	zip, err := domain.NewZipCode("10001")
	require.NoError(t, err)
	addr, err := domain.NewAddress(domain.AddressParams{
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

func newTestCustomer(t *testing.T) *domain.Customer {
	t.Helper()
	fullName, err := domain.NewFullName("John", "Doe")
	require.NoError(t, err)
	birthDate, err := domain.NewBirthDate(time.Date(1991, 7, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	email, err := domain.NewEmail("john.doe@email.com")
	require.NoError(t, err)
	phone, err := domain.NewPhone("478-256-2504")
	require.NoError(t, err)
	document, err := domain.NewDocument("255-08-0578")
	require.NoError(t, err)
	customer, err := domain.NewCustomer(domain.NewCustomerParams{
		FullName:                      fullName,
		BirthDate:                     &birthDate,
		Email:                         email,
		Phone:                         phone,
		Document:                      document,
		PromotionNotificationsAllowed: true,
		Address:                       newTestAddress(t),
	})
	require.NoError(t, err)
	return customer
}

func newTestProduct(t *testing.T, name, price string, inStock bool) domain.Product {
	t.Helper()
	productName, err := domain.NewProductName(name)
	require.NoError(t, err)
	product, err := domain.NewProduct(domain.ProductParams{
		ID:      domain.NewProductID(),
		Name:    productName,
		Price:   mustMoney(t, price),
		InStock: inStock,
	})
	require.NoError(t, err)
	return product
}

func newTestBilling(t *testing.T) domain.Billing {
	t.Helper()
	fullName, err := domain.NewFullName("John", "Doe")
	require.NoError(t, err)
	document, err := domain.NewDocument("225-09-1992")
	require.NoError(t, err)
	phone, err := domain.NewPhone("123-111-9911")
	require.NoError(t, err)
	email, err := domain.NewEmail("john.doe@email.com")
	require.NoError(t, err)
	billing, err := domain.NewBilling(domain.BillingParams{
		FullName: fullName,
		Document: document,
		Phone:    phone,
		Email:    email,
		Address:  newTestAddress(t),
	})
	require.NoError(t, err)
	return billing
}

func newTestShipping(t *testing.T) domain.Shipping {
	t.Helper()
	fullName, err := domain.NewFullName("John", "Doe")
	require.NoError(t, err)
	document, err := domain.NewDocument("225-09-1992")
	require.NoError(t, err)
	phone, err := domain.NewPhone("123-111-9911")
	require.NoError(t, err)
	recipient, err := domain.NewRecipient(domain.RecipientParams{
		FullName: fullName,
		Document: document,
		Phone:    phone,
	})
	require.NoError(t, err)
	shipping, err := domain.NewShipping(domain.ShippingParams{
		Cost:         mustMoney(t, "20.00"),
		ExpectedDate: time.Now().AddDate(0, 0, 3),
		Recipient:    recipient,
		Address:      newTestAddress(t),
	})
	require.NoError(t, err)
	return shipping
}

// newTestPlacedOrder 返回一张已下单的订单。
func newTestPlacedOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.DraftOrder(domain.NewCustomerID())
	require.NoError(t, err)
	require.NoError(t, order.AddItem(newTestProduct(t, "Notebook X11", "3000.00", true), mustQuantity(t, 2)))
	require.NoError(t, order.ChangeBilling(newTestBilling(t)))
	require.NoError(t, order.ChangeShipping(newTestShipping(t)))
	require.NoError(t, order.ChangePaymentMethod(domain.PaymentMethodCreditCard))
	require.NoError(t, order.Place())
	return order
}

// newTestCart 返回含一件商品的购物车。
func newTestCart(t *testing.T) *domain.ShoppingCart {
	t.Helper()
	cart, err := domain.StartShopping(domain.NewCustomerID())
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(newTestProduct(t, "Notebook X11", "3000.00", true), mustQuantity(t, 1)))
	return cart
}
