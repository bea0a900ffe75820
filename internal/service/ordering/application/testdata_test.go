// internal/service/ordering/application/testdata_test.go
package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	. "algashop/internal/service/ordering/application"
	"algashop/internal/service/ordering/domain"
	"algashop/internal/service/ordering/infrastructure"
)

func noopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("test")
}

// capturingPublisher 记录发布过的全部事件，供断言使用。
type capturingPublisher struct {
	mu     sync.Mutex
	events []domain.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, event domain.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) Events() []domain.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.DomainEvent(nil), p.events...)
}

// memoryOrderCache 是 OrderCache 的测试实现，用于断言缓存内容随写入刷新。
type memoryOrderCache struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newMemoryOrderCache() *memoryOrderCache {
	return &memoryOrderCache{orders: make(map[string]*domain.Order)}
}

func (c *memoryOrderCache) Get(_ context.Context, id domain.OrderID) (*domain.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	order, ok := c.orders[id.String()]
	return order, ok
}

func (c *memoryOrderCache) Set(_ context.Context, order *domain.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[order.ID().String()] = order
}

// staleCartRepository 读路径委托内存仓储，写路径总是返回版本冲突。
type staleCartRepository struct {
	*infrastructure.MemoryShoppingCartRepository
}

func (r *staleCartRepository) Add(context.Context, *domain.ShoppingCart) error {
	return domain.ErrStaleAggregate
}

func testAddressInput() AddressInput {
	return AddressInput{
		Street:       "Bourbon Street",
		Complement:   "apt 100",
		Neighborhood: "North Ville",
		Number:       "1134",
		City:         "New York",
		State:        "NY",
		ZipCode:      "10001",
	}
}

func testRegisterInput() RegisterCustomerInput {
	birthDate := time.Date(1991, 7, 5, 0, 0, 0, 0, time.UTC)
	return RegisterCustomerInput{
		FirstName:                     "John",
		LastName:                      "Doe",
		BirthDate:                     &birthDate,
		Email:                         "john.doe@email.com",
		Phone:                         "478-256-2504",
		Document:                      "255-08-0578",
		PromotionNotificationsAllowed: true,
		Address:                       testAddressInput(),
	}
}

func testBillingInput() BillingInput {
	return BillingInput{
		FirstName: "John",
		LastName:  "Doe",
		Document:  "225-09-1992",
		Phone:     "123-111-9911",
		Email:     "john.doe@email.com",
		Address:   testAddressInput(),
	}
}

func testShippingInput() ShippingInput {
	return ShippingInput{
		Cost:               "20.00",
		ExpectedDate:       time.Now().AddDate(0, 0, 3),
		RecipientFirstName: "John",
		RecipientLastName:  "Doe",
		RecipientDocument:  "225-09-1992",
		RecipientPhone:     "123-111-9911",
		Address:            testAddressInput(),
	}
}

// orderServiceFixture 组装一套基于内存实现的订单服务依赖。
type orderServiceFixture struct {
	orders       *infrastructure.MemoryOrderRepository
	carts        *infrastructure.MemoryShoppingCartRepository
	catalog      *infrastructure.MemoryProductCatalog
	cache        *memoryOrderCache
	publisher    *capturingPublisher
	shippingCalc *infrastructure.FlatRateShippingCalculator
	origin       domain.ZipCode
	service      *OrderService
	cartSvc      *ShoppingCartService
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	t.Helper()
	orders := infrastructure.NewMemoryOrderRepository()
	carts := infrastructure.NewMemoryShoppingCartRepository()
	catalog := infrastructure.NewMemoryProductCatalog()
	publisher := &capturingPublisher{}

	origin, err := domain.NewZipCode("10001")
	require.NoError(t, err)
	localCost, err := domain.NewMoneyFromString("5.00")
	require.NoError(t, err)
	standardCost, err := domain.NewMoneyFromString("15.00")
	require.NoError(t, err)
	shippingCalc := infrastructure.NewFlatRateShippingCalculator(localCost, standardCost)
	cache := newMemoryOrderCache()

	return &orderServiceFixture{
		orders:       orders,
		carts:        carts,
		catalog:      catalog,
		cache:        cache,
		publisher:    publisher,
		shippingCalc: shippingCalc,
		origin:       origin,
		service: NewOrderService(orders, carts, catalog, cache,
			publisher, shippingCalc, origin, noopTracer()),
		cartSvc: NewShoppingCartService(carts, catalog, noopTracer()),
	}
}

// registerProduct 在目录中登记商品并返回其标识。
func (f *orderServiceFixture) registerProduct(t *testing.T, name, price string, inStock bool) domain.Product {
	t.Helper()
	productName, err := domain.NewProductName(name)
	require.NoError(t, err)
	money, err := domain.NewMoneyFromString(price)
	require.NoError(t, err)
	product, err := domain.NewProduct(domain.ProductParams{
		ID:      domain.NewProductID(),
		Name:    productName,
		Price:   money,
		InStock: inStock,
	})
	require.NoError(t, err)
	f.catalog.Register(product)
	return product
}
