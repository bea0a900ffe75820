// internal/service/ordering/application/order_service.go
package application

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"algashop/internal/pkg/metrics"
	"algashop/internal/service/ordering/domain"
)

// OrderService 负责订单聚合的业务流程编排。
// 读取路径走缓存（尽力而为），写入路径总是经过仓储的乐观锁。
type OrderService struct {
	orders       domain.OrderRepository
	carts        domain.ShoppingCartRepository
	catalog      domain.ProductCatalog
	cache        domain.OrderCache
	publisher    domain.EventPublisher
	shippingCost domain.ShippingCostService
	origin       domain.ZipCode
	checkout     domain.CheckoutService
	tracer       trace.Tracer
}

func NewOrderService(
	orders domain.OrderRepository,
	carts domain.ShoppingCartRepository,
	catalog domain.ProductCatalog,
	cache domain.OrderCache,
	publisher domain.EventPublisher,
	shippingCost domain.ShippingCostService,
	origin domain.ZipCode,
	tracer trace.Tracer,
) *OrderService {
	return &OrderService{
		orders:       orders,
		carts:        carts,
		catalog:      catalog,
		cache:        cache,
		publisher:    publisher,
		shippingCost: shippingCost,
		origin:       origin,
		tracer:       tracer,
	}
}

// CreateDraft 为客户创建一张空白草稿订单，返回订单标识。
func (s *OrderService) CreateDraft(ctx context.Context, customerID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "app.Order.CreateDraft")
	defer span.End()

	id, err := domain.ParseCustomerID(customerID)
	if err != nil {
		return "", err
	}
	order, err := domain.DraftOrder(id)
	if err != nil {
		return "", err
	}
	if err := s.save(ctx, order); err != nil {
		span.RecordError(err)
		return "", err
	}
	return order.ID().String(), nil
}

// AddItem 从商品目录取当前商品并加入草稿订单。
func (s *OrderService) AddItem(ctx context.Context, orderID, productID string, quantity int) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.AddItem")
	defer span.End()

	qty, err := domain.NewQuantity(quantity)
	if err != nil {
		return err
	}
	pid, err := domain.ParseProductID(productID)
	if err != nil {
		return err
	}
	product, err := s.catalog.OfID(ctx, pid)
	if err != nil {
		span.RecordError(err)
		return err
	}
	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.AddItem(product, qty); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, order)
}

// ChangeShipping 替换草稿订单的配送信息。
func (s *OrderService) ChangeShipping(ctx context.Context, orderID string, input ShippingInput) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.ChangeShipping")
	defer span.End()

	shipping, err := input.toDomain()
	if err != nil {
		return err
	}
	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.ChangeShipping(shipping); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, order)
}

// ChangeBilling 替换草稿订单的账单信息。
func (s *OrderService) ChangeBilling(ctx context.Context, orderID string, input BillingInput) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.ChangeBilling")
	defer span.End()

	billing, err := input.toDomain()
	if err != nil {
		return err
	}
	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.ChangeBilling(billing); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, order)
}

// ChangePaymentMethod 替换草稿订单的支付方式。
func (s *OrderService) ChangePaymentMethod(ctx context.Context, orderID, method string) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.ChangePaymentMethod")
	defer span.End()

	paymentMethod, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return err
	}
	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.ChangePaymentMethod(paymentMethod); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, order)
}

// Place 下单并发布 OrderPlaced 事件。
func (s *OrderService) Place(ctx context.Context, orderID string) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.Place")
	defer span.End()

	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.Place(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.save(ctx, order); err != nil {
		span.RecordError(err)
		return err
	}
	metrics.OrdersPlaced.Inc()
	log.Info().Str("order_id", orderID).Msg("order placed")

	s.publish(ctx, domain.OrderPlacedEvent{
		OrderID:     order.ID().String(),
		CustomerID:  order.CustomerID().String(),
		TotalAmount: order.TotalAmount().String(),
		TotalItems:  order.TotalItems().Value(),
		PlacedAt:    *order.PlacedAt(),
	})
	return nil
}

// MarkAsPaid 标记订单已支付并发布 OrderPaid 事件。
func (s *OrderService) MarkAsPaid(ctx context.Context, orderID string) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.MarkAsPaid")
	defer span.End()

	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.MarkAsPaid(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.save(ctx, order); err != nil {
		span.RecordError(err)
		return err
	}
	s.publish(ctx, domain.OrderPaidEvent{
		OrderID:    order.ID().String(),
		CustomerID: order.CustomerID().String(),
		PaidAt:     *order.PaidAt(),
	})
	return nil
}

// MarkAsReady 标记订单已备妥并发布 OrderReady 事件。
func (s *OrderService) MarkAsReady(ctx context.Context, orderID string) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.MarkAsReady")
	defer span.End()

	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.MarkAsReady(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.save(ctx, order); err != nil {
		span.RecordError(err)
		return err
	}
	s.publish(ctx, domain.OrderReadyEvent{
		OrderID:    order.ID().String(),
		CustomerID: order.CustomerID().String(),
		ReadyAt:    *order.ReadyAt(),
	})
	return nil
}

// Cancel 取消订单并发布 OrderCanceled 事件。
func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	ctx, span := s.tracer.Start(ctx, "app.Order.Cancel")
	defer span.End()

	order, err := s.load(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := order.Cancel(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.save(ctx, order); err != nil {
		span.RecordError(err)
		return err
	}
	metrics.OrdersCanceled.Inc()
	log.Info().Str("order_id", orderID).Msg("order canceled")

	s.publish(ctx, domain.OrderCanceledEvent{
		OrderID:    order.ID().String(),
		CustomerID: order.CustomerID().String(),
		CanceledAt: *order.CanceledAt(),
	})
	return nil
}

// Checkout 把客户当前购物车转换为已下单的订单：
// 领域结算服务生成订单并清空购物车，两个聚合分别保存后发布事件。
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (string, error) {
	ctx, span := s.tracer.Start(ctx, "app.Order.Checkout")
	defer span.End()
	started := time.Now()

	customerID, err := domain.ParseCustomerID(input.CustomerID)
	if err != nil {
		return "", err
	}
	billing, err := input.Billing.toDomain()
	if err != nil {
		return "", err
	}
	shipping, err := input.Shipping.toDomain()
	if err != nil {
		return "", err
	}
	paymentMethod, err := domain.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return "", err
	}

	cart, err := s.carts.OfCustomer(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	order, err := s.checkout.Checkout(cart, billing, shipping, paymentMethod)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	// 先保存购物车：它携带乐观锁检查，并发修改在订单落库前就会失败，
	// 不会留下已下单的孤儿订单。订单本身是新聚合，插入不存在版本冲突。
	if err := s.carts.Add(ctx, cart); err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrStaleAggregate) {
			metrics.StaleWrites.Inc()
		}
		return "", err
	}
	if err := s.save(ctx, order); err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttributes(attribute.String("order.id", order.ID().String()))
	metrics.OrdersPlaced.Inc()
	metrics.CheckoutDuration.Observe(time.Since(started).Seconds())
	log.Info().
		Str("order_id", order.ID().String()).
		Str("customer_id", input.CustomerID).
		Str("total_amount", order.TotalAmount().String()).
		Msg("shopping cart checked out")

	s.publish(ctx, domain.OrderPlacedEvent{
		OrderID:     order.ID().String(),
		CustomerID:  order.CustomerID().String(),
		TotalAmount: order.TotalAmount().String(),
		TotalItems:  order.TotalItems().Value(),
		PlacedAt:    *order.PlacedAt(),
	})
	return order.ID().String(), nil
}

// QuoteShipping 按收货邮编向运费服务询价。
func (s *OrderService) QuoteShipping(ctx context.Context, destinationZip string) (domain.ShippingCalculationResult, error) {
	ctx, span := s.tracer.Start(ctx, "app.Order.QuoteShipping")
	defer span.End()

	destination, err := domain.NewZipCode(destinationZip)
	if err != nil {
		return domain.ShippingCalculationResult{}, err
	}
	result, err := s.shippingCost.Calculate(ctx, domain.ShippingCalculationRequest{
		Origin:      s.origin,
		Destination: destination,
	})
	if err != nil {
		span.RecordError(err)
		return domain.ShippingCalculationResult{}, err
	}
	return result, nil
}

// GetOrder 读取订单，优先命中缓存，未命中回源仓储后回填。
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "app.Order.GetOrder")
	defer span.End()

	id, err := domain.ParseOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if order, ok := s.cache.Get(ctx, id); ok {
		return order, nil
	}
	order, err := s.orders.OfID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.cache.Set(ctx, order)
	return order, nil
}

func (s *OrderService) load(ctx context.Context, orderID string) (*domain.Order, error) {
	id, err := domain.ParseOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return s.orders.OfID(ctx, id)
}

func (s *OrderService) save(ctx context.Context, order *domain.Order) error {
	if err := s.orders.Add(ctx, order); err != nil {
		if errors.Is(err, domain.ErrStaleAggregate) {
			metrics.StaleWrites.Inc()
		}
		return err
	}
	// 保存成功后重写缓存条目，读路径不会在 TTL 内拿到旧状态
	s.cache.Set(ctx, order)
	return nil
}

func (s *OrderService) publish(ctx context.Context, event domain.DomainEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("event", event.EventName()).Msg("failed to publish order event")
	}
}
