// internal/service/ordering/application/cart_service.go
package application

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"algashop/internal/pkg/metrics"
	"algashop/internal/service/ordering/domain"
)

// ShoppingCartService 负责购物车聚合的业务流程编排。
type ShoppingCartService struct {
	carts   domain.ShoppingCartRepository
	catalog domain.ProductCatalog
	tracer  trace.Tracer
}

func NewShoppingCartService(carts domain.ShoppingCartRepository, catalog domain.ProductCatalog, tracer trace.Tracer) *ShoppingCartService {
	return &ShoppingCartService{carts: carts, catalog: catalog, tracer: tracer}
}

// StartShopping 为客户开启一个新的空购物车，返回购物车标识。
func (s *ShoppingCartService) StartShopping(ctx context.Context, customerID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.StartShopping")
	defer span.End()

	id, err := domain.ParseCustomerID(customerID)
	if err != nil {
		return "", err
	}
	cart, err := domain.StartShopping(id)
	if err != nil {
		return "", err
	}
	if err := s.save(ctx, cart); err != nil {
		span.RecordError(err)
		return "", err
	}
	log.Info().Str("cart_id", cart.ID().String()).Str("customer_id", customerID).Msg("shopping cart started")
	return cart.ID().String(), nil
}

// AddToCart 把商品目录中的当前商品加入购物车，同商品合并数量。
func (s *ShoppingCartService) AddToCart(ctx context.Context, cartID, productID string, quantity int) error {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.AddToCart")
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
	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := cart.AddItem(product, qty); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, cart)
}

// ChangeItemQuantity 调整购物车中某行的数量。
func (s *ShoppingCartService) ChangeItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.ChangeItemQuantity")
	defer span.End()

	qty, err := domain.NewQuantity(quantity)
	if err != nil {
		return err
	}
	id, err := domain.ParseShoppingCartItemID(itemID)
	if err != nil {
		return err
	}
	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := cart.ChangeItemQuantity(id, qty); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, cart)
}

// RemoveItem 从购物车移除一行。
func (s *ShoppingCartService) RemoveItem(ctx context.Context, cartID, itemID string) error {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.RemoveItem")
	defer span.End()

	id, err := domain.ParseShoppingCartItemID(itemID)
	if err != nil {
		return err
	}
	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := cart.RemoveItem(id); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, cart)
}

// RefreshItem 用商品目录中的最新价格和库存状态刷新购物车对应行。
func (s *ShoppingCartService) RefreshItem(ctx context.Context, cartID, productID string) error {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.RefreshItem")
	defer span.End()

	pid, err := domain.ParseProductID(productID)
	if err != nil {
		return err
	}
	product, err := s.catalog.OfID(ctx, pid)
	if err != nil {
		span.RecordError(err)
		return err
	}
	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := cart.RefreshItem(product); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, cart)
}

// Empty 清空购物车但保留购物车本身。
func (s *ShoppingCartService) Empty(ctx context.Context, cartID string) error {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.Empty")
	defer span.End()

	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	cart.Empty()
	return s.save(ctx, cart)
}

// GetCart 按标识读取购物车。
func (s *ShoppingCartService) GetCart(ctx context.Context, cartID string) (*domain.ShoppingCart, error) {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.GetCart")
	defer span.End()

	cart, err := s.load(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cart, nil
}

// GetCustomerCart 按客户标识读取购物车。
func (s *ShoppingCartService) GetCustomerCart(ctx context.Context, customerID string) (*domain.ShoppingCart, error) {
	ctx, span := s.tracer.Start(ctx, "app.ShoppingCart.GetCustomerCart")
	defer span.End()

	id, err := domain.ParseCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.OfCustomer(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cart, nil
}

func (s *ShoppingCartService) load(ctx context.Context, cartID string) (*domain.ShoppingCart, error) {
	id, err := domain.ParseShoppingCartID(cartID)
	if err != nil {
		return nil, err
	}
	return s.carts.OfID(ctx, id)
}

func (s *ShoppingCartService) save(ctx context.Context, cart *domain.ShoppingCart) error {
	err := s.carts.Add(ctx, cart)
	if errors.Is(err, domain.ErrStaleAggregate) {
		metrics.StaleWrites.Inc()
	}
	return err
}
