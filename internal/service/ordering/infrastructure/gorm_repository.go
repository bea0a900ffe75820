// internal/service/ordering/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"algashop/internal/service/ordering/domain"
)

// 三个聚合仓储的 GORM 实现。Add 是 upsert：版本为零的聚合插入
// （落库版本为 1），其余执行 WHERE id = ? AND version = ? 的比较并递增
// 更新，未命中任何行即认定为陈旧写入，返回 domain.ErrStaleAggregate。

// GormCustomerRepository 是 CustomerRepository 的 GORM 实现。
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) OfID(ctx context.Context, id domain.CustomerID) (*domain.Customer, error) {
	var model CustomerModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, errors.Wrap(err, "query customer")
	}
	return DisassembleCustomer(model)
}

func (r *GormCustomerRepository) Exists(ctx context.Context, id domain.CustomerID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", id.String()).Count(&count).Error
	return count > 0, errors.Wrap(err, "count customer by id")
}

func (r *GormCustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerModel{}).Count(&count).Error
	return count, errors.Wrap(err, "count customers")
}

func (r *GormCustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	model := AssembleCustomerModel(customer)
	if customer.Version() == 0 {
		model.Version = 1
		return errors.Wrap(r.db.WithContext(ctx).Create(&model).Error, "insert customer")
	}
	model.Version = customer.Version() + 1
	result := r.db.WithContext(ctx).Model(&CustomerModel{}).
		Where("id = ? AND version = ?", model.ID, customer.Version()).
		Select("*").Omit("created_at").Updates(&model)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update customer")
	}
	if result.RowsAffected == 0 {
		return domain.ErrStaleAggregate
	}
	return nil
}

// GormOrderRepository 是 OrderRepository 的 GORM 实现。
// 订单头与订单项在同一事务内保存，子行采用整体替换。
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) OfID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "query order")
	}
	return DisassembleOrder(model)
}

func (r *GormOrderRepository) Exists(ctx context.Context, id domain.OrderID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderModel{}).Where("id = ?", id.String()).Count(&count).Error
	return count > 0, errors.Wrap(err, "count order by id")
}

func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderModel{}).Count(&count).Error
	return count, errors.Wrap(err, "count orders")
}

func (r *GormOrderRepository) Add(ctx context.Context, order *domain.Order) error {
	model := AssembleOrderModel(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Version() == 0 {
			model.Version = 1
			return errors.Wrap(tx.Create(&model).Error, "insert order")
		}
		items := model.Items
		model.Items = nil
		model.Version = order.Version() + 1
		result := tx.Model(&OrderModel{}).
			Where("id = ? AND version = ?", model.ID, order.Version()).
			Select("*").Omit("created_at").Updates(&model)
		if result.Error != nil {
			return errors.Wrap(result.Error, "update order")
		}
		if result.RowsAffected == 0 {
			return domain.ErrStaleAggregate
		}
		if err := tx.Where("order_id = ?", model.ID).Delete(&OrderItemModel{}).Error; err != nil {
			return errors.Wrap(err, "delete order items")
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errors.Wrap(err, "insert order items")
			}
		}
		return nil
	})
}

// GormShoppingCartRepository 是 ShoppingCartRepository 的 GORM 实现。
type GormShoppingCartRepository struct {
	db *gorm.DB
}

func NewGormShoppingCartRepository(db *gorm.DB) *GormShoppingCartRepository {
	return &GormShoppingCartRepository{db: db}
}

func (r *GormShoppingCartRepository) OfID(ctx context.Context, id domain.ShoppingCartID) (*domain.ShoppingCart, error) {
	var model ShoppingCartModel
	err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingCartNotFound
		}
		return nil, errors.Wrap(err, "query shopping cart")
	}
	return DisassembleShoppingCart(model)
}

func (r *GormShoppingCartRepository) OfCustomer(ctx context.Context, customerID domain.CustomerID) (*domain.ShoppingCart, error) {
	var model ShoppingCartModel
	err := r.db.WithContext(ctx).Preload("Items").First(&model, "customer_id = ?", customerID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingCartNotFound
		}
		return nil, errors.Wrap(err, "query shopping cart by customer")
	}
	return DisassembleShoppingCart(model)
}

func (r *GormShoppingCartRepository) Exists(ctx context.Context, id domain.ShoppingCartID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ShoppingCartModel{}).Where("id = ?", id.String()).Count(&count).Error
	return count > 0, errors.Wrap(err, "count shopping cart by id")
}

func (r *GormShoppingCartRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ShoppingCartModel{}).Count(&count).Error
	return count, errors.Wrap(err, "count shopping carts")
}

func (r *GormShoppingCartRepository) Add(ctx context.Context, cart *domain.ShoppingCart) error {
	model := AssembleShoppingCartModel(cart)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cart.Version() == 0 {
			model.Version = 1
			return errors.Wrap(tx.Create(&model).Error, "insert shopping cart")
		}
		items := model.Items
		model.Items = nil
		model.Version = cart.Version() + 1
		result := tx.Model(&ShoppingCartModel{}).
			Where("id = ? AND version = ?", model.ID, cart.Version()).
			Select("*").Omit("created_at").Updates(&model)
		if result.Error != nil {
			return errors.Wrap(result.Error, "update shopping cart")
		}
		if result.RowsAffected == 0 {
			return domain.ErrStaleAggregate
		}
		if err := tx.Where("cart_id = ?", model.ID).Delete(&ShoppingCartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "delete shopping cart items")
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errors.Wrap(err, "insert shopping cart items")
			}
		}
		return nil
	})
}
