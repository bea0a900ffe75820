// internal/service/ordering/infrastructure/memory_repository.go
package infrastructure

import (
	"context"
	"sync"

	"algashop/internal/service/ordering/domain"
)

// 仓储端口的内存实现，带有与 GORM 实现一致的乐观锁语义，
// 用于应用服务测试与本地运行。内部以数据库行模型存储，
// 借助装配器/拆装器天然获得读写隔离的深拷贝。

// MemoryCustomerRepository 是 CustomerRepository 的内存实现。
type MemoryCustomerRepository struct {
	mu   sync.RWMutex
	rows map[string]CustomerModel
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{rows: make(map[string]CustomerModel)}
}

func (r *MemoryCustomerRepository) OfID(_ context.Context, id domain.CustomerID) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id.String()]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return DisassembleCustomer(row)
}

func (r *MemoryCustomerRepository) Exists(_ context.Context, id domain.CustomerID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id.String()]
	return ok, nil
}

func (r *MemoryCustomerRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryCustomerRepository) Add(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := AssembleCustomerModel(customer)
	stored, ok := r.rows[row.ID]
	if customer.Version() == 0 {
		row.Version = 1
		r.rows[row.ID] = row
		return nil
	}
	if !ok || stored.Version != customer.Version() {
		return domain.ErrStaleAggregate
	}
	row.Version = customer.Version() + 1
	r.rows[row.ID] = row
	return nil
}

// MemoryOrderRepository 是 OrderRepository 的内存实现。
type MemoryOrderRepository struct {
	mu   sync.RWMutex
	rows map[string]OrderModel
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{rows: make(map[string]OrderModel)}
}

func (r *MemoryOrderRepository) OfID(_ context.Context, id domain.OrderID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id.String()]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return DisassembleOrder(row)
}

func (r *MemoryOrderRepository) Exists(_ context.Context, id domain.OrderID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id.String()]
	return ok, nil
}

func (r *MemoryOrderRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryOrderRepository) Add(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := AssembleOrderModel(order)
	stored, ok := r.rows[row.ID]
	if order.Version() == 0 {
		row.Version = 1
		r.rows[row.ID] = row
		return nil
	}
	if !ok || stored.Version != order.Version() {
		return domain.ErrStaleAggregate
	}
	row.Version = order.Version() + 1
	r.rows[row.ID] = row
	return nil
}

// MemoryShoppingCartRepository 是 ShoppingCartRepository 的内存实现。
type MemoryShoppingCartRepository struct {
	mu   sync.RWMutex
	rows map[string]ShoppingCartModel
}

func NewMemoryShoppingCartRepository() *MemoryShoppingCartRepository {
	return &MemoryShoppingCartRepository{rows: make(map[string]ShoppingCartModel)}
}

func (r *MemoryShoppingCartRepository) OfID(_ context.Context, id domain.ShoppingCartID) (*domain.ShoppingCart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id.String()]
	if !ok {
		return nil, domain.ErrShoppingCartNotFound
	}
	return DisassembleShoppingCart(row)
}

func (r *MemoryShoppingCartRepository) OfCustomer(_ context.Context, customerID domain.CustomerID) (*domain.ShoppingCart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.CustomerID == customerID.String() {
			return DisassembleShoppingCart(row)
		}
	}
	return nil, domain.ErrShoppingCartNotFound
}

func (r *MemoryShoppingCartRepository) Exists(_ context.Context, id domain.ShoppingCartID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id.String()]
	return ok, nil
}

func (r *MemoryShoppingCartRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryShoppingCartRepository) Add(_ context.Context, cart *domain.ShoppingCart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := AssembleShoppingCartModel(cart)
	stored, ok := r.rows[row.ID]
	if cart.Version() == 0 {
		row.Version = 1
		r.rows[row.ID] = row
		return nil
	}
	if !ok || stored.Version != cart.Version() {
		return domain.ErrStaleAggregate
	}
	row.Version = cart.Version() + 1
	r.rows[row.ID] = row
	return nil
}
