// internal/service/ordering/domain/repository.go
package domain

import "context"

// 仓储端口定义在领域层，由基础设施层实现。
// Add 是 upsert 语义：版本为零的聚合插入，其余按版本做比较并递增；
// 版本不匹配时必须返回 ErrStaleAggregate，绝不允许静默覆盖。

// CustomerRepository 是客户聚合的持久化端口。
type CustomerRepository interface {
	// OfID 按标识加载客户，未找到时返回 ErrCustomerNotFound。
	OfID(ctx context.Context, id CustomerID) (*Customer, error)
	// Exists 判断客户是否存在。
	Exists(ctx context.Context, id CustomerID) (bool, error)
	// Count 返回已存储的客户总数。
	Count(ctx context.Context) (int64, error)
	// Add 保存客户聚合（插入或带乐观锁校验的更新）。
	Add(ctx context.Context, customer *Customer) error
}

// OrderRepository 是订单聚合的持久化端口。
type OrderRepository interface {
	OfID(ctx context.Context, id OrderID) (*Order, error)
	Exists(ctx context.Context, id OrderID) (bool, error)
	Count(ctx context.Context) (int64, error)
	Add(ctx context.Context, order *Order) error
}

// ShoppingCartRepository 是购物车聚合的持久化端口。
type ShoppingCartRepository interface {
	OfID(ctx context.Context, id ShoppingCartID) (*ShoppingCart, error)
	// OfCustomer 按客户标识加载其当前购物车。
	OfCustomer(ctx context.Context, customerID CustomerID) (*ShoppingCart, error)
	Exists(ctx context.Context, id ShoppingCartID) (bool, error)
	Count(ctx context.Context) (int64, error)
	Add(ctx context.Context, cart *ShoppingCart) error
}

// OrderCache 是订单读取路径的缓存端口，尽力而为，不影响正确性。
type OrderCache interface {
	Get(ctx context.Context, id OrderID) (*Order, bool)
	Set(ctx context.Context, order *Order)
}
