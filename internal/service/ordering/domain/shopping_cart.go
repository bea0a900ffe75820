// internal/service/ordering/domain/shopping_cart.go
package domain

import "time"

// ShoppingCart 是下单前的购物车聚合，镜像商品的实时可用性与总额。
// 与订单不同，购物车按商品去重：重复加购同一商品会合并数量。
type ShoppingCart struct {
	id          ShoppingCartID
	customerID  CustomerID
	totalAmount Money
	totalItems  Quantity
	createdAt   time.Time
	items       map[ShoppingCartItemID]*ShoppingCartItem
	version     int64
}

// StartShopping 是新购物车的工厂函数。
func StartShopping(customerID CustomerID) (*ShoppingCart, error) {
	if customerID.IsZero() {
		return nil, ErrInvalidID
	}
	return &ShoppingCart{
		id:          NewShoppingCartID(),
		customerID:  customerID,
		totalAmount: MoneyZero,
		totalItems:  QuantityZero,
		createdAt:   time.Now(),
		items:       make(map[ShoppingCartItemID]*ShoppingCartItem),
	}, nil
}

// ExistingShoppingCartParams 是持久化重建购物车的全量具名参数。
type ExistingShoppingCartParams struct {
	ID          ShoppingCartID
	CustomerID  CustomerID
	TotalAmount Money
	TotalItems  Quantity
	CreatedAt   time.Time
	Items       []*ShoppingCartItem
	Version     int64
}

// ExistingShoppingCart 从存储行重建购物车聚合。
func ExistingShoppingCart(p ExistingShoppingCartParams) (*ShoppingCart, error) {
	if p.ID.IsZero() || p.CustomerID.IsZero() {
		return nil, ErrInvalidID
	}
	items := make(map[ShoppingCartItemID]*ShoppingCartItem, len(p.Items))
	for _, item := range p.Items {
		items[item.ID()] = item
	}
	return &ShoppingCart{
		id:          p.ID,
		customerID:  p.CustomerID,
		totalAmount: p.TotalAmount,
		totalItems:  p.TotalItems,
		createdAt:   p.CreatedAt,
		items:       items,
		version:     p.Version,
	}, nil
}

// AddItem 加购商品。商品已在购物车中时合并数量并刷新实时数据，
// 否则创建新条目。
func (c *ShoppingCart) AddItem(product Product, quantity Quantity) error {
	if quantity == QuantityZero {
		return ErrZeroItemQuantity
	}
	if existing := c.findItemByProduct(product.ID()); existing != nil {
		if err := existing.refresh(product); err != nil {
			return err
		}
		existing.changeQuantity(existing.Quantity().Add(quantity))
		c.recalculateTotals()
		return nil
	}
	item, err := brandNewShoppingCartItem(c.id, product, quantity)
	if err != nil {
		return err
	}
	c.items[item.ID()] = item
	c.recalculateTotals()
	return nil
}

// RemoveItem 移除条目并重算总额。
func (c *ShoppingCart) RemoveItem(itemID ShoppingCartItemID) error {
	if _, err := c.findItem(itemID); err != nil {
		return err
	}
	delete(c.items, itemID)
	c.recalculateTotals()
	return nil
}

// ChangeItemQuantity 修改条目数量并重算总额。
func (c *ShoppingCart) ChangeItemQuantity(itemID ShoppingCartItemID, quantity Quantity) error {
	item, err := c.findItem(itemID)
	if err != nil {
		return err
	}
	item.changeQuantity(quantity)
	c.recalculateTotals()
	return nil
}

// RefreshItem 从实时商品刷新对应条目，商品标识不匹配时失败。
func (c *ShoppingCart) RefreshItem(product Product) error {
	item := c.findItemByProduct(product.ID())
	if item == nil {
		return ShoppingCartDoesNotContainItemError{ShoppingCartID: c.id}
	}
	if err := item.refresh(product); err != nil {
		return err
	}
	c.recalculateTotals()
	return nil
}

// Empty 清空购物车，结算成功后调用。
func (c *ShoppingCart) Empty() {
	c.items = make(map[ShoppingCartItemID]*ShoppingCartItem)
	c.recalculateTotals()
}

// IsEmpty 判断购物车是否为空。
func (c *ShoppingCart) IsEmpty() bool { return len(c.items) == 0 }

// ContainsUnavailableItems 判断购物车中是否存在不可用商品。
func (c *ShoppingCart) ContainsUnavailableItems() bool {
	for _, item := range c.items {
		if !item.IsAvailable() {
			return true
		}
	}
	return false
}

func (c *ShoppingCart) ID() ShoppingCartID     { return c.id }
func (c *ShoppingCart) CustomerID() CustomerID { return c.customerID }
func (c *ShoppingCart) TotalAmount() Money     { return c.totalAmount }
func (c *ShoppingCart) TotalItems() Quantity   { return c.totalItems }
func (c *ShoppingCart) CreatedAt() time.Time   { return c.createdAt }
func (c *ShoppingCart) Version() int64         { return c.version }

// Items 返回条目集的副本切片。
func (c *ShoppingCart) Items() []*ShoppingCartItem {
	items := make([]*ShoppingCartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	return items
}

// Item 按标识查找条目。
func (c *ShoppingCart) Item(itemID ShoppingCartItemID) (*ShoppingCartItem, error) {
	return c.findItem(itemID)
}

func (c *ShoppingCart) recalculateTotals() {
	totalAmount := MoneyZero
	totalItems := QuantityZero
	for _, item := range c.items {
		totalAmount = totalAmount.Add(item.TotalAmount())
		totalItems = totalItems.Add(item.Quantity())
	}
	c.totalAmount = totalAmount
	c.totalItems = totalItems
}

func (c *ShoppingCart) findItem(itemID ShoppingCartItemID) (*ShoppingCartItem, error) {
	item, ok := c.items[itemID]
	if !ok {
		return nil, ShoppingCartDoesNotContainItemError{ShoppingCartID: c.id, ItemID: itemID}
	}
	return item, nil
}

func (c *ShoppingCart) findItemByProduct(productID ProductID) *ShoppingCartItem {
	for _, item := range c.items {
		if item.ProductID() == productID {
			return item
		}
	}
	return nil
}
