// internal/service/ordering/domain/order_item.go
package domain

// OrderItem 是订单聚合内部的子实体。加购时对商品名称与价格做快照，
// 此后商品目录中的变更不会影响该条目。
type OrderItem struct {
	id          OrderItemID
	orderID     OrderID
	productID   ProductID
	productName ProductName
	price       Money
	quantity    Quantity
	totalAmount Money
}

// brandNewOrderItem 由商品快照创建新的订单项，只能经由 Order.AddItem 进入聚合。
func brandNewOrderItem(orderID OrderID, product Product, quantity Quantity) (*OrderItem, error) {
	if quantity == QuantityZero {
		return nil, ErrZeroItemQuantity
	}
	item := &OrderItem{
		id:          NewOrderItemID(),
		orderID:     orderID,
		productID:   product.ID(),
		productName: product.Name(),
		price:       product.Price(),
		quantity:    quantity,
	}
	item.recalculateTotal()
	return item, nil
}

// ExistingOrderItemParams 是持久化重建订单项的全量具名参数。
type ExistingOrderItemParams struct {
	ID          OrderItemID
	OrderID     OrderID
	ProductID   ProductID
	ProductName ProductName
	Price       Money
	Quantity    Quantity
	TotalAmount Money
}

// ExistingOrderItem 从存储行重建订单项。
func ExistingOrderItem(p ExistingOrderItemParams) (*OrderItem, error) {
	if p.ID.IsZero() || p.OrderID.IsZero() || p.ProductID.IsZero() {
		return nil, ErrInvalidID
	}
	if p.Quantity == QuantityZero {
		return nil, ErrZeroItemQuantity
	}
	return &OrderItem{
		id:          p.ID,
		orderID:     p.OrderID,
		productID:   p.ProductID,
		productName: p.ProductName,
		price:       p.Price,
		quantity:    p.Quantity,
		totalAmount: p.TotalAmount,
	}, nil
}

// changeQuantity 替换数量并重算行小计，由聚合根在 DRAFT 守卫之后调用。
func (i *OrderItem) changeQuantity(quantity Quantity) error {
	if quantity == QuantityZero {
		return ErrZeroItemQuantity
	}
	i.quantity = quantity
	i.recalculateTotal()
	return nil
}

func (i *OrderItem) recalculateTotal() {
	i.totalAmount = i.price.Multiply(i.quantity)
}

func (i *OrderItem) ID() OrderItemID          { return i.id }
func (i *OrderItem) OrderID() OrderID         { return i.orderID }
func (i *OrderItem) ProductID() ProductID     { return i.productID }
func (i *OrderItem) ProductName() ProductName { return i.productName }
func (i *OrderItem) Price() Money             { return i.price }
func (i *OrderItem) Quantity() Quantity       { return i.quantity }
func (i *OrderItem) TotalAmount() Money       { return i.totalAmount }
