// internal/service/ordering/domain/order.go
package domain

import (
	"time"
)

// Order 是订单聚合的根实体。所有生命周期规则都由它强制执行：
// 只有 DRAFT 订单可以编辑，状态变更必须经过迁移表，
// 总额与总件数是派生值，外部调用方永远不能直接设置。
type Order struct {
	id         OrderID
	customerID CustomerID

	totalAmount Money
	totalItems  Quantity

	placedAt   *time.Time
	paidAt     *time.Time
	canceledAt *time.Time
	readyAt    *time.Time

	billing  *Billing
	shipping *Shipping

	status        OrderStatus
	paymentMethod PaymentMethod

	items map[OrderItemID]*OrderItem

	version int64
}

// DraftOrder 是新订单的工厂函数：DRAFT 状态、零总额、空条目集。
func DraftOrder(customerID CustomerID) (*Order, error) {
	if customerID.IsZero() {
		return nil, ErrInvalidID
	}
	return &Order{
		id:          NewOrderID(),
		customerID:  customerID,
		totalAmount: MoneyZero,
		totalItems:  QuantityZero,
		status:      OrderStatusDraft,
		items:       make(map[OrderItemID]*OrderItem),
	}, nil
}

// ExistingOrderParams 是持久化重建订单的全量具名参数。
type ExistingOrderParams struct {
	ID            OrderID
	CustomerID    CustomerID
	TotalAmount   Money
	TotalItems    Quantity
	PlacedAt      *time.Time
	PaidAt        *time.Time
	CanceledAt    *time.Time
	ReadyAt       *time.Time
	Billing       *Billing
	Shipping      *Shipping
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Items         []*OrderItem
	Version       int64
}

// ExistingOrder 从存储行重建订单聚合。
func ExistingOrder(p ExistingOrderParams) (*Order, error) {
	if p.ID.IsZero() || p.CustomerID.IsZero() {
		return nil, ErrInvalidID
	}
	if _, ok := orderStatusTransitions[p.Status]; !ok {
		return nil, ErrInvalidOrderStatus
	}
	items := make(map[OrderItemID]*OrderItem, len(p.Items))
	for _, item := range p.Items {
		items[item.ID()] = item
	}
	return &Order{
		id:            p.ID,
		customerID:    p.CustomerID,
		totalAmount:   p.TotalAmount,
		totalItems:    p.TotalItems,
		placedAt:      p.PlacedAt,
		paidAt:        p.PaidAt,
		canceledAt:    p.CanceledAt,
		readyAt:       p.ReadyAt,
		billing:       p.Billing,
		shipping:      p.Shipping,
		status:        p.Status,
		paymentMethod: p.PaymentMethod,
		items:         items,
		version:       p.Version,
	}, nil
}

// AddItem 把商品快照加入订单。要求商品有货且订单处于 DRAFT。
// 同一商品可以出现在多个条目中，订单不按商品去重。
func (o *Order) AddItem(product Product, quantity Quantity) error {
	if err := o.verifyIfChangeable(); err != nil {
		return err
	}
	if err := product.CheckOutOfStock(); err != nil {
		return err
	}
	item, err := brandNewOrderItem(o.id, product, quantity)
	if err != nil {
		return err
	}
	o.items[item.ID()] = item
	o.recalculateTotals()
	return nil
}

// ChangeItemQuantity 修改指定条目的数量并重算总额。
func (o *Order) ChangeItemQuantity(itemID OrderItemID, quantity Quantity) error {
	if err := o.verifyIfChangeable(); err != nil {
		return err
	}
	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}
	if err := item.changeQuantity(quantity); err != nil {
		return err
	}
	o.recalculateTotals()
	return nil
}

// RemoveItem 移除指定条目并重算总额。
func (o *Order) RemoveItem(itemID OrderItemID) error {
	if err := o.verifyIfChangeable(); err != nil {
		return err
	}
	if _, err := o.findItem(itemID); err != nil {
		return err
	}
	delete(o.items, itemID)
	o.recalculateTotals()
	return nil
}

// ChangeBilling 替换账单信息，要求 DRAFT。
func (o *Order) ChangeBilling(billing Billing) error {
	if err := o.verifyIfChangeable(); err != nil {
		return err
	}
	o.billing = &billing
	return nil
}

// ChangeShipping 替换配送信息。期望送达日期不能早于当前日期，
// 运费会折算进订单总额。
func (o *Order) ChangeShipping(shipping Shipping) error {
	if err := o.verifyIfChangeable(); err != nil {
		return err
	}
	if shipping.ExpectedDate().Before(truncateToDate(time.Now())) {
		return OrderInvalidShippingDeliveryDateError{OrderID: o.id}
	}
	o.shipping = &shipping
	o.recalculateTotals()
	return nil
}

// ChangePaymentMethod 替换支付方式，要求 DRAFT。
func (o *Order) ChangePaymentMethod(method PaymentMethod) error {
	if method == "" {
		return ErrInvalidPayment
	}
	if err := o.verifyIfChangeable(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

// Place 下单：要求配送、账单、支付方式齐备且条目集非空，
// 每个缺失的前置条件都有独立的失败原因。成功后进入 PLACED 并记录时间戳。
func (o *Order) Place() error {
	if err := o.verifyIfCanChangeToPlaced(); err != nil {
		return err
	}
	if err := o.changeStatus(OrderStatusPlaced); err != nil {
		return err
	}
	now := time.Now()
	o.placedAt = &now
	return nil
}

// MarkAsPaid 标记订单已支付，仅允许 PLACED→PAID。
func (o *Order) MarkAsPaid() error {
	if err := o.changeStatus(OrderStatusPaid); err != nil {
		return err
	}
	now := time.Now()
	o.paidAt = &now
	return nil
}

// MarkAsReady 标记订单已备妥，仅允许 PAID→READY。
func (o *Order) MarkAsReady() error {
	if err := o.changeStatus(OrderStatusReady); err != nil {
		return err
	}
	now := time.Now()
	o.readyAt = &now
	return nil
}

// Cancel 取消订单，允许从迁移表定义的任何非终态进入 CANCELED。
func (o *Order) Cancel() error {
	if err := o.changeStatus(OrderStatusCanceled); err != nil {
		return err
	}
	now := time.Now()
	o.canceledAt = &now
	return nil
}

func (o *Order) IsDraft() bool    { return o.status == OrderStatusDraft }
func (o *Order) IsPlaced() bool   { return o.status == OrderStatusPlaced }
func (o *Order) IsPaid() bool     { return o.status == OrderStatusPaid }
func (o *Order) IsReady() bool    { return o.status == OrderStatusReady }
func (o *Order) IsCanceled() bool { return o.status == OrderStatusCanceled }

func (o *Order) ID() OrderID                  { return o.id }
func (o *Order) CustomerID() CustomerID       { return o.customerID }
func (o *Order) TotalAmount() Money           { return o.totalAmount }
func (o *Order) TotalItems() Quantity         { return o.totalItems }
func (o *Order) PlacedAt() *time.Time         { return o.placedAt }
func (o *Order) PaidAt() *time.Time           { return o.paidAt }
func (o *Order) CanceledAt() *time.Time       { return o.canceledAt }
func (o *Order) ReadyAt() *time.Time          { return o.readyAt }
func (o *Order) Billing() *Billing            { return o.billing }
func (o *Order) Shipping() *Shipping          { return o.shipping }
func (o *Order) Status() OrderStatus          { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Version() int64               { return o.version }

// Items 返回条目集的副本切片，聚合内部的集合不对外暴露。
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item)
	}
	return items
}

// Item 按标识查找条目。
func (o *Order) Item(itemID OrderItemID) (*OrderItem, error) {
	return o.findItem(itemID)
}

// recalculateTotals 在每次条目或配送变动后执行：
// totalAmount = Σ(条目小计) + 运费（无配送信息则为零）；totalItems = Σ(条目数量)。
func (o *Order) recalculateTotals() {
	totalAmount := MoneyZero
	totalItems := QuantityZero
	for _, item := range o.items {
		totalAmount = totalAmount.Add(item.TotalAmount())
		totalItems = totalItems.Add(item.Quantity())
	}
	if o.shipping != nil {
		totalAmount = totalAmount.Add(o.shipping.Cost())
	}
	o.totalAmount = totalAmount
	o.totalItems = totalItems
}

func (o *Order) changeStatus(target OrderStatus) error {
	if o.status.CanNotChangeTo(target) {
		return OrderStatusCannotBeChangedError{OrderID: o.id, From: o.status, To: target}
	}
	o.status = target
	return nil
}

func (o *Order) verifyIfCanChangeToPlaced() error {
	if o.shipping == nil {
		return OrderCannotBePlacedError{OrderID: o.id, Reason: PlaceReasonNoShippingInfo}
	}
	if o.billing == nil {
		return OrderCannotBePlacedError{OrderID: o.id, Reason: PlaceReasonNoBillingInfo}
	}
	if o.paymentMethod == "" {
		return OrderCannotBePlacedError{OrderID: o.id, Reason: PlaceReasonNoPaymentMethod}
	}
	if len(o.items) == 0 {
		return OrderCannotBePlacedError{OrderID: o.id, Reason: PlaceReasonNoItems}
	}
	return nil
}

func (o *Order) findItem(itemID OrderItemID) (*OrderItem, error) {
	item, ok := o.items[itemID]
	if !ok {
		return nil, OrderDoesNotContainItemError{OrderID: o.id, ItemID: itemID}
	}
	return item, nil
}

func (o *Order) verifyIfChangeable() error {
	if !o.IsDraft() {
		return OrderCannotBeEditedError{OrderID: o.id, Status: o.status}
	}
	return nil
}
