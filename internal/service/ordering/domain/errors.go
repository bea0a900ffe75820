// internal/service/ordering/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// 构造期校验错误：值对象在创建时立即失败，绝不允许非法实例存在。
var (
	ErrInvalidID          = errors.New("invalid identifier")
	ErrBlankField         = errors.New("field cannot be blank")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrBirthDateInFuture  = errors.New("birth date cannot be in the future")
	ErrNegativeMoney      = errors.New("money amount cannot be negative")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrNegativePoints     = errors.New("loyalty points cannot be negative")
	ErrZeroItemQuantity   = errors.New("item quantity cannot be zero")
	ErrInvalidZipCode     = errors.New("zip code must have exactly 5 characters")
	ErrInvalidOrderStatus = errors.New("unknown order status")
	ErrInvalidPayment     = errors.New("unknown payment method")
)

// 仓储层的未找到与并发冲突错误。冲突由持久化边界在保存时检测，
// 领域模型自身不做任何重试。
var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrShoppingCartNotFound = errors.New("shopping cart not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrStaleAggregate       = errors.New("aggregate version is stale")
)

// CustomerArchivedError 表示对已归档客户的任何变更尝试。
// 归档是单向操作，第二次归档同样会以此错误失败。
type CustomerArchivedError struct {
	CustomerID CustomerID
}

func (e CustomerArchivedError) Error() string {
	return fmt.Sprintf("customer %s is archived and cannot be changed", e.CustomerID)
}

// OrderCannotBeEditedError 表示在非 DRAFT 状态下编辑订单。
type OrderCannotBeEditedError struct {
	OrderID OrderID
	Status  OrderStatus
}

func (e OrderCannotBeEditedError) Error() string {
	return fmt.Sprintf("order %s with status %s cannot be edited", e.OrderID, e.Status)
}

// OrderStatusCannotBeChangedError 表示不符合状态机迁移表的状态变更。
// 这是编排层的编程错误，而非可恢复的业务情况。
type OrderStatusCannotBeChangedError struct {
	OrderID OrderID
	From    OrderStatus
	To      OrderStatus
}

func (e OrderStatusCannotBeChangedError) Error() string {
	return fmt.Sprintf("order %s status cannot be changed from %s to %s", e.OrderID, e.From, e.To)
}

// 下单前置条件不满足时的原因。
const (
	PlaceReasonNoShippingInfo  = "shipping info is missing"
	PlaceReasonNoBillingInfo   = "billing info is missing"
	PlaceReasonNoPaymentMethod = "payment method is missing"
	PlaceReasonNoItems         = "order has no items"
)

// OrderCannotBePlacedError 表示订单缺少某个下单前置条件。
type OrderCannotBePlacedError struct {
	OrderID OrderID
	Reason  string
}

func (e OrderCannotBePlacedError) Error() string {
	return fmt.Sprintf("order %s cannot be placed: %s", e.OrderID, e.Reason)
}

// OrderDoesNotContainItemError 表示按条目标识在订单中查找失败。
type OrderDoesNotContainItemError struct {
	OrderID OrderID
	ItemID  OrderItemID
}

func (e OrderDoesNotContainItemError) Error() string {
	return fmt.Sprintf("order %s does not contain item %s", e.OrderID, e.ItemID)
}

// OrderInvalidShippingDeliveryDateError 表示期望送达日期早于当前日期。
type OrderInvalidShippingDeliveryDateError struct {
	OrderID OrderID
}

func (e OrderInvalidShippingDeliveryDateError) Error() string {
	return fmt.Sprintf("order %s shipping expected delivery date is in the past", e.OrderID)
}

// ProductOutOfStockError 表示尝试把缺货商品加入订单。
type ProductOutOfStockError struct {
	ProductID ProductID
}

func (e ProductOutOfStockError) Error() string {
	return fmt.Sprintf("product %s is out of stock", e.ProductID)
}

// ShoppingCartDoesNotContainItemError 表示按条目标识在购物车中查找失败。
type ShoppingCartDoesNotContainItemError struct {
	ShoppingCartID ShoppingCartID
	ItemID         ShoppingCartItemID
}

func (e ShoppingCartDoesNotContainItemError) Error() string {
	return fmt.Sprintf("shopping cart %s does not contain item %s", e.ShoppingCartID, e.ItemID)
}

// ShoppingCartItemIncompatibleProductError 表示刷新条目时商品标识不匹配。
type ShoppingCartItemIncompatibleProductError struct {
	ItemID    ShoppingCartItemID
	ProductID ProductID
}

func (e ShoppingCartItemIncompatibleProductError) Error() string {
	return fmt.Sprintf("shopping cart item %s is bound to product %s and cannot be refreshed from another product", e.ItemID, e.ProductID)
}

// ShoppingCartCannotCheckoutError 表示购物车不满足结算条件（为空或包含不可用商品）。
type ShoppingCartCannotCheckoutError struct {
	ShoppingCartID ShoppingCartID
	Reason         string
}

func (e ShoppingCartCannotCheckoutError) Error() string {
	return fmt.Sprintf("shopping cart %s cannot be checked out: %s", e.ShoppingCartID, e.Reason)
}

const (
	CheckoutReasonEmptyCart        = "cart is empty"
	CheckoutReasonUnavailableItems = "cart contains unavailable items"
)
