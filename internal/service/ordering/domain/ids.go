// internal/service/ordering/domain/ids.go
package domain

import "github.com/google/uuid"

// CustomerID 是客户聚合的唯一标识。
type CustomerID struct {
	value uuid.UUID
}

// NewCustomerID 生成一个全新的客户标识。
func NewCustomerID() CustomerID {
	return CustomerID{value: uuid.New()}
}

// ParseCustomerID 从字符串还原客户标识（用于持久化重建）。
func ParseCustomerID(s string) (CustomerID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CustomerID{}, ErrInvalidID
	}
	return CustomerID{value: id}, nil
}

func (id CustomerID) IsZero() bool   { return id.value == uuid.Nil }
func (id CustomerID) String() string { return id.value.String() }

// OrderID 是订单聚合的唯一标识。
type OrderID struct {
	value uuid.UUID
}

func NewOrderID() OrderID {
	return OrderID{value: uuid.New()}
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, ErrInvalidID
	}
	return OrderID{value: id}, nil
}

func (id OrderID) IsZero() bool   { return id.value == uuid.Nil }
func (id OrderID) String() string { return id.value.String() }

// OrderItemID 是订单项在订单内部的唯一标识。
type OrderItemID struct {
	value uuid.UUID
}

func NewOrderItemID() OrderItemID {
	return OrderItemID{value: uuid.New()}
}

func ParseOrderItemID(s string) (OrderItemID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderItemID{}, ErrInvalidID
	}
	return OrderItemID{value: id}, nil
}

func (id OrderItemID) IsZero() bool   { return id.value == uuid.Nil }
func (id OrderItemID) String() string { return id.value.String() }

// ProductID 标识商品目录中的一个商品。
type ProductID struct {
	value uuid.UUID
}

func NewProductID() ProductID {
	return ProductID{value: uuid.New()}
}

func ParseProductID(s string) (ProductID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, ErrInvalidID
	}
	return ProductID{value: id}, nil
}

func (id ProductID) IsZero() bool   { return id.value == uuid.Nil }
func (id ProductID) String() string { return id.value.String() }

// ShoppingCartID 是购物车聚合的唯一标识。
type ShoppingCartID struct {
	value uuid.UUID
}

func NewShoppingCartID() ShoppingCartID {
	return ShoppingCartID{value: uuid.New()}
}

func ParseShoppingCartID(s string) (ShoppingCartID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ShoppingCartID{}, ErrInvalidID
	}
	return ShoppingCartID{value: id}, nil
}

func (id ShoppingCartID) IsZero() bool   { return id.value == uuid.Nil }
func (id ShoppingCartID) String() string { return id.value.String() }

// ShoppingCartItemID 是购物车条目的唯一标识。
type ShoppingCartItemID struct {
	value uuid.UUID
}

func NewShoppingCartItemID() ShoppingCartItemID {
	return ShoppingCartItemID{value: uuid.New()}
}

func ParseShoppingCartItemID(s string) (ShoppingCartItemID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ShoppingCartItemID{}, ErrInvalidID
	}
	return ShoppingCartItemID{value: id}, nil
}

func (id ShoppingCartItemID) IsZero() bool   { return id.value == uuid.Nil }
func (id ShoppingCartItemID) String() string { return id.value.String() }
