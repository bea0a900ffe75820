// internal/service/ordering/domain/product.go
package domain

import (
	"context"
	"strings"
)

// ProductName 是商品名称值对象，不允许为空白。
type ProductName struct {
	value string
}

func NewProductName(value string) (ProductName, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ProductName{}, ErrBlankField
	}
	return ProductName{value: value}, nil
}

func (n ProductName) Value() string  { return n.value }
func (n ProductName) String() string { return n.value }

// Product 是来自商品目录的只读视图。订单在加购时会对名称与价格
// 做快照，后续商品变价不会回溯影响已有订单项。
type Product struct {
	id      ProductID
	name    ProductName
	price   Money
	inStock bool
}

// ProductParams 是构造商品视图的全量具名参数。
type ProductParams struct {
	ID      ProductID
	Name    ProductName
	Price   Money
	InStock bool
}

func NewProduct(p ProductParams) (Product, error) {
	if p.ID.IsZero() {
		return Product{}, ErrInvalidID
	}
	if p.Name.Value() == "" {
		return Product{}, ErrBlankField
	}
	return Product{id: p.ID, name: p.Name, price: p.Price, inStock: p.InStock}, nil
}

func (p Product) ID() ProductID     { return p.id }
func (p Product) Name() ProductName { return p.name }
func (p Product) Price() Money      { return p.price }
func (p Product) InStock() bool     { return p.inStock }

// CheckOutOfStock 在商品缺货时返回 ProductOutOfStockError。
func (p Product) CheckOutOfStock() error {
	if !p.inStock {
		return ProductOutOfStockError{ProductID: p.id}
	}
	return nil
}

// ProductCatalog 是商品目录端口，由基础设施层实现。
type ProductCatalog interface {
	// OfID 按标识查询商品，未找到时返回 ErrProductNotFound。
	OfID(ctx context.Context, id ProductID) (Product, error)
}
