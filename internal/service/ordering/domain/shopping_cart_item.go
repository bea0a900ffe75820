// internal/service/ordering/domain/shopping_cart_item.go
package domain

// ShoppingCartItem 是购物车条目。与订单项不同，它镜像商品的实时价格
// 与可用性而非快照，通过 Refresh 与商品目录保持同步。
type ShoppingCartItem struct {
	id             ShoppingCartItemID
	shoppingCartID ShoppingCartID
	productID      ProductID
	productName    ProductName
	price          Money
	quantity       Quantity
	available      bool
	totalAmount    Money
}

// brandNewShoppingCartItem 由商品创建新的购物车条目，数量不允许为零。
func brandNewShoppingCartItem(cartID ShoppingCartID, product Product, quantity Quantity) (*ShoppingCartItem, error) {
	if quantity == QuantityZero {
		return nil, ErrZeroItemQuantity
	}
	item := &ShoppingCartItem{
		id:             NewShoppingCartItemID(),
		shoppingCartID: cartID,
		productID:      product.ID(),
		productName:    product.Name(),
		price:          product.Price(),
		quantity:       quantity,
		available:      product.InStock(),
	}
	item.recalculateTotal()
	return item, nil
}

// ExistingShoppingCartItemParams 是持久化重建购物车条目的全量具名参数。
type ExistingShoppingCartItemParams struct {
	ID             ShoppingCartItemID
	ShoppingCartID ShoppingCartID
	ProductID      ProductID
	ProductName    ProductName
	Price          Money
	Quantity       Quantity
	Available      bool
	TotalAmount    Money
}

// ExistingShoppingCartItem 从存储行重建购物车条目。
// 不校验零数量：ChangeItemQuantity 允许把条目改到零，已保存的行必须能原样加载。
func ExistingShoppingCartItem(p ExistingShoppingCartItemParams) (*ShoppingCartItem, error) {
	if p.ID.IsZero() || p.ShoppingCartID.IsZero() || p.ProductID.IsZero() {
		return nil, ErrInvalidID
	}
	return &ShoppingCartItem{
		id:             p.ID,
		shoppingCartID: p.ShoppingCartID,
		productID:      p.ProductID,
		productName:    p.ProductName,
		price:          p.Price,
		quantity:       p.Quantity,
		available:      p.Available,
		totalAmount:    p.TotalAmount,
	}, nil
}

// refresh 从实时商品重新同步价格、名称与可用性。
// 传入的商品必须与条目绑定的商品标识一致。
func (i *ShoppingCartItem) refresh(product Product) error {
	if product.ID() != i.productID {
		return ShoppingCartItemIncompatibleProductError{ItemID: i.id, ProductID: i.productID}
	}
	i.price = product.Price()
	i.available = product.InStock()
	i.productName = product.Name()
	i.recalculateTotal()
	return nil
}

// changeQuantity 替换数量并重算小计。
// 注意：与构造路径不同，这里不拒绝零数量，保持与既有行为一致。
func (i *ShoppingCartItem) changeQuantity(quantity Quantity) {
	i.quantity = quantity
	i.recalculateTotal()
}

func (i *ShoppingCartItem) recalculateTotal() {
	i.totalAmount = i.price.Multiply(i.quantity)
}

func (i *ShoppingCartItem) ID() ShoppingCartItemID         { return i.id }
func (i *ShoppingCartItem) ShoppingCartID() ShoppingCartID { return i.shoppingCartID }
func (i *ShoppingCartItem) ProductID() ProductID           { return i.productID }
func (i *ShoppingCartItem) ProductName() ProductName       { return i.productName }
func (i *ShoppingCartItem) Price() Money                   { return i.price }
func (i *ShoppingCartItem) Quantity() Quantity             { return i.quantity }
func (i *ShoppingCartItem) IsAvailable() bool              { return i.available }
func (i *ShoppingCartItem) TotalAmount() Money             { return i.totalAmount }
