// internal/service/ordering/domain/checkout.go
package domain

// CheckoutService 是跨越购物车与订单两个聚合的领域服务：
// 把一个可结算的购物车转换为已下单的订单，并清空购物车。
type CheckoutService struct{}

// Checkout 要求购物车非空且不含不可用商品。购物车条目逐一转入新订单
// （此时完成名称/价格快照），随后设置账单、配送、支付方式并下单。
func (CheckoutService) Checkout(cart *ShoppingCart, billing Billing, shipping Shipping, paymentMethod PaymentMethod) (*Order, error) {
	if cart.IsEmpty() {
		return nil, ShoppingCartCannotCheckoutError{ShoppingCartID: cart.ID(), Reason: CheckoutReasonEmptyCart}
	}
	if cart.ContainsUnavailableItems() {
		return nil, ShoppingCartCannotCheckoutError{ShoppingCartID: cart.ID(), Reason: CheckoutReasonUnavailableItems}
	}

	order, err := DraftOrder(cart.CustomerID())
	if err != nil {
		return nil, err
	}
	for _, item := range cart.Items() {
		product, err := NewProduct(ProductParams{
			ID:      item.ProductID(),
			Name:    item.ProductName(),
			Price:   item.Price(),
			InStock: item.IsAvailable(),
		})
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(product, item.Quantity()); err != nil {
			return nil, err
		}
	}
	if err := order.ChangeBilling(billing); err != nil {
		return nil, err
	}
	if err := order.ChangeShipping(shipping); err != nil {
		return nil, err
	}
	if err := order.ChangePaymentMethod(paymentMethod); err != nil {
		return nil, err
	}
	if err := order.Place(); err != nil {
		return nil, err
	}

	cart.Empty()
	return order, nil
}

// BuyNow 跳过购物车，直接用单个商品生成一张已下单的订单。
func (CheckoutService) BuyNow(product Product, customerID CustomerID, billing Billing, shipping Shipping,
	quantity Quantity, paymentMethod PaymentMethod) (*Order, error) {
	if err := product.CheckOutOfStock(); err != nil {
		return nil, err
	}
	order, err := DraftOrder(customerID)
	if err != nil {
		return nil, err
	}
	if err := order.AddItem(product, quantity); err != nil {
		return nil, err
	}
	if err := order.ChangeBilling(billing); err != nil {
		return nil, err
	}
	if err := order.ChangeShipping(shipping); err != nil {
		return nil, err
	}
	if err := order.ChangePaymentMethod(paymentMethod); err != nil {
		return nil, err
	}
	if err := order.Place(); err != nil {
		return nil, err
	}
	return order, nil
}
