// internal/service/ordering/infrastructure/mapper.go
package infrastructure

import (
	"time"

	"github.com/pkg/errors"

	"algashop/internal/service/ordering/domain"
)

// 装配器（领域模型 → 数据库模型）与拆装器（数据库模型 → 领域模型）。
// 全部是纯映射函数；拆装方向必须经过领域构造函数重建，
// 保证从存储读出的聚合同样满足不变量。

// AssembleAddressModel 把地址值对象展开为列组。
func AssembleAddressModel(address domain.Address) AddressModel {
	return AddressModel{
		Street:       address.Street(),
		Complement:   address.Complement(),
		Number:       address.Number(),
		Neighborhood: address.Neighborhood(),
		City:         address.City(),
		State:        address.State(),
		ZipCode:      address.ZipCode().Value(),
	}
}

// DisassembleAddress 从列组重建地址值对象。
func DisassembleAddress(model AddressModel) (domain.Address, error) {
	zipCode, err := domain.NewZipCode(model.ZipCode)
	if err != nil {
		return domain.Address{}, errors.Wrap(err, "disassemble address zip code")
	}
	address, err := domain.NewAddress(domain.AddressParams{
		Street:       model.Street,
		Complement:   model.Complement,
		Neighborhood: model.Neighborhood,
		Number:       model.Number,
		City:         model.City,
		State:        model.State,
		ZipCode:      zipCode,
	})
	return address, errors.Wrap(err, "disassemble address")
}

// AssembleCustomerModel 把客户聚合平铺成 customer 行。
func AssembleCustomerModel(customer *domain.Customer) CustomerModel {
	var birthDate *time.Time
	if customer.BirthDate() != nil {
		value := customer.BirthDate().Value()
		birthDate = &value
	}
	return CustomerModel{
		ID:                            customer.ID().String(),
		FirstName:                     customer.FullName().FirstName(),
		LastName:                      customer.FullName().LastName(),
		BirthDate:                     birthDate,
		Email:                         customer.Email().Value(),
		Phone:                         customer.Phone().Value(),
		Document:                      customer.Document().Value(),
		PromotionNotificationsAllowed: customer.PromotionNotificationsAllowed(),
		Archived:                      customer.IsArchived(),
		RegisteredAt:                  customer.RegisteredAt(),
		ArchivedAt:                    customer.ArchivedAt(),
		LoyaltyPoints:                 customer.LoyaltyPoints().Value(),
		Address:                       AssembleAddressModel(customer.Address()),
		Version:                       customer.Version(),
	}
}

// DisassembleCustomer 从 customer 行重建客户聚合。
func DisassembleCustomer(model CustomerModel) (*domain.Customer, error) {
	id, err := domain.ParseCustomerID(model.ID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble customer id")
	}
	fullName, err := domain.NewFullName(model.FirstName, model.LastName)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble customer name")
	}
	var birthDate *domain.BirthDate
	if model.BirthDate != nil {
		value, err := domain.NewBirthDate(*model.BirthDate)
		if err != nil {
			return nil, errors.Wrap(err, "disassemble customer birth date")
		}
		birthDate = &value
	}
	email, err := domain.NewEmail(model.Email)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble customer email")
	}
	phone, err := domain.NewPhone(model.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble customer phone")
	}
	document, err := domain.NewDocument(model.Document)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble customer document")
	}
	points, err := domain.NewLoyaltyPoints(model.LoyaltyPoints)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble customer loyalty points")
	}
	address, err := DisassembleAddress(model.Address)
	if err != nil {
		return nil, err
	}
	return domain.ExistingCustomer(domain.ExistingCustomerParams{
		ID:                            id,
		FullName:                      fullName,
		BirthDate:                     birthDate,
		Email:                         email,
		Phone:                         phone,
		Document:                      document,
		PromotionNotificationsAllowed: model.PromotionNotificationsAllowed,
		Archived:                      model.Archived,
		RegisteredAt:                  model.RegisteredAt,
		ArchivedAt:                    model.ArchivedAt,
		LoyaltyPoints:                 points,
		Address:                       address,
		Version:                       model.Version,
	})
}

// AssembleOrderModel 把订单聚合平铺成 order_header 行及 order_item 子行。
func AssembleOrderModel(order *domain.Order) OrderModel {
	model := OrderModel{
		ID:            order.ID().String(),
		CustomerID:    order.CustomerID().String(),
		TotalAmount:   order.TotalAmount().Value(),
		TotalItems:    order.TotalItems().Value(),
		Status:        order.Status().String(),
		PaymentMethod: order.PaymentMethod().String(),
		PlacedAt:      order.PlacedAt(),
		PaidAt:        order.PaidAt(),
		CanceledAt:    order.CanceledAt(),
		ReadyAt:       order.ReadyAt(),
		Version:       order.Version(),
	}
	if billing := order.Billing(); billing != nil {
		model.Billing = BillingModel{
			FirstName: billing.FullName().FirstName(),
			LastName:  billing.FullName().LastName(),
			Document:  billing.Document().Value(),
			Phone:     billing.Phone().Value(),
			Email:     billing.Email().Value(),
			Address:   AssembleAddressModel(billing.Address()),
		}
	}
	if shipping := order.Shipping(); shipping != nil {
		expectedDate := shipping.ExpectedDate()
		model.Shipping = ShippingModel{
			Cost:         shipping.Cost().Value(),
			ExpectedDate: &expectedDate,
			Recipient: RecipientModel{
				FirstName: shipping.Recipient().FullName().FirstName(),
				LastName:  shipping.Recipient().FullName().LastName(),
				Document:  shipping.Recipient().Document().Value(),
				Phone:     shipping.Recipient().Phone().Value(),
			},
			Address: AssembleAddressModel(shipping.Address()),
		}
	}
	for _, item := range order.Items() {
		model.Items = append(model.Items, AssembleOrderItemModel(item))
	}
	return model
}

// AssembleOrderItemModel 把订单项实体平铺成 order_item 行。
func AssembleOrderItemModel(item *domain.OrderItem) OrderItemModel {
	return OrderItemModel{
		ID:          item.ID().String(),
		OrderID:     item.OrderID().String(),
		ProductID:   item.ProductID().String(),
		ProductName: item.ProductName().Value(),
		Price:       item.Price().Value(),
		Quantity:    item.Quantity().Value(),
		TotalAmount: item.TotalAmount().Value(),
	}
}

// DisassembleOrder 从 order_header 行及其子行重建订单聚合。
func DisassembleOrder(model OrderModel) (*domain.Order, error) {
	id, err := domain.ParseOrderID(model.ID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order id")
	}
	customerID, err := domain.ParseCustomerID(model.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order customer id")
	}
	totalAmount, err := domain.NewMoney(model.TotalAmount)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order total amount")
	}
	totalItems, err := domain.NewQuantity(model.TotalItems)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order total items")
	}
	status, err := domain.ParseOrderStatus(model.Status)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order status")
	}
	paymentMethod, err := domain.ParsePaymentMethod(model.PaymentMethod)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order payment method")
	}
	billing, err := disassembleBilling(model.Billing)
	if err != nil {
		return nil, err
	}
	shipping, err := disassembleShipping(model.Shipping)
	if err != nil {
		return nil, err
	}
	items := make([]*domain.OrderItem, 0, len(model.Items))
	for _, itemModel := range model.Items {
		item, err := DisassembleOrderItem(itemModel)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.ExistingOrder(domain.ExistingOrderParams{
		ID:            id,
		CustomerID:    customerID,
		TotalAmount:   totalAmount,
		TotalItems:    totalItems,
		PlacedAt:      model.PlacedAt,
		PaidAt:        model.PaidAt,
		CanceledAt:    model.CanceledAt,
		ReadyAt:       model.ReadyAt,
		Billing:       billing,
		Shipping:      shipping,
		Status:        status,
		PaymentMethod: paymentMethod,
		Items:         items,
		Version:       model.Version,
	})
}

// DisassembleOrderItem 从 order_item 行重建订单项实体。
func DisassembleOrderItem(model OrderItemModel) (*domain.OrderItem, error) {
	id, err := domain.ParseOrderItemID(model.ID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item id")
	}
	orderID, err := domain.ParseOrderID(model.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item order id")
	}
	productID, err := domain.ParseProductID(model.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item product id")
	}
	productName, err := domain.NewProductName(model.ProductName)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item product name")
	}
	price, err := domain.NewMoney(model.Price)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item price")
	}
	quantity, err := domain.NewQuantity(model.Quantity)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item quantity")
	}
	totalAmount, err := domain.NewMoney(model.TotalAmount)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble order item total amount")
	}
	return domain.ExistingOrderItem(domain.ExistingOrderItemParams{
		ID:          id,
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
		TotalAmount: totalAmount,
	})
}

// 账单列组全部为空表示订单尚未设置账单信息。
func disassembleBilling(model BillingModel) (*domain.Billing, error) {
	if model.FirstName == "" {
		return nil, nil
	}
	fullName, err := domain.NewFullName(model.FirstName, model.LastName)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble billing name")
	}
	document, err := domain.NewDocument(model.Document)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble billing document")
	}
	phone, err := domain.NewPhone(model.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble billing phone")
	}
	email, err := domain.NewEmail(model.Email)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble billing email")
	}
	address, err := DisassembleAddress(model.Address)
	if err != nil {
		return nil, err
	}
	billing, err := domain.NewBilling(domain.BillingParams{
		FullName: fullName,
		Document: document,
		Phone:    phone,
		Email:    email,
		Address:  address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "disassemble billing")
	}
	return &billing, nil
}

// 配送列组无期望日期表示订单尚未设置配送信息。
func disassembleShipping(model ShippingModel) (*domain.Shipping, error) {
	if model.ExpectedDate == nil {
		return nil, nil
	}
	cost, err := domain.NewMoney(model.Cost)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble shipping cost")
	}
	fullName, err := domain.NewFullName(model.Recipient.FirstName, model.Recipient.LastName)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble shipping recipient name")
	}
	document, err := domain.NewDocument(model.Recipient.Document)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble shipping recipient document")
	}
	phone, err := domain.NewPhone(model.Recipient.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble shipping recipient phone")
	}
	recipient, err := domain.NewRecipient(domain.RecipientParams{
		FullName: fullName,
		Document: document,
		Phone:    phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "disassemble shipping recipient")
	}
	address, err := DisassembleAddress(model.Address)
	if err != nil {
		return nil, err
	}
	shipping, err := domain.NewShipping(domain.ShippingParams{
		Cost:         cost,
		ExpectedDate: *model.ExpectedDate,
		Recipient:    recipient,
		Address:      address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "disassemble shipping")
	}
	return &shipping, nil
}

// AssembleShoppingCartModel 把购物车聚合平铺成 shopping_cart 行及子行。
func AssembleShoppingCartModel(cart *domain.ShoppingCart) ShoppingCartModel {
	model := ShoppingCartModel{
		ID:          cart.ID().String(),
		CustomerID:  cart.CustomerID().String(),
		TotalAmount: cart.TotalAmount().Value(),
		TotalItems:  cart.TotalItems().Value(),
		Version:     cart.Version(),
		CreatedAt:   cart.CreatedAt(),
	}
	for _, item := range cart.Items() {
		model.Items = append(model.Items, ShoppingCartItemModel{
			ID:          item.ID().String(),
			CartID:      item.ShoppingCartID().String(),
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName().Value(),
			Price:       item.Price().Value(),
			Quantity:    item.Quantity().Value(),
			Available:   item.IsAvailable(),
			TotalAmount: item.TotalAmount().Value(),
		})
	}
	return model
}

// DisassembleShoppingCart 从 shopping_cart 行及子行重建购物车聚合。
func DisassembleShoppingCart(model ShoppingCartModel) (*domain.ShoppingCart, error) {
	id, err := domain.ParseShoppingCartID(model.ID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart id")
	}
	customerID, err := domain.ParseCustomerID(model.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart customer id")
	}
	totalAmount, err := domain.NewMoney(model.TotalAmount)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart total amount")
	}
	totalItems, err := domain.NewQuantity(model.TotalItems)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart total items")
	}
	items := make([]*domain.ShoppingCartItem, 0, len(model.Items))
	for _, itemModel := range model.Items {
		item, err := disassembleShoppingCartItem(itemModel)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.ExistingShoppingCart(domain.ExistingShoppingCartParams{
		ID:          id,
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
		CreatedAt:   model.CreatedAt,
		Items:       items,
		Version:     model.Version,
	})
}

func disassembleShoppingCartItem(model ShoppingCartItemModel) (*domain.ShoppingCartItem, error) {
	id, err := domain.ParseShoppingCartItemID(model.ID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item id")
	}
	cartID, err := domain.ParseShoppingCartID(model.CartID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item cart id")
	}
	productID, err := domain.ParseProductID(model.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item product id")
	}
	productName, err := domain.NewProductName(model.ProductName)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item product name")
	}
	price, err := domain.NewMoney(model.Price)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item price")
	}
	quantity, err := domain.NewQuantity(model.Quantity)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item quantity")
	}
	totalAmount, err := domain.NewMoney(model.TotalAmount)
	if err != nil {
		return nil, errors.Wrap(err, "disassemble cart item total amount")
	}
	return domain.ExistingShoppingCartItem(domain.ExistingShoppingCartItemParams{
		ID:             id,
		ShoppingCartID: cartID,
		ProductID:      productID,
		ProductName:    productName,
		Price:          price,
		Quantity:       quantity,
		Available:      model.Available,
		TotalAmount:    totalAmount,
	})
}
