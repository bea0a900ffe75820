// internal/service/ordering/application/dto.go
package application

import (
	"time"

	"algashop/internal/service/ordering/domain"
)

// 应用层入参 DTO 与对应的领域值对象转换。
// 转换失败即构造期校验失败，错误按原样向调用方透传。

// AddressInput 是地址入参。
type AddressInput struct {
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	Number       string `json:"number"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

func (in AddressInput) toDomain() (domain.Address, error) {
	zipCode, err := domain.NewZipCode(in.ZipCode)
	if err != nil {
		return domain.Address{}, err
	}
	return domain.NewAddress(domain.AddressParams{
		Street:       in.Street,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		Number:       in.Number,
		City:         in.City,
		State:        in.State,
		ZipCode:      zipCode,
	})
}

// RegisterCustomerInput 是注册客户的入参。
type RegisterCustomerInput struct {
	FirstName                     string       `json:"firstName"`
	LastName                      string       `json:"lastName"`
	BirthDate                     *time.Time   `json:"birthDate,omitempty"`
	Email                         string       `json:"email"`
	Phone                         string       `json:"phone"`
	Document                      string       `json:"document"`
	PromotionNotificationsAllowed bool         `json:"promotionNotificationsAllowed"`
	Address                       AddressInput `json:"address"`
}

func (in RegisterCustomerInput) toDomain() (domain.NewCustomerParams, error) {
	fullName, err := domain.NewFullName(in.FirstName, in.LastName)
	if err != nil {
		return domain.NewCustomerParams{}, err
	}
	var birthDate *domain.BirthDate
	if in.BirthDate != nil {
		value, err := domain.NewBirthDate(*in.BirthDate)
		if err != nil {
			return domain.NewCustomerParams{}, err
		}
		birthDate = &value
	}
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return domain.NewCustomerParams{}, err
	}
	phone, err := domain.NewPhone(in.Phone)
	if err != nil {
		return domain.NewCustomerParams{}, err
	}
	document, err := domain.NewDocument(in.Document)
	if err != nil {
		return domain.NewCustomerParams{}, err
	}
	address, err := in.Address.toDomain()
	if err != nil {
		return domain.NewCustomerParams{}, err
	}
	return domain.NewCustomerParams{
		FullName:                      fullName,
		BirthDate:                     birthDate,
		Email:                         email,
		Phone:                         phone,
		Document:                      document,
		PromotionNotificationsAllowed: in.PromotionNotificationsAllowed,
		Address:                       address,
	}, nil
}

// BillingInput 是账单信息入参。
type BillingInput struct {
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Document  string       `json:"document"`
	Phone     string       `json:"phone"`
	Email     string       `json:"email"`
	Address   AddressInput `json:"address"`
}

func (in BillingInput) toDomain() (domain.Billing, error) {
	fullName, err := domain.NewFullName(in.FirstName, in.LastName)
	if err != nil {
		return domain.Billing{}, err
	}
	document, err := domain.NewDocument(in.Document)
	if err != nil {
		return domain.Billing{}, err
	}
	phone, err := domain.NewPhone(in.Phone)
	if err != nil {
		return domain.Billing{}, err
	}
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return domain.Billing{}, err
	}
	address, err := in.Address.toDomain()
	if err != nil {
		return domain.Billing{}, err
	}
	return domain.NewBilling(domain.BillingParams{
		FullName: fullName,
		Document: document,
		Phone:    phone,
		Email:    email,
		Address:  address,
	})
}

// ShippingInput 是配送信息入参，Cost 使用十进制字符串避免浮点误差。
type ShippingInput struct {
	Cost               string       `json:"cost"`
	ExpectedDate       time.Time    `json:"expectedDate"`
	RecipientFirstName string       `json:"recipientFirstName"`
	RecipientLastName  string       `json:"recipientLastName"`
	RecipientDocument  string       `json:"recipientDocument"`
	RecipientPhone     string       `json:"recipientPhone"`
	Address            AddressInput `json:"address"`
}

func (in ShippingInput) toDomain() (domain.Shipping, error) {
	cost, err := domain.NewMoneyFromString(in.Cost)
	if err != nil {
		return domain.Shipping{}, err
	}
	fullName, err := domain.NewFullName(in.RecipientFirstName, in.RecipientLastName)
	if err != nil {
		return domain.Shipping{}, err
	}
	document, err := domain.NewDocument(in.RecipientDocument)
	if err != nil {
		return domain.Shipping{}, err
	}
	phone, err := domain.NewPhone(in.RecipientPhone)
	if err != nil {
		return domain.Shipping{}, err
	}
	recipient, err := domain.NewRecipient(domain.RecipientParams{
		FullName: fullName,
		Document: document,
		Phone:    phone,
	})
	if err != nil {
		return domain.Shipping{}, err
	}
	address, err := in.Address.toDomain()
	if err != nil {
		return domain.Shipping{}, err
	}
	return domain.NewShipping(domain.ShippingParams{
		Cost:         cost,
		ExpectedDate: in.ExpectedDate,
		Recipient:    recipient,
		Address:      address,
	})
}

// CheckoutInput 是把客户当前购物车转换为订单的入参。
type CheckoutInput struct {
	CustomerID    string        `json:"customerId"`
	Billing       BillingInput  `json:"billing"`
	Shipping      ShippingInput `json:"shipping"`
	PaymentMethod string        `json:"paymentMethod"`
}
