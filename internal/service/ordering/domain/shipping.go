// internal/service/ordering/domain/shipping.go
package domain

import "time"

// Recipient 是收货人值对象。
type Recipient struct {
	fullName FullName
	document Document
	phone    Phone
}

// RecipientParams 是构造收货人的全量具名参数。
type RecipientParams struct {
	FullName FullName
	Document Document
	Phone    Phone
}

func NewRecipient(p RecipientParams) (Recipient, error) {
	if p.FullName.FirstName() == "" || p.Document.Value() == "" || p.Phone.Value() == "" {
		return Recipient{}, ErrBlankField
	}
	return Recipient{fullName: p.FullName, document: p.Document, phone: p.Phone}, nil
}

func (r Recipient) FullName() FullName { return r.fullName }
func (r Recipient) Document() Document { return r.document }
func (r Recipient) Phone() Phone       { return r.phone }

// Shipping 是订单的配送信息值对象，运费会折算进订单总额。
type Shipping struct {
	cost         Money
	expectedDate time.Time
	recipient    Recipient
	address      Address
}

// ShippingParams 是构造配送信息的全量具名参数。
type ShippingParams struct {
	Cost         Money
	ExpectedDate time.Time
	Recipient    Recipient
	Address      Address
}

func NewShipping(p ShippingParams) (Shipping, error) {
	if p.ExpectedDate.IsZero() {
		return Shipping{}, ErrBlankField
	}
	if p.Recipient.FullName().FirstName() == "" || p.Address.Street() == "" {
		return Shipping{}, ErrBlankField
	}
	return Shipping{
		cost:         p.Cost,
		expectedDate: truncateToDate(p.ExpectedDate),
		recipient:    p.Recipient,
		address:      p.Address,
	}, nil
}

func (s Shipping) Cost() Money             { return s.cost }
func (s Shipping) ExpectedDate() time.Time { return s.expectedDate }
func (s Shipping) Recipient() Recipient    { return s.recipient }
func (s Shipping) Address() Address        { return s.address }
