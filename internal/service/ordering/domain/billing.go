// internal/service/ordering/domain/billing.go
package domain

// Billing 是订单的账单信息值对象。
type Billing struct {
	fullName FullName
	document Document
	phone    Phone
	email    Email
	address  Address
}

// BillingParams 是构造账单信息的全量具名参数。
type BillingParams struct {
	FullName FullName
	Document Document
	Phone    Phone
	Email    Email
	Address  Address
}

func NewBilling(p BillingParams) (Billing, error) {
	if p.FullName.FirstName() == "" || p.Document.Value() == "" ||
		p.Phone.Value() == "" || p.Email.Value() == "" {
		return Billing{}, ErrBlankField
	}
	if p.Address.Street() == "" {
		return Billing{}, ErrBlankField
	}
	return Billing{
		fullName: p.FullName,
		document: p.Document,
		phone:    p.Phone,
		email:    p.Email,
		address:  p.Address,
	}, nil
}

func (b Billing) FullName() FullName { return b.fullName }
func (b Billing) Document() Document { return b.document }
func (b Billing) Phone() Phone       { return b.phone }
func (b Billing) Email() Email       { return b.email }
func (b Billing) Address() Address   { return b.address }
