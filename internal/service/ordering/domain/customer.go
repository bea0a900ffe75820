// internal/service/ordering/domain/customer.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// 归档时写入记录的固定匿名化哨兵值。归档不是删除：
// 所有可识别字段被覆盖为这些常量，记录本身保留。
const (
	AnonymizedName          = "Anonymous"
	AnonymizedPhone         = "000-000-0000"
	AnonymizedDocument      = "000-00-0000"
	AnonymizedAddressNumber = "Anonymized"
	AnonymizedEmailDomain   = "anonymous.com"
)

// Customer 是客户聚合的根实体。一旦归档，除读取外不允许任何变更，
// 所有修改方法都经过同一个可变更性守卫。
type Customer struct {
	id                            CustomerID
	fullName                      FullName
	birthDate                     *BirthDate
	email                         Email
	phone                         Phone
	document                      Document
	promotionNotificationsAllowed bool
	archived                      bool
	registeredAt                  time.Time
	archivedAt                    *time.Time
	loyaltyPoints                 LoyaltyPoints
	address                       Address
	version                       int64
}

// NewCustomerParams 是注册新客户的全量具名参数。
type NewCustomerParams struct {
	FullName                      FullName
	BirthDate                     *BirthDate
	Email                         Email
	Phone                         Phone
	Document                      Document
	PromotionNotificationsAllowed bool
	Address                       Address
}

// NewCustomer 是全新客户的工厂函数：生成标识、未归档、零积分、记录注册时间。
func NewCustomer(p NewCustomerParams) (*Customer, error) {
	if p.FullName.FirstName() == "" {
		return nil, ErrBlankField
	}
	if p.Email.Value() == "" || p.Phone.Value() == "" || p.Document.Value() == "" {
		return nil, ErrBlankField
	}
	if p.Address.Street() == "" {
		return nil, ErrBlankField
	}
	return &Customer{
		id:                            NewCustomerID(),
		fullName:                      p.FullName,
		birthDate:                     p.BirthDate,
		email:                         p.Email,
		phone:                         p.Phone,
		document:                      p.Document,
		promotionNotificationsAllowed: p.PromotionNotificationsAllowed,
		archived:                      false,
		registeredAt:                  time.Now(),
		loyaltyPoints:                 LoyaltyPointsZero,
		address:                       p.Address,
	}, nil
}

// ExistingCustomerParams 是持久化重建客户的全量具名参数。
type ExistingCustomerParams struct {
	ID                            CustomerID
	FullName                      FullName
	BirthDate                     *BirthDate
	Email                         Email
	Phone                         Phone
	Document                      Document
	PromotionNotificationsAllowed bool
	Archived                      bool
	RegisteredAt                  time.Time
	ArchivedAt                    *time.Time
	LoyaltyPoints                 LoyaltyPoints
	Address                       Address
	Version                       int64
}

// ExistingCustomer 从存储行重建客户聚合。
func ExistingCustomer(p ExistingCustomerParams) (*Customer, error) {
	if p.ID.IsZero() {
		return nil, ErrInvalidID
	}
	if p.RegisteredAt.IsZero() {
		return nil, ErrBlankField
	}
	return &Customer{
		id:                            p.ID,
		fullName:                      p.FullName,
		birthDate:                     p.BirthDate,
		email:                         p.Email,
		phone:                         p.Phone,
		document:                      p.Document,
		promotionNotificationsAllowed: p.PromotionNotificationsAllowed,
		archived:                      p.Archived,
		registeredAt:                  p.RegisteredAt,
		archivedAt:                    p.ArchivedAt,
		loyaltyPoints:                 p.LoyaltyPoints,
		address:                       p.Address,
		version:                       p.Version,
	}, nil
}

// AddLoyaltyPoints 累加积分。零积分是无操作而不是错误，积分只增不减。
func (c *Customer) AddLoyaltyPoints(points LoyaltyPoints) error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	if points == LoyaltyPointsZero {
		return nil
	}
	c.loyaltyPoints = c.loyaltyPoints.Add(points)
	return nil
}

// Archive 归档客户。这是单向操作：第二次调用会以 CustomerArchivedError 失败。
// 所有可识别字段被覆盖为固定哨兵值，出生日期清空，推广通知关闭。
func (c *Customer) Archive() error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	now := time.Now()
	c.archived = true
	c.archivedAt = &now
	c.fullName = FullName{firstName: AnonymizedName, lastName: AnonymizedName}
	c.phone = Phone{value: AnonymizedPhone}
	c.document = Document{value: AnonymizedDocument}
	c.email = Email{value: fmt.Sprintf("%s@%s", uuid.NewString(), AnonymizedEmailDomain)}
	c.birthDate = nil
	c.promotionNotificationsAllowed = false
	c.address = Address{
		street:       c.address.street,
		complement:   "",
		neighborhood: c.address.neighborhood,
		number:       AnonymizedAddressNumber,
		city:         c.address.city,
		state:        c.address.state,
		zipCode:      c.address.zipCode,
	}
	return nil
}

// EnablePromotionNotifications 开启推广通知。
func (c *Customer) EnablePromotionNotifications() error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	c.promotionNotificationsAllowed = true
	return nil
}

// DisablePromotionNotifications 关闭推广通知。
func (c *Customer) DisablePromotionNotifications() error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	c.promotionNotificationsAllowed = false
	return nil
}

// ChangeName 修改姓名。
func (c *Customer) ChangeName(fullName FullName) error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	if fullName.FirstName() == "" {
		return ErrBlankField
	}
	c.fullName = fullName
	return nil
}

// ChangeEmail 修改邮箱。
func (c *Customer) ChangeEmail(email Email) error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	if email.Value() == "" {
		return ErrBlankField
	}
	c.email = email
	return nil
}

// ChangePhone 修改电话。
func (c *Customer) ChangePhone(phone Phone) error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	if phone.Value() == "" {
		return ErrBlankField
	}
	c.phone = phone
	return nil
}

// ChangeAddress 修改地址。
func (c *Customer) ChangeAddress(address Address) error {
	if err := c.verifyIfChangeable(); err != nil {
		return err
	}
	if address.Street() == "" {
		return ErrBlankField
	}
	c.address = address
	return nil
}

func (c *Customer) ID() CustomerID                      { return c.id }
func (c *Customer) FullName() FullName                  { return c.fullName }
func (c *Customer) BirthDate() *BirthDate               { return c.birthDate }
func (c *Customer) Email() Email                        { return c.email }
func (c *Customer) Phone() Phone                        { return c.phone }
func (c *Customer) Document() Document                  { return c.document }
func (c *Customer) PromotionNotificationsAllowed() bool { return c.promotionNotificationsAllowed }
func (c *Customer) IsArchived() bool                    { return c.archived }
func (c *Customer) RegisteredAt() time.Time             { return c.registeredAt }
func (c *Customer) ArchivedAt() *time.Time              { return c.archivedAt }
func (c *Customer) LoyaltyPoints() LoyaltyPoints        { return c.loyaltyPoints }
func (c *Customer) Address() Address                    { return c.address }
func (c *Customer) Version() int64                      { return c.version }

// verifyIfChangeable 是所有修改方法共用的守卫：已归档即拒绝。
func (c *Customer) verifyIfChangeable() error {
	if c.archived {
		return CustomerArchivedError{CustomerID: c.id}
	}
	return nil
}
