// internal/service/ordering/infrastructure/gorm_model.go
package infrastructure

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressModel 是聚合内嵌地址的列组，通过 embeddedPrefix 展开为一组列。
type AddressModel struct {
	Street       string
	Complement   string
	Number       string
	Neighborhood string
	City         string
	State        string
	ZipCode      string `gorm:"type:char(5)"`
}

// CustomerModel 对应数据库中的 customer 表。
// FullName 拆成 first/last 两列，地址内嵌为 address_ 前缀的列组。
type CustomerModel struct {
	ID                            string `gorm:"primaryKey;type:char(36)"`
	FirstName                     string
	LastName                      string
	BirthDate                     *time.Time `gorm:"type:date"`
	Email                         string     `gorm:"index"`
	Phone                         string
	Document                      string
	PromotionNotificationsAllowed bool
	Archived                      bool
	RegisteredAt                  time.Time
	ArchivedAt                    *time.Time
	LoyaltyPoints                 int
	Address                       AddressModel `gorm:"embedded;embeddedPrefix:address_"`
	Version                       int64
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}

func (CustomerModel) TableName() string { return "customer" }

// RecipientModel 是配送信息中收货人的列组。
type RecipientModel struct {
	FirstName string
	LastName  string
	Document  string
	Phone     string
}

// BillingModel 是订单账单信息的列组。全部列为空表示订单尚未设置账单信息。
type BillingModel struct {
	FirstName string
	LastName  string
	Document  string
	Phone     string
	Email     string
	Address   AddressModel `gorm:"embedded;embeddedPrefix:address_"`
}

// ShippingModel 是订单配送信息的列组。
type ShippingModel struct {
	Cost         decimal.Decimal `gorm:"type:decimal(10,2)"`
	ExpectedDate *time.Time      `gorm:"type:date"`
	Recipient    RecipientModel  `gorm:"embedded;embeddedPrefix:recipient_"`
	Address      AddressModel    `gorm:"embedded;embeddedPrefix:address_"`
}

// OrderModel 对应数据库中的 order_header 表，子表 order_item 按订单标识关联。
type OrderModel struct {
	ID            string          `gorm:"primaryKey;type:char(36)"`
	CustomerID    string          `gorm:"type:char(36);index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalItems    int
	Status        string `gorm:"type:varchar(16)"`
	PaymentMethod string `gorm:"type:varchar(32)"`
	PlacedAt      *time.Time
	PaidAt        *time.Time
	CanceledAt    *time.Time
	ReadyAt       *time.Time
	Billing       BillingModel     `gorm:"embedded;embeddedPrefix:billing_"`
	Shipping      ShippingModel    `gorm:"embedded;embeddedPrefix:shipping_"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID"`
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrderModel) TableName() string { return "order_header" }

// OrderItemModel 对应 order_item 子表，保存加购时的商品快照。
type OrderItemModel struct {
	ID          string `gorm:"primaryKey;type:char(36)"`
	OrderID     string `gorm:"type:char(36);index"`
	ProductID   string `gorm:"type:char(36)"`
	ProductName string
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Quantity    int
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (OrderItemModel) TableName() string { return "order_item" }

// ShoppingCartModel 对应 shopping_cart 表。
type ShoppingCartModel struct {
	ID          string          `gorm:"primaryKey;type:char(36)"`
	CustomerID  string          `gorm:"type:char(36);uniqueIndex"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalItems  int
	Items       []ShoppingCartItemModel `gorm:"foreignKey:CartID"`
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ShoppingCartModel) TableName() string { return "shopping_cart" }

// ShoppingCartItemModel 对应 shopping_cart_item 子表，镜像商品实时数据。
type ShoppingCartItemModel struct {
	ID          string `gorm:"primaryKey;type:char(36)"`
	CartID      string `gorm:"type:char(36);index"`
	ProductID   string `gorm:"type:char(36)"`
	ProductName string
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Quantity    int
	Available   bool
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (ShoppingCartItemModel) TableName() string { return "shopping_cart_item" }
