// internal/service/ordering/domain/commons.go
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money 是使用精确十进制运算的金额值对象，金额不允许为负。
type Money struct {
	value decimal.Decimal
}

// MoneyZero 是零金额。
var MoneyZero = Money{value: decimal.Zero}

// NewMoney 由十进制数构造金额。
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, ErrNegativeMoney
	}
	return Money{value: value.Round(2)}, nil
}

// NewMoneyFromString 由字符串构造金额，例如 "19.90"。
func NewMoneyFromString(s string) (Money, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return NewMoney(value)
}

// Add 返回两个金额之和。
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Multiply 返回金额乘以数量的结果。
func (m Money) Multiply(quantity Quantity) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Equal 按值比较两个金额。
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) String() string         { return m.value.StringFixed(2) }

// Quantity 是非负的数量值对象。
type Quantity int

// QuantityZero 是零数量。
const QuantityZero Quantity = 0

// NewQuantity 构造数量，负数立即失败。
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return 0, ErrNegativeQuantity
	}
	return Quantity(value), nil
}

// Add 返回两个数量之和。
func (q Quantity) Add(other Quantity) Quantity {
	return q + other
}

func (q Quantity) Value() int     { return int(q) }
func (q Quantity) String() string { return fmt.Sprintf("%d", int(q)) }

// LoyaltyPoints 是客户积分值对象，只增不减，构造时禁止负值。
type LoyaltyPoints int

// LoyaltyPointsZero 是零积分。
const LoyaltyPointsZero LoyaltyPoints = 0

// NewLoyaltyPoints 构造积分，负数立即失败。
func NewLoyaltyPoints(value int) (LoyaltyPoints, error) {
	if value < 0 {
		return 0, ErrNegativePoints
	}
	return LoyaltyPoints(value), nil
}

// Add 返回累加后的积分。
func (p LoyaltyPoints) Add(other LoyaltyPoints) LoyaltyPoints {
	return p + other
}

func (p LoyaltyPoints) Value() int { return int(p) }

// FullName 是姓名值对象，姓和名都不允许为空白。
type FullName struct {
	firstName string
	lastName  string
}

// NewFullName 构造姓名，前后空白会被裁剪。
func NewFullName(firstName, lastName string) (FullName, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return FullName{}, ErrBlankField
	}
	return FullName{firstName: firstName, lastName: lastName}, nil
}

func (n FullName) FirstName() string { return n.firstName }
func (n FullName) LastName() string  { return n.lastName }
func (n FullName) String() string    { return n.firstName + " " + n.lastName }

// BirthDate 是出生日期值对象，不允许晚于当前日期。
type BirthDate struct {
	value time.Time
}

// NewBirthDate 构造出生日期，只保留日期部分。
func NewBirthDate(value time.Time) (BirthDate, error) {
	day := truncateToDate(value)
	if day.After(truncateToDate(time.Now())) {
		return BirthDate{}, ErrBirthDateInFuture
	}
	return BirthDate{value: day}, nil
}

// Age 返回按公历计算的整数年龄。
func (b BirthDate) Age() int {
	now := truncateToDate(time.Now())
	age := now.Year() - b.value.Year()
	anniversary := b.value.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}

func (b BirthDate) Value() time.Time { return b.value }
func (b BirthDate) String() string   { return b.value.Format("2006-01-02") }

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Email 是邮箱值对象，构造时做格式校验。
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Email{}, ErrBlankField
	}
	if !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

// Phone 是电话值对象，不允许为空白。
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Phone{}, ErrBlankField
	}
	return Phone{value: value}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

// Document 是证件号值对象，不允许为空白。
type Document struct {
	value string
}

func NewDocument(value string) (Document, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Document{}, ErrBlankField
	}
	return Document{value: value}, nil
}

func (d Document) Value() string  { return d.value }
func (d Document) String() string { return d.value }

// ZipCode 是邮编值对象，固定为 5 位。
type ZipCode struct {
	value string
}

func NewZipCode(value string) (ZipCode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ZipCode{}, ErrBlankField
	}
	if len(value) != 5 {
		return ZipCode{}, ErrInvalidZipCode
	}
	return ZipCode{value: value}, nil
}

func (z ZipCode) Value() string  { return z.value }
func (z ZipCode) String() string { return z.value }

// Address 是地址值对象；除 complement 外的字段都不允许为空白。
type Address struct {
	street       string
	complement   string
	neighborhood string
	number       string
	city         string
	state        string
	zipCode      ZipCode
}

// AddressParams 是构造地址的全量具名参数。
type AddressParams struct {
	Street       string
	Complement   string
	Neighborhood string
	Number       string
	City         string
	State        string
	ZipCode      ZipCode
}

func NewAddress(p AddressParams) (Address, error) {
	for _, field := range []string{p.Street, p.Neighborhood, p.Number, p.City, p.State} {
		if strings.TrimSpace(field) == "" {
			return Address{}, ErrBlankField
		}
	}
	if p.ZipCode.Value() == "" {
		return Address{}, ErrBlankField
	}
	return Address{
		street:       strings.TrimSpace(p.Street),
		complement:   strings.TrimSpace(p.Complement),
		neighborhood: strings.TrimSpace(p.Neighborhood),
		number:       strings.TrimSpace(p.Number),
		city:         strings.TrimSpace(p.City),
		state:        strings.TrimSpace(p.State),
		zipCode:      p.ZipCode,
	}, nil
}

func (a Address) Street() string       { return a.street }
func (a Address) Complement() string   { return a.complement }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) Number() string       { return a.number }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) ZipCode() ZipCode     { return a.zipCode }
