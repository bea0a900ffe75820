// internal/service/ordering/domain/customer_test.go
package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	customer := testCustomer(t)

	assert.False(t, customer.ID().IsZero())
	assert.False(t, customer.IsArchived())
	assert.Nil(t, customer.ArchivedAt())
	assert.Equal(t, LoyaltyPointsZero, customer.LoyaltyPoints())
	assert.False(t, customer.RegisteredAt().IsZero())
	assert.True(t, customer.PromotionNotificationsAllowed())
}

func TestCustomerAddLoyaltyPoints(t *testing.T) {
	customer := testCustomer(t)

	points, err := NewLoyaltyPoints(10)
	require.NoError(t, err)
	require.NoError(t, customer.AddLoyaltyPoints(points))
	require.NoError(t, customer.AddLoyaltyPoints(points))
	assert.Equal(t, 20, customer.LoyaltyPoints().Value())

	// 零积分是无操作而不是错误
	require.NoError(t, customer.AddLoyaltyPoints(LoyaltyPointsZero))
	assert.Equal(t, 20, customer.LoyaltyPoints().Value())
}

func TestCustomerArchive(t *testing.T) {
	customer := testCustomer(t)
	originalAddress := customer.Address()

	require.NoError(t, customer.Archive())

	assert.True(t, customer.IsArchived())
	assert.NotNil(t, customer.ArchivedAt())

	// 可识别字段全部被固定哨兵值覆盖
	assert.Equal(t, AnonymizedName, customer.FullName().FirstName())
	assert.Equal(t, AnonymizedName, customer.FullName().LastName())
	assert.Equal(t, AnonymizedPhone, customer.Phone().Value())
	assert.Equal(t, AnonymizedDocument, customer.Document().Value())
	assert.Nil(t, customer.BirthDate())
	assert.False(t, customer.PromotionNotificationsAllowed())

	// 邮箱换成随机地址，只保留固定域名
	assert.True(t, strings.HasSuffix(customer.Email().Value(), "@"+AnonymizedEmailDomain))
	assert.NotEqual(t, "john.doe@email.com", customer.Email().Value())

	// 地址只抹掉门牌和补充信息，城市维度保留
	assert.Equal(t, AnonymizedAddressNumber, customer.Address().Number())
	assert.Empty(t, customer.Address().Complement())
	assert.Equal(t, originalAddress.Street(), customer.Address().Street())
	assert.Equal(t, originalAddress.City(), customer.Address().City())
	assert.Equal(t, originalAddress.ZipCode(), customer.Address().ZipCode())
}

func TestCustomerArchiveIsOneWay(t *testing.T) {
	customer := testCustomer(t)
	require.NoError(t, customer.Archive())

	var archived CustomerArchivedError
	require.ErrorAs(t, customer.Archive(), &archived)
	assert.Equal(t, customer.ID(), archived.CustomerID)
}

func TestArchivedCustomerRejectsAllChanges(t *testing.T) {
	customer := testCustomer(t)
	require.NoError(t, customer.Archive())

	name, err := NewFullName("Jane", "Doe")
	require.NoError(t, err)
	email, err := NewEmail("jane.doe@email.com")
	require.NoError(t, err)
	phone, err := NewPhone("123-456-7890")
	require.NoError(t, err)
	points, err := NewLoyaltyPoints(10)
	require.NoError(t, err)

	var archived CustomerArchivedError
	assert.ErrorAs(t, customer.ChangeName(name), &archived)
	assert.ErrorAs(t, customer.ChangeEmail(email), &archived)
	assert.ErrorAs(t, customer.ChangePhone(phone), &archived)
	assert.ErrorAs(t, customer.ChangeAddress(testAddress(t)), &archived)
	assert.ErrorAs(t, customer.AddLoyaltyPoints(points), &archived)
	assert.ErrorAs(t, customer.EnablePromotionNotifications(), &archived)
	assert.ErrorAs(t, customer.DisablePromotionNotifications(), &archived)
}

func TestCustomerChanges(t *testing.T) {
	customer := testCustomer(t)

	name, err := NewFullName("Jane", "Smith")
	require.NoError(t, err)
	require.NoError(t, customer.ChangeName(name))
	assert.Equal(t, "Jane Smith", customer.FullName().String())

	email, err := NewEmail("jane.smith@email.com")
	require.NoError(t, err)
	require.NoError(t, customer.ChangeEmail(email))
	assert.Equal(t, "jane.smith@email.com", customer.Email().Value())

	require.NoError(t, customer.DisablePromotionNotifications())
	assert.False(t, customer.PromotionNotificationsAllowed())
	require.NoError(t, customer.EnablePromotionNotifications())
	assert.True(t, customer.PromotionNotificationsAllowed())
}

func TestExistingCustomer(t *testing.T) {
	original := testCustomer(t)

	rebuilt, err := ExistingCustomer(ExistingCustomerParams{
		ID:                            original.ID(),
		FullName:                      original.FullName(),
		BirthDate:                     original.BirthDate(),
		Email:                         original.Email(),
		Phone:                         original.Phone(),
		Document:                      original.Document(),
		PromotionNotificationsAllowed: original.PromotionNotificationsAllowed(),
		RegisteredAt:                  original.RegisteredAt(),
		LoyaltyPoints:                 original.LoyaltyPoints(),
		Address:                       original.Address(),
		Version:                       2,
	})
	require.NoError(t, err)
	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.Equal(t, int64(2), rebuilt.Version())

	_, err = ExistingCustomer(ExistingCustomerParams{RegisteredAt: original.RegisteredAt()})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = ExistingCustomer(ExistingCustomerParams{ID: original.ID()})
	assert.ErrorIs(t, err, ErrBlankField)
}
