// internal/service/ordering/domain/payment_method.go
package domain

// PaymentMethod 定义了订单支持的支付方式。
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodGatewayBalance PaymentMethod = "GATEWAY_BALANCE"
)

// ParsePaymentMethod 从持久化的字符串还原支付方式，空串表示尚未选择。
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "", PaymentMethodCreditCard, PaymentMethodGatewayBalance:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPayment
	}
}

func (m PaymentMethod) String() string { return string(m) }
