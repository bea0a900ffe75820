// internal/service/ordering/domain/order_status.go
package domain

// OrderStatus 定义了订单的生命周期状态。
type OrderStatus string

const (
	OrderStatusDraft    OrderStatus = "DRAFT"    // 草稿，唯一可编辑的状态
	OrderStatusPlaced   OrderStatus = "PLACED"   // 已下单，等待支付
	OrderStatusPaid     OrderStatus = "PAID"     // 已支付
	OrderStatusReady    OrderStatus = "READY"    // 已备妥，可发货
	OrderStatusCanceled OrderStatus = "CANCELED" // 已取消，终态
)

// orderStatusTransitions 是状态机的显式邻接表，
// 所有合法迁移都只在这里定义，聚合不做任何散落的条件判断。
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:    {OrderStatusPlaced, OrderStatusCanceled},
	OrderStatusPlaced:   {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:     {OrderStatusReady, OrderStatusCanceled},
	OrderStatusReady:    {OrderStatusCanceled},
	OrderStatusCanceled: {},
}

// ParseOrderStatus 从持久化的字符串还原状态。
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderStatusTransitions[status]; !ok {
		return "", ErrInvalidOrderStatus
	}
	return status, nil
}

// CanChangeTo 判断是否允许迁移到目标状态。
func (s OrderStatus) CanChangeTo(target OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanNotChangeTo 是 CanChangeTo 的取反。
func (s OrderStatus) CanNotChangeTo(target OrderStatus) bool {
	return !s.CanChangeTo(target)
}

func (s OrderStatus) String() string { return string(s) }
