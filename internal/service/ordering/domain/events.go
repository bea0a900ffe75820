// internal/service/ordering/domain/events.go
package domain

import (
	"context"
	"time"
)

// DomainEvent 是所有集成事件的公共接口，
// 聚合标识用作消息分区键，保证同一聚合的事件有序。
type DomainEvent interface {
	EventName() string
	AggregateID() string
}

// EventPublisher 是事件发布端口，由基础设施层实现。
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

// OrderPlacedEvent 在订单成功下单后发布。
type OrderPlacedEvent struct {
	OrderID     string    `json:"orderId"`
	CustomerID  string    `json:"customerId"`
	TotalAmount string    `json:"totalAmount"`
	TotalItems  int       `json:"totalItems"`
	PlacedAt    time.Time `json:"placedAt"`
}

func (e OrderPlacedEvent) EventName() string   { return "ordering.order.placed" }
func (e OrderPlacedEvent) AggregateID() string { return e.OrderID }

// OrderPaidEvent 在订单支付完成后发布。
type OrderPaidEvent struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	PaidAt     time.Time `json:"paidAt"`
}

func (e OrderPaidEvent) EventName() string   { return "ordering.order.paid" }
func (e OrderPaidEvent) AggregateID() string { return e.OrderID }

// OrderReadyEvent 在订单备妥后发布。
type OrderReadyEvent struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	ReadyAt    time.Time `json:"readyAt"`
}

func (e OrderReadyEvent) EventName() string   { return "ordering.order.ready" }
func (e OrderReadyEvent) AggregateID() string { return e.OrderID }

// OrderCanceledEvent 在订单取消后发布。
type OrderCanceledEvent struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	CanceledAt time.Time `json:"canceledAt"`
}

func (e OrderCanceledEvent) EventName() string   { return "ordering.order.canceled" }
func (e OrderCanceledEvent) AggregateID() string { return e.OrderID }

// CustomerRegisteredEvent 在新客户注册后发布。
type CustomerRegisteredEvent struct {
	CustomerID   string    `json:"customerId"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func (e CustomerRegisteredEvent) EventName() string   { return "ordering.customer.registered" }
func (e CustomerRegisteredEvent) AggregateID() string { return e.CustomerID }

// CustomerArchivedEvent 在客户归档后发布。事件只携带标识，
// 可识别信息在聚合内已被匿名化。
type CustomerArchivedEvent struct {
	CustomerID string    `json:"customerId"`
	ArchivedAt time.Time `json:"archivedAt"`
}

func (e CustomerArchivedEvent) EventName() string   { return "ordering.customer.archived" }
func (e CustomerArchivedEvent) AggregateID() string { return e.CustomerID }
