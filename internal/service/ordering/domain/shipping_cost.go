// internal/service/ordering/domain/shipping_cost.go
package domain

import (
	"context"
	"time"
)

// ShippingCostService 是运费计算端口，由基础设施层实现。
type ShippingCostService interface {
	Calculate(ctx context.Context, request ShippingCalculationRequest) (ShippingCalculationResult, error)
}

// ShippingCalculationRequest 描述一次运费询价。
type ShippingCalculationRequest struct {
	Origin      ZipCode
	Destination ZipCode
}

// ShippingCalculationResult 是运费与期望送达日期。
type ShippingCalculationResult struct {
	Cost         Money
	ExpectedDate time.Time
}
