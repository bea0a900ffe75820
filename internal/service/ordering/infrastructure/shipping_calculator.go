// internal/service/ordering/infrastructure/shipping_calculator.go
package infrastructure

import (
	"context"
	"time"

	"algashop/internal/service/ordering/domain"
)

// FlatRateShippingCalculator 是 ShippingCostService 端口的固定费率实现：
// 同城（邮编前两位相同）走低费率次日达，其余走标准费率三日达。
// 真实部署中这里会换成承运商询价服务的客户端适配器。
type FlatRateShippingCalculator struct {
	localCost    domain.Money
	standardCost domain.Money
}

func NewFlatRateShippingCalculator(localCost, standardCost domain.Money) *FlatRateShippingCalculator {
	return &FlatRateShippingCalculator{localCost: localCost, standardCost: standardCost}
}

func (c *FlatRateShippingCalculator) Calculate(_ context.Context, request domain.ShippingCalculationRequest) (domain.ShippingCalculationResult, error) {
	origin := request.Origin.Value()
	destination := request.Destination.Value()
	if origin[:2] == destination[:2] {
		return domain.ShippingCalculationResult{
			Cost:         c.localCost,
			ExpectedDate: time.Now().AddDate(0, 0, 1),
		}, nil
	}
	return domain.ShippingCalculationResult{
		Cost:         c.standardCost,
		ExpectedDate: time.Now().AddDate(0, 0, 3),
	}, nil
}
