// internal/service/ordering/infrastructure/product_catalog.go
package infrastructure

import (
	"context"
	"sync"

	"algashop/internal/service/ordering/domain"
)

// MemoryProductCatalog 是商品目录端口的内存实现。
// 真实部署中这里会换成商品服务的客户端适配器。
type MemoryProductCatalog struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewMemoryProductCatalog() *MemoryProductCatalog {
	return &MemoryProductCatalog{products: make(map[string]domain.Product)}
}

// Register 登记一个商品视图，同一标识重复登记即覆盖。
func (c *MemoryProductCatalog) Register(product domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.ID().String()] = product
}

func (c *MemoryProductCatalog) OfID(_ context.Context, id domain.ProductID) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, ok := c.products[id.String()]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}
