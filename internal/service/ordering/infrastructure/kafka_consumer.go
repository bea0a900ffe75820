// internal/service/ordering/infrastructure/kafka_consumer.go
package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"algashop/internal/service/ordering/application"
)

// NewCommandsReader 构建命令主题的消费者。
func NewCommandsReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// 命令类型，对应消息体 envelope 的 type 字段。
const (
	CommandRegisterCustomer = "customer.register"
	CommandArchiveCustomer  = "customer.archive"
	CommandStartShopping    = "cart.start"
	CommandAddToCart        = "cart.add_item"
	CommandCheckout         = "order.checkout"
	CommandMarkOrderPaid    = "order.mark_paid"
	CommandMarkOrderReady   = "order.mark_ready"
	CommandCancelOrder      = "order.cancel"
)

type commandEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type customerRefPayload struct {
	CustomerID string `json:"customer_id"`
}

type orderRefPayload struct {
	OrderID string `json:"order_id"`
}

type addToCartPayload struct {
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CommandConsumer 是一个驱动适配器，监听命令消息并驱动应用服务。
type CommandConsumer struct {
	reader    *kafka.Reader
	customers *application.CustomerService
	orders    *application.OrderService
	carts     *application.ShoppingCartService
	wg        sync.WaitGroup
}

func NewCommandConsumer(
	reader *kafka.Reader,
	customers *application.CustomerService,
	orders *application.OrderService,
	carts *application.ShoppingCartService,
) *CommandConsumer {
	return &CommandConsumer{
		reader:    reader,
		customers: customers,
		orders:    orders,
		carts:     carts,
	}
}

// Start 开始消费。长期运行，ctx 取消后正常退出。
func (c *CommandConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		log.Info().Str("topic", c.reader.Config().Topic).Msg("command consumer started")
		for {
			// 用 FetchMessage 而不是 ReadMessage，以便自己控制提交时机和退出逻辑
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Info().Msg("command consumer shutting down")
					return
				}
				log.Error().Err(err).Msg("could not fetch message, retrying")
				time.Sleep(time.Second)
				continue
			}

			c.processMessage(ctx, msg)

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				log.Error().Err(err).Msg("failed to commit messages")
			}
		}
	}()
}

// Stop 优雅地停止消费者。
func (c *CommandConsumer) Stop() {
	c.reader.Close()
	c.wg.Wait()
	log.Info().Msg("command consumer stopped")
}

func (c *CommandConsumer) processMessage(parentCtx context.Context, msg kafka.Message) {
	var envelope commandEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		// 无法解析的消息跳过，生产环境应移至死信队列
		log.Error().Err(err).Msg("failed to unmarshal command envelope, skipping")
		return
	}

	// 从消息头重建追踪上下文，让命令处理挂在上游的 trace 下
	carrier := kafkaHeaderCarrier(msg.Headers)
	ctx := otel.GetTextMapPropagator().Extract(parentCtx, &carrier)

	if err := c.dispatch(ctx, envelope); err != nil {
		log.Error().Err(err).Str("command", envelope.Type).Msg("failed to handle command")
		return
	}
	log.Info().Str("command", envelope.Type).Msg("command handled")
}

func (c *CommandConsumer) dispatch(ctx context.Context, envelope commandEnvelope) error {
	switch envelope.Type {
	case CommandRegisterCustomer:
		var input application.RegisterCustomerInput
		if err := json.Unmarshal(envelope.Payload, &input); err != nil {
			return err
		}
		_, err := c.customers.Register(ctx, input)
		return err
	case CommandArchiveCustomer:
		var payload customerRefPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return err
		}
		return c.customers.Archive(ctx, payload.CustomerID)
	case CommandStartShopping:
		var payload customerRefPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return err
		}
		_, err := c.carts.StartShopping(ctx, payload.CustomerID)
		return err
	case CommandAddToCart:
		var payload addToCartPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return err
		}
		return c.carts.AddToCart(ctx, payload.CartID, payload.ProductID, payload.Quantity)
	case CommandCheckout:
		var input application.CheckoutInput
		if err := json.Unmarshal(envelope.Payload, &input); err != nil {
			return err
		}
		_, err := c.orders.Checkout(ctx, input)
		return err
	case CommandMarkOrderPaid:
		var payload orderRefPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return err
		}
		return c.orders.MarkAsPaid(ctx, payload.OrderID)
	case CommandMarkOrderReady:
		var payload orderRefPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return err
		}
		return c.orders.MarkAsReady(ctx, payload.OrderID)
	case CommandCancelOrder:
		var payload orderRefPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return err
		}
		return c.orders.Cancel(ctx, payload.OrderID)
	default:
		log.Warn().Str("command", envelope.Type).Msg("unknown command type, skipping")
		return nil
	}
}

// kafkaHeaderCarrier 让 kafka 消息头满足 OTel 的 TextMapCarrier。
type kafkaHeaderCarrier []kafka.Header

var _ propagation.TextMapCarrier = (*kafkaHeaderCarrier)(nil)

func (c *kafkaHeaderCarrier) Get(key string) string {
	for _, h := range *c {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *kafkaHeaderCarrier) Set(key, value string) {
	for i, h := range *c {
		if h.Key == key {
			(*c)[i].Value = []byte(value)
			return
		}
	}
	*c = append(*c, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *kafkaHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, h := range *c {
		keys = append(keys, h.Key)
	}
	return keys
}
