// internal/service/ordering/application/customer_service.go
package application

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"algashop/internal/pkg/metrics"
	"algashop/internal/service/ordering/domain"
)

// CustomerService 负责客户聚合的业务流程编排：
// 加载聚合、调用领域方法、保存并发布集成事件。
// 所有不变量由聚合自身强制，这里不重复校验。
type CustomerService struct {
	customers domain.CustomerRepository
	publisher domain.EventPublisher
	tracer    trace.Tracer
}

func NewCustomerService(customers domain.CustomerRepository, publisher domain.EventPublisher, tracer trace.Tracer) *CustomerService {
	return &CustomerService{customers: customers, publisher: publisher, tracer: tracer}
}

// Register 注册一个新客户，返回其标识。
func (s *CustomerService) Register(ctx context.Context, input RegisterCustomerInput) (string, error) {
	ctx, span := s.tracer.Start(ctx, "app.Customer.Register")
	defer span.End()

	params, err := input.toDomain()
	if err != nil {
		span.SetStatus(codes.Error, "invalid customer input")
		return "", err
	}
	customer, err := domain.NewCustomer(params)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if err := s.customers.Add(ctx, customer); err != nil {
		span.RecordError(err)
		return "", err
	}
	metrics.CustomersRegistered.Inc()
	log.Info().Str("customer_id", customer.ID().String()).Msg("customer registered")

	s.publish(ctx, domain.CustomerRegisteredEvent{
		CustomerID:   customer.ID().String(),
		Email:        customer.Email().Value(),
		RegisteredAt: customer.RegisteredAt(),
	})
	return customer.ID().String(), nil
}

// Archive 归档客户。聚合负责匿名化覆盖，这里只做加载、保存与发布。
func (s *CustomerService) Archive(ctx context.Context, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "app.Customer.Archive")
	defer span.End()

	customer, err := s.load(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := customer.Archive(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.save(ctx, customer); err != nil {
		span.RecordError(err)
		return err
	}
	metrics.CustomersArchived.Inc()
	log.Info().Str("customer_id", customerID).Msg("customer archived")

	s.publish(ctx, domain.CustomerArchivedEvent{
		CustomerID: customerID,
		ArchivedAt: *customer.ArchivedAt(),
	})
	return nil
}

// AddLoyaltyPoints 为客户累加积分。
func (s *CustomerService) AddLoyaltyPoints(ctx context.Context, customerID string, points int) error {
	ctx, span := s.tracer.Start(ctx, "app.Customer.AddLoyaltyPoints")
	defer span.End()

	loyaltyPoints, err := domain.NewLoyaltyPoints(points)
	if err != nil {
		return err
	}
	customer, err := s.load(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := customer.AddLoyaltyPoints(loyaltyPoints); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, customer)
}

// ChangeEmail 修改客户邮箱。
func (s *CustomerService) ChangeEmail(ctx context.Context, customerID, email string) error {
	ctx, span := s.tracer.Start(ctx, "app.Customer.ChangeEmail")
	defer span.End()

	newEmail, err := domain.NewEmail(email)
	if err != nil {
		return err
	}
	customer, err := s.load(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := customer.ChangeEmail(newEmail); err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, customer)
}

// ChangePromotionNotifications 切换推广通知开关。
func (s *CustomerService) ChangePromotionNotifications(ctx context.Context, customerID string, allowed bool) error {
	ctx, span := s.tracer.Start(ctx, "app.Customer.ChangePromotionNotifications")
	defer span.End()

	customer, err := s.load(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if allowed {
		err = customer.EnablePromotionNotifications()
	} else {
		err = customer.DisablePromotionNotifications()
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	return s.save(ctx, customer)
}

func (s *CustomerService) load(ctx context.Context, customerID string) (*domain.Customer, error) {
	id, err := domain.ParseCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	return s.customers.OfID(ctx, id)
}

func (s *CustomerService) save(ctx context.Context, customer *domain.Customer) error {
	err := s.customers.Add(ctx, customer)
	if errors.Is(err, domain.ErrStaleAggregate) {
		metrics.StaleWrites.Inc()
	}
	return err
}

// 事件发布失败只记录日志：聚合已持久化，流程不回滚。
func (s *CustomerService) publish(ctx context.Context, event domain.DomainEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("event", event.EventName()).Msg("failed to publish customer event")
	}
}
