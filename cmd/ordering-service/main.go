// cmd/ordering-service/main.go
package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"algashop/internal/pkg/bootstrap"
	"algashop/internal/pkg/config"
	"algashop/internal/pkg/metrics"
	"algashop/internal/service/ordering/application"
	"algashop/internal/service/ordering/domain"
	"algashop/internal/service/ordering/infrastructure"
)

// main 是应用的组装根 (Composition Root)，
// 只负责创建并组装所有依赖项，然后交给 bootstrap 启动。
func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// 1. 数据库
	db, err := infrastructure.OpenMySQL(infrastructure.MySQLConfig{
		Addr:     cfg.Infra.MySQL.Addr,
		User:     cfg.Infra.MySQL.User,
		Password: cfg.Infra.MySQL.Password,
		Database: cfg.Infra.MySQL.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open mysql")
	}
	customers := infrastructure.NewGormCustomerRepository(db)
	orders := infrastructure.NewGormOrderRepository(db)
	carts := infrastructure.NewGormShoppingCartRepository(db)

	// 2. Redis 订单缓存
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Infra.Redis.Addr,
		Password: cfg.Infra.Redis.Password,
		DB:       cfg.Infra.Redis.DB,
	})
	orderCache := infrastructure.NewRedisOrderCache(redisClient, cfg.Infra.Redis.OrderTTL.Std())

	// 3. Kafka 事件发布
	eventsWriter := infrastructure.NewEventsWriter(cfg.Infra.Kafka.Brokers, cfg.Infra.Kafka.EventsTopic)
	publisher := infrastructure.NewKafkaEventPublisher(eventsWriter)

	// 4. 运费计算
	localCost, err := domain.NewMoneyFromString(cfg.Shipping.LocalCost)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid local shipping cost")
	}
	standardCost, err := domain.NewMoneyFromString(cfg.Shipping.StandardCost)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid standard shipping cost")
	}
	origin, err := domain.NewZipCode(cfg.Shipping.Origin)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid shipping origin")
	}
	shippingCalc := infrastructure.NewFlatRateShippingCalculator(localCost, standardCost)

	// 5. 商品目录。正式环境应换成商品服务的客户端实现。
	catalog := infrastructure.NewMemoryProductCatalog()

	// 6. 应用服务
	tracer := otel.Tracer(cfg.ServiceName)
	customerSvc := application.NewCustomerService(customers, publisher, tracer)
	orderSvc := application.NewOrderService(orders, carts, catalog, orderCache, publisher, shippingCalc, origin, tracer)
	cartSvc := application.NewShoppingCartService(carts, catalog, tracer)

	// 7. 命令消费者
	commandsReader := infrastructure.NewCommandsReader(
		cfg.Infra.Kafka.Brokers,
		cfg.Infra.Kafka.CommandsTopic,
		cfg.Infra.Kafka.GroupID,
	)
	consumer := infrastructure.NewCommandConsumer(commandsReader, customerSvc, orderSvc, cartSvc)

	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName:    cfg.ServiceName,
		Port:           cfg.Port,
		JaegerEndpoint: cfg.Infra.Jaeger.Endpoint,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			appCtx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			appCtx.Mux.Handle("/metrics", metrics.Handler())
		},
		Run: func(ctx context.Context) {
			consumer.Start(ctx)
			<-ctx.Done()
		},
		OnShutdown: func(ctx context.Context) {
			consumer.Stop()
			if err := eventsWriter.Close(); err != nil {
				log.Error().Err(err).Msg("error closing kafka writer")
			}
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("error closing redis client")
			}
		},
	})
}
