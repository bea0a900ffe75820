// internal/pkg/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config 是服务的全部运行配置。
// 先取默认值，再叠加 yaml 文件，最后叠加环境变量。
type Config struct {
	ServiceName string         `yaml:"service_name"`
	Port        int            `yaml:"port"`
	Infra       InfraConfig    `yaml:"infra"`
	Shipping    ShippingConfig `yaml:"shipping"`
}

type InfraConfig struct {
	MySQL  MySQLConfig  `yaml:"mysql"`
	Redis  RedisConfig  `yaml:"redis"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Jaeger JaegerConfig `yaml:"jaeger"`
}

type MySQLConfig struct {
	Addr     string `yaml:"addr"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	OrderTTL Duration `yaml:"order_ttl"`
}

// Duration 让 yaml 里可以写 "5m" 这样的时长。
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", value.Value)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	EventsTopic   string   `yaml:"events_topic"`
	CommandsTopic string   `yaml:"commands_topic"`
	GroupID       string   `yaml:"group_id"`
}

type JaegerConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// ShippingConfig 是平价运费计算器的费率配置，金额为十进制字符串。
type ShippingConfig struct {
	Origin       string `yaml:"origin"`
	LocalCost    string `yaml:"local_cost"`
	StandardCost string `yaml:"standard_cost"`
}

// Default 返回适合本地开发的默认配置。
func Default() Config {
	return Config{
		ServiceName: "ordering-service",
		Port:        8080,
		Infra: InfraConfig{
			MySQL: MySQLConfig{
				Addr:     "localhost:3306",
				User:     "root",
				Password: "root",
				Database: "algashop",
			},
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				OrderTTL: Duration(5 * time.Minute),
			},
			Kafka: KafkaConfig{
				Brokers:       []string{"localhost:9092"},
				EventsTopic:   "ordering.events",
				CommandsTopic: "ordering.commands",
				GroupID:       "ordering-service",
			},
			Jaeger: JaegerConfig{
				Endpoint: "http://localhost:14268/api/traces",
			},
		},
		Shipping: ShippingConfig{
			Origin:       "10001",
			LocalCost:    "5.00",
			StandardCost: "15.00",
		},
	}
}

// Load 读取配置文件并叠加环境变量。path 为空或文件不存在时只用默认值加环境变量。
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, errors.Wrapf(err, "read config file %s", path)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv 用环境变量覆盖配置，便于容器环境下免文件部署。
func applyEnv(cfg *Config) {
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.Infra.MySQL.Addr = getEnv("MYSQL_ADDR", cfg.Infra.MySQL.Addr)
	cfg.Infra.MySQL.User = getEnv("MYSQL_USER", cfg.Infra.MySQL.User)
	cfg.Infra.MySQL.Password = getEnv("MYSQL_PASSWORD", cfg.Infra.MySQL.Password)
	cfg.Infra.MySQL.Database = getEnv("MYSQL_DATABASE", cfg.Infra.MySQL.Database)
	cfg.Infra.Redis.Addr = getEnv("REDIS_ADDR", cfg.Infra.Redis.Addr)
	cfg.Infra.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Infra.Redis.Password)
	cfg.Infra.Jaeger.Endpoint = getEnv("JAEGER_ENDPOINT", cfg.Infra.Jaeger.Endpoint)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Infra.Kafka.Brokers = []string{brokers}
	}
	cfg.Infra.Kafka.EventsTopic = getEnv("KAFKA_EVENTS_TOPIC", cfg.Infra.Kafka.EventsTopic)
	cfg.Infra.Kafka.CommandsTopic = getEnv("KAFKA_COMMANDS_TOPIC", cfg.Infra.Kafka.CommandsTopic)
	cfg.Infra.Kafka.GroupID = getEnv("KAFKA_GROUP_ID", cfg.Infra.Kafka.GroupID)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
