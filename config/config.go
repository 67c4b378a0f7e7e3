package config

import (
	"fmt"
	"strings"
	"time"

	"webhook-reconciler/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig                   `mapstructure:"server"`
	Database       DatabaseConfig                 `mapstructure:"database"`
	Redis          RedisConfig                    `mapstructure:"redis"`
	Log            LogConfig                      `mapstructure:"log"`
	Webhook        WebhookConfig                  `mapstructure:"webhook"`
	PaymentMethods map[string]PaymentMethodConfig `mapstructure:"payment_methods"`

	v *viper.Viper
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`      // 0 keeps the client default
	MailQueueKey string `mapstructure:"mail_queue_key"` // list consumed by the mail worker
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// WebhookConfig controls notification ingestion.
type WebhookConfig struct {
	HMACKey  string        `mapstructure:"hmac_key"`  // hex-encoded; empty disables verification
	LockTTL  time.Duration `mapstructure:"lock_ttl"`  // per-order lock lease
	LockWait time.Duration `mapstructure:"lock_wait"` // max wait for the per-order lock
}

// PaymentMethodConfig lists the special behaviours of one payment method.
type PaymentMethodConfig struct {
	MailDeferred  bool   `mapstructure:"mail_deferred"`
	CashChannel   bool   `mapstructure:"cash_channel"`
	ShipmentScope string `mapstructure:"shipment_scope"`
}

// MethodCapabilities converts the payment_methods section into a lookup table.
func (c *Config) MethodCapabilities() domain.MethodCapabilityTable {
	table := make(domain.MethodCapabilityTable, len(c.PaymentMethods))
	for method, pm := range c.PaymentMethods {
		table[strings.ToLower(method)] = domain.MethodCapabilities{
			MailDeferred:  pm.MailDeferred,
			CashChannel:   pm.CashChannel,
			ShipmentScope: pm.ShipmentScope,
		}
	}
	return table
}

// Stores returns the per-store configuration source backed by this config.
func (c *Config) Stores() *StoreSource {
	return NewStoreSource(c.v)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WHR_ (webhook reconciler).
// Nested keys use underscore: WHR_DATABASE_HOST, WHR_WEBHOOK_HMAC_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "webhook_reconciler")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.mail_queue_key", "mail:outbox")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("webhook.hmac_key", "")
	v.SetDefault("webhook.lock_ttl", "30s")
	v.SetDefault("webhook.lock_wait", "10s")
	v.SetDefault("payment_methods", map[string]any{
		"adyen_boleto": map[string]any{"mail_deferred": true},
		"c_cash":       map[string]any{"cash_channel": true, "shipment_scope": ScopeCash},
	})
	setStoreDefaults(v)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WHR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WHR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.v = v

	return &cfg, nil
}
