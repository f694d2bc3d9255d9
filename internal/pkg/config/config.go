package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		StatsSnapshotInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string

		AutoMigrate bool // apply embedded migrations on startup
	}

	Redis struct {
		Addr      string
		Password  string
		DB        int
		KeyPrefix string
	}

	Stats struct {
		CacheTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		CheckoutOrderCreated CheckoutOrderCreated
	}

	CheckoutOrderCreated struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Stats    Stats
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_STATS_SNAPSHOT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statsCacheTTL, err := osGetEnvDuration("STATS_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	checkoutOrderCreatedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_CHECKOUT_ORDER_CREATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			StatsSnapshotInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),

			AutoMigrate: autoMigrate,
		},
		Redis: Redis{
			Addr:      os.Getenv("REDIS_ADDR"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        redisDB,
			KeyPrefix: os.Getenv("REDIS_KEY_PREFIX"),
		},
		Stats: Stats{
			CacheTTL: statsCacheTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				CheckoutOrderCreated: CheckoutOrderCreated{
					ProcessTimeout: checkoutOrderCreatedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	required := []struct {
		env   string
		value string
	}{
		{"PORT", cfg.Server.Port},
		{"POSTGRES_HOST", cfg.Database.Host},
		{"POSTGRES_PORT", cfg.Database.Port},
		{"POSTGRES_USER", cfg.Database.User},
		{"POSTGRES_PASSWORD", cfg.Database.Password},
		{"POSTGRES_DB", cfg.Database.DBName},
		{"POSTGRES_SSLMODE", cfg.Database.SSLMode},
		{"REDIS_ADDR", cfg.Redis.Addr},
		{"KAFKA_BROKERS", cfg.Kafka.Brokers},
		{"KAFKA_TOPIC", cfg.Kafka.Topic},
		{"KAFKA_CONSUMER_GROUP", cfg.Kafka.ConsumerGroup},
		{"KAFKA_HTTP_HEALTHCHECK_PORT", cfg.Kafka.PortHealthcheck},
		{"KAFKA_SARAMA_VERSION", cfg.Kafka.Sarama.Version},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s is required", field.env)
		}
	}

	positive := []struct {
		env   string
		value time.Duration
	}{
		{"MIDDLEWARE_REQUEST_TIMEOUT", cfg.Server.RequestTimeout},
		{"BACKGROUND_STATS_SNAPSHOT_INTERVAL", cfg.Tasks.StatsSnapshotInterval},
		{"STATS_CACHE_TTL", cfg.Stats.CacheTTL},
		{"KAFKA_HANDLER_CHECKOUT_ORDER_CREATED_PROCESS_TIMEOUT", cfg.Kafka.Handlers.CheckoutOrderCreated.ProcessTimeout},
	}
	for _, field := range positive {
		if field.value <= 0 {
			return fmt.Errorf("%s is required and must be positive", field.env)
		}
	}

	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required and must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required and must be positive")
	}
	if cfg.Server.PprofEnabled && cfg.Server.PprofPort == "" {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED is set")
	}
	if cfg.Redis.DB < 0 {
		return errors.New("REDIS_DB must not be negative")
	}
	// the snapshot must outlive one refresh period or readers fall back to the db
	if cfg.Stats.CacheTTL < cfg.Tasks.StatsSnapshotInterval {
		return errors.New("STATS_CACHE_TTL must not be shorter than BACKGROUND_STATS_SNAPSHOT_INTERVAL")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
