package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"delayer/internal/entities"
)

type (
	Tasks struct {
		HighPriorityDispatchInterval time.Duration
		UsedCapacityExportInterval   time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		JobTimeout       time.Duration // middleware timeout для /jobs
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
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
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	S3 struct {
		Bucket            string
		Region            string
		Endpoint          string // пусто для AWS, иначе MinIO/localstack
		UsePathStyle      bool
		KeyPrefix         string
		PresignExpiration time.Duration
	}

	DriverService struct {
		GRPCHost string
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
		JobTriggered JobTriggered
	}

	JobTriggered struct {
		ProcessTimeout time.Duration
	}

	// Delayer параметры алгоритма распределения.
	Delayer struct {
		ActualTenderID                 string
		DeliveryWeekDayOfWeek          time.Weekday
		PrintCapacities                []entities.PrintCapacity
		PrintCapacityWeeklyWorkingDays int
		PrintCounterTTL                time.Duration
		DriverCapacityQueryLimit       int
		ResidualCapacityQueryLimit     int
		SenderLimitQueryLimit          int
		HighPriorityQueryLimit         int
		DeliveryDateInterval           time.Duration
		DeliveryDateDayOfWeek          time.Weekday
		PrintCapacityQueryLimit        int
		DriverCacheTTL                 time.Duration
		BatchWriteChunkSize            int
		BatchWriteMaxAttempts          int
		SenderLimitMaxKeys             int
	}

	Config struct {
		LogLevel      string
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		Redis         Redis
		S3            S3
		DriverService DriverService
		Kafka         Kafka
		Delayer       Delayer
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
	var (
		r   envReader
		cfg Config
	)

	cfg.LogLevel = osGetString("LOG_LEVEL", "info")

	cfg.Tasks = Tasks{
		HighPriorityDispatchInterval: r.durationVal("BACKGROUND_HIGH_PRIORITY_DISPATCH_INTERVAL", 0),
		UsedCapacityExportInterval:   r.durationVal("BACKGROUND_USED_CAPACITY_EXPORT_INTERVAL", 0),
	}

	cfg.Server = HTTPServer{
		Port:             os.Getenv("PORT"),
		RequestTimeout:   r.durationVal("MIDDLEWARE_REQUEST_TIMEOUT", 0),
		JobTimeout:       r.durationVal("MIDDLEWARE_JOB_REQUEST_TIMEOUT", 10*time.Minute),
		RateLimiterQPS:   r.intVal("MIDDLEWARE_RATE_LIMIT_QPS", 0),
		RateLimiterBurst: r.intVal("MIDDLEWARE_RATE_LIMIT_BURST", 0),
		PprofEnabled:     r.boolVal("PPROF_ENABLED", false),
		PprofPort:        os.Getenv("PPROF_PORT"),
	}

	cfg.Database = Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	cfg.Redis = Redis{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       r.intVal("REDIS_DB", 0),
	}

	cfg.S3 = S3{
		Bucket:            os.Getenv("S3_MONITORING_BUCKET"),
		Region:            osGetString("S3_REGION", "eu-south-1"),
		Endpoint:          os.Getenv("S3_ENDPOINT"),
		UsePathStyle:      r.boolVal("S3_USE_PATH_STYLE", false),
		KeyPrefix:         osGetString("S3_KEY_PREFIX", "postalizzazione"),
		PresignExpiration: r.durationVal("S3_PRESIGN_EXPIRATION", 5*time.Minute),
	}

	cfg.DriverService = DriverService{
		GRPCHost: os.Getenv("DRIVER_SERVICE_GRPC_HOST"),
	}

	cfg.Kafka = Kafka{
		Brokers:         os.Getenv("KAFKA_BROKERS"),
		Topic:           os.Getenv("KAFKA_TOPIC"),
		ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
		PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
		Sarama: Sarama{
			Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
			ConsumerOffsetsAutocommit: r.boolVal("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT", false),
		},
		Handlers: KafkaHandlers{
			JobTriggered: JobTriggered{
				ProcessTimeout: r.durationVal("KAFKA_HANDLER_JOB_TRIGGERED_PROCESS_TIMEOUT", 0),
			},
		},
	}

	cfg.Delayer = Delayer{
		ActualTenderID:                 os.Getenv("DELAYER_ACTUAL_TENDER_ID"),
		DeliveryWeekDayOfWeek:          r.weekdayVal("DELAYER_DELIVERY_WEEK_DAY_OF_WEEK", time.Monday),
		PrintCapacities:                r.printCapacities("DELAYER_PRINT_CAPACITY"),
		PrintCapacityWeeklyWorkingDays: r.intVal("DELAYER_PRINT_CAPACITY_WEEKLY_WORKING_DAYS", 7),
		PrintCounterTTL:                r.durationVal("DELAYER_PRINT_COUNTER_TTL", 30*24*time.Hour),
		DriverCapacityQueryLimit:       r.intVal("DELAYER_DRIVER_CAPACITY_QUERY_LIMIT", 1000),
		ResidualCapacityQueryLimit:     r.intVal("DELAYER_RESIDUAL_CAPACITY_QUERY_LIMIT", 1000),
		SenderLimitQueryLimit:          r.intVal("DELAYER_SENDER_LIMIT_QUERY_LIMIT", 1000),
		HighPriorityQueryLimit:         r.intVal("DELAYER_HIGH_PRIORITY_QUERY_LIMIT", 1000),
		DeliveryDateInterval:           r.durationVal("DELAYER_DELIVERY_DATE_INTERVAL", 24*time.Hour),
		DeliveryDateDayOfWeek:          r.weekdayVal("DELAYER_DELIVERY_DATE_DAY_OF_WEEK", time.Monday),
		PrintCapacityQueryLimit:        r.intVal("DELAYER_PRINT_CAPACITY_QUERY_LIMIT", 1000),
		DriverCacheTTL:                 r.durationVal("DELAYER_DRIVER_CACHE_TTL", time.Hour),
		BatchWriteChunkSize:            r.intVal("DELAYER_BATCH_WRITE_CHUNK_SIZE", 25),
		BatchWriteMaxAttempts:          r.intVal("DELAYER_BATCH_WRITE_MAX_ATTEMPTS", 3),
		SenderLimitMaxKeys:             r.intVal("DELAYER_SENDER_LIMIT_MAX_KEYS", 25),
	}

	if r.err != nil {
		return nil, fmt.Errorf("loading config: %w", r.err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.S3.Bucket == "" {
		return errors.New("S3_MONITORING_BUCKET is required")
	}

	if cfg.Tasks.HighPriorityDispatchInterval == time.Duration(0) {
		return errors.New("BACKGROUND_HIGH_PRIORITY_DISPATCH_INTERVAL is required")
	}
	if cfg.Tasks.UsedCapacityExportInterval == time.Duration(0) {
		return errors.New("BACKGROUND_USED_CAPACITY_EXPORT_INTERVAL is required")
	}

	if cfg.DriverService.GRPCHost == "" {
		return errors.New("DRIVER_SERVICE_GRPC_HOST is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.JobTriggered.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_JOB_TRIGGERED_PROCESS_TIMEOUT is required")
	}

	return validateDelayer(cfg.Delayer)
}

func validateDelayer(d Delayer) error {
	if d.ActualTenderID == "" {
		return errors.New("DELAYER_ACTUAL_TENDER_ID is required")
	}
	if len(d.PrintCapacities) == 0 {
		return errors.New("DELAYER_PRINT_CAPACITY is required")
	}
	if d.PrintCapacityWeeklyWorkingDays <= 0 || d.PrintCapacityWeeklyWorkingDays > 7 {
		return errors.New("DELAYER_PRINT_CAPACITY_WEEKLY_WORKING_DAYS must be in [1, 7]")
	}
	if d.DeliveryDateInterval <= 0 || d.DeliveryDateInterval > 7*24*time.Hour {
		return errors.New("DELAYER_DELIVERY_DATE_INTERVAL must be in (0, 168h]")
	}
	if d.BatchWriteChunkSize <= 0 || d.BatchWriteChunkSize > 25 {
		return errors.New("DELAYER_BATCH_WRITE_CHUNK_SIZE must be in [1, 25]")
	}
	if d.BatchWriteMaxAttempts <= 0 {
		return errors.New("DELAYER_BATCH_WRITE_MAX_ATTEMPTS must be positive")
	}
	for name, limit := range map[string]int{
		"DELAYER_DRIVER_CAPACITY_QUERY_LIMIT":   d.DriverCapacityQueryLimit,
		"DELAYER_RESIDUAL_CAPACITY_QUERY_LIMIT": d.ResidualCapacityQueryLimit,
		"DELAYER_SENDER_LIMIT_QUERY_LIMIT":      d.SenderLimitQueryLimit,
		"DELAYER_HIGH_PRIORITY_QUERY_LIMIT":     d.HighPriorityQueryLimit,
		"DELAYER_SENDER_LIMIT_MAX_KEYS":         d.SenderLimitMaxKeys,
	} {
		if limit <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
