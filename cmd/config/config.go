package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/muhammadheryan/sanitary-shop/constant"
)

type Config struct {
	Environment  string
	Server       ServerConfig
	Storage      StorageConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Internal     InternalConfig
	Auth         AuthConfig
	Notification NotificationConfig
	Shop         ShopConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StorageConfig selects the key-value driver: memory, bolt, redis or mysql.
type StorageConfig struct {
	Driver   string
	BoltPath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

// InternalConfig is used by the expiry consumer to call back into the API.
type InternalConfig struct {
	APIURL string
	APIKey string
}

type AuthConfig struct {
	AdminUser      string
	AdminPassword  string
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	CookieSecret   string
}

type NotificationConfig struct {
	TTL time.Duration
}

type ShopConfig struct {
	Name    string
	Phone   string
	ZaloID  string
	Address string
}

// Load reads configuration from the environment, after loading a .env file
// when one exists in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", constant.StorageDriverBolt),
			BoltPath: getEnv("STORAGE_BOLT_PATH", "data/shop.db"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "sanitary_shop"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getEnvBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			APIURL: getEnv("INTERNAL_API_URL", "http://localhost:8080"),
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Auth: AuthConfig{
			AdminUser:      getEnv("ADMIN_USER", "admin"),
			AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123CHANGEME"),
			JWTSecret:      getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:  getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getEnvDuration("SESSION_EXP_TIME", 24*time.Hour),
			CookieSecret:   getEnv("COOKIE_SECRET", "change-me-too"),
		},
		Notification: NotificationConfig{
			TTL: getEnvDuration("TOAST_TTL", constant.DefaultToastTTL),
		},
		Shop: ShopConfig{
			Name:    getEnv("SHOP_NAME", "Kho Tổng Vệ Sinh Việt"),
			Phone:   getEnv("SHOP_PHONE", "0912345678"),
			ZaloID:  getEnv("SHOP_ZALO_ID", "0912345678"),
			Address: getEnv("SHOP_ADDRESS", "123 Đường Xây Dựng, Q. Thanh Xuân, Hà Nội"),
		},
	}
}

// GetDSN builds the go-sql-driver/mysql data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}
