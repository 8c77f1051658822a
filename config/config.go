package config

import (
	"time"

	"github.com/spf13/viper"
)

// Store driver names
const (
	StoreDriverFile     = "file"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
	Auth  AuthConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type StoreConfig struct {
	Driver  string
	DataDir string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig describes the single practitioner account. When no password
// hash is configured the API runs open, like the original single-user app.
type AuthConfig struct {
	Username     string
	PasswordHash string // bcrypt hash
}

func (a AuthConfig) Enabled() bool {
	return a.PasswordHash != ""
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables and defaults apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_DRIVER", StoreDriverFile)
	viper.SetDefault("STORE_DATA_DIR", "data")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("AUTH_USERNAME", "practitioner")

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			Driver:  viper.GetString("STORE_DRIVER"),
			DataDir: viper.GetString("STORE_DATA_DIR"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			Username:     viper.GetString("AUTH_USERNAME"),
			PasswordHash: viper.GetString("AUTH_PASSWORD_HASH"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
	}

	return config, nil
}
