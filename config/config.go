package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port       string `mapstructure:"port" validate:"required"`
	DBHost     string `mapstructure:"db_host" validate:"required"`
	DBPort     string `mapstructure:"db_port" validate:"required"`
	DBUser     string `mapstructure:"db_user" validate:"required"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name" validate:"required"`
	DBSSLMode  string `mapstructure:"db_sslmode" validate:"oneof=disable require verify-full"`

	DBMaxOpenConns    int           `mapstructure:"db_max_open_conns" validate:"min=1"`
	DBMaxIdleConns    int           `mapstructure:"db_max_idle_conns" validate:"min=0"`
	DBConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime" validate:"min=0"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "pquiz")
	v.SetDefault("db_password", "pquiz123")
	v.SetDefault("db_name", "pquiz")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", time.Hour)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}
