package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Server  ServerConfig  `mapstructure:"server"`
	Content ContentConfig `mapstructure:"content"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

// JWTConfig holds the signing secret. A zero TTL issues tokens without an
// expiry claim.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ContentConfig.DeleteByID switches DELETE /content from the legacy
// contentId attribute filter (matches nothing) to deleting by row id.
type ContentConfig struct {
	DeleteByID bool `mapstructure:"delete_by_id"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

var (
	ErrMissingDBSource  = errors.New("db.source is required")
	ErrMissingJWTSecret = errors.New("jwt.secret is required")
)

func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("./configs")
	v.AddConfigPath("/configs")
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("jwt.ttl", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("content.delete_by_id", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Variable names used by earlier deployments of the service.
	_ = v.BindEnv("db.source", "DB_SOURCE", "DATABASE_URL", "MONGO_URL")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET", "jwt_secret")
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DB.Source == "" {
		return nil, ErrMissingDBSource
	}
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &cfg, nil
}
