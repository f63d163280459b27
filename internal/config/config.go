package config

import (
	"fmt"
	"log"
	"time"

	"github.com/hferrand/canto-field-go/internal/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	// a bare FQDN in production; scheme-prefixed values are accepted too,
	// BaseURL passes them through untouched
	CantoDomain   string `validate:"omitempty,fqdn|url"`
	CantoAppToken string
	RedisAddr     string
	RedisPassword string
	ServerPort    int `validate:"required,gt=0,lte=65535"`
	HTTPTimeout   time.Duration
	JWTPublicKey  string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

	// CANTO_DOMAIN / CANTO_APP_TOKEN are deliberately NOT required here:
	// a missing pair is a user-visible configuration state the resolution
	// layer reports on use, not a boot failure.
	s := &Settings{
		CantoDomain:   viper.GetString("CANTO_DOMAIN"),
		CantoAppToken: viper.GetString("CANTO_APP_TOKEN"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		ServerPort:    viper.GetInt("SERVER_PORT"),
		HTTPTimeout:   time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		JWTPublicKey:  viper.GetString("JWT_PUBLIC_KEY"),
	}

	if err := validation.ValidateStruct(s); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}
