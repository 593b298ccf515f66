package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,          default=8080"`
	Env         string `env:"ENV,           default=development"`
	JWTSecret   string `env:"JWT_SECRET"`
	LogLevel    string `env:"LOG_LEVEL,     default=info"`
	OwnerOpenID string `env:"OWNER_OPEN_ID"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Stripe StripeConfig
	LLM    LLMConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pawsitting"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	SuccessURL    string `env:"STRIPE_SUCCESS_URL, default=https://pawsitting.co/dashboard?payment=success"`
	CancelURL     string `env:"STRIPE_CANCEL_URL,  default=https://pawsitting.co/booking?payment=cancelled"`
}

type LLMConfig struct {
	BaseURL string `env:"LLM_BASE_URL, default=https://api.openai.com/v1"`
	APIKey  string `env:"LLM_API_KEY"`
	Model   string `env:"LLM_MODEL,    default=gpt-4o-mini"`
	// ChatSystemPrompt overrides the built-in assistant prompt when set.
	ChatSystemPrompt string `env:"CHAT_SYSTEM_PROMPT"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
