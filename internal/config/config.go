package config

import (
	env "github.com/caarlos0/env/v11"

	"github.com/eshop-platform/payment-service/internal/domain"
)

type Config struct {
	StripeAPIBaseURL       string `env:"STRIPE_API_BASE_URL,required"`
	StripeAPIKey           string `env:"STRIPE_API_KEY,required"`
	PaymentRedirectBaseURL string `env:"PAYMENT_REDIRECT_BASE_URL,required"`

	RabbitMQHost     string `env:"RABBITMQ_URI,required"`
	RabbitMQPort     int    `env:"RABBITMQ_PORT" envDefault:"5672"`
	RabbitMQUsername string `env:"RABBITMQ_USERNAME,required"`
	RabbitMQPassword string `env:"RABBITMQ_PASSWORD,required"`

	Auth0Domain   string `env:"AUTH0_DOMAIN,required"`
	Auth0Audience string `env:"AUTH0_AUDIENCE,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`

	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
}

// Load resolves configuration from the environment. A missing required key is
// a startup-fatal KindConfigMissing error — the process must not serve.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, domain.NewError(domain.KindConfigMissing, "config.Load", err)
	}
	return &cfg, nil
}
