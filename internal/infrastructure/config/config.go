package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ServiceQuoting         = "quoting"
	ServiceBenefitDesigner = "benefit-designer"
	ServicePolicy          = "policy"

	TemplateStoreSQLite   = "sqlite"
	TemplateStoreDynamoDB = "dynamodb"
)

// Config is the runtime configuration of one service.
type Config struct {
	Service     string
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string

	DBPath        string
	TemplateStore string

	AWSRegion          string
	DynamoDBEndpoint   string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	JWTSecret          string
	SignInURL          string
	AuthCookieName     string
	AllowedRoles       []string
	InternalServiceKey string

	QuotingServiceURL  string
	BenefitDesignerURL string
	UpstreamTimeout    time.Duration
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

var defaultPorts = map[string]int{
	ServiceBenefitDesigner: 8081,
	ServiceQuoting:         8082,
	ServicePolicy:          8083,
}

var defaultRoles = map[string]string{
	ServiceBenefitDesigner: "admin,benefit_designer",
	ServiceQuoting:         "admin,quoting",
	ServicePolicy:          "admin,customer_service",
}

// Load reads configuration for service from the environment. .env files
// are loaded by the godotenv autoload import in each main package.
func Load(service string) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPorts[service])
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_PATH", strings.ReplaceAll(service, "-", "_")+".db")
	v.SetDefault("TEMPLATE_STORE", TemplateStoreSQLite)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SIGN_IN_URL", "/sign-in")
	v.SetDefault("AUTH_COOKIE_NAME", "portal_token")
	v.SetDefault("ALLOWED_ROLES", defaultRoles[service])
	v.SetDefault("QUOTING_SERVICE_URL", "http://localhost:8082")
	v.SetDefault("BENEFIT_DESIGNER_URL", "http://localhost:8081")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")

	cfg := Config{
		Service:            service,
		Port:               v.GetInt("PORT"),
		Environment:        v.GetString("ENVIRONMENT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		DBPath:             v.GetString("DB_PATH"),
		TemplateStore:      strings.ToLower(v.GetString("TEMPLATE_STORE")),
		AWSRegion:          v.GetString("AWS_REGION"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		SignInURL:          v.GetString("SIGN_IN_URL"),
		AuthCookieName:     v.GetString("AUTH_COOKIE_NAME"),
		AllowedRoles:       splitList(v.GetString("ALLOWED_ROLES")),
		InternalServiceKey: v.GetString("INTERNAL_SERVICE_KEY"),
		QuotingServiceURL:  strings.TrimRight(v.GetString("QUOTING_SERVICE_URL"), "/"),
		BenefitDesignerURL: strings.TrimRight(v.GetString("BENEFIT_DESIGNER_URL"), "/"),
		UpstreamTimeout:    v.GetDuration("UPSTREAM_TIMEOUT"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, fmt.Errorf("PORT must be positive, got %d", c.Port))
	}
	if c.TemplateStore != TemplateStoreSQLite && c.TemplateStore != TemplateStoreDynamoDB {
		errs = append(errs, fmt.Errorf("TEMPLATE_STORE must be %s or %s", TemplateStoreSQLite, TemplateStoreDynamoDB))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}
	if c.IsProduction() {
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		}
		if c.InternalServiceKey == "" {
			errs = append(errs, errors.New("INTERNAL_SERVICE_KEY is required in production"))
		}
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
