package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type JWTConfig struct {
	Secret        string
	Issuer        string
	Audience      string
	LifetimeHours int
}

type SMTPConfig struct {
	Server   string
	Port     int
	User     string
	Password string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	Environment   string
	ServicePort   string
	MetricsPort   string
	FrontendURL   string
	IdentityDB    PostgreSQLConfig
	PayrollDB     PostgreSQLConfig
	JWTConfig     JWTConfig
	SMTPConfig    SMTPConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment: os.Getenv("ENVIRONMENT"),
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		IdentityDB: PostgreSQLConfig{
			DBHost:     os.Getenv("IDENTITY_DB_HOST"),
			DBPort:     os.Getenv("IDENTITY_DB_PORT"),
			DBName:     os.Getenv("IDENTITY_DB_NAME"),
			DBUsername: os.Getenv("IDENTITY_DB_USERNAME"),
			DBPassword: os.Getenv("IDENTITY_DB_PASSWORD"),
		},
		PayrollDB: PostgreSQLConfig{
			DBHost:     os.Getenv("PAYROLL_DB_HOST"),
			DBPort:     os.Getenv("PAYROLL_DB_PORT"),
			DBName:     os.Getenv("PAYROLL_DB_NAME"),
			DBUsername: os.Getenv("PAYROLL_DB_USERNAME"),
			DBPassword: os.Getenv("PAYROLL_DB_PASSWORD"),
		},
		JWTConfig: JWTConfig{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   os.Getenv("JWT_ISSUER"),
			Audience: os.Getenv("JWT_AUDIENCE"),
		},
		SMTPConfig: SMTPConfig{
			Server:   os.Getenv("SMTP_SERVER"),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("TRACING_COLLECTOR_HOST"),
		},
	}

	lifetime, err := strconv.Atoi(os.Getenv("JWT_LIFETIME_HOURS"))
	if err != nil || lifetime <= 0 {
		lifetime = 3
	}
	conf.JWTConfig.LifetimeHours = lifetime

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}
