package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	JWTSecret   string
	TokenExpiry time.Duration

	OperatorWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		JWTSecret:        "dev-only-secret",
		TokenExpiry:      24 * time.Hour,
		OperatorWorkers:  4,
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); len(v) != 0 {
		env.PostgresAddress = v
	}

	if v := os.Getenv("POSTGRES_PORT"); len(v) != 0 {
		env.PostgresPort = v
	}

	if v := os.Getenv("POSTGRES_DB"); len(v) != 0 {
		env.PostgresDB = v
	}

	if v := os.Getenv("POSTGRES_USERNAME"); len(v) != 0 {
		env.PostgresUsername = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); len(v) != 0 {
		env.PostgresPassword = v
	}

	if v := os.Getenv("HTTP_PORT"); len(v) != 0 {
		env.HTTPPort = v
	}

	if v := os.Getenv("JWT_SECRET"); len(v) != 0 {
		env.JWTSecret = v
	}

	if v := os.Getenv("TOKEN_EXPIRY_HOURS"); len(v) != 0 {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.TokenExpiry = time.Duration(hours) * time.Hour
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	return &env, nil
}

// ConnectionString builds the Postgres connection URL used by both the server
// and the migration script.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
