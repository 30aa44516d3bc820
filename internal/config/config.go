package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Database    Database `envPrefix:"DB_"`
	Auth        Auth     `envPrefix:"AUTH_"`

	OperatorAPIKey string `env:"OPERATOR_API_KEY"`
	SeedSampleData bool   `env:"SEED_SAMPLE_DATA" envDefault:"false"`
}

type Database struct {
	// URL selects MySQL when set; otherwise the sqlite file at Path is used.
	URL  string `env:"URL"`
	Path string `env:"PATH" envDefault:"store.db"`
}

type Auth struct {
	JWTSecret   string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTLHrs int    `env:"TOKEN_TTL_HOURS" envDefault:"72"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
