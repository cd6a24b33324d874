package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Quota     QuotaConfig     `yaml:"quota"`
	App       AppConfig       `yaml:"app"`
	AI        AIConfig        `yaml:"ai"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds settings for validating access tokens issued by the
// external auth provider.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"`
	JWTAudience string `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// QuotaConfig holds the daily processing allowance.
type QuotaConfig struct {
	DailyLimit int `yaml:"daily_limit" env:"QUOTA_DAILY_LIMIT" env-default:"3"`
}

// AppConfig holds domain-wide settings.
type AppConfig struct {
	// Timezone is the single zone used for every calendar-day computation.
	Timezone string `yaml:"timezone" env:"APP_TIMEZONE" env-default:"Asia/Seoul"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// AIConfig holds hosted inference settings.
type AIConfig struct {
	OpenAIAPIKey       string        `yaml:"openai_api_key"       env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `yaml:"openai_base_url"      env:"OPENAI_BASE_URL"      env-default:"https://api.openai.com/v1"`
	TranscriptionModel string        `yaml:"transcription_model"  env:"AI_TRANSCRIPTION_MODEL" env-default:"whisper-1"`
	TranscriptionLang  string        `yaml:"transcription_lang"   env:"AI_TRANSCRIPTION_LANG"  env-default:"ko"`
	AnalysisModel      string        `yaml:"analysis_model"       env:"AI_ANALYSIS_MODEL"      env-default:"gpt-4o-mini"`
	ImageModel         string        `yaml:"image_model"          env:"AI_IMAGE_MODEL"         env-default:"dall-e-3"`
	Analyzer           string        `yaml:"analyzer"             env:"AI_ANALYZER"            env-default:"openai"`
	AnthropicAPIKey    string        `yaml:"anthropic_api_key"    env:"ANTHROPIC_API_KEY"`
	AnthropicModel     string        `yaml:"anthropic_model"      env:"ANTHROPIC_MODEL"        env-default:"claude-3-5-haiku-latest"`
	Timeout            time.Duration `yaml:"timeout"              env:"AI_TIMEOUT"             env-default:"90s"`
}

// StorageConfig holds object storage settings for generated images.
type StorageConfig struct {
	URL        string        `yaml:"url"         env:"STORAGE_URL"`
	ServiceKey string        `yaml:"service_key" env:"STORAGE_SERVICE_KEY"`
	Bucket     string        `yaml:"bucket"      env:"STORAGE_BUCKET"  env-default:"journal-images"`
	Timeout    time.Duration `yaml:"timeout"     env:"STORAGE_TIMEOUT" env-default:"30s"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"   env-default:"5"`
	Burst             int     `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Analyzer backends.
const (
	AnalyzerOpenAI    = "openai"
	AnalyzerAnthropic = "anthropic"
)

// Configured reports whether every key the selected analyzer needs is set.
// Transcription and images always need the OpenAI key.
func (a AIConfig) Configured() bool {
	if a.OpenAIAPIKey == "" {
		return false
	}
	return a.Analyzer != AnalyzerAnthropic || a.AnthropicAPIKey != ""
}
