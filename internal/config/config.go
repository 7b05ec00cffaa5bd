package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		// Backend selects the key-value medium: "redis", "postgres" or
		// "memory".
		Backend string `mapstructure:"backend"`
	} `mapstructure:"storage"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret         string        `mapstructure:"jwt_secret"`
		TokenLifespan     time.Duration `mapstructure:"token_lifespan"`
		OwnerEmail        string        `mapstructure:"owner_email"`
		OwnerPasswordHash string        `mapstructure:"owner_password_hash"`
	} `mapstructure:"auth"`
	Ollama struct {
		Host  string `mapstructure:"host"`
		Model string `mapstructure:"model"`
	} `mapstructure:"ollama"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	Import struct {
		// Strict rejects snapshots whose aggregates do not match the
		// expected shape instead of storing them as-is.
		Strict bool `mapstructure:"strict"`
	} `mapstructure:"import"`
}

func LoadConfig(path string) (cfg Config, err error) {

	err = godotenv.Load(filepath.Join(path, ".env"))
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("storage.backend", "redis")
	viper.SetDefault("auth.token_lifespan", "24h")
	viper.SetDefault("ollama.model", "phi3:mini")
	viper.SetDefault("import.strict", false)

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("storage.backend", "STORAGE_BACKEND")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	viper.BindEnv("auth.owner_email", "OWNER_EMAIL")
	viper.BindEnv("auth.owner_password_hash", "OWNER_PASSWORD_HASH")
	viper.BindEnv("ollama.host", "OLLAMA_HOST")
	viper.BindEnv("ollama.model", "OLLAMA_MODEL")
	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	viper.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")
	viper.BindEnv("import.strict", "IMPORT_STRICT")

	err = viper.Unmarshal(&cfg)
	return
}
