package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application
type Config struct {
	Env      string
	LogLevel string
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Admin    AdminConfig
	JWT      JWTConfig
	Session  SessionConfig
	Storage  StorageConfig
	Site     SiteConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  int // seconds
}

// AdminConfig holds the single admin account. Only the bcrypt hash is kept
// after Load returns.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// SessionConfig holds the cookie session store configuration
type SessionConfig struct {
	Secret string
	Name   string
	Secure bool
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	URL            string
	Key            string
	Mock           bool
	ImageBucket    string
	BulletinBucket string
}

// SiteConfig holds values handed to the web client
type SiteConfig struct {
	LogoPath string
	Timezone string
}

// Location returns the site's time zone, falling back to KST.
func (s SiteConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env != EnvProduction
}

// TimeoutDuration returns the MongoDB operation timeout.
func (m MongoDBConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.Timeout) * time.Second
}

// TokenTTL returns the admin session lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}

// Load loads configuration from a .env file, environment variables and an
// optional config.yaml found in path.
func Load(path string) (*Config, error) {
	// A missing .env is normal in production.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:      v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			AllowedOrigins: allowedOrigins(v.GetString("CLIENT_URL")),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
			Timeout:  v.GetInt("MONGODB_TIMEOUT"),
		},
		Admin: AdminConfig{
			Username:     v.GetString("ADMIN_USERNAME"),
			Password:     v.GetString("ADMIN_PASSWORD"),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			ExpiresIn: v.GetInt("JWT_EXPIRES_IN"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
			Name:   v.GetString("SESSION_NAME"),
			Secure: v.GetBool("SESSION_SECURE"),
		},
		Storage: StorageConfig{
			URL:            v.GetString("STORAGE_URL"),
			Key:            v.GetString("STORAGE_KEY"),
			ImageBucket:    v.GetString("STORAGE_IMAGE_BUCKET"),
			BulletinBucket: v.GetString("STORAGE_BULLETIN_BUCKET"),
		},
		Site: SiteConfig{
			LogoPath: v.GetString("SITE_LOGO_PATH"),
			Timezone: v.GetString("SITE_TIMEZONE"),
		},
	}
	cfg.Storage.Mock = GetEnvAsBool("STORAGE_MOCK", cfg.Storage.URL == "")

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finalize hashes a plaintext admin password and drops it from memory.
func (c *Config) finalize() error {
	if c.Admin.PasswordHash == "" && c.Admin.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		c.Admin.PasswordHash = string(hash)
	}
	c.Admin.Password = ""
	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI is required")
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "changilweb")
	v.SetDefault("MONGODB_TIMEOUT", 5)
	v.SetDefault("JWT_EXPIRES_IN", 24*60*60) // 24 hours
	v.SetDefault("SESSION_NAME", "changil_session")
	v.SetDefault("STORAGE_IMAGE_BUCKET", "gallery-images")
	v.SetDefault("STORAGE_BULLETIN_BUCKET", "bulletins")
	v.SetDefault("SITE_LOGO_PATH", "/images/logo.png")
	v.SetDefault("SITE_TIMEZONE", "Asia/Seoul")
}

// allowedOrigins always includes the local development client.
func allowedOrigins(clientURL string) []string {
	origins := []string{"http://localhost:3001"}
	for _, o := range strings.Split(clientURL, ",") {
		o = strings.TrimSpace(o)
		if o != "" && o != origins[0] {
			origins = append(origins, o)
		}
	}
	return origins
}
