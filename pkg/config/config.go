package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS  CORSConfig
	Log   LogConfig
	State StateConfig
	Audit AuditConfig
	Brand BrandConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// StateConfig locates the durable state snapshot and export artifacts.
type StateConfig struct {
	Path       string
	ExportsDir string
}

// AuditConfig carries audit defaults applied when no snapshot exists yet.
type AuditConfig struct {
	DefaultPIN string
}

// BrandConfig is the read-only theme threaded into report rendering.
// Fixed at startup; a settings change means a new process config, never
// in-place mutation.
type BrandConfig struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
	Danger    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.State = StateConfig{
		Path:       v.GetString("STATE_PATH"),
		ExportsDir: v.GetString("EXPORTS_DIR"),
	}

	cfg.Audit = AuditConfig{
		DefaultPIN: v.GetString("DEFAULT_PIN"),
	}

	cfg.Brand = BrandConfig{
		Name:      v.GetString("BRAND_NAME"),
		Primary:   v.GetString("BRAND_PRIMARY"),
		Secondary: v.GetString("BRAND_SECONDARY"),
		Accent:    v.GetString("BRAND_ACCENT"),
		Danger:    v.GetString("BRAND_DANGER"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("STATE_PATH", "./data/scaffold_audit.json")
	v.SetDefault("EXPORTS_DIR", "./exports")

	v.SetDefault("DEFAULT_PIN", "2468")

	v.SetDefault("BRAND_NAME", "Celtic Scaffold Ltd.")
	v.SetDefault("BRAND_PRIMARY", "#005C99")
	v.SetDefault("BRAND_SECONDARY", "#FDB913")
	v.SetDefault("BRAND_ACCENT", "#0DB14B")
	v.SetDefault("BRAND_DANGER", "#D64545")
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
