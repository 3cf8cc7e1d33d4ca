package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"qrpay/kit/db"
)

// DevSecret is accepted so the service starts out of the box. Load reports it through Warnings.
const DevSecret = "dev-secret-key-change-in-production"

var ErrInvalidConfig = errors.New("invalid config")

type LinkConfig struct {
	Secret  string        `yaml:"secret"`
	BaseURL string        `yaml:"baseURL"`
	TTL     time.Duration `yaml:"ttl"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type PaymentConfig struct {
	ProcessingDelay time.Duration `yaml:"processingDelay"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Config struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	HealthTTL       time.Duration `yaml:"healthTTL"`
	AuditPath       string        `yaml:"auditPath"`
	Link            LinkConfig    `yaml:"link"`
	Session         SessionConfig `yaml:"session"`
	Payment         PaymentConfig `yaml:"payment"`
	Store           StoreConfig   `yaml:"store"`
	Log             LogConfig     `yaml:"log"`
	CORS            CORSConfig    `yaml:"cors"`
}

func Default() Config {
	return Config{
		Addr:            ":4000",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		HealthTTL:       2 * time.Second,
		AuditPath:       "./out/audit.jsonl",
		Link: LinkConfig{
			Secret:  DevSecret,
			BaseURL: "http://localhost:3000",
			TTL:     60 * time.Minute,
		},
		Session: SessionConfig{TTL: 5 * time.Minute},
		Payment: PaymentConfig{ProcessingDelay: 2 * time.Second},
		Store:   StoreConfig{Driver: db.DriverMemory, DSN: db.DefaultDSN},
		Log:     LogConfig{Level: "info", MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 7},
		CORS:    CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load reads the optional YAML file at path over the defaults, then applies
// QRPAY_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv loads the file named by QRPAY_CONFIG, if any.
func FromEnv() (Config, error) {
	return Load(os.Getenv("QRPAY_CONFIG"))
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set("QRPAY_ADDR", &cfg.Addr)
	set("QRPAY_LINK_SECRET", &cfg.Link.Secret)
	set("QRPAY_LINK_BASE_URL", &cfg.Link.BaseURL)
	set("QRPAY_STORE_DRIVER", &cfg.Store.Driver)
	set("QRPAY_STORE_DSN", &cfg.Store.DSN)
	set("QRPAY_LOG_FILE", &cfg.Log.File)
	set("QRPAY_AUDIT_PATH", &cfg.AuditPath)
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if strings.TrimSpace(c.Link.Secret) == "" {
		errs = append(errs, errors.New("link.secret is required"))
	}
	if strings.TrimSpace(c.Link.BaseURL) == "" {
		errs = append(errs, errors.New("link.baseURL is required"))
	}
	if c.Link.TTL <= 0 {
		errs = append(errs, errors.New("link.ttl must be positive"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if c.Payment.ProcessingDelay <= 0 {
		errs = append(errs, errors.New("payment.processingDelay must be positive"))
	}
	switch c.Store.Driver {
	case db.DriverMemory, db.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("store.driver %q is not supported", c.Store.Driver))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

func (c Config) Warnings() []string {
	var out []string
	if c.Link.Secret == DevSecret {
		out = append(out, "link.secret is the development default; set QRPAY_LINK_SECRET")
	}
	return out
}
