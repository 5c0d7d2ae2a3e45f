// Package config loads Flutterwave settings from a YAML file, the
// environment and an optional .env file.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
)

// EnvPrefix prefixes every environment variable, e.g. FLUTTERWAVE_SECRET_KEY
const EnvPrefix = "FLUTTERWAVE"

// Setting keys. They match the flw.Setting* names.
const (
	KeyPublicKey     = "public_key"
	KeySecretKey     = "secret_key"
	KeySecretHash    = "secret_hash"
	KeyEncryptionKey = "encryption_key"
	KeyBaseURL       = "base_url"
	KeyServerAddress = "server.address"
	KeyLoggingLevel  = "logging.level"
)

// Settings is the loaded configuration
type Settings struct {
	PublicKey     string          `mapstructure:"public_key" validate:"required"`
	SecretKey     string          `mapstructure:"secret_key" validate:"required"`
	SecretHash    string          `mapstructure:"secret_hash"`
	EncryptionKey string          `mapstructure:"encryption_key"`
	BaseURL       string          `mapstructure:"base_url" validate:"omitempty,url"`
	Server        ServerSettings  `mapstructure:"server"`
	Logging       LoggingSettings `mapstructure:"logging"`
}

type ServerSettings struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingSettings struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Options controls where Load looks
type Options struct {
	// ConfigName is the config file name without extension; default "flutterwave"
	ConfigName string
	// ConfigPaths are searched in order; default ".", "./config", "/etc/flutterwave"
	ConfigPaths []string
	// EnvFiles are loaded into the environment first; default ".env".
	// Missing files are skipped and variables already set are kept.
	EnvFiles []string
}

// Load reads settings from, lowest precedence first: defaults, the config
// file, then FLUTTERWAVE_* environment variables.
func Load(opts Options) (*Settings, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()

	name := opts.ConfigName
	if name == "" {
		name = "flutterwave"
	}
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	paths := opts.ConfigPaths
	if len(paths) == 0 {
		paths = []string{".", "./config", "/etc/flutterwave"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault(KeyServerAddress, ":8080")
	v.SetDefault(KeyLoggingLevel, "info")
	// unmarshal only sees keys viper knows about
	for _, key := range []string{KeyPublicKey, KeySecretKey, KeySecretHash, KeyEncryptionKey, KeyBaseURL} {
		if err := v.BindEnv(key); err != nil {
			return nil, ierr.WithError(err).Mark(ierr.ErrConfig)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !ierr.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, ierr.WithError(err).
				WithHintf("Could not read config file %s", v.ConfigFileUsed()).
				Mark(ierr.ErrConfig)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrConfig)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks that the required settings are present
func (s Settings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return ierr.WithError(err).
			WithHint("Set FLUTTERWAVE_PUBLIC_KEY and FLUTTERWAVE_SECRET_KEY").
			Mark(ierr.ErrConfig)
	}
	return nil
}

// GetString returns a setting by key, so Settings can be handed to
// flw.NewFromSource
func (s Settings) GetString(key string) string {
	switch key {
	case KeyPublicKey:
		return s.PublicKey
	case KeySecretKey:
		return s.SecretKey
	case KeySecretHash:
		return s.SecretHash
	case KeyEncryptionKey:
		return s.EncryptionKey
	case KeyBaseURL:
		return s.BaseURL
	case KeyServerAddress:
		return s.Server.Address
	case KeyLoggingLevel:
		return s.Logging.Level
	default:
		return ""
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return ierr.WithError(err).
				WithHintf("Could not parse env file %s", f).
				Mark(ierr.ErrConfig)
		}
	}
	return nil
}
