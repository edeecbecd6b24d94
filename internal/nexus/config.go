package nexus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ConfigError represents domain-specific configuration errors
type ConfigError struct {
	Code    string
	Message string
	Cause   error
}

func (e ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeDotEnv       = "CONFIG_DOTENV_FAILED"
	ErrCodeFileNotFound = "CONFIG_FILE_NOT_FOUND"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
)

// LoaderOptions contains configuration for the loader
type LoaderOptions struct {
	DotEnvFile string
	FileName   string
	Defaults   interface{}
	Validate   *validator.Validate
}

// LoaderOption is a functional option for configuring the loader
type LoaderOption func(*LoaderOptions)

// WithDotEnv sets the dotenv file exported into the process before reading.
// Variables already present in the environment win.
func WithDotEnv(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DotEnvFile = fileName
	}
}

// WithFileName sets a yaml, json or toml file read before the environment.
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
	}
}

// WithDefaults fills zero fields left after reading from defaults, a value of the same type.
func WithDefaults(defaults interface{}) LoaderOption {
	return func(o *LoaderOptions) {
		o.Defaults = defaults
	}
}

// Loader reads a config struct from dotenv, file and environment, then validates it.
type Loader struct {
	options LoaderOptions
}

// NewLoader creates a new configuration loader with options
func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DotEnvFile: ".env",
		Validate:   validator.New(),
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Loader{options: options}
}

// Load populates cfg, which must be a pointer to struct.
func (l *Loader) Load(cfg interface{}) error {
	if v := reflect.ValueOf(cfg); v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if err := l.loadDotEnv(); err != nil {
		return err
	}

	if l.options.FileName != "" {
		// ReadConfig applies the environment on top of the file.
		if err := cleanenv.ReadConfig(l.options.FileName, cfg); err != nil {
			return &ConfigError{
				Code:    ErrCodeFileNotFound,
				Message: "failed to read configuration file " + l.options.FileName,
				Cause:   err,
			}
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{Code: ErrCodeEnvironment, Message: "failed to read environment variables", Cause: err}
	}

	if l.options.Defaults != nil {
		if err := mergo.Merge(cfg, l.options.Defaults); err != nil {
			return &ConfigError{Code: ErrCodeMerge, Message: "failed to merge defaults", Cause: err}
		}
	}

	if err := l.options.Validate.Struct(cfg); err != nil {
		return &ConfigError{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
	}

	return nil
}

func (l *Loader) loadDotEnv() error {
	if l.options.DotEnvFile == "" {
		return nil
	}
	if _, err := os.Stat(l.options.DotEnvFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(l.options.DotEnvFile); err != nil {
		return &ConfigError{Code: ErrCodeDotEnv, Message: "failed to load " + l.options.DotEnvFile, Cause: err}
	}
	return nil
}
