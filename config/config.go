package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Xtream  Xtream  `json:"xtream" yaml:"xtream" mapstructure:"xtream"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Manager Manager `json:"manager" yaml:"manager" mapstructure:"manager"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"required,oneof=http https"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host" validate:"required"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	Language    string        `json:"language" yaml:"language" mapstructure:"language"`
}

// Server returns the base url of the TMDB API
func (t TMDB) Server() string {
	return fmt.Sprintf("%s://%s", t.Scheme, t.Host)
}

// Xtream is the catalog provider
type Xtream struct {
	BaseURL  string        `json:"baseURL" yaml:"baseURL" mapstructure:"baseURL" validate:"required,url"`
	Username string        `json:"username" yaml:"username" mapstructure:"username" validate:"required"`
	Password string        `json:"password" yaml:"password" mapstructure:"password" validate:"required"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Manager houses configuration related to syncing the catalog
type Manager struct {
	// LockFile is shared by every process syncing the same database. Empty disables it.
	LockFile string `json:"lockFile" yaml:"lockFile" mapstructure:"lockFile"`
	Jobs     Jobs   `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

type Jobs struct {
	FullSync time.Duration `json:"fullSync" yaml:"fullSync" mapstructure:"fullSync" validate:"gte=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the settings needed to reach the upstream services
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
