package config

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "ORGSCOPE"

var ErrInvalidOrgName = errors.New("invalid organization name")

// github logins: alphanumerics and single hyphens, no leading or trailing hyphen
var orgNameRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9]|-(?:[a-zA-Z0-9])){0,38}$`)

type GitHub struct {
	APIURL  string        `mapstructure:"api_url"`
	Token   string        `mapstructure:"token"`
	Org     string        `mapstructure:"org"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retries int           `mapstructure:"retries"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Demo struct {
	Unit time.Duration `mapstructure:"unit"`
}

type Config struct {
	GitHub GitHub `mapstructure:"github"`
	Log    Log    `mapstructure:"log"`
	Demo   Demo   `mapstructure:"demo"`
}

func (c *Config) Validate() error {
	if c.GitHub.APIURL == "" {
		return fmt.Errorf("github.api_url is required")
	}

	if c.GitHub.Org != "" {
		if err := ValidateOrgName(c.GitHub.Org); err != nil {
			return err
		}
	}

	if c.GitHub.Retries < 0 {
		return fmt.Errorf("github.retries must not be negative")
	}

	return nil
}

func ValidateOrgName(name string) error {
	if !orgNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidOrgName, name)
	}

	return nil
}

func NewConfig() *Config {
	return &Config{
		GitHub: GitHub{
			APIURL:  "https://api.github.com",
			Timeout: 30 * time.Second,
		},
		Log:  Log{Level: "warn"},
		Demo: Demo{Unit: time.Second},
	}
}

type ConfigParser struct {
	v *viper.Viper
}

func NewConfigParser() *ConfigParser {
	v := viper.New()

	defaults := NewConfig()
	v.SetDefault("github.api_url", defaults.GitHub.APIURL)
	v.SetDefault("github.token", "")
	v.SetDefault("github.org", "")
	v.SetDefault("github.timeout", defaults.GitHub.Timeout)
	v.SetDefault("github.retries", defaults.GitHub.Retries)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("demo.unit", defaults.Demo.Unit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigParser{v: v}
}

// Viper exposes the underlying instance so command flags can be bound to it.
func (c *ConfigParser) Viper() *viper.Viper {
	return c.v
}

// Parse reads configPath, when given, on top of defaults and ORGSCOPE_* variables.
func (c *ConfigParser) Parse(configPath string) (*Config, error) {
	if configPath != "" {
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(path.Dir(configPath))
		c.v.SetConfigFile(configPath)

		err := c.v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config

	err := c.v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
