package settings

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewViper returns a viper instance preloaded with defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	def := Default()

	v.SetDefault("inventory.queue_capacity", def.Inventory.QueueCapacity)
	v.SetDefault("inventory.stack_capacity", def.Inventory.StackCapacity)
	v.SetDefault("inventory.kinds", def.Inventory.Kinds)
	v.SetDefault("inventory.seed", def.Inventory.Seed)
	v.SetDefault("inventory.first_id", def.Inventory.FirstID)

	v.SetDefault("logger.log_level", def.Logger.LogLevel)
	v.SetDefault("logger.file_log_name", def.Logger.FileLogName)
	v.SetDefault("logger.max_size", def.Logger.MaxSize)
	v.SetDefault("logger.max_backups", def.Logger.MaxBackups)
	v.SetDefault("logger.max_age", def.Logger.MaxAge)
	v.SetDefault("logger.compress", def.Logger.Compress)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (any format viper knows by extension),
// applies PIECES_* environment overrides and validates the result.
// An empty path skips the file and uses defaults plus environment.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints, including StackCapacity < QueueCapacity.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
