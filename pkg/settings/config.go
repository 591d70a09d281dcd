package settings

type Config struct {
	Inventory Inventory `mapstructure:"inventory"`
	Logger    Logger    `mapstructure:"logger"`
}

// Inventory is the configuration for the piece queue and reserve stack
type Inventory struct {
	QueueCapacity int    `mapstructure:"queue_capacity" validate:"min=1"`
	StackCapacity int    `mapstructure:"stack_capacity" validate:"min=1,ltfield=QueueCapacity"`
	Kinds         string `mapstructure:"kinds" validate:"required,printascii"`
	Seed          uint64 `mapstructure:"seed"`     // 0 picks a time-based seed
	FirstID       int64  `mapstructure:"first_id" validate:"min=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"min=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"min=0"`
	Compress    bool   `mapstructure:"compress"`
}
