package settings

const (
	DefaultQueueCapacity = 5
	DefaultStackCapacity = 3
	DefaultKinds         = "IOTL"
	DefaultLogLevel      = "info"
	DefaultMaxSize       = 10 // megabytes
	DefaultMaxBackups    = 3
	DefaultMaxAge        = 7 // days

	envPrefix = "PIECES"
)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Inventory: Inventory{
			QueueCapacity: DefaultQueueCapacity,
			StackCapacity: DefaultStackCapacity,
			Kinds:         DefaultKinds,
		},
		Logger: Logger{
			LogLevel:   DefaultLogLevel,
			MaxSize:    DefaultMaxSize,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAge,
		},
	}
}
