package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Search SearchConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// MongoConfig contains document store connection configuration
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout int // in seconds
	MaxPoolSize    int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// SearchConfig contains proximity search configuration
type SearchConfig struct {
	DefaultRadiusMeters float64
	GeoCacheEnabled     bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
