package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServiceName string

	ServerPort int

	MongoURI string
	MongoDB  string

	AccessTokenSecret []byte

	LogLevel string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "farm-to-table"),

		ServerPort: EnvIntDefault("SERVER_PORT", 5200),

		MongoURI: os.Getenv("ATLAS_URI"),
		MongoDB:  EnvDefault("MONGO_DB", "farmtotable"),

		AccessTokenSecret: []byte(os.Getenv("ACCESS_TOKEN_SECRET")),

		LogLevel: os.Getenv("LOG_LEVEL"),
	}
}

// Validate reports the first missing required env var. The caller
// treats any error as fatal at startup.
func (c Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing required env ATLAS_URI")
	}
	if len(c.AccessTokenSecret) == 0 {
		return fmt.Errorf("missing required env ACCESS_TOKEN_SECRET")
	}
	return nil
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
