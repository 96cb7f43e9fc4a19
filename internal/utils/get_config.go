package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigFile     = "config.yaml"
	DefaultPort           = "8000"
	DefaultDatabaseDriver = "mongo"
)

type Config struct {
	// Document store configuration
	DatabaseURL    string `yaml:"DATABASE_URL"`
	DatabaseName   string `yaml:"DATABASE_NAME"`
	DatabaseDriver string `yaml:"DATABASE_DRIVER"`

	// Server configuration
	Port         string `yaml:"PORT"`
	Env          string `yaml:"ENV"`
	LogFile      string `yaml:"LOG_FILE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`
}

var config Config

func LoadConfig() {
	LoadConfigFrom(DefaultConfigFile)
}

// LoadConfigFrom reads the yaml file at path, when present, and lets the
// process environment override every key.
func LoadConfigFrom(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading YAML file: %s\n", err)
		}
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	overrideFromEnv("DATABASE_URL", &config.DatabaseURL)
	overrideFromEnv("DATABASE_NAME", &config.DatabaseName)
	overrideFromEnv("DATABASE_DRIVER", &config.DatabaseDriver)
	overrideFromEnv("PORT", &config.Port)
	overrideFromEnv("ENV", &config.Env)
	overrideFromEnv("LOG_FILE", &config.LogFile)
	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Ignoring RATE_LIMIT_MAX=%q: %s\n", v, err)
		} else {
			config.RateLimitMax = n
		}
	}

	if config.Port == "" {
		config.Port = DefaultPort
	}
	if config.DatabaseDriver == "" {
		config.DatabaseDriver = DefaultDatabaseDriver
	}
}

func overrideFromEnv(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func GetConfig(key string) string {
	switch key {
	case "DATABASE_URL":
		return config.DatabaseURL
	case "DATABASE_NAME":
		return config.DatabaseName
	case "DATABASE_DRIVER":
		return config.DatabaseDriver
	case "PORT":
		return config.Port
	case "ENV":
		return config.Env
	case "LOG_FILE":
		return config.LogFile
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	default:
		return ""
	}
}

func GetConfigInt(key string) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return 0
	}
	return n
}
