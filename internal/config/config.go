package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// EnvKey selects which .env.<env> files are loaded
const EnvKey = "TORNEIO_ENV"

// Config is the process configuration read from the environment
type Config struct {
	Env string `env:"TORNEIO_ENV" envDefault:"development"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DiceSides           int  `env:"DICE_SIDES" envDefault:"6"`
	MaxRollOffRounds    int  `env:"MAX_ROLL_OFF_ROUNDS" envDefault:"10"`
	MaxEntrants         int  `env:"MAX_ENTRANTS" envDefault:"64"`
	DefaultRegeneration uint `env:"DEFAULT_REGENERATION" envDefault:"10"`
}

// Load reads env files from the working directory, then parses the environment
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads .env.<env>.local, .env.<env> and .env from dir, then parses the environment.
// Earlier files win, and variables already set in the process win over all files.
func LoadFrom(dir string) (*Config, error) {
	name := os.Getenv(EnvKey)
	if name == "" {
		name = "development"
	}

	for _, file := range []string{".env." + name + ".local", ".env." + name, ".env"} {
		path := filepath.Join(dir, file)
		if err := godotenv.Load(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Level returns the configured log level
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
