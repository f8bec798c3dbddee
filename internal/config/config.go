package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// maxOptionLen matches the width of the choice columns.
const maxOptionLen = 50

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Storage StorageConfig `yaml:"storage"`
	HTTP    HTTPConfig    `yaml:"http"`
	Voting  VotingConfig  `yaml:"voting"`
}

type StorageConfig struct {
	Driver          string        `yaml:"driver" env:"DATABASE_DRIVER" env-default:"postgres"`
	URL             string        `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME" env-default:"30m"`
}

type HTTPConfig struct {
	Port            int           `yaml:"port" env:"PORT" env-default:"3000"`
	StaticDir       string        `yaml:"static_dir" env:"STATIC_DIR" env-default:"public"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	// TrustedProxies lists proxies whose X-Forwarded-For is honoured. Empty means
	// the client address is always the peer address.
	TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`
}

type VotingConfig struct {
	// Options is the single allow-list used both for vote validation and tally seeding.
	Options       []string `yaml:"options" env:"VOTING_OPTIONS" env-default:"Moana,Encanto,Enrolados"`
	AdminPassword string   `yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

// Load reads the YAML file at path and overlays environment variables.
// With an empty path only the environment is used.
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("%s", err)
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if len(c.Voting.Options) == 0 {
		return errors.New("voting options must not be empty")
	}

	seen := make(map[string]struct{}, len(c.Voting.Options))
	for _, option := range c.Voting.Options {
		if option == "" {
			return errors.New("voting option must not be empty")
		}
		if len(option) > maxOptionLen {
			return fmt.Errorf("voting option %q is longer than %d bytes", option, maxOptionLen)
		}
		if _, ok := seen[option]; ok {
			return fmt.Errorf("duplicate voting option %q", option)
		}
		seen[option] = struct{}{}
	}

	return nil
}
