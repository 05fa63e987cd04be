package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`

	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	CORSOrigins []string `yaml:"cors_origins"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8000"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", configPath, err)
	}

	return &cfg
}

// DSN arma la cadena de conexión MySQL a partir del config.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=%v",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.ParseTime,
	)
}
