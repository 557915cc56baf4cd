package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const APIKeyEnv = "GEMINI_API_KEY"

var GConfig *Config

// Init parses the yaml config, applies secrets from the environment and verifies the result.
func Init(data []byte) {
	// .env is optional, real environment variables win
	_ = godotenv.Load()
	initFromYaml(data)
	GConfig.applyEnv()
	GConfig.fillDefault()
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	GConfig = &Config{}
	err := yaml.Unmarshal(config, GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	Log     `yaml:",inline"`
	Gemini  `yaml:"gemini"`
	Display `yaml:"display"`
	HTTP    `yaml:"http"`
}

type Log struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
}

type Gemini struct {
	// APIKey is never read from the yaml file on purpose, see applyEnv.
	APIKey     string `yaml:"-"`
	ImageModel string `yaml:"image_model"`
	TextModel  string `yaml:"text_model"`
}

type Display struct {
	HandleTTL string `yaml:"handle_ttl"`
}

type HTTP struct {
	MaxUploadMB int `yaml:"max_upload_mb"`
}

func (c *Config) applyEnv() {
	c.Gemini.APIKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
}

func (c *Config) fillDefault() {
	if c.ImageModel == "" {
		c.ImageModel = "gemini-2.5-flash-image-preview"
	}
	if c.TextModel == "" {
		c.TextModel = "gemini-2.5-flash"
	}
	if c.HandleTTL == "" {
		c.HandleTTL = "30m"
	}
	if c.MaxUploadMB <= 0 {
		c.MaxUploadMB = 20
	}
}

func (c *Config) Verify() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("%s must be set", APIKeyEnv)
	}
	_, err := time.ParseDuration(c.HandleTTL)
	if err != nil {
		return fmt.Errorf("display.handle_ttl: %w", err)
	}
	return nil
}

func (d Display) TTL() time.Duration {
	ttl, _ := time.ParseDuration(d.HandleTTL)
	return ttl
}

func (h HTTP) MaxUploadBytes() int64 {
	return int64(h.MaxUploadMB) << 20
}
