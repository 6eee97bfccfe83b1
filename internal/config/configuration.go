package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Blob     BlobConfig     `yaml:"blob"`
	Auth     AuthConfig     `yaml:"auth"`
	Suggest  SuggestConfig  `yaml:"suggest"`
	Janitor  JanitorConfig  `yaml:"janitor"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	SqlitePath string `yaml:"sqlitePath"`
}

// BlobConfig points at the photo object store. Access and secret keys come
// from BLOB_ACCESS_KEY / BLOB_SECRET_KEY, never from the file.
type BlobConfig struct {
	Endpoint       string `yaml:"endpoint"`
	PublicEndpoint string `yaml:"publicEndpoint"`
	Bucket         string `yaml:"bucket"`
	UseSSL         bool   `yaml:"useSSL"`
}

type AuthConfig struct {
	JWTSecret       string `yaml:"jwtSecret"`
	ExpirationHours int    `yaml:"expirationHours"`
}

// SuggestConfig configures the optional box-name suggester. The API key is
// read from OPENAI_API_KEY; an empty key disables the feature.
type SuggestConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

type JanitorConfig struct {
	Schedule string `yaml:"schedule"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Configuration) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.RequestConfig.SizeLimit == 0 {
		config.Server.RequestConfig.SizeLimit = 32
	}
	if config.Database.Driver == "" {
		config.Database.Driver = "postgres"
	}
	if config.Auth.JWTSecret == "" {
		config.Auth.JWTSecret = "change-me-in-production"
	}
	if config.Auth.ExpirationHours == 0 {
		config.Auth.ExpirationHours = 24
	}
	if config.Suggest.URL == "" {
		config.Suggest.URL = "https://api.openai.com/v1/chat/completions"
	}
	if config.Suggest.Model == "" {
		config.Suggest.Model = "gpt-3.5-turbo"
	}
	if config.Janitor.Schedule == "" {
		config.Janitor.Schedule = "0 3 * * *"
	}
}
