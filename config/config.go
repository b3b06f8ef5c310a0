package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

type Config struct {
	Port          string        `mapstructure:"port"`
	AIEndpoint    string        `mapstructure:"ai_endpoint"`
	Model         string        `mapstructure:"model"`
	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys string        `mapstructure:"GEMINI_API_KEYS"`
	UploadDir     string        `mapstructure:"upload_dir"`
	MaxUploadMB   int64         `mapstructure:"max_upload_mb"`
	Summary       SummaryConfig `mapstructure:"summary"`
}

// SummaryConfig holds the server-side defaults for request options that
// the client left unset.
type SummaryConfig struct {
	MaxLength         int `mapstructure:"max_length"`
	MinLength         int `mapstructure:"min_length"`
	ChunkSize         int `mapstructure:"chunk_size"`
	ChunkOverlap      int `mapstructure:"chunk_overlap"`
	MaxReductionDepth int `mapstructure:"max_reduction_depth"`
}

// GeminiKeys splits the comma-separated key list from the environment.
func (c *Config) GeminiKeys() []string {
	var keys []string
	for _, k := range strings.Split(c.GeminiAPIKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// DefaultOptions converts the configured defaults into pipeline options.
func (c *Config) DefaultOptions() types.SummarizeOptions {
	return types.SummarizeOptions{
		ModelName:    c.Model,
		MaxLength:    c.Summary.MaxLength,
		MinLength:    c.Summary.MinLength,
		ChunkSize:    c.Summary.ChunkSize,
		ChunkOverlap: c.Summary.ChunkOverlap,
	}
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8000")
	v.SetDefault("ai_endpoint", "http://localhost:1234/v1")
	v.SetDefault("model", "sshleifer/distilbart-cnn-6-6")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("max_upload_mb", 50)
	v.SetDefault("summary.max_length", 150)
	v.SetDefault("summary.min_length", 50)
	v.SetDefault("summary.chunk_size", 1000)
	v.SetDefault("summary.chunk_overlap", 100)
	v.SetDefault("summary.max_reduction_depth", 3)

	v.AutomaticEnv()
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
