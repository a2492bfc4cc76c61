package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	Translator TranslatorConfig `mapstructure:"translator" yaml:"translator"`
}

// TranslatorConfig carries completion-provider credentials. None of these
// affect relay behavior; the relay runs fine with all of them empty.
type TranslatorConfig struct {
	OpenRouterKey string `mapstructure:"openrouter_api_key" yaml:"-"`
	OpenAIKey     string `mapstructure:"openai_api_key" yaml:"-"`
	Referer       string `mapstructure:"http_referer" yaml:"http_referer"`
	Title         string `mapstructure:"app_title" yaml:"app_title"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":5000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		Translator: TranslatorConfig{
			Referer: "http://localhost:3000",
			Title:   "Multilingual Chat App",
		},
	}
}
