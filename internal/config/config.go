package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the shared configuration for both binaries. The TUI only reads
// APIURL; the analyzer service reads the rest.
type Config struct {
	APIURL   string `envconfig:"API_URL" default:"http://localhost:8000"`
	Port     int    `envconfig:"PORT" default:"8000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	DataDir  string `envconfig:"DATA_DIR" default:"./data"`

	// Sentiment provider (optional; neutral multipliers without a key).
	SentimentAPIURL string `envconfig:"SENTIMENT_API_URL" default:"https://api.groq.com/openai/v1/chat/completions"`
	SentimentAPIKey string `envconfig:"SENTIMENT_API_KEY"`
	SentimentModel  string `envconfig:"SENTIMENT_MODEL" default:"llama-3.3-70b-versatile"`

	// Nightly bulk re-analysis (six-field cron, seconds first).
	AnalyzeCron string `envconfig:"ANALYZE_CRON" default:"0 0 0 * * *"`

	// Tracked universe, exchange product IDs.
	Symbols []string `envconfig:"SYMBOLS" default:"BTC-USD,ETH-USD,USDT-USD,XRP-USD,BNB-USD,SOL-USD,USDC-USD,DOGE-USD,ADA-USD,TRX-USD,AVAX-USD,LINK-USD,SHIB-USD,DOT-USD,BCH-USD,LTC-USD,XLM-USD,UNI-USD,PYUSD-USD,DAI-USD,APT-USD,ICP-USD,FDUSD-USD,TUSD-USD"`
}

// Load reads configuration from the environment, with .env as a fallback
// source. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
