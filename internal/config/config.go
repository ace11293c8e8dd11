package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every environment-driven setting the service consumes.
type Config struct {
	APIKey          string
	CandidateModels []string

	Port      string
	RedisAddr string
	CacheTTL  time.Duration

	EnableTrendAnalysis     bool
	EnableInspirationSearch bool

	MinPostLength int
	MaxPostLength int
	MaxPosts      int
	DefaultPosts  int

	ToneOptions []string
	PostTypes   []string
}

// DefaultModels is the ordered candidate list tried at startup.
var DefaultModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
	"models/gemini-1.5-flash",
	"models/gemini-1.5-pro",
	"models/gemini-pro",
}

var defaultTones = []string{
	"Professional", "Conversational", "Enthusiastic", "Educational",
	"Inspirational", "Analytical", "Thought Leadership", "Personal Storytelling",
}

var defaultPostTypes = []string{
	"Story", "Tips", "Question", "Industry Insight", "Personal Experience",
	"Tutorial", "Case Study", "Opinion Piece",
}

// LoadEnv loads local env files if present, falling back to the process
// environment.
func LoadEnv(logger *logrus.Logger) {
	for _, file := range []string{".env", ".env.dev"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil && logger != nil {
			logger.WithError(err).Warnf("Failed to load %s", file)
		}
	}
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		APIKey:                  os.Getenv("GEMINI_API_KEY"),
		CandidateModels:         getEnvList("GEMINI_MODELS", DefaultModels),
		Port:                    getEnv("PORT", "8080"),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		CacheTTL:                time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		EnableTrendAnalysis:     getEnvBool("ENABLE_TREND_ANALYSIS", true),
		EnableInspirationSearch: getEnvBool("ENABLE_INSPIRATION_SEARCH", true),
		MinPostLength:           getEnvInt("MIN_POST_LENGTH", 1000),
		MaxPostLength:           getEnvInt("MAX_POST_LENGTH", 1300),
		MaxPosts:                getEnvInt("MAX_POSTS", 5),
		DefaultPosts:            getEnvInt("DEFAULT_POSTS", 3),
		ToneOptions:             defaultTones,
		PostTypes:               defaultPostTypes,
	}
}

// Validate returns the list of configuration problems. An empty list means
// the service can start.
func (c Config) Validate() []string {
	var errs []string
	if c.APIKey == "" {
		errs = append(errs, "GEMINI_API_KEY environment variable is required")
	}
	if len(c.CandidateModels) == 0 {
		errs = append(errs, "at least one candidate model is required")
	}
	if c.MinPostLength <= 0 || c.MaxPostLength < c.MinPostLength {
		errs = append(errs, "post length bounds are invalid")
	}
	return errs
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// GetLogLevel reads LOG_LEVEL from the environment.
func GetLogLevel() logrus.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
