package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting for the pipeline server.
type Config struct {
	// Gemini API
	GeminiAPIKey   string
	DiscoveryModel string
	ScriptModel    string
	TTSModel       string
	TTSVoice       string
	ImageModel     string
	VideoModel     string

	// Video generation
	VideoResolution      string
	VideoAspectRatio     string
	VideoSnippetLimit    int
	VideoPollInterval    time.Duration
	VideoPollMaxAttempts int

	// Publish simulation
	PublishDelay time.Duration

	// Redis
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Server
	Port string
}

var globalConfig *Config

// LoadConfig loads the .env file (if present) and environment variables.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	globalConfig = &Config{
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		DiscoveryModel: getEnv("DISCOVERY_MODEL", "gemini-3-flash-preview"),
		ScriptModel:    getEnv("SCRIPT_MODEL", "gemini-3-pro-preview"),
		TTSModel:       getEnv("TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		TTSVoice:       getEnv("TTS_VOICE", "Kore"),
		ImageModel:     getEnv("IMAGE_MODEL", "gemini-2.5-flash-image"),
		VideoModel:     getEnv("VIDEO_MODEL", "veo-3.1-fast-generate-preview"),

		VideoResolution:      getEnv("VIDEO_RESOLUTION", "720p"),
		VideoAspectRatio:     getEnv("VIDEO_ASPECT_RATIO", "16:9"),
		VideoSnippetLimit:    getEnvInt("VIDEO_SNIPPET_LIMIT", 100),
		VideoPollInterval:    time.Duration(getEnvInt("VIDEO_POLL_INTERVAL_SECONDS", 5)) * time.Second,
		VideoPollMaxAttempts: getEnvInt("VIDEO_POLL_MAX_ATTEMPTS", 120),

		PublishDelay: time.Duration(getEnvInt("PUBLISH_DELAY_SECONDS", 3)) * time.Second,

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		Port: getEnv("PORT", "8080"),
	}

	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	log.Printf("   Models: discovery=%s script=%s tts=%s image=%s video=%s",
		globalConfig.DiscoveryModel, globalConfig.ScriptModel, globalConfig.TTSModel,
		globalConfig.ImageModel, globalConfig.VideoModel)
	log.Printf("   Video polling: every %s, max %d attempts",
		globalConfig.VideoPollInterval, globalConfig.VideoPollMaxAttempts)

	return globalConfig, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.VideoSnippetLimit <= 0 {
		return fmt.Errorf("VIDEO_SNIPPET_LIMIT must be positive")
	}
	if c.VideoPollMaxAttempts <= 0 {
		return fmt.Errorf("VIDEO_POLL_MAX_ATTEMPTS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetRedisAddr builds the Redis connection address.
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
