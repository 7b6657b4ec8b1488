package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	// Base URL of the external emotion classification service.
	EmotionServiceURL string

	// UseKeywordEmotion switches the emotion classifier to the offline
	// keyword fallback. Useful for dev and tests.
	UseKeywordEmotion bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("MINDPLUS_PORT", "8000"),

		EmotionServiceURL: getEnv("MINDPLUS_EMOTION_URL", ""),
		UseKeywordEmotion: getBoolEnv("MINDPLUS_USE_KEYWORD_EMOTION", false),
	}

	if !cfg.UseKeywordEmotion && cfg.EmotionServiceURL == "" {
		log.Fatal("MINDPLUS_EMOTION_URL must be set unless MINDPLUS_USE_KEYWORD_EMOTION=1")
	}

	return cfg
}
