package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.VideoSnippetLimit != 100 {
		t.Errorf("VideoSnippetLimit = %d, want 100", cfg.VideoSnippetLimit)
	}
	if cfg.VideoPollInterval != 5*time.Second {
		t.Errorf("VideoPollInterval = %s, want 5s", cfg.VideoPollInterval)
	}
	if cfg.VideoPollMaxAttempts != 120 {
		t.Errorf("VideoPollMaxAttempts = %d, want 120", cfg.VideoPollMaxAttempts)
	}
	if cfg.TTSVoice != "Kore" {
		t.Errorf("TTSVoice = %q, want Kore", cfg.TTSVoice)
	}
	if cfg.VideoAspectRatio != "16:9" || cfg.VideoResolution != "720p" {
		t.Errorf("video format = %s %s, want 16:9 720p", cfg.VideoAspectRatio, cfg.VideoResolution)
	}
	if cfg.GetRedisAddr() != "localhost:6379" {
		t.Errorf("GetRedisAddr = %q", cfg.GetRedisAddr())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VIDEO_SNIPPET_LIMIT", "80")
	t.Setenv("VIDEO_POLL_INTERVAL_SECONDS", "2")
	t.Setenv("VIDEO_POLL_MAX_ATTEMPTS", "7")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.VideoSnippetLimit != 80 {
		t.Errorf("VideoSnippetLimit = %d, want 80", cfg.VideoSnippetLimit)
	}
	if cfg.VideoPollInterval != 2*time.Second {
		t.Errorf("VideoPollInterval = %s, want 2s", cfg.VideoPollInterval)
	}
	if cfg.VideoPollMaxAttempts != 7 {
		t.Errorf("VideoPollMaxAttempts = %d, want 7", cfg.VideoPollMaxAttempts)
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig should fail without GEMINI_API_KEY")
	}
}
