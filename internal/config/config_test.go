package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "dnamatch", cfg.MongoDBName)
	assert.Equal(t, "localhost:6379", cfg.RedisHost)
	assert.Equal(t, "sequences:stream", cfg.RedisStreamKey)
	assert.Equal(t, 24*time.Hour, cfg.StreamRetentionDuration)
	assert.Equal(t, 5, cfg.MaxConcurrentAnalyses)
	assert.Equal(t, 10*time.Minute, cfg.AnalysisTimeout)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MAX_CONCURRENT_ANALYSES", "12")
	t.Setenv("ANALYSIS_TIMEOUT", "90s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxConcurrentAnalyses)
	assert.Equal(t, 90*time.Second, cfg.AnalysisTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing mongo uri", mutate: func(c *Config) { c.MongoURI = "" }, wantErr: true},
		{name: "missing jwt secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: true},
		{name: "zero concurrency", mutate: func(c *Config) { c.MaxConcurrentAnalyses = 0 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.AnalysisTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				MongoURI:                "mongodb://localhost:27017",
				MongoDBName:             "dnamatch",
				RedisHost:               "localhost:6379",
				JWTSecret:               "secret",
				MaxConcurrentAnalyses:   5,
				AnalysisTimeout:         time.Minute,
				StreamRetentionDuration: time.Hour,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
