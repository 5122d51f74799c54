package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingAudience(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrAudienceIsRequired)
}

func TestValidate_AudiencePresent(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.Audience = "api-starter-clients"
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "production", cfg.App.Environment)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "apistarter", cfg.Auth.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.Environment = EnvDevelopment
	cfg.Auth.Issuer = "custom-issuer"
	cfg.Auth.TokenDuration = time.Hour
	cfg.Server.HTTPAddress = "localhost:9999"

	cfg.applyDefaults()

	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "custom-issuer", cfg.Auth.Issuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}
