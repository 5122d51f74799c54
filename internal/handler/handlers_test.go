package handler

import (
	"testing"

	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/mapper"
	"github.com/krazykeith/apistarter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(httpAddress string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Environment: "test", Version: "0.0.1"},
		Auth:   config.Auth{Audience: "handlers-test", Issuer: "apistarter-test"},
		Server: config.Server{HTTPAddress: httpAddress},
	}
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, mapper.NewPersonMapper(), newTestConfig(":8080"), []byte("key"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddresses verifies that an empty server configuration
// fails with errNoHandlersAreCreated.
func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, mapper.NewPersonMapper(), newTestConfig(""), []byte("key"), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent *Handlers values.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := newTestConfig(":8080")

	h1, err1 := NewHandlers(&service.Services{}, mapper.NewPersonMapper(), cfg, []byte("key"), logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, mapper.NewPersonMapper(), cfg, []byte("key"), logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
