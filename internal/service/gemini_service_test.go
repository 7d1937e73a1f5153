package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeminiService_CircuitBreakerRejectsCalls(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 2, RequestTimeout: time.Second, CircuitCooldown: time.Minute}
	s.recordFailure()
	s.recordFailure()

	_, err := s.GenerateContent(context.Background(), "gemini-2.0-flash", "prompt", nil)
	assert.ErrorContains(t, err, "circuit breaker open")

	n, open := s.GetCircuitBreakerStatus()
	assert.Equal(t, 2, n)
	assert.True(t, open)
}

func TestGeminiService_GenerateContentValidatesInput(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 5}

	_, err := s.GenerateContent(context.Background(), "", "prompt", nil)
	assert.ErrorContains(t, err, "model name")

	_, err = s.GenerateContent(context.Background(), "m", "   ", nil)
	assert.ErrorContains(t, err, "prompt cannot be empty")
}

func TestGeminiService_CircuitBreakerHalfOpensAfterCooldown(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 1, CircuitCooldown: time.Minute}
	s.consecutiveErrors.Store(1)
	s.lastFailure.Store(time.Now().Add(-2 * time.Minute).UnixNano())

	n, open := s.GetCircuitBreakerStatus()
	assert.Equal(t, 1, n)
	assert.False(t, open)
}
