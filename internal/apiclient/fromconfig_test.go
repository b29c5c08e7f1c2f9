package apiclient

import (
	"testing"
	"time"

	"github.com/daryllundy/resume-builder-sub000/config"

	"github.com/stretchr/testify/assert"
)

func TestNewFromConfigWiresLatencyAndBackend(t *testing.T) {
	cfg := &config.Config{
		BackendBaseURL:     "http://backend.local/",
		SimulatedLatencyMS: 40,
	}

	c := NewFromConfig(nil, nil, nil, cfg)

	assert.Equal(t, 40*time.Millisecond, c.latency)
	assert.Equal(t, "http://backend.local", c.backendBaseURL)
}
