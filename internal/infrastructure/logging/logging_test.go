package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Setup("debug", "production")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup("nonsense", "development")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
