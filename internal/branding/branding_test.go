package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "gen-features", CLIName())
	assert.Equal(t, "gen-features", DisplayName())
	assert.Equal(t, ".gen-features", HomeDir())
	assert.Equal(t, "GENFEATURES", EnvPrefix())
	assert.Equal(t, "narigama_aoc", CrateName())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "GENFEATURES_LOG_LEVEL", EnvVar("log_level"))
}
