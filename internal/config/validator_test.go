package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_Valid(t *testing.T) {
	res, err := ValidateFile(testPath("valid.yaml"))
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Issues)
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-level.yaml", "enum"},
		{"invalid-unknown-key.yaml", "additionalProperties"},
		{"invalid-list.yaml", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			res, err := ValidateFile(testPath(tt.file))
			require.NoError(t, err)
			assert.False(t, res.Valid)
			require.NotEmpty(t, res.Issues)
			assert.Equal(t, tt.keyword, res.Issues[0].Keyword)
		})
	}
}

func TestValidateFile_Missing(t *testing.T) {
	_, err := ValidateFile(testPath("does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestValidateYAML(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		res, err := ValidateYAML(nil)
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ValidateYAML([]byte("log_level: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("enum issue has path", func(t *testing.T) {
		res, err := ValidateYAML([]byte("log_format: xml\n"))
		require.NoError(t, err)
		require.False(t, res.Valid)
		assert.Equal(t, "/log_format", res.Issues[0].Path)
		assert.Contains(t, res.Issues[0].String(), "/log_format: ")
	})
}

func TestInvalidError(t *testing.T) {
	err := &InvalidError{Issues: []ValidationIssue{
		{Path: "/log_level", Message: "bad value", Keyword: "enum"},
		{Message: "extra key", Keyword: "additionalProperties"},
	}}
	assert.Equal(t, "invalid settings (2 issues): /log_level: bad value; extra key", err.Error())
}
