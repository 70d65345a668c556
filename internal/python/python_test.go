package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersionFromBanner(t *testing.T) {
	version, err := parseVersion([]byte("Python 3.11.4\n"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "3.11.4", version)
}

func TestParseVersionWithoutPatchNumber(t *testing.T) {
	version, err := parseVersion([]byte("Python 3.9"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "3.9", version)
}

func TestParseVersionRejectsGarbage(t *testing.T) {
	_, err := parseVersion([]byte("command not found"))
	assert.Error(t, err)
}

func TestNewInterpreterDefaultBinary(t *testing.T) {
	interpreter := NewInterpreter("")
	assert.Equal(t, DEFAULT_BINARY, interpreter.Binary())
}

func TestNewInterpreterCustomBinary(t *testing.T) {
	interpreter := NewInterpreter("python3")
	assert.Equal(t, "python3", interpreter.Binary())
}
