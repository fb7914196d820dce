// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Configure latches on first use, so all tests in this package share one
// captured writer.
var testBuf bytes.Buffer

func TestMain(m *testing.M) {
	Configure(Config{Level: "debug", Output: &testBuf, Service: "viewsvg-test"})
	os.Exit(m.Run())
}

func TestConfigureOnce(t *testing.T) {
	testBuf.Reset()
	// Must be a no-op: the TestMain configuration already latched.
	Configure(Config{Level: "error", Service: "other"})

	Base().Info().Str("event", "test.configured").Msg("hello")

	require.NotZero(t, testBuf.Len(), "configured writer should receive log output")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lastLine(testBuf.Bytes()), &entry))
	assert.Equal(t, "viewsvg-test", entry["service"])
	assert.Equal(t, "test.configured", entry["event"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "version")
}

func TestWithComponent(t *testing.T) {
	testBuf.Reset()

	WithComponent("render").Info().Msg("component message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lastLine(testBuf.Bytes()), &entry))
	assert.Equal(t, "render", entry["component"])
}

func TestDerive(t *testing.T) {
	testBuf.Reset()

	l := Derive(func(c *zerolog.Context) {
		*c = c.Str("scene", "cube.yaml")
	})
	l.Info().Msg("derived")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lastLine(testBuf.Bytes()), &entry))
	assert.Equal(t, "cube.yaml", entry["scene"])
}

func lastLine(b []byte) []byte {
	b = bytes.TrimRight(b, "\n")
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return b[i+1:]
	}
	return b
}
