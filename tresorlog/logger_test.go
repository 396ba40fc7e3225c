package tresorlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToTextStdout(t *testing.T) {
	l, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, "tresor", l.component)
}

func TestWithComponentTagsLines(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil)), component: "tresor"}
	tagged := l.WithComponent("seal")
	tagged.Info("sealed store", "entries", 2)

	assert.Contains(t, buf.String(), `"component":"seal"`)
	assert.Contains(t, buf.String(), `"entries":2`)
}
