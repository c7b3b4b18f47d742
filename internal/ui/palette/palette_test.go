package palette_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/differ/internal/ui/palette"
)

func TestProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, palette.Profile(false))
	assert.Equal(t, termenv.Ascii, palette.Profile(true))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, palette.Profile(false), "NO_COLOR forces plain output")
}

func TestEnvProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, palette.EnvProfile())

	t.Setenv("NO_COLOR", "")
	p := palette.EnvProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestTone_Mark(t *testing.T) {
	assert.Equal(t, "✓", palette.Success.Mark())
	assert.Equal(t, "✗", palette.Failure.Mark())
	assert.Equal(t, "!", palette.Caution.Mark())
	assert.Empty(t, palette.Muted.Mark())
}

func TestWriter_Plain(t *testing.T) {
	var buf bytes.Buffer
	w := palette.NewWriter(&buf, termenv.Ascii)

	require.NoError(t, w.WriteLine(w.Marker(palette.Success)+" "+w.Paint(palette.Muted, "a_vs_b")))
	assert.Equal(t, "✓ a_vs_b\n", buf.String())
	assert.Empty(t, w.Marker(palette.Muted))
}

func TestWriter_Color(t *testing.T) {
	var buf bytes.Buffer
	w := palette.NewWriter(&buf, termenv.ANSI)

	require.NoError(t, w.WriteLine(w.Marker(palette.Failure)))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "✗")
}

func TestNewWriter_Nil(t *testing.T) {
	assert.NotNil(t, palette.NewWriter(nil, termenv.Ascii))
}
