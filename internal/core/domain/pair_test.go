package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFilePair(t *testing.T) {
	p := domain.NewFilePair("a.BinExport", "b.BinExport")

	assert.Equal(t, "a.BinExport vs b.BinExport", p.String())
	assert.False(t, p.IsZero())
	assert.True(t, domain.FilePair{}.IsZero())
	assert.NotEqual(t, p, domain.NewFilePair("b.BinExport", "a.BinExport"), "pairs are directional")
}

func TestFailureMessage(t *testing.T) {
	pair := domain.NewFilePair("a", "b")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "generic failure",
			err:  errors.New("boom"),
			want: "while diffing a vs b: boom",
		},
		{
			name: "resource exhaustion",
			err:  domain.ErrResourceExhausted,
			want: "out of memory diffing a vs b",
		},
		{
			name: "annotated resource exhaustion",
			err:  domain.Annotate(domain.ErrResourceExhausted, "bytes", 42),
			want: "out of memory diffing a vs b",
		},
		{
			name: "wrapped resource exhaustion",
			err:  zerr.Wrap(domain.ErrResourceExhausted, "decode"),
			want: "out of memory diffing a vs b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FailureMessage(pair, tt.err))
		})
	}
}

func TestFailureMessage_FilenameTooLong(t *testing.T) {
	dir := "/" + strings.Repeat("d", 240) + "/"
	_, err := domain.TruncatedFilename(dir, "a", "_vs_", "b", ".BinDiff")
	require.ErrorIs(t, err, domain.ErrFilenameTooLong)

	msg := domain.FailureMessage(domain.NewFilePair("a", "b"), err)
	assert.True(t, strings.HasPrefix(msg, "while diffing a vs b: "+domain.ErrFilenameTooLong.Error()))
	assert.Contains(t, msg, dir+"a_vs_b.BinDiff")
}

func TestAnnotate(t *testing.T) {
	err := domain.Annotate(domain.ErrInvalidInputs, "path", "/in")

	require.ErrorIs(t, err, domain.ErrInvalidInputs)
	assert.ErrorContains(t, err, domain.ErrInvalidInputs.Error())
}
