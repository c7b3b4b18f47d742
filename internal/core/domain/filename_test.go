package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/differ/internal/core/domain"
)

func TestTruncatedFilename_WithinBudget(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		part1 string
		part2 string
	}{
		{"short names", "/out/", "libfoo", "libbar"},
		{"empty fragments", "/out/", "", ""},
		{"exactly at budget", "/out/", strings.Repeat("a", 116), strings.Repeat("b", 117)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.path + tt.part1 + domain.PairSeparator + tt.part2 + domain.DatabaseExtension
			require.LessOrEqual(t, len(want), domain.MaxFilenameLength)

			got, err := domain.TruncatedFilename(tt.path, tt.part1, domain.PairSeparator, tt.part2, domain.DatabaseExtension)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestTruncatedFilename_TrimsLongerFragmentFirst(t *testing.T) {
	part1 := strings.Repeat("p", 200)
	part2 := strings.Repeat("s", 50)

	// 5 + 200 + 4 + 50 + 8 = 267, so 17 characters come off the longer fragment only.
	got, err := domain.TruncatedFilename("/out/", part1, domain.PairSeparator, part2, domain.DatabaseExtension)
	require.NoError(t, err)

	assert.Len(t, got, domain.MaxFilenameLength)
	assert.Equal(t, "/out/"+strings.Repeat("p", 183)+"_vs_"+part2+".BinDiff", got)
}

func TestTruncatedFilename_SecondFragmentLonger(t *testing.T) {
	part1 := strings.Repeat("p", 40)
	part2 := strings.Repeat("s", 220)

	got, err := domain.TruncatedFilename("/o/", part1, "_vs_", part2, ".results")
	require.NoError(t, err)

	assert.Len(t, got, domain.MaxFilenameLength)
	assert.True(t, strings.HasPrefix(got, "/o/"+part1+"_vs_"))
	assert.True(t, strings.HasSuffix(got, ".results"))
}

func TestTruncatedFilename_TrimsBothEqually(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		part1Len   int
		part2Len   int
		wantEach   int
		wantLength int
	}{
		// 5 + 150 + 4 + 120 + 8 = 287: phase one trims 30, leaving 7, phase two cuts 4 from each.
		{"odd remainder", "/out/", 150, 120, 116, 249},
		// 5 + 130 + 4 + 130 + 8 = 277: equal lengths, 27 over, cut 14 from each.
		{"equal fragments", "/out/", 130, 130, 116, 249},
		// 4 + 140 + 4 + 120 + 8 = 276: phase one trims 20, leaving 6, cut 3 from each.
		{"even remainder", "/ou/", 140, 120, 117, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part1 := strings.Repeat("p", tt.part1Len)
			part2 := strings.Repeat("s", tt.part2Len)

			got, err := domain.TruncatedFilename(tt.path, part1, "_vs_", part2, ".BinDiff")
			require.NoError(t, err)

			assert.LessOrEqual(t, len(got), domain.MaxFilenameLength)
			assert.Len(t, got, tt.wantLength)
			assert.Equal(t, tt.path+strings.Repeat("p", tt.wantEach)+"_vs_"+strings.Repeat("s", tt.wantEach)+".BinDiff", got)
		})
	}
}

func TestTruncatedFilename_PrefixTooLong(t *testing.T) {
	path := "/" + strings.Repeat("d", 240) + "/"

	_, err := domain.TruncatedFilename(path, "primary", "_vs_", "secondary", ".BinDiff")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFilenameTooLong.Error())

	require.ErrorIs(t, err, domain.ErrFilenameTooLong)
	assert.ErrorContains(t, err, path+"primary_vs_secondary.BinDiff")

	var tooLong *domain.FilenameTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, path+"primary_vs_secondary.BinDiff", tooLong.Name)
}

func TestTruncatedFilename_DistinctPairsStayDistinct(t *testing.T) {
	long := strings.Repeat("x", 300)
	a, err := domain.TruncatedFilename("/out/", long+"a", "_vs_", "short1", ".BinDiff")
	require.NoError(t, err)
	b, err := domain.TruncatedFilename("/out/", "short1", "_vs_", long+"a", ".BinDiff")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
