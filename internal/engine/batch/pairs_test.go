package batch_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/engine/batch"
)

func TestBuildPairs(t *testing.T) {
	got := batch.BuildPairs([]string{"a", "b", "c"}, "")

	want := []domain.FilePair{
		{Primary: "a", Secondary: "b"},
		{Primary: "a", Secondary: "c"},
		{Primary: "b", Secondary: "a"},
		{Primary: "b", Secondary: "c"},
		{Primary: "c", Secondary: "a"},
		{Primary: "c", Secondary: "b"},
	}
	assert.Equal(t, want, got)
}

func TestBuildPairs_Count(t *testing.T) {
	for n := range 7 {
		t.Run(fmt.Sprintf("%d exports", n), func(t *testing.T) {
			exports := make([]string, n)
			for i := range exports {
				exports[i] = fmt.Sprintf("e%d", i)
			}

			pairs := batch.BuildPairs(exports, "")
			assert.Len(t, pairs, n*(n-1))

			seen := make(map[domain.FilePair]bool, len(pairs))
			for _, p := range pairs {
				assert.NotEqual(t, p.Primary, p.Secondary)
				assert.False(t, seen[p], "duplicate pair %s", p)
				seen[p] = true
			}
		})
	}
}

func TestBuildPairs_Reference(t *testing.T) {
	tests := []struct {
		name      string
		exports   []string
		reference string
		want      []domain.FilePair
	}{
		{
			name:      "primary only",
			exports:   []string{"a", "b", "c"},
			reference: "b",
			want:      []domain.FilePair{{Primary: "b", Secondary: "a"}, {Primary: "b", Secondary: "c"}},
		},
		{
			name:      "unknown reference",
			exports:   []string{"a", "b"},
			reference: "z",
			want:      nil,
		},
		{
			name:      "single export",
			exports:   []string{"a"},
			reference: "",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, batch.BuildPairs(tt.exports, tt.reference))
		})
	}
}
