// Package output composes the result sinks a diffed pair is written to.
package output

import (
	"path/filepath"
	"slices"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/zerr"
)

// Chain fans one diff result out to an ordered list of sinks.
type Chain struct {
	sinks []ports.ResultSink
}

// NewChain selects the sinks for formats, in the order the formats are given.
// When no format selects a sink, the database sink is used.
func NewChain(formats []domain.OutputFormat, sinks map[domain.OutputFormat]ports.ResultSink) *Chain {
	c := &Chain{}
	for _, format := range formats {
		if sink, ok := sinks[format]; ok && !c.has(format) {
			c.Add(sink)
		}
	}
	if sink, ok := sinks[domain.FormatBinary]; ok && c.IsEmpty() {
		c.Add(sink)
	}
	return c
}

// Add appends a sink.
func (c *Chain) Add(sink ports.ResultSink) {
	c.sinks = append(c.sinks, sink)
}

// IsEmpty reports whether the chain has no sinks.
func (c *Chain) IsEmpty() bool {
	return len(c.sinks) == 0
}

// Len returns the number of sinks.
func (c *Chain) Len() int {
	return len(c.sinks)
}

// Formats returns the formats of the sinks in write order.
func (c *Chain) Formats() []domain.OutputFormat {
	formats := make([]domain.OutputFormat, 0, len(c.sinks))
	for _, sink := range c.sinks {
		formats = append(formats, sink.Format())
	}
	return formats
}

func (c *Chain) has(format domain.OutputFormat) bool {
	return slices.ContainsFunc(c.sinks, func(s ports.ResultSink) bool { return s.Format() == format })
}

// Destination returns the path the sink with the given extension writes result to inside dir.
func Destination(dir string, result *domain.DiffResult, extension string) (string, error) {
	return domain.TruncatedFilename(
		dir+string(filepath.Separator),
		result.Primary.Filename,
		domain.PairSeparator,
		result.Secondary.Filename,
		extension,
	)
}

// Write invokes every sink in order. It stops at the first failure; artifacts
// already written by earlier sinks are kept.
func (c *Chain) Write(dir string, result *domain.DiffResult, graphs *domain.MatchingContext) error {
	for _, sink := range c.sinks {
		path, err := Destination(dir, result, sink.Extension())
		if err != nil {
			return err
		}
		if err := sink.Write(path, result, graphs); err != nil {
			err = zerr.Wrap(err, domain.ErrSinkWriteFailed.Error())
			err = zerr.With(err, "format", string(sink.Format()))
			return zerr.With(err, "path", path)
		}
	}
	return nil
}
