package loader

import (
	"fmt"
	"strings"
)

// Format identifies an embedding file layout.
type Format string

const (
	// FormatAuto selects binary for ".bin" URLs and text otherwise.
	FormatAuto   Format = ""
	FormatText   Format = "text"
	FormatBinary Format = "binary"
)

// ParseFormat converts a configuration value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatText, FormatBinary:
		return f, nil
	case "auto":
		return FormatAuto, nil
	}
	return FormatAuto, fmt.Errorf("loader: unsupported format %q", s)
}

// Options controls how an embedding file is read.
type Options struct {
	Format Format
	// Limit caps the number of entries read; 0 reads all of them.
	Limit int
	Logf  func(format string, args ...any)
}

// Option modifies Options.
type Option func(*Options)

// WithFormat forces the file format instead of detecting it from the URL.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLimit reads only the first n entries of the file.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// WithLogf sets a logger for progress messages.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(o *Options) {
		o.Logf = logf
	}
}

func newOptions(opts ...Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (o *Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}
