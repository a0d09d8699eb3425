package loader

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/wordvec/table/memory"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Load downloads the embedding file at URL and builds an in-memory table.
func Load(ctx context.Context, URL string, opts ...Option) (*memory.Table, error) {
	options := newOptions(opts...)
	fs := afs.New()
	reader, err := fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", URL, err)
	}
	defer reader.Close()
	tbl, err := Read(reader, detectFormat(URL, options.Format), opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", URL, err)
	}
	options.logf("loader: loaded %d vectors of dimension %d from %s", tbl.Len(), tbl.Dimension(), URL)
	return tbl, nil
}

// Read parses embeddings of the given format from r, transparently
// decompressing gzip input.
func Read(r io.Reader, format Format, opts ...Option) (*memory.Table, error) {
	options := newOptions(opts...)
	br := bufio.NewReaderSize(r, 64*1024)
	if magic, _ := br.Peek(len(gzipMagic)); bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("loader: gzip: %w", err)
		}
		defer gz.Close()
		br = bufio.NewReaderSize(gz, 64*1024)
	}
	var tokens []string
	var vectors [][]float32
	var err error
	switch format {
	case FormatBinary:
		tokens, vectors, err = readBinary(br, options.Limit)
	case FormatText, FormatAuto:
		tokens, vectors, err = readText(br, options.Limit)
	default:
		return nil, fmt.Errorf("loader: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("loader: no vectors found")
	}
	return memory.New(tokens, vectors)
}

func detectFormat(URL string, format Format) Format {
	if format != FormatAuto {
		return format
	}
	name := strings.TrimSuffix(strings.ToLower(URL), ".gz")
	if strings.HasSuffix(name, ".bin") {
		return FormatBinary
	}
	return FormatText
}
