package loader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	maxBinaryDim = 1 << 20
	maxPrealloc  = 1 << 16
)

// readBinary parses the word2vec binary layout: a "<count> <dim>\n" header
// followed by count entries of "<token> " and dim little-endian float32
// values, each optionally terminated by a newline.
func readBinary(r *bufio.Reader, limit int) ([]string, [][]float32, error) {
	header, err := r.ReadString('\n')
	if err != nil {
		return nil, nil, fmt.Errorf("loader: binary header: %w", err)
	}
	count, dim, ok := parseHeader(strings.Fields(header))
	if !ok {
		return nil, nil, fmt.Errorf("loader: invalid binary header %q", strings.TrimSpace(header))
	}
	if dim > maxBinaryDim {
		return nil, nil, fmt.Errorf("loader: invalid binary header %q: dimension above %d", strings.TrimSpace(header), maxBinaryDim)
	}
	if limit > 0 && limit < count {
		count = limit
	}
	tokens := make([]string, 0, min(count, maxPrealloc))
	vectors := make([][]float32, 0, min(count, maxPrealloc))
	buf := make([]byte, 4*dim)
	for i := 0; i < count; i++ {
		token, err := readToken(r)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: entry %d: token: %w", i+1, err)
		}
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nil, fmt.Errorf("loader: entry %d (%s): vector: %w", i+1, token, err)
		}
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(buf[j*4:]))
		}
		tokens = append(tokens, token)
		vectors = append(vectors, vec)
	}
	return tokens, vectors, nil
}

// readToken reads bytes up to the next space, skipping the newline left by
// the previous entry.
func readToken(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case c == ' ':
			if sb.Len() == 0 {
				return "", fmt.Errorf("empty token")
			}
			return sb.String(), nil
		case c == '\n' && sb.Len() == 0:
			continue
		default:
			sb.WriteByte(c)
		}
	}
}
