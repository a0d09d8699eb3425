package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineSize = 4 * 1024 * 1024

// readText parses one "<token> <v1> ... <vD>" entry per line. A first line
// holding exactly two integers is a "<count> <dim>" header.
func readText(r io.Reader, limit int) ([]string, [][]float32, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	var tokens []string
	var vectors [][]float32
	dim := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if lineNo == 1 && len(fields) == 2 {
			if _, headerDim, ok := parseHeader(fields); ok {
				dim = headerDim
				continue
			}
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("loader: line %d: missing vector values", lineNo)
		}
		if dim == 0 {
			dim = len(fields) - 1
		}
		if len(fields)-1 != dim {
			return nil, nil, fmt.Errorf("loader: line %d: %d values, want %d", lineNo, len(fields)-1, dim)
		}
		vec := make([]float32, dim)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("loader: line %d: value %d: %w", lineNo, i+1, err)
			}
			vec[i] = float32(v)
		}
		tokens = append(tokens, fields[0])
		vectors = append(vectors, vec)
		if limit > 0 && len(tokens) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("loader: line %d: %w", lineNo+1, err)
	}
	return tokens, vectors, nil
}

func parseHeader(fields []string) (count, dim int, ok bool) {
	if len(fields) != 2 {
		return 0, 0, false
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return 0, 0, false
	}
	dim, err = strconv.Atoi(fields[1])
	if err != nil || dim <= 0 {
		return 0, 0, false
	}
	return count, dim, true
}
