package neighbor

import (
	"errors"
	"fmt"

	"github.com/viant/wordvec/table"
)

// ErrPosition reports a coordinate index outside the table dimension.
var ErrPosition = errors.New("neighbor: position out of range")

// CumulativeMean returns the running mean of values: element i is the mean
// of values[0..i].
func CumulativeMean(values []float64) []float64 {
	ret := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		ret[i] = sum / float64(i+1)
	}
	return ret
}

// PositionValues returns coordinate pos of the vector of every vocabulary
// member of words, in input order.
func PositionValues(t table.Table, words []string, pos int) ([]float64, error) {
	if pos < 0 || pos >= t.Dimension() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPosition, pos, t.Dimension())
	}
	members := Members(t, words)
	ret := make([]float64, 0, len(members))
	for _, token := range members {
		vec, _ := t.Vector(token)
		ret = append(ret, float64(vec[pos]))
	}
	return ret, nil
}

// CumulativeMeanAt returns the running mean of coordinate pos over the
// vocabulary members of words, without its first skip entries. The result is
// empty when there are no more than skip values.
func CumulativeMeanAt(t table.Table, words []string, pos, skip int) ([]float64, error) {
	values, err := PositionValues(t, words, pos)
	if err != nil {
		return nil, err
	}
	if skip < 0 {
		skip = 0
	}
	if len(values) <= skip {
		return []float64{}, nil
	}
	return CumulativeMean(values)[skip:], nil
}
