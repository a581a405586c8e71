package series_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/costgraph/internal/series"
)

func TestParseBareValues(t *testing.T) {
	s, err := series.Parse(strings.NewReader("1.5\n2\n\n3.25\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 3.25}, s.Values)
	assert.Equal(t, []string{"1", "2", "3"}, s.Labels)
}

func TestParseLabeledValues(t *testing.T) {
	input := `
# date      cost
2025-06-01  $12.40
2025-06-02  $1,204.00
Jun 3 2025  -$3.10
`
	s, err := series.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "Jun 3 2025"}, s.Labels)
	assert.Equal(t, []float64{12.40, 1204, -3.10}, s.Values)
}

func TestParseMissingValues(t *testing.T) {
	s, err := series.Parse(strings.NewReader("a 1\nb -\nc null\nd NaN\ne 2\n"))
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())
	assert.Equal(t, 1.0, s.Values[0])
	assert.True(t, math.IsNaN(s.Values[1]))
	assert.True(t, math.IsNaN(s.Values[2]))
	assert.True(t, math.IsNaN(s.Values[3]))
	assert.Equal(t, 2.0, s.Values[4])
}

func TestParseSkipsGarbage(t *testing.T) {
	s, err := series.Parse(strings.NewReader("1\nabc\n2\nx +Inf\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Values)
	assert.Equal(t, []string{"1", "2"}, s.Labels)
}

func TestParseNoData(t *testing.T) {
	_, err := series.Parse(strings.NewReader("\n# nothing here\n"))
	assert.True(t, errors.Is(err, series.ErrNoData))

	_, err = series.Parse(strings.NewReader("junk\n"))
	assert.True(t, errors.Is(err, series.ErrNoData))
}

func TestTail(t *testing.T) {
	s := series.Series{
		Labels: []string{"a", "b", "c", "d"},
		Values: []float64{1, 2, 3, 4},
	}

	got := s.Tail(2)
	assert.Equal(t, []string{"c", "d"}, got.Labels)
	assert.Equal(t, []float64{3, 4}, got.Values)

	assert.Equal(t, s, s.Tail(0))
	assert.Equal(t, s, s.Tail(10))
}
