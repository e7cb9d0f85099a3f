package ingestion

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLines(t *testing.T) {
	frags := []fragment{
		{text: "Engineer", x: 10, y: 90},
		{text: "Doe", x: 40, y: 100.6},
		{text: "Jane", x: 10, y: 100},
	}
	// y 100 and 100.6 land in the same 2-unit bucket; higher y comes first.
	assert.Equal(t, "Jane Doe\nEngineer", buildLines(frags))
}

func TestDetectColumns(t *testing.T) {
	t.Run("few fragments never two-column", func(t *testing.T) {
		frags := []fragment{{x: 10}, {x: 200}}
		_, twoCol := detectColumns(frags)
		assert.False(t, twoCol)
	})

	t.Run("balanced halves detected", func(t *testing.T) {
		var frags []fragment
		for i := 0; i < 25; i++ {
			frags = append(frags, fragment{x: 10, y: float64(i)})
			frags = append(frags, fragment{x: 200, y: float64(i)})
		}
		mid, twoCol := detectColumns(frags)
		assert.True(t, twoCol)
		assert.InDelta(t, 105, mid, 1e-9)
	})

	t.Run("one-sided layout stays single column", func(t *testing.T) {
		var frags []fragment
		for i := 0; i < 48; i++ {
			frags = append(frags, fragment{x: 10, y: float64(i)})
		}
		frags = append(frags, fragment{x: 200, y: 0}, fragment{x: 200, y: 2})
		_, twoCol := detectColumns(frags)
		assert.False(t, twoCol)
	})
}

func TestAssemblePageTwoColumns(t *testing.T) {
	var frags []fragment
	for i := 0; i < 25; i++ {
		frags = append(frags, fragment{text: fmt.Sprintf("L%d", i), x: 10, y: float64(100 - i*2)})
		frags = append(frags, fragment{text: fmt.Sprintf("R%d", i), x: 200, y: float64(100 - i*2)})
	}

	out := assemblePage(frags)
	parts := strings.Split(out, "\n\n")
	assert.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "L0"))
	assert.NotContains(t, parts[0], "R")
	assert.True(t, strings.HasPrefix(parts[1], "R0"))
	assert.NotContains(t, parts[1], "L")
}

func TestAssemblePageSingleColumn(t *testing.T) {
	frags := []fragment{
		{text: "Jane Doe", x: 10, y: 100},
		{text: "Engineer", x: 10, y: 96},
		{text: "Acme", x: 60, y: 96},
	}
	assert.Equal(t, "Jane Doe\nEngineer Acme", assemblePage(frags))
}
