package ingestion

import (
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Two-column detection thresholds: a page is treated as two-column when it
// has more than minColumnFragments positioned fragments and each side of
// the midpoint holds more than minColumnShare of them.
const (
	minColumnFragments = 40
	minColumnShare     = 0.2
	columnMidSlack     = 5.0
	lineBucketHeight   = 2.0
)

// fragment is one positioned piece of PDF text.
type fragment struct {
	text string
	x    float64
	y    float64
}

// extractPDF reconstructs reading order from the positioned text fragments
// of every page. Single-column pages read top-to-bottom; two-column pages
// emit the full left column first, then the right.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		var frags []fragment
		for _, t := range page.Content().Text {
			s := strings.TrimSpace(t.S)
			if s == "" {
				continue
			}
			frags = append(frags, fragment{text: s, x: t.X, y: t.Y})
		}
		if len(frags) == 0 {
			continue
		}
		pages = append(pages, assemblePage(frags))
	}

	return strings.Join(pages, "\n\n"), nil
}

// assemblePage orders one page's fragments into text.
func assemblePage(frags []fragment) string {
	mid, twoCol := detectColumns(frags)
	if !twoCol {
		return buildLines(frags)
	}

	var left, right []fragment
	for _, f := range frags {
		if f.x < mid {
			left = append(left, f)
		} else {
			right = append(right, f)
		}
	}
	return buildLines(left) + "\n\n" + buildLines(right)
}

// detectColumns returns the horizontal midpoint of the fragments' bounding
// box and whether the page reads as two columns: enough fragments overall
// and a substantial share clearly on each side of the midpoint.
func detectColumns(frags []fragment) (float64, bool) {
	minX, maxX := frags[0].x, frags[0].x
	for _, f := range frags {
		if f.x < minX {
			minX = f.x
		}
		if f.x > maxX {
			maxX = f.x
		}
	}
	mid := (minX + maxX) / 2

	if len(frags) <= minColumnFragments {
		return mid, false
	}

	var left, right int
	for _, f := range frags {
		switch {
		case f.x < mid-columnMidSlack:
			left++
		case f.x > mid+columnMidSlack:
			right++
		}
	}
	threshold := minColumnShare * float64(len(frags))
	return mid, float64(left) > threshold && float64(right) > threshold
}

// buildLines groups fragments into lines by rounding the vertical position
// into fixed-height buckets, orders lines top-to-bottom (PDF y grows
// upward) and fragments left-to-right, and joins fragments with spaces.
func buildLines(frags []fragment) string {
	buckets := make(map[float64][]fragment)
	for _, f := range frags {
		key := math.Round(f.y/lineBucketHeight) * lineBucketHeight
		buckets[key] = append(buckets[key], f)
	}

	keys := make([]float64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(keys)))

	var lines []string
	for _, k := range keys {
		row := buckets[k]
		sort.Slice(row, func(i, j int) bool { return row[i].x < row[j].x })
		parts := make([]string, len(row))
		for i, f := range row {
			parts[i] = f.text
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// extractPDFReader spools the reader to a temp file; the PDF library needs
// random access to the underlying bytes.
func extractPDFReader(r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "resume-scanner-*.pdf")
	if err != nil {
		return "", &Error{Message: "failed to create temp file", Cause: err}
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", &Error{Path: tmp.Name(), Message: "failed to spool PDF", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &Error{Path: tmp.Name(), Message: "failed to flush PDF", Cause: err}
	}

	return extractPDF(tmp.Name())
}
