package report_test

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"

	"github.com/shpitdev/sorting-tool/internal/report"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/datatype"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/schema"
)

func TestWriteNatural(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := report.Write[int64](&buf, datatype.Integer{}, schema.SortingNatural, []int64{3, 1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := buf.String(), "Total numbers: 3.\nSorted data: 1 2 3\n"; got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
	})

	t.Run("numbers sort numerically", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := report.Write[int64](&buf, datatype.Integer{}, schema.SortingNatural, []int64{10, -1, 9, 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := buf.String(), "Total numbers: 4.\nSorted data: -1 9 10 100\n"; got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
	})

	t.Run("lines joined by newline after header", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := report.Write[string](&buf, datatype.Line{}, schema.SortingNatural, []string{"zz", "a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := buf.String(), "Total lines: 2.\nSorted data: a\nzz\n"; got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
	})

	t.Run("empty words", func(t *testing.T) {
		var buf bytes.Buffer
		sum, err := report.Write[string](&buf, datatype.Word{}, schema.SortingNatural, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := buf.String(), "Total words: 0.\nSorted data: \n"; got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
		if sum.Total != 0 || sum.Distinct != 0 {
			t.Fatalf("unexpected summary: %#v", sum)
		}
	})
}

func TestWriteByCount(t *testing.T) {
	t.Run("count ascending then value", func(t *testing.T) {
		var buf bytes.Buffer
		sum, err := report.Write[string](&buf, datatype.Word{}, schema.SortingByCount, []string{"a", "a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Total words: 3.\nb: 1 time(s), 33%\na: 2 time(s), 66%\n"
		if got := buf.String(); got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
		if sum.Total != 3 || sum.Distinct != 2 || sum.Mode != schema.SortingByCount {
			t.Fatalf("unexpected summary: %#v", sum)
		}
	})

	t.Run("numeric tie break", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := report.Write[int64](&buf, datatype.Integer{}, schema.SortingByCount, []int64{10, 9, 10, 9, 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Total numbers: 5.\n1: 1 time(s), 20%\n9: 2 time(s), 40%\n10: 2 time(s), 40%\n"
		if got := buf.String(); got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := report.Write[string](&buf, datatype.Line{}, schema.SortingByCount, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := buf.String(), "Total lines: 0.\n"; got != want {
			t.Fatalf("output=%q want=%q", got, want)
		}
	})
}

func TestCountRowsInvariants(t *testing.T) {
	faker := gofakeit.New(2024)
	data := make([]string, 1000)
	for i := range data {
		data[i] = faker.RandomString([]string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"})
	}

	rows := report.CountRows[string](data, datatype.Word{})

	sum := 0
	seen := make(map[string]bool)
	for i, r := range rows {
		sum += r.Count
		if seen[r.Value] {
			t.Fatalf("duplicate value %q in rows", r.Value)
		}
		seen[r.Value] = true
		if want := r.Count * 100 / len(data); r.Percent != want {
			t.Fatalf("row %q percent=%d want=%d", r.Value, r.Percent, want)
		}
		if i > 0 {
			prev := rows[i-1]
			if prev.Count > r.Count || prev.Count == r.Count && prev.Value >= r.Value {
				t.Fatalf("rows out of order at %d: %#v then %#v", i, prev, r)
			}
		}
	}
	if sum != len(data) {
		t.Fatalf("sum of counts=%d want=%d", sum, len(data))
	}

	occ := report.Occurrences(data)
	if len(occ) != len(rows) {
		t.Fatalf("occurrence table has %d keys, rows=%d", len(occ), len(rows))
	}
}

func TestWriteByCountPrintedCountsSumToTotal(t *testing.T) {
	faker := gofakeit.New(99)
	data := make([]int64, 333)
	for i := range data {
		data[i] = int64(faker.Number(-5, 5))
	}

	var buf bytes.Buffer
	if _, err := report.Write[int64](&buf, datatype.Integer{}, schema.SortingByCount, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != fmt.Sprintf("Total numbers: %d.", len(data)) {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	total := 0
	for _, line := range lines[1:] {
		_, rest, ok := strings.Cut(line, ": ")
		if !ok {
			t.Fatalf("malformed line %q", line)
		}
		countStr, _, ok := strings.Cut(rest, " time(s)")
		if !ok {
			t.Fatalf("malformed line %q", line)
		}
		n, err := strconv.Atoi(countStr)
		if err != nil {
			t.Fatalf("bad count in %q: %v", line, err)
		}
		total += n
	}
	if total != len(data) {
		t.Fatalf("printed counts sum=%d want=%d", total, len(data))
	}
}

func TestOccurrences(t *testing.T) {
	got := report.Occurrences([]string{"a", "b", "a"})
	if diff := cmp.Diff(map[string]int{"a": 2, "b": 1}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteReportsSinkErrors(t *testing.T) {
	_, err := report.Write[string](failWriter{}, datatype.Word{}, schema.SortingNatural, []string{"a"})
	if err == nil || !strings.Contains(err.Error(), "sink closed") {
		t.Fatalf("expected sink error, got %v", err)
	}
}
