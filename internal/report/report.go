package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shpitdev/sorting-tool/pkg/pipeline/datatype"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/mergesort"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/schema"
)

// Row is one line of the by-count report.
type Row[T comparable] struct {
	Value   T
	Count   int
	Percent int
}

// Summary describes a written report for run logging.
type Summary struct {
	Mode     schema.SortingType
	Total    int
	Distinct int
}

// Occurrences counts every distinct value of data.
func Occurrences[T comparable](data []T) map[T]int {
	out := make(map[T]int)
	for _, v := range data {
		out[v]++
	}
	return out
}

// CountRows builds the occurrence table of data ordered by ascending count,
// ties broken by the data type's own ordering.
//
// Percent is count*100/total rounded down.
func CountRows[T comparable](data []T, dt datatype.DataType[T]) []Row[T] {
	total := len(data)
	occ := Occurrences(data)

	rows := make([]Row[T], 0, len(occ))
	for v, n := range occ {
		rows = append(rows, Row[T]{Value: v, Count: n, Percent: n * 100 / total})
	}
	return mergesort.Sort(rows, func(a, b Row[T]) bool {
		return a.Count < b.Count || a.Count == b.Count && dt.ChooseLeft(a.Value, b.Value)
	})
}

// Write renders the report for data to w and flushes it once at the end.
func Write[T comparable](w io.Writer, dt datatype.DataType[T], mode schema.SortingType, data []T) (Summary, error) {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "Total %s: %d.\n", datatype.Plural(dt), len(data))

	sum := Summary{Mode: mode, Total: len(data)}
	switch mode {
	case schema.SortingByCount:
		rows := CountRows(data, dt)
		for _, r := range rows {
			_, _ = fmt.Fprintf(bw, "%s: %d time(s), %d%%\n", dt.Format(r.Value), r.Count, r.Percent)
		}
		sum.Distinct = len(rows)
	default:
		writeSorted(bw, dt, mergesort.Sort(data, dt.ChooseLeft))
		sum.Distinct = len(Occurrences(data))
	}

	// bufio.Writer keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return Summary{}, fmt.Errorf("write report: %w", err)
	}
	return sum, nil
}

func writeSorted[T comparable](bw *bufio.Writer, dt datatype.DataType[T], sorted []T) {
	sep := dt.Separator()
	_, _ = bw.WriteString("Sorted data: ")
	for i, v := range sorted {
		if i > 0 {
			_, _ = bw.WriteString(sep)
		}
		_, _ = bw.WriteString(dt.Format(v))
	}
	_, _ = bw.WriteString("\n")
}
