package schema_test

import (
	"testing"

	"github.com/shpitdev/sorting-tool/pkg/pipeline/schema"
)

func TestParseDataType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    schema.DataType
		wantErr bool
	}{
		{name: "word default", in: "", want: schema.DataTypeWord},
		{name: "long", in: "long", want: schema.DataTypeLong},
		{name: "line", in: " line ", want: schema.DataTypeLine},
		{name: "word explicit", in: "word", want: schema.DataTypeWord},
		{name: "unknown", in: "float", wantErr: true},
		{name: "case sensitive", in: "Long", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.ParseDataType(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDataType(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDataType(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDataType(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSortingType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want schema.SortingType
	}{
		{name: "natural default", in: "", want: schema.SortingNatural},
		{name: "natural explicit", in: "natural", want: schema.SortingNatural},
		{name: "by count", in: "byCount", want: schema.SortingByCount},
		{name: "by count trimmed", in: " byCount ", want: schema.SortingByCount},
		{name: "unknown falls back to natural", in: "reverse", want: schema.SortingNatural},
		{name: "case sensitive", in: "bycount", want: schema.SortingNatural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schema.ParseSortingType(tt.in); got != tt.want {
				t.Fatalf("ParseSortingType(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}
