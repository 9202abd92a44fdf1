package schema

import (
	"fmt"
	"strings"
)

// DataType selects how input is split into datums.
type DataType string

const (
	DataTypeLong DataType = "long"
	DataTypeLine DataType = "line"
	DataTypeWord DataType = "word"
)

// SortingType selects the report layout.
type SortingType string

const (
	SortingNatural SortingType = "natural"
	SortingByCount SortingType = "byCount"
)

const (
	DefaultDataType    = DataTypeWord
	DefaultSortingType = SortingNatural
)

// ParseDataType maps a configuration string to a DataType. Empty means the default.
func ParseDataType(raw string) (DataType, error) {
	switch s := DataType(strings.TrimSpace(raw)); s {
	case "":
		return DefaultDataType, nil
	case DataTypeLong, DataTypeLine, DataTypeWord:
		return s, nil
	default:
		return "", fmt.Errorf("unknown data type: %s", raw)
	}
}

// ParseSortingType maps a configuration string to a SortingType.
// Anything other than byCount, including the empty string, is natural.
func ParseSortingType(raw string) SortingType {
	if SortingType(strings.TrimSpace(raw)) == SortingByCount {
		return SortingByCount
	}
	return SortingNatural
}
