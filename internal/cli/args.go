package cli

import (
	"fmt"
	"io"

	"github.com/shpitdev/sorting-tool/internal/config"
	"github.com/shpitdev/sorting-tool/internal/version"
)

// MissingValueError is returned when a flag that takes a value has none.
type MissingValueError struct {
	Flag    string
	Message string
}

func (e *MissingValueError) Error() string {
	if e == nil {
		return "missing flag value"
	}
	return e.Message
}

// Flags holds what was given on the command line. Nil pointers mean "not given".
type Flags struct {
	DataType    *string
	SortingType *string
	InputFile   *string
	OutputFile  *string
	ConfigFile  *string
	Verbose     bool
	Version     bool
	Help        bool
}

var valueFlags = map[string]string{
	"-dataType":    "No data type defined!",
	"-sortingType": "No sorting type defined!",
	"-inputFile":   "No input file name given!",
	"-outputFile":  "No output file name given!",
	"-config":      "No config file name given!",
}

var switchFlags = map[string]bool{
	"-verbose": true,
	"-version": true,
	"-h":       true,
	"-help":    true,
	"--help":   true,
}

func isFlag(arg string) bool {
	_, ok := valueFlags[arg]
	return ok || switchFlags[arg]
}

// Parse reads args in any order. Unrecognised arguments are reported on warn
// and skipped. A value flag with nothing after it, or followed directly by
// another flag, is an error.
func Parse(args []string, warn io.Writer) (Flags, error) {
	var f Flags
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if msg, ok := valueFlags[arg]; ok {
			if i+1 >= len(args) || isFlag(args[i+1]) {
				return Flags{}, &MissingValueError{Flag: arg, Message: msg}
			}
			i++
			v := args[i]
			switch arg {
			case "-dataType":
				f.DataType = &v
			case "-sortingType":
				f.SortingType = &v
			case "-inputFile":
				f.InputFile = &v
			case "-outputFile":
				f.OutputFile = &v
			case "-config":
				f.ConfigFile = &v
			}
			continue
		}

		switch arg {
		case "-verbose":
			f.Verbose = true
		case "-version":
			f.Version = true
		case "-h", "-help", "--help":
			f.Help = true
		default:
			_, _ = fmt.Fprintf(warn, "\"%s\" is not a valid parameter. It will be skipped.\n", arg)
		}
	}
	return f, nil
}

// ConfigPath returns the -config value, or fallback when it was not given.
func (f Flags) ConfigPath(fallback string) string {
	if f.ConfigFile != nil {
		return *f.ConfigFile
	}
	return fallback
}

// Apply overlays the given flags onto base.
func (f Flags) Apply(base config.Options) config.Options {
	out := base
	if f.DataType != nil {
		out.DataType = *f.DataType
	}
	if f.SortingType != nil {
		out.SortingType = *f.SortingType
	}
	if f.InputFile != nil {
		out.InputFile = *f.InputFile
	}
	if f.OutputFile != nil {
		out.OutputFile = *f.OutputFile
	}
	if f.ConfigFile != nil {
		out.ConfigFile = *f.ConfigFile
	}
	if f.Verbose {
		out.Verbose = true
	}
	return out
}

// Usage prints command help to w.
func Usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, `sorting %s: sort tokens or report how often each one occurs

Usage:
  sorting [flags] < input

Flags:
  -dataType {long|line|word}      What one datum is (default word)
  -sortingType {natural|byCount}  Sorted dump or frequency table (default natural)
  -inputFile <path>               Read from a file instead of stdin
  -outputFile <path>              Write the report to a file instead of stdout
  -config <path>                  YAML file with any of the settings above
  -verbose                        Log run details to stderr
  -version                        Print the version and exit

Environment:
  SORTING_DATA_TYPE     Same as -dataType
  SORTING_SORTING_TYPE  Same as -sortingType
  SORTING_INPUT_FILE    Same as -inputFile
  SORTING_OUTPUT_FILE   Same as -outputFile
  SORTING_CONFIG        Same as -config
  SORTING_VERBOSE       If set to true/1, same as -verbose

A .env file in the working directory is loaded before the environment is read.
Precedence: flags, then environment, then config file, then defaults.

`, version.Current)
}
