package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Options is the raw run configuration before validation.
//
// Layers are applied in order: defaults, config file, environment, flags.
type Options struct {
	DataType    string `yaml:"dataType"`
	SortingType string `yaml:"sortingType"`
	InputFile   string `yaml:"inputFile"`
	OutputFile  string `yaml:"outputFile"`
	Verbose     bool   `yaml:"verbose"`

	// ConfigFile is only ever set from the environment or flags.
	ConfigFile string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Options {
	return Options{
		DataType:    "word",
		SortingType: "natural",
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// LoadFile overlays the YAML document at path onto base.
// Keys missing from the document keep their base value.
func LoadFile(path string, base Options) (Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config file: %w", err)
	}
	out := base
	if err := yaml.Unmarshal(b, &out); err != nil {
		return Options{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	out.ConfigFile = base.ConfigFile
	return out, nil
}

// FromEnv overlays SORTING_* environment variables onto base.
func FromEnv(base Options) (Options, error) {
	out := base
	out.DataType = envString("SORTING_DATA_TYPE", out.DataType)
	out.SortingType = envString("SORTING_SORTING_TYPE", out.SortingType)
	out.InputFile = envString("SORTING_INPUT_FILE", out.InputFile)
	out.OutputFile = envString("SORTING_OUTPUT_FILE", out.OutputFile)
	out.ConfigFile = envString("SORTING_CONFIG", out.ConfigFile)

	verbose, err := envBool("SORTING_VERBOSE", out.Verbose)
	if err != nil {
		return Options{}, err
	}
	out.Verbose = verbose
	return out, nil
}

func envString(varName, fallback string) string {
	v := strings.TrimSpace(os.Getenv(varName))
	if v == "" {
		return fallback
	}
	return v
}

func envBool(varName string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(varName))
	if v == "" {
		return fallback, nil
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", varName, v, err)
	}
	return out, nil
}
