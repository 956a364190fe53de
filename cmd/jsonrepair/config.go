package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Latias94/jsonrepair/repair"
)

// Flags holds the CLI flag names, so a caller embedding this command
// elsewhere could rename them while keeping NewConfig's defaults.
type Flags struct {
	EnsureASCII       string
	PythonKeywords    string
	HashComments      string
	FencedCodeBlocks  string
	RepairUndefined   string
	NormalizeNonfinit string
	LeadingDot        string
	TrailingDot       string
	PythonSeparators  string
	AggressiveTrunc   string
	NDJSONAggregate   string
	Output            string
	Stream            string
	Gzip              string
	Jobs              string
	CacheIdentical    string
	LogLevel          string
	LogFormat         string
}

// NewConfig returns a Config whose flags are registered under f's names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// NewConfig returns a Config with the package's default flag names.
func NewConfig() *Config {
	f := Flags{
		EnsureASCII:       "ensure-ascii",
		PythonKeywords:    "allow-python-keywords",
		HashComments:      "tolerate-hash-comments",
		FencedCodeBlocks:  "fenced-code-blocks",
		RepairUndefined:   "repair-undefined",
		NormalizeNonfinit: "normalize-js-nonfinite",
		LeadingDot:        "number-tolerance-leading-dot",
		TrailingDot:       "number-tolerance-trailing-dot",
		PythonSeparators:  "python-style-separators",
		AggressiveTrunc:   "aggressive-truncation-fix",
		NDJSONAggregate:   "ndjson-aggregate",
		Output:            "output",
		Stream:            "stream",
		Gzip:              "gzip",
		Jobs:              "jobs",
		CacheIdentical:    "cache-identical",
		LogLevel:          "log-level",
		LogFormat:         "log-format",
	}
	return f.NewConfig()
}

// Config holds CLI flag values plus the CLI-only knobs that sit outside
// [repair.Options]: output destination, streaming mode, gzip, the
// concurrent job count, and whether to memoize identical inputs.
type Config struct {
	Flags Flags

	EnsureASCII       bool
	PythonKeywords    bool
	HashComments      bool
	FencedCodeBlocks  bool
	RepairUndefined   bool
	NormalizeNonfinit bool
	LeadingDot        bool
	TrailingDot       bool
	PythonSeparators  bool
	AggressiveTrunc   bool
	NDJSONAggregate   bool

	Output         string
	Stream         bool
	Gzip           bool
	Jobs           int
	CacheIdentical bool
	LogLevel       string
	LogFormat      string
}

// RegisterFlags adds every flag to flags, bound directly to Config's fields.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.EnsureASCII, c.Flags.EnsureASCII, false, "escape non-ASCII output as \\uXXXX")
	flags.BoolVar(&c.PythonKeywords, c.Flags.PythonKeywords, false, "accept True/False/None as JSON literals")
	flags.BoolVar(&c.HashComments, c.Flags.HashComments, false, "treat '#' as a line comment")
	flags.BoolVar(&c.FencedCodeBlocks, c.Flags.FencedCodeBlocks, false, "extract JSON from the first ``` fenced block")
	flags.BoolVar(&c.RepairUndefined, c.Flags.RepairUndefined, false, "map a bare 'undefined' to null")
	flags.BoolVar(&c.NormalizeNonfinit, c.Flags.NormalizeNonfinit, false, "map NaN/Infinity/-Infinity to null")
	flags.BoolVar(&c.LeadingDot, c.Flags.LeadingDot, false, "accept '.5' as '0.5'")
	flags.BoolVar(&c.TrailingDot, c.Flags.TrailingDot, false, "accept '1.' as '1.0'")
	flags.BoolVar(&c.PythonSeparators, c.Flags.PythonSeparators, false, "emit ', ' and ': ' separators")
	flags.BoolVar(&c.AggressiveTrunc, c.Flags.AggressiveTrunc, false, "close unterminated strings/containers at EOF")
	flags.BoolVar(&c.NDJSONAggregate, c.Flags.NDJSONAggregate, false, "aggregate stream output into one JSON array")

	flags.StringVarP(&c.Output, c.Flags.Output, "o", "", "output file (default: stdout)")
	flags.BoolVar(&c.Stream, c.Flags.Stream, false, "feed input through the incremental stream driver in fixed-size chunks")
	flags.BoolVar(&c.Gzip, c.Flags.Gzip, false, "gzip-compress the output")
	flags.IntVarP(&c.Jobs, c.Flags.Jobs, "j", 1, "number of files to repair concurrently")
	flags.BoolVar(&c.CacheIdentical, c.Flags.CacheIdentical, false, "memoize results for byte-identical inputs")
	flags.StringVar(&c.LogLevel, c.Flags.LogLevel, "info", "log level: error, warn, info, debug")
	flags.StringVar(&c.LogFormat, c.Flags.LogFormat, "logfmt", "log format: json, logfmt")
}

// ToOptions builds a repair.Options from the repair-related flags.
func (c *Config) ToOptions() *repair.Options {
	return repair.NewOptions().
		SetEnsureASCII(c.EnsureASCII).
		SetAllowPythonKeywords(c.PythonKeywords).
		SetTolerateHashComments(c.HashComments).
		SetFencedCodeBlocks(c.FencedCodeBlocks).
		SetRepairUndefined(c.RepairUndefined).
		SetNormalizeJSNonfinite(c.NormalizeNonfinit).
		SetNumberToleranceLeadingDot(c.LeadingDot).
		SetNumberToleranceTrailingDot(c.TrailingDot).
		SetPythonStyleSeparators(c.PythonSeparators).
		SetAggressiveTruncationFix(c.AggressiveTrunc).
		SetStreamNDJSONAggregate(c.NDJSONAggregate)
}

func (c *Config) validateJobs() error {
	if c.Jobs < 1 {
		return fmt.Errorf("--%s must be >= 1, got %d", c.Flags.Jobs, c.Jobs)
	}
	return nil
}
