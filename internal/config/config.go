// Package config holds the YAML configuration of the sparsetable command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domonda/go-sparsetable"
	"github.com/domonda/go-sparsetable/csvtable"
	"github.com/domonda/go-sparsetable/internal/log"
)

// Options is the configuration of the sparsetable command.
type Options struct {
	Log *log.Options `yaml:"log"`

	// Order used to list cells: row-major or column-major.
	//
	// Default: "row-major".
	Order string `yaml:"order"`

	CSV *CSVOptions `yaml:"csv"`
}

// CSVOptions configures written CSV files.
type CSVOptions struct {
	// Single character field separator.
	//
	// Default: ";".
	Separator string `yaml:"separator"`
	// Line endings: "\n" or "\r\n".
	//
	// Default: "\r\n".
	Newline string `yaml:"newline"`
	// Encoding name of github.com/domonda/go-types/charset.
	//
	// Default: "UTF-8".
	Encoding string `yaml:"encoding"`
	// Write the column titles as first row.
	//
	// Default: true.
	HeaderRow bool `yaml:"headerRow"`
}

// NewDefault returns the default Options.
func NewDefault() *Options {
	return &Options{
		Log: &log.Options{
			Mode:  "FULL",
			Level: "INFO",
			Sink:  "CONSOLE",
		},
		Order: sparsetable.RowMajor.String(),
		CSV: &CSVOptions{
			Separator: ";",
			Newline:   "\r\n",
			Encoding:  "UTF-8",
			HeaderRow: true,
		},
	}
}

// Load reads the YAML file at path over the default Options.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse unmarshals YAML data over the default Options
// and validates the result.
func Parse(data []byte) (*Options, error) {
	opts := NewDefault()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("can't parse config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate returns an error for an invalid order or CSV format.
func (o *Options) Validate() error {
	if _, err := sparsetable.ParseOrder(o.Order); err != nil {
		return fmt.Errorf("invalid config order: %w", err)
	}
	if err := o.CSVFormat().Validate(); err != nil {
		return fmt.Errorf("invalid config csv: %w", err)
	}
	return nil
}

// IterationOrder returns the parsed Order,
// call Validate first to check for errors.
func (o *Options) IterationOrder() sparsetable.Order {
	order, _ := sparsetable.ParseOrder(o.Order)
	return order
}

// CSVFormat returns the csvtable.Format of the CSV options.
func (o *Options) CSVFormat() *csvtable.Format {
	if o.CSV == nil {
		return csvtable.NewFormat(";")
	}
	return &csvtable.Format{
		Encoding:  o.CSV.Encoding,
		Separator: o.CSV.Separator,
		Newline:   o.CSV.Newline,
	}
}

// Template returns the default Options as YAML.
func Template() ([]byte, error) {
	return yaml.Marshal(NewDefault())
}
