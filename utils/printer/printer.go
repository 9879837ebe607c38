// Package printer renders console resources for the terminal. The human
// output is tabwriter-based; json and yaml modes print the raw resource.
package printer

import (
	"io"
	"text/tabwriter"

	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	tabwriterMinWidth = 10
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = 0
)

// GetNewTabWriter returns a tabwriter with the console's table defaults.
func GetNewTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
}

// PrintOptions tweak the human-readable output.
type PrintOptions struct {
	Wide bool
}

// ResourcePrinter writes one console resource to a stream.
type ResourcePrinter interface {
	PrintObj(obj interface{}, w io.Writer) error
}

// NewPrinter maps an output format flag to a printer. The empty format and
// "wide" select the human-readable table.
func NewPrinter(format string) (ResourcePrinter, error) {
	switch format {
	case "json":
		return &JSONPrinter{}, nil
	case "yaml":
		return &YAMLPrinter{}, nil
	case "wide":
		return NewHumanReadablePrinter(PrintOptions{Wide: true}), nil
	case "":
		return NewHumanReadablePrinter(PrintOptions{}), nil
	default:
		return nil, errors.Errorf("output format %q not recognized", format)
	}
}

// JSONPrinter prints resources as indented JSON.
type JSONPrinter struct{}

func (p *JSONPrinter) PrintObj(obj interface{}, w io.Writer) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// YAMLPrinter prints resources as YAML documents.
type YAMLPrinter struct{}

func (p *YAMLPrinter) PrintObj(obj interface{}, w io.Writer) error {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
