// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/repo-structure/internal/tree"
	"github.com/fatih/color"
)

// Format selects the output encoding of a tree.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) bool {
	switch Format(name) {
	case FormatJSON, FormatText:
		return true
	}
	return false
}

// Printer writes a built tree to the configured output destination.
type Printer struct {
	output    io.Writer
	useColors bool
	format    Format
	pretty    bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: false,
		format:    FormatJSON,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output (text format only)
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithFormat selects the output format
func (p *Printer) WithFormat(format Format) *Printer {
	p.format = format
	return p
}

// WithPretty enables indented JSON output
func (p *Printer) WithPretty(enabled bool) *Printer {
	p.pretty = enabled
	return p
}

// Print writes the tree rooted at node in the configured format.
func (p *Printer) Print(node *tree.Node) error {
	switch p.format {
	case FormatText:
		p.printText(node, "")
		return nil
	default:
		return p.printJSON(node)
	}
}

func (p *Printer) printJSON(node *tree.Node) error {
	encoder := json.NewEncoder(p.output)
	if p.pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(node); err != nil {
		return fmt.Errorf("printer: failed to encode tree: %w", err)
	}
	return nil
}

var directoryColor = color.New(color.FgCyan, color.Bold)

// printText renders the tree with box-drawing connectors, directories first
// the way the builder ordered them.
func (p *Printer) printText(node *tree.Node, prefix string) {
	if prefix == "" {
		fmt.Fprintln(p.output, p.label(node))
	}
	for i, child := range node.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(node.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintf(p.output, "%s%s%s\n", prefix, connector, p.label(child))
		if child.Type == tree.TypeDirectory {
			p.printText(child, childPrefix)
		}
	}
}

func (p *Printer) label(node *tree.Node) string {
	if node.Type != tree.TypeDirectory {
		return node.Name
	}
	name := node.Name + "/"
	if p.useColors {
		return directoryColor.Sprint(name)
	}
	return name
}
