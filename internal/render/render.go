package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"
)

var ErrNotTabular = errors.New("view has no table representation")

var (
	titleFmt  = color.New(color.Bold).SprintFunc()
	noteFmt   = color.New(color.FgYellow).SprintFunc()
	headerFmt = color.New(color.FgCyan, color.Underline).SprintfFunc()
)

type (
	// Section is one titled table of a view.
	Section struct {
		Title   string
		Headers []string
		Rows    [][]any
		Notes   []string
	}

	// Tabular is implemented by views that can be printed as tables.
	Tabular interface {
		Sections() []Section
	}

	KV struct {
		Key   string
		Value any
	}

	Printer struct {
		w      io.Writer
		format configs.OutputFormat
	}
)

// KeyValues builds a two column section from ordered pairs.
func KeyValues(title string, pairs ...KV) Section {
	s := Section{Title: title, Headers: []string{"Field", "Value"}}
	for _, p := range pairs {
		s.Rows = append(s.Rows, []any{p.Key, p.Value})
	}
	return s
}

func New(w io.Writer, format configs.OutputFormat) *Printer {
	return &Printer{w: w, format: format}
}

// Print writes view in the printer's output format. JSON and YAML encode the
// view itself; tables require the view to implement Tabular.
func (p *Printer) Print(view any) error {
	switch p.format {
	case configs.OutputJSON:
		return p.printJSON(view)
	case configs.OutputYAML:
		return p.printYAML(view)
	case configs.OutputTable, "":
		tabular, ok := view.(Tabular)
		if !ok {
			return fmt.Errorf("%w: %T", ErrNotTabular, view)
		}
		return p.printTables(tabular.Sections())
	default:
		return fmt.Errorf("unsupported output format %q", p.format)
	}
}

func (p *Printer) printJSON(view any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

func (p *Printer) printYAML(view any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func (p *Printer) printTables(sections []Section) error {
	for _, s := range sections {
		if s.Title != "" {
			if _, err := fmt.Fprintln(p.w, titleFmt(s.Title)); err != nil {
				return err
			}
		}

		if len(s.Headers) > 0 {
			headers := make([]any, len(s.Headers))
			for i, h := range s.Headers {
				headers[i] = h
			}

			tbl := table.New(headers...).WithWriter(p.w)
			tbl.WithHeaderFormatter(headerFmt)
			for _, row := range s.Rows {
				tbl.AddRow(row...)
			}
			tbl.Print()
		}

		for _, note := range s.Notes {
			if _, err := fmt.Fprintln(p.w, noteFmt(note)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	return nil
}
