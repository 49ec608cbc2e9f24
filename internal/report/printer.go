// Package report renders check results as console lines.
// The exact wording is consumed by other tooling; keep it stable.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/leengari/configcheck/internal/checker"
	"github.com/leengari/configcheck/internal/document"
)

const (
	BannerLine = "Checking tables for missing array properties..."
	DoneLine   = "Done."
)

// Printer writes report lines to an output stream
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Banner() error {
	return p.line(BannerLine)
}

func (p *Printer) Warning(w checker.Warning) error {
	return p.line(w.String())
}

// Warnings prints every warning in order, stopping at the first write error
func (p *Printer) Warnings(warnings []checker.Warning) error {
	for _, w := range warnings {
		if err := p.Warning(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) Done() error {
	return p.line(DoneLine)
}

// ParseFailure prints the decode-error line for a document that could not be parsed
func (p *Printer) ParseFailure(err error) error {
	var perr *document.ParseError
	if errors.As(err, &perr) {
		return p.line(fmt.Sprintf("JSON Decode Error: %s: line %d column %d (char %d)", perr.Reason, perr.Line, perr.Column, perr.Offset))
	}
	return p.line(fmt.Sprintf("JSON Decode Error: %v", err))
}

func (p *Printer) line(s string) error {
	if _, err := fmt.Fprintln(p.w, s); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
