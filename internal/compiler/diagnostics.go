package compiler

import (
	"fmt"
	"strings"

	shimast "github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"
)

// DiagnosticCategory mirrors tsgo's diagnostics.Category.
// Redeclared here to avoid importing the internal diagnostics package.
type DiagnosticCategory int

const (
	CategoryWarning    DiagnosticCategory = 0
	CategoryError      DiagnosticCategory = 1
	CategorySuggestion DiagnosticCategory = 2
	CategoryMessage    DiagnosticCategory = 3
)

func (c DiagnosticCategory) Name() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	case CategorySuggestion:
		return "suggestion"
	case CategoryMessage:
		return "message"
	}
	return "unknown"
}

// Diagnostic is a flattened view of a tsgo diagnostic, detached from the
// program that produced it so it can outlive a compilation session.
type Diagnostic struct {
	FilePath string
	Line     int // 1-based, 0 when unknown
	Column   int // 1-based, 0 when unknown
	Code     int32
	Category DiagnosticCategory
	Message  string
}

// String formats the diagnostic in tsc plain style:
// file(line,col): error TS2322: message
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.FilePath != "" {
		fmt.Fprintf(&sb, "%s(%d,%d): ", d.FilePath, d.Line, d.Column)
	}
	fmt.Fprintf(&sb, "%s TS%d: %s", d.Category.Name(), d.Code, d.Message)
	return sb.String()
}

// FromASTDiagnostics converts tsgo diagnostics into detached Diagnostics.
func FromASTDiagnostics(tsdiags []*shimast.Diagnostic) []Diagnostic {
	diags := make([]Diagnostic, 0, len(tsdiags))
	for _, d := range tsdiags {
		diag := Diagnostic{
			Code:     d.Code(),
			Category: DiagnosticCategory(shimast.Diagnostic_Category(d)),
			Message:  d.String(),
		}
		if d.File() != nil {
			line, col := shimscanner.GetECMALineAndCharacterOfPosition(d.File(), d.Pos())
			diag.FilePath = d.File().FileName()
			diag.Line = line + 1
			diag.Column = col + 1
		}
		diags = append(diags, diag)
	}
	return diags
}

// HasErrors reports whether any diagnostic is a blocking error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Category == CategoryError {
			return true
		}
	}
	return false
}

// Errors returns only the blocking error diagnostics.
func Errors(diags []Diagnostic) []Diagnostic {
	var errs []Diagnostic
	for _, d := range diags {
		if d.Category == CategoryError {
			errs = append(errs, d)
		}
	}
	return errs
}

// FormatDiagnostics renders diagnostics one per line.
func FormatDiagnostics(diags []Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
