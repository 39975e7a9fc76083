package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		FilePath: "/proj/src/App.tsx",
		Line:     3,
		Column:   7,
		Code:     2322,
		Category: CategoryError,
		Message:  "Type 'string' is not assignable to type 'number'.",
	}
	require.Equal(t, "/proj/src/App.tsx(3,7): error TS2322: Type 'string' is not assignable to type 'number'.", d.String())
}

func TestDiagnosticStringWithoutFile(t *testing.T) {
	d := Diagnostic{Code: 18002, Category: CategoryError, Message: "The 'files' list in config file is empty."}
	require.Equal(t, "error TS18002: The 'files' list in config file is empty.", d.String())
}

func TestHasErrorsAndErrors(t *testing.T) {
	diags := []Diagnostic{
		{Category: CategoryWarning, Code: 1},
		{Category: CategoryError, Code: 2},
		{Category: CategorySuggestion, Code: 3},
	}
	require.True(t, HasErrors(diags))
	require.Len(t, Errors(diags), 1)
	require.Equal(t, int32(2), Errors(diags)[0].Code)

	require.False(t, HasErrors(diags[:1]))
	require.Empty(t, Errors(nil))
}

func TestFormatDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		{Category: CategoryError, Code: 1, Message: "first"},
		{Category: CategoryWarning, Code: 2, Message: "second"},
	}
	got := FormatDiagnostics(diags)
	require.Equal(t, "error TS1: first\nwarning TS2: second\n", got)
}

func TestCategoryNames(t *testing.T) {
	require.Equal(t, "error", CategoryError.Name())
	require.Equal(t, "warning", CategoryWarning.Name())
	require.Equal(t, "suggestion", CategorySuggestion.Name())
	require.Equal(t, "message", CategoryMessage.Name())
}
