package compiler

import (
	"context"
	"errors"
	"fmt"

	shimast "github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
)

// ParseConfig parses a tsconfig.json through tsgo's native JSONC parser,
// which handles comments, trailing commas, and extends chains. The path may
// point at a virtual file registered on an OverlayFS.
func ParseConfig(fs vfs.FS, cwd string, configPath string, host shimcompiler.CompilerHost) (*tsoptions.ParsedCommandLine, []Diagnostic, error) {
	resolved := tspath.ResolvePath(cwd, configPath)
	if !fs.FileExists(resolved) {
		return nil, nil, fmt.Errorf("could not find tsconfig at %v", resolved)
	}

	parsed, diagnostics := tsoptions.GetParsedCommandLineOfConfigFile(configPath, &core.CompilerOptions{}, nil, host, nil)
	if len(diagnostics) > 0 {
		return nil, FromASTDiagnostics(diagnostics), nil
	}
	if parsed != nil && len(parsed.Errors) > 0 {
		return nil, FromASTDiagnostics(parsed.Errors), nil
	}
	return parsed, nil, nil
}

// BuildProgram creates and binds a program from a parsed configuration.
// Programs are built single-threaded: each one belongs to a session that is
// itself single-consumer, and documentation extraction is checker-bound
// rather than parse-bound.
func BuildProgram(parsed *tsoptions.ParsedCommandLine, host shimcompiler.CompilerHost) (*shimcompiler.Program, []Diagnostic, error) {
	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsed,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("failed to create program")
	}

	if diags := program.GetProgramDiagnostics(); len(diags) > 0 {
		return nil, FromASTDiagnostics(diags), nil
	}

	program.BindSourceFiles()
	return program, nil, nil
}

// GetTypeChecker returns the program's checker and a release function that
// must be called when checker work is done.
func GetTypeChecker(program *shimcompiler.Program) (*shimchecker.Checker, func()) {
	return shimcompiler.Program_GetTypeChecker(program, context.Background())
}

// FileDiagnostics returns the syntactic then semantic diagnostics for a
// single source file, stopping after the syntactic pass when it already
// produced errors.
func FileDiagnostics(program *shimcompiler.Program, file *shimast.SourceFile) []Diagnostic {
	ctx := context.Background()
	syntactic := FromASTDiagnostics(shimcompiler.Program_GetSyntacticDiagnostics(program, ctx, file))
	if HasErrors(syntactic) {
		return syntactic
	}
	semantic := FromASTDiagnostics(shimcompiler.Program_GetSemanticDiagnostics(program, ctx, file))
	return append(syntactic, semantic...)
}
