package docgen

import (
	"fmt"
	"path"
	"sort"

	"github.com/go-json-experiment/json"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/tsxdoc/tsxdoc/internal/compiler"
	"github.com/tsxdoc/tsxdoc/internal/tsconfig"
)

// sessionConfigName is the virtual tsconfig every program in a session is
// built from. It extends the project configuration (when one exists) and
// pins the file set and forced compiler options.
const sessionConfigName = "__tsxdoc__.tsconfig.json"

// Session owns one compiler environment: the overlay filesystem, the host,
// the resolved project configuration, and the current program. The program
// covers the union of every file the session has seen; it is rebuilt only
// when that union grows or the virtual overlay changes, so asking about
// several components in the same project reuses one type-checked program.
//
// A Session is single-consumer. Concurrent extraction needs one session per
// goroutine.
type Session struct {
	cwd        string
	disk       *compiler.DiskFS
	fs         *compiler.OverlayFS
	host       shimcompiler.CompilerHost
	configPath string // absolute project tsconfig path, "" when none exists
	configDir  string
	includes   []string

	files   map[string]bool
	program *shimcompiler.Program
	stale   bool
}

// NewSession builds a session for the given inputs. An explicit
// opts.TSConfigPath is validated immediately so a bad path fails here rather
// than on the first extraction; a discovered configuration is trusted until
// the first build. Include globs are resolved once, against the
// configuration directory when one exists and cwd otherwise.
func NewSession(cwd string, inputs []string, opts Options) (*Session, error) {
	cwd = tspath.NormalizePath(cwd)
	disk := compiler.NewDiskFS()
	fs := compiler.NewOverlayFS(disk)
	host := compiler.NewHost(cwd, fs)

	s := &Session{
		cwd:   cwd,
		disk:  disk,
		fs:    fs,
		host:  host,
		files: make(map[string]bool),
		stale: true,
	}

	if opts.TSConfigPath != "" {
		s.configPath = tspath.ResolvePath(cwd, opts.TSConfigPath)
		_, diags, err := compiler.ParseConfig(fs, cwd, s.configPath, host)
		if err != nil {
			return nil, err
		}
		if compiler.HasErrors(diags) {
			return nil, fmt.Errorf("invalid tsconfig %s:\n%s", s.configPath, compiler.FormatDiagnostics(compiler.Errors(diags)))
		}
	} else if found := tsconfig.Find(inputs); found != "" {
		s.configPath = tspath.NormalizePath(found)
	}

	s.configDir = s.cwd
	if s.configPath != "" {
		s.configDir = path.Dir(s.configPath)
	}

	includes, err := tsconfig.ResolveIncludes(s.configDir, opts.Includes)
	if err != nil {
		return nil, err
	}
	for _, inc := range includes {
		norm := tspath.NormalizePath(inc)
		s.includes = append(s.includes, norm)
		s.files[norm] = true
	}

	return s, nil
}

// Cwd returns the session's working directory.
func (s *Session) Cwd() string { return s.cwd }

// FS returns the overlay filesystem programs are built over.
func (s *Session) FS() *compiler.OverlayFS { return s.fs }

// ConfigPath returns the absolute project tsconfig path, or "" when the
// session runs on the hardcoded default options.
func (s *Session) ConfigPath() string { return s.configPath }

// Includes returns the resolved include files compiled into every program.
func (s *Session) Includes() []string { return s.includes }

// InvalidateDisk drops the disk read cache and schedules a rebuild, so the
// next program observes current file contents.
func (s *Session) InvalidateDisk() {
	s.disk.ClearCache()
	s.stale = true
}

// AddVirtual registers an in-memory source and schedules a rebuild.
func (s *Session) AddVirtual(name string, text string) error {
	name = tspath.ResolvePath(s.cwd, name)
	if err := s.fs.AddVirtual(name, text); err != nil {
		return err
	}
	s.files[name] = true
	s.stale = true
	return nil
}

// RemoveVirtual retracts a virtual source and schedules a rebuild.
func (s *Session) RemoveVirtual(name string) {
	name = tspath.ResolvePath(s.cwd, name)
	if !s.fs.HasVirtual(name) {
		return
	}
	s.fs.RemoveVirtual(name)
	delete(s.files, name)
	s.stale = true
}

// Rebuild ensures the current program covers the requested files plus
// everything the session already tracks, building a new program only when
// the tracked set changed since the last build.
func (s *Session) Rebuild(requested []string) (*shimcompiler.Program, error) {
	for _, f := range requested {
		resolved := tspath.ResolvePath(s.cwd, f)
		if !s.files[resolved] {
			s.files[resolved] = true
			s.stale = true
		}
	}
	if s.program != nil && !s.stale {
		return s.program, nil
	}

	configPath := tspath.ResolvePath(s.configDir, sessionConfigName)
	s.fs.RemoveVirtual(configPath)
	rendered, err := s.renderConfig()
	if err != nil {
		return nil, err
	}
	if err := s.fs.AddVirtual(configPath, rendered); err != nil {
		return nil, err
	}

	parsed, diags, err := compiler.ParseConfig(s.fs, s.cwd, configPath, s.host)
	if err != nil {
		return nil, err
	}
	if compiler.HasErrors(diags) {
		return nil, fmt.Errorf("parsing configuration:\n%s", compiler.FormatDiagnostics(compiler.Errors(diags)))
	}

	program, diags, err := compiler.BuildProgram(parsed, s.host)
	if err != nil {
		return nil, err
	}
	if compiler.HasErrors(diags) {
		return nil, fmt.Errorf("building program:\n%s", compiler.FormatDiagnostics(compiler.Errors(diags)))
	}

	s.program = program
	s.stale = false
	return program, nil
}

// renderConfig produces the virtual tsconfig JSON: the project configuration
// (via extends) with the forced options layered on top and the tracked file
// set pinned explicitly.
func (s *Session) renderConfig() (string, error) {
	options := tsconfig.DefaultCompilerOptions()
	if s.configPath != "" {
		options = tsconfig.ForcedCompilerOptions()
	}

	files := make([]string, 0, len(s.files))
	for f := range s.files {
		files = append(files, f)
	}
	sort.Strings(files)

	cfg := map[string]any{
		"compilerOptions": options,
		"include":         []string{},
		"files":           files,
	}
	if s.configPath != "" {
		cfg["extends"] = s.configPath
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("rendering session tsconfig: %w", err)
	}
	return string(data), nil
}
