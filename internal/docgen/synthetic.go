package docgen

import (
	"fmt"
	"path"
	"strings"
	"sync/atomic"
)

// virtualSeq numbers synthetic job files so every virtual name is unique for
// the lifetime of the process, even across sessions sharing a directory.
var virtualSeq atomic.Uint64

// helperFileName is the script (not module) that introduces the global query
// alias. Script scope makes the alias visible to every job file without an
// import.
const helperFileName = "__tsxdoc_helper__.ts"

// helperSource resolves a component value to its accepted props. Class
// components answer through their construct signature, function components
// through their first parameter; JSX.LibraryManagedAttributes folds in
// defaultProps behavior the same way the checker does for JSX elements.
// Anything that is not callable resolves to never.
const helperSource = `type __TsxdocProps<C> =
    C extends new (props: infer P) => any ? JSX.LibraryManagedAttributes<C, P> :
    C extends (props: infer P, ...args: any[]) => any ? JSX.LibraryManagedAttributes<C, P> :
    never;
`

// syntheticHelperPath returns where the helper script lives for a session.
func syntheticHelperPath(cwd string) string {
	return path.Join(cwd, helperFileName)
}

// syntheticJob is one "what props does this export accept" question rendered
// as a compilable source file.
type syntheticJob struct {
	FileName   string // virtual path of the job file
	ExportName string
	TargetFile string
}

// newSyntheticJob allocates a job file name next to the target so the job's
// relative import resolves in the target's own directory.
func newSyntheticJob(exportName string, targetFile string) syntheticJob {
	dir := path.Dir(targetFile)
	name := fmt.Sprintf("__tsxdoc_job_%d__.tsx", virtualSeq.Add(1))
	return syntheticJob{
		FileName:   path.Join(dir, name),
		ExportName: exportName,
		TargetFile: targetFile,
	}
}

// Source renders the job file: import the export under a fixed local name,
// then expose its resolved props as an exported type alias the extractor can
// look up by name.
func (j syntheticJob) Source() string {
	specifier := "./" + stripSourceExtension(path.Base(j.TargetFile))

	var sb strings.Builder
	switch {
	case j.ExportName == "default":
		fmt.Fprintf(&sb, "import __target from %q;\n", specifier)
	case isIdentifierName(j.ExportName):
		fmt.Fprintf(&sb, "import { %s as __target } from %q;\n", j.ExportName, specifier)
	default:
		fmt.Fprintf(&sb, "import { %q as __target } from %q;\n", j.ExportName, specifier)
	}
	sb.WriteString("export type Props = __TsxdocProps<typeof __target>;\n")
	return sb.String()
}

// jobPropsAlias is the alias name the extractor looks up in a job file.
const jobPropsAlias = "Props"

func stripSourceExtension(base string) string {
	for _, ext := range []string{".d.ts", ".tsx", ".ts", ".jsx", ".js", ".mjs", ".cjs"} {
		if trimmed, ok := strings.CutSuffix(base, ext); ok {
			return trimmed
		}
	}
	return base
}

// isIdentifierName reports whether name can appear as a plain import binding.
// ASCII-only on purpose: anything else takes the string-literal import form,
// which is always valid.
func isIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
