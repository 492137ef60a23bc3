// ABOUTME: Import reference detection over raw document text
// ABOUTME: Textual containment, not an AST parse; strict mode narrows to import lines

package document

import "strings"

// ImportReference returns the canonical reference for a package's primary
// library: the same symbol the package uses for its self-referencing entry
// file.
func ImportReference(name string) string {
	return "package:" + name + "/" + name + ".dart"
}

// ImportLine returns the full canonical import statement for a package.
func ImportLine(name string) string {
	return "import '" + ImportReference(name) + "';"
}

// Scanner decides whether a document references a package. The zero value
// is the permissive scanner: a plain substring containment check that
// accepts false positives from comments and string literals. Strict
// restricts matches to lines whose first token is the import keyword.
type Scanner struct {
	Strict bool
}

// Referenced reports whether text contains the canonical import reference
// for name. Case-sensitive, matching the canonical construction rule.
func (s Scanner) Referenced(text, name string) bool {
	ref := ImportReference(name)
	if !s.Strict {
		return strings.Contains(text, ref)
	}
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, ref) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "import") {
			return true
		}
	}
	return false
}
