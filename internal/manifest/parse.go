// ABOUTME: The two manifest parse strategies: yaml.Node walk and line heuristic
// ABOUTME: Node walk keeps declaration order; fallback scans the dependencies block

package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const dependenciesKey = "dependencies"

// parseStructured walks the YAML document and extracts the nested
// dependencies mapping in declaration order.
func parseStructured(data []byte) (State, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return State{}, err
	}
	if len(root.Content) == 0 {
		return State{}, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return State{}, fmt.Errorf("manifest root is not a mapping")
	}

	var s State
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]
		if key.Value != dependenciesKey {
			continue
		}
		if val.Kind == yaml.ScalarNode && val.Value == "" {
			return s, nil // "dependencies:" with no entries
		}
		if val.Kind != yaml.MappingNode {
			return State{}, fmt.Errorf("dependencies is not a mapping")
		}
		for j := 0; j+1 < len(val.Content); j += 2 {
			name, constraint := val.Content[j], val.Content[j+1]
			s.add(name.Value, renderConstraint(constraint))
		}
		return s, nil
	}
	return s, nil
}

// renderConstraint turns a constraint node back into raw text. Scalars keep
// their value; structured constraints (git, path, hosted) render as flow
// YAML on one line.
func renderConstraint(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	n.Style = yaml.FlowStyle
	out, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// depLine matches one fallback entry: identifier key, colon, non-empty rest.
var depLine = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*):\s*(\S.*)$`)

// headerLine matches the bare dependencies section header.
var headerLine = regexp.MustCompile(`^` + dependenciesKey + `:\s*$`)

// parseFallback is the line-oriented heuristic used when structured parsing
// fails. When a dependencies header is present only its indented block is
// scanned, and lines nested deeper than the block's first entry are skipped
// so the inner keys of a structured constraint (git, path, sdk) never leak
// in as entries; without a header every matching line contributes an entry.
// A bare `name:` key with only nested content still goes unreported here,
// which is as close to the structured parse as a line scan gets.
func parseFallback(data []byte) State {
	lines := strings.Split(string(data), "\n")

	start, end := 0, len(lines)
	inBlock := false
	for i, line := range lines {
		if !headerLine.MatchString(line) {
			continue
		}
		inBlock = true
		start = i + 1
		end = start
		for end < len(lines) {
			l := lines[end]
			if strings.TrimSpace(l) != "" && !strings.HasPrefix(l, " ") && !strings.HasPrefix(l, "\t") {
				break
			}
			end++
		}
		break
	}

	var s State
	entryIndent := -1
	for _, line := range lines[start:end] {
		m := depLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if inBlock {
			ind := indentOf(line)
			if entryIndent < 0 {
				entryIndent = ind
			}
			if ind > entryIndent {
				continue
			}
		}
		s.add(m[1], strings.TrimSpace(m[2]))
	}
	return s
}

// indentOf counts leading space and tab characters.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
