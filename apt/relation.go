package apt

import (
	"strings"

	"github.com/quay/buildlog/problem"
)

// ParseRelation parses a Debian dependency relation field (the contents of
// a Depends/Conflicts/Build-Depends-style line) per the deb822 grammar:
//
//	relation = group (',' group)*
//	group    = atom ('|' atom)*
//	atom     = name (':' archqual)? ('(' op version ')')? ('[' arch... ']')? ('<' restriction '>')*
//
// This is the module's one hand-rolled grammar (see the design notes for
// why); it's round-trippable via each type's String method.
func ParseRelation(s string) problem.Relation {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var rel problem.Relation
	for _, groupText := range splitTop(s, ',') {
		groupText = strings.TrimSpace(groupText)
		if groupText == "" {
			continue
		}
		var group problem.Group
		for _, atomText := range strings.Split(groupText, "|") {
			atomText = strings.TrimSpace(atomText)
			if atomText == "" {
				continue
			}
			group = append(group, parseAtom(atomText))
		}
		if len(group) > 0 {
			rel = append(rel, group)
		}
	}
	return rel
}

// splitTop splits on sep, but not inside '(' ... ')' or '[' ... ']' pairs.
func splitTop(s string, sep byte) []string {
	var out []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				out = append(out, s[last:i])
				last = i + 1
			}
		}
	}
	out = append(out, s[last:])
	return out
}

func parseAtom(s string) problem.Atom {
	var a problem.Atom

	for {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasSuffix(s, ")") && strings.Contains(s, "("):
			i := strings.LastIndex(s, "(")
			inner := strings.TrimSpace(s[i+1 : len(s)-1])
			s = strings.TrimSpace(s[:i])
			op, ver := splitOperator(inner)
			a.Version = &problem.VersionConstraint{Operator: op, Version: ver}
		case strings.HasSuffix(s, "]") && strings.Contains(s, "["):
			i := strings.LastIndex(s, "[")
			inner := strings.TrimSpace(s[i+1 : len(s)-1])
			s = strings.TrimSpace(s[:i])
			a.Arch = strings.Fields(inner)
		case strings.HasSuffix(s, ">") && strings.Contains(s, "<"):
			i := strings.LastIndex(s, "<")
			inner := strings.TrimSpace(s[i+1 : len(s)-1])
			s = strings.TrimSpace(s[:i])
			a.Restrictions = append([][]string{strings.Fields(inner)}, a.Restrictions...)
		default:
			goto done
		}
	}
done:
	if i := strings.Index(s, ":"); i >= 0 {
		a.Name, a.ArchQual = s[:i], s[i+1:]
	} else {
		a.Name = s
	}
	return a
}

func splitOperator(s string) (op, version string) {
	for _, candidate := range []string{">=", "<=", "<<", ">>", "=", "<", ">"} {
		if strings.HasPrefix(s, candidate) {
			return candidate, strings.TrimSpace(s[len(candidate):])
		}
	}
	return "", strings.TrimSpace(s)
}
