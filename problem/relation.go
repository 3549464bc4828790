package problem

import (
	"fmt"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// VersionConstraint is the "(op version)" part of a Debian dependency atom,
// e.g. "(>= 1.2.3)".
type VersionConstraint struct {
	Operator string
	Version  string
}

func (c *VersionConstraint) String() string {
	if c == nil {
		return ""
	}
	return c.Operator + " " + c.Version
}

// Satisfies reports whether installed, a Debian package version string,
// satisfies this constraint under Debian's epoch:upstream-revision version
// ordering. A nil constraint is always satisfied. An error is returned if
// either version string fails to parse.
func (c *VersionConstraint) Satisfies(installed string) (bool, error) {
	if c == nil {
		return true, nil
	}
	have, err := debversion.NewVersion(installed)
	if err != nil {
		return false, fmt.Errorf("problem: parsing installed version %q: %w", installed, err)
	}
	want, err := debversion.NewVersion(c.Version)
	if err != nil {
		return false, fmt.Errorf("problem: parsing constraint version %q: %w", c.Version, err)
	}
	switch c.Operator {
	case ">=":
		return !have.LessThan(want), nil
	case "<=":
		return !want.LessThan(have), nil
	case ">>", ">":
		return want.LessThan(have), nil
	case "<<", "<":
		return have.LessThan(want), nil
	case "=", "":
		return !have.LessThan(want) && !want.LessThan(have), nil
	default:
		return false, fmt.Errorf("problem: unknown version constraint operator %q", c.Operator)
	}
}

// Atom is a single entry in an alternatives group: a package name plus its
// optional architecture qualifier, version constraint, architecture
// restriction list and build-profile restriction.
//
// Mirrors the grammar `atom = name (':' archqual)? ('(' op ver ')')?
// ('[' arch... ']')? ('<' restriction '>')*` from Debian's dependency field
// syntax (deb822 Depends/Conflicts/etc.).
type Atom struct {
	Name         string
	ArchQual     string
	Version      *VersionConstraint
	Arch         []string
	Restrictions [][]string // OR-within-AND groups of build-profile terms
}

func (a Atom) String() string {
	var b strings.Builder
	b.WriteString(a.Name)
	if a.ArchQual != "" {
		b.WriteString(":")
		b.WriteString(a.ArchQual)
	}
	if a.Version != nil {
		b.WriteString(" (")
		b.WriteString(a.Version.String())
		b.WriteString(")")
	}
	if len(a.Arch) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(a.Arch, " "))
		b.WriteString("]")
	}
	for _, r := range a.Restrictions {
		b.WriteString(" <")
		b.WriteString(strings.Join(r, " "))
		b.WriteString(">")
	}
	return b.String()
}

// Group is a set of alternatives joined by "|" — satisfying any one
// member satisfies the group.
type Group []Atom

func (g Group) String() string {
	parts := make([]string, len(g))
	for i, a := range g {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// Relation is a full Debian dependency relation field: a comma-separated
// (AND) list of alternatives groups.
type Relation []Group

func (r Relation) String() string {
	parts := make([]string, len(r))
	for i, g := range r {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}
