package manifest

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// ResolveCompatibility reports whether componentVersion satisfies hostRange.
//
// Supported range clauses: "^X.Y.Z" (no breaking change), "~X.Y.Z" (patch
// drift), ">=", ">", "<=", "<", "=", a bare version (exact match), and "*".
// Whitespace-separated clauses are conjunctive (">=1.2.0 <2.0.0"). Returns
// false, never an error, when either input fails to parse.
func ResolveCompatibility(hostRange, componentVersion string) bool {
	v, err := coerceVersion(componentVersion)
	if err != nil {
		return false
	}

	clauses := strings.Fields(hostRange)
	if len(clauses) == 0 {
		return false
	}
	for _, clause := range clauses {
		if !satisfies(v, clause) {
			return false
		}
	}
	return true
}

func satisfies(v *semver.Version, clause string) bool {
	if clause == "*" {
		return true
	}

	op := "="
	rest := clause
	for _, candidate := range []string{">=", "<=", "^", "~", ">", "<", "="} {
		if strings.HasPrefix(clause, candidate) {
			op = candidate
			rest = clause[len(candidate):]
			break
		}
	}

	want, err := coerceVersion(rest)
	if err != nil {
		return false
	}

	switch op {
	case "^":
		return !v.LessThan(*want) && v.LessThan(caretUpper(want))
	case "~":
		return !v.LessThan(*want) && v.LessThan(tildeUpper(want))
	case ">=":
		return !v.LessThan(*want)
	case ">":
		return want.LessThan(*v)
	case "<=":
		return !want.LessThan(*v)
	case "<":
		return v.LessThan(*want)
	default:
		return v.Equal(*want)
	}
}

// caretUpper is the exclusive upper bound of a caret clause: the next
// version allowed to break compatibility. Zero majors promote the minor, and
// zero minors the patch, matching the usual narrow reading of 0.x ranges.
func caretUpper(v *semver.Version) semver.Version {
	switch {
	case v.Major > 0:
		return semver.Version{Major: v.Major + 1}
	case v.Minor > 0:
		return semver.Version{Minor: v.Minor + 1}
	default:
		return semver.Version{Patch: v.Patch + 1}
	}
}

func tildeUpper(v *semver.Version) semver.Version {
	return semver.Version{Major: v.Major, Minor: v.Minor + 1}
}

// coerceVersion parses a version string, tolerating a leading "v" and
// missing minor/patch components ("1.2" -> "1.2.0").
func coerceVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	base := s
	if i := strings.IndexAny(base, "-+"); i >= 0 {
		base = base[:i]
	}
	switch strings.Count(base, ".") {
	case 0:
		s = base + ".0.0" + s[len(base):]
	case 1:
		s = base + ".0" + s[len(base):]
	}
	return semver.NewVersion(s)
}
