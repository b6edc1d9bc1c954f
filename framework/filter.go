package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters selects tests the same way "go test -run" does: a pattern is split on "/"
// and each element is matched against the test name at the corresponding level.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter runs a test if it could still match some -run pattern at its level, and it does not
// completely match any -skip pattern.
func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.anyMatch(id.Path, true)) &&
		!r.MustNotMatch.anyMatch(id.Path, false)
}

type RegexList struct {
	patterns []pathPattern
}

type pathPattern struct {
	source   string
	elements []*regexp.Regexp
}

// matches reports whether every pattern element matches the path element at the same level.
// If the path is shorter than the pattern, the result is partial, so that a parent group is
// entered when one of its subtests might match.
func (p pathPattern) matches(path []string, partial bool) bool {
	for i, rx := range p.elements {
		if i >= len(path) {
			return partial
		}
		if !rx.MatchString(path[i]) {
			return false
		}
	}
	return true
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := pathPattern{source: value}
	for _, element := range strings.Split(value, "/") {
		rx, err := regexp.Compile(element)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		p.elements = append(p.elements, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) anyMatch(path []string, partial bool) bool {
	for _, p := range r.patterns {
		if p.matches(path, partial) {
			return true
		}
	}
	return false
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(out)
	}
}
