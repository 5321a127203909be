package dataprocessing

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Derived value prefixes of the activity import format.
const (
	attributeMarker            = "GENR-"
	attributeNamespace         = "activity."
	courseTypePrefix           = "course."
	courseTypeIndependentStudy = "course.independentStudy"
	termPrefix                 = "term."
	deliveryModePrefix         = "Delivery Mode: "
	listSeparator              = ";"
)

var subjectCodePattern = regexp.MustCompile(`\(([^)]+)\)`)

// Resolver maps an instructor display name to a researcher identifier.
type Resolver interface {
	Lookup(name string) (string, bool)
}

// SplitInstructors splits a newline-delimited instructor list into trimmed, non-empty names.
func SplitInstructors(names string) []string {
	var out []string
	for _, name := range strings.Split(names, "\n") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ResearcherIDs resolves each instructor to an identifier and joins them with ";".
// A name the resolver does not know contributes an empty entry and is returned in misses.
func ResearcherIDs(names string, r Resolver) (ids string, misses []string) {
	instructors := SplitInstructors(names)
	resolved := make([]string, len(instructors))
	for i, name := range instructors {
		id, ok := r.Lookup(name)
		if !ok {
			misses = append(misses, name)
		}
		resolved[i] = id
	}
	return strings.Join(resolved, listSeparator), misses
}

// ActivityAttributes collects every GENR- marker code in tags as "activity.<code>",
// lower-cased, de-duplicated and sorted.
func ActivityAttributes(tags string) string {
	set := make(map[string]struct{})
	rest := tags
	for {
		i := strings.Index(rest, attributeMarker)
		if i < 0 {
			break
		}
		rest = rest[i+len(attributeMarker):]
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			end = len(rest)
		}
		if code := strings.ToLower(rest[:end]); code != "" {
			set[attributeNamespace+code] = struct{}{}
		}
		rest = rest[end:]
	}

	attrs := make([]string, 0, len(set))
	for attr := range set {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)
	return strings.Join(attrs, listSeparator)
}

// CourseID joins the parenthesised subject code with the course number, e.g.
// "Biology (BIO)" and "101" give "BIO 101".
func CourseID(subject, number string) string {
	code := ""
	if m := subjectCodePattern.FindStringSubmatch(subject); m != nil {
		code = m[1]
	}
	number = strings.TrimSpace(number)
	if code == "" && number == "" {
		return ""
	}
	return code + " " + number
}

// CourseSection returns the second non-empty dash-separated part of section.
func CourseSection(section string) string {
	var parts []string
	for _, part := range strings.Split(section, "-") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// CourseType maps an instructional format to its course type code.
func CourseType(format string) string {
	v := strings.ToLower(strings.TrimSpace(format))
	switch v {
	case "":
		return ""
	case "independent study":
		return courseTypeIndependentStudy
	}
	return courseTypePrefix + strings.ReplaceAll(v, " ", "")
}

// CourseTerm returns "term.<first word>" of an academic period, or "" when it is blank.
func CourseTerm(period string) string {
	words := strings.Fields(period)
	if len(words) == 0 {
		return ""
	}
	return termPrefix + strings.ToLower(words[0])
}

// DeliveryMode formats the first local field.
func DeliveryMode(mode string) string {
	return deliveryModePrefix + mode
}
