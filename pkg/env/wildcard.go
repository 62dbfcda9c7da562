package env

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	wildcard             = '*'
	wildcardEscape       = '\\'
	regexWildcardSegment = ".*"
)

// PatternError reports a wildcard alternation that failed to compile into a
// regular expression. Pattern lists are static configuration, so this is a
// configuration defect, never a transient fault; it is always returned to
// the caller rather than degraded into selecting nothing or everything.
type PatternError struct {
	Regex string
	Cause error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid wildcard alternation %q: %v", e.Regex, e.Cause)
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// patternKind is decided once per raw pattern, before compilation, instead
// of re-sniffing the leading characters at every use.
type patternKind int

const (
	patternInclude patternKind = iota
	patternExclude
)

// classifyPattern splits a raw pattern into its kind and glob body.
// A leading "!" marks an exclusion; a leading `\!` is an inclusion whose
// body keeps the literal "!"; anything else is a plain inclusion.
func classifyPattern(pattern string) (patternKind, string) {
	switch {
	case strings.HasPrefix(pattern, "!"):
		return patternExclude, pattern[1:]
	case strings.HasPrefix(pattern, `\!`):
		return patternInclude, pattern[1:]
	default:
		return patternInclude, pattern
	}
}

// wildcardToRegexPattern compiles one glob body into an unanchored regex
// fragment: "*" becomes ".*" (adjacent wildcards collapse into one), `\*`
// becomes a literal asterisk, and every literal run is escaped so regex
// metacharacters match themselves.
//
// The scan iterates runes but slices by byte offset, so literal runs next
// to a "*" stay aligned to character boundaries in multi-byte text.
func wildcardToRegexPattern(pattern string) string {
	var segments []string
	previousIndex := 0
	var previousRune rune

	for i, r := range pattern {
		if r == wildcard {
			if previousRune == wildcardEscape {
				// Literal asterisk: drop the trailing escape from the run,
				// append the "*" itself, and escape the whole thing.
				segments = append(segments, regexp.QuoteMeta(pattern[previousIndex:i-1]+"*"))
			} else {
				if run := regexp.QuoteMeta(pattern[previousIndex:i]); run != "" {
					segments = append(segments, run)
				}
				if len(segments) == 0 || segments[len(segments)-1] != regexWildcardSegment {
					segments = append(segments, regexWildcardSegment)
				}
			}
			previousIndex = i + 1
		}
		previousRune = r
	}

	// Trailing literal run, possibly empty.
	segments = append(segments, regexp.QuoteMeta(pattern[previousIndex:]))

	return strings.Join(segments, "")
}

// compileAlternation anchors the per-pattern fragments as ^(a|b|…)$ so a
// variable name must fully match one alternative; partial matches never
// count.
func compileAlternation(fragments []string) (*regexp.Regexp, error) {
	alternation := fmt.Sprintf("^(%s)$", strings.Join(fragments, "|"))
	re, err := regexp.Compile(alternation)
	if err != nil {
		return nil, &PatternError{Regex: alternation, Cause: err}
	}
	return re, nil
}

// wildcardMapFromWildcards partitions evm against the pattern list. Every
// name is tested independently against the inclusion and the exclusion
// alternation, so one name can land in both output maps. A side with no
// patterns never admits an entry.
func (evm EnvironmentVariableMap) wildcardMapFromWildcards(wildcardPatterns []string) (WildcardMaps, error) {
	output := WildcardMaps{
		Inclusions: EnvironmentVariableMap{},
		Exclusions: EnvironmentVariableMap{},
	}

	var includePatterns []string
	var excludePatterns []string

	for _, wildcardPattern := range wildcardPatterns {
		kind, body := classifyPattern(wildcardPattern)
		compiled := wildcardToRegexPattern(body)
		if kind == patternExclude {
			excludePatterns = append(excludePatterns, compiled)
		} else {
			includePatterns = append(includePatterns, compiled)
		}
	}

	includeRegex, err := compileAlternation(includePatterns)
	if err != nil {
		return WildcardMaps{}, err
	}
	excludeRegex, err := compileAlternation(excludePatterns)
	if err != nil {
		return WildcardMaps{}, err
	}

	for envVar, envValue := range evm {
		if len(includePatterns) > 0 && includeRegex.MatchString(envVar) {
			output.Inclusions[envVar] = envValue
		}
		if len(excludePatterns) > 0 && excludeRegex.MatchString(envVar) {
			output.Exclusions[envVar] = envValue
		}
	}

	return output, nil
}
