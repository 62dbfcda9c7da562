// Package env selects the environment variables that feed a build task's
// cache key. It provides a mutable name→value map with set algebra, a
// wildcard-pattern matcher for splitting a snapshot into inclusions and
// exclusions, and deterministic serializations for hashing and for
// secret-safe display.
package env

import (
	"os"
	"sort"
	"strings"
)

// EnvironmentVariableMap is a name→value mapping of environment variables.
// Keys are unique; iteration order carries no meaning until one of the
// serialization methods sorts it. Each hash computation builds its own map
// from a snapshot, so instances are never shared across goroutines.
type EnvironmentVariableMap map[string]string

// BySource splits selected variables by how they were selected: Explicit
// holds the user-declared inclusions, Matching holds the default
// allow-list matches.
type BySource struct {
	Explicit EnvironmentVariableMap
	Matching EnvironmentVariableMap
}

// DetailedMap is the three-way breakdown consumed by the collaborators:
// All feeds the task-hash input, BySource feeds the dry-run summary.
type DetailedMap struct {
	All      EnvironmentVariableMap
	BySource BySource
}

// WildcardMaps is the unresolved partition of a snapshot against a pattern
// list: variables matched by inclusion patterns and variables matched by
// exclusion patterns. A variable may legally appear in both sides.
type WildcardMaps struct {
	Inclusions EnvironmentVariableMap
	Exclusions EnvironmentVariableMap
}

// Resolve collapses the partition into a single map. Exclusion wins: every
// key present in Exclusions is removed from the result no matter which side
// was computed first.
func (wm WildcardMaps) Resolve() EnvironmentVariableMap {
	output := wm.Inclusions.Copy()
	for key := range wm.Exclusions {
		delete(output, key)
	}
	return output
}

// Infer captures a snapshot of the process environment. This is the only
// ambient read in the package; all other operations work on the owned
// snapshot they are given.
func Infer() EnvironmentVariableMap {
	evm := make(EnvironmentVariableMap)
	for _, entry := range os.Environ() {
		if name, value, ok := strings.Cut(entry, "="); ok {
			evm[name] = value
		}
	}
	return evm
}

// Insert adds a variable, overwriting any existing value for the name.
func (evm EnvironmentVariableMap) Insert(key, value string) {
	evm[key] = value
}

// Union merges another map into evm. On a key collision the other map's
// value wins; keys only present in evm are kept.
func (evm EnvironmentVariableMap) Union(another EnvironmentVariableMap) {
	for key, value := range another {
		evm[key] = value
	}
}

// Difference removes from evm every key present in another. Removal is by
// key only; the values are never compared.
func (evm EnvironmentVariableMap) Difference(another EnvironmentVariableMap) {
	for key := range another {
		delete(evm, key)
	}
}

// Copy returns an independent shallow copy of evm.
func (evm EnvironmentVariableMap) Copy() EnvironmentVariableMap {
	output := make(EnvironmentVariableMap, len(evm))
	for key, value := range evm {
		output[key] = value
	}
	return output
}

// Names returns the variable names in evm, sorted.
func (evm EnvironmentVariableMap) Names() []string {
	names := make([]string, 0, len(evm))
	for name := range evm {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromWildcards returns the variables in evm selected by the given wildcard
// patterns, with exclusion patterns already applied. An empty pattern list
// selects nothing and compiles no regex.
func (evm EnvironmentVariableMap) FromWildcards(wildcardPatterns []string) (EnvironmentVariableMap, error) {
	if len(wildcardPatterns) == 0 {
		return EnvironmentVariableMap{}, nil
	}

	resolvedSet, err := evm.wildcardMapFromWildcards(wildcardPatterns)
	if err != nil {
		return nil, err
	}
	return resolvedSet.Resolve(), nil
}

// FromWildcardsUnresolved returns the raw inclusion/exclusion partition for
// the given patterns. Callers use this when user-declared exclusions must
// take precedence over inclusions computed elsewhere, composing the maps
// themselves instead of relying on Resolve. The empty-list short-circuit
// matches FromWildcards.
func (evm EnvironmentVariableMap) FromWildcardsUnresolved(wildcardPatterns []string) (WildcardMaps, error) {
	if len(wildcardPatterns) == 0 {
		return WildcardMaps{
			Inclusions: EnvironmentVariableMap{},
			Exclusions: EnvironmentVariableMap{},
		}, nil
	}

	return evm.wildcardMapFromWildcards(wildcardPatterns)
}
