// Package hashing assembles the inputs of the global cache-key hash:
// selected environment variables, global file dependency hashes, and the
// opaque external dependency hash supplied by the caller.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/wellmaintained/cachekey/pkg/env"
)

// DefaultEnvVars is the fixed allow-list of variables that always
// participate in the global hash unless the user excludes them. Changing
// this list changes every hash, so it is versioned through globalCacheKey.
var DefaultEnvVars = []string{"VERCEL_ANALYTICS_ID"}

// globalCacheKey invalidates every existing hash when the hashing scheme
// itself changes. Bump the suffix on any incompatible change.
const globalCacheKey = "cachekey global hash v1"

// GlobalHashableInputs collects everything that feeds CalculateGlobalHash.
type GlobalHashableInputs struct {
	GlobalFileHashMap    map[string]string
	RootExternalDepsHash string
	Env                  []string
	ResolvedEnvVars      env.DetailedMap
	PassThroughEnv       []string
}

// GlobalHashableEnvVars computes the environment-variable contribution to
// the global hash: the user-declared globalEnv selections plus the default
// allow-list matches, with user exclusions removed from all three views.
// The unresolved form of the user set is used deliberately so that a user
// exclusion also strips default-variable matches.
func GlobalHashableEnvVars(envAtExecutionStart env.EnvironmentVariableMap, globalEnv []string) (env.DetailedMap, error) {
	defaultEnvVarMap, err := envAtExecutionStart.FromWildcards(DefaultEnvVars)
	if err != nil {
		return env.DetailedMap{}, err
	}

	userEnvVarSet, err := envAtExecutionStart.FromWildcardsUnresolved(globalEnv)
	if err != nil {
		return env.DetailedMap{}, err
	}

	allEnvVarMap := env.EnvironmentVariableMap{}
	allEnvVarMap.Union(userEnvVarSet.Inclusions)
	allEnvVarMap.Union(defaultEnvVarMap)
	allEnvVarMap.Difference(userEnvVarSet.Exclusions)

	explicitEnvVarMap := env.EnvironmentVariableMap{}
	explicitEnvVarMap.Union(userEnvVarSet.Inclusions)
	explicitEnvVarMap.Difference(userEnvVarSet.Exclusions)

	matchingEnvVarMap := env.EnvironmentVariableMap{}
	matchingEnvVarMap.Union(defaultEnvVarMap)
	matchingEnvVarMap.Difference(userEnvVarSet.Exclusions)

	return env.DetailedMap{
		All: allEnvVarMap,
		BySource: env.BySource{
			Explicit: explicitEnvVarMap,
			Matching: matchingEnvVarMap,
		},
	}, nil
}

// CalculateGlobalHash computes the hex sha256 of the assembled inputs.
// Every field is length-prefixed and multi-entry fields are written in a
// sorted or configured-stable order, so identical inputs always produce
// the identical hash.
func CalculateGlobalHash(inputs GlobalHashableInputs) string {
	h := sha256.New()

	writeField := func(data []byte) {
		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(data)))
		h.Write(length[:])
		h.Write(data)
	}
	writeCount := func(n int) {
		var count [8]byte
		binary.BigEndian.PutUint64(count[:], uint64(n))
		h.Write(count[:])
	}

	writeField([]byte(globalCacheKey))

	// Global file dependency hashes, sorted by path.
	paths := make([]string, 0, len(inputs.GlobalFileHashMap))
	for path := range inputs.GlobalFileHashMap {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	writeCount(len(paths))
	for _, path := range paths {
		writeField([]byte(path))
		writeField([]byte(inputs.GlobalFileHashMap[path]))
	}

	writeField([]byte(inputs.RootExternalDepsHash))

	// Pattern lists in configured order; the config text is itself an input.
	writeCount(len(inputs.Env))
	for _, pattern := range inputs.Env {
		writeField([]byte(pattern))
	}
	writeCount(len(inputs.PassThroughEnv))
	for _, pattern := range inputs.PassThroughEnv {
		writeField([]byte(pattern))
	}

	// The resolved variables enter as raw pairs, already sorted.
	pairs := inputs.ResolvedEnvVars.All.ToHashable()
	writeCount(len(pairs))
	for _, pair := range pairs {
		writeField([]byte(pair))
	}

	return hex.EncodeToString(h.Sum(nil))
}
