package env

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// EnvironmentVariablePairs is a list of "name=value" strings.
type EnvironmentVariablePairs []string

// mapToPair formats every entry with the transformer and sorts the
// formatted strings. Sorting happens after formatting, never on the key
// alone: the outer hash consumes this sequence verbatim, and the contract
// is that identical maps always serialize to the identical sequence.
func (evm EnvironmentVariableMap) mapToPair(transformer func(k, v string) string) EnvironmentVariablePairs {
	pairs := make(EnvironmentVariablePairs, 0, len(evm))
	for k, v := range evm {
		pairs = append(pairs, transformer(k, v))
	}
	sort.Strings(pairs)
	return pairs
}

// ToHashable returns the sorted "name=value" pairs with raw values. This is
// the task-hash input form; it must stay deterministic.
func (evm EnvironmentVariableMap) ToHashable() EnvironmentVariablePairs {
	return evm.mapToPair(func(k, v string) string {
		return k + "=" + v
	})
}

// ToSecretHashable returns the sorted pairs with every non-empty value
// replaced by the hex sha256 of its bytes. An empty value stays empty, so
// "present but empty" remains distinguishable without ever printing a real
// value. This is the only form the summary output is allowed to show.
func (evm EnvironmentVariableMap) ToSecretHashable() EnvironmentVariablePairs {
	return evm.mapToPair(func(k, v string) string {
		if v == "" {
			return k + "="
		}
		hashedValue := sha256.Sum256([]byte(v))
		return k + "=" + hex.EncodeToString(hashedValue[:])
	})
}
