package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/wellmaintained/cachekey/pkg/env"
)

// PrintTable prints a formatted table with headers and rows using text/tabwriter.
// Headers and rows are printed with tab separators for automatic column alignment.
func PrintTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(headers) > 0 {
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// PrintEnvSummary renders the by-source breakdown of hashed environment
// variables. Values go through the secret-hashable serialization, so the
// output only ever contains variable names and value digests, never a raw
// value.
func PrintEnvSummary(w io.Writer, detailed env.DetailedMap) error {
	headers := []string{"SOURCE", "VARIABLE", "VALUE (sha256)"}

	var rows [][]string
	rows = appendPairRows(rows, "explicit", detailed.BySource.Explicit)
	rows = appendPairRows(rows, "matching", detailed.BySource.Matching)

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No environment variables contribute to the hash.")
		return err
	}
	return PrintTable(w, headers, rows)
}

func appendPairRows(rows [][]string, source string, evm env.EnvironmentVariableMap) [][]string {
	for _, pair := range evm.ToSecretHashable() {
		name, digest, _ := strings.Cut(pair, "=")
		rows = append(rows, []string{source, name, digest})
	}
	return rows
}
