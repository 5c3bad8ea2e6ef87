package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ethplorer/ethplorer"
	"github.com/s0up4200/ethplorer/filter"
	"github.com/s0up4200/ethplorer/flex"
)

// render writes v as indented JSON when --json is set, otherwise the console text
func render(cmd *cobra.Command, v any, text func() string) error {
	out := cmd.OutOrStdout()

	if jsonOutput {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	_, err := fmt.Fprintln(out, text())
	return err
}

// dryRun prints req instead of sending it when --print-request is set
func dryRun(cmd *cobra.Command, req ethplorer.Request) bool {
	if !printRequest {
		return false
	}

	fmt.Fprintln(cmd.OutOrStdout(), req.WithBase(client.BaseURL()).Redacted())
	return true
}

// resolveFilter compiles --filter for kind, returning nil when it is unset
func resolveFilter(kind filter.Kind, ref string) (filter.CompiledFilter, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, nil
	}

	f, err := filters.Resolve(kind, ref)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	logger.Debug().Str("kind", kind.String()).Str("filter", f.Expression()).Msg("Applying filter")
	return f, nil
}

// parseSince accepts epoch seconds or an ISO-8601 date
func parseSince(s string) (flex.Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if ts, err := flex.ParseEpoch(s); err == nil {
		return ts, nil
	}

	ts := flex.ParseTimestamp(s)
	if ts.IsZero() {
		return 0, fmt.Errorf("invalid timestamp %q: expected epoch seconds or a date like 2024-01-31", s)
	}
	return ts, nil
}
