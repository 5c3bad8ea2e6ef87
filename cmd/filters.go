package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// filtersCmd lists the named filters from the config file
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the filters defined in the config file",
	Long: `List the named filters defined under "filter" in the config file.

A name can be passed to --filter in place of an expression. Expressions see
different variables depending on the command:

  tokens      Address Name Symbol Decimals TotalSupply HoldersCount TransfersCount
              TxsCount OpCount LastUpdated Added Tags HasPrice Price PriceDiff
              PriceDiff7d MarketCap Volume24h hasTag(tag)
  holders     Address Balance Share
  operations  Type From To Address Hash Timestamp Value Symbol TokenAddress
              involves(address)

Helpers available everywhere: contains hasPrefix hasSuffix lower upper
daysSince daysAgo monthsAgo yearsAgo parseDate now`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := filters.ListFilters()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No filters configured")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, name := range names {
			expression, _ := filters.GetFilter(name)
			fmt.Fprintf(w, "%s\t%s\n", name, expression)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
