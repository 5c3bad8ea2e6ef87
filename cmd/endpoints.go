package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ethplorer/ethplorer"
	"github.com/s0up4200/ethplorer/filter"
)

// Flags shared by the endpoint commands
var (
	filterRef      string
	limit          uint64
	period         uint64
	since          string
	opType         string
	tokenAddress   string
	criteria       string
	showETHTotals  bool
	showZeroValues bool
)

func init() {
	rootCmd.AddCommand(addressCmd, tokenCmd, holdersCmd, lastBlockCmd, tokensNewCmd, txCountsCmd,
		tokenHistoryCmd, addressHistoryCmd, addressTxsCmd, topTokensCmd, topCmd, priceHistoryCmd)

	addressCmd.Flags().StringVar(&tokenAddress, "token", "", "only show this token contract")
	addressCmd.Flags().BoolVar(&showETHTotals, "show-eth-totals", false, "include total ETH in and out")

	holdersCmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "maximum number of holders (capped at 1000)")
	holdersCmd.Flags().StringVarP(&filterRef, "filter", "f", "", "filter expression or configured filter name")

	tokensNewCmd.Flags().StringVarP(&filterRef, "filter", "f", "", "filter expression or configured filter name")

	txCountsCmd.Flags().Uint64VarP(&period, "period", "p", 0, "number of days (capped at 90)")

	tokenHistoryCmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "maximum number of operations (capped at 1000)")
	tokenHistoryCmd.Flags().StringVarP(&opType, "type", "t", "", "operation type, e.g. transfer, approve, mint")
	tokenHistoryCmd.Flags().StringVar(&since, "since", "", "only operations after this time (epoch seconds or date)")
	tokenHistoryCmd.Flags().StringVarP(&filterRef, "filter", "f", "", "filter expression or configured filter name")

	addressHistoryCmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "maximum number of operations (capped at 1000)")
	addressHistoryCmd.Flags().StringVarP(&opType, "type", "t", "", "operation type, e.g. transfer, approve, mint")
	addressHistoryCmd.Flags().StringVar(&since, "since", "", "only operations after this time (epoch seconds or date)")
	addressHistoryCmd.Flags().StringVar(&tokenAddress, "token", "", "only operations of this token contract")
	addressHistoryCmd.Flags().StringVarP(&filterRef, "filter", "f", "", "filter expression or configured filter name")

	addressTxsCmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "maximum number of transactions (capped at 1000)")
	addressTxsCmd.Flags().StringVar(&since, "since", "", "only transactions after this time (epoch seconds or date)")
	addressTxsCmd.Flags().BoolVar(&showZeroValues, "show-zero", false, "include transactions without value")

	topTokensCmd.Flags().StringVarP(&filterRef, "filter", "f", "", "filter expression or configured filter name")

	topCmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "maximum number of tokens (capped at 1000)")
	topCmd.Flags().StringVarP(&criteria, "criteria", "c", "", "ranking criteria: trade, cap or count")
	topCmd.Flags().StringVarP(&filterRef, "filter", "f", "", "filter expression or configured filter name")

	priceHistoryCmd.Flags().Uint64VarP(&period, "period", "p", 0, "number of days (capped at 90)")
}

var addressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "Show the ETH and token balances of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := ethplorer.AddressInfoParams{Token: tokenAddress, ShowETHTotals: showETHTotals}
		if dryRun(cmd, ethplorer.AddressInfoRequest(cfg.API.Key, args[0], params)) {
			return nil
		}

		info, err := client.GetAddressInfo(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		return render(cmd, info, func() string { return formatter.FormatAddressInfo(info) })
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <address>",
	Short: "Show the details of a token contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun(cmd, ethplorer.TokenInfoRequest(cfg.API.Key, args[0])) {
			return nil
		}

		token, err := client.GetTokenInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, token, func() string { return formatter.FormatTokenInfo(token) })
	},
}

var holdersCmd = &cobra.Command{
	Use:   "holders <token>",
	Short: "List the top holders of a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFilter(filter.KindHolder, filterRef)
		if err != nil {
			return err
		}
		if dryRun(cmd, ethplorer.TopTokenHoldersRequest(cfg.API.Key, args[0], limit)) {
			return nil
		}

		result, err := client.GetTopTokenHolders(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		if f != nil {
			if result.Holders, err = filter.Holders(f, result.Holders); err != nil {
				return err
			}
		}
		return render(cmd, result, func() string { return formatter.FormatHolders(result.Holders) })
	},
}

var lastBlockCmd = &cobra.Command{
	Use:   "last-block",
	Short: "Show the last block indexed by Ethplorer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun(cmd, ethplorer.LastBlockRequest(cfg.API.Key)) {
			return nil
		}

		block, err := client.GetLastBlock(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, block, func() string { return fmt.Sprintf("Last block: %d", block.LastBlock) })
	},
}

var tokensNewCmd = &cobra.Command{
	Use:   "tokens-new",
	Short: "List recently added tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFilter(filter.KindToken, filterRef)
		if err != nil {
			return err
		}
		if dryRun(cmd, ethplorer.TokensNewRequest(cfg.API.Key)) {
			return nil
		}

		tokens, err := client.GetTokensNew(cmd.Context())
		if err != nil {
			return err
		}
		if f != nil {
			if tokens, err = filter.Tokens(f, tokens); err != nil {
				return err
			}
		}
		return render(cmd, tokens, func() string { return formatter.FormatTokens(tokens) })
	},
}

var txCountsCmd = &cobra.Command{
	Use:   "tx-counts <token>",
	Short: "Show daily operation counts of a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun(cmd, ethplorer.TokenHistoryGroupedRequest(cfg.API.Key, args[0], period)) {
			return nil
		}

		counts, err := client.GetTokenDailyTransactionCounts(cmd.Context(), args[0], period)
		if err != nil {
			return err
		}
		return render(cmd, counts, func() string { return formatter.FormatDailyCounts(counts.CountTxs) })
	},
}

var tokenHistoryCmd = &cobra.Command{
	Use:   "token-history <token>",
	Short: "List the latest operations of a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseSince(since)
		if err != nil {
			return err
		}
		f, err := resolveFilter(filter.KindOperation, filterRef)
		if err != nil {
			return err
		}

		params := ethplorer.TokenHistoryParams{Limit: limit, Type: opType, Timestamp: ts}
		if dryRun(cmd, ethplorer.TokenHistoryRequest(cfg.API.Key, args[0], params)) {
			return nil
		}

		history, err := client.GetTokenHistory(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		return renderOperations(cmd, history, f)
	},
}

var addressHistoryCmd = &cobra.Command{
	Use:   "address-history <address>",
	Short: "List the latest token operations of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseSince(since)
		if err != nil {
			return err
		}
		f, err := resolveFilter(filter.KindOperation, filterRef)
		if err != nil {
			return err
		}

		params := ethplorer.AddressHistoryParams{Limit: limit, Type: opType, Timestamp: ts, Token: tokenAddress}
		if dryRun(cmd, ethplorer.AddressHistoryRequest(cfg.API.Key, args[0], params)) {
			return nil
		}

		history, err := client.GetAddressHistory(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		return renderOperations(cmd, history, f)
	},
}

func renderOperations(cmd *cobra.Command, history *ethplorer.TokenHistory, f filter.CompiledFilter) error {
	if f != nil {
		ops, err := filter.Operations(f, history.Operations)
		if err != nil {
			return err
		}
		history.Operations = ops
	}
	return render(cmd, history, func() string { return formatter.FormatOperations(history.Operations) })
}

var addressTxsCmd = &cobra.Command{
	Use:   "address-txs <address>",
	Short: "List the latest ETH transactions of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseSince(since)
		if err != nil {
			return err
		}

		params := ethplorer.AddressTransactionsParams{Limit: limit, Timestamp: ts, ShowZeroValues: showZeroValues}
		if dryRun(cmd, ethplorer.AddressTransactionsRequest(cfg.API.Key, args[0], params)) {
			return nil
		}

		txs, err := client.GetAddressTransactions(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		return render(cmd, txs, func() string { return formatter.FormatTransactions(txs) })
	},
}

var topTokensCmd = &cobra.Command{
	Use:   "top-tokens",
	Short: "List the most active tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFilter(filter.KindToken, filterRef)
		if err != nil {
			return err
		}
		if dryRun(cmd, ethplorer.TopTokensRequest(cfg.API.Key)) {
			return nil
		}

		top, err := client.GetTopTokens(cmd.Context())
		if err != nil {
			return err
		}
		return renderTopTokens(cmd, top, f)
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List top tokens ranked by a criteria",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFilter(filter.KindToken, filterRef)
		if err != nil {
			return err
		}

		params := ethplorer.TopParams{Limit: limit, Criteria: criteria}
		if dryRun(cmd, ethplorer.TopRequest(cfg.API.Key, params)) {
			return nil
		}

		top, err := client.GetTop(cmd.Context(), params)
		if err != nil {
			return err
		}
		return renderTopTokens(cmd, top, f)
	},
}

func renderTopTokens(cmd *cobra.Command, top *ethplorer.TopTokens, f filter.CompiledFilter) error {
	if f != nil {
		tokens, err := filter.Tokens(f, top.Tokens)
		if err != nil {
			return err
		}
		top.Tokens = tokens
	}
	return render(cmd, top, func() string { return formatter.FormatTokens(top.Tokens) })
}

var priceHistoryCmd = &cobra.Command{
	Use:   "price-history <token>",
	Short: "Show the daily price history of a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun(cmd, ethplorer.TokenPriceHistoryGroupedRequest(cfg.API.Key, args[0], period)) {
			return nil
		}

		history, err := client.GetTokenDailyPriceHistory(cmd.Context(), args[0], period)
		if err != nil {
			return err
		}
		return render(cmd, history, func() string { return formatter.FormatPrices(history.History.Prices) })
	},
}
