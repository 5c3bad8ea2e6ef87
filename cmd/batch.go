package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ethplorer/ethplorer"
)

var (
	batchFile        string
	batchConcurrency int
)

// batchCmd looks up many addresses at once
var batchCmd = &cobra.Command{
	Use:   "batch [address...]",
	Short: "Look up several addresses concurrently",
	Long: `Look up the balances of several addresses concurrently.

Addresses are taken from the arguments and, with --file, from a file with one
address per line ("-" reads stdin). Blank lines and lines starting with # are
ignored. A failed lookup does not stop the others.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchFile, "file", "", "read addresses from a file, one per line")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "concurrent lookups (default from batch.concurrency)")
	batchCmd.Flags().StringVar(&tokenAddress, "token", "", "only show this token contract")
	batchCmd.Flags().BoolVar(&showETHTotals, "show-eth-totals", false, "include total ETH in and out")
}

// batchOutput is the JSON shape of a batch result
type batchOutput struct {
	Successful map[string]*ethplorer.AddressInfo `json:"successful"`
	Failed     map[string]string                 `json:"failed"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	addresses := append([]string(nil), args...)
	if batchFile != "" {
		fromFile, err := readAddresses(cmd, batchFile)
		if err != nil {
			return err
		}
		addresses = append(addresses, fromFile...)
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no addresses given")
	}

	params := ethplorer.AddressInfoParams{Token: tokenAddress, ShowETHTotals: showETHTotals}
	if printRequest {
		for _, address := range addresses {
			dryRun(cmd, ethplorer.AddressInfoRequest(cfg.API.Key, address, params))
		}
		return nil
	}

	concurrency := cfg.Batch.Concurrency
	if cmd.Flags().Changed("concurrency") {
		if batchConcurrency < 1 || batchConcurrency > ethplorer.MaxBatchConcurrency {
			return fmt.Errorf("--concurrency must be between 1 and %d", ethplorer.MaxBatchConcurrency)
		}
		concurrency = batchConcurrency
	}

	logger.Info().
		Int("addresses", len(addresses)).
		Int("concurrency", concurrency).
		Msg("Starting batch lookup")

	result := client.BatchAddressInfo(cmd.Context(), addresses, params, concurrency)

	out := batchOutput{
		Successful: result.Successful,
		Failed:     make(map[string]string, len(result.Failed)),
	}
	for _, failure := range result.Failed {
		out.Failed[failure.Address] = failure.Err.Error()
	}

	if err := render(cmd, out, func() string { return formatter.FormatBatch(result) }); err != nil {
		return err
	}

	if result.Requested > 0 && len(result.Successful) == 0 {
		return fmt.Errorf("all %d lookups failed", result.Requested)
	}
	return nil
}

func readAddresses(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open address file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var addresses []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read address file: %w", err)
	}
	return addresses, nil
}
