package ethplorer

import (
	"fmt"
	"slices"
	"strings"
)

const dateLayout = "2006-01-02"

// ConsoleFormatter provides console output formatting for decoded records
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// branch returns the tree prefix and continuation indent of an entry
func branch(isLast bool) (string, string) {
	if isLast {
		return "╰", "    "
	}
	return "├", "│   "
}

func header(sb *strings.Builder, noun string, count int) {
	fmt.Fprintf(sb, "\n%s", noun)
	if count != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(sb, " (%d):\n\n", count)
}

// FormatAddressInfo formats an address with its ETH and token balances
func (f *ConsoleFormatter) FormatAddressInfo(info *AddressInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nAddress %s\n", info.Address)
	fmt.Fprintf(&sb, "├── ETH: %s", info.ETH.Amount().String())
	if info.ETH.Price.Present && info.ETH.Price.Value.Rate > 0 {
		fmt.Fprintf(&sb, " (@ %.2f %s)", float64(info.ETH.Price.Value.Rate), info.ETH.Price.Value.Currency)
	}
	sb.WriteString("\n")
	if info.ETH.TotalIn > 0 || info.ETH.TotalOut > 0 {
		fmt.Fprintf(&sb, "│   In: %.6f | Out: %.6f\n", float64(info.ETH.TotalIn), float64(info.ETH.TotalOut))
	}
	if info.CountTxs > 0 {
		fmt.Fprintf(&sb, "├── Transactions: %d\n", info.CountTxs)
	}
	if info.IsContract() {
		contract := info.ContractInfo.Value
		fmt.Fprintf(&sb, "├── Contract created by %s", contract.CreatorAddress)
		if !contract.Timestamp.IsZero() {
			fmt.Fprintf(&sb, " on %s", contract.Timestamp.Time().Format(dateLayout))
		}
		sb.WriteString("\n")
	}
	if info.TokenInfo.Present {
		fmt.Fprintf(&sb, "├── Token contract: %s\n", info.TokenInfo.Value.Label())
	}

	fmt.Fprintf(&sb, "╰── Tokens (%d)\n", len(info.Tokens))
	for i, token := range info.Tokens {
		prefix, _ := branch(i == len(info.Tokens)-1)
		fmt.Fprintf(&sb, "    %s── %s: %s\n", prefix, token.TokenInfo.Label(), token.Amount().String())
	}

	return sb.String()
}

// FormatTokenInfo formats the details of one token
func (f *ConsoleFormatter) FormatTokenInfo(token *TokenInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n", token.Label())
	f.formatTokenDetails(&sb, token, "")
	return sb.String()
}

// FormatTokens formats a list of tokens
func (f *ConsoleFormatter) FormatTokens(tokens []TokenInfo) string {
	if len(tokens) == 0 {
		return "No tokens found"
	}

	var sb strings.Builder
	header(&sb, "Token", len(tokens))

	for i := range tokens {
		isLast := i == len(tokens)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s── %s\n", prefix, tokens[i].Label())
		f.formatTokenDetails(&sb, &tokens[i], indent)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) formatTokenDetails(sb *strings.Builder, token *TokenInfo, indent string) {
	fmt.Fprintf(sb, "%sAddress: %s\n", indent, token.Address)

	var counts []string
	if token.HoldersCount > 0 {
		counts = append(counts, fmt.Sprintf("Holders: %d", token.HoldersCount))
	}
	if token.TransfersCount > 0 {
		counts = append(counts, fmt.Sprintf("Transfers: %d", token.TransfersCount))
	}
	if token.TxsCount > 0 {
		counts = append(counts, fmt.Sprintf("Txs: %d", token.TxsCount))
	}
	if len(counts) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(counts, " | "))
	}

	if !token.TotalSupply.IsZero() {
		fmt.Fprintf(sb, "%sSupply: %s\n", indent, token.Scaled(token.TotalSupply.Decimal).String())
	}

	if token.Price.Present {
		price := token.Price.Value
		fmt.Fprintf(sb, "%sPrice: %.6f %s (24h: %+.2f%%)\n", indent, float64(price.Rate), price.Currency, float64(price.Diff))
	}

	if len(token.PublicTags) > 0 {
		fmt.Fprintf(sb, "%sTags: %s\n", indent, strings.Join(token.PublicTags, ", "))
	}
}

// FormatHolders formats the top holders of a token
func (f *ConsoleFormatter) FormatHolders(holders []Holder) string {
	if len(holders) == 0 {
		return "No holders found"
	}

	var sb strings.Builder
	header(&sb, "Holder", len(holders))

	for i, holder := range holders {
		prefix, _ := branch(i == len(holders)-1)
		fmt.Fprintf(&sb, "%s── %s  %.4f (%.2f%%)\n", prefix, holder.Address, float64(holder.Balance), float64(holder.Share))
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatOperations formats token operations
func (f *ConsoleFormatter) FormatOperations(ops []Operation) string {
	if len(ops) == 0 {
		return "No operations found"
	}

	var sb strings.Builder
	header(&sb, "Operation", len(ops))

	for i := range ops {
		op := &ops[i]
		isLast := i == len(ops)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s── %s %s %s\n", prefix, op.Timestamp.Time().Format("2006-01-02 15:04:05"), op.Type, op.Amount().String())
		if op.TokenInfo.Symbol != "" {
			fmt.Fprintf(&sb, "%sToken: %s\n", indent, op.TokenInfo.Label())
		}
		fmt.Fprintf(&sb, "%sFrom: %s\n", indent, op.From)
		fmt.Fprintf(&sb, "%sTo: %s\n", indent, op.To)
		if op.TransactionHash != "" {
			fmt.Fprintf(&sb, "%sTx: %s\n", indent, op.TransactionHash)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTransactions formats ETH transactions
func (f *ConsoleFormatter) FormatTransactions(txs []AddressTransaction) string {
	if len(txs) == 0 {
		return "No transactions found"
	}

	var sb strings.Builder
	header(&sb, "Transaction", len(txs))

	for i, tx := range txs {
		isLast := i == len(txs)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s── %s %s", prefix, tx.Timestamp.Time().Format("2006-01-02 15:04:05"), tx.Hash)
		if !tx.Success {
			sb.WriteString(" [FAILED]")
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s%s -> %s: %.6f ETH\n", indent, tx.From, tx.To, float64(tx.Value))

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatDailyCounts formats grouped daily operation counts
func (f *ConsoleFormatter) FormatDailyCounts(counts []DailyTransactionCount) string {
	if len(counts) == 0 {
		return "No transaction counts found"
	}

	var sb strings.Builder
	header(&sb, "Day", len(counts))

	for i, count := range counts {
		prefix, _ := branch(i == len(counts)-1)
		fmt.Fprintf(&sb, "%s── %04d-%02d-%02d: %d\n", prefix, count.Date.Year, count.Date.Month, count.Date.Day, count.Count)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatPrices formats a daily price series, oldest first
func (f *ConsoleFormatter) FormatPrices(prices Prices) string {
	if len(prices) == 0 {
		return "No prices found"
	}

	sorted := slices.Clone(prices)
	slices.SortStableFunc(sorted, func(a, b Price) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})

	var sb strings.Builder
	header(&sb, "Day", len(sorted))

	for i, price := range sorted {
		prefix, _ := branch(i == len(sorted)-1)
		fmt.Fprintf(&sb, "%s── %s  O %.4f  H %.4f  L %.4f  C %.4f  Vol %.2f\n",
			prefix, price.Timestamp.Time().Format(dateLayout),
			float64(price.Open), float64(price.High), float64(price.Low), float64(price.Close), float64(price.Volume))
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatBatch formats the outcome of a batch address lookup, sorted by address
func (f *ConsoleFormatter) FormatBatch(result BatchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nLooked up %d address", result.Requested)
	if result.Requested != 1 {
		sb.WriteString("es")
	}
	fmt.Fprintf(&sb, " (%d ok, %d failed):\n\n", len(result.Successful), len(result.Failed))

	addresses := make([]string, 0, len(result.Successful))
	for address := range result.Successful {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)

	total := len(addresses) + len(result.Failed)
	i := 0
	for _, address := range addresses {
		info := result.Successful[address]
		prefix, _ := branch(i == total-1)
		fmt.Fprintf(&sb, "%s── %s: %s ETH, %d tokens\n", prefix, address, info.ETH.Amount().String(), len(info.Tokens))
		i++
	}
	for _, failure := range result.Failed {
		prefix, _ := branch(i == total-1)
		fmt.Fprintf(&sb, "%s── %s: ERROR %v\n", prefix, failure.Address, failure.Err)
		i++
	}

	sb.WriteString("\n")
	return sb.String()
}
