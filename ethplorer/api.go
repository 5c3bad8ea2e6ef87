package ethplorer

import (
	"context"
)

// API defines the Ethplorer operations the client supports
type API interface {
	GetAddressInfo(ctx context.Context, address string, params AddressInfoParams) (*AddressInfo, error)
	GetTokenInfo(ctx context.Context, address string) (*TokenInfo, error)
	GetTopTokenHolders(ctx context.Context, address string, limit uint64) (*TopTokenHolders, error)
	GetLastBlock(ctx context.Context) (*LastBlock, error)
	GetTokensNew(ctx context.Context) ([]TokenInfo, error)
	GetTokenDailyTransactionCounts(ctx context.Context, address string, period uint64) (*TokenDailyTransactionCounts, error)
	GetTokenHistory(ctx context.Context, address string, params TokenHistoryParams) (*TokenHistory, error)
	GetAddressHistory(ctx context.Context, address string, params AddressHistoryParams) (*TokenHistory, error)
	GetAddressTransactions(ctx context.Context, address string, params AddressTransactionsParams) ([]AddressTransaction, error)
	GetTopTokens(ctx context.Context) (*TopTokens, error)
	GetTop(ctx context.Context, params TopParams) (*TopTokens, error)
	GetTokenDailyPriceHistory(ctx context.Context, address string, period uint64) (*TokenDailyPriceHistory, error)
}

// Formatter renders decoded records for display
type Formatter interface {
	FormatAddressInfo(info *AddressInfo) string
	FormatTokenInfo(token *TokenInfo) string
	FormatTokens(tokens []TokenInfo) string
	FormatHolders(holders []Holder) string
	FormatOperations(ops []Operation) string
	FormatTransactions(txs []AddressTransaction) string
	FormatDailyCounts(counts []DailyTransactionCount) string
	FormatPrices(prices Prices) string
	FormatBatch(result BatchResult) string
}

var (
	_ API       = (*Client)(nil)
	_ Formatter = (*ConsoleFormatter)(nil)
)
