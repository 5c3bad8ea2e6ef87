package ethplorer

import (
	"github.com/shopspring/decimal"

	"github.com/s0up4200/ethplorer/flex"
)

// Fields the API is known to encode inconsistently use flex types; the rest
// decode structurally. Keys missing from a response leave the zero value.

// LastBlock is the response of getLastBlock
type LastBlock struct {
	LastBlock flex.Uint64 `json:"lastBlock"`
}

// TokenPrice is the market data attached to a token or to ETH. The API sends
// false instead of an object when it has no price.
type TokenPrice struct {
	Rate            flex.Float64   `json:"rate"`
	Currency        string         `json:"currency"`
	Diff            flex.Float64   `json:"diff"`
	Diff7d          flex.Float64   `json:"diff7d"`
	Diff30d         flex.Float64   `json:"diff30d"`
	Volume24h       flex.Float64   `json:"volume24h"`
	VolumeDiff1     flex.Float64   `json:"volDiff1"`
	VolumeDiff7     flex.Float64   `json:"volDiff7"`
	VolumeDiff30    flex.Float64   `json:"volDiff30"`
	MarketCapUSD    flex.Float64   `json:"marketCapUsd"`
	AvailableSupply flex.Float64   `json:"availableSupply"`
	Timestamp       flex.Timestamp `json:"ts"`
}

// TokenInfo describes an ERC-20 token contract
type TokenInfo struct {
	Address            string                  `json:"address"`
	Name               string                  `json:"name"`
	Decimals           flex.Uint64             `json:"decimals"`
	Symbol             string                  `json:"symbol"`
	TotalSupply        flex.Decimal            `json:"totalSupply"`
	Owner              string                  `json:"owner"`
	TxsCount           flex.Uint64             `json:"txsCount"`
	TransfersCount     flex.Uint64             `json:"transfersCount"`
	LastUpdated        flex.Timestamp          `json:"lastUpdated"`
	Slot               flex.Uint64             `json:"slot"`
	StorageTotalSupply flex.Decimal            `json:"StorageTotalSupply"`
	IssuancesCount     flex.Uint64             `json:"issuancesCount"`
	HoldersCount       flex.Uint64             `json:"holdersCount"`
	Image              string                  `json:"image"`
	Description        string                  `json:"description"`
	Website            string                  `json:"website"`
	Telegram           string                  `json:"telegram"`
	Twitter            string                  `json:"twitter"`
	Reddit             string                  `json:"reddit"`
	Facebook           string                  `json:"facebook"`
	Coingecko          string                  `json:"coingecko"`
	EthTransfersCount  flex.Uint64             `json:"ethTransfersCount"`
	Price              flex.Object[TokenPrice] `json:"price"`
	CountOps           flex.Uint64             `json:"countOps"`
	PublicTags         []string                `json:"publicTags"`
	OpCount            flex.Uint64             `json:"opCount"`
	Added              flex.Timestamp          `json:"added"`
}

// MaxDecimals bounds the decimals a token may declare. Larger values are
// nonsensical and are clamped before scaling.
const MaxDecimals = 255

// Scaled converts a raw integer amount of this token into display units
func (t *TokenInfo) Scaled(raw decimal.Decimal) decimal.Decimal {
	decimals := uint64(t.Decimals)
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	return raw.Shift(-int32(decimals))
}

// Label returns "Name (SYMBOL)", falling back to the address
func (t *TokenInfo) Label() string {
	switch {
	case t.Name != "" && t.Symbol != "":
		return t.Name + " (" + t.Symbol + ")"
	case t.Name != "":
		return t.Name
	case t.Symbol != "":
		return t.Symbol
	default:
		return t.Address
	}
}

// Token is one token balance held by an address
type Token struct {
	TokenInfo  TokenInfo    `json:"tokenInfo"`
	Balance    flex.Float64 `json:"balance"`
	RawBalance flex.Decimal `json:"rawBalance"`
	TotalIn    flex.Float64 `json:"totalIn"`
	TotalOut   flex.Float64 `json:"totalOut"`
}

// Amount returns the balance in display units, computed from the exact raw balance
func (t *Token) Amount() decimal.Decimal {
	return t.TokenInfo.Scaled(t.RawBalance.Decimal)
}

// ETH is the ether balance of an address
type ETH struct {
	Price      flex.Object[TokenPrice] `json:"price"`
	Balance    flex.Float64            `json:"balance"`
	RawBalance flex.Decimal            `json:"rawBalance"`
	TotalIn    flex.Float64            `json:"totalIn"`
	TotalOut   flex.Float64            `json:"totalOut"`
}

// Amount returns the ether balance, preferring the exact raw wei value
func (e *ETH) Amount() decimal.Decimal {
	if !e.RawBalance.IsZero() {
		return e.RawBalance.Shift(-18)
	}
	return decimal.NewFromFloat(float64(e.Balance))
}

// ContractInfo is present when the address is a contract
type ContractInfo struct {
	CreatorAddress  string         `json:"creatorAddress"`
	TransactionHash string         `json:"transactionHash"`
	Timestamp       flex.Timestamp `json:"timestamp"`
}

// AddressInfo is the response of getAddressInfo
type AddressInfo struct {
	Address      string                    `json:"address"`
	ETH          ETH                       `json:"ETH"`
	CountTxs     flex.Uint64               `json:"countTxs"`
	ContractInfo flex.Object[ContractInfo] `json:"contractInfo"`
	TokenInfo    flex.Object[TokenInfo]    `json:"tokenInfo"`
	Tokens       []Token                   `json:"tokens"`
}

// IsContract reports whether the address is a contract
func (a *AddressInfo) IsContract() bool {
	return a.ContractInfo.Present
}

// Holder is one entry of getTopTokenHolders
type Holder struct {
	Address string       `json:"address"`
	Balance flex.Float64 `json:"balance"`
	Share   flex.Float64 `json:"share"`
}

// TopTokenHolders is the response of getTopTokenHolders
type TopTokenHolders struct {
	Holders []Holder `json:"holders"`
}

// TransactionDate is the calendar day a grouped count belongs to
type TransactionDate struct {
	Year  flex.Uint64 `json:"year"`
	Month flex.Uint64 `json:"month"`
	Day   flex.Uint64 `json:"day"`
}

// DailyTransactionCount is the number of token operations on one day
type DailyTransactionCount struct {
	Date      TransactionDate `json:"_id"`
	Timestamp flex.Timestamp  `json:"ts"`
	Count     flex.Uint64     `json:"cnt"`
}

// TokenDailyTransactionCounts is the response of getTokenHistoryGrouped
type TokenDailyTransactionCounts struct {
	CountTxs []DailyTransactionCount `json:"countTxs"`
}

// Operation is one token transfer, approval, mint or burn
type Operation struct {
	Timestamp       flex.Timestamp `json:"timestamp"`
	TransactionHash string         `json:"transactionHash"`
	TokenInfo       TokenInfo      `json:"tokenInfo"`
	Type            string         `json:"type"`
	Address         string         `json:"address"`
	From            string         `json:"from"`
	To              string         `json:"to"`
	Value           flex.Decimal   `json:"value"`
}

// Amount returns the operation value in display units
func (o *Operation) Amount() decimal.Decimal {
	return o.TokenInfo.Scaled(o.Value.Decimal)
}

// TokenHistory is the response of getTokenHistory and getAddressHistory
type TokenHistory struct {
	Operations []Operation `json:"operations"`
}

// AddressTransaction is one entry of getAddressTransactions
type AddressTransaction struct {
	Timestamp flex.Timestamp `json:"timestamp"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Hash      string         `json:"hash"`
	Value     flex.Float64   `json:"value"`
	Input     string         `json:"input"`
	Success   bool           `json:"success"`
}

// TopTokens is the response of getTopTokens and getTop
type TopTokens struct {
	Tokens  []TokenInfo `json:"tokens"`
	OpCount flex.Uint64 `json:"opCount"`
}

// Price is one day of grouped price history
type Price struct {
	Timestamp       flex.Timestamp `json:"ts"`
	Date            flex.Timestamp `json:"date"`
	Open            flex.Float64   `json:"open"`
	Close           flex.Float64   `json:"close"`
	High            flex.Float64   `json:"high"`
	Low             flex.Float64   `json:"low"`
	Volume          flex.Float64   `json:"volume"`
	VolumeConverted flex.Float64   `json:"volumeConverted"`
	Average         flex.Float64   `json:"average"`
}

// Prices is the daily price series of a token
type Prices []Price

// Latest returns the most recent entry, or false if the series is empty
func (p Prices) Latest() (Price, bool) {
	if len(p) == 0 {
		return Price{}, false
	}

	latest := p[0]
	for _, price := range p[1:] {
		if price.Timestamp > latest.Timestamp {
			latest = price
		}
	}
	return latest, true
}

// History holds the grouped transaction counts and prices of a token
type History struct {
	CountTxs []DailyTransactionCount `json:"countTxs"`
	Prices   Prices                  `json:"prices"`
}

// TokenDailyPriceHistory is the response of getTokenPriceHistoryGrouped
type TokenDailyPriceHistory struct {
	History History `json:"history"`
}
