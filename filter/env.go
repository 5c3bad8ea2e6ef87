package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/s0up4200/ethplorer/ethplorer"
)

func newEnv(size int) Env {
	env := make(Env, size+16)
	addHelperFunctions(env)
	return env
}

// TokenEnv exposes a token to expressions. Amounts are scaled by the token's
// decimals and prices come from the attached market data, zero when absent.
func TokenEnv(token *ethplorer.TokenInfo) Env {
	env := newEnv(24)

	price := token.Price.Value
	env["Token"] = token
	env["Address"] = token.Address
	env["Name"] = token.Name
	env["Symbol"] = token.Symbol
	env["Decimals"] = int(min(uint64(token.Decimals), ethplorer.MaxDecimals))
	env["TotalSupply"] = token.Scaled(token.TotalSupply.Decimal).InexactFloat64()
	env["HoldersCount"] = int(token.HoldersCount)
	env["TransfersCount"] = int(token.TransfersCount)
	env["TxsCount"] = int(token.TxsCount)
	env["OpCount"] = int(token.OpCount)
	env["LastUpdated"] = token.LastUpdated.Time()
	env["Added"] = token.Added.Time()
	env["Tags"] = token.PublicTags
	env["HasPrice"] = token.Price.Present
	env["Price"] = float64(price.Rate)
	env["PriceDiff"] = float64(price.Diff)
	env["PriceDiff7d"] = float64(price.Diff7d)
	env["MarketCap"] = float64(price.MarketCapUSD)
	env["Volume24h"] = float64(price.Volume24h)
	env["hasTag"] = createHasTagFunc(token.PublicTags)

	return env
}

// HolderEnv exposes a token holder to expressions
func HolderEnv(holder *ethplorer.Holder) Env {
	env := newEnv(4)

	env["Holder"] = holder
	env["Address"] = holder.Address
	env["Balance"] = float64(holder.Balance)
	env["Share"] = float64(holder.Share)

	return env
}

// OperationEnv exposes a token operation to expressions
func OperationEnv(op *ethplorer.Operation) Env {
	env := newEnv(12)

	env["Operation"] = op
	env["Type"] = op.Type
	env["From"] = op.From
	env["To"] = op.To
	env["Address"] = op.Address
	env["Hash"] = op.TransactionHash
	env["Timestamp"] = op.Timestamp.Time()
	env["Value"] = op.Amount().InexactFloat64()
	env["Symbol"] = op.TokenInfo.Symbol
	env["TokenAddress"] = op.TokenInfo.Address
	env["involves"] = createInvolvesFunc(op.From, op.To)

	return env
}

func createHasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		return slices.Contains(lowerTags, strings.ToLower(tag))
	}
}

func createInvolvesFunc(from, to string) func(string) bool {
	return func(address string) bool {
		return strings.EqualFold(from, address) || strings.EqualFold(to, address)
	}
}

// Tokens returns the tokens matching f, in order
func Tokens(f CompiledFilter, tokens []ethplorer.TokenInfo) ([]ethplorer.TokenInfo, error) {
	return apply(f, KindToken, tokens, TokenEnv)
}

// Holders returns the holders matching f, in order
func Holders(f CompiledFilter, holders []ethplorer.Holder) ([]ethplorer.Holder, error) {
	return apply(f, KindHolder, holders, HolderEnv)
}

// Operations returns the operations matching f, in order
func Operations(f CompiledFilter, ops []ethplorer.Operation) ([]ethplorer.Operation, error) {
	return apply(f, KindOperation, ops, OperationEnv)
}

// apply keeps the records f matches. A record whose evaluation fails is not
// a match.
func apply[T any](f CompiledFilter, kind Kind, records []T, envFor func(*T) Env) ([]T, error) {
	if f.Kind() != kind {
		return nil, fmt.Errorf("filter '%s' was compiled for %s records, not %s", f.Expression(), f.Kind(), kind)
	}

	matches := make([]T, 0, len(records))
	for i := range records {
		ok, err := f.Evaluate(envFor(&records[i]))
		if err != nil || !ok {
			continue
		}
		matches = append(matches, records[i])
	}
	return matches, nil
}
