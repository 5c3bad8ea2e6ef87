package ethplorer

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchConcurrency is the number of address lookups run at once
	DefaultBatchConcurrency = 4
	// MaxBatchConcurrency caps the concurrency a caller may request
	MaxBatchConcurrency = 32
)

// BatchResult contains the results of a batch address lookup
type BatchResult struct {
	Requested  int
	Successful map[string]*AddressInfo
	Failed     []BatchError
}

// BatchError contains information about a failed lookup
type BatchError struct {
	Address string
	Err     error
}

// Error implements the error interface
func (e BatchError) Error() string {
	return fmt.Sprintf("failed to get address info for %s: %v", e.Address, e.Err)
}

func (e BatchError) Unwrap() error {
	return e.Err
}

// BatchAddressInfo looks up several addresses concurrently. Every lookup is
// an independent call, so one failure never cancels the others; failures are
// collected in the result sorted by address. Duplicate and blank addresses
// are skipped.
func (c *Client) BatchAddressInfo(ctx context.Context, addresses []string, params AddressInfoParams, concurrency int) BatchResult {
	unique := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		unique = append(unique, address)
	}

	result := BatchResult{
		Requested:  len(unique),
		Successful: make(map[string]*AddressInfo, len(unique)),
	}
	if len(unique) == 0 {
		return result
	}

	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	concurrency = min(concurrency, MaxBatchConcurrency)

	var g errgroup.Group
	g.SetLimit(concurrency)

	var mu sync.Mutex
	for _, address := range unique {
		g.Go(func() error {
			info, err := c.GetAddressInfo(ctx, address, params)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("address", address).
					Msg("Failed to get address info")
				result.Failed = append(result.Failed, BatchError{Address: address, Err: err})
				return nil
			}
			result.Successful[address] = info
			return nil
		})
	}

	// Lookups never return an error to the group
	_ = g.Wait()

	slices.SortFunc(result.Failed, func(a, b BatchError) int {
		return strings.Compare(a.Address, b.Address)
	})

	c.logger.Debug().
		Int("requested", result.Requested).
		Int("successful", len(result.Successful)).
		Int("failed", len(result.Failed)).
		Msg("Batch address lookup finished")

	return result
}
