package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/ethplorer/config"
	"github.com/s0up4200/ethplorer/flex"
)

const holdersBody = `{"holders":[
	{"address":"0xaaa","balance":"1000","share":"60"},
	{"address":"0xbbb","balance":500,"share":30},
	{"address":"0xccc","balance":100,"share":10}
]}`

// setupEnv isolates config lookup and points the client at handler
func setupEnv(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Setenv("ETHPLORER_LOGGING_LEVEL", "error")
	t.Setenv("ETHPLORER_API_KEY", "")

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("ETHPLORER_API_BASE_URL", server.URL)

	return server.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flag variables outlive a single execution
	cfgFile, apiKey = "", ""
	jsonOutput, printRequest = false, false
	filterRef, since, opType, tokenAddress, criteria = "", "", "", "", ""
	limit, period = 0, 0
	showETHTotals, showZeroValues, checkOnly = false, false, false
	batchFile, batchConcurrency = "", 0
	resetChanged(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetChanged(c *cobra.Command) {
	reset := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetChanged(sub)
	}
}

func TestPrintRequest(t *testing.T) {
	baseURL := setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "address with defaults",
			args: []string{"address", "0xabc", "--print-request"},
			want: baseURL + "/getAddressInfo/0xabc?apiKey=freekey&showETHTotals=false",
		},
		{
			name: "top clamps limit",
			args: []string{"top", "--criteria", "cap", "--limit", "5000", "--print-request"},
			want: baseURL + "/getTop?apiKey=freekey&limit=1000&criteria=cap",
		},
		{
			name: "history with date",
			args: []string{"token-history", "0xt", "--type", "transfer", "--since", "2021-01-01", "--print-request"},
			want: baseURL + "/getTokenHistory/0xt?apiKey=freekey&type=transfer&timestamp=1609459200",
		},
		{
			name: "price history clamps period",
			args: []string{"price-history", "0xt", "--period", "365", "--print-request"},
			want: baseURL + "/getTokenPriceHistoryGrouped/0xt?apiKey=freekey&period=90",
		},
		{
			name: "key is masked",
			args: []string{"last-block", "--api-key", "secret", "--print-request"},
			want: baseURL + "/getLastBlock?apiKey=%2A%2A%2A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestLastBlock(t *testing.T) {
	var gotQuery string
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"lastBlock":"11565019"}`))
	})

	out, err := runCLI(t, "last-block", "--api-key", "my-key")
	require.NoError(t, err)
	assert.Equal(t, "Last block: 11565019\n", out)
	assert.Equal(t, "apiKey=my-key", gotQuery)
}

func TestHoldersWithFilter(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getTopTokenHolders/0xt", r.URL.Path)
		w.Write([]byte(holdersBody))
	})

	out, err := runCLI(t, "holders", "0xt", "--filter", "Share > 20", "--json")
	require.NoError(t, err)

	var decoded struct {
		Holders []struct {
			Address string  `json:"address"`
			Share   float64 `json:"share"`
		} `json:"holders"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Holders, 2)
	assert.Equal(t, "0xaaa", decoded.Holders[0].Address)
	assert.Equal(t, "0xbbb", decoded.Holders[1].Address)
}

func TestNamedFilterFromConfig(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(holdersBody))
	})
	require.NoError(t, os.WriteFile("config.yaml", []byte("filter:\n  whales: \"Share >= 60\"\n"), 0o600))

	out, err := runCLI(t, "holders", "0xt", "--filter", "whales")
	require.NoError(t, err)
	assert.Contains(t, out, "Holder (1):")
	assert.Contains(t, out, "0xaaa")
	assert.NotContains(t, out, "0xbbb")

	out, err = runCLI(t, "filters")
	require.NoError(t, err)
	assert.Contains(t, out, "whales")
	assert.Contains(t, out, "Share >= 60")
}

func TestInvalidFilter(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	_, err := runCLI(t, "holders", "0xt", "--filter", "Symbol == 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestBatch(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/getAddressInfo/0xbad" {
			w.Write([]byte(`{"error":{"code":104,"message":"Invalid address format"}}`))
			return
		}
		w.Write([]byte(`{"address":"x","ETH":{"balance":2}}`))
	})

	list := filepath.Join(t.TempDir(), "addresses.txt")
	require.NoError(t, os.WriteFile(list, []byte("# wallets\n0x2\n\n0xbad\n"), 0o600))

	out, err := runCLI(t, "batch", "0x1", "--file", list, "--concurrency", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Looked up 3 addresses (2 ok, 1 failed)")
	assert.Contains(t, out, "0xbad: ERROR")

	_, err = runCLI(t, "batch", "0xbad")
	assert.Error(t, err, "all lookups failing is an error")

	_, err = runCLI(t, "batch", "0x1", "--concurrency", "100")
	assert.Error(t, err)

	_, err = runCLI(t, "batch")
	assert.Error(t, err)
}

func TestAPIErrorIsReturned(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":1,"message":"Invalid API key"}}`))
	})

	_, err := runCLI(t, "token", "0xt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestInvalidSince(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := runCLI(t, "address-history", "0xa", "--since", "last tuesday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timestamp")
}

func TestVersionAndUpdate(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {})

	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ethplorer dev")
	assert.Contains(t, out, "development build")

	_, err = runCLI(t, "update")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot update development build")
}

func TestParseSince(t *testing.T) {
	tests := []struct {
		in      string
		want    flex.Timestamp
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "1609459200", want: 1609459200},
		{in: "2021-01-01", want: 1609459200},
		{in: "2021-01-01T12:00:00Z", want: 1609502400},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSince(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	out, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer out.Close()

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "trace", want: zerolog.TraceLevel},
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "WARN", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		setupLogger(config.LoggingConfig{Level: tt.level, Format: "console", Color: true}, out)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), tt.level)
	}

	jsonLogger := setupLogger(config.LoggingConfig{Level: "info", Format: "json"}, out)
	jsonLogger.Info().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)

	assert.False(t, isTerminal(out))
}
