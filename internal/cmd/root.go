package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/qm4/xtid/internal/config"
	"github.com/qm4/xtid/internal/homepage"
	"github.com/qm4/xtid/internal/httpclient"
	"github.com/qm4/xtid/internal/transaction"
)

var (
	globalCfg   *config.Config
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xtid",
	Short: "Generate x-client-transaction-id headers for X.com API requests",
	Long: `xtid derives X.com's per-request signing token from the live homepage.

It fetches https://x.com (following the legacy twitter.com migration
flow), extracts the site verification key and the SVG loading-animation
frame data, derives the session animation key, and signs method+path
pairs into x-client-transaction-id header values.

Usage:
  xtid generate POST /1.1/jot/client_event.json
  xtid key
  xtid request GET /i/api/1.1/account/settings.json`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		globalCfg = config.Load()
		if flagVerbose {
			globalCfg.Verbose = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// verboseLogf returns a stderr logger when verbose is on, a no-op
// otherwise.
func verboseLogf() func(string, ...any) {
	if !globalCfg.Verbose {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// clientTimeout returns the configured timeout as time.Duration.
func clientTimeout() time.Duration {
	timeout := time.Duration(globalCfg.Timeout) * time.Second
	if timeout < 10*time.Second {
		return 10 * time.Second
	}
	return timeout
}

// newGenerator fetches the homepage and builds a transaction generator
// from it. The same uTLS client fetches the ondemand chunk for dynamic
// key byte indices.
func newGenerator(ctx context.Context) (*transaction.Generator, *http.Client, error) {
	logf := verboseLogf()
	client := httpclient.New(clientTimeout())

	logf("[xtid] fetching %s ...", homepage.DefaultBaseURL)
	html, err := homepage.Fetch(ctx, client, homepage.DefaultBaseURL, globalCfg.UserAgent)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching homepage: %w", err)
	}

	gen := transaction.New(html, transaction.Options{
		Fetch: func(url string) (int, string, error) {
			logf("[xtid] fetching %s ...", url)
			return httpclient.FetchText(ctx, client, url, globalCfg.UserAgent)
		},
		Logf: logf,
	})
	return gen, client, nil
}
