package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qm4/xtid/internal/cookies"
)

// webBearerToken is the public bearer the X web client ships to every
// visitor; API calls are authenticated by the session cookies, not by
// this value.
const webBearerToken = "AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA"

var requestData string

var requestCmd = &cobra.Command{
	Use:   "request METHOD PATH",
	Short: "Perform an authenticated X.com API request with a signed header",
	Long: `Send an API request to x.com carrying a freshly generated
x-client-transaction-id header.

Session cookies (auth_token, ct0) come from the config file or are
auto-extracted from Safari/Chrome.`,
	Args: cobra.ExactArgs(2),
	RunE: runRequest,
}

func init() {
	requestCmd.Flags().StringVarP(&requestData, "data", "d", "", "Request body (sent as application/json)")
	rootCmd.AddCommand(requestCmd)
}

func runRequest(cmd *cobra.Command, args []string) error {
	method := strings.ToUpper(args[0])
	path := args[1]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	authToken, ct0, err := sessionCookies(cmd)
	if err != nil {
		return err
	}

	gen, client, err := newGenerator(cmd.Context())
	if err != nil {
		return err
	}

	signPath := path
	if idx := strings.Index(signPath, "?"); idx >= 0 {
		signPath = signPath[:idx]
	}
	token, err := gen.Generate(method, signPath)
	if err != nil {
		return fmt.Errorf("generating transaction ID: %w", err)
	}

	var body io.Reader
	if requestData != "" {
		body = strings.NewReader(requestData)
	}
	req, err := http.NewRequestWithContext(cmd.Context(), method, "https://x.com"+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("authorization", "Bearer "+webBearerToken)
	req.Header.Set("user-agent", globalCfg.UserAgent)
	req.Header.Set("x-csrf-token", ct0)
	req.Header.Set("x-client-transaction-id", token)
	req.Header.Set("cookie", fmt.Sprintf("auth_token=%s; ct0=%s", authToken, ct0))
	if requestData != "" {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	fmt.Fprintf(os.Stderr, "HTTP %d\n", resp.StatusCode)
	fmt.Fprintln(cmd.OutOrStdout(), string(respBody))
	return nil
}

// sessionCookies resolves auth_token and ct0 from config, falling back
// to browser extraction.
func sessionCookies(cmd *cobra.Command) (string, string, error) {
	authToken := globalCfg.AuthToken
	ct0 := globalCfg.CT0
	if authToken != "" && ct0 != "" {
		return authToken, ct0, nil
	}

	logf := verboseLogf()
	result, err := cookies.Extract(cmd.Context(), "x.com", []string{"auth_token", "ct0"}, logf)
	if err != nil {
		return "", "", fmt.Errorf("extracting browser cookies: %w", err)
	}
	if authToken == "" {
		authToken = result.Cookies["auth_token"]
	}
	if ct0 == "" {
		ct0 = result.Cookies["ct0"]
	}
	if authToken == "" || ct0 == "" {
		return "", "", fmt.Errorf("missing auth_token/ct0 — log in to x.com in Safari or Chrome, or set them via `xtid config set`")
	}
	return authToken, ct0, nil
}
