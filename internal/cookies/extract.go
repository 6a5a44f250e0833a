// Package cookies extracts X.com session cookies (auth_token, ct0)
// from local browsers via kooky. Safari first, Chrome as fallback —
// Safari cookies are plaintext on macOS, Chrome needs Keychain access.
package cookies

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/browserutils/kooky"
	"github.com/browserutils/kooky/browser/chrome"
	"github.com/browserutils/kooky/browser/safari"
)

// Result holds extracted cookies and which browser provided them.
type Result struct {
	Cookies map[string]string
	Browser string
}

// HasAll reports whether every requested cookie name was found.
func (r *Result) HasAll(names []string) bool {
	if r == nil {
		return false
	}
	for _, n := range names {
		if r.Cookies[n] == "" {
			return false
		}
	}
	return true
}

// Extract reads the named cookies for a domain suffix from local
// browsers, stopping once all names are satisfied.
func Extract(ctx context.Context, domain string, names []string, logf func(string, ...any)) (*Result, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	result := &Result{Cookies: make(map[string]string)}
	nameSet := make(map[string]bool, len(names))
	for _, n := range names {
		nameSet[n] = true
	}

	if err := extractSafari(ctx, domain, nameSet, result, logf); err != nil {
		logf("  Safari: %v", err)
	}
	if result.HasAll(names) {
		return result, nil
	}

	if err := extractChrome(ctx, domain, nameSet, result, logf); err != nil {
		logf("  Chrome: %v", err)
	}

	return result, nil
}

func extractSafari(ctx context.Context, domain string, nameSet map[string]bool, result *Result, logf func(string, ...any)) error {
	paths, err := safariCookiePaths()
	if err != nil {
		return err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		logf("  Searching Safari cookies at %s ...", path)

		seq := safari.TraverseCookies(path,
			kooky.DomainHasSuffix(domain),
		).OnlyCookies()

		for cookie := range seq {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if cookie == nil || cookie.Value == "" {
				continue
			}
			if len(nameSet) > 0 && !nameSet[cookie.Name] {
				continue
			}
			if result.Cookies[cookie.Name] != "" {
				continue // first match wins
			}
			result.Cookies[cookie.Name] = cookie.Value
			if result.Browser == "" {
				result.Browser = "safari"
			}
			logf("    Found %s (domain=%s, browser=safari)", cookie.Name, cookie.Domain)
		}
	}

	return nil
}

func extractChrome(ctx context.Context, domain string, nameSet map[string]bool, result *Result, logf func(string, ...any)) error {
	path, err := chromeCookiePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("Chrome cookie file not found at %s", path)
	}

	logf("  Searching Chrome cookies at %s ...", path)

	seq := chrome.TraverseCookies(path,
		kooky.DomainHasSuffix(domain),
	).OnlyCookies()

	for cookie := range seq {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if cookie == nil || cookie.Value == "" {
			continue
		}
		if len(nameSet) > 0 && !nameSet[cookie.Name] {
			continue
		}
		if result.Cookies[cookie.Name] != "" {
			continue
		}
		result.Cookies[cookie.Name] = cookie.Value
		if result.Browser == "" {
			result.Browser = "chrome"
		}
		logf("    Found %s (domain=%s, browser=chrome)", cookie.Name, cookie.Domain)
	}

	return nil
}

func chromeCookiePath() (string, error) {
	if runtime.GOOS != "darwin" {
		return "", fmt.Errorf("unsupported OS %q — only macOS is currently supported", runtime.GOOS)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	networkPath := filepath.Join(dir, "Google", "Chrome", "Default", "Network", "Cookies")
	if _, err := os.Stat(networkPath); err == nil {
		return networkPath, nil
	}
	return filepath.Join(dir, "Google", "Chrome", "Default", "Cookies"), nil
}

func safariCookiePaths() ([]string, error) {
	if runtime.GOOS != "darwin" {
		return nil, fmt.Errorf("unsupported OS %q — only macOS is currently supported", runtime.GOOS)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(home, "Library", "Containers", "com.apple.Safari", "Data", "Library", "Cookies", "Cookies.binarycookies"),
		filepath.Join(home, "Library", "Cookies", "Cookies.binarycookies"),
	}, nil
}
