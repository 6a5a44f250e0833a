// Package homepage retrieves the X.com homepage HTML that seeds the
// transaction generator. It transparently follows the legacy
// twitter.com migration flow: a meta-refresh redirect to the x.com
// migrate URL, then an auto-submitting migration form.
package homepage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/qm4/xtid/internal/document"
)

// DefaultBaseURL is the canonical homepage.
const DefaultBaseURL = "https://x.com"

const defaultMigrateURL = "https://x.com/x/migrate"

var reMigrationURL = regexp.MustCompile(`https?://(?:www\.)?(?:twitter|x)\.com(?:/x)?/migrate(?:[/?])tok=[A-Za-z0-9%\-_]+`)

// Fetch downloads the homepage and resolves any migration indirection,
// returning the final HTML body.
func Fetch(ctx context.Context, client *http.Client, baseURL, userAgent string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	body, err := get(ctx, client, baseURL, userAgent)
	if err != nil {
		return "", fmt.Errorf("fetching homepage: %w", err)
	}

	doc, err := document.Parse(body)
	if err != nil {
		return body, nil
	}

	if u := migrationURL(doc, body); u != "" {
		body, err = get(ctx, client, u, userAgent)
		if err != nil {
			return "", fmt.Errorf("following migration redirect: %w", err)
		}
		doc, err = document.Parse(body)
		if err != nil {
			return body, nil
		}
	}

	if action, fields, ok := migrationForm(doc); ok {
		body, err = postForm(ctx, client, action, fields, userAgent)
		if err != nil {
			return "", fmt.Errorf("submitting migration form: %w", err)
		}
	}

	return body, nil
}

// migrationURL finds the twitter.com -> x.com migration redirect, first
// in the meta refresh tag, then anywhere in the body.
func migrationURL(doc *document.Document, body string) string {
	if meta := doc.Find("meta", "http-equiv", "refresh"); meta != nil {
		if m := reMigrationURL.FindString(meta.Attr("content")); m != "" {
			return m
		}
	}
	return reMigrationURL.FindString(body)
}

// migrationForm extracts the auto-submit migration form's action and
// hidden input fields.
func migrationForm(doc *document.Document) (string, url.Values, bool) {
	form := doc.Find("form", "name", "f")
	if form == nil {
		form = doc.Find("form", "action", defaultMigrateURL)
	}
	if form == nil {
		return "", nil, false
	}

	action := form.Attr("action")
	if action == "" {
		action = defaultMigrateURL
	}

	fields := url.Values{}
	for _, input := range form.FindAll("input") {
		if name := input.Attr("name"); name != "" {
			fields.Set(name, input.Attr("value"))
		}
	}
	return action, fields, true
}

func get(ctx context.Context, client *http.Client, rawURL, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	setBrowserHeaders(req, userAgent)
	return do(client, req)
}

func postForm(ctx context.Context, client *http.Client, rawURL string, fields url.Values, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(fields.Encode()))
	if err != nil {
		return "", err
	}
	setBrowserHeaders(req, userAgent)
	req.Header.Set("content-type", "application/x-www-form-urlencoded")
	return do(client, req)
}

func setBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7")
	req.Header.Set("accept-language", "en-US,en;q=0.9")
	req.Header.Set("user-agent", userAgent)
}

func do(client *http.Client, req *http.Request) (string, error) {
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned HTTP %d", req.URL, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
