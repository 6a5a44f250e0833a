package transaction

import (
	"fmt"
	"regexp"
	"strconv"
)

// FetchFunc retrieves an auxiliary resource. It returns the HTTP status
// and body text; implementations own their timeout and cancellation
// policy.
type FetchFunc func(url string) (int, string, error)

var (
	reOnDemandHash = regexp.MustCompile(`['"]ondemand\.s['"]:\s*['"](\w*)['"]`)
	reKeyIndex     = regexp.MustCompile(`\(\w\[(\d{1,2})\],\s*16\)`)
)

const onDemandURLFormat = "https://abs.twimg.com/responsive-web/client-web/ondemand.s.%sa.js"

// indicesConfig controls which site key bytes select the frame row and
// feed the frame time product.
type indicesConfig struct {
	rowIndex       int
	keyByteIndices []int
}

// defaultIndices is the static fallback used whenever the ondemand
// chunk cannot be located, fetched, or parsed.
var defaultIndices = indicesConfig{rowIndex: 2, keyByteIndices: []int{12, 14, 7}}

// fetchIndices scrapes the ondemand.s chunk hash out of the homepage,
// fetches the chunk, and extracts the parseInt key byte indices from
// it: the first index selects the frame row, the rest multiply into the
// frame time. One attempt, no retries.
func fetchIndices(homepageHTML string, fetch FetchFunc) (indicesConfig, error) {
	m := reOnDemandHash.FindStringSubmatch(homepageHTML)
	if len(m) < 2 || m[1] == "" {
		return indicesConfig{}, fmt.Errorf("ondemand.s hash not found on homepage")
	}

	status, body, err := fetch(fmt.Sprintf(onDemandURLFormat, m[1]))
	if err != nil {
		return indicesConfig{}, fmt.Errorf("fetching ondemand chunk: %w", err)
	}
	if status != 200 {
		return indicesConfig{}, fmt.Errorf("ondemand chunk returned HTTP %d", status)
	}

	matches := reKeyIndex.FindAllStringSubmatch(body, -1)
	if len(matches) < 2 {
		return indicesConfig{}, fmt.Errorf("ondemand chunk holds %d key byte indices, need at least 2", len(matches))
	}

	indices := make([]int, 0, len(matches))
	for _, km := range matches {
		n, err := strconv.Atoi(km[1])
		if err != nil {
			return indicesConfig{}, fmt.Errorf("invalid key byte index %q: %w", km[1], err)
		}
		indices = append(indices, n)
	}

	return indicesConfig{rowIndex: indices[0], keyByteIndices: indices[1:]}, nil
}
