// Package transaction implements the x-client-transaction-id signing
// scheme used by X.com's anti-automation layer.
//
// A Generator is built once from the homepage HTML: it decodes the
// twitter-site-verification meta value into the site key, optionally
// scrapes dynamic key byte indices out of the ondemand.s chunk, and
// derives the per-session animation key from the SVG loading animation.
// Every later Generate call combines that immutable state with a
// timestamp, a SHA-256 digest and one random byte into the token. Any
// extraction failure degrades to documented fallbacks; construction
// never fails, and generation fails only when no site key material
// exists at all.
package transaction

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qm4/xtid/internal/document"
)

const (
	// staticKeyword is mixed into every digest alongside the animation
	// key.
	staticKeyword = "obfiowerehiring"

	// epochOffsetMillis anchors token timestamps to the platform's own
	// epoch rather than Unix time.
	epochOffsetMillis = 1682924400000

	// additionalRandomNumber is the fixed trailing byte of the token
	// buffer, XOR-masked like everything else.
	additionalRandomNumber = 3
)

// ErrNoSiteKey is returned by Generate when construction could not
// establish any site key bytes.
var ErrNoSiteKey = errors.New("transaction: no site verification key material")

// Options configures Generator construction. All fields are optional.
type Options struct {
	// Fetch retrieves the ondemand.s chunk for dynamic key byte
	// indices. When nil (or when the fetch fails) the static defaults
	// are used.
	Fetch FetchFunc

	// Logf observes non-fatal fallback decisions. Nil discards.
	Logf func(string, ...any)
}

// Generator produces transaction tokens. All state is fixed at
// construction; concurrent Generate calls are safe without locking.
type Generator struct {
	key          string
	keyBytes     []byte
	animationKey string
	indices      indicesConfig

	now      func() time.Time
	randByte func() byte
	logf     func(string, ...any)
}

// New builds a Generator from the homepage HTML. It never fails:
// missing or malformed markup degrades to fallback values, leaving at
// worst an instance whose Generate returns ErrNoSiteKey.
func New(homepageHTML string, opts Options) *Generator {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	g := &Generator{
		indices:  defaultIndices,
		now:      time.Now,
		randByte: randomByte,
		logf:     logf,
	}

	doc, err := document.Parse(homepageHTML)
	if err != nil {
		logf("[transaction] homepage parse failed: %v", err)
		g.animationKey = fallbackAnimationKey
		return g
	}

	g.key = doc.MetaContent("twitter-site-verification")
	g.keyBytes = decodeSiteKey(g.key)

	if opts.Fetch != nil {
		cfg, err := fetchIndices(homepageHTML, opts.Fetch)
		if err != nil {
			logf("[transaction] dynamic indices unavailable, using defaults: %v", err)
		} else {
			g.indices = cfg
		}
	}

	g.animationKey = deriveAnimationKey(doc, g.keyBytes, g.indices)
	return g
}

// SiteKey returns the decoded site verification key bytes.
func (g *Generator) SiteKey() []byte {
	return g.keyBytes
}

// AnimationKey returns the session animation key.
func (g *Generator) AnimationKey() string {
	return g.animationKey
}

// Generate produces a transaction token for the given HTTP method and
// path using the current time.
func (g *Generator) Generate(method, path string) (string, error) {
	ts := (g.now().UnixMilli() - epochOffsetMillis) / 1000
	return g.GenerateAt(method, path, ts)
}

// GenerateAt produces a transaction token for an explicit timestamp,
// counted in seconds since the platform's token epoch.
func (g *Generator) GenerateAt(method, path string, timestamp int64) (string, error) {
	if len(g.keyBytes) == 0 {
		return "", ErrNoSiteKey
	}

	timeBytes := []byte{
		byte(timestamp & 0xff),
		byte((timestamp >> 8) & 0xff),
		byte((timestamp >> 16) & 0xff),
		byte((timestamp >> 24) & 0xff),
	}

	data := fmt.Sprintf("%s!%s!%d%s%s", method, path, timestamp, staticKeyword, g.animationKey)
	digest := sha256.Sum256([]byte(data))

	buf := make([]byte, 0, len(g.keyBytes)+len(timeBytes)+16+1)
	buf = append(buf, g.keyBytes...)
	buf = append(buf, timeBytes...)
	buf = append(buf, digest[:16]...)
	buf = append(buf, additionalRandomNumber)

	r := g.randByte()
	out := make([]byte, 1+len(buf))
	out[0] = r
	for i, b := range buf {
		out[i+1] = b ^ r
	}

	return strings.TrimRight(base64.StdEncoding.EncodeToString(out), "="), nil
}

// decodeSiteKey base64-decodes the meta content, tolerating stripped
// padding. Undecodable values fall back to the raw bytes so the
// pipeline still has key material to work with.
func decodeSiteKey(key string) []byte {
	if key == "" {
		return nil
	}
	padded := key
	if rem := len(padded) % 4; rem != 0 {
		padded += strings.Repeat("=", 4-rem)
	}
	decoded, err := base64.StdEncoding.DecodeString(padded)
	if err != nil {
		return []byte(key)
	}
	return decoded
}

func randomByte() byte {
	var b [1]byte
	rand.Read(b[:])
	return b[0]
}
