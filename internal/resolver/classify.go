package resolver

import (
	"regexp"
	"strings"

	"github.com/hferrand/canto-field-go/internal/model"
)

// MinBareIDLen is the length a separator-free token must exceed to be
// treated as a bare asset ID instead of a legacy filename. A tunable
// heuristic; the boundary is exercised explicitly in tests.
const MinBareIDLen = 10

// TestTokenPrefix introduces the fixture token form canto:<scheme>:<id>,
// used by imports that already know the asset identity and scheme.
const TestTokenPrefix = "canto:"

var (
	testTokenRE = regexp.MustCompile(`^canto:(image|video|document):([A-Za-z0-9_-]+)$`)
	bareIDRE    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Classification is the outcome of inspecting a stored reference before
// any resolution branch runs.
type Classification struct {
	Kind   model.RefKind
	Value  string       // trimmed original reference
	ID     string       // embedded id, test tokens only
	Scheme model.Scheme // embedded scheme, test tokens only
}

// Classify maps a stored reference onto the closed set of reference kinds.
// It is pure: no network, no cache.
func Classify(ref string) Classification {
	v := strings.TrimSpace(ref)
	c := Classification{Value: v}

	switch {
	case v == "":
		c.Kind = model.RefEmpty
	case strings.HasPrefix(v, TestTokenPrefix):
		m := testTokenRE.FindStringSubmatch(v)
		if m == nil {
			// Malformed token: fall back to the filename branch rather
			// than failing outright.
			c.Kind = model.RefFilename
			return c
		}
		c.Kind = model.RefTestToken
		c.Scheme = model.Scheme(m[1])
		c.ID = m[2]
	case strings.HasPrefix(v, "http://"), strings.HasPrefix(v, "https://"):
		c.Kind = model.RefURL
	case len(v) > MinBareIDLen && bareIDRE.MatchString(v):
		c.Kind = model.RefBareID
	default:
		c.Kind = model.RefFilename
	}
	return c
}
