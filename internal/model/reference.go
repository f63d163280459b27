package model

// RefKind classifies a stored field value before any resolution branch
// runs. The stored string is overloaded (URL, bare ID, filename, fixture
// token, empty), so classification is an explicit step with a closed set of
// outcomes rather than ad-hoc checks scattered through the pipeline.
type RefKind int

const (
	RefEmpty RefKind = iota
	// RefTestToken is the canto:<scheme>:<id> form used by fixtures and
	// imports that already know the asset identity.
	RefTestToken
	// RefURL is any http(s) value; whether an ID can be extracted from it
	// is decided by the URL pattern resolver, not by classification.
	RefURL
	// RefBareID is an opaque alphanumeric token long enough to be an
	// upstream asset ID.
	RefBareID
	// RefFilename is the catch-all: anything else is treated as a legacy
	// filename and resolved through the tiered search fallback.
	RefFilename
)

func (k RefKind) String() string {
	switch k {
	case RefEmpty:
		return "empty"
	case RefTestToken:
		return "test-token"
	case RefURL:
		return "url"
	case RefBareID:
		return "bare-id"
	case RefFilename:
		return "filename"
	}
	return "unknown"
}
