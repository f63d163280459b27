// Package field is the boundary the host form-field framework calls into:
// rendering a stored value, normalizing user input for storage, and
// projecting a stored value into the host's return formats.
package field

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/hferrand/canto-field-go/internal/canto"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// MaxStoredLen caps the persisted reference string.
const MaxStoredLen = 2000

// ReturnFormat selects the projection FormatForOutput produces.
type ReturnFormat string

const (
	ReturnObject ReturnFormat = "object"
	ReturnID     ReturnFormat = "id"
	ReturnURL    ReturnFormat = "url"
)

type Field struct {
	res port.Resolver
	cfg canto.Config
}

func New(res port.Resolver, cfg canto.Config) *Field {
	return &Field{res: res, cfg: cfg}
}

// RenderField resolves the stored value into a displayable record.
// canto.ErrNotConfigured is returned before any resolution is attempted so
// the host can show a persistent configuration message instead of the
// per-item not-found placeholder.
func (f *Field) RenderField(ctx context.Context, stored string) (*model.AssetRecord, error) {
	if !f.cfg.IsConfigured() {
		return nil, canto.ErrNotConfigured
	}
	return f.res.Resolve(ctx, stored)
}

// FormatForStorage normalizes user input into the persisted reference:
// trimmed, re-serialised when it parses as an absolute URL, and truncated
// to MaxStoredLen.
func (f *Field) FormatForStorage(input string) string {
	s := strings.TrimSpace(input)
	if u, err := url.ParseRequestURI(s); err == nil && u.Host != "" {
		s = u.String()
	}
	if len(s) > MaxStoredLen {
		// cut on a rune boundary so the stored value stays valid UTF-8
		cut := MaxStoredLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// FormatForOutput resolves the stored value and projects it per format:
// the full record, the bare id, or the download URL. An unknown format
// falls back to the full record.
func (f *Field) FormatForOutput(ctx context.Context, stored string, format ReturnFormat) (any, error) {
	rec, err := f.res.Resolve(ctx, stored)
	if err != nil {
		return nil, err
	}

	switch format {
	case ReturnID:
		return rec.ID, nil
	case ReturnURL:
		return rec.DownloadURL, nil
	default:
		return rec, nil
	}
}
