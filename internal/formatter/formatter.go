// Package formatter normalizes the heterogeneous upstream payload shapes
// (search-result items and get-by-id bodies) into one canonical asset
// record. Missing fields are inferred through prioritized fallback chains;
// direct-access URLs always win over authenticated legacy ones, because
// they spare the consumer a later authentication hop.
package formatter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hferrand/canto-field-go/internal/canto"
	"github.com/hferrand/canto-field-go/internal/logger"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// ErrInvalidPayload marks input that is not a structured object or lacks a
// non-empty id. No record is produced for it.
var ErrInvalidPayload = errors.New("formatter: payload is not a usable asset object")

// Untitled is the display name used when the source omits one.
const Untitled = "Untitled"

// filenameKeys are the metadata fields inspected for an original filename,
// in priority order.
var filenameKeys = []string{"Original File Name", "Filename", "File Name", "Name"}

var (
	extensionRE = regexp.MustCompile(`\.[A-Za-z0-9]{2,5}$`)
	sanitizeRE  = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

type Formatter struct {
	cfg   canto.Config
	proxy port.ThumbnailProxy
}

// compile-time check: *Formatter must satisfy port.AssetFormatter
var _ port.AssetFormatter = (*Formatter)(nil)

func New(cfg canto.Config, proxy port.ThumbnailProxy) *Formatter {
	return &Formatter{cfg: cfg, proxy: proxy}
}

// rawAsset is the union of the two upstream payload shapes. Both funnel
// through it so formatting converges on one code path.
type rawAsset struct {
	ID       string            `json:"id"`
	Scheme   string            `json:"scheme"`
	Name     string            `json:"name"`
	Size     json.RawMessage   `json:"size"`
	Time     string            `json:"time"`
	Width    json.RawMessage   `json:"width"`
	Height   json.RawMessage   `json:"height"`
	URL      map[string]string `json:"url"`
	Default  map[string]any    `json:"default"`
	Metadata map[string]any    `json:"metadata"`
}

func (f *Formatter) FormatFromSearch(raw json.RawMessage) (*model.AssetRecord, error) {
	a, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if a.ID == "" {
		logger.Debug(context.Background(), "rejecting search item without id")
		return nil, ErrInvalidPayload
	}
	return f.format(a), nil
}

func (f *Formatter) FormatFromGetByID(raw json.RawMessage, id string) (*model.AssetRecord, error) {
	a, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if a.ID == "" {
		a.ID = id
	}
	if a.ID == "" {
		logger.Debug(context.Background(), "rejecting get-by-id payload without id")
		return nil, ErrInvalidPayload
	}
	return f.format(a), nil
}

func decode(raw json.RawMessage) (*rawAsset, error) {
	var a rawAsset
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &a, nil
}

func (f *Formatter) format(a *rawAsset) *model.AssetRecord {
	meta := flattenMetadata(a)
	scheme := inferScheme(a, meta)

	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = Untitled
	}

	rec := &model.AssetRecord{
		ID:          a.ID,
		Scheme:      scheme,
		Name:        name,
		Filename:    deriveFilename(name, scheme, meta),
		URL:         firstNonEmpty(a, previewURLChain),
		Thumbnail:   f.thumbnail(a, scheme),
		DownloadURL: f.downloadURL(a, scheme),
		Dimensions:  dimensions(a),
		MimeType:    mimeType(meta),
		Size:        humanSize(a.Size),
		Uploaded:    uploaded(a, meta),
		Metadata:    meta,
	}
	return rec
}

// --- extractor chains (first non-empty wins) ---

type extractor func(*rawAsset) string

func urlField(key string) extractor {
	return func(a *rawAsset) string { return a.URL[key] }
}

// previewURLChain feeds the record's best-effort preview URL; the detail
// page is kept ahead of direct links because the picker embeds it as-is.
var previewURLChain = []extractor{
	urlField("preview"),
	urlField("detail"),
	urlField("directUrlPreview"),
}

// thumbnailChain holds the remote tiers only; the proxy and the static
// default are appended per-call because they need scheme and id.
var thumbnailChain = []extractor{
	urlField("directUrlPreview"),
	urlField("preview"),
}

var downloadChain = []extractor{
	urlField("directUrlOriginal"),
	urlField("download"),
}

func firstNonEmpty(a *rawAsset, chain []extractor) string {
	for _, fn := range chain {
		if v := fn(a); v != "" {
			return v
		}
	}
	return ""
}

func (f *Formatter) thumbnail(a *rawAsset, scheme model.Scheme) string {
	if v := firstNonEmpty(a, thumbnailChain); v != "" {
		return v
	}
	if f.proxy != nil {
		if v := f.proxy.ThumbnailURL(scheme, a.ID); v != "" {
			return v
		}
	}
	return scheme.DefaultThumbnail()
}

func (f *Formatter) downloadURL(a *rawAsset, scheme model.Scheme) string {
	if v := firstNonEmpty(a, downloadChain); v != "" {
		return v
	}
	if f.cfg.Domain == "" {
		return ""
	}
	if scheme == model.SchemeDocument {
		return f.cfg.BaseURL() + "/direct/document/" + a.ID + "/original"
	}
	return f.cfg.BaseURL() + "/api_binary/v1/" + string(scheme) + "/" + a.ID
}

// --- field inference ---

func inferScheme(a *rawAsset, meta map[string]string) model.Scheme {
	if s, ok := model.ParseScheme(a.Scheme); ok {
		return s
	}

	preview := a.URL["preview"]
	if strings.Contains(preview, "/video/") {
		return model.SchemeVideo
	}
	if strings.Contains(preview, "/document/") {
		return model.SchemeDocument
	}

	mime := mimeType(meta)
	switch {
	case strings.HasPrefix(mime, "video/"):
		return model.SchemeVideo
	case strings.HasPrefix(mime, "application/"), strings.HasPrefix(mime, "text/"):
		return model.SchemeDocument
	}

	return model.SchemeImage
}

// deriveFilename never returns an empty string: a metadata filename wins,
// then a name that already carries a plausible extension, then a
// synthesised sanitized name with the scheme's default extension.
func deriveFilename(name string, scheme model.Scheme, meta map[string]string) string {
	for _, key := range filenameKeys {
		if v := strings.TrimSpace(meta[key]); v != "" {
			return v
		}
	}
	if extensionRE.MatchString(name) {
		return name
	}
	return sanitizeRE.ReplaceAllString(name, "_") + "." + scheme.DefaultExtension()
}

func dimensions(a *rawAsset) string {
	w := rawString(a.Width)
	h := rawString(a.Height)
	if w == "" || h == "" || w == "0" || h == "0" {
		return ""
	}
	return w + " x " + h
}

func mimeType(meta map[string]string) string {
	if v := meta["Content Type"]; v != "" {
		return v
	}
	return meta["MIME Type"]
}

func uploaded(a *rawAsset, meta map[string]string) string {
	if a.Time != "" {
		return a.Time
	}
	return meta["Date modified"]
}

// humanSize renders a numeric byte count as a human-readable string.
// Non-numeric or absent sizes yield an empty string, never "0 B".
func humanSize(raw json.RawMessage) string {
	s := rawString(raw)
	if s == "" {
		return ""
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return ""
	}
	return humanize.Bytes(n)
}

// flattenMetadata carries every raw upstream descriptive field verbatim,
// preferring the "default" map and backfilling from "metadata".
func flattenMetadata(a *rawAsset) map[string]string {
	meta := make(map[string]string, len(a.Default)+len(a.Metadata))
	for k, v := range a.Metadata {
		if s := anyToString(v); s != "" {
			meta[k] = s
		}
	}
	for k, v := range a.Default {
		if s := anyToString(v); s != "" {
			meta[k] = s
		}
	}
	return meta
}

func anyToString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// rawString normalizes a JSON scalar that upstream serialises sometimes as
// a string and sometimes as a number.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
