// Package resolver is the identity-resolution pipeline: it turns an opaque
// stored field value into one canonical asset record. Resolution is a pure
// function of the reference and the cache contents; nothing persists across
// calls.
package resolver

import (
	"context"
	"errors"

	"github.com/hferrand/canto-field-go/internal/logger"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
	"github.com/hferrand/canto-field-go/internal/urlparse"
)

// ErrNotFound is the pipeline's only failure mode at its public boundary.
// Upstream failures collapse into it; their reasons are logged internally.
var ErrNotFound = errors.New("resolver: no asset matches the stored reference")

type Resolver struct {
	api  port.CantoAPI
	fmtr port.AssetFormatter
}

// compile-time check: *Resolver must satisfy port.Resolver
var _ port.Resolver = (*Resolver)(nil)

func New(api port.CantoAPI, fmtr port.AssetFormatter) *Resolver {
	return &Resolver{api: api, fmtr: fmtr}
}

func (r *Resolver) Resolve(ctx context.Context, ref string) (*model.AssetRecord, error) {
	c := Classify(ref)
	logger.Debugf(ctx, "resolving reference %q as %s", c.Value, c.Kind)

	switch c.Kind {
	case model.RefEmpty:
		return nil, ErrNotFound
	case model.RefTestToken:
		return r.fetch(ctx, c.ID, c.Scheme)
	case model.RefURL:
		if id, ok := urlparse.ExtractAssetID(c.Value); ok {
			return r.fetch(ctx, id, "")
		}
		return r.searchByDownloadURL(ctx, c.Value)
	case model.RefBareID:
		return r.fetch(ctx, c.Value, "")
	default:
		return r.searchByFilename(ctx, c.Value)
	}
}

// ResolveID fetches a known asset id directly. No classification runs, so
// ids carrying `_` or `-` never fall into the filename fallback.
func (r *Resolver) ResolveID(ctx context.Context, id string) (*model.AssetRecord, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return r.fetch(ctx, id, "")
}

func (r *Resolver) fetch(ctx context.Context, id string, scheme model.Scheme) (*model.AssetRecord, error) {
	raw, err := r.api.GetAsset(ctx, id, scheme)
	if err != nil {
		logger.Warnf(ctx, "asset #%s could not be fetched: %v", id, err)
		return nil, ErrNotFound
	}

	rec, err := r.fmtr.FormatFromGetByID(raw, id)
	if err != nil {
		logger.Warnf(ctx, "asset #%s payload rejected: %v", id, err)
		return nil, ErrNotFound
	}
	return rec, nil
}

// searchByDownloadURL handles URLs no pattern recognises: one cached full
// search, scanned for an exact download-URL match.
func (r *Resolver) searchByDownloadURL(ctx context.Context, rawURL string) (*model.AssetRecord, error) {
	res, err := r.api.Search(ctx, "", port.SearchOptions{Limit: port.MaxSearchLimit})
	if err != nil {
		logger.Warnf(ctx, "fallback search for %q failed: %v", rawURL, err)
		return nil, ErrNotFound
	}

	for _, item := range res.Results {
		rec, err := r.fmtr.FormatFromSearch(item)
		if err != nil {
			continue
		}
		if rec.DownloadURL == rawURL {
			return rec, nil
		}
	}

	logger.Debugf(ctx, "no asset matches download URL %q", rawURL)
	return nil, ErrNotFound
}

// searchByFilename resolves a legacy filename through one cached search and
// three match tiers: exact derived filename, exact display name, then the
// first result as a deliberate fuzzy fallback so near-matches (typos,
// suffixes, re-encodes) still resolve.
func (r *Resolver) searchByFilename(ctx context.Context, filename string) (*model.AssetRecord, error) {
	res, err := r.api.Search(ctx, filename, port.SearchOptions{})
	if err != nil {
		logger.Warnf(ctx, "filename search for %q failed: %v", filename, err)
		return nil, ErrNotFound
	}

	var records []*model.AssetRecord
	for _, item := range res.Results {
		rec, err := r.fmtr.FormatFromSearch(item)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		logger.Debugf(ctx, "filename search for %q returned nothing", filename)
		return nil, ErrNotFound
	}

	for _, rec := range records {
		if rec.Filename == filename {
			logger.Debugf(ctx, "filename %q matched asset #%s exactly", filename, rec.ID)
			return rec, nil
		}
	}
	for _, rec := range records {
		if rec.Name == filename {
			logger.Debugf(ctx, "filename %q matched asset #%s by name", filename, rec.ID)
			return rec, nil
		}
	}

	logger.Debugf(ctx, "filename %q fuzzily matched asset #%s (first of %d results)",
		filename, records[0].ID, len(records))
	return records[0], nil
}
