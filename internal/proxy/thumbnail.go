package proxy

import (
	"net/url"
	"strings"

	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// Thumbnail builds locally-routable URLs for the thumbnail proxy route,
// which streams the authenticated upstream preview of an asset.
type Thumbnail struct {
	basePath string
}

// compile-time check: *Thumbnail must satisfy port.ThumbnailProxy
var _ port.ThumbnailProxy = (*Thumbnail)(nil)

func NewThumbnail(basePath string) *Thumbnail {
	return &Thumbnail{basePath: strings.TrimSuffix(basePath, "/")}
}

func (t *Thumbnail) ThumbnailURL(scheme model.Scheme, id string) string {
	return t.basePath + "/" + string(scheme) + "/" + url.PathEscape(id)
}
