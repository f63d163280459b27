package port

import (
	"encoding/json"

	"github.com/hferrand/canto-field-go/internal/model"
)

// AssetFormatter normalizes the two upstream payload shapes into one
// canonical record. Inputs that are not structured objects or that lack a
// non-empty id are rejected.
type AssetFormatter interface {
	FormatFromSearch(raw json.RawMessage) (*model.AssetRecord, error)
	FormatFromGetByID(raw json.RawMessage, id string) (*model.AssetRecord, error)
}

// ThumbnailProxy builds a locally-routable URL that streams the
// authenticated upstream preview of an asset, used whenever no
// direct-access thumbnail exists.
type ThumbnailProxy interface {
	ThumbnailURL(scheme model.Scheme, id string) string
}
