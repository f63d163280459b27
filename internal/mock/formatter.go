package mock

import (
	"encoding/json"

	"github.com/hferrand/canto-field-go/internal/model"
)

// AssetFormatter implements formatting behaviour for tests. When Records
// is set, FormatFromSearch pops records off it in order; otherwise both
// methods decode the raw payload as a ready-made record.
type AssetFormatter struct {
	Records []*model.AssetRecord

	SearchErr  error
	GetByIDErr error

	SearchCalled  bool
	GetByIDCalled bool
	GetByIDArg    string
}

func (f *AssetFormatter) FormatFromSearch(raw json.RawMessage) (*model.AssetRecord, error) {
	f.SearchCalled = true
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}
	if len(f.Records) > 0 {
		rec := f.Records[0]
		f.Records = f.Records[1:]
		return rec, nil
	}
	return decodeRecord(raw)
}

func (f *AssetFormatter) FormatFromGetByID(raw json.RawMessage, id string) (*model.AssetRecord, error) {
	f.GetByIDCalled = true
	f.GetByIDArg = id
	if f.GetByIDErr != nil {
		return nil, f.GetByIDErr
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		return nil, err
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return rec, nil
}

func decodeRecord(raw json.RawMessage) (*model.AssetRecord, error) {
	var rec model.AssetRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
