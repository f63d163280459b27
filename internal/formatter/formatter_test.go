package formatter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hferrand/canto-field-go/internal/canto"
	"github.com/hferrand/canto-field-go/internal/mock"
	"github.com/hferrand/canto-field-go/internal/model"
)

func testFormatter() *Formatter {
	cfg := canto.Config{Domain: "acme.canto.com", AppToken: "tok"}
	return New(cfg, &mock.ThumbnailProxy{})
}

func TestFormatFromSearch_InvalidInputs(t *testing.T) {
	f := testFormatter()

	tests := []struct {
		name string
		raw  string
	}{
		{"not an object", `"just a string"`},
		{"array", `[1,2,3]`},
		{"missing id", `{"name":"foo"}`},
		{"empty id", `{"id":"","name":"foo"}`},
		{"not json", `{{{`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.FormatFromSearch(json.RawMessage(tc.raw))
			if !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("err = %v, want ErrInvalidPayload", err)
			}
		})
	}
}

func TestFormatFromSearch_InvariantFieldsAlwaysPopulated(t *testing.T) {
	f := testFormatter()

	rec, err := f.FormatFromSearch(json.RawMessage(`{"id":"asset1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ID != "asset1" {
		t.Errorf("ID = %q, want %q", rec.ID, "asset1")
	}
	if rec.Scheme != model.SchemeImage {
		t.Errorf("Scheme = %q, want default image", rec.Scheme)
	}
	if rec.Name != Untitled {
		t.Errorf("Name = %q, want %q", rec.Name, Untitled)
	}
	if rec.Filename != "Untitled.jpg" {
		t.Errorf("Filename = %q, want %q", rec.Filename, "Untitled.jpg")
	}
	if rec.Thumbnail == "" {
		t.Error("Thumbnail must never be empty")
	}
	if rec.DownloadURL == "" {
		t.Error("DownloadURL must never be empty when a domain is configured")
	}
	// optional fields default to empty strings, never absent
	if rec.Dimensions != "" || rec.MimeType != "" || rec.Size != "" || rec.Uploaded != "" {
		t.Errorf("optional fields should be empty: %+v", rec)
	}
}

func TestFormatFromGetByID_UsesProvidedID(t *testing.T) {
	f := testFormatter()

	rec, err := f.FormatFromGetByID(json.RawMessage(`{"name":"Report.pdf","scheme":"document"}`), "doc42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "doc42" {
		t.Errorf("ID = %q, want %q", rec.ID, "doc42")
	}
	if rec.Scheme != model.SchemeDocument {
		t.Errorf("Scheme = %q, want document", rec.Scheme)
	}

	if _, err := f.FormatFromGetByID(json.RawMessage(`{"name":"x"}`), ""); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("err = %v, want ErrInvalidPayload when no id anywhere", err)
	}
}

func TestSchemeInference(t *testing.T) {
	f := testFormatter()

	tests := []struct {
		name string
		raw  string
		want model.Scheme
	}{
		{"explicit scheme", `{"id":"a","scheme":"video"}`, model.SchemeVideo},
		{"unknown explicit falls through", `{"id":"a","scheme":"presentation"}`, model.SchemeImage},
		{"video preview path", `{"id":"a","url":{"preview":"https://x/api/v1/video/a/preview"}}`, model.SchemeVideo},
		{"document preview path", `{"id":"a","url":{"preview":"https://x/api/v1/document/a/preview"}}`, model.SchemeDocument},
		{"video mime", `{"id":"a","default":{"Content Type":"video/mp4"}}`, model.SchemeVideo},
		{"application mime", `{"id":"a","default":{"Content Type":"application/pdf"}}`, model.SchemeDocument},
		{"text mime", `{"id":"a","default":{"Content Type":"text/markdown"}}`, model.SchemeDocument},
		{"image mime defaults", `{"id":"a","default":{"Content Type":"image/png"}}`, model.SchemeImage},
		{"nothing known", `{"id":"a"}`, model.SchemeImage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := f.FormatFromSearch(json.RawMessage(tc.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Scheme != tc.want {
				t.Errorf("Scheme = %q, want %q", rec.Scheme, tc.want)
			}
		})
	}
}

func TestFilenameDerivation(t *testing.T) {
	f := testFormatter()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"metadata key wins",
			`{"id":"a","name":"Pretty Title","default":{"Original File Name":"orig_photo.jpg"}}`,
			"orig_photo.jpg",
		},
		{
			"second metadata key",
			`{"id":"a","name":"Pretty Title","default":{"Filename":"from-filename.png"}}`,
			"from-filename.png",
		},
		{
			"name with plausible extension",
			`{"id":"a","name":"holiday.jpeg"}`,
			"holiday.jpeg",
		},
		{
			"name with implausible extension is synthesised",
			`{"id":"a","name":"archive.x123456","scheme":"document"}`,
			"archive_x123456.pdf",
		},
		{
			"synthesised from sanitized name",
			`{"id":"a","name":"Über Photo (v2)!","scheme":"image"}`,
			"_ber_Photo__v2__.jpg",
		},
		{
			"video default extension",
			`{"id":"a","name":"clip","scheme":"video"}`,
			"clip.mp4",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := f.FormatFromSearch(json.RawMessage(tc.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Filename != tc.want {
				t.Errorf("Filename = %q, want %q", rec.Filename, tc.want)
			}
		})
	}
}

func TestFilenameDerivation_Idempotent(t *testing.T) {
	f := testFormatter()
	raw := json.RawMessage(`{"id":"a","name":"Über Photo (v2)!","scheme":"image"}`)

	first, err := f.FormatFromSearch(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.FormatFromSearch(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Filename != second.Filename {
		t.Errorf("filename not stable: %q vs %q", first.Filename, second.Filename)
	}
}

func TestDownloadURLPriority(t *testing.T) {
	f := testFormatter()

	t.Run("direct original beats legacy download", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"a","url":{"download":"https://legacy/dl","directUrlOriginal":"https://direct/orig"}}`)
		rec, err := f.FormatFromSearch(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.DownloadURL != "https://direct/orig" {
			t.Errorf("DownloadURL = %q, want the direct original", rec.DownloadURL)
		}
	})

	t.Run("legacy download next", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"a","url":{"download":"https://legacy/dl"}}`)
		rec, _ := f.FormatFromSearch(raw)
		if rec.DownloadURL != "https://legacy/dl" {
			t.Errorf("DownloadURL = %q, want the legacy download", rec.DownloadURL)
		}
	})

	t.Run("constructed direct document URL", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"doc1","scheme":"document"}`)
		rec, _ := f.FormatFromSearch(raw)
		want := "https://acme.canto.com/direct/document/doc1/original"
		if rec.DownloadURL != want {
			t.Errorf("DownloadURL = %q, want %q", rec.DownloadURL, want)
		}
	})

	t.Run("constructed binary URL for non-documents", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"img1","scheme":"image"}`)
		rec, _ := f.FormatFromSearch(raw)
		want := "https://acme.canto.com/api_binary/v1/image/img1"
		if rec.DownloadURL != want {
			t.Errorf("DownloadURL = %q, want %q", rec.DownloadURL, want)
		}
	})

	t.Run("empty when domain unconfigured", func(t *testing.T) {
		unconfigured := New(canto.Config{}, &mock.ThumbnailProxy{})
		raw := json.RawMessage(`{"id":"img1","scheme":"image"}`)
		rec, _ := unconfigured.FormatFromSearch(raw)
		if rec.DownloadURL != "" {
			t.Errorf("DownloadURL = %q, want empty without a domain", rec.DownloadURL)
		}
	})
}

func TestThumbnailPriority(t *testing.T) {
	f := testFormatter()

	t.Run("direct preview wins", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"a","url":{"preview":"https://legacy/p","directUrlPreview":"https://direct/p"}}`)
		rec, _ := f.FormatFromSearch(raw)
		if rec.Thumbnail != "https://direct/p" {
			t.Errorf("Thumbnail = %q, want the direct preview", rec.Thumbnail)
		}
	})

	t.Run("legacy preview next", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"a","url":{"preview":"https://legacy/p"}}`)
		rec, _ := f.FormatFromSearch(raw)
		if rec.Thumbnail != "https://legacy/p" {
			t.Errorf("Thumbnail = %q, want the legacy preview", rec.Thumbnail)
		}
	})

	t.Run("proxy when no remote value", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"vid1","scheme":"video"}`)
		rec, _ := f.FormatFromSearch(raw)
		if rec.Thumbnail != "/thumbnail/video/vid1" {
			t.Errorf("Thumbnail = %q, want the proxy URL", rec.Thumbnail)
		}
	})

	t.Run("static default without a proxy", func(t *testing.T) {
		noProxy := New(canto.Config{Domain: "acme.canto.com", AppToken: "t"}, nil)
		raw := json.RawMessage(`{"id":"vid1","scheme":"video"}`)
		rec, _ := noProxy.FormatFromSearch(raw)
		if rec.Thumbnail != model.SchemeVideo.DefaultThumbnail() {
			t.Errorf("Thumbnail = %q, want the static default", rec.Thumbnail)
		}
	})
}

func TestHumanSize(t *testing.T) {
	f := testFormatter()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"numeric string", `{"id":"a","size":"2621440"}`, "2.6 MB"},
		{"numeric value", `{"id":"a","size":2621440}`, "2.6 MB"},
		{"small", `{"id":"a","size":"42"}`, "42 B"},
		{"zero yields empty", `{"id":"a","size":"0"}`, ""},
		{"non-numeric yields empty", `{"id":"a","size":"big"}`, ""},
		{"absent yields empty", `{"id":"a"}`, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := f.FormatFromSearch(json.RawMessage(tc.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Size != tc.want {
				t.Errorf("Size = %q, want %q", rec.Size, tc.want)
			}
		})
	}
}

func TestMetadataCarriedVerbatim(t *testing.T) {
	f := testFormatter()

	raw := json.RawMessage(`{
		"id":"a",
		"width":"800","height":"600",
		"default":{"Content Type":"image/png","Author":"J. Doe","Rating":5},
		"metadata":{"Copyright":"ACME"}
	}`)
	rec, err := f.FormatFromSearch(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Metadata["Author"] != "J. Doe" {
		t.Errorf("Author = %q", rec.Metadata["Author"])
	}
	if rec.Metadata["Rating"] != "5" {
		t.Errorf("Rating = %q, want stringified number", rec.Metadata["Rating"])
	}
	if rec.Metadata["Copyright"] != "ACME" {
		t.Errorf("Copyright = %q", rec.Metadata["Copyright"])
	}
	if rec.MimeType != "image/png" {
		t.Errorf("MimeType = %q", rec.MimeType)
	}
	if rec.Dimensions != "800 x 600" {
		t.Errorf("Dimensions = %q, want %q", rec.Dimensions, "800 x 600")
	}
}
