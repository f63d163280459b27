package model

// Scheme is the media category the Canto API uses for its per-type endpoints.
type Scheme string

const (
	SchemeImage    Scheme = "image"
	SchemeVideo    Scheme = "video"
	SchemeDocument Scheme = "document"
)

// AllSchemes is the probe order used when an asset's scheme is unknown.
var AllSchemes = []Scheme{SchemeImage, SchemeVideo, SchemeDocument}

// ParseScheme returns the scheme matching s, or false when s is not one of
// the three known values.
func ParseScheme(s string) (Scheme, bool) {
	switch Scheme(s) {
	case SchemeImage, SchemeVideo, SchemeDocument:
		return Scheme(s), true
	}
	return "", false
}

// DefaultExtension returns the fallback file extension for a scheme, used
// when a filename has to be synthesised.
func (s Scheme) DefaultExtension() string {
	switch s {
	case SchemeImage:
		return "jpg"
	case SchemeVideo:
		return "mp4"
	case SchemeDocument:
		return "pdf"
	}
	return "bin"
}

// DefaultThumbnail returns the static placeholder image path for a scheme.
func (s Scheme) DefaultThumbnail() string {
	switch s {
	case SchemeVideo:
		return "/assets/defaults/video.png"
	case SchemeDocument:
		return "/assets/defaults/document.png"
	}
	return "/assets/defaults/image.png"
}

// AssetRecord is the canonical, fully-populated projection of a remote
// asset. ID, Scheme, Name, Filename, Thumbnail and DownloadURL are always
// non-empty; other fields are empty strings when unknown, never omitted, so
// the serialised shape stays stable.
type AssetRecord struct {
	ID          string            `json:"id"`
	Scheme      Scheme            `json:"scheme"`
	Name        string            `json:"name"`
	Filename    string            `json:"filename"`
	URL         string            `json:"url"`
	Thumbnail   string            `json:"thumbnail"`
	DownloadURL string            `json:"download_url"`
	Dimensions  string            `json:"dimensions"`
	MimeType    string            `json:"mime_type"`
	Size        string            `json:"size"`
	Uploaded    string            `json:"uploaded"`
	Metadata    map[string]string `json:"metadata"`
}

// TreeNode is one entry of the album/folder tree shown by the picker.
type TreeNode struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Scheme   string     `json:"scheme"`
	Size     int        `json:"size"`
	Children []TreeNode `json:"children,omitempty"`
}
