package wallhaven

import (
	"encoding/json"
	"fmt"
)

// ImageRecord is one search hit: the full resolution image and its thumbnail.
type ImageRecord struct {
	FullURL      string `json:"url"`
	ThumbnailURL string `json:"thumbnail"`
}

// Catalog is the ordered list of records from one search response.
type Catalog []ImageRecord

// ParseError reports a response that does not have the expected shape.
// Index is -1 when the problem is at the top level.
type ParseError struct {
	Index int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		if e.Err != nil {
			return fmt.Sprintf("wallhaven: malformed response: %v", e.Err)
		}
		return fmt.Sprintf("wallhaven: malformed response: missing or invalid %q", e.Field)
	}
	return fmt.Sprintf("wallhaven: malformed response: data[%d].%s missing or not a string", e.Index, e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }

// searchResponse is decoded loosely so that missing and mistyped fields can be
// told apart from an empty value.
type searchResponse struct {
	Data *[]json.RawMessage `json:"data"`
}

type searchImage struct {
	Path   *string `json:"path"`
	Thumbs *struct {
		Large *string `json:"large"`
	} `json:"thumbs"`
}

// ParseCatalog decodes a search response. Every element of data must carry a
// string path and a string thumbs.large; anything else is a *ParseError.
func ParseCatalog(text string) (Catalog, error) {
	var resp searchResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, &ParseError{Index: -1, Err: err}
	}
	if resp.Data == nil {
		return nil, &ParseError{Index: -1, Field: "data"}
	}

	catalog := make(Catalog, 0, len(*resp.Data))
	for i, raw := range *resp.Data {
		var img searchImage
		if err := json.Unmarshal(raw, &img); err != nil {
			return nil, &ParseError{Index: i, Field: fieldFromTypeError(err), Err: err}
		}
		if img.Path == nil {
			return nil, &ParseError{Index: i, Field: "path"}
		}
		if img.Thumbs == nil || img.Thumbs.Large == nil {
			return nil, &ParseError{Index: i, Field: "thumbs.large"}
		}
		catalog = append(catalog, ImageRecord{
			FullURL:      *img.Path,
			ThumbnailURL: *img.Thumbs.Large,
		})
	}
	return catalog, nil
}

func fieldFromTypeError(err error) string {
	if te, ok := err.(*json.UnmarshalTypeError); ok && te.Field != "" {
		return te.Field
	}
	return "element"
}
