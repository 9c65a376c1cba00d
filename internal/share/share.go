// Package share packs a folder and its colors into a compact URL token
// and unpacks such tokens back into the local palette.
package share

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	lzstring "github.com/daku10/go-lz-string"
	"github.com/google/uuid"

	"github.com/lunit-heesungyang/palette-manager/internal/model"
)

const (
	// DataVersion is the version stamped into every shared payload
	DataVersion = "1.0.0"
	// URLParam is the query parameter carrying the token
	URLParam = "shared"
	// DefaultMaxURLLength keeps links usable in common browsers
	DefaultMaxURLLength = 2000
	// Source names this tool in shared metadata
	Source = "pal"

	// MaxTokenLength bounds what Decode accepts, and so how far a token can expand
	MaxTokenLength = 16 << 10
	// maxPayloadSize caps the decompressed JSON
	maxPayloadSize = 1 << 20

	// tokenAlphabet is the URI-safe alphabet of LZ-string tokens
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"
)

var (
	ErrTooLarge    = errors.New("shared data too large for a link")
	ErrInvalidData = errors.New("shared link is invalid or corrupted")
)

// Metadata summarizes a shared payload
type Metadata struct {
	TotalColors int    `json:"totalColors"`
	AppVersion  string `json:"appVersion,omitempty"`
	Source      string `json:"source,omitempty"`
}

// SharedFolder is the payload carried by a share link
type SharedFolder struct {
	Version  string         `json:"version"`
	Folder   model.Folder   `json:"folder"`
	Colors   []*model.Color `json:"colors"`
	SharedAt time.Time      `json:"sharedAt"`
	Metadata *Metadata      `json:"metadata"`
}

// Options controls which optional color fields are shared
type Options struct {
	IncludeDescriptions bool
	IncludeTags         bool
	IncludeUsage        bool
}

// DefaultOptions shares everything
func DefaultOptions() Options {
	return Options{IncludeDescriptions: true, IncludeTags: true, IncludeUsage: true}
}

// NewSharedFolder snapshots a folder. The folder gets a fresh ID so the
// receiver never collides with the sender's folder.
func NewSharedFolder(folder *model.Folder, colors []*model.Color, opts Options, appVersion string) *SharedFolder {
	shared := make([]*model.Color, 0, len(colors))
	for _, c := range colors {
		cp := *c
		cp.Tags = append([]string(nil), c.Tags...)
		if !opts.IncludeDescriptions {
			cp.Description = ""
			cp.DescriptionZh = ""
		}
		if !opts.IncludeTags {
			cp.Tags = nil
		}
		if !opts.IncludeUsage {
			cp.UsageCount = 0
		}
		shared = append(shared, &cp)
	}

	f := *folder
	f.ID = uuid.New().String()

	return &SharedFolder{
		Version:  DataVersion,
		Folder:   f,
		Colors:   shared,
		SharedAt: time.Now(),
		Metadata: &Metadata{
			TotalColors: len(colors),
			AppVersion:  appVersion,
			Source:      Source,
		},
	}
}

// Validate checks the fields a receiver depends on
func (sf *SharedFolder) Validate() error {
	switch {
	case sf.Version == "":
		return fmt.Errorf("%w: missing version", ErrInvalidData)
	case sf.Folder.ID == "" || sf.Folder.Name == "":
		return fmt.Errorf("%w: missing folder id or name", ErrInvalidData)
	case sf.Colors == nil:
		return fmt.Errorf("%w: missing colors", ErrInvalidData)
	case sf.SharedAt.IsZero():
		return fmt.Errorf("%w: missing share date", ErrInvalidData)
	case sf.Metadata == nil:
		return fmt.Errorf("%w: missing metadata", ErrInvalidData)
	}
	return nil
}

// Codec builds share links against a base URL
type Codec struct {
	BaseURL      string
	MaxURLLength int
}

// NewCodec returns a codec; a non-positive maxLen selects DefaultMaxURLLength
func NewCodec(baseURL string, maxLen int) *Codec {
	if maxLen <= 0 {
		maxLen = DefaultMaxURLLength
	}
	return &Codec{BaseURL: baseURL, MaxURLLength: maxLen}
}

// Encode compresses the payload into a URL-safe token with LZ-string,
// the same encoding web clients use for shared links.
func (c *Codec) Encode(sf *SharedFolder) (string, error) {
	raw, err := json.Marshal(sf)
	if err != nil {
		return "", fmt.Errorf("marshaling shared folder: %w", err)
	}

	token, err := lzstring.CompressToEncodedURIComponent(string(raw))
	if err != nil {
		return "", fmt.Errorf("compressing shared folder: %w", err)
	}
	if len(token) > MaxTokenLength {
		return "", fmt.Errorf("%w: token of %d > %d characters", ErrTooLarge, len(token), MaxTokenLength)
	}
	if n := len(BuildURL(c.BaseURL, token)); n > c.MaxURLLength {
		return "", fmt.Errorf("%w: %d > %d characters", ErrTooLarge, n, c.MaxURLLength)
	}
	return token, nil
}

// URL encodes the payload and returns the full share link
func (c *Codec) URL(sf *SharedFolder) (string, error) {
	token, err := c.Encode(sf)
	if err != nil {
		return "", err
	}
	return BuildURL(c.BaseURL, token), nil
}

// BuildURL sets the share parameter on base, keeping any existing query
func BuildURL(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?" + URLParam + "=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set(URLParam, token)
	u.RawQuery = q.Encode()
	return u.String()
}

// Decode reverses Encode and validates the result
func Decode(token string) (*SharedFolder, error) {
	// Query decoding turns '+' into ' '
	token = strings.ReplaceAll(strings.TrimSpace(token), " ", "+")
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidData)
	}
	if len(token) > MaxTokenLength {
		return nil, fmt.Errorf("%w: token longer than %d characters", ErrInvalidData, MaxTokenLength)
	}
	if i := strings.IndexFunc(token, func(r rune) bool { return !strings.ContainsRune(tokenAlphabet, r) }); i >= 0 {
		return nil, fmt.Errorf("%w: unexpected character at %d", ErrInvalidData, i)
	}

	raw, err := decompress(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: nothing to decompress", ErrInvalidData)
	}
	if len(raw) > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload larger than %d bytes", ErrInvalidData, maxPayloadSize)
	}

	var sf SharedFolder
	if err := json.Unmarshal([]byte(raw), &sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	for _, c := range sf.Colors {
		if c != nil {
			c.Derive()
		}
	}
	return &sf, nil
}

// decompress turns a panic on a malformed stream into an error
func decompress(token string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed token: %v", r)
		}
	}()
	return lzstring.DecompressFromEncodedURIComponent(token)
}

// FromURL accepts a full share link or a bare token
func FromURL(raw string) (*SharedFolder, error) {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil {
		if token := u.Query().Get(URLParam); token != "" {
			raw = token
		}
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: empty link", ErrInvalidData)
	}
	return Decode(raw)
}

// IsExpired reports whether more than hours have passed since sharing.
// Non-positive hours never expire.
func (sf *SharedFolder) IsExpired(hours float64) bool {
	return sf.expiredAt(hours, time.Now())
}

func (sf *SharedFolder) expiredAt(hours float64, now time.Time) bool {
	if hours <= 0 {
		return false
	}
	deadline := sf.SharedAt.Add(time.Duration(hours * float64(time.Hour)))
	return now.After(deadline)
}

// Info is a display summary of a shared payload
type Info struct {
	FolderName string
	ColorCount int
	SharedDate string
	DataSize   string
}

// Size is the uncompressed JSON size in bytes
func (sf *SharedFolder) Size() int {
	raw, err := json.Marshal(sf)
	if err != nil {
		return 0
	}
	return len(raw)
}

// Info summarizes the payload for display
func (sf *SharedFolder) Info() Info {
	count := len(sf.Colors)
	if sf.Metadata != nil {
		count = sf.Metadata.TotalColors
	}
	return Info{
		FolderName: sf.Folder.Name,
		ColorCount: count,
		SharedDate: sf.SharedAt.Local().Format("2006-01-02"),
		DataSize:   fmt.Sprintf("%.1f KB", float64(sf.Size())/1024),
	}
}
