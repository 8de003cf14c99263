package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pennyhq/website/internal/locale"
)

// Document base names. Each is resolved against the source with a .json
// extension first, then .yaml and .yml, so a content directory may keep its
// translations in either format.
const (
	docTranslations = "translations"
	docFeatures     = "features"
	docReviews      = "reviews"
)

var docExtensions = []string{".json", ".yaml", ".yml"}

// ErrDocumentNotFound is returned by a Source when a named document does not
// exist in any supported format.
var ErrDocumentNotFound = errors.New("content: document not found")

// maxDocumentSize bounds a single content document read.
const maxDocumentSize = 4 << 20

// Source fetches raw content documents by file name.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FSSource reads documents from an fs.FS, typically the embedded content
// directory or a local override directory.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a Source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Fetch reads one document from the filesystem.
func (s *FSSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("content: reading %q: %w", name, err)
	}
	return data, nil
}

// HTTPSource fetches documents from a remote base URL. There are no retries
// and no timeout beyond the request context; a failed fetch stays failed until
// the next reload.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource creates a Source rooted at baseURL. A nil client uses
// http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{base: strings.TrimRight(baseURL, "/"), client: client}
}

// Fetch performs one GET for the named document.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := s.base + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("content: building request for %q: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content: fetching %q: %w", name, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content: fetching %q: unexpected status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("content: reading %q: %w", name, err)
	}
	return data, nil
}

// fetchDocument resolves a base name against the source, trying each known
// extension, and decodes the first hit into v.
func fetchDocument(ctx context.Context, src Source, base string, v any) error {
	var lastErr error

	for _, ext := range docExtensions {
		name := base + ext

		data, err := src.Fetch(ctx, name)
		if err != nil {
			lastErr = err
			if errors.Is(err, ErrDocumentNotFound) {
				continue
			}
			return err
		}

		if err := decodeDocument(name, data, v); err != nil {
			return err
		}
		return nil
	}

	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("%w: %q", ErrDocumentNotFound, base)
}

// fetchLocaleTranslations reads the optional per-locale translation files
// (translations/<code>.json, .yaml, or .yml), one possible file per supported
// locale. Missing files are skipped; the returned trees are keyed by locale
// code. An editor can keep each language in its own file instead of, or on
// top of, the combined document.
func fetchLocaleTranslations(ctx context.Context, src Source) (map[string]map[string]any, error) {
	trees := make(map[string]map[string]any)
	var errs []error

	for _, l := range locale.Supported() {
		code := string(l)

		var tree map[string]any
		err := fetchDocument(ctx, src, docTranslations+"/"+code, &tree)
		if err != nil {
			if errors.Is(err, ErrDocumentNotFound) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		trees[code] = tree
	}

	return trees, errors.Join(errs...)
}

// decodeDocument unmarshals by extension: YAML for .yaml/.yml, JSON otherwise.
func decodeDocument(name string, data []byte, v any) error {
	ext := strings.ToLower(path.Ext(name))

	var err error
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("content: parsing %q: %w", name, err)
	}
	return nil
}
