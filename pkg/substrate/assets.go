package substrate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxAssetBytes bounds how much of a reference asset is pulled into an agent
// prompt. Signed storage URLs can point at arbitrarily large uploads.
const maxAssetBytes = 2 << 20

// AssetFetcher downloads reference asset content through its signed URL.
// Signed URLs point at the storage host, not the substrate API, so fetches
// skip the API circuit breaker and carry no bearer token.
type AssetFetcher struct {
	httpClient *http.Client
}

// NewAssetFetcher creates an HTTP client for asset downloads.
func NewAssetFetcher() *AssetFetcher {
	return &AssetFetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchContent downloads the asset body as text. Binary assets (images,
// archives) are skipped with a placeholder so prompts stay textual.
func (f *AssetFetcher) FetchContent(ctx context.Context, asset ReferenceAsset) (string, error) {
	if asset.SignedURL == "" {
		return "", fmt.Errorf("asset %s has no signed URL", asset.ID)
	}
	if !isTextualMIME(asset.MimeType) {
		return fmt.Sprintf("[binary asset %q (%s) omitted]", asset.Filename, asset.MimeType), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.SignedURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch asset %s: %w", asset.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("storage returned HTTP %d for asset %s", resp.StatusCode, asset.ID)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return "", fmt.Errorf("read asset body: %w", err)
	}
	return string(body), nil
}

func isTextualMIME(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch mimeType {
	case "application/json", "application/xml", "application/x-yaml",
		"application/yaml", "application/csv", "application/markdown", "":
		return true
	}
	return false
}
