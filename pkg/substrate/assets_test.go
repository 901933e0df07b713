package substrate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFetcher_FetchContent(t *testing.T) {
	t.Run("downloads textual content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# Brand Guidelines\n\nTone: direct."))
		}))
		defer server.Close()

		fetcher := NewAssetFetcher()
		content, err := fetcher.FetchContent(context.Background(), ReferenceAsset{
			ID:        "asset-1",
			Filename:  "guidelines.md",
			MimeType:  "text/markdown",
			SignedURL: server.URL + "/signed/guidelines.md",
		})
		require.NoError(t, err)
		assert.Equal(t, "# Brand Guidelines\n\nTone: direct.", content)
	})

	t.Run("skips binary assets with a placeholder", func(t *testing.T) {
		fetcher := NewAssetFetcher()
		content, err := fetcher.FetchContent(context.Background(), ReferenceAsset{
			ID:        "asset-2",
			Filename:  "logo.png",
			MimeType:  "image/png",
			SignedURL: "https://storage.example.com/never-called",
		})
		require.NoError(t, err)
		assert.Contains(t, content, "logo.png")
		assert.Contains(t, content, "omitted")
	})

	t.Run("expired signed URL returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := NewAssetFetcher()
		_, err := fetcher.FetchContent(context.Background(), ReferenceAsset{
			ID:        "asset-3",
			MimeType:  "text/plain",
			SignedURL: server.URL + "/expired",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("missing signed URL returns error", func(t *testing.T) {
		fetcher := NewAssetFetcher()
		_, err := fetcher.FetchContent(context.Background(), ReferenceAsset{ID: "asset-4", MimeType: "text/plain"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no signed URL")
	})
}
