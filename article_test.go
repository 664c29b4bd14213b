package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/articleparams/internal/apperr"
)

func TestLoadArticleBuiltin(t *testing.T) {
	t.Parallel()

	for _, source := range []string{"", builtinSource, "  builtin  "} {
		article, err := loadArticle(context.Background(), nil, source)
		require.NoError(t, err)
		assert.Equal(t, "Reading in the Terminal", article.Title)
		assert.Equal(t, builtinSource, article.Source)
		assert.NotEmpty(t, article.Markdown)
	}
}

func TestLoadArticleMarkdownFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("intro\n\n# Field notes\n\ntext\n"), 0o600))

	article, err := loadArticle(context.Background(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "Field notes", article.Title)
	assert.Equal(t, path, article.Source)
	assert.Contains(t, article.Markdown, "text")
}

func TestLoadArticleHTMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.HTML")
	require.NoError(t, os.WriteFile(path, []byte(`<html><head><title>Saved page</title></head><body><article><p>Saved text.</p></article></body></html>`), 0o600))

	article, err := loadArticle(context.Background(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "Saved page", article.Title)
	assert.Equal(t, "Saved text.\n", article.Markdown)
}

func TestLoadArticleMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.md")

	_, err := loadArticle(context.Background(), nil, path)
	var sourceErr *apperr.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, path, sourceErr.Source)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFetchArticle(t *testing.T) {
	t.Parallel()

	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Remote</title></head><body><main><h2>Part</h2><p>Remote text.</p></main></body></html>`))
	}))
	t.Cleanup(server.Close)

	article, err := loadArticle(context.Background(), server.Client(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Remote", article.Title)
	assert.Equal(t, server.URL, article.Source)
	assert.Equal(t, "## Part\n\nRemote text.\n", article.Markdown)
	assert.Contains(t, userAgent, "Mozilla/5.0")
}

func TestFetchArticleBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	_, err := loadArticle(context.Background(), server.Client(), server.URL)
	var sourceErr *apperr.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Contains(t, err.Error(), "404")
}

func TestFetchArticleCanceledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loadArticle(ctx, server.Client(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMarkdownArticleWithoutHeading(t *testing.T) {
	t.Parallel()

	article := markdownArticle("just text\n## not a title\n", "x")
	assert.Equal(t, "Untitled", article.Title)
}
