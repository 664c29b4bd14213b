package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zam-dot/articleparams/internal/apperr"
)

//go:embed article.md
var builtinArticle string

const builtinSource = "builtin"

// loadArticle reads the article from source: empty for the built-in article,
// an http(s) URL, or a local markdown or HTML file.
func loadArticle(ctx context.Context, client *http.Client, source string) (Article, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "" || source == builtinSource:
		return markdownArticle(builtinArticle, builtinSource), nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetchArticle(ctx, client, source)
	default:
		return readArticleFile(source)
	}
}

// fetchArticle downloads an HTML page and extracts its readable content
func fetchArticle(ctx context.Context, client *http.Client, url string) (Article, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Article{}, apperr.NewSourceError(url, err)
	}

	// Set realistic browser headers to avoid bot detection
	req.Header.Set(
		"User-Agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return Article{}, apperr.NewSourceError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Article{}, apperr.NewSourceError(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Article{}, apperr.NewSourceError(url, err)
	}

	article := extractArticle(doc)
	article.Source = url
	return article, nil
}

func readArticleFile(path string) (Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return Article{}, apperr.NewSourceError(path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return Article{}, apperr.NewSourceError(path, err)
		}
		article := extractArticle(doc)
		article.Source = path
		return article, nil
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return Article{}, apperr.NewSourceError(path, err)
		}
		return markdownArticle(string(data), path), nil
	}
}

// markdownArticle takes the title from the first level-one heading.
func markdownArticle(markdown, source string) Article {
	title := "Untitled"
	for _, line := range strings.Split(markdown, "\n") {
		if heading, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			title = strings.TrimSpace(heading)
			break
		}
	}
	return Article{Title: title, Markdown: markdown, Source: source}
}
