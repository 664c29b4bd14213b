package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Article is the text shown in the reader, kept as markdown.
type Article struct {
	Title    string
	Markdown string
	Source   string
}

// contentSelectors are tried in order to find the main article container.
var contentSelectors = []string{
	"article", "main", "[role='main']", ".content", ".post-content",
	".entry-content", ".article-content", ".post-body", ".story-content", ".main-content",
	"#content", "#main", "#mw-content-text", ".mw-parser-output",
}

// extractArticle turns an HTML document into a markdown article
func extractArticle(doc *goquery.Document) Article {
	doc.Find("script, style, meta, link, noscript, svg, iframe").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	mainContent := findMainContent(doc)
	mainContent.Find("nav, header, footer, aside, .sidebar, .ad, .advertisement, .navbar, .menu, .navigation, .comments, .social-share").
		Remove()

	var content strings.Builder
	mainContent.Find("h1, h2, h3, h4, h5, h6, p, blockquote, li").Each(func(i int, s *goquery.Selection) {
		text := collapseSpace(s.Text())
		if text == "" {
			return
		}

		tagName := goquery.NodeName(s)
		if title == "" && tagName == "h1" {
			title = text
		}

		switch tagName {
		case "h1":
			content.WriteString(fmt.Sprintf("# %s\n\n", text))
		case "h2":
			content.WriteString(fmt.Sprintf("## %s\n\n", text))
		case "h3":
			content.WriteString(fmt.Sprintf("### %s\n\n", text))
		case "h4", "h5", "h6":
			content.WriteString(fmt.Sprintf("#### %s\n\n", text))
		case "blockquote":
			content.WriteString(fmt.Sprintf("> %s\n\n", text))
		case "li":
			// Skip list items that only repeat a nested paragraph
			if s.Find("p").Length() > 0 || len(text) < 3 {
				return
			}
			content.WriteString(fmt.Sprintf("- %s\n", text))
		default: // paragraphs
			// Paragraphs inside quotes were already written with the quote
			if s.ParentsFiltered("blockquote").Length() > 0 {
				return
			}
			content.WriteString(fmt.Sprintf("%s\n\n", text))
		}
	})

	if title == "" {
		title = "Untitled"
	}

	return Article{
		Title:    title,
		Markdown: strings.TrimSpace(content.String()) + "\n",
	}
}

// findMainContent uses heuristics to locate the main article content
func findMainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if found := doc.Find(selector).First(); found.Length() > 0 {
			return found
		}
	}

	// Fallback: use text density analysis to find the best content
	return findBestContentByDensity(doc.Find("body"))
}

// findBestContentByDensity picks the container with the most words that is
// not dominated by links.
func findBestContentByDensity(sel *goquery.Selection) *goquery.Selection {
	bestScore := 0
	var bestElement *goquery.Selection

	sel.Find("div, section").Each(func(i int, s *goquery.Selection) {
		words := len(strings.Fields(s.Text()))
		linkCount := s.Find("a").Length()

		// Too short, or mostly links (likely navigation)
		if words < 20 || float64(linkCount)/float64(words) > 0.3 {
			return
		}

		paragraphs := s.Find("p").Length()
		score := words + paragraphs*25
		if score > bestScore {
			bestScore = score
			bestElement = s
		}
	})

	if bestElement != nil {
		return bestElement
	}

	// Final fallback: use the entire body
	return sel
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
