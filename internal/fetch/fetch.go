// Package fetch retrieves a web page and extracts its readable text as
// markdown-shaped plain text the analyzers can score.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Extractor fetches pages over a pooled HTTP client.
type Extractor struct {
	client *http.Client
}

// New creates an extractor with connection pooling and a request timeout.
func New() *Extractor {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Extractor{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// ExtractText fetches the URL and renders its main content as text with
// markdown heading, list and link markers so downstream structure checks
// still apply.
func (e *Extractor) ExtractText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}

	// Some sites block requests without a user agent
	req.Header.Set("User-Agent", "ContentAudit/1.0")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", url, err)
	}

	return renderText(doc), nil
}

// renderText walks the document body and emits text with structural markers.
// Non-content elements are dropped first.
func renderText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	var b strings.Builder

	doc.Find("h1, h2, h3, p, li, blockquote").Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		if text == "" {
			return
		}

		switch goquery.NodeName(s) {
		case "h1":
			b.WriteString("# " + text + "\n\n")
		case "h2":
			b.WriteString("## " + text + "\n\n")
		case "h3":
			b.WriteString("### " + text + "\n\n")
		case "li":
			b.WriteString("- " + text + "\n")
		default:
			b.WriteString(renderLinks(s, text) + "\n\n")
		}
	})

	return strings.TrimSpace(b.String())
}

// renderLinks rewrites the anchors inside a paragraph as markdown links so
// the linking checks can count them.
func renderLinks(s *goquery.Selection, text string) string {
	s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		anchor := normalizeSpace(a.Text())
		if anchor == "" || href == "" {
			return
		}
		text = strings.Replace(text, anchor, fmt.Sprintf("[%s](%s)", anchor, href), 1)
	})
	return text
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
