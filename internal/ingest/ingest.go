// Package ingest turns local document files into plain text for
// analysis. Markdown and plain text pass through unchanged; HTML gets
// its visible text extracted.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ReadDocument reads path and returns its analyzable text content
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := VisibleText(string(data))
		if err != nil {
			return "", fmt.Errorf("parse html: %w", err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}

// VisibleText extracts the rendered text of an HTML document, skipping
// script, style, noscript, and iframe subtrees.
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		// Block elements separate paragraphs in the extracted text
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "br":
				buf.WriteString("\n\n")
			}
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}
