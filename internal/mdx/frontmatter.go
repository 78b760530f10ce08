package mdx

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoFrontMatter is returned when a document does not start with a
	// front-matter block.
	ErrNoFrontMatter = errors.New("document has no front matter")
	// ErrUnterminatedFrontMatter is returned when the closing delimiter is
	// missing.
	ErrUnterminatedFrontMatter = errors.New("front matter is not terminated")
	// ErrMissingField is returned when a required front-matter key is empty.
	ErrMissingField = errors.New("missing required front matter field")
	// ErrInvalidDate is returned when publishedAt is not a YYYY-MM-DD date.
	ErrInvalidDate = errors.New("publishedAt is not a valid YYYY-MM-DD date")
)

const delimiter = "---"

// publishedAt stays an ISO YYYY-MM-DD string so lexicographic and
// chronological order agree.
const dateLayout = "2006-01-02"

// FrontMatter holds the recognized metadata keys of a post file.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Summary     string `yaml:"summary"`
	PublishedAt string `yaml:"publishedAt"`
	Tag         string `yaml:"tag"`
	Image       string `yaml:"image"`
}

// Document is a parsed MDX file: validated front matter plus the opaque body.
type Document struct {
	FrontMatter FrontMatter
	Body        string
}

// PublishedDate returns the parsed publication date.
func (d Document) PublishedDate() time.Time {
	t, _ := time.Parse(dateLayout, d.FrontMatter.PublishedAt)
	return t
}

// Parse splits source into front matter and body and validates the required
// keys. Validation fails loudly so a broken post never renders with blank
// fields.
func Parse(source string) (*Document, error) {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	if !strings.HasPrefix(normalized, delimiter+"\n") {
		return nil, ErrNoFrontMatter
	}

	rest := normalized[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return nil, ErrUnterminatedFrontMatter
	}

	head := rest[:end]
	body := rest[end+len(delimiter)+1:]
	if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}

	fm.Title = strings.TrimSpace(fm.Title)
	fm.Summary = strings.TrimSpace(fm.Summary)
	fm.PublishedAt = strings.TrimSpace(fm.PublishedAt)
	fm.Tag = strings.TrimSpace(fm.Tag)
	fm.Image = strings.TrimSpace(fm.Image)

	if fm.Title == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if fm.Summary == "" {
		return nil, fmt.Errorf("%w: summary", ErrMissingField)
	}
	if fm.PublishedAt == "" {
		return nil, fmt.Errorf("%w: publishedAt", ErrMissingField)
	}
	if _, err := time.Parse(dateLayout, fm.PublishedAt); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, fm.PublishedAt)
	}

	return &Document{FrontMatter: fm, Body: body}, nil
}

// ParseFile reads and parses a single MDX file, wrapping errors with the
// file name.
func ParseFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc, nil
}
