// ABOUTME: Embedded reference topics (markup grammar, buffer validity) rendered with glamour
// ABOUTME: Each topic is Markdown with YAML frontmatter naming its title and topic key

package explain

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"
)

//go:embed docs/*.md
var docsFS embed.FS

const frontmatterDelimiter = "---"

// ErrUnknownTopic is returned by Lookup for a topic that is not embedded.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is one reference page.
type Topic struct {
	Key   string `yaml:"topic"`
	Title string `yaml:"title"`
	Body  string `yaml:"-"`
}

// Topics returns every embedded topic sorted by key.
func Topics() ([]Topic, error) {
	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		return nil, fmt.Errorf("reading embedded docs: %w", err)
	}

	topics := make([]Topic, 0, len(entries))
	for _, e := range entries {
		data, err := docsFS.ReadFile("docs/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		t, err := parseTopic(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		topics = append(topics, t)
	}
	slices.SortFunc(topics, func(a, b Topic) int { return strings.Compare(a.Key, b.Key) })
	return topics, nil
}

// Lookup returns the topic with the given key.
func Lookup(key string) (Topic, error) {
	topics, err := Topics()
	if err != nil {
		return Topic{}, err
	}
	for _, t := range topics {
		if t.Key == key {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w %q", ErrUnknownTopic, key)
}

// parseTopic splits YAML frontmatter from the Markdown body.
func parseTopic(content string) (Topic, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return Topic{}, errors.New("missing frontmatter")
	}
	front, body, ok := strings.Cut(normalized[len(frontmatterDelimiter)+1:], "\n"+frontmatterDelimiter+"\n")
	if !ok {
		return Topic{}, errors.New("unterminated frontmatter: missing closing ---")
	}

	var t Topic
	if err := yaml.Unmarshal([]byte(front), &t); err != nil {
		return Topic{}, fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	if t.Key == "" {
		return Topic{}, errors.New("frontmatter has no topic key")
	}
	t.Body = body
	return t, nil
}

// Render returns the topic body styled for a terminal of the given width.
// plain skips styling, e.g. when stdout is not a terminal.
func Render(t Topic, width int, plain bool) (string, error) {
	if plain {
		return t.Body, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(t.Body)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", t.Key, err)
	}
	return strings.TrimRight(out, "\n ") + "\n", nil
}
