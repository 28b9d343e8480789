// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"contenthub/internal/markdown"
	"contenthub/internal/seed/topics"
	"contenthub/internal/slug"
)

// Topic is a bundled seed payload: one category and its content items.
type Topic struct {
	Name     string
	Category CategorySpec
	Content  []ContentSpec
}

// manifest is the YAML shape of a topic file. Item bodies live in separate
// Markdown files next to the manifest.
type manifest struct {
	Name     string         `yaml:"name"`
	Category CategorySpec   `yaml:"category"`
	Content  []manifestItem `yaml:"content"`
}

type manifestItem struct {
	ContentSpec `yaml:",inline"`
	BodyFile    string `yaml:"body_file"`
}

// captionLength caps captions derived from an item body.
const captionLength = 160

var topicName = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Catalog holds the seed topics that can be triggered by name.
type Catalog struct {
	topics map[string]*Topic
}

// LoadCatalog reads every *.yaml manifest at the root of fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	c := &Catalog{topics: make(map[string]*Topic, len(files))}
	for _, file := range files {
		t, err := loadTopic(fsys, file)
		if err != nil {
			return nil, err
		}
		if _, dup := c.topics[t.Name]; dup {
			return nil, fmt.Errorf("topic %q defined twice (%s)", t.Name, file)
		}
		c.topics[t.Name] = t
	}
	return c, nil
}

// Bundled returns the catalog embedded in the binary.
func Bundled() (*Catalog, error) {
	return LoadCatalog(topics.FS)
}

func loadTopic(fsys fs.FS, file string) (*Topic, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read topic %s: %w", file, err)
	}

	var m manifest
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse topic %s: %w", file, err)
	}
	if m.Name == "" {
		m.Name = slug.Generate(m.Category.Name)
	}
	if !topicName.MatchString(m.Name) {
		return nil, fmt.Errorf("topic %s: name %q must be lowercase words joined by dashes", file, m.Name)
	}

	t := &Topic{Name: m.Name, Category: m.Category, Content: make([]ContentSpec, 0, len(m.Content))}
	for _, item := range m.Content {
		spec := item.ContentSpec
		if item.BodyFile != "" {
			body, err := fs.ReadFile(fsys, path.Clean(item.BodyFile))
			if err != nil {
				return nil, fmt.Errorf("topic %s: body of %q: %w", m.Name, spec.Title, err)
			}
			spec.Body = string(body)
		}
		if spec.Caption == "" && spec.Body != "" {
			spec.Caption = markdown.Summary(spec.Body, captionLength)
		}
		t.Content = append(t.Content, spec)
	}

	if err := Validate(t.Category, t.Content); err != nil {
		return nil, fmt.Errorf("topic %s: %w", m.Name, err)
	}
	return t, nil
}

// Lookup returns the named topic.
func (c *Catalog) Lookup(name string) (*Topic, bool) {
	t, ok := c.topics[name]
	return t, ok
}

// Names returns the topic names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.topics))
	for name := range c.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
