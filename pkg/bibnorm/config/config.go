// Package config loads pipeline settings and stoplists from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bibnorm/pkg/bibnorm/clean"
	"github.com/cognicore/bibnorm/pkg/bibnorm/internalerr"
	"github.com/cognicore/bibnorm/pkg/bibnorm/stem"
)

// Pipeline is the on-disk pipeline configuration.
type Pipeline struct {
	Variant        string   `yaml:"variant"`
	MinTokenLength int      `yaml:"min_token_length"`
	DecodeEntities bool     `yaml:"decode_entities"`
	Stemming       bool     `yaml:"stemming"`
	StemLanguage   string   `yaml:"stem_language"`
	Stopwords      []string `yaml:"stopwords"`
}

// LoadPipeline loads and validates a pipeline configuration from a YAML
// file. Misconfiguration is reported immediately, never silently patched.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Pipeline
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse pipeline config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the variant name and, when stemming is enabled, the
// stem language against the supported set.
func (c *Pipeline) Validate() error {
	if c.Variant != "" {
		if _, err := ParseVariant(c.Variant); err != nil {
			return err
		}
	}
	if c.MinTokenLength < 0 {
		return fmt.Errorf("%w: negative min_token_length %d", internalerr.ErrInvalidConfig, c.MinTokenLength)
	}
	if c.Stemming && c.StemLanguage != "" {
		if _, err := stem.New(stem.Language(c.StemLanguage)); err != nil {
			return err
		}
	}
	return nil
}

// CleanVariant returns the configured pipeline variant, defaulting to
// Title when unset.
func (c *Pipeline) CleanVariant() clean.Variant {
	if c.Variant == "" {
		return clean.Title
	}
	v, _ := ParseVariant(c.Variant)
	return v
}

// Options converts the configuration into pipeline options.
func (c *Pipeline) Options() clean.Options {
	return clean.Options{
		MinTokenLength: c.MinTokenLength,
		DecodeEntities: c.DecodeEntities,
		Stemming:       c.Stemming,
		Stopwords:      c.Stopwords,
	}
}

// ParseVariant maps a variant name to its clean.Variant value.
func ParseVariant(name string) (clean.Variant, error) {
	switch name {
	case "text":
		return clean.Text, nil
	case "title":
		return clean.Title, nil
	case "author":
		return clean.Author, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q", internalerr.ErrInvalidConfig, name)
}

// Stoplist represents the stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist: %w", err)
	}

	return &sl, nil
}
