package models

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed labels/*.yaml
var labelFiles embed.FS

// Label kinds used as the first key of a LabelTable lookup.
const (
	LabelCategory         = "category"
	LabelType             = "type"
	LabelLanguage         = "language"
	LabelContentType      = "content_type"
	LabelQuestionCategory = "question_category"
	LabelQuestionStatus   = "question_status"
)

// LabelTable maps enum values to display labels for one locale. The set of
// valid enum values never depends on which table is loaded.
type LabelTable struct {
	Locale  Language                     `yaml:"locale"`
	entries map[string]map[string]string // kind -> value -> label
}

// UnmarshalYAML reads the locale key and treats every other top-level key as a kind.
func (t *LabelTable) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}
	t.entries = make(map[string]map[string]string, len(raw))
	for key, value := range raw {
		if key == "locale" {
			var locale string
			if err := value.Decode(&locale); err != nil {
				return fmt.Errorf("decode locale: %w", err)
			}
			t.Locale = Language(locale)
			continue
		}
		var labels map[string]string
		if err := value.Decode(&labels); err != nil {
			return fmt.Errorf("decode %s labels: %w", key, err)
		}
		t.entries[key] = labels
	}
	return nil
}

// Label returns the label for value, or value itself when the table has none.
func (t *LabelTable) Label(kind, value string) string {
	if t == nil {
		return value
	}
	if label, ok := t.entries[kind][value]; ok {
		return label
	}
	return value
}

// LabelRegistry holds one LabelTable per supported locale.
type LabelRegistry struct {
	tables map[Language]*LabelTable
}

// LoadLabels parses the embedded label tables.
func LoadLabels() (*LabelRegistry, error) {
	registry := &LabelRegistry{tables: make(map[Language]*LabelTable, len(Languages))}
	for _, lang := range Languages {
		data, err := labelFiles.ReadFile(fmt.Sprintf("labels/%s.yaml", lang))
		if err != nil {
			return nil, fmt.Errorf("read %s labels: %w", lang, err)
		}
		var table LabelTable
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s labels: %w", lang, err)
		}
		registry.tables[lang] = &table
	}
	return registry, nil
}

// For returns the table for lang, falling back to English.
func (r *LabelRegistry) For(lang Language) *LabelTable {
	if t, ok := r.tables[lang]; ok {
		return t
	}
	return r.tables[LanguageEnglish]
}
