// Package categories defines the coarse work-type taxonomy used for
// category filtering. The taxonomy is data, not code: a built-in default
// ships with the binary and operators can override it with their own YAML
// file.
package categories

import (
	"fmt"
	"os"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/hardhatlabs/hardhat/internal/common"
)

//go:embed taxonomy.yaml
var defaultTaxonomy []byte

// Category is one selectable work type. Token is the substring matched
// against a permit's type label and description.
type Category struct {
	Name  string `yaml:"name"`
	Token string `yaml:"token"`
}

// Taxonomy is an ordered list of selectable categories.
type Taxonomy struct {
	Categories []Category `yaml:"categories"`
}

// Default returns the built-in taxonomy.
func Default() Taxonomy {
	t, err := parse(defaultTaxonomy)
	if err != nil {
		// The embedded file is validated by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
}

// LoadFile reads a taxonomy override from the given path. An empty path
// yields the default taxonomy.
func LoadFile(path string) (Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("%w: failed to parse taxonomy: %v", common.ErrInvalidConfig, err)
	}

	for i, c := range t.Categories {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Token) == "" {
			return Taxonomy{}, fmt.Errorf("%w: taxonomy entry %d needs both name and token", common.ErrInvalidConfig, i)
		}
	}
	return t, nil
}

// Tokens returns the selectable match tokens in taxonomy order, with the
// no-filter sentinel first. This is the cycle order in the browse view.
func (t Taxonomy) Tokens() []string {
	tokens := make([]string, 0, len(t.Categories)+1)
	tokens = append(tokens, "All")
	for _, c := range t.Categories {
		tokens = append(tokens, c.Token)
	}
	return tokens
}

// NameFor returns the display name for a match token, falling back to the
// token itself for ad-hoc selections.
func (t Taxonomy) NameFor(token string) string {
	if token == "" || strings.EqualFold(token, "All") {
		return "All"
	}
	for _, c := range t.Categories {
		if strings.EqualFold(c.Token, token) {
			return c.Name
		}
	}
	return token
}
