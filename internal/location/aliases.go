package location

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/catchpool/internal/domain"
)

// AliasRule maps a place name, optionally narrowed to a tile rectangle, to an
// extra location name.
type AliasRule struct {
	Place string    `yaml:"place"`
	Alias string    `yaml:"alias"`
	Area  *AreaRule `yaml:"area,omitempty"`
}

// AreaRule is a half-open tile rectangle.
type AreaRule struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (a *AreaRule) contains(t domain.Tile) bool {
	if a == nil {
		return true
	}
	return t.X >= a.X && t.X < a.X+a.Width && t.Y >= a.Y && t.Y < a.Y+a.Height
}

type aliasFile struct {
	Version string      `yaml:"version"`
	Schema  string      `yaml:"schema"`
	Aliases []AliasRule `yaml:"aliases"`
}

// FileAliasProvider serves alias rules read from a YAML file. Rules are
// evaluated in file order and the first match wins.
type FileAliasProvider struct {
	mu    sync.RWMutex
	path  string
	rules map[string][]AliasRule
}

// NewFileAliasProvider loads the rules at path. A missing file yields a
// provider with no rules.
func NewFileAliasProvider(path string) (*FileAliasProvider, error) {
	p := &FileAliasProvider{path: path, rules: make(map[string][]AliasRule)}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// ExtraAliasFor implements AliasProvider.
func (p *FileAliasProvider) ExtraAliasFor(place Place, tile domain.Tile) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, rule := range p.rules[place.Name()] {
		if rule.Area.contains(tile) {
			return rule.Alias, true
		}
	}
	return "", false
}

// Len returns the number of loaded rules.
func (p *FileAliasProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, rules := range p.rules {
		n += len(rules)
	}
	return n
}

// Reload re-reads the alias file.
func (p *FileAliasProvider) Reload() error {
	if p.path == "" {
		return nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf(ErrMsgFailedToParseConfig+": %w", p.path, err)
	}
	if file.Version == "" {
		return fmt.Errorf(ErrMsgMissingVersionField, p.path)
	}
	if file.Schema != SchemaLocationAliases {
		return fmt.Errorf(ErrMsgInvalidSchema, p.path, SchemaLocationAliases, file.Schema)
	}

	rules := make(map[string][]AliasRule, len(file.Aliases))
	for _, rule := range file.Aliases {
		rule.Place = strings.TrimSpace(rule.Place)
		rule.Alias = strings.TrimSpace(rule.Alias)
		if rule.Place == "" || rule.Alias == "" {
			continue
		}
		rules[rule.Place] = append(rules[rule.Place], rule)
	}

	p.mu.Lock()
	p.rules = rules
	p.mu.Unlock()
	return nil
}
