// Package catalog holds the government scheme dataset the resolver matches
// utterances against. A default national dataset is embedded; a YAML file
// on disk replaces it and can be reloaded while the process runs.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"krishimitra/internal/logging"
	"krishimitra/internal/types"
)

//go:embed schemes.yaml
var defaultSchemes []byte

// ErrInvalidCatalog is returned when a catalog document fails validation.
var ErrInvalidCatalog = errors.New("invalid scheme catalog")

type document struct {
	Schemes []types.SchemeRecord `yaml:"schemes"`
}

// Catalog is a concurrency-safe, reloadable scheme dataset.
type Catalog struct {
	mu      sync.RWMutex
	path    string
	schemes []types.SchemeRecord
	index   map[string]int
}

// Default returns a catalog backed by the embedded national dataset.
func Default() *Catalog {
	schemes, err := Parse(defaultSchemes)
	if err != nil {
		panic(fmt.Sprintf("embedded scheme catalog: %v", err))
	}
	c := &Catalog{}
	c.swap(schemes)
	return c
}

// New builds an in-memory catalog from records.
func New(schemes []types.SchemeRecord) (*Catalog, error) {
	if err := validate(schemes); err != nil {
		return nil, err
	}
	c := &Catalog{}
	c.swap(cloneRecords(schemes))
	return c, nil
}

// Load reads a catalog from path. An empty path yields the embedded dataset.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) ([]types.SchemeRecord, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for i := range doc.Schemes {
		s := &doc.Schemes[i]
		s.ID = strings.TrimSpace(s.ID)
		s.Title = strings.TrimSpace(s.Title)
		s.Description = strings.TrimSpace(s.Description)
	}
	if err := validate(doc.Schemes); err != nil {
		return nil, err
	}
	return doc.Schemes, nil
}

func validate(schemes []types.SchemeRecord) error {
	if len(schemes) == 0 {
		return fmt.Errorf("%w: no schemes", ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(schemes))
	for i, s := range schemes {
		if s.ID == "" {
			return fmt.Errorf("%w: scheme %d has no id", ErrInvalidCatalog, i)
		}
		if s.Title == "" {
			return fmt.Errorf("%w: scheme %q has no title", ErrInvalidCatalog, s.ID)
		}
		key := foldKey(s.ID)
		if seen[key] {
			return fmt.Errorf("%w: duplicate scheme id %q", ErrInvalidCatalog, s.ID)
		}
		seen[key] = true
	}
	return nil
}

// Reload re-reads the backing file. On failure the current dataset is kept.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		err = fmt.Errorf("failed to read scheme catalog: %w", err)
		logging.Audit().CatalogReload(c.path, c.Len(), err)
		return err
	}
	schemes, err := Parse(data)
	if err != nil {
		logging.Get(logging.CategoryCatalog).Warn("Keeping previous catalog, %s is invalid: %v", c.path, err)
		logging.Audit().CatalogReload(c.path, c.Len(), err)
		return err
	}
	c.swap(schemes)
	logging.Catalog("Loaded %d schemes from %s", len(schemes), c.path)
	logging.Audit().CatalogReload(c.path, len(schemes), nil)
	return nil
}

func (c *Catalog) swap(schemes []types.SchemeRecord) {
	index := make(map[string]int, len(schemes)*3)
	for i, s := range schemes {
		for _, key := range append([]string{s.ID, s.Title}, s.Aliases...) {
			k := foldKey(key)
			if k == "" {
				continue
			}
			if _, taken := index[k]; !taken {
				index[k] = i
			}
		}
	}

	c.mu.Lock()
	c.schemes = schemes
	c.index = index
	c.mu.Unlock()
}

// Lookup finds a scheme by id, title or alias, ignoring case and spacing.
func (c *Catalog) Lookup(text string) (types.SchemeRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[foldKey(text)]
	if !ok {
		return types.SchemeRecord{}, false
	}
	return cloneRecord(c.schemes[i]), true
}

// All returns every scheme in catalog order.
func (c *Catalog) All() []types.SchemeRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneRecords(c.schemes)
}

// Categories returns the distinct scheme categories, sorted.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.schemes {
		if s.Category != "" && !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of schemes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.schemes)
}

// Path returns the backing file, or "" for an in-memory catalog.
func (c *Catalog) Path() string {
	return c.path
}

func foldKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func cloneRecord(s types.SchemeRecord) types.SchemeRecord {
	if s.Aliases != nil {
		s.Aliases = append([]string(nil), s.Aliases...)
	}
	return s
}

func cloneRecords(in []types.SchemeRecord) []types.SchemeRecord {
	out := make([]types.SchemeRecord, len(in))
	for i, s := range in {
		out[i] = cloneRecord(s)
	}
	return out
}
