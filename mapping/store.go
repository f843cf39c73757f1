package mapping

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dachico/clausematch/lexicon"
)

const timeLayout = "2006-01-02 15:04:05"

// Mapping is one user-curated correspondence: a client clause name, its
// translation, and the full library clause name it should resolve to.
type Mapping struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
	Library string `json:"library"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
	Source  string `json:"source,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Store holds user mappings keyed by the lowercased English name.
// Mappings are curated through the CLI, persisted as JSON, and applied onto
// a Lexicon before matching starts.
type Store struct {
	mu       sync.RWMutex
	mappings map[string]*Mapping
	modified bool
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates an empty mapping store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		mappings: make(map[string]*Mapping),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type storeFile struct {
	Meta     map[string]any      `json:"_meta,omitempty"`
	Mappings map[string]*Mapping `json:"mappings"`
}

// Load reads mappings from the JSON file at path. A missing file is not an
// error; it just leaves the store empty.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("mapping file not found, starting empty", "path", path)
			return nil
		}
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, m := range file.Mappings {
		if m == nil {
			continue
		}
		if m.English == "" {
			m.English = key
		}
		if m.Source == "" {
			m.Source = "import"
		}
		s.mappings[strings.ToLower(key)] = m
	}
	s.modified = false
	s.logger.Info("mappings loaded", "count", len(s.mappings), "path", path)
	return nil
}

// Save writes all mappings to path, creating parent directories as needed.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := storeFile{
		Meta: map[string]any{
			"version": "1.0",
			"updated": time.Now().UTC().Format(timeLayout),
			"count":   len(s.mappings),
		},
		Mappings: s.mappings,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	s.modified = false
	s.logger.Info("mappings saved", "count", len(s.mappings), "path", path)
	return nil
}

// Add inserts or updates a mapping. Returns true when the mapping is new.
func (s *Store) Add(english, chinese, library, notes, source string) bool {
	key := strings.ToLower(strings.TrimSpace(english))
	now := time.Now().UTC().Format(timeLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.mappings[key]
	if !ok {
		if source == "" {
			source = "manual"
		}
		s.mappings[key] = &Mapping{
			English: strings.TrimSpace(english),
			Chinese: strings.TrimSpace(chinese),
			Library: strings.TrimSpace(library),
			Created: now,
			Updated: now,
			Source:  source,
			Notes:   notes,
		}
		s.modified = true
		return true
	}

	existing.Chinese = strings.TrimSpace(chinese)
	existing.Library = strings.TrimSpace(library)
	existing.Updated = now
	existing.Notes = notes
	if source != "" && source != "manual" {
		existing.Source = source
	}
	s.modified = true
	return false
}

// Delete removes a mapping by English name. Returns true when it existed.
func (s *Store) Delete(english string) bool {
	key := strings.ToLower(strings.TrimSpace(english))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mappings[key]; !ok {
		return false
	}
	delete(s.mappings, key)
	s.modified = true
	return true
}

// Get returns the mapping for an English name, or nil.
func (s *Store) Get(english string) *Mapping {
	key := strings.ToLower(strings.TrimSpace(english))

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mappings[key]
}

// All returns every mapping sorted by English name.
func (s *Store) All() []*Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Mapping, 0, len(s.mappings))
	for _, m := range s.mappings {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].English < out[j].English
	})
	return out
}

// Len returns the number of mappings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mappings)
}

// Modified reports whether there are unsaved changes.
func (s *Store) Modified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// ApplyTo merges the user mappings into a lexicon: English-to-Chinese pairs
// become vocabulary entries, and Chinese-to-library pairs become exact
// overrides so a translated title resolves straight to its curated record.
// Returns the number of vocabulary entries applied.
func (s *Store) ApplyTo(lex *lexicon.Lexicon) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, m := range s.mappings {
		if m.Chinese != "" {
			lex.AddVocabulary(m.English, m.Chinese)
			count++
		}
		if m.Library != "" && m.Chinese != "" {
			lex.AddExactOverride(m.Chinese, m.Library)
		}
	}
	s.logger.Info("user mappings applied to lexicon", "count", count)
	return count
}

// ExportName returns the library clause name a mapped title should export
// as: lookup by English name first, then by exact Chinese name, falling back
// to the original.
func (s *Store) ExportName(original string) string {
	if m := s.Get(original); m != nil && m.Library != "" {
		return m.Library
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.mappings {
		if m.Chinese == original && m.Library != "" {
			return m.Library
		}
	}
	return original
}
