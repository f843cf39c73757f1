package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileConfig mirrors the on-disk JSON schema. Map-valued sections are kept
// as raw messages so their key order can be recovered; encoding/json maps
// would randomize it and break first-match lookup determinism.
type fileConfig struct {
	Thresholds        *Thresholds     `json:"thresholds"`
	ClientEnCnMap     json.RawMessage `json:"client_en_cn_map"`
	SemanticAliasMap  json.RawMessage `json:"semantic_alias_map"`
	KeywordExtractMap json.RawMessage `json:"keyword_extract_map"`
	ExactClauseMap    json.RawMessage `json:"exact_clause_map"`
	PenaltyKeywords   []string        `json:"penalty_keywords"`
	NoiseWords        []string        `json:"noise_words"`
}

type fileMeta struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	LastUpdated string `json:"last_updated"`
}

// Load creates a Lexicon from the built-in defaults overlaid with the JSON
// configuration at path. A missing file means defaults only; a malformed
// file is logged at warn level and also falls back to defaults. Load never
// fails, so a broken config can degrade matching quality but not stop a run.
func Load(path string, opts ...Option) *Lexicon {
	l := New(opts...)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Info("lexicon config not found, using defaults", "path", path)
		} else {
			l.logger.Warn("lexicon config unreadable, using defaults", "path", path, "err", err)
		}
		return l
	}

	if err := l.merge(data); err != nil {
		l.logger.Warn("lexicon config malformed, using defaults", "path", path, "err", err)
		return New(opts...)
	}

	l.logger.Info("lexicon config loaded", "path", path)
	return l
}

// merge overlays external config onto the current tables. Dictionary entries
// update in place or append; penalty and noise lists are unioned.
func (l *Lexicon) merge(data []byte) error {
	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}

	vocab, err := parseOrderedStrings(cfg.ClientEnCnMap)
	if err != nil {
		return fmt.Errorf("client_en_cn_map: %w", err)
	}
	aliases, err := parseOrderedStrings(cfg.SemanticAliasMap)
	if err != nil {
		return fmt.Errorf("semantic_alias_map: %w", err)
	}
	overrides, err := parseOrderedStrings(cfg.ExactClauseMap)
	if err != nil {
		return fmt.Errorf("exact_clause_map: %w", err)
	}
	groups, err := parseOrderedGroups(cfg.KeywordExtractMap)
	if err != nil {
		return fmt.Errorf("keyword_extract_map: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cfg.Thresholds != nil {
		l.thresholds = mergeThresholds(l.thresholds, *cfg.Thresholds)
	}
	for _, e := range vocab {
		l.vocabulary.Set(e.Key, e.Value)
	}
	for _, e := range aliases {
		l.aliases.Set(e.Key, e.Value)
	}
	for _, e := range overrides {
		l.overrides.Set(e.Key, e.Value)
	}
	for _, g := range groups {
		l.keywords.Set(g.Key, g.Variants)
	}
	l.penalties = appendUnique(l.penalties, cfg.PenaltyKeywords)
	l.noise = appendUnique(l.noise, cfg.NoiseWords)

	return nil
}

// mergeThresholds overlays non-zero external cutoffs on the current ones.
func mergeThresholds(base, ext Thresholds) Thresholds {
	if ext.ExactMin > 0 {
		base.ExactMin = ext.ExactMin
	}
	if ext.SemanticMin > 0 {
		base.SemanticMin = ext.SemanticMin
	}
	if ext.KeywordMin > 0 {
		base.KeywordMin = ext.KeywordMin
	}
	if ext.FuzzyMin > 0 {
		base.FuzzyMin = ext.FuzzyMin
	}
	if ext.AcceptMin > 0 {
		base.AcceptMin = ext.AcceptMin
	}
	return base
}

// parseOrderedStrings decodes a JSON object into entries preserving key
// order. Keys starting with "_" are comments and skipped.
func parseOrderedStrings(raw json.RawMessage) ([]Entry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))

	if err := expectObjectStart(dec); err != nil {
		return nil, err
	}

	var out []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if strings.HasPrefix(key, "_") {
			continue
		}
		out = append(out, Entry{Key: key, Value: value})
	}
	return out, nil
}

// parseOrderedGroups is parseOrderedStrings for string-list values.
func parseOrderedGroups(raw json.RawMessage) ([]GroupEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))

	if err := expectObjectStart(dec); err != nil {
		return nil, err
	}

	var out []GroupEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)

		var variants []string
		if err := dec.Decode(&variants); err != nil {
			return nil, err
		}
		if strings.HasPrefix(key, "_") {
			continue
		}
		out = append(out, GroupEntry{Key: key, Variants: variants})
	}
	return out, nil
}

func expectObjectStart(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotAnObject
	}
	return nil
}

// Save writes the full merged state back to path in the external schema so
// that runtime additions round-trip through a reload without loss. Key order
// is the live insertion order.
func (l *Lexicon) Save(path string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var buf bytes.Buffer
	buf.WriteString("{\n")

	meta := fileMeta{
		Version:     "1.0",
		Description: "clause matching lexicon",
		LastUpdated: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}
	if err := writeSection(&buf, "_meta", meta, false); err != nil {
		return err
	}
	if err := writeSection(&buf, "thresholds", l.thresholds, false); err != nil {
		return err
	}
	writeOrderedStrings(&buf, "client_en_cn_map", l.vocabulary.Entries())
	writeOrderedStrings(&buf, "semantic_alias_map", l.aliases.Entries())
	writeOrderedGroups(&buf, "keyword_extract_map", l.keywords.Entries())
	writeOrderedStrings(&buf, "exact_clause_map", l.overrides.Entries())
	if err := writeSection(&buf, "penalty_keywords", l.penalties, false); err != nil {
		return err
	}
	if err := writeSection(&buf, "noise_words", l.noise, true); err != nil {
		return err
	}
	buf.WriteString("}\n")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeSection(buf *bytes.Buffer, key string, value any, last bool) error {
	data, err := json.MarshalIndent(value, "  ", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "  %q: %s", key, data)
	if !last {
		buf.WriteString(",")
	}
	buf.WriteString("\n")
	return nil
}

func writeOrderedStrings(buf *bytes.Buffer, key string, entries []Entry) {
	fmt.Fprintf(buf, "  %q: {", key)
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		k, _ := json.Marshal(e.Key)
		v, _ := json.Marshal(e.Value)
		fmt.Fprintf(buf, "\n    %s: %s", k, v)
	}
	if len(entries) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("},\n")
}

func writeOrderedGroups(buf *bytes.Buffer, key string, entries []GroupEntry) {
	fmt.Fprintf(buf, "  %q: {", key)
	for i, g := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		k, _ := json.Marshal(g.Key)
		v, _ := json.Marshal(g.Variants)
		fmt.Fprintf(buf, "\n    %s: %s", k, v)
	}
	if len(entries) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("},\n")
}
