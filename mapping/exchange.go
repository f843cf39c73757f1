package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dachico/clausematch/core"
)

// ImportJSON reads mappings from path and merges them into the store.
// Three layouts are accepted:
//
//   - the native {"_meta": ..., "mappings": {...}} file,
//   - a flat object of english-to-chinese (or english-to-mapping) pairs,
//   - an array of mapping objects.
//
// Returns the number of mappings imported.
func (s *Store) ImportJSON(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err == nil && file.Mappings != nil {
		count := 0
		for _, m := range file.Mappings {
			if m == nil || m.English == "" {
				continue
			}
			s.Add(m.English, m.Chinese, m.Library, m.Notes, "import")
			count++
		}
		return count, nil
	}

	var wrapped struct {
		Mappings []Mapping `json:"mappings"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Mappings) > 0 {
		count := 0
		for _, m := range wrapped.Mappings {
			if m.English == "" {
				continue
			}
			s.Add(m.English, m.Chinese, m.Library, m.Notes, "import")
			count++
		}
		return count, nil
	}

	var list []Mapping
	if err := json.Unmarshal(data, &list); err == nil {
		count := 0
		for _, m := range list {
			if m.English == "" {
				continue
			}
			s.Add(m.English, m.Chinese, m.Library, m.Notes, "import")
			count++
		}
		return count, nil
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrUnsupportedFormat, err)
	}
	count := 0
	for english, raw := range flat {
		if len(english) > 0 && english[0] == '_' {
			continue
		}
		var chinese string
		if err := json.Unmarshal(raw, &chinese); err == nil {
			s.Add(english, chinese, "", "", "import")
			count++
			continue
		}
		var m Mapping
		if err := json.Unmarshal(raw, &m); err == nil {
			s.Add(english, m.Chinese, m.Library, m.Notes, "import")
			count++
		}
	}
	return count, nil
}

// ExportJSON writes all mappings to path as an array of mapping objects,
// suitable for sharing between installations.
func (s *Store) ExportJSON(path string) error {
	all := s.All()

	out := struct {
		Exported string     `json:"exported"`
		Count    int        `json:"count"`
		Mappings []*Mapping `json:"mappings"`
	}{
		Exported: time.Now().UTC().Format(timeLayout),
		Count:    len(all),
		Mappings: all,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
