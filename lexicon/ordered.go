package lexicon

// Entry is one source-term to canonical-term pair.
type Entry struct {
	Key   string
	Value string
}

// orderedMap is a string map with deterministic insertion-order iteration.
// Substring-containment lookups walk entries in order and first match wins,
// so plain Go maps (randomized iteration) cannot back these tables.
type orderedMap struct {
	entries []Entry
	index   map[string]int
}

func newOrderedMap() *orderedMap {
	return &orderedMap{index: make(map[string]int)}
}

func orderedFromPairs(pairs []Entry) *orderedMap {
	m := newOrderedMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set inserts a new entry or updates an existing one in place.
// Updates keep the original position.
func (m *orderedMap) Set(key, value string) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

func (m *orderedMap) Get(key string) (string, bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

func (m *orderedMap) Len() int {
	return len(m.entries)
}

// Entries returns the backing slice; callers must not mutate it.
func (m *orderedMap) Entries() []Entry {
	return m.entries
}

func (m *orderedMap) clone() *orderedMap {
	c := newOrderedMap()
	for _, e := range m.entries {
		c.Set(e.Key, e.Value)
	}
	return c
}

// GroupEntry is one canonical keyword with its surface variants.
type GroupEntry struct {
	Key      string
	Variants []string
}

// orderedGroups is the insertion-ordered analog for keyword groups.
type orderedGroups struct {
	entries []GroupEntry
	index   map[string]int
}

func newOrderedGroups() *orderedGroups {
	return &orderedGroups{index: make(map[string]int)}
}

func groupsFromPairs(pairs []GroupEntry) *orderedGroups {
	g := newOrderedGroups()
	for _, p := range pairs {
		g.Set(p.Key, p.Variants)
	}
	return g
}

func (g *orderedGroups) Set(key string, variants []string) {
	vs := append([]string(nil), variants...)
	if i, ok := g.index[key]; ok {
		g.entries[i].Variants = vs
		return
	}
	g.index[key] = len(g.entries)
	g.entries = append(g.entries, GroupEntry{Key: key, Variants: vs})
}

func (g *orderedGroups) Len() int {
	return len(g.entries)
}

func (g *orderedGroups) Entries() []GroupEntry {
	return g.entries
}

func (g *orderedGroups) clone() *orderedGroups {
	c := newOrderedGroups()
	for _, e := range g.entries {
		c.Set(e.Key, e.Variants)
	}
	return c
}

// appendUnique merges add into base, keeping base order and dropping
// duplicates from add.
func appendUnique(base, add []string) []string {
	seen := make(map[string]struct{}, len(base)+len(add))
	out := make([]string, 0, len(base)+len(add))
	for _, s := range base {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range add {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
