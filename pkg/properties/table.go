package properties

// TableEntry maps a literal token of one property to a fixed value
type TableEntry struct {
	Property string
	Token    string
	Value    Value
}

type tableKey struct {
	property string
	token    string
}

// Table resolves well-known literals without invoking a property's parser.
// A nil *Table is valid and empty.
type Table struct {
	entries map[tableKey]Value
}

// NewTable builds a table from entries. Later entries replace earlier ones
// with the same property and token.
func NewTable(entries ...TableEntry) *Table {
	t := &Table{entries: make(map[tableKey]Value, len(entries))}
	for _, e := range entries {
		t.entries[tableKey{e.Property, e.Token}] = e.Value
	}
	return t
}

// Lookup returns the value registered for a property's literal token.
// Tokens match exactly.
func (t *Table) Lookup(property, token string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.entries[tableKey{property, token}]
	if !ok {
		return Value{}, false
	}
	return v.withRaw(token), true
}

// Len returns the number of entries
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
