package ccompiler

// SymbolKind classifies what a SymbolEntry names.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
	SymbolParameter
	SymbolStructType
)

// SymbolEntry is one declared name: a variable, parameter, function, or
// (dormant, see types.go) struct type.
type SymbolEntry struct {
	Name        string
	Type        *TypeInfo
	Kind        SymbolKind
	Initialized bool
	ParamCount  int         // Function only
	ParamTypes  []*TypeInfo // Function only
}

// Scope is one frame of the lexically nested symbol table: the global
// scope, a function body, a compound statement, or a for-header. Entries
// are keyed by name; the teacher's owning-singly-linked-list shape collapses
// naturally into a map here since nothing walks a scope's entries in
// declaration order.
type Scope struct {
	parent  *Scope
	entries map[string]*SymbolEntry
}

// NewScope creates a child scope of parent (nil for the global scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, entries: map[string]*SymbolEntry{}}
}

// Declare adds entry to s, failing if s already has an entry with that name
// (redeclaration in the same scope is always an error, regardless of what
// outer scopes hold).
func (s *Scope) Declare(entry *SymbolEntry) bool {
	if _, exists := s.entries[entry.Name]; exists {
		return false
	}
	s.entries[entry.Name] = entry
	return true
}

// Lookup walks from s upward through parent scopes, returning the first
// match.
func (s *Scope) Lookup(name string) (*SymbolEntry, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if e, ok := sc.entries[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// Names returns the names declared directly in s, for debug dumps (-v).
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.entries))
	for n := range s.entries {
		names = append(names, n)
	}
	return names
}
