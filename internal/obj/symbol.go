package obj

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol scope bits.
const (
	ScopeNone     = 0
	ScopeLocal    = 1 // function local
	ScopeFileLoc  = 2
	ScopePublic   = 4
	ScopeWeak     = 8
	ScopeCommunal = 0x10
	ScopeExternal = 0x20
	ScopeWritten  = 0x100 // label has been written to the output
)

// Symbol is one entry in the symbol table. Type reuses the operand-type
// taxonomy from the opcode tables; 0 means unknown.
type Symbol struct {
	Section  int32
	Offset   uint32
	Size     uint32
	Type     uint32
	Scope    uint32
	Name     string
	DLLName  string
	OldIndex uint32
}

// SymbolTable is the address-sorted, uniquely-named symbol collection.
// Callers refer to symbols by their own sparse "old" indices; the table
// keeps a dense translation to internal indices that is rebuilt on every
// mutation that can shift positions.
type SymbolTable struct {
	list     []Symbol
	oldToNew []int32 // old index -> internal index, -1 = unknown
	nextOld  uint32  // next old index to hand out from New
	unnamed  uint32  // counter for synthesized names

	// NamesChanged counts symbol names rewritten during sanitization.
	NamesChanged int

	// Name synthesis knobs; zero values select the defaults.
	NameFormat   string // default "?_%03d"
	ImportPrefix string // default "imp_"
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{nextOld: 1}
}

func (t *SymbolTable) nameFormat() string {
	if t.NameFormat != "" {
		return t.NameFormat
	}
	return "?_%03d"
}

func (t *SymbolTable) importPrefix() string {
	if t.ImportPrefix != "" {
		return t.ImportPrefix
	}
	return "imp_"
}

// Len returns the number of symbols.
func (t *SymbolTable) Len() int { return len(t.list) }

// At returns the symbol at the given internal index.
func (t *SymbolTable) At(i int32) *Symbol { return &t.list[i] }

// Add inserts a symbol from the original file, keeping address order.
// Add is idempotent on OldIndex: a second add with the same old index
// merges the records, preferring nonzero fields. Returns the internal
// index.
func (t *SymbolTable) Add(sym Symbol) int32 {
	if sym.OldIndex == 0 {
		sym.OldIndex = t.nextOld
	}
	if sym.OldIndex >= t.nextOld {
		t.nextOld = sym.OldIndex + 1
	}

	if old := t.Old2New(sym.OldIndex); old >= 0 {
		have := &t.list[old]
		if have.Size == 0 {
			have.Size = sym.Size
		}
		if have.Type == 0 {
			have.Type = sym.Type
		}
		if have.Scope == 0 {
			have.Scope = sym.Scope
		}
		if have.Name == "" {
			have.Name = sym.Name
		}
		if have.DLLName == "" {
			have.DLLName = sym.DLLName
		}
		return old
	}

	i := t.insert(sym)
	t.rebuildIndex()
	return i
}

// New creates an unnamed symbol at (section, offset) and allocates an old
// index for it. Used by pass 1 when it discovers an untabled target.
// If a symbol already exists at the address, its internal index is
// returned instead.
func (t *SymbolTable) New(section int32, offset uint32, scope uint32) int32 {
	if first, _, ok := t.FindByAddress(section, offset); ok {
		return first
	}
	sym := Symbol{
		Section:  section,
		Offset:   offset,
		Scope:    scope,
		OldIndex: t.nextOld,
	}
	t.nextOld++
	i := t.insert(sym)
	t.rebuildIndex()
	return i
}

// insert places sym at its sorted position, after any symbols with the
// same (section, offset) key.
func (t *SymbolTable) insert(sym Symbol) int32 {
	i := sort.Search(len(t.list), func(i int) bool {
		s := &t.list[i]
		if s.Section != sym.Section {
			return s.Section > sym.Section
		}
		return s.Offset > sym.Offset
	})
	t.list = append(t.list, Symbol{})
	copy(t.list[i+1:], t.list[i:])
	t.list[i] = sym
	return int32(i)
}

func (t *SymbolTable) rebuildIndex() {
	if int(t.nextOld) > len(t.oldToNew) {
		t.oldToNew = make([]int32, t.nextOld)
	}
	for i := range t.oldToNew {
		t.oldToNew[i] = -1
	}
	for i := range t.list {
		t.oldToNew[t.list[i].OldIndex] = int32(i)
	}
}

// Old2New translates a caller-supplied old index to the internal index,
// or -1 when the old index is unknown.
func (t *SymbolTable) Old2New(old uint32) int32 {
	if old == 0 || int(old) >= len(t.oldToNew) {
		return -1
	}
	return t.oldToNew[old]
}

// OldLimit returns one past the highest old index seen.
func (t *SymbolTable) OldLimit() uint32 { return t.nextOld }

// FindByAddress returns the internal indices of the first and last symbol
// at exactly (section, offset). Multiple symbols at one address are
// permitted (a public and a local alias, for example).
func (t *SymbolTable) FindByAddress(section int32, offset uint32) (first, last int32, ok bool) {
	lo := sort.Search(len(t.list), func(i int) bool {
		s := &t.list[i]
		if s.Section != section {
			return s.Section >= section
		}
		return s.Offset >= offset
	})
	if lo == len(t.list) || t.list[lo].Section != section || t.list[lo].Offset != offset {
		return 0, 0, false
	}
	hi := lo
	for hi+1 < len(t.list) && t.list[hi+1].Section == section && t.list[hi+1].Offset == offset {
		hi++
	}
	return int32(lo), int32(hi), true
}

// NextAfter returns the index of the first symbol strictly after
// (section, offset), or -1 when none follows in the same section.
func (t *SymbolTable) NextAfter(section int32, offset uint32) int32 {
	i := sort.Search(len(t.list), func(i int) bool {
		s := &t.list[i]
		if s.Section != section {
			return s.Section >= section
		}
		return s.Offset > offset
	})
	if i == len(t.list) || t.list[i].Section != section {
		return -1
	}
	return int32(i)
}

// AssignNames synthesizes names for all unnamed symbols. Symbols whose
// DLL name is set take the import prefix; the rest take the configured
// format string with a monotonic counter, so the same set of anonymous
// addresses always produces the same names.
func (t *SymbolTable) AssignNames() {
	for i := range t.list {
		s := &t.list[i]
		if s.Name != "" {
			continue
		}
		if s.DLLName != "" {
			s.Name = t.importPrefix() + s.DLLName
			continue
		}
		t.unnamed++
		s.Name = fmt.Sprintf(t.nameFormat(), t.unnamed)
	}
}

// AssignName gives the symbol at internal index i a specific name.
func (t *SymbolTable) AssignName(i int32, name string) {
	t.list[i].Name = name
}

// Name returns the symbol's name, synthesizing one on the spot if it has
// none yet.
func (t *SymbolTable) Name(i int32) string {
	s := &t.list[i]
	if s.Name == "" {
		if s.DLLName != "" {
			s.Name = t.importPrefix() + s.DLLName
		} else {
			t.unnamed++
			s.Name = fmt.Sprintf(t.nameFormat(), t.unnamed)
		}
	}
	return s.Name
}

// HasName reports the name of the symbol with the given old index, or ""
// when the symbol is unknown or unnamed.
func (t *SymbolTable) HasName(old uint32) string {
	i := t.Old2New(old)
	if i < 0 {
		return ""
	}
	return t.list[i].Name
}

// SanitizeNames rewrites symbol names containing characters that are
// illegal in assembler identifiers. Every rewrite bumps NamesChanged; the
// rewritten name is stored so all references render the same replacement.
func (t *SymbolTable) SanitizeNames() {
	for i := range t.list {
		s := &t.list[i]
		if s.Name == "" {
			continue
		}
		if clean := sanitizeName(s.Name); clean != s.Name {
			s.Name = clean
			t.NamesChanged++
		}
	}
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_', r == '$', r == '@', r == '?', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}
