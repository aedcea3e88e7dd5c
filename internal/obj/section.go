// Package obj holds the object model the disassembler works on: sections,
// symbols, relocations and function extents, together with the sorted
// indices over them.
package obj

// Section type tags.
const (
	SecUnknown  = 0
	SecCode     = 1
	SecData     = 2
	SecBSS      = 3
	SecConst    = 4
	SecDebug    = 0x10
	SecExcept   = 0x11
	SecGroup    = 0x800
	SecCommunal = 0x1000
)

// Sentinel section indices. Positive values index the section list.
const (
	SectExternal = 0   // external symbols
	SectAbsolute = -1  // absolute symbols
	SectFlat     = -2  // flat group for non-segmented code
	SectImageRel = -16 // offset is image relative; resolve to a section later
)

// Section is one contiguous byte range under analysis. The byte buffer is
// borrowed from the caller for the lifetime of the run.
type Section struct {
	Bytes     []byte
	Addr      uint32 // image-relative start address
	InitSize  uint32 // size of initialized data
	TotalSize uint32 // initialized + uninitialized size
	Type      uint32
	Align     uint32 // alignment = 1 << Align
	WordSize  uint32 // 16, 32 or 64
	Name      string
	Group     int32 // owning group, 0 = none, SectFlat = flat
}

// IsCode reports whether the section holds executable code.
func (s *Section) IsCode() bool { return s.Type&0xFF == SecCode }

// SectionList is the 1-based section table; index 0 is a zero placeholder
// so that section numbers used by symbols and relocations can be used
// directly.
type SectionList struct {
	list []Section
}

// NewSectionList returns a list with the index-0 placeholder in place.
func NewSectionList() *SectionList {
	return &SectionList{list: make([]Section, 1)}
}

// Add appends a section and returns its 1-based index.
func (sl *SectionList) Add(s Section) int32 {
	sl.list = append(sl.list, s)
	return int32(len(sl.list) - 1)
}

// Get returns the section with the given 1-based index, or nil when the
// index is a sentinel or out of range.
func (sl *SectionList) Get(i int32) *Section {
	if i <= 0 || int(i) >= len(sl.list) {
		return nil
	}
	return &sl.list[i]
}

// Len returns the number of sections, excluding the placeholder.
func (sl *SectionList) Len() int { return len(sl.list) - 1 }

// FindByAddress translates an image-relative address to (section, offset).
// Group sections are skipped. Returns (0, 0, false) when no section covers
// the address.
func (sl *SectionList) FindByAddress(addr uint32) (int32, uint32, bool) {
	for i := 1; i < len(sl.list); i++ {
		s := &sl.list[i]
		if s.Type&SecGroup != 0 {
			continue
		}
		if addr >= s.Addr && addr < s.Addr+s.TotalSize {
			return int32(i), addr - s.Addr, true
		}
	}
	return 0, 0, false
}
