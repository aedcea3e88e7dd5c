package obj

import "sort"

// Relocation type tags.
const (
	RelUnknown  = 0
	RelDirect   = 1 // direct address
	RelSelf     = 2 // self (instruction pointer) relative
	RelImageRel = 4 // relative to the image base
	RelSegRel   = 8 // relative to a segment
	RelRefPoint = 0x10 // relative to an arbitrary reference point
	RelApplied  = 0x21 // direct, already relocated to the image base
	RelPLT      = 0x41 // direct via procedure linkage table
	RelIFunc    = 0x81 // indirect-function PLT entry
	RelFar      = 0x400
	RelGOT      = 0x1001 // GOT entry relative to GOT
	RelSelfGOT  = 0x1002 // self-relative reference to GOT or a GOT entry
	RelSelfPLT  = 0x2002 // self-relative to PLT
)

// Relocation is one cross-reference from (Section, Offset) to a target
// symbol identified by its old index. Addend includes the distance from
// source to instruction pointer for self-relative types, but never the
// inline addend stored in the code bytes.
type Relocation struct {
	Section  int32
	Offset   uint32
	Type     uint32
	Size     uint32 // 1, 2, 4, 6 or 8 bytes
	Addend   int32
	TargetOldIndex uint32
	RefOldIndex    uint32
}

func relLess(a, b *Relocation) bool {
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	return a.Offset < b.Offset
}

// RelocationIndex is the relocation list sorted by (section, offset).
// After ingestion the only access pattern is binary search.
type RelocationIndex struct {
	list   []Relocation
	sorted bool
}

// Add appends a relocation. The list is re-sorted lazily on first lookup.
func (x *RelocationIndex) Add(r Relocation) {
	x.list = append(x.list, r)
	x.sorted = false
}

// Len returns the number of relocations.
func (x *RelocationIndex) Len() int { return len(x.list) }

// At returns the relocation at index i (after Sort).
func (x *RelocationIndex) At(i int32) *Relocation { return &x.list[i] }

// Sort orders the list by (section, offset). Idempotent.
func (x *RelocationIndex) Sort() {
	if x.sorted {
		return
	}
	sort.SliceStable(x.list, func(i, j int) bool {
		return relLess(&x.list[i], &x.list[j])
	})
	x.sorted = true
}

// FindRange returns the index of the relocation whose source lies within
// [offset, offset+size) of the given section, or -1. At most one
// relocation source covers any byte, so the first hit is the only hit.
func (x *RelocationIndex) FindRange(section int32, offset, size uint32) int32 {
	x.Sort()
	i := sort.Search(len(x.list), func(i int) bool {
		r := &x.list[i]
		if r.Section != section {
			return r.Section >= section
		}
		return r.Offset+r.Size > offset
	})
	if i == len(x.list) {
		return -1
	}
	r := &x.list[i]
	if r.Section != section || r.Offset >= offset+size {
		return -1
	}
	return int32(i)
}

// FindAt returns the relocation exactly at (section, offset), or -1.
func (x *RelocationIndex) FindAt(section int32, offset uint32) int32 {
	x.Sort()
	i := sort.Search(len(x.list), func(i int) bool {
		r := &x.list[i]
		if r.Section != section {
			return r.Section >= section
		}
		return r.Offset >= offset
	})
	if i == len(x.list) {
		return -1
	}
	r := &x.list[i]
	if r.Section != section || r.Offset != offset {
		return -1
	}
	return int32(i)
}

// CheckOverlap reports the first pair of relocations whose source bytes
// overlap, or -1 when the invariant holds.
func (x *RelocationIndex) CheckOverlap() int32 {
	x.Sort()
	for i := 1; i < len(x.list); i++ {
		a, b := &x.list[i-1], &x.list[i]
		if a.Section == b.Section && a.Offset+a.Size > b.Offset {
			return int32(i)
		}
	}
	return -1
}
