package obj

import "sort"

// ScopeEndUnknown marks a function record whose end has not been found
// yet; pass 1 may extend it when a later jump target is discovered in the
// same section.
const ScopeEndUnknown = 0x10000

// FuncRecord is one function extent. Records within a section are
// pairwise disjoint except while an end is still unknown.
type FuncRecord struct {
	Section        int32
	Start          uint32
	End            uint32
	Scope          uint32
	OldSymbolIndex uint32
}

// EndUnknown reports whether the record's end is still open.
func (f *FuncRecord) EndUnknown() bool { return f.Scope&ScopeEndUnknown != 0 }

// Contains reports whether the section offset lies inside the function.
// An offset equal to End belongs to the next function, not this one.
func (f *FuncRecord) Contains(section int32, offset uint32) bool {
	return f.Section == section && offset >= f.Start && (offset < f.End || f.EndUnknown() && offset >= f.Start)
}

// FuncList is the function table sorted by (section, start).
type FuncList struct {
	list []FuncRecord
}

// Len returns the number of records.
func (fl *FuncList) Len() int { return len(fl.list) }

// At returns the record at index i.
func (fl *FuncList) At(i int32) *FuncRecord { return &fl.list[i] }

// Add inserts a record at its sorted position and returns its index.
// Adding at a start where a record already exists merges scope into the
// existing record instead.
func (fl *FuncList) Add(f FuncRecord) int32 {
	i := sort.Search(len(fl.list), func(i int) bool {
		r := &fl.list[i]
		if r.Section != f.Section {
			return r.Section >= f.Section
		}
		return r.Start >= f.Start
	})
	if i < len(fl.list) && fl.list[i].Section == f.Section && fl.list[i].Start == f.Start {
		r := &fl.list[i]
		r.Scope |= f.Scope
		if r.End < f.End {
			r.End = f.End
		}
		if r.OldSymbolIndex == 0 {
			r.OldSymbolIndex = f.OldSymbolIndex
		}
		return int32(i)
	}
	fl.list = append(fl.list, FuncRecord{})
	copy(fl.list[i+1:], fl.list[i:])
	fl.list[i] = f
	return int32(i)
}

// FindAt returns the index of the record containing (section, offset),
// or -1. A record with an unknown end matches any offset at or past its
// start up to the next record in the section.
func (fl *FuncList) FindAt(section int32, offset uint32) int32 {
	for i := range fl.list {
		r := &fl.list[i]
		if r.Section != section {
			continue
		}
		end := r.End
		if r.EndUnknown() {
			end = ^uint32(0)
			if i+1 < len(fl.list) && fl.list[i+1].Section == section {
				end = fl.list[i+1].Start
			}
		}
		if offset >= r.Start && offset < end {
			return int32(i)
		}
	}
	return -1
}

// Extend grows the record's end to cover at least offset. Only meaningful
// while the end is unknown or the record is being closed by pass 1.
func (fl *FuncList) Extend(i int32, offset uint32) {
	if fl.list[i].End < offset {
		fl.list[i].End = offset
	}
}

// Close fixes the record's end and clears the end-unknown flag.
func (fl *FuncList) Close(i int32, end uint32) {
	r := &fl.list[i]
	if r.End < end {
		r.End = end
	}
	r.Scope &^= ScopeEndUnknown
}
