package obj

import "testing"

func TestRelocationFindRange(t *testing.T) {
	var x RelocationIndex
	x.Add(Relocation{Section: 1, Offset: 0x10, Size: 4, TargetOldIndex: 1})
	x.Add(Relocation{Section: 1, Offset: 0x03, Size: 4, TargetOldIndex: 2})
	x.Add(Relocation{Section: 2, Offset: 0x00, Size: 8, TargetOldIndex: 3})

	tests := []struct {
		section int32
		offset  uint32
		size    uint32
		want    uint32 // target old index, 0 = not found
	}{
		{1, 0x03, 4, 2},  // exact
		{1, 0x01, 4, 2},  // field overlaps the relocation start
		{1, 0x05, 2, 2},  // field inside the relocation
		{1, 0x12, 1, 1},  // middle of the second
		{1, 0x07, 4, 0},  // just past
		{1, 0x14, 4, 0},  // past everything in section 1 ends at 0x14
		{2, 0x04, 1, 3},  // qword in section 2
		{3, 0x00, 4, 0},  // no such section
	}
	for _, tt := range tests {
		i := x.FindRange(tt.section, tt.offset, tt.size)
		var got uint32
		if i >= 0 {
			got = x.At(i).TargetOldIndex
		}
		if got != tt.want {
			t.Errorf("FindRange(%d, %#x, %d) = target %d, want %d",
				tt.section, tt.offset, tt.size, got, tt.want)
		}
	}
}

func TestRelocationOverlap(t *testing.T) {
	var x RelocationIndex
	x.Add(Relocation{Section: 1, Offset: 0x00, Size: 4})
	x.Add(Relocation{Section: 1, Offset: 0x04, Size: 4})
	if i := x.CheckOverlap(); i >= 0 {
		t.Errorf("adjacent relocations flagged as overlap at %d", i)
	}
	x.Add(Relocation{Section: 1, Offset: 0x06, Size: 4})
	if i := x.CheckOverlap(); i < 0 {
		t.Error("overlapping relocations not detected")
	}
}

func TestFuncListExtents(t *testing.T) {
	var fl FuncList
	i := fl.Add(FuncRecord{Section: 1, Start: 0x00, Scope: ScopePublic | ScopeEndUnknown})
	fl.Add(FuncRecord{Section: 1, Start: 0x40, Scope: ScopeFileLoc | ScopeEndUnknown})

	fl.Extend(i, 0x20)
	if f := fl.At(i); f.End != 0x20 || !f.EndUnknown() {
		t.Fatalf("after Extend: %+v", *f)
	}
	fl.Close(i, 0x30)
	if f := fl.At(i); f.End != 0x30 || f.EndUnknown() {
		t.Fatalf("after Close: %+v", *f)
	}

	// A symbol at the function end belongs to the next function.
	if got := fl.FindAt(1, 0x30); got != -1 && fl.At(got).Start != 0x40 {
		t.Errorf("offset at closed end resolved to record starting %#x", fl.At(got).Start)
	}
	if got := fl.FindAt(1, 0x40); got < 0 || fl.At(got).Start != 0x40 {
		t.Errorf("FindAt(0x40) = %d", got)
	}

	// Adding at an existing start merges rather than duplicating.
	n := fl.Len()
	fl.Add(FuncRecord{Section: 1, Start: 0x40, Scope: ScopePublic})
	if fl.Len() != n {
		t.Errorf("duplicate start created a record: len %d, want %d", fl.Len(), n)
	}
}
