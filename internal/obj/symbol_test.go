package obj

import (
	"strings"
	"testing"
)

func TestSymbolTableAddMerge(t *testing.T) {
	st := NewSymbolTable()
	i := st.Add(Symbol{Section: 1, Offset: 0x10, OldIndex: 5, Name: "foo"})
	if got := st.At(i).OldIndex; got != 5 {
		t.Fatalf("OldIndex = %d, want 5", got)
	}

	// A second add with the same old index merges, preferring nonzero.
	j := st.Add(Symbol{Section: 1, Offset: 0x10, OldIndex: 5, Size: 32, Scope: ScopePublic})
	if i != j {
		t.Fatalf("merge returned new index %d, want %d", j, i)
	}
	s := st.At(i)
	if s.Name != "foo" || s.Size != 32 || s.Scope != ScopePublic {
		t.Errorf("merged symbol = %+v", *s)
	}
	if st.Len() != 1 {
		t.Errorf("len = %d, want 1", st.Len())
	}
}

func TestSymbolTableOld2NewInvariant(t *testing.T) {
	st := NewSymbolTable()
	st.Add(Symbol{Section: 2, Offset: 0x40, OldIndex: 9})
	st.Add(Symbol{Section: 1, Offset: 0x20, OldIndex: 3})
	st.Add(Symbol{Section: 1, Offset: 0x10, OldIndex: 7})
	st.New(1, 0x30, ScopeLocal)

	// Every symbol's old index must translate back to its position.
	for i := 0; i < st.Len(); i++ {
		s := st.At(int32(i))
		if got := st.Old2New(s.OldIndex); got != int32(i) {
			t.Errorf("Old2New(%d) = %d, want %d", s.OldIndex, got, i)
		}
	}

	// And the list must be address sorted.
	for i := 1; i < st.Len(); i++ {
		a, b := st.At(int32(i-1)), st.At(int32(i))
		if a.Section > b.Section || a.Section == b.Section && a.Offset > b.Offset {
			t.Errorf("list not sorted at %d: %+v before %+v", i, *a, *b)
		}
	}
}

func TestSymbolTableFindByAddress(t *testing.T) {
	st := NewSymbolTable()
	st.Add(Symbol{Section: 1, Offset: 0x10, OldIndex: 1, Name: "pub"})
	st.Add(Symbol{Section: 1, Offset: 0x10, OldIndex: 2, Name: "alias"})
	st.Add(Symbol{Section: 1, Offset: 0x20, OldIndex: 3})

	first, last, ok := st.FindByAddress(1, 0x10)
	if !ok || last-first != 1 {
		t.Fatalf("FindByAddress = (%d, %d, %v), want two symbols", first, last, ok)
	}
	if next := st.NextAfter(1, 0x10); next < 0 || st.At(next).Offset != 0x20 {
		t.Errorf("NextAfter(0x10) = %d", next)
	}
	if _, _, ok := st.FindByAddress(1, 0x11); ok {
		t.Error("found symbol at empty address")
	}
}

func TestSymbolTableNewIsIdempotent(t *testing.T) {
	st := NewSymbolTable()
	a := st.New(1, 0x100, ScopeLocal)
	b := st.New(1, 0x100, ScopePublic)
	if a != b {
		t.Errorf("New at same address created a duplicate: %d vs %d", a, b)
	}
}

func TestAssignNamesStable(t *testing.T) {
	mk := func() []string {
		st := NewSymbolTable()
		st.New(1, 0x30, ScopeLocal)
		st.New(1, 0x10, ScopeLocal)
		st.New(2, 0x00, ScopeLocal)
		st.AssignNames()
		var names []string
		for i := 0; i < st.Len(); i++ {
			names = append(names, st.At(int32(i)).Name)
		}
		return names
	}
	a, b := mk(), mk()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("name synthesis unstable: %v vs %v", a, b)
		}
		if !strings.HasPrefix(a[i], "?_") {
			t.Errorf("unexpected synthesized name %q", a[i])
		}
	}
}

func TestSanitizeNames(t *testing.T) {
	st := NewSymbolTable()
	i := st.Add(Symbol{Section: 1, Offset: 0, OldIndex: 1, Name: "std::vector<int>"})
	st.SanitizeNames()
	if st.NamesChanged != 1 {
		t.Errorf("NamesChanged = %d, want 1", st.NamesChanged)
	}
	if name := st.At(i).Name; strings.ContainsAny(name, "<>:") {
		t.Errorf("name not sanitized: %q", name)
	}

	// A second pass must not rewrite again.
	st.SanitizeNames()
	if st.NamesChanged != 1 {
		t.Errorf("sanitize is not idempotent: NamesChanged = %d", st.NamesChanged)
	}
}
