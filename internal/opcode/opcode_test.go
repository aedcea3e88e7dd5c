package opcode

import "testing"

func TestTableLinksResolve(t *testing.T) {
	for ti, tab := range Tables {
		for ei := range tab {
			e := &tab[ei]
			if e.Link == LinkNone {
				continue
			}
			if e.Link > LinkByteAfter {
				t.Errorf("table %d entry %#x: unknown link kind %d", ti, ei, e.Link)
			}
			if int(e.LinkTab) >= len(Tables) {
				t.Errorf("table %d entry %#x: link target %d out of range", ti, ei, e.LinkTab)
			}
			if int(e.LinkTab) == ti {
				t.Errorf("table %d entry %#x: self link", ti, ei)
			}
		}
	}
}

func TestPrimaryMapsAreFull(t *testing.T) {
	if n := len(Tables[TabOneByte]); n != 256 {
		t.Errorf("one-byte map has %d entries, want 256", n)
	}
	if n := len(Tables[Tab0F]); n != 256 {
		t.Errorf("0F map has %d entries, want 256", n)
	}
}

func TestLookupBounds(t *testing.T) {
	if e := Lookup(Tab0F38, 0xFFFF); e != &Illegal {
		t.Error("out-of-range lookup did not return the illegal entry")
	}
	if e := Lookup(0xFFFF, 0); e != &Illegal {
		t.Error("bad table lookup did not return the illegal entry")
	}
	if e := Lookup(TabOneByte, 0x90); e.Link != LinkPrefix {
		t.Errorf("0x90 entry link = %d, want prefix link", e.Link)
	}
}

func TestVexPages(t *testing.T) {
	if VexPages[1] != Tab0F || VexPages[2] != Tab0F38 || VexPages[3] != Tab0F3A {
		t.Errorf("VexPages = %v", VexPages)
	}
}

func TestGPName(t *testing.T) {
	tests := []struct {
		r    uint32
		bits uint32
		rex  bool
		want string
	}{
		{0, 64, false, "rax"},
		{3, 64, true, "rbx"},
		{3, 32, false, "ebx"},
		{6, 16, false, "si"},
		{4, 8, false, "ah"},
		{4, 8, true, "spl"},
		{12, 64, true, "r12"},
		{13, 8, true, "r13b"},
	}
	for _, tt := range tests {
		if got := GPName(tt.r, tt.bits, tt.rex); got != tt.want {
			t.Errorf("GPName(%d, %d, %v) = %q, want %q", tt.r, tt.bits, tt.rex, got, tt.want)
		}
	}
}

func TestVecName(t *testing.T) {
	tests := []struct {
		r    uint32
		size uint32
		want string
	}{
		{0, 16, "xmm0"},
		{1, 32, "ymm1"},
		{0, 64, "zmm0"},
		{31, 64, "zmm31"},
		{3, 8, "mm3"},
	}
	for _, tt := range tests {
		if got := VecName(tt.r, tt.size); got != tt.want {
			t.Errorf("VecName(%d, %d) = %q, want %q", tt.r, tt.size, got, tt.want)
		}
	}
}

func TestTypeSize(t *testing.T) {
	tests := []struct {
		ot     uint32
		opSize uint32
		want   uint32
	}{
		{1, 32, 1},
		{2, 32, 2},
		{3, 32, 4},
		{4, 32, 8},
		{8, 16, 2},
		{8, 32, 4},
		{9, 64, 8},
		{0x45, 32, 10},
		{0x400, 32, 16},
		{0x600, 32, 64},
	}
	for _, tt := range tests {
		if got := TypeSize(tt.ot, tt.opSize); got != tt.want {
			t.Errorf("TypeSize(%#x, %d) = %d, want %d", tt.ot, tt.opSize, got, tt.want)
		}
	}
}

func TestElementSize(t *testing.T) {
	if got := ElementSize(0x4F, 0); got != 4 {
		t.Errorf("ElementSize(ps) = %d, want 4", got)
	}
	if got := ElementSize(0x4F, 0x66); got != 8 {
		t.Errorf("ElementSize(pd) = %d, want 8", got)
	}
	if got := ElementSize(0x4C, 0); got != 8 {
		t.Errorf("ElementSize(f64) = %d, want 8", got)
	}
}
