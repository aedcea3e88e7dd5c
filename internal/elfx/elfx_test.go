package elfx

import (
	"debug/elf"
	"os"
	"path/filepath"
	"testing"

	"disx86/internal/obj"
)

func TestOpenRejectsNonELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-elf.o")
	if err := os.WriteFile(path, []byte("plainly not an object"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("Open accepted a non-ELF file")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.o")); err == nil {
		t.Fatal("Open accepted a missing file")
	}
}

func TestMapRelX64(t *testing.T) {
	tests := []struct {
		in       elf.R_X86_64
		wantType uint32
		wantSize uint32
	}{
		{elf.R_X86_64_64, obj.RelDirect, 8},
		{elf.R_X86_64_32, obj.RelDirect, 4},
		{elf.R_X86_64_32S, obj.RelDirect, 4},
		{elf.R_X86_64_PC32, obj.RelSelf, 4},
		{elf.R_X86_64_PLT32, obj.RelSelfPLT, 4},
		{elf.R_X86_64_GOTPCREL, obj.RelSelfGOT, 4},
		{elf.R_X86_64_TPOFF64, obj.RelUnknown, 0}, // unsupported kinds drop out
	}
	for _, tt := range tests {
		typ, size := mapRelX64(uint32(tt.in))
		if typ != tt.wantType || size != tt.wantSize {
			t.Errorf("mapRelX64(%v) = (%#x, %d), want (%#x, %d)",
				tt.in, typ, size, tt.wantType, tt.wantSize)
		}
	}
}

func TestMapRel386(t *testing.T) {
	tests := []struct {
		in       elf.R_386
		wantType uint32
		wantSize uint32
	}{
		{elf.R_386_32, obj.RelDirect, 4},
		{elf.R_386_PC32, obj.RelSelf, 4},
		{elf.R_386_PLT32, obj.RelSelfPLT, 4},
		{elf.R_386_TLS_LE, obj.RelUnknown, 0},
	}
	for _, tt := range tests {
		typ, size := mapRel386(uint32(tt.in))
		if typ != tt.wantType || size != tt.wantSize {
			t.Errorf("mapRel386(%v) = (%#x, %d), want (%#x, %d)",
				tt.in, typ, size, tt.wantType, tt.wantSize)
		}
	}
}

// TestSelfRelativeAddendFoldsPCDistance checks the addend adjustment
// contract: the disassembler wants the distance from source to
// instruction pointer folded in, so PC32's typical -4 becomes 0.
func TestSelfRelativeAddendFoldsPCDistance(t *testing.T) {
	typ, size := mapRelX64(uint32(elf.R_X86_64_PC32))
	if typ&obj.RelSelf == 0 {
		t.Fatal("PC32 not classified self-relative")
	}
	addend := int64(-4) + int64(size)
	if addend != 0 {
		t.Errorf("adjusted addend = %d, want 0", addend)
	}
}
