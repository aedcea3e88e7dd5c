package decode

import (
	"reflect"
	"testing"

	"golang.org/x/arch/x86/x86asm"

	"disx86/internal/obj"
)

func decode64(t *testing.T, code ...byte) Inst {
	t.Helper()
	d := Decoder{Mode: 64}
	return d.Decode(code, 0)
}

func TestDecodeNop(t *testing.T) {
	in := decode64(t, 0x90)
	if in.Entry.Name != "nop" {
		t.Fatalf("name = %q, want nop", in.Entry.Name)
	}
	if in.Len() != 1 {
		t.Errorf("len = %d, want 1", in.Len())
	}
	if in.Errors != 0 || in.Warnings1 != 0 || in.Warnings2 != 0 {
		t.Errorf("flags = %#x/%#x/%#x, want clean", in.Errors, in.Warnings1, in.Warnings2)
	}
	if !in.IsFiller() {
		t.Error("nop not marked as filler")
	}
}

func TestDecodeMovRegReg(t *testing.T) {
	in := decode64(t, 0x48, 0x89, 0xC3)
	if in.Entry.Name != "mov" {
		t.Fatalf("name = %q, want mov", in.Entry.Name)
	}
	if in.Len() != 3 {
		t.Errorf("len = %d, want 3", in.Len())
	}
	if in.OperandSize != 64 {
		t.Errorf("operand size = %d, want 64", in.OperandSize)
	}
	if in.Mod != 3 || in.Reg != 0 || in.RM != 3 {
		t.Errorf("modrm = %d/%d/%d, want 3/0/3", in.Mod, in.Reg, in.RM)
	}
	if in.AddressRelocation != -1 || in.ImmediateRelocation != -1 {
		t.Error("relocations bound on a register-only instruction")
	}
}

func TestDecodeCallRel(t *testing.T) {
	in := decode64(t, 0xE8, 0x00, 0x00, 0x00, 0x00)
	if in.Entry.Name != "call" {
		t.Fatalf("name = %q, want call", in.Entry.Name)
	}
	if in.Len() != 5 {
		t.Errorf("len = %d, want 5", in.Len())
	}
	if in.ImmediateField != 1 || in.ImmediateFieldSize != 4 {
		t.Errorf("immediate field = %d+%d, want 1+4", in.ImmediateField, in.ImmediateFieldSize)
	}
}

func TestDecodeJmpThroughTable(t *testing.T) {
	// jmp [rax*4 + disp32]
	in := decode64(t, 0xFF, 0x24, 0x85, 0x00, 0x00, 0x00, 0x00)
	if in.Entry.Name != "jmp" {
		t.Fatalf("name = %q, want jmp", in.Entry.Name)
	}
	if in.Len() != 7 {
		t.Errorf("len = %d, want 7", in.Len())
	}
	if in.MFlags&MemHasSIB == 0 || !in.HasMem() {
		t.Errorf("mflags = %#x, want memory+sib", in.MFlags)
	}
	if in.IndexReg != 1 || in.Scale != 2 || in.BaseReg != 0 {
		t.Errorf("index/scale/base = %d/%d/%d, want 1/2/0", in.IndexReg, in.Scale, in.BaseReg)
	}
	if in.AddressField != 3 || in.AddressFieldSize != 4 {
		t.Errorf("address field = %d+%d, want 3+4", in.AddressField, in.AddressFieldSize)
	}
	if !in.IsUncond() {
		t.Error("jmp not marked unconditional")
	}
}

func TestDecodeEVEXVmovups(t *testing.T) {
	// vmovups zmm0, [abs 0x40]
	in := decode64(t, 0x62, 0xF1, 0x7C, 0x48, 0x10, 0x04, 0x25, 0x40, 0x00, 0x00, 0x00)
	if in.Entry.Name != "movups" {
		t.Fatalf("name = %q, want movups", in.Entry.Name)
	}
	if in.Errors != 0 {
		t.Fatalf("errors = %#x", in.Errors)
	}
	if in.VexType != VexEVEX {
		t.Errorf("vex type = %d, want EVEX", in.VexType)
	}
	if in.VexL != 2 {
		t.Errorf("LL = %d, want 2 (zmm)", in.VexL)
	}
	if in.OffsetMultiplier != 64 {
		t.Errorf("offset multiplier = %d, want 64", in.OffsetMultiplier)
	}
	if in.Broadcast || in.Kreg != 0 || in.ZeroMasking {
		t.Error("unexpected broadcast or masking state")
	}
	if in.Len() != 11 {
		t.Errorf("len = %d, want 11", in.Len())
	}
}

func TestDecodeUD2(t *testing.T) {
	in := decode64(t, 0x0F, 0x0B)
	if in.Entry.Name != "ud2" {
		t.Fatalf("name = %q, want ud2", in.Entry.Name)
	}
	if !in.IsUncond() {
		t.Error("ud2 does not end the basic block")
	}
	if in.Len() != 2 {
		t.Errorf("len = %d, want 2", in.Len())
	}
}

func TestDecodeTruncated(t *testing.T) {
	in := decode64(t, 0x48)
	if in.Errors&ErrTruncated == 0 {
		t.Errorf("errors = %#x, want truncation", in.Errors)
	}
	if in.Len() < 1 {
		t.Error("decode consumed no bytes")
	}
	if in.End > 1 {
		t.Errorf("end = %d, read past the buffer", in.End)
	}
}

func TestDecodePurity(t *testing.T) {
	code := []byte{0x48, 0x8B, 0x44, 0x24, 0x08}
	d := Decoder{Mode: 64}
	a := d.Decode(code, 0)
	b := d.Decode(code, 0)
	if !reflect.DeepEqual(a, b) {
		t.Error("re-decoding the same bytes produced a different record")
	}
}

func TestDecodePrefixConflict(t *testing.T) {
	in := decode64(t, 0x66, 0x66, 0x90)
	if in.Warnings1&WarnPrefixConflict == 0 {
		t.Errorf("warnings = %#x, want prefix conflict", in.Warnings1)
	}
}

func TestDecodeLockError(t *testing.T) {
	// lock mov reg, reg is not encodable.
	in := decode64(t, 0xF0, 0x89, 0xC3)
	if in.Errors&ErrLock == 0 {
		t.Errorf("errors = %#x, want lock error", in.Errors)
	}
}

func TestDecodeIllegalByte(t *testing.T) {
	// 0F FF is ud0 with modrm; 0F 04 is genuinely unassigned.
	in := decode64(t, 0x0F, 0x04)
	if in.Errors&ErrIllegal == 0 {
		t.Errorf("errors = %#x, want illegal", in.Errors)
	}
	if in.Len() < 1 {
		t.Error("illegal decode must still consume at least one byte")
	}
}

func TestDecode16BitModRM(t *testing.T) {
	// mov ax, [bx+6]
	d := Decoder{Mode: 16}
	in := d.Decode([]byte{0x8B, 0x47, 0x06}, 0)
	if in.Entry.Name != "mov" {
		t.Fatalf("name = %q", in.Entry.Name)
	}
	if in.AddressSize != 16 || in.OperandSize != 16 {
		t.Errorf("sizes = %d/%d, want 16/16", in.AddressSize, in.OperandSize)
	}
	if in.BaseReg != 4 { // bx + 1
		t.Errorf("base = %d, want 4 (bx)", in.BaseReg)
	}
	if in.AddressFieldSize != 1 {
		t.Errorf("disp size = %d, want 1", in.AddressFieldSize)
	}
	if in.Len() != 3 {
		t.Errorf("len = %d, want 3", in.Len())
	}
}

func TestDecodeRIPRelative(t *testing.T) {
	// lea rax, [rip+0x10]
	in := decode64(t, 0x48, 0x8D, 0x05, 0x10, 0x00, 0x00, 0x00)
	if in.Entry.Name != "lea" {
		t.Fatalf("name = %q", in.Entry.Name)
	}
	if !in.RIPRelative() {
		t.Error("rip-relative flag not set")
	}
	if in.AddressField != 3 || in.AddressFieldSize != 4 {
		t.Errorf("address field = %d+%d, want 3+4", in.AddressField, in.AddressFieldSize)
	}
}

func TestDecodeRelocationBinding(t *testing.T) {
	rel := obj.Relocation{Section: 1, Offset: 1, Size: 4, Type: obj.RelSelf, Addend: 4, TargetOldIndex: 7}
	d := Decoder{Mode: 64, Relocs: func(offset, size uint32) (int32, *obj.Relocation) {
		if rel.Offset >= offset && rel.Offset < offset+size {
			return 0, &rel
		}
		return -1, nil
	}}
	in := d.Decode([]byte{0xE8, 0x00, 0x00, 0x00, 0x00}, 0)
	if in.ImmediateRelocation != 0 {
		t.Errorf("immediate relocation = %d, want 0", in.ImmediateRelocation)
	}
	in2 := d.Decode([]byte{0x90}, 0)
	if in2.ImmediateRelocation != -1 {
		t.Error("relocation bound to an instruction without fields")
	}
}

// TestReferenceDecoder cross-checks instruction lengths against the
// golang.org/x/arch decoder over a corpus of common encodings.
func TestReferenceDecoder(t *testing.T) {
	corpus := [][]byte{
		{0x90},
		{0x55},
		{0xC3},
		{0x48, 0x89, 0xC3},
		{0x48, 0x8B, 0x44, 0x24, 0x08},
		{0x8B, 0x45, 0xFC},
		{0xE8, 0x00, 0x00, 0x00, 0x00},
		{0xE9, 0x10, 0x00, 0x00, 0x00},
		{0x74, 0x02},
		{0x0F, 0x84, 0x00, 0x01, 0x00, 0x00},
		{0x48, 0x83, 0xC4, 0x20},
		{0x48, 0x81, 0xEC, 0x00, 0x01, 0x00, 0x00},
		{0xB8, 0x2A, 0x00, 0x00, 0x00},
		{0x48, 0xB8, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		{0x0F, 0xB6, 0xC0},
		{0x0F, 0xAF, 0xC3},
		{0xF7, 0xE3},
		{0x48, 0x8D, 0x05, 0x10, 0x00, 0x00, 0x00},
		{0xFF, 0x24, 0x85, 0x00, 0x00, 0x00, 0x00},
		{0x0F, 0x0B},
		{0x66, 0x0F, 0x6F, 0x00},
		{0xF3, 0x0F, 0x10, 0x05, 0x00, 0x00, 0x00, 0x00},
		{0x0F, 0x1F, 0x44, 0x00, 0x00},
		{0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	d := Decoder{Mode: 64}
	for _, code := range corpus {
		in := d.Decode(code, 0)
		if in.Errors != 0 {
			t.Errorf("% X: errors %#x", code, in.Errors)
			continue
		}
		ref, err := x86asm.Decode(code, 64)
		if err != nil {
			continue
		}
		if uint32(ref.Len) != in.Len() {
			t.Errorf("% X: len %d, reference %d (%v)", code, in.Len(), ref.Len, ref.Op)
		}
	}
}
