package dis

import (
	"bytes"
	"strings"
	"testing"

	"disx86/internal/obj"
)

// codeSection builds a disassembler with a single 64-bit code section.
func codeSection(syntax Syntax, code []byte) *Disassembler {
	d := New(syntax)
	d.Init(ExeObject, 0)
	d.AddSection(code, uint32(len(code)), uint32(len(code)), 0x1000, obj.SecCode, 4, 64, ".text")
	return d
}

func TestGoNop(t *testing.T) {
	d := codeSection(SyntaxNASM, []byte{0x90, 0xC3})
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if !strings.Contains(out, "nop") {
		t.Errorf("missing nop in output:\n%s", out)
	}
	if !strings.Contains(out, "ret") {
		t.Errorf("missing ret in output:\n%s", out)
	}
	if d.ErrorCount() != 0 {
		t.Errorf("error count = %d", d.ErrorCount())
	}
}

func TestMovDialects(t *testing.T) {
	tests := []struct {
		syntax Syntax
		want   string
	}{
		{SyntaxMASM, "mov     rbx, rax"},
		{SyntaxNASM, "mov     rbx, rax"},
		{SyntaxGAS, "movq    %rax, %rbx"},
	}
	for _, tt := range tests {
		d := codeSection(tt.syntax, []byte{0x48, 0x89, 0xC3, 0xC3})
		if err := d.Go(); err != nil {
			t.Fatal(err)
		}
		if out := string(d.Output()); !strings.Contains(out, tt.want) {
			t.Errorf("syntax %d: missing %q in output:\n%s", tt.syntax, tt.want, out)
		}
	}
}

func TestCallOpensFunction(t *testing.T) {
	// call foo; ret; foo: ret
	code := []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0xC3, 0xC3}
	d := codeSection(SyntaxNASM, code)
	d.AddSymbol(1, 6, 0, 0, obj.ScopePublic, 1, "foo", "")
	d.AddRelocation(1, 1, 0, obj.RelDirect, 4, 1, 0)
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if !strings.Contains(out, "call") || !strings.Contains(out, "foo") {
		t.Fatalf("missing call foo in output:\n%s", out)
	}
	if !strings.Contains(out, "foo:") {
		t.Errorf("missing foo label:\n%s", out)
	}

	fi := d.funcs.FindAt(1, 6)
	if fi < 0 || d.funcs.At(fi).Start != 6 {
		t.Errorf("no function record opened at foo")
	}
}

func TestJumpTableDiscovery(t *testing.T) {
	// jmp [jt + rax*4]; then four one-byte target stubs.
	code := []byte{
		0xFF, 0x24, 0x85, 0x00, 0x00, 0x00, 0x00, // jmp [jt+rax*4]
		0xC3, // L1
		0xC3, // L2
		0xC3, // L3
		0xC3, // L4
	}
	table := make([]byte, 16)
	d := codeSection(SyntaxNASM, code)
	d.AddSection(table, 16, 16, 0x2000, obj.SecConst, 2, 64, ".rodata")
	d.AddSymbol(2, 0, 16, 0, obj.ScopeFileLoc, 1, "jt", "")
	for i := uint32(0); i < 4; i++ {
		d.AddSymbol(1, 7+i, 0, 0, obj.ScopeLocal, 2+i, "L"+string(rune('1'+i)), "")
		d.AddRelocation(2, i*4, 0, obj.RelDirect, 4, 2+i, 0)
	}
	d.AddRelocation(1, 3, 0, obj.RelDirect, 4, 1, 0)

	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if !strings.Contains(out, "switch table: L1 L2 L3 L4") {
		t.Errorf("missing switch table comment:\n%s", out)
	}
	for _, l := range []string{"L1:", "L2:", "L3:", "L4:"} {
		if !strings.Contains(out, l) {
			t.Errorf("missing label %s:\n%s", l, out)
		}
	}
	// The targets were promoted to code symbols in the function.
	for i := uint32(0); i < 4; i++ {
		if first, _, ok := d.symbols.FindByAddress(1, 7+i); !ok {
			t.Errorf("no symbol at target %d", 7+i)
		} else if d.symbols.At(first).Type&0x1000000 == 0 {
			t.Errorf("target %d not typed as code", 7+i)
		}
	}
}

func TestUD2MarksDataUntilNextSymbol(t *testing.T) {
	// ud2; junk bytes; sym: ret
	code := []byte{0x0F, 0x0B, 0xDE, 0xAD, 0xC3}
	d := codeSection(SyntaxNASM, code)
	d.AddSymbol(1, 4, 0, 0, obj.ScopePublic, 1, "after", "")
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if !strings.Contains(out, "ud2") {
		t.Fatalf("missing ud2:\n%s", out)
	}
	if !strings.Contains(out, "0xde, 0xad") {
		t.Errorf("junk after ud2 not rendered as data:\n%s", out)
	}
	if !strings.Contains(out, "after:") {
		t.Errorf("missing label after the data run:\n%s", out)
	}
}

func TestEVEXInstruction(t *testing.T) {
	code := []byte{
		0x62, 0xF1, 0x7C, 0x48, 0x10, 0x04, 0x25, 0x40, 0x00, 0x00, 0x00, // vmovups zmm0, [0x40]
		0xC3,
	}
	d := codeSection(SyntaxNASM, code)
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if !strings.Contains(out, "vmovups") {
		t.Errorf("missing vmovups:\n%s", out)
	}
	if !strings.Contains(out, "zmm0") {
		t.Errorf("missing zmm0 operand:\n%s", out)
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	build := func() *Disassembler {
		code := []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0xC3, 0x55, 0x48, 0x89, 0xE5, 0xC3}
		d := codeSection(SyntaxNASM, code)
		d.AddSymbol(1, 6, 0, 0, obj.ScopePublic, 1, "", "")
		d.AddRelocation(1, 1, 0, obj.RelDirect, 4, 1, 0)
		return d
	}
	a, b := build(), build()
	if err := a.Go(); err != nil {
		t.Fatal(err)
	}
	if err := b.Go(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Output(), b.Output()) {
		t.Error("two identical runs produced different output")
	}
	if a.symbols.Len() != b.symbols.Len() || a.funcs.Len() != b.funcs.Len() {
		t.Error("two identical runs produced different tables")
	}
}

func TestZeroLengthSection(t *testing.T) {
	d := New(SyntaxNASM)
	d.AddSection(nil, 0, 0, 0x1000, obj.SecCode, 0, 64, ".empty")
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d.Output()), ".empty") {
		t.Errorf("missing section header:\n%s", d.Output())
	}
}

func TestDataSectionRelocations(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x2A, 0x00, 0x00, 0x00}
	code := []byte{0xC3}
	d := codeSection(SyntaxNASM, code)
	d.AddSection(data, 8, 8, 0x2000, obj.SecData, 2, 64, ".data")
	d.AddSymbol(1, 0, 0, 0, obj.ScopePublic, 1, "fn", "")
	d.AddRelocation(2, 0, 0, obj.RelDirect, 4, 1, 0)
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if !strings.Contains(out, "dd") || !strings.Contains(out, "fn") {
		t.Errorf("relocated data item not symbolic:\n%s", out)
	}
}

func TestBSSSection(t *testing.T) {
	d := codeSection(SyntaxNASM, []byte{0xC3})
	d.AddSection(nil, 0, 64, 0x3000, obj.SecBSS, 3, 64, ".bss")
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d.Output()), "resb    64") {
		t.Errorf("missing bss reservation:\n%s", d.Output())
	}
}

func TestGrossInvariantErrors(t *testing.T) {
	d := New(SyntaxNASM)
	d.AddSection([]byte{0xC3}, 1, 1, 0, obj.SecCode, 0, 64, ".text")
	d.AddRelocation(3, 0, 0, obj.RelDirect, 4, 1, 0) // no such section
	if err := d.Go(); err == nil {
		t.Error("relocation into a missing section did not fail Go")
	}

	d2 := New(SyntaxNASM)
	d2.AddSection([]byte{0xC3, 0x00, 0x00, 0x00}, 4, 4, 0, obj.SecCode, 0, 64, ".text")
	d2.AddRelocation(1, 0, 0, obj.RelDirect, 4, 1, 0)
	d2.AddRelocation(1, 0, 0, obj.RelDirect, 4, 2, 0) // overlapping source
	if err := d2.Go(); err == nil {
		t.Error("overlapping relocation sources did not fail Go")
	}
}

func TestSymbolAtFunctionEndBelongsToNext(t *testing.T) {
	// f1: nop; ret; g: ret
	code := []byte{0x90, 0xC3, 0xC3}
	d := codeSection(SyntaxNASM, code)
	d.AddSymbol(1, 0, 2, 0, obj.ScopePublic, 1, "f1", "")
	d.AddSymbol(1, 2, 0, 0, obj.ScopePublic, 2, "g", "")
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	fi := d.funcs.FindAt(1, 2)
	if fi < 0 {
		t.Fatal("no function contains offset 2")
	}
	if got := d.funcs.At(fi).Start; got != 2 {
		t.Errorf("offset 2 attributed to function starting at %d, want 2", got)
	}
}

func TestPass2CursorReachesInitSize(t *testing.T) {
	code := []byte{0x90, 0x90, 0x48, 0x89, 0xC3, 0xC3}
	d := codeSection(SyntaxNASM, code)
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	// Every byte of the section appears in exactly one output record;
	// the final comment column carries the instruction offsets.
	out := string(d.Output())
	for _, off := range []string{"0000", "0001", "0002", "0005"} {
		if !strings.Contains(out, off+" _ ") {
			t.Errorf("missing record at offset %s:\n%s", off, out)
		}
	}
}

func TestSanitizedNameRendersConsistently(t *testing.T) {
	code := []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0xC3}
	d := codeSection(SyntaxNASM, code)
	d.AddSymbol(1, 5, 0, 0, obj.ScopePublic, 1, "odd<name>", "")
	d.AddRelocation(1, 1, 0, obj.RelDirect, 4, 1, 0)
	if err := d.Go(); err != nil {
		t.Fatal(err)
	}
	out := string(d.Output())
	if strings.Contains(out, "odd<name>") {
		t.Errorf("unsanitized name leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "odd_name_") {
		t.Errorf("sanitized name missing:\n%s", out)
	}
	if d.symbols.NamesChanged != 1 {
		t.Errorf("NamesChanged = %d, want 1", d.symbols.NamesChanged)
	}
}
