package dis

import (
	"fmt"
	"strings"

	"disx86/internal/decode"
	"disx86/internal/obj"
	"disx86/internal/opcode"
)

// Output tabulator columns: mnemonic, first operand, comment.
const (
	asmTab1 = 8
	asmTab2 = 16
	asmTab3 = 56
)

// writer renders one line at a time into the output buffer. The dialect
// dispatch lives in the few methods whose output differs; everything
// else is shared.
type writer struct {
	d    *Disassembler
	line strings.Builder
}

func (w *writer) put(s string)            { w.line.WriteString(s) }
func (w *writer) putf(f string, a ...any) { fmt.Fprintf(&w.line, f, a...) }

// tab pads the current line with spaces to the given column.
func (w *writer) tab(col int) {
	n := w.line.Len()
	if n >= col {
		w.line.WriteByte(' ')
		return
	}
	for ; n < col; n++ {
		w.line.WriteByte(' ')
	}
}

// flush terminates the line.
func (w *writer) flush() {
	w.d.out.WriteString(w.line.String())
	w.d.out.WriteByte('\n')
	w.line.Reset()
}

// commentSep returns the dialect comment separator.
func (w *writer) commentSep() string {
	if w.d.syntax == SyntaxGAS {
		return "# "
	}
	return "; "
}

// here returns the dialect current-address token.
func (w *writer) here() string {
	if w.d.syntax == SyntaxGAS {
		return "."
	}
	return "$"
}

// hex renders an unsigned constant in the dialect's hexadecimal form.
func (w *writer) hex(v uint64) string {
	if w.d.syntax == SyntaxMASM {
		s := fmt.Sprintf("%Xh", v)
		if s[0] > '9' {
			s = "0" + s
		}
		return s
	}
	return fmt.Sprintf("0x%x", v)
}

// signedTerm renders "+n" or "-n" for a displacement.
func (w *writer) signedTerm(v int64) string {
	if v < 0 {
		return "-" + w.hex(uint64(-v))
	}
	return "+" + w.hex(uint64(v))
}

// sizeName returns the operand-size keyword for a byte count.
func sizeName(n uint32) string {
	switch n {
	case 1:
		return "byte"
	case 2:
		return "word"
	case 4:
		return "dword"
	case 6:
		return "fword"
	case 8:
		return "qword"
	case 10:
		return "tbyte"
	case 16:
		return "xmmword"
	case 32:
		return "ymmword"
	case 64:
		return "zmmword"
	}
	return ""
}

// gasSuffix returns the AT&T size suffix letter for a byte count.
func gasSuffix(n uint32) string {
	switch n {
	case 1:
		return "b"
	case 2:
		return "w"
	case 4:
		return "l"
	case 8:
		return "q"
	}
	return ""
}

// memSizePrefix renders the size override for a memory operand in the
// Intel dialects.
func (w *writer) memSizePrefix(n uint32) string {
	name := sizeName(n)
	if name == "" {
		return ""
	}
	if w.d.syntax == SyntaxMASM {
		return name + " ptr "
	}
	return name + " "
}

// reg renders a register name per dialect (% prefix for GAS).
func (w *writer) reg(name string) string {
	if w.d.syntax == SyntaxGAS {
		return "%" + name
	}
	return name
}

// operandBits resolves the size in bits of an integer operand type.
func (w *writer) operandBits(in *decode.Inst, t uint32) uint32 {
	k := t & 0xFF
	switch k {
	case 1:
		return 8
	case 2:
		return 16
	case 3:
		return 32
	case 4:
		return 64
	case 8:
		if in.OperandSize == 16 {
			return 16
		}
		return 32
	case 0x0A, 0x0B, 0x0C:
		// Default size follows the address size: 64 bits in 64-bit mode
		// unless a 66 prefix shrinks it.
		if w.d.sec.WordSize == 64 {
			if in.Prefixes[decode.CatOpSize] == 0x66 {
				return 16
			}
			return 64
		}
		return in.OperandSize
	}
	return in.OperandSize
}

// vecBytes resolves the vector size in bytes of an operand type.
func (w *writer) vecBytes(in *decode.Inst, t uint32) uint32 {
	switch t & 0xF00 {
	case 0x300:
		return 8
	case 0x400:
		return 16
	case 0x500:
		return 32
	case 0x600:
		return 64
	case 0xF00:
		n := (uint32(16) << in.VexL) / 2
		if n < 16 {
			n = 16
		}
		return n
	case 0x100:
		if in.VexType == decode.VexNone && in.Prefixes[decode.CatType] != 0x66 {
			return 8 // MMX form
		}
		return 16 << in.VexL
	case 0x200:
		return 16 << in.VexL
	}
	return 16
}

// regOperand renders a register operand of the given type descriptor.
func (w *writer) regOperand(in *decode.Inst, t, r uint32) string {
	k := t & 0xFF
	switch {
	case k >= 0x40 && k <= 0x45:
		return w.stReg(r)
	case k >= 0x48 && k <= 0x51 || t&0xF00 != 0:
		return w.reg(opcode.VecName(r, w.vecBytes(in, t)))
	case k == 0x91:
		return w.reg(opcode.RegNamesSeg[r&7])
	case k == 0x92:
		return w.reg(opcode.RegNamesCR[r&15])
	case k == 0x93:
		return w.reg("dr" + fmt.Sprint(r&15))
	case k == 0x95:
		return w.reg("k" + fmt.Sprint(r&7))
	case k == 0x98:
		return w.reg("bnd" + fmt.Sprint(r&3))
	}
	bits := w.operandBits(in, t)
	return w.reg(opcode.GPName(r, bits, in.RexAny()))
}

// stReg renders an x87 stack register per dialect.
func (w *writer) stReg(r uint32) string {
	r &= 7
	switch w.d.syntax {
	case SyntaxNASM:
		return fmt.Sprintf("st%d", r)
	case SyntaxGAS:
		if r == 0 {
			return "%st"
		}
		return fmt.Sprintf("%%st(%d)", r)
	}
	return fmt.Sprintf("st(%d)", r)
}

// fixedOperand renders a hard-coded operand kind (al, ax, cl, 1, ...).
func (w *writer) fixedOperand(in *decode.Inst, t uint32) string {
	switch t & 0xFF {
	case 0xA1:
		return w.reg("al")
	case 0xA2:
		return w.reg("ax")
	case 0xA3:
		return w.reg("eax")
	case 0xA4:
		return w.reg("rax")
	case 0xA8:
		if in.OperandSize == 16 {
			return w.reg("ax")
		}
		return w.reg("eax")
	case 0xA9:
		return w.reg(opcode.GPName(0, w.operandBits(in, 9), false))
	case 0xAE:
		return w.reg("xmm0")
	case 0xAF:
		return w.stReg(0)
	case 0xB1:
		if w.d.syntax == SyntaxGAS {
			return "$1"
		}
		return "1"
	case 0xB2:
		return w.reg("dx")
	case 0xB3:
		return w.reg("cl")
	}
	return ""
}

// symbolAt resolves a (section, offset) to display text: the symbol name
// when one exists, a hex address otherwise.
func (w *writer) symbolAt(section int32, offset uint32) string {
	if first, _, ok := w.d.symbols.FindByAddress(section, offset); ok {
		w.d.symbols.At(first).Scope |= obj.ScopeWritten
		return w.d.symbols.Name(first)
	}
	return w.hex(uint64(offset))
}

// relocTarget renders a relocation target plus the recovered inline
// addend: name, name+delta or name-delta.
func (w *writer) relocTarget(in *decode.Inst, ri int32, field, size uint32) string {
	return w.relocText(ri, w.d.fieldValue(in, field, size))
}

// relocText is the shared rendering for instruction fields and data items.
func (w *writer) relocText(ri int32, inline int64) string {
	rel := w.d.relocs.At(ri)
	delta := inline - int64(rel.Addend)

	var name string
	if si := w.d.symbols.Old2New(rel.TargetOldIndex); si >= 0 {
		w.d.symbols.At(si).Scope |= obj.ScopeWritten
		name = w.d.symbols.Name(si)
	} else {
		name = w.hex(uint64(uint32(inline)))
		delta = 0
	}
	if delta != 0 {
		name += w.signedTerm(delta)
	}
	return name
}

// immOperand renders an immediate operand, binding a relocation when one
// covers the field.
func (w *writer) immOperand(in *decode.Inst, t uint32) string {
	second := t&opcode.OTImm2 != 0
	field, size := in.ImmediateField, in.ImmediateFieldSize
	if second {
		// The second part of a split field (enter m, n).
		size = 1
		field += in.ImmediateFieldSize - 1
	} else if in.Ops[4]&opcode.OTImm2 != 0 || hasSecondImm(in) {
		size--
	}

	if opcode.IsJumpTarget(t) {
		return w.jumpTarget(in, field, size)
	}

	if !second && in.ImmediateRelocation >= 0 {
		s := w.relocTarget(in, in.ImmediateRelocation, field, size)
		if w.d.syntax == SyntaxGAS {
			return "$" + s
		}
		return s
	}

	v := w.d.fieldValue(in, field, size)
	var s string
	k := t & 0xFF
	switch {
	case k >= 0x21 && k <= 0x29: // signed
		if v < 0 {
			s = "-" + w.hex(uint64(-v))
		} else {
			s = w.hex(uint64(v))
		}
	case k >= 0x31 && k <= 0x39: // hexadecimal
		s = w.hex(uint64(v) & (1<<(8*size) - 1))
	default: // unsigned
		s = w.hex(uint64(v) & (1<<(8*size) - 1))
	}
	if w.d.syntax == SyntaxGAS {
		return "$" + s
	}
	return s
}

func hasSecondImm(in *decode.Inst) bool {
	for _, t := range in.Ops {
		if t&opcode.OTImm2 != 0 {
			return true
		}
	}
	return false
}

// jumpTarget renders a direct jump or call destination.
func (w *writer) jumpTarget(in *decode.Inst, field, size uint32) string {
	if in.ImmediateRelocation >= 0 {
		return w.relocTarget(in, in.ImmediateRelocation, field, size)
	}
	delta := w.d.fieldValue(in, field, size)
	t := int64(in.End) + delta
	if t >= 0 && uint32(t) <= w.d.sec.TotalSize {
		return w.symbolAt(w.d.section, uint32(t))
	}
	return w.here() + w.signedTerm(delta+int64(in.End-in.Start))
}

// memOperand renders the r/m memory operand for the Intel dialects; the
// AT&T form is gasMemOperand in instr.go.
func (w *writer) memOperand(in *decode.Inst, t uint32) string {
	var b strings.Builder

	if w.d.syntax != SyntaxGAS && in.Entry.Options&opcode.OptNoSize == 0 {
		b.WriteString(w.memSizePrefix(w.memBytes(in, t)))
	}
	if seg := in.Prefixes[decode.CatSeg]; seg != 0 && !w.segIsDefault(in, seg) {
		b.WriteString(w.segName(seg))
		b.WriteString(":")
	}
	b.WriteString("[")

	terms := 0
	abits := in.AddressSize
	if in.RIPRelative() {
		// Displacement is relative to the instruction end; resolve to a
		// symbol and render per dialect.
		b.WriteString(w.ripTerm(in))
		b.WriteString("]")
		return b.String()
	}
	if in.BaseReg != 0 {
		b.WriteString(w.reg(opcode.GPName(in.BaseReg-1, abits, true)))
		terms++
	}
	if in.IndexReg != 0 {
		if terms > 0 {
			b.WriteString("+")
		}
		b.WriteString(w.reg(opcode.GPName(in.IndexReg-1, abits, true)))
		if in.Scale > 0 {
			fmt.Fprintf(&b, "*%d", 1<<in.Scale)
		}
		terms++
	}
	if in.AddressFieldSize > 0 {
		if in.AddressRelocation >= 0 {
			if terms > 0 {
				b.WriteString("+")
			}
			b.WriteString(w.relocTarget(in, in.AddressRelocation, in.AddressField, in.AddressFieldSize))
		} else {
			disp := w.d.fieldValue(in, in.AddressField, in.AddressFieldSize)
			if in.AddressFieldSize == 1 && in.OffsetMultiplier > 1 {
				disp *= int64(in.OffsetMultiplier)
			}
			if terms == 0 {
				b.WriteString(w.hex(uint64(disp) & maskBits(abits)))
			} else if disp != 0 {
				b.WriteString(w.signedTerm(disp))
			}
		}
	} else if terms == 0 {
		b.WriteString(w.hex(0))
	}
	b.WriteString("]")
	return b.String()
}

// memBytes resolves the size of the memory operand in bytes.
func (w *writer) memBytes(in *decode.Inst, t uint32) uint32 {
	if t&0xF00 != 0 {
		return w.vecBytes(in, t)
	}
	k := t & 0xFF
	switch k {
	case 0x0B, 0x0C:
		return w.operandBits(in, t) / 8
	case 0x0D:
		return w.operandBits(in, 9)/8 + 2
	case 0x40, 0x48:
		return 0 // unknown float size, no override
	}
	if n := opcode.TypeSize(t&0xFFFF, in.OperandSize); n > 0 {
		return n
	}
	return 0
}

// ripTerm renders the RIP-relative reference inside brackets.
func (w *writer) ripTerm(in *decode.Inst) string {
	var target string
	if in.AddressRelocation >= 0 {
		target = w.relocTarget(in, in.AddressRelocation, in.AddressField, in.AddressFieldSize)
	} else {
		disp := w.d.fieldValue(in, in.AddressField, in.AddressFieldSize)
		t := int64(in.End) + disp
		if t >= 0 && uint32(t) <= w.d.sec.TotalSize {
			target = w.symbolAt(w.d.section, uint32(t))
		} else {
			target = w.here() + w.signedTerm(disp)
		}
	}
	if w.d.syntax == SyntaxNASM {
		return "rel " + target
	}
	return target + "+rip"
}

func (w *writer) segName(prefix uint8) string {
	switch prefix {
	case 0x26:
		return w.reg("es")
	case 0x2E:
		return w.reg("cs")
	case 0x36:
		return w.reg("ss")
	case 0x64:
		return w.reg("fs")
	case 0x65:
		return w.reg("gs")
	}
	return w.reg("ds")
}

// segIsDefault reports whether the segment prefix matches the default
// segment for the addressing form, in which case it is not rendered.
func (w *writer) segIsDefault(in *decode.Inst, seg uint8) bool {
	if w.d.sec.WordSize == 64 {
		// cs/ss/ds/es are ignored in 64-bit mode.
		return seg != 0x64 && seg != 0x65
	}
	base := in.BaseReg - 1
	if in.BaseReg != 0 && (base == 4 || base == 5) {
		return seg == 0x36 // bp/sp default to ss
	}
	return seg == 0x3E
}

// mnemonic builds the full instruction name: v prefix, size or type
// suffix, per the entry's options and allowed-prefix class.
func (w *writer) mnemonic(in *decode.Inst) string {
	e := in.Entry
	name := e.Name
	if e.Options&opcode.OptVPrefix != 0 && in.VexType != decode.VexNone {
		name = "v" + name
	}
	if e.Options&opcode.OptSuffix != 0 {
		name += w.suffix(in)
	}
	return name
}

// suffix derives the mnemonic suffix from the prefix class of the entry.
func (w *writer) suffix(in *decode.Inst) string {
	e := in.Entry
	p := e.Prefixes
	tp := in.Prefixes[decode.CatType]
	wBit := in.Prefixes[decode.CatRex]&decode.RexW != 0
	switch {
	case p&opcode.PVecPfx == opcode.PVecPfx:
		switch tp {
		case 0x66:
			return "pd"
		case 0xF2:
			return "sd"
		case 0xF3:
			return "ss"
		}
		return "ps"
	case p&opcode.P66Vec != 0:
		if tp == 0x66 {
			return "pd"
		}
		return "ps"
	case p&opcode.PWVecSize == opcode.PWVecSize:
		if wBit {
			return "q"
		}
		return "d"
	case p&opcode.P66Int != 0:
		t := uint32(9)
		if p&opcode.PStack != 0 {
			t = 0x0A
		}
		switch w.operandBits(in, t) {
		case 16:
			return "w"
		case 64:
			return "q"
		}
		return "d"
	}
	return ""
}

// maskBits returns the value mask for the given bit width.
func maskBits(bits uint32) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}
