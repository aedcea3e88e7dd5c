package dis

import (
	"fmt"
	"strings"

	"disx86/internal/decode"
	"disx86/internal/opcode"
)

// instruction renders one decoded instruction at the fixed columns and
// appends the hex-bytes comment.
func (w *writer) instruction(in *decode.Inst) {
	w.tab(asmTab1)
	w.put(w.mnemonic(in))
	if w.d.syntax == SyntaxGAS {
		w.put(w.gasOpSuffix(in))
	}

	ops := w.operandList(in)
	if len(ops) > 0 {
		w.tab(asmTab2)
		w.put(strings.Join(ops, ", "))
	}

	w.tab(asmTab3)
	w.put(w.commentSep())
	w.putf("%04X _ ", in.Start)
	for p := in.Start; p < in.End && p < uint32(len(w.d.sec.Bytes)); p++ {
		w.putf("%02X", w.d.sec.Bytes[p])
		w.line.WriteByte(' ')
	}
	if in.Comment != "" {
		w.put(" " + in.Comment)
	}
	w.flush()
}

// operandList renders every operand slot into dialect order: as written
// for the Intel dialects, reversed for AT&T.
func (w *writer) operandList(in *decode.Inst) []string {
	var ops []string
	for i, t := range in.Ops {
		if t == 0 {
			continue
		}
		s := w.operand(in, t)
		if s == "" {
			continue
		}
		if i == 0 {
			s += w.maskDecoration(in)
		}
		ops = append(ops, s)
	}
	if bc := w.broadcastDecoration(in); bc != "" && len(ops) > 0 {
		ops[len(ops)-1] += bc
	}
	if w.d.syntax == SyntaxGAS {
		for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
			ops[i], ops[j] = ops[j], ops[i]
		}
	}
	return ops
}

// operand renders one operand slot.
func (w *writer) operand(in *decode.Inst, t uint32) string {
	if t&(opcode.OTImm|opcode.OTImm2) != 0 {
		return w.immOperand(in, t)
	}
	switch t & 0xF0000 {
	case opcode.OTOpcodeReg:
		return w.regOperand(in, t, in.ShortReg)
	case opcode.OTReg:
		return w.regOperand(in, t, in.Reg)
	case opcode.OTVexV:
		return w.regOperand(in, t, in.Vreg)
	case opcode.OTImmBits:
		v := w.d.fieldValue(in, in.ImmediateField, in.ImmediateFieldSize)
		return w.regOperand(in, t, uint32(v>>4)&0xF)
	case opcode.OTRM:
		// AT&T marks the target of an indirect jump or call with '*'.
		star := ""
		if k := t & 0xFF; w.d.syntax == SyntaxGAS && k >= 0x0B && k <= 0x0D &&
			in.Entry.Options&(opcode.OptUncond|opcode.OptSideFx) != 0 {
			star = "*"
		}
		if in.Mod == 3 {
			return star + w.regOperand(in, t, in.RM)
		}
		if w.d.syntax == SyntaxGAS {
			return star + w.gasMemOperand(in, t)
		}
		return w.memOperand(in, t)
	case opcode.OTDirectMem:
		return w.directMem(in, t)
	}
	// No runtime source: a hard-coded register or constant.
	if s := w.fixedOperand(in, t); s != "" {
		return s
	}
	return ""
}

// directMem renders the moffs direct memory operand.
func (w *writer) directMem(in *decode.Inst, t uint32) string {
	var target string
	if in.AddressRelocation >= 0 {
		target = w.relocTarget(in, in.AddressRelocation, in.AddressField, in.AddressFieldSize)
	} else {
		target = w.hex(uint64(w.d.fieldValue(in, in.AddressField, in.AddressFieldSize)) &
			maskBits(8*in.AddressFieldSize))
	}
	if w.d.syntax == SyntaxGAS {
		return target
	}
	return w.memSizePrefix(opcode.TypeSize(t&0xFFFF, in.OperandSize)) + "[" + target + "]"
}

// maskDecoration renders the EVEX mask register and zeroing suffix on the
// destination operand.
func (w *writer) maskDecoration(in *decode.Inst) string {
	if in.VexType < decode.VexEVEX || in.Kreg == 0 {
		return ""
	}
	s := fmt.Sprintf("{%s}", w.reg("k"+fmt.Sprint(in.Kreg)))
	if in.ZeroMasking {
		s += "{z}"
	}
	return s
}

// broadcastDecoration renders {1toN}, static rounding or the MVEX
// swizzle name on the last operand.
func (w *writer) broadcastDecoration(in *decode.Inst) string {
	switch {
	case in.Broadcast:
		vecsize := uint32(16) << in.VexL
		elem := in.OffsetMultiplier
		if elem == 0 {
			elem = 4
		}
		return fmt.Sprintf(" {1to%d}", vecsize/elem)
	case in.Rounding > 0 && in.Rounding <= len(opcode.EVEXRoundingNames):
		return fmt.Sprintf(" {%s}", opcode.EVEXRoundingNames[in.Rounding-1])
	case in.Swiz != nil && in.Swiz.Name != "":
		return fmt.Sprintf(" {%s}", in.Swiz.Name)
	}
	return ""
}

// gasOpSuffix returns the AT&T size suffix for integer instructions whose
// entry allows a 66 or REX.W operand size, register forms included
// (movq %rax, %rbx); jumps and entries with their own suffix rule get none.
func (w *writer) gasOpSuffix(in *decode.Inst) string {
	e := in.Entry
	if e.Options&opcode.OptSuffix != 0 || e.Options&opcode.OptNoSize != 0 {
		return ""
	}
	if e.Prefixes&opcode.PJump != 0 {
		return ""
	}
	if e.Prefixes&(opcode.P66Int|opcode.PWSize) == 0 {
		return ""
	}
	// Only integer forms take a suffix letter.
	for _, t := range in.Ops {
		if t == 0 {
			continue
		}
		if k := t & 0xFF; k >= 0x40 && k < 0xA0 {
			return ""
		}
	}
	var bits uint32
	for _, t := range in.Ops {
		if t&0xF0000 != 0 && !opcode.IsImmediate(t) {
			bits = w.operandBits(in, t)
			break
		}
	}
	if bits == 0 {
		return ""
	}
	return gasSuffix(bits / 8)
}

// gasMemOperand renders the r/m memory operand in AT&T form:
// seg:disp(base,index,scale).
func (w *writer) gasMemOperand(in *decode.Inst, t uint32) string {
	var b strings.Builder
	if seg := in.Prefixes[decode.CatSeg]; seg != 0 && !w.segIsDefault(in, seg) {
		b.WriteString(w.segName(seg))
		b.WriteString(":")
	}

	if in.RIPRelative() {
		var target string
		if in.AddressRelocation >= 0 {
			target = w.relocTarget(in, in.AddressRelocation, in.AddressField, in.AddressFieldSize)
		} else {
			disp := w.d.fieldValue(in, in.AddressField, in.AddressFieldSize)
			tgt := int64(in.End) + disp
			if tgt >= 0 && uint32(tgt) <= w.d.sec.TotalSize {
				target = w.symbolAt(w.d.section, uint32(tgt))
			} else {
				target = w.here() + w.signedTerm(disp)
			}
		}
		b.WriteString(target)
		b.WriteString("(%rip)")
		return b.String()
	}

	// Displacement first.
	if in.AddressFieldSize > 0 {
		if in.AddressRelocation >= 0 {
			b.WriteString(w.relocTarget(in, in.AddressRelocation, in.AddressField, in.AddressFieldSize))
		} else {
			disp := w.d.fieldValue(in, in.AddressField, in.AddressFieldSize)
			if in.AddressFieldSize == 1 && in.OffsetMultiplier > 1 {
				disp *= int64(in.OffsetMultiplier)
			}
			if disp < 0 {
				b.WriteString("-" + w.hex(uint64(-disp)))
			} else {
				b.WriteString(w.hex(uint64(disp)))
			}
		}
	}

	if in.BaseReg != 0 || in.IndexReg != 0 {
		b.WriteString("(")
		if in.BaseReg != 0 {
			b.WriteString(w.reg(opcode.GPName(in.BaseReg-1, in.AddressSize, true)))
		}
		if in.IndexReg != 0 {
			b.WriteString(",")
			b.WriteString(w.reg(opcode.GPName(in.IndexReg-1, in.AddressSize, true)))
			fmt.Fprintf(&b, ",%d", 1<<in.Scale)
		}
		b.WriteString(")")
	}
	return b.String()
}

// errorTexts, warningTexts and warning2Texts translate bit flags to output
// commentary.
var errorTexts = []struct {
	bit  uint32
	text string
}{
	{decode.ErrIllegal, "illegal opcode"},
	{decode.ErrTruncated, "instruction truncated at end of section"},
	{decode.ErrReserved, "reserved VEX/EVEX bits set"},
	{decode.ErrOnly64, "opcode is only valid in 64-bit mode"},
	{decode.ErrNot64, "opcode is not valid in 64-bit mode"},
	{decode.ErrLock, "lock prefix not allowed here"},
	{decode.ErrVexMissing, "instruction requires a VEX prefix"},
}

var warningTexts = []struct {
	bit  uint32
	text string
}{
	{decode.WarnPrefixConflict, "conflicting prefixes in the same category"},
	{decode.WarnRedundant, "redundant prefix"},
	{decode.Warn66Jump, "operand size prefix on a jump"},
	{decode.WarnAddrStack, "address size prefix on a stack operation"},
	{decode.WarnRepMisuse, "repeat prefix has no meaning here"},
	{decode.WarnShorterExists, "a shorter encoding of this instruction exists"},
	{decode.WarnMisaligned, "vector memory operand may be unaligned"},
}

var warning2Texts = []struct {
	bit  uint32
	text string
}{
	{decode.WarnUndocumented, "undocumented opcode"},
	{decode.WarnDubiousCode, "this may be data rather than code"},
	{decode.WarnUnreachable, "unreachable code after unconditional branch"},
	{decode.WarnJumpIntoFunc, "jump into the middle of another function"},
}

// writeErrorsAndWarnings emits one comment line per active flag.
func (w *writer) writeErrorsAndWarnings(in *decode.Inst) {
	for _, e := range errorTexts {
		if in.Errors&e.bit != 0 {
			w.put(w.commentSep() + "Error: " + e.text)
			w.flush()
			w.d.countErrors++
		}
	}
	for _, e := range warningTexts {
		if in.Warnings1&e.bit != 0 {
			w.put(w.commentSep() + "Note: " + e.text)
			w.flush()
			w.d.countWarns++
		}
	}
	for _, e := range warning2Texts {
		if in.Warnings2&e.bit != 0 {
			w.put(w.commentSep() + "Warning: " + e.text)
			w.flush()
			w.d.countWarns++
		}
	}
}
