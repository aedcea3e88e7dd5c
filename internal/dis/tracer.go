package dis

import (
	"disx86/internal/decode"
	"disx86/internal/obj"
	"disx86/internal/opcode"
)

// Register tracer tags. The tracer is a small abstract-interpretation
// lattice over the 16 general-purpose registers; it is advisory only and
// consumers must tolerate TrUnknown everywhere.
const (
	TrUnknown  = 0
	TrConstant = 1 // Value holds the constant
	TrAddress  = 2 // Value holds the old index of the symbol whose address was taken
	TrTable    = 3 // Value holds the old index of a table of code addresses
)

// Tracer holds one tag byte and one 32-bit payload per register.
// Lifetime is one linear walk over one function; it resets at every
// label and at every control-flow discontinuity.
type Tracer struct {
	Regist [16]uint8
	Value  [16]uint32
}

// Reset forgets everything.
func (t *Tracer) Reset() {
	for i := range t.Regist {
		t.Regist[i] = TrUnknown
		t.Value[i] = 0
	}
}

// Set records a tag and payload for a register.
func (t *Tracer) Set(reg uint32, tag uint8, value uint32) {
	if reg < 16 {
		t.Regist[reg] = tag
		t.Value[reg] = value
	}
}

// Kill forgets one register.
func (t *Tracer) Kill(reg uint32) {
	if reg < 16 {
		t.Regist[reg] = TrUnknown
		t.Value[reg] = 0
	}
}

// Tag returns the tag and payload for a register.
func (t *Tracer) Tag(reg uint32) (uint8, uint32) {
	if reg >= 16 {
		return TrUnknown, 0
	}
	return t.Regist[reg], t.Value[reg]
}

// updateTracer digests one decoded instruction. Only the handful of
// patterns that matter for jump-table and import recognition are
// modeled; every other write invalidates its destination register.
func (d *Disassembler) updateTracer(in *decode.Inst) {
	if in.Entry == nil || in.Entry.Name == "" {
		return
	}
	dst, isGP := gpDest(in)

	switch in.Entry.Name {
	case "mov":
		if !isGP {
			return
		}
		switch {
		case in.ImmediateFieldSize > 0 && in.ImmediateRelocation >= 0:
			// mov reg, offset sym
			rel := d.relocs.At(in.ImmediateRelocation)
			d.tracer.Set(dst, TrAddress, rel.TargetOldIndex)
		case in.ImmediateFieldSize > 0 && !in.HasMem():
			d.tracer.Set(dst, TrConstant, uint32(d.fieldValue(in, in.ImmediateField, in.ImmediateFieldSize)))
		case in.HasMem() && in.AddressRelocation >= 0:
			// mov reg, [sym]: a load from a table of addresses keeps the
			// table tag, anything else is unknown.
			rel := d.relocs.At(in.AddressRelocation)
			if ti := d.symbols.Old2New(rel.TargetOldIndex); ti >= 0 {
				sym := d.symbols.At(ti)
				if sec := d.sections.Get(sym.Section); sec != nil && sec.Type&0xFF == obj.SecConst {
					d.tracer.Set(dst, TrTable, rel.TargetOldIndex)
					return
				}
			}
			d.tracer.Kill(dst)
		default:
			d.tracer.Kill(dst)
		}
	case "lea":
		if !isGP {
			return
		}
		if in.AddressRelocation >= 0 {
			rel := d.relocs.At(in.AddressRelocation)
			d.tracer.Set(dst, TrAddress, rel.TargetOldIndex)
			return
		}
		d.tracer.Kill(dst)
	case "xor":
		// xor reg, reg zeroes the register.
		if isGP && in.Mod == 3 && in.Reg == in.RM {
			d.tracer.Set(dst, TrConstant, 0)
			return
		}
		d.tracer.Kill(dst)
	default:
		if isGP && in.Entry.Options&opcode.OptNoDest == 0 {
			d.tracer.Kill(dst)
		}
	}
}

// gpDest returns the general-purpose destination register of the
// instruction, if it has one.
func gpDest(in *decode.Inst) (uint32, bool) {
	t := in.Ops[0]
	if t == 0 {
		return 0, false
	}
	k := t & 0xFF
	if k == 0 || k > 0x0A {
		return 0, false
	}
	switch t & 0xF0000 {
	case opcode.OTReg:
		return in.Reg, true
	case opcode.OTRM:
		if in.Mod == 3 {
			return in.RM, true
		}
		return 0, false
	case opcode.OTOpcodeReg:
		return in.ShortReg, true
	}
	return 0, false
}

// fieldValue reads a little-endian field of the instruction,
// sign-extended to 64 bits.
func (d *Disassembler) fieldValue(in *decode.Inst, field, size uint32) int64 {
	b := d.sec.Bytes
	off := in.Start + field
	var v uint64
	for i := uint32(0); i < size && off+i < uint32(len(b)); i++ {
		v |= uint64(b[off+i]) << (8 * i)
	}
	// sign extend
	if size > 0 && size < 8 {
		shift := 64 - 8*size
		return int64(v<<shift) >> shift
	}
	return int64(v)
}
