// Package decode implements the single-instruction x86 decoder: prefix
// scan, opcode map walk, operand extraction, EVEX/MVEX post-processing
// and relocation binding. Decoding is pure: the same bytes and mode
// always produce an identical record, and failures surface as error bits
// on the record, never as panics or halted analysis.
package decode

import "disx86/internal/opcode"

// Prefix category slots, one byte stored per category. A second prefix in
// the same category bumps the category's conflict counter.
const (
	CatSeg    = 0 // segment override (26, 2E, 36, 3E, 64, 65)
	CatAddr   = 1 // address size (67)
	CatLock   = 2 // LOCK (F0)
	CatRep    = 3 // F2/F3, or the VEX/EVEX/XOP prefix byte
	CatOpSize = 4 // operand size (66); REX.W is the RexW flag in CatRex
	CatType   = 5 // operand type (66, F2, F3)
	CatVex    = 6 // not written; VEX map and L/LL bits are in Inst.VexMap and Inst.VexL
	CatRex    = 7 // REX-class flag bits, see Rex constants
)

// Flag bits stored in Prefixes[CatRex].
const (
	RexB   = 0x01
	RexX   = 0x02
	RexR   = 0x04
	RexW   = 0x08
	Rex2B  = 0x10 // 2-byte VEX prefix
	Rex3B  = 0x20 // 3- or 4-byte VEX/EVEX prefix
	RexRex = 0x40 // plain REX prefix
	RexXOP = 0x80 // XOP prefix
)

// VEX prefix kinds.
const (
	VexNone = 0
	VexVEX  = 1
	VexEVEX = 2
	VexMVEX = 3
)

// Error bits. An instruction with any error bit set cannot execute as
// decoded; the analysis reclassifies the bytes as data.
const (
	ErrIllegal    = 0x01 // no opcode table entry
	ErrTruncated  = 0x02 // instruction extends past the initialized bytes
	ErrReserved   = 0x04 // reserved VEX/EVEX bit set
	ErrOnly64     = 0x08 // 64-bit-only opcode outside 64-bit mode
	ErrNot64      = 0x10 // opcode not available in 64-bit mode
	ErrLock       = 0x20 // LOCK prefix on a non-lockable instruction
	ErrVexMissing = 0x40 // entry requires a VEX/EVEX prefix
)

// Warnings1: conditions that may be intentional but are suboptimal.
const (
	WarnPrefixConflict = 0x01 // two prefixes in the same category
	WarnRedundant      = 0x02 // meaningless or redundant prefix
	Warn66Jump         = 0x04 // 66 prefix applied to a jump
	WarnAddrStack      = 0x08 // address size prefix on a stack operation
	WarnRepMisuse      = 0x10 // F2/F3 outside its allowed contexts
	WarnShorterExists  = 0x20 // shorter encoding of the same instruction exists
	WarnMisaligned     = 0x40 // vector memory operand possibly misaligned
)

// Warnings2: conditions suggesting the bytes are misinterpreted.
const (
	WarnUndocumented = 0x01 // undocumented opcode
	WarnDubiousCode  = 0x02 // bytes may be data interpreted as code
	WarnUnreachable  = 0x04 // code after unconditional branch without label
	WarnJumpIntoFunc = 0x08 // jump into the middle of another function
)

// MFlags bits describing the memory operand shape.
const (
	MemHasMem  = 0x01
	MemHasModRM = 0x02
	MemHasSIB  = 0x04
	MemHasVex  = 0x08
	MemRIPRel  = 0x100
)

// Inst is the decoded-instruction record, reset for every decode.
// Offsets are section-relative byte positions.
type Inst struct {
	Entry *opcode.Def // selected terminal opcode entry

	Start uint32 // first byte of the instruction
	End   uint32 // one past the last byte

	Prefixes  [8]uint8 // last prefix seen per category
	Conflicts [8]uint8 // extra prefixes seen per category

	Warnings1 uint32
	Warnings2 uint32
	Errors    uint32

	AddressSize uint32 // 16, 32 or 64
	OperandSize uint32 // 16, 32 or 64

	Mod, Reg, RM uint32 // modrm fields after REX/VEX extension
	MFlags       uint32
	BaseReg      uint32 // base register + 1, 0 = none
	IndexReg     uint32 // index register + 1, 0 = none
	Scale        uint32 // scale = 1 << Scale

	VexType uint32 // VexNone..VexMVEX
	VexMap  uint32 // VEX.mmmmm / XOP.mmmmm
	VexL    uint32 // VEX.L or EVEX.LL (0..3)
	Vreg    uint32 // VEX.vvvv operand register
	Kreg    uint32 // EVEX.aaa / MVEX.kkk mask register
	Esss    uint32 // EVEX z/LL/b/aaa byte, MVEX E/sss bits

	Swiz             *opcode.SwizSpec // selected MVEX swizzle entry
	OffsetMultiplier uint32           // scaling of 1-byte compressed displacement
	Broadcast        bool
	Rounding         int // static rounding mode + 1, 0 = none
	ZeroMasking      bool

	Ops [5]uint32 // operand descriptors: dest, src1, src2, src3, imm

	ShortReg uint32 // register number taken from the opcode byte itself

	// PrefixClassUsed is set when the 66/F2/F3 prefix selected the map
	// entry through a prefix-class table link, so it is not redundant.
	PrefixClassUsed bool

	OpcodeStart1 uint32 // first opcode byte, after prefixes
	OpcodeStart2 uint32 // last opcode byte, before modrm and operands

	AddressField      uint32 // start of displacement/address field, 0 = none
	AddressFieldSize  uint32
	AddressRelocation int32 // relocation index bound to the field, -1 = none

	ImmediateField      uint32
	ImmediateFieldSize  uint32
	ImmediateRelocation int32

	Comment string // extra per-opcode comment
}

// HasMem reports whether the instruction has a memory operand.
func (in *Inst) HasMem() bool { return in.MFlags&MemHasMem != 0 }

// RIPRelative reports RIP-relative addressing.
func (in *Inst) RIPRelative() bool { return in.MFlags&MemRIPRel != 0 }

// RexAny reports whether any REX-class prefix was present, which switches
// the 8-bit register names to their uniform forms.
func (in *Inst) RexAny() bool { return in.Prefixes[CatRex] != 0 }

// Len returns the instruction length in bytes.
func (in *Inst) Len() uint32 { return in.End - in.Start }

// IsUncond reports an unconditional control transfer (jmp, ret, ud2...).
func (in *Inst) IsUncond() bool {
	return in.Entry != nil && in.Entry.Options&opcode.OptUncond != 0
}

// IsFiller reports a NOP or other filler instruction.
func (in *Inst) IsFiller() bool {
	return in.Entry != nil && in.Entry.Options&opcode.OptFiller != 0
}
