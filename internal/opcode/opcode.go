// Package opcode holds the static x86 opcode table forest.
//
// The instruction space is modeled as a set of tables linked by a typed
// discriminator: a decode starts in the one-byte map and follows Link
// fields until it reaches a terminal entry (Link == LinkNone). Links are
// table indices, never pointers, so the whole forest is read-only static
// data.
package opcode

// LinkKind tells the decoder how to index the next table.
// The set is closed; the decoder dispatches over it exhaustively.
type LinkKind uint8

const (
	LinkNone      LinkKind = iota // terminal entry
	LinkByte                      // next code byte (256 entries)
	LinkReg                       // modrm.reg (8 entries)
	LinkMod                       // mod<3 vs mod==3 (2 entries: memory, register)
	LinkModReg                    // mod<3/reg then mod==3/reg (16 entries)
	LinkRM                        // modrm.rm (8 entries)
	LinkImmByte                   // trailing immediate byte after operands
	LinkMode                      // CPU mode (0: 16 bit, 1: 32 bit, 2: 64 bit)
	LinkOpSize                    // operand size (0: 16, 1: 32, 2: 64)
	LinkPrefix                    // prefix class (0: none, 1: 66, 2: F2, 3: F3)
	LinkAddrSize                  // address size (0: 16, 1: 32, 2: 64)
	LinkVexL                      // 0: no VEX, 1: VEX.L=0, 2: VEX.L=1, 3: EVEX.LL=2, 4: EVEX.LL=3
	LinkVexW                      // VEX.W bit (2 entries)
	LinkVecSize                   // vector size by VEX.L/EVEX.LL (0: 128, 1: 256, 2: 512, 3: 1024)
	LinkVexShort                  // 0: VEX2/VEX3 or none, 1: EVEX or MVEX
	LinkMvexE                     // MVEX.E bit (2 entries)
	LinkDialect                   // assembly dialect (0: MASM, 1: NASM, 2: GAS)
	LinkByteAfter                 // code byte after prefixes (256 entries)
)

// Def is one entry in an opcode table.
//
// The numeric fields follow the objconv encoding so that the tables can be
// written as bare hex columns; see the constant blocks below for the bit
// meanings. When Link is nonzero, LinkTab is an index into Tables and the
// operand fields describe whatever the link rule needs (an immediate to
// consume for LinkImmByte, for example).
type Def struct {
	Name     string
	Set      uint32 // instruction set tag, SetXXX
	Prefixes uint32 // allowed-prefix bitmap, PXXX
	Format   uint16 // instruction format, FXXX
	Dest     uint16 // operand type descriptors, OTXXX
	Src1     uint16
	Src2     uint16
	Src3     uint16
	EVEX     uint16 // EVEX z/LL/b/aaa interpretation + offset multiplier rule
	MVEX     uint16 // MVEX sss/E/kkk interpretation
	Link     LinkKind
	LinkTab  uint16 // index into Tables when Link != LinkNone
	Options  uint16 // OptXXX
}

// Instruction set tags. Values below 0x100 order the Intel baseline and
// SIMD generations; the high bits carry orthogonal exclusions.
const (
	Set8086    = 0x00
	Set80186   = 0x01
	Set80286   = 0x02
	Set80386   = 0x03
	Set80486   = 0x04
	SetP5      = 0x05
	SetP6      = 0x06
	SetMMX     = 0x07
	SetP2      = 0x08
	SetSSE     = 0x11
	SetSSE2    = 0x12
	SetSSE3    = 0x13
	SetSSSE3   = 0x14
	SetSSE41   = 0x15
	SetSSE42   = 0x16
	SetAES     = 0x17
	SetCLMUL   = 0x18
	SetAVX     = 0x19
	SetFMA3    = 0x1A
	SetAVX2    = 0x1C
	SetBMI     = 0x1D
	SetAVX512F = 0x20
	SetX87     = 0x100
	Set387     = 0x101
	SetPriv    = 0x800
	Set3DNow   = 0x1001
	SetXOP     = 0x1005
	SetOnly64  = 0x4000 // only available in 64-bit mode
	SetNot64   = 0x8000 // not available in 64-bit mode
)

// Allowed-prefix bits. These drive both operand-size resolution and the
// prefix warnings: a prefix seen on an instruction whose entry does not
// allow it is redundant or wrong.
const (
	PAddrSize = 0x01   // address size prefix allowed without modrm
	PStack    = 0x02   // stack operation, address size prefix truncates SP
	PSeg      = 0x04   // segment prefix allowed without modrm
	PHint     = 0x08   // branch hint / BND prefix allowed
	PLock     = 0x10   // LOCK allowed
	PRep      = 0x20   // REP allowed
	PRepCC    = 0x40   // REPE/REPNE allowed
	PJump     = 0x80   // jump operation; 66 truncates EIP, not allowed in 64-bit
	P66Int    = 0x100  // 66 selects integer operand size
	P66Vec    = 0x200  // 66 repurposed (pd vs ps, xmm vs mmx)
	PF3Vec    = 0x400  // F3 repurposed (ss)
	PF2Vec    = 0x800  // F2 repurposed (sd)
	PXAcquire = 0xC40  // F2/F3 for XACQUIRE/XRELEASE
	PVecPfx   = 0xE00  // none/66/F2/F3 select ps/pd/sd/ss
	PWSize    = 0x1000 // REX.W selects operand size or precision
	PWAllowed = 0x2000 // REX.W allowed but redundant
	PWVecSize = 0x3000 // REX.W selects vector element size d/q
	PWElement = 0x4000 // VEX.W selects element size b/w
	PPfxReq   = 0x8000 // not allowed without 66/F2/F3 per bits above
	PVex      = 0x10000
	PVexReq   = 0x20000 // VEX, EVEX or XOP required
	PVexL     = 0x40000 // VEX.L allowed
	PVexVVVV  = 0x80000 // VEX.vvvv operand allowed
	PVexLReq  = 0x100000
	PMvex     = 0x400000
	PEvex     = 0x800000
)

// Instruction format codes. Low bits give modrm presence and operand
// placement; 0x20..0x100 give the immediate field class.
const (
	FIllegal  = 0x00
	FImplicit = 0x01 // no modrm, implicit operands
	FNone     = 0x02 // no modrm, no operands beyond any immediate
	FRegBits  = 0x03 // register in opcode bits 0-2 (+ REX.B)
	FVexImp   = 0x04 // VEX present, no modrm, register in VEX.vvvv
	FModRM    = 0x10 // has modrm (and possibly SIB)
	FRM       = 0x11 // modrm, one r/m operand
	FRegRM    = 0x12 // modrm, reg destination, r/m source
	FRMReg    = 0x13 // modrm, r/m destination, reg source
	FVexNDD   = 0x18 // VEX 2-operand, dest = vvvv, src = rm
	FVexNDS   = 0x19 // VEX 3-operand, dest = reg, src1 = vvvv, src2 = rm
	FVexMR    = 0x1A // VEX 3-operand, dest = rm, src1 = vvvv, src2 = reg
	FVexRMV   = 0x1B // VEX 3-operand, dest = reg, src1 = rm, src2 = vvvv
	FVexIS4   = 0x1C // VEX 4-operand, src3 in immediate bits 4-7
	FImm2     = 0x20 // 2-byte immediate
	FImm1     = 0x40 // 1-byte immediate or short jump
	FImm21    = 0x60 // 2+1 byte immediate (enter)
	FImmV     = 0x80 // 2/4-byte immediate or near jump
	FImmX     = 0x100 // 2/4/8-byte immediate
	FFar      = 0x200 // 2+2 or 4+2 far direct jump operand
	FMOffs    = 0x400 // 2/4/8-byte direct memory operand, no modrm
	FFarInd   = 0x800 // far indirect memory operand
	FUndoc    = 0x4000 // undocumented opcode
	FPrefix   = 0x8000 // this byte is a prefix, not an opcode
)

// Option bits.
const (
	OptSuffix    = 0x01  // append operand size/type suffix to name
	OptVPrefix   = 0x02  // prepend 'v' when VEX present
	OptNoDest    = 0x04  // does not change destination register
	OptSideFx    = 0x08  // can change registers beyond the destination
	OptUncond    = 0x10  // unconditional jump; next byte unreachable without label
	OptPrefixed  = 0x20  // prefixes must be coded explicitly
	OptFiller    = 0x40  // usable as NOP or filler
	OptShorter   = 0x80  // shorter encoding exists for some operand values
	OptAligned   = 0x100 // memory operand must be aligned
	OptUnaligned = 0x200 // unaligned memory operand always allowed
	OptName64    = 0x400 // name differs in 64-bit mode
	OptNoSize    = 0x800 // never write a size specifier on the memory operand
	OptSuffix32  = 0x1000 // append "32"/"64" alternative suffix
)
