package opcode

// Operand type descriptors. The static tables use the low 16 bits; the
// decoder widens them to 32 bits and ORs in the register-source bits below
// when it fills a runtime operand slot.
//
// Low byte: base kind.
//   0        no operand
//   1-4      8/16/32/64-bit integer
//   5        80-bit integer memory
//   6        integer memory, other size
//   7        48-bit memory
//   8        16/32-bit integer by 66 prefix
//   9        16/32/64-bit integer by 66/REX.W
//   0x0A     16/32/64-bit integer, default size = address size
//   0x0B/0x0C near indirect jump/call pointer
//   0x0D     far indirect pointer
//   0x11-0x13 unsigned constant 8/16/32
//   0x18/0x19 unsigned constant 16/32 and 16/32/64
//   0x21-0x23 signed constant 8/16/32
//   0x28/0x29 signed constant 16/32 and 16/32/64
//   0x31-0x34 hexadecimal constant 8/16/32/64
//   0x38/0x39 hexadecimal constant 16/32 and 16/32/64
//   0x40     x87 register or unknown-size float
//   0x43-0x45 x87 float 32/64/80
//   0x4A     16-bit float
//   0x4B     32-bit float, ss or ps
//   0x4C     64-bit float, sd or pd
//   0x4F     XMM float, element form by prefix (ps/pd/sd/ss)
//   0x50/0x51 full vector aligned/unaligned
//   0x81     short jump target
//   0x82/0x83 near jump/call target
//   0x84/0x85 far jump/call target
//   0x91-0x98 segment/control/debug/test/mask/bound register
//   0xA1-0xB3 hard-coded register (al, ax, eax, rax, ax-or-eax, xmm0, st0, 1, dx, cl)
//   0xC0-0xC2 hard-coded memory ([bx], [si], es:[di])
//
// 0x100-0xF00: vector size selector. 0x100 = MMX..ZMM by 66+L+LL,
// 0x200 = XMM..ZMM by L+LL, 0x300 = MMX, 0x400 = XMM, 0x500 = YMM,
// 0x600 = ZMM, 0xF00 = half the L+LL size.
//
// 0x1000 register only, 0x2000 memory only.
const (
	OTNone = 0

	// Register-number sources for runtime operand slots.
	OTDirectMem = 0x10000 // direct memory operand, no modrm
	OTOpcodeReg = 0x20000 // register in opcode bits 0-2 + REX.B
	OTRM        = 0x30000 // register or memory from modrm.rm + B,X
	OTReg       = 0x40000 // register from modrm.reg + R
	OTVexV      = 0x60000 // register from VEX.vvvv
	OTImmBits   = 0x70000 // register from immediate bits 4-7
	OTImm       = 0x100000 // immediate operand in immediate field
	OTImm2      = 0x200000 // immediate operand in second part of field

	// Symbol classification bits (shared with the symbol type taxonomy).
	OTIsCode    = 0x1000000
	OTDubious   = 0x2000000
	OTIsData    = 0x4000000
)

// TypeSize returns the size in bytes of an operand type for a given
// operand size (16, 32 or 64). Vector sizes are resolved by the decoder
// from prefix state before this is consulted; here a bare vector selector
// reports its fixed size when it has one.
func TypeSize(ot uint32, opSize uint32) uint32 {
	switch v := ot & 0xF00; v {
	case 0x300:
		return 8
	case 0x400:
		return 16
	case 0x500:
		return 32
	case 0x600:
		return 64
	}
	switch ot & 0xFF {
	case 1, 0x11, 0x21, 0x31, 0x81, 0xA1, 0xB1, 0xB3:
		return 1
	case 2, 0x12, 0x22, 0x32, 0x4A, 0xA2, 0xB2:
		return 2
	case 3, 0x13, 0x23, 0x33, 0x43, 0x4B, 0xA3:
		return 4
	case 4, 0x34, 0x44, 0x4C, 0xA4:
		return 8
	case 5, 0x45:
		return 10
	case 7:
		return 6
	case 8, 0x18, 0x28, 0x38, 0x82, 0x83, 0xA8:
		if opSize == 16 {
			return 2
		}
		return 4
	case 9, 0x0A, 0x19, 0x29, 0x39, 0xA9:
		return opSize / 8
	case 0x0B, 0x0C:
		return opSize / 8
	case 0x0D, 0x84, 0x85:
		return opSize/8 + 2
	case 0x91:
		return 2
	case 0x92, 0x93, 0x94:
		return 4
	case 0x95, 0x98:
		return 8
	}
	return 0
}

// ElementSize returns the vector element size in bytes implied by an
// operand type, given the resolved operand-type prefix byte
// (0, 0x66, 0xF2 or 0xF3). Used for EVEX broadcast and compressed
// displacement scaling.
func ElementSize(ot uint32, typePrefix uint8) uint32 {
	switch ot & 0xFF {
	case 0x4A:
		return 2
	case 0x4B:
		return 4
	case 0x4C:
		return 8
	case 0x4F:
		if typePrefix == 0x66 || typePrefix == 0xF2 {
			return 8
		}
		return 4
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 4
	case 4:
		return 8
	}
	return 4
}

// IsImmediate reports whether a base operand kind denotes a constant.
func IsImmediate(ot uint32) bool {
	k := ot & 0xFF
	return k >= 0x11 && k < 0x40
}

// IsJumpTarget reports whether the operand is a direct jump or call target.
func IsJumpTarget(ot uint32) bool {
	k := ot & 0xFF
	return k >= 0x81 && k <= 0x85
}

// IsRegOnly and IsMemOnly report the register/memory restriction bits.
func IsRegOnly(ot uint32) bool { return ot&0x1000 != 0 }
func IsMemOnly(ot uint32) bool { return ot&0x2000 != 0 }
