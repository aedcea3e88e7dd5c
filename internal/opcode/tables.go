package opcode

// The opcode table forest. Entries are written as positional columns with
// raw hex values; naming every constant would make the columns unreadable.
// Field order:
//
//	Name  Set  Prefixes  Format  Dest  Src1  Src2  Src3  EVEX  MVEX  Link  LinkTab  Options
//
// See opcode.go and operand.go for the bit meanings. Entries left out of a
// sparse table are the zero Def, which decodes as an illegal opcode.

// Table indices. The keyed Tables literal in tables3.go maps each index to
// its table.
const (
	TabOneByte = iota
	Tab0F
	Tab0F38
	Tab0F3A
	Tab3DNow
	TabXOP8
	TabXOP9
	TabXOPA
	tabGrp1b
	tabGrp1v
	tabGrp1s
	tabGrp2b
	tabGrp2v
	tabGrp2b1
	tabGrp2v1
	tabGrp2bc
	tabGrp2vc
	tabGrp3b
	tabGrp3v
	tabGrp4
	tabGrp5
	tabGrp6
	tabGrp7
	tab0F01R7
	tabGrp8
	tabGrp9
	tabCmpxchgNB
	tabGrp11b
	tabGrp11v
	tabPopRM
	tab63
	tabPusha
	tabPopa
	tabCBW
	tabCWD
	tabJcxz
	tab90
	tabRetfI
	tabRetf
	tabD8
	tabD9
	tabD9R2
	tabD9R4
	tabD9R5
	tabD9R6
	tabD9R7
	tabDA
	tabDARM5
	tabDB
	tabDBRM4
	tabDC
	tabDD
	tabDE
	tabDERM3
	tabDF
	tabDFRM4
	tab0F10
	tab0F11
	tab0F12
	tab0F12M
	tab0F16
	tab0F16M
	tab0F28
	tab0F29
	tab0F2E
	tab0F2F
	tab0F6E
	tab0F6F
	tab0F6F66
	tab0F6FE
	tab0F70
	tabGrp12
	tabGrp13
	tabGrp14
	tab0F77
	tab0F7E
	tab0F7F
	tab0FAE
	tab0FB8
	tab0FBC
	tab0FBD
	tab0F0D
	tab0F18
	tab0F1F
	tab0F38F0
	tab0F38F1
	tab0F38F7
	tab0F2A
	tab0F2C
	tab0F2D
	tab0F5A
	tab0F5B
	numTables
)

// VexPages maps VEX.mmmmm to a start table. Index 0 is invalid.
var VexPages = [4]uint16{0xFFFF, Tab0F, Tab0F38, Tab0F3A}

// XopPages maps XOP.mmmmm-8 to a start table.
var XopPages = [3]uint16{TabXOP8, TabXOP9, TabXOPA}

var oneByteMap = []Def{
	// arithmetic, row 0x00-0x3F
	0x00: {"add", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x01: {"add", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x02: {"add", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x03: {"add", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x04: {"add", 0, 0, 0x41, 0xA1, 0x21, 0, 0, 0, 0, 0, 0, 0},
	0x05: {"add", 0, 0x1100, 0x81, 0xA9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	0x06: {"push", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x07: {"pop", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x08: {"or", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x09: {"or", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x0A: {"or", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x0B: {"or", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x0C: {"or", 0, 0, 0x41, 0xA1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0x0D: {"or", 0, 0x1100, 0x81, 0xA9, 0x38, 0, 0, 0, 0, 0, 0, 0},
	0x0E: {"push", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x0F: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkByte, Tab0F, 0},
	0x10: {"adc", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x11: {"adc", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x12: {"adc", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x13: {"adc", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x14: {"adc", 0, 0, 0x41, 0xA1, 0x21, 0, 0, 0, 0, 0, 0, 0},
	0x15: {"adc", 0, 0x1100, 0x81, 0xA9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	0x16: {"push", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x17: {"pop", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x18: {"sbb", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x19: {"sbb", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x1A: {"sbb", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x1B: {"sbb", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x1C: {"sbb", 0, 0, 0x41, 0xA1, 0x21, 0, 0, 0, 0, 0, 0, 0},
	0x1D: {"sbb", 0, 0x1100, 0x81, 0xA9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	0x1E: {"push", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x1F: {"pop", 0x8000, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0x20: {"and", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x21: {"and", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x22: {"and", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x23: {"and", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x24: {"and", 0, 0, 0x41, 0xA1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0x25: {"and", 0, 0x1100, 0x81, 0xA9, 0x38, 0, 0, 0, 0, 0, 0, 0},
	0x26: {"es", 0, 0, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x27: {"daa", 0x8000, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x28: {"sub", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x29: {"sub", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x2A: {"sub", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x2B: {"sub", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x2C: {"sub", 0, 0, 0x41, 0xA1, 0x21, 0, 0, 0, 0, 0, 0, 0},
	0x2D: {"sub", 0, 0x1100, 0x81, 0xA9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	0x2E: {"cs", 0, 0, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x2F: {"das", 0x8000, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x30: {"xor", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x31: {"xor", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x32: {"xor", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x33: {"xor", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x34: {"xor", 0, 0, 0x41, 0xA1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0x35: {"xor", 0, 0x1100, 0x81, 0xA9, 0x38, 0, 0, 0, 0, 0, 0, 0},
	0x36: {"ss", 0, 0, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x37: {"aaa", 0x8000, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x38: {"cmp", 0, 0, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 4},
	0x39: {"cmp", 0, 0x1100, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 4},
	0x3A: {"cmp", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 4},
	0x3B: {"cmp", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 4},
	0x3C: {"cmp", 0, 0, 0x41, 0xA1, 0x21, 0, 0, 0, 0, 0, 0, 4},
	0x3D: {"cmp", 0, 0x1100, 0x81, 0xA9, 0x28, 0, 0, 0, 0, 0, 0, 4},
	0x3E: {"ds", 0, 0, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x3F: {"aas", 0x8000, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	// inc/dec and push/pop register, 0x40-0x5F. 40-4F become REX prefixes
	// in 64-bit mode; the prefix scanner eats them before the map lookup.
	0x40: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x41: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x42: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x43: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x44: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x45: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x46: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x47: {"inc", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x48: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x49: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x4A: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x4B: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x4C: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x4D: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x4E: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x4F: {"dec", 0x8000, 0x100, 3, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	0x50: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x51: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x52: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x53: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x54: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x55: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x56: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x57: {"push", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x58: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x59: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x5A: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x5B: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x5C: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x5D: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x5E: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	0x5F: {"pop", 0, 0x102, 3, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	// 0x60-0x6F
	0x60: {"", 0x8001, 0x100, 0, 0, 0, 0, 0, 0, 0, LinkOpSize, tabPusha, 0},
	0x61: {"", 0x8001, 0x100, 0, 0, 0, 0, 0, 0, 0, LinkOpSize, tabPopa, 0},
	0x62: {"bound", 0x8001, 0x100, 0x12, 8, 0x2006, 0, 0, 0, 0, 0, 0, 0},
	0x63: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkMode, tab63, 0},
	0x64: {"fs", 3, 0, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x65: {"gs", 3, 0, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x66: {"", 3, 0, 0x8000, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x67: {"", 3, 0, 0x8000, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x68: {"push", 1, 0x102, 0x82, 0x28, 0, 0, 0, 0, 0, 0, 0, 0},
	0x69: {"imul", 1, 0x1100, 0x92, 9, 9, 0x28, 0, 0, 0, 0, 0, 0},
	0x6A: {"push", 1, 0x102, 0x42, 0x21, 0, 0, 0, 0, 0, 0, 0, 0},
	0x6B: {"imul", 1, 0x1100, 0x52, 9, 9, 0x21, 0, 0, 0, 0, 0, 0},
	0x6C: {"insb", 1, 0x21, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x6D: {"ins", 1, 0x121, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0x6E: {"outsb", 1, 0x21, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x6F: {"outs", 1, 0x121, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	// short conditional jumps, 0x70-0x7F
	0x70: {"jo", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x71: {"jno", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x72: {"jb", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x73: {"jae", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x74: {"je", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x75: {"jne", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x76: {"jbe", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x77: {"ja", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x78: {"js", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x79: {"jns", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x7A: {"jp", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x7B: {"jnp", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x7C: {"jl", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x7D: {"jge", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x7E: {"jle", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0x7F: {"jg", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	// immediate groups and mov, 0x80-0x8F
	0x80: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp1b, 0},
	0x81: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp1v, 0},
	0x82: {"", 0x8000, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp1b, 0},
	0x83: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp1s, 0},
	0x84: {"test", 0, 0, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 4},
	0x85: {"test", 0, 0x1100, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 4},
	0x86: {"xchg", 0, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x87: {"xchg", 0, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x88: {"mov", 0, 0xC40, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x89: {"mov", 0, 0x1D40, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x8A: {"mov", 0, 0, 0x12, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0x8B: {"mov", 0, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x8C: {"mov", 0, 0x100, 0x13, 8, 0x1091, 0, 0, 0, 0, 0, 0, 0},
	0x8D: {"lea", 0, 0x1100, 0x12, 9, 0x2006, 0, 0, 0, 0, 0, 0, 0x800},
	0x8E: {"mov", 0, 0, 0x12, 0x1091, 2, 0, 0, 0, 0, 0, 0, 0},
	0x8F: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabPopRM, 0},
	// 0x90-0x9F
	0x90: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab90, 0},
	0x91: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x92: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x93: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x94: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x95: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x96: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x97: {"xchg", 0, 0x1100, 3, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x98: {"", 0, 0x1100, 0, 0, 0, 0, 0, 0, 0, LinkOpSize, tabCBW, 0},
	0x99: {"", 0, 0x1100, 0, 0, 0, 0, 0, 0, 0, LinkOpSize, tabCWD, 0},
	0x9A: {"call", 0x8000, 0x180, 0x202, 0x85, 0, 0, 0, 0, 0, 0, 0, 8},
	0x9B: {"fwait", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9C: {"pushf", 0, 0x102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0x9D: {"popf", 0, 0x102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0x9E: {"sahf", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9F: {"lahf", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	// moffs mov and string ops, 0xA0-0xAF
	0xA0: {"mov", 0, 5, 0x401, 0xA1, 1, 0, 0, 0, 0, 0, 0, 0},
	0xA1: {"mov", 0, 0x1105, 0x401, 0xA9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xA2: {"mov", 0, 5, 0x401, 1, 0xA1, 0, 0, 0, 0, 0, 0, 0},
	0xA3: {"mov", 0, 0x1105, 0x401, 9, 0xA9, 0, 0, 0, 0, 0, 0, 0},
	0xA4: {"movsb", 0, 0x25, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xA5: {"movs", 0, 0x1125, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0xA6: {"cmpsb", 0, 0x45, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xA7: {"cmps", 0, 0x1145, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0xA8: {"test", 0, 0, 0x41, 0xA1, 0x11, 0, 0, 0, 0, 0, 0, 4},
	0xA9: {"test", 0, 0x1100, 0x81, 0xA9, 0x18, 0, 0, 0, 0, 0, 0, 4},
	0xAA: {"stosb", 0, 0x21, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xAB: {"stos", 0, 0x1121, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0xAC: {"lodsb", 0, 0x21, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xAD: {"lods", 0, 0x1121, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	0xAE: {"scasb", 0, 0x41, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xAF: {"scas", 0, 0x1141, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	// mov register, immediate, 0xB0-0xBF
	0xB0: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB1: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB2: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB3: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB4: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB5: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB6: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB7: {"mov", 0, 0, 0x43, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xB8: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xB9: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xBA: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xBB: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xBC: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xBD: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xBE: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	0xBF: {"mov", 0, 0x1100, 0x103, 9, 0x39, 0, 0, 0, 0, 0, 0, 0x80},
	// shifts, ret, les/lds, mov imm, enter/leave, int, 0xC0-0xCF
	0xC0: {"", 1, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp2b, 0},
	0xC1: {"", 1, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp2v, 0},
	0xC2: {"ret", 0, 0x82, 0x22, 0x12, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0xC3: {"ret", 0, 0x82, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0xC4: {"les", 0x8000, 0x100, 0x12, 8, 0x200D, 0, 0, 0, 0, 0, 0, 0},
	0xC5: {"lds", 0x8000, 0x100, 0x12, 8, 0x200D, 0, 0, 0, 0, 0, 0, 0},
	0xC6: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp11b, 0},
	0xC7: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp11v, 0},
	0xC8: {"enter", 1, 0, 0x62, 0x12, 0x11, 0, 0, 0, 0, 0, 0, 0},
	0xC9: {"leave", 1, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCA: {"", 0, 0x82, 0, 0, 0, 0, 0, 0, 0, LinkDialect, tabRetfI, 0},
	0xCB: {"", 0, 0x82, 0, 0, 0, 0, 0, 0, 0, LinkDialect, tabRetf, 0},
	0xCC: {"int3", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCD: {"int", 0, 0, 0x42, 0x31, 0, 0, 0, 0, 0, 0, 0, 8},
	0xCE: {"into", 0x8000, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCF: {"iret", 0, 0x1102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0x11},
	// shifts by 1/cl, aam/aad, xlat, x87 escapes, 0xD0-0xDF
	0xD0: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp2b1, 0},
	0xD1: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp2v1, 0},
	0xD2: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp2bc, 0},
	0xD3: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp2vc, 0},
	0xD4: {"aam", 0x8000, 0, 0x42, 0x11, 0, 0, 0, 0, 0, 0, 0, 0},
	0xD5: {"aad", 0x8000, 0, 0x42, 0x11, 0, 0, 0, 0, 0, 0, 0, 0},
	0xD6: {"salc", 0x8000, 0, 0x4002, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xD7: {"xlatb", 0, 5, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xD8: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabD8, 0},
	0xD9: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabD9, 0},
	0xDA: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabDA, 0},
	0xDB: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabDB, 0},
	0xDC: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabDC, 0},
	0xDD: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabDD, 0},
	0xDE: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabDE, 0},
	0xDF: {"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabDF, 0},
	// loops, in/out, call/jmp, flags, 0xE0-0xFF
	0xE0: {"loopne", 0, 0x81, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0xE1: {"loope", 0, 0x81, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0xE2: {"loop", 0, 0x81, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	0xE3: {"", 0, 0x81, 0, 0, 0, 0, 0, 0, 0, LinkAddrSize, tabJcxz, 0},
	0xE4: {"in", 0, 0, 0x41, 0xA1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xE5: {"in", 0, 0x100, 0x41, 0xA8, 0x31, 0, 0, 0, 0, 0, 0, 0},
	0xE6: {"out", 0, 0, 0x41, 0x31, 0xA1, 0, 0, 0, 0, 0, 0, 0},
	0xE7: {"out", 0, 0x100, 0x41, 0x31, 0xA8, 0, 0, 0, 0, 0, 0, 0},
	0xE8: {"call", 0, 0x188, 0x82, 0x83, 0, 0, 0, 0, 0, 0, 0, 8},
	0xE9: {"jmp", 0, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0xEA: {"jmp", 0x8000, 0x180, 0x202, 0x84, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0xEB: {"jmp", 0, 0x88, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0xEC: {"in", 0, 0, 1, 0xA1, 0xB2, 0, 0, 0, 0, 0, 0, 0},
	0xED: {"in", 0, 0x100, 1, 0xA8, 0xB2, 0, 0, 0, 0, 0, 0, 0},
	0xEE: {"out", 0, 0, 1, 0xB2, 0xA1, 0, 0, 0, 0, 0, 0, 0},
	0xEF: {"out", 0, 0x100, 1, 0xB2, 0xA8, 0, 0, 0, 0, 0, 0, 0},
	0xF0: {"lock", 0, 0, 0x8000, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF1: {"icebp", 0, 0, 0x4002, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF2: {"repne", 0, 0, 0x8000, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF3: {"rep", 0, 0, 0x8000, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF4: {"hlt", 0x800, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF5: {"cmc", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF6: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp3b, 0},
	0xF7: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp3v, 0},
	0xF8: {"clc", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xF9: {"stc", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xFA: {"cli", 0x800, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xFB: {"sti", 0x800, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xFC: {"cld", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xFD: {"std", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xFE: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp4, 0},
	0xFF: {"", 0, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp5, 0},
}

var map0F = []Def{
	0x00: {"", 2, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp6, 0},
	0x01: {"", 2, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tabGrp7, 0},
	0x02: {"lar", 0x802, 0x100, 0x12, 8, 2, 0, 0, 0, 0, 0, 0, 0},
	0x03: {"lsl", 0x802, 0x100, 0x12, 8, 2, 0, 0, 0, 0, 0, 0, 0},
	0x05: {"syscall", 0x4000, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 8},
	0x06: {"clts", 0x802, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x07: {"sysret", 0x4800, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0x08: {"invd", 0x804, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x09: {"wbinvd", 0x804, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x0B: {"ud2", 6, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0x0D: {"", 0x1001, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tab0F0D, 0},
	0x0F: {"", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, LinkImmByte, Tab3DNow, 0},
	0x10: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F10, 0},
	0x11: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F11, 0},
	0x12: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F12, 0},
	0x13: {"movlp", 0x11, 0x90200, 0x13, 0x244C, 0x404, 0, 0, 0, 0, 0, 0, 3},
	0x14: {"unpcklp", 0x11, 0x8D0200, 0x19, 0x204, 0x204, 0x204, 0, 0x20, 0, 0, 0, 3},
	0x15: {"unpckhp", 0x11, 0x8D0200, 0x19, 0x204, 0x204, 0x204, 0, 0x20, 0, 0, 0, 3},
	0x16: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F16, 0},
	0x17: {"movhp", 0x11, 0x90200, 0x13, 0x244C, 0x404, 0, 0, 0, 0, 0, 0, 3},
	0x18: {"", 6, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tab0F18, 0},
	0x19: {"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	0x1A: {"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	0x1B: {"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	0x1C: {"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	0x1D: {"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	0x1E: {"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	0x1F: {"", 6, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tab0F1F, 0},
	0x20: {"mov", 0x803, 0, 0x12, 4, 0x1092, 0, 0, 0, 0, 0, 0, 0},
	0x21: {"mov", 0x803, 0, 0x12, 4, 0x1093, 0, 0, 0, 0, 0, 0, 0},
	0x22: {"mov", 0x803, 0, 0x12, 0x1092, 4, 0, 0, 0, 0, 0, 0, 0},
	0x23: {"mov", 0x803, 0, 0x12, 0x1093, 4, 0, 0, 0, 0, 0, 0, 0},
	0x2A: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F2A, 0},
	0x2C: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F2C, 0},
	0x2D: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F2D, 0},
	0x28: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F28, 0},
	0x29: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F29, 0},
	0x2E: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F2E, 0},
	0x2F: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F2F, 0},
	0x30: {"wrmsr", 0x805, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x31: {"rdtsc", 5, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x32: {"rdmsr", 0x805, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x33: {"rdpmc", 0x805, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0x34: {"sysenter", 8, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 8},
	0x35: {"sysexit", 0x808, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
	0x38: {"", 0x14, 0, 0, 0, 0, 0, 0, 0, 0, LinkByte, Tab0F38, 0},
	0x3A: {"", 0x14, 0, 0, 0, 0, 0, 0, 0, 0, LinkByte, Tab0F3A, 0},
	// cmov, 0x40-0x4F
	0x40: {"cmovo", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x41: {"cmovno", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x42: {"cmovb", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x43: {"cmovae", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x44: {"cmove", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x45: {"cmovne", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x46: {"cmovbe", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x47: {"cmova", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x48: {"cmovs", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x49: {"cmovns", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x4A: {"cmovp", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x4B: {"cmovnp", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x4C: {"cmovl", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x4D: {"cmovge", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x4E: {"cmovle", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0x4F: {"cmovg", 6, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	// packed float, 0x50-0x5F
	0x50: {"movmskp", 0x11, 0x50200, 0x12, 3, 0x1204, 0, 0, 0, 0, 0, 0, 3},
	0x51: {"sqrt", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x2E, 0, 0, 0, 3},
	0x52: {"rsqrt", 0x11, 0x50E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0, 0, 0, 0, 3},
	0x53: {"rcp", 0x11, 0x50E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0, 0, 0, 0, 3},
	0x54: {"andp", 0x11, 0x8D0200, 0x19, 0x204, 0x204, 0x204, 0, 0x21, 0, 0, 0, 3},
	0x55: {"andnp", 0x11, 0x8D0200, 0x19, 0x204, 0x204, 0x204, 0, 0x21, 0, 0, 0, 3},
	0x56: {"orp", 0x11, 0x8D0200, 0x19, 0x204, 0x204, 0x204, 0, 0x21, 0, 0, 0, 3},
	0x57: {"xorp", 0x11, 0x8D0200, 0x19, 0x204, 0x204, 0x204, 0, 0x21, 0, 0, 0, 3},
	0x58: {"add", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x27, 0, 0, 0, 3},
	0x59: {"mul", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x27, 0, 0, 0, 3},
	0x5A: {"", 0x12, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F5A, 0},
	0x5B: {"", 0x12, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F5B, 0},
	0x5C: {"sub", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x27, 0, 0, 0, 3},
	0x5D: {"min", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x23, 0, 0, 0, 3},
	0x5E: {"div", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x27, 0, 0, 0, 3},
	0x5F: {"max", 0x11, 0x8D0E00, 0x19, 0x24F, 0x24F, 0x24F, 0, 0x23, 0, 0, 0, 3},
	// packed integer, 0x60-0x7F
	0x60: {"punpcklbw", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x61: {"punpcklwd", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x62: {"punpckldq", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x63: {"packsswb", 7, 0x8D0200, 0x19, 0x101, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x64: {"pcmpgtb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x65: {"pcmpgtw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x66: {"pcmpgtd", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x67: {"packuswb", 7, 0x8D0200, 0x19, 0x101, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x68: {"punpckhbw", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x69: {"punpckhwd", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x6A: {"punpckhdq", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x6B: {"packssdw", 7, 0x8D0200, 0x19, 0x102, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x6C: {"punpcklqdq", 0x12, 0x8D8200, 0x19, 0x104, 0x104, 0x104, 0, 0x22, 0, 0, 0, 2},
	0x6D: {"punpckhqdq", 0x12, 0x8D8200, 0x19, 0x104, 0x104, 0x104, 0, 0x22, 0, 0, 0, 2},
	0x6E: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F6E, 0},
	0x6F: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F6F, 0},
	0x70: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F70, 0},
	0x71: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp12, 0},
	0x72: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp13, 0},
	0x73: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp14, 0},
	0x74: {"pcmpeqb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x75: {"pcmpeqw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x76: {"pcmpeqd", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x77: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkVexL, tab0F77, 0},
	0x7E: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F7E, 0},
	0x7F: {"", 7, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F7F, 0},
	// near conditional jumps, 0x80-0x8F
	0x80: {"jo", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x81: {"jno", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x82: {"jb", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x83: {"jae", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x84: {"je", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x85: {"jne", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x86: {"jbe", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x87: {"ja", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x88: {"js", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x89: {"jns", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x8A: {"jp", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x8B: {"jnp", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x8C: {"jl", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x8D: {"jge", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x8E: {"jle", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	0x8F: {"jg", 3, 0x188, 0x82, 0x82, 0, 0, 0, 0, 0, 0, 0, 0},
	// setcc, 0x90-0x9F
	0x90: {"seto", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x91: {"setno", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x92: {"setb", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x93: {"setae", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x94: {"sete", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x95: {"setne", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x96: {"setbe", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x97: {"seta", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x98: {"sets", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x99: {"setns", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9A: {"setp", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9B: {"setnp", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9C: {"setl", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9D: {"setge", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9E: {"setle", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	0x9F: {"setg", 3, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	// bit ops and wide arithmetic, 0xA0-0xBF
	0xA0: {"push", 3, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0xA1: {"pop", 3, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0xA2: {"cpuid", 4, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xA3: {"bt", 3, 0x100, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 4},
	0xA4: {"shld", 3, 0x1100, 0x53, 9, 9, 0x11, 0, 0, 0, 0, 0, 0},
	0xA5: {"shld", 3, 0x1100, 0x13, 9, 9, 0xB3, 0, 0, 0, 0, 0, 0},
	0xA8: {"push", 3, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0xA9: {"pop", 3, 2, 3, 0x91, 0, 0, 0, 0, 0, 0, 0, 0},
	0xAA: {"rsm", 0x805, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	0xAB: {"bts", 3, 0x1110, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xAC: {"shrd", 3, 0x1100, 0x53, 9, 9, 0x11, 0, 0, 0, 0, 0, 0},
	0xAD: {"shrd", 3, 0x1100, 0x13, 9, 9, 0xB3, 0, 0, 0, 0, 0, 0},
	0xAE: {"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkModReg, tab0FAE, 0},
	0xAF: {"imul", 3, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xB0: {"cmpxchg", 4, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0xB1: {"cmpxchg", 4, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xB2: {"lss", 3, 0x100, 0x12, 8, 0x200D, 0, 0, 0, 0, 0, 0, 0},
	0xB3: {"btr", 3, 0x1110, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xB4: {"lfs", 3, 0x100, 0x12, 8, 0x200D, 0, 0, 0, 0, 0, 0, 0},
	0xB5: {"lgs", 3, 0x100, 0x12, 8, 0x200D, 0, 0, 0, 0, 0, 0, 0},
	0xB6: {"movzx", 3, 0x1100, 0x12, 9, 0x2001, 0, 0, 0, 0, 0, 0, 0},
	0xB7: {"movzx", 3, 0x1000, 0x12, 9, 0x2002, 0, 0, 0, 0, 0, 0, 0},
	0xB8: {"", 0x16, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0FB8, 0},
	0xB9: {"ud1", 6, 0, 0x12, 3, 3, 0, 0, 0, 0, 0, 0, 0},
	0xBA: {"", 3, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp8, 0},
	0xBB: {"btc", 3, 0x1110, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xBC: {"", 3, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0FBC, 0},
	0xBD: {"", 3, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0FBD, 0},
	0xBE: {"movsx", 3, 0x1100, 0x12, 9, 0x2001, 0, 0, 0, 0, 0, 0, 0},
	0xBF: {"movsx", 3, 0x1000, 0x12, 9, 0x2002, 0, 0, 0, 0, 0, 0, 0},
	// xadd, shuffles, bswap, 0xC0-0xCF
	0xC0: {"xadd", 4, 0xC50, 0x13, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	0xC1: {"xadd", 4, 0x1D50, 0x13, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	0xC2: {"cmp", 0x11, 0x8D0E00, 0x59, 0x24F, 0x24F, 0x24F, 0x11, 0x23, 0, 0, 0, 3},
	0xC3: {"movnti", 0x12, 0x1000, 0x13, 3, 3, 0, 0, 0, 0, 0, 0, 0},
	0xC4: {"pinsrw", 7, 0x8D0200, 0x59, 0x102, 3, 0x11, 0, 0, 0, 0, 0, 2},
	0xC5: {"pextrw", 7, 0x50200, 0x52, 3, 0x1102, 0x11, 0, 0, 0, 0, 0, 2},
	0xC6: {"shufp", 0x11, 0x8D0200, 0x59, 0x204, 0x204, 0x204, 0x11, 0x21, 0, 0, 0, 3},
	0xC7: {"", 5, 0, 0, 0, 0, 0, 0, 0, 0, LinkReg, tabGrp9, 0},
	0xC8: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xC9: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCA: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCB: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCC: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCD: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCE: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	0xCF: {"bswap", 4, 0x1000, 3, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	// SSE integer rows, 0xD0-0xFF
	0xD1: {"psrlw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x402, 0, 0x20, 0, 0, 0, 2},
	0xD2: {"psrld", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x403, 0, 0x21, 0, 0, 0, 2},
	0xD3: {"psrlq", 7, 0x8D0200, 0x19, 0x104, 0x104, 0x404, 0, 0x22, 0, 0, 0, 2},
	0xD4: {"paddq", 0x12, 0x8D0200, 0x19, 0x104, 0x104, 0x104, 0, 0x22, 0, 0, 0, 2},
	0xD5: {"pmullw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xD6: {"movq", 0x12, 0x18200, 0x13, 0x2404, 0x404, 0, 0, 0, 0, 0, 0, 2},
	0xD7: {"pmovmskb", 0x12, 0x50200, 0x12, 3, 0x1104, 0, 0, 0, 0, 0, 0, 2},
	0xD8: {"psubusb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xD9: {"psubusw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xDA: {"pminub", 0x12, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xDB: {"pand", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0xDC: {"paddusb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xDD: {"paddusw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xDE: {"pmaxub", 0x12, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xDF: {"pandn", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0xE0: {"pavgb", 0x12, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xE1: {"psraw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x402, 0, 0x20, 0, 0, 0, 2},
	0xE2: {"psrad", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x403, 0, 0x21, 0, 0, 0, 2},
	0xE3: {"pavgw", 0x12, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xE4: {"pmulhuw", 0x12, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xE5: {"pmulhw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xE7: {"movntq", 0x12, 0x90200, 0x13, 0x2103, 0x103, 0, 0, 0x20, 0, 0, 0, 2},
	0xE8: {"psubsb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xE9: {"psubsw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xEA: {"pminsw", 0x12, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xEB: {"por", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0xEC: {"paddsb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xED: {"paddsw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xEE: {"pmaxsw", 0x12, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xEF: {"pxor", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0xF0: {"lddqu", 0x13, 0x810800, 0x12, 0x204, 0x2204, 0, 0, 0, 0, 0, 0, 2},
	0xF1: {"psllw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x402, 0, 0x20, 0, 0, 0, 2},
	0xF2: {"pslld", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x403, 0, 0x21, 0, 0, 0, 2},
	0xF3: {"psllq", 7, 0x8D0200, 0x19, 0x104, 0x104, 0x404, 0, 0x22, 0, 0, 0, 2},
	0xF4: {"pmuludq", 0x12, 0x8D0200, 0x19, 0x104, 0x103, 0x103, 0, 0x22, 0, 0, 0, 2},
	0xF5: {"pmaddwd", 7, 0x8D0200, 0x19, 0x103, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xF6: {"psadbw", 0x12, 0x8D0200, 0x19, 0x102, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xF7: {"maskmovq", 0x12, 0x90200, 0x12, 0x1103, 0x1103, 0, 0, 0, 0, 0, 0, 2},
	0xF8: {"psubb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xF9: {"psubw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xFA: {"psubd", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0xFB: {"psubq", 0x12, 0x8D0200, 0x19, 0x104, 0x104, 0x104, 0, 0x22, 0, 0, 0, 2},
	0xFC: {"paddb", 7, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0xFD: {"paddw", 7, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0xFE: {"paddd", 7, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0xFF: {"ud0", 6, 0, 0x12, 3, 3, 0, 0, 0, 0, 0, 0, 0},
}
