package opcode

// Sub-tables linked from the one-byte and 0F maps: the modrm.reg groups
// and the small mode-, size-, prefix- and dialect-linked tables. The x87,
// SSE prefix, 0F38/0F3A, 3DNow and XOP tables are in tables3.go.
// Same column layout as tables.go.

// Immediate groups 80/81/83.
var grp1b = []Def{
	{"add", 0, 0xC50, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"or", 0, 0xC50, 0x51, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	{"adc", 0, 0xC50, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"sbb", 0, 0xC50, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"and", 0, 0xC50, 0x51, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	{"sub", 0, 0xC50, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"xor", 0, 0xC50, 0x51, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
	{"cmp", 0, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 4},
}

var grp1v = []Def{
	{"add", 0, 0x1D50, 0x91, 9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	{"or", 0, 0x1D50, 0x91, 9, 0x38, 0, 0, 0, 0, 0, 0, 0},
	{"adc", 0, 0x1D50, 0x91, 9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	{"sbb", 0, 0x1D50, 0x91, 9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	{"and", 0, 0x1D50, 0x91, 9, 0x38, 0, 0, 0, 0, 0, 0, 0},
	{"sub", 0, 0x1D50, 0x91, 9, 0x28, 0, 0, 0, 0, 0, 0, 0},
	{"xor", 0, 0x1D50, 0x91, 9, 0x38, 0, 0, 0, 0, 0, 0, 0},
	{"cmp", 0, 0x1100, 0x91, 9, 0x28, 0, 0, 0, 0, 0, 0, 4},
}

var grp1s = []Def{
	{"add", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"or", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"adc", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"sbb", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"and", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"sub", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"xor", 0, 0x1D50, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 0},
	{"cmp", 0, 0x1100, 0x51, 9, 0x21, 0, 0, 0, 0, 0, 0, 4},
}

// Shift groups C0/C1, D0/D1, D2/D3. Entry 6 is the undocumented alias of shl.
var grp2b = []Def{
	{"rol", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"ror", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"rcl", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"rcr", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"shr", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 1, 0, 0x4051, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"sar", 1, 0, 0x51, 1, 0x11, 0, 0, 0, 0, 0, 0, 0},
}

var grp2v = []Def{
	{"rol", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"ror", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"rcl", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"rcr", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"shr", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 1, 0x1100, 0x4051, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"sar", 1, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
}

var grp2b1 = []Def{
	{"rol", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"ror", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"rcl", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"rcr", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"shr", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0, 0x4011, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"sar", 0, 0, 0x11, 1, 0xB1, 0, 0, 0, 0, 0, 0, 0},
}

var grp2v1 = []Def{
	{"rol", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"ror", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"rcl", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"rcr", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"shr", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0x1100, 0x4011, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
	{"sar", 0, 0x1100, 0x11, 9, 0xB1, 0, 0, 0, 0, 0, 0, 0},
}

var grp2bc = []Def{
	{"rol", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"ror", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"rcl", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"rcr", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"shr", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0, 0x4011, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"sar", 0, 0, 0x11, 1, 0xB3, 0, 0, 0, 0, 0, 0, 0},
}

var grp2vc = []Def{
	{"rol", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"ror", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"rcl", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"rcr", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"shr", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"shl", 0, 0x1100, 0x4011, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
	{"sar", 0, 0x1100, 0x11, 9, 0xB3, 0, 0, 0, 0, 0, 0, 0},
}

// F6/F7 group.
var grp3b = []Def{
	{"test", 0, 0, 0x51, 1, 0x31, 0, 0, 0, 0, 0, 0, 4},
	{"test", 0, 0, 0x4051, 1, 0x31, 0, 0, 0, 0, 0, 0, 4},
	{"not", 0, 0xC50, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{"neg", 0, 0xC50, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{"mul", 0, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 8},
	{"imul", 0, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 8},
	{"div", 0, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 8},
	{"idiv", 0, 0, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 8},
}

var grp3v = []Def{
	{"test", 0, 0x1100, 0x91, 9, 0x38, 0, 0, 0, 0, 0, 0, 4},
	{"test", 0, 0x1100, 0x4091, 9, 0x38, 0, 0, 0, 0, 0, 0, 4},
	{"not", 0, 0x1D50, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	{"neg", 0, 0x1D50, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	{"mul", 0, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 8},
	{"imul", 0, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 8},
	{"div", 0, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 8},
	{"idiv", 0, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 8},
}

// FE and FF groups.
var grp4 = []Def{
	{"inc", 0, 0xC50, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{"dec", 0, 0xC50, 0x11, 1, 0, 0, 0, 0, 0, 0, 0, 0},
}

var grp5 = []Def{
	{"inc", 0, 0x1D50, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	{"dec", 0, 0x1D50, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0},
	{"call", 0, 0x108, 0x11, 0x0C, 0, 0, 0, 0, 0, 0, 0, 8},
	{"call", 0, 0x100, 0x11, 0x200D, 0, 0, 0, 0, 0, 0, 0, 8},
	{"jmp", 0, 0x108, 0x11, 0x0B, 0, 0, 0, 0, 0, 0, 0, 0x10},
	{"jmp", 0, 0x100, 0x11, 0x200D, 0, 0, 0, 0, 0, 0, 0, 0x10},
	{"push", 0, 0x102, 0x11, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// 0F 00 and 0F 01 groups.
var grp6 = []Def{
	{"sldt", 0x802, 0x100, 0x11, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	{"str", 0x802, 0x100, 0x11, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	{"lldt", 0x802, 0, 0x11, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{"ltr", 0x802, 0, 0x11, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{"verr", 0x802, 0, 0x11, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{"verw", 0x802, 0, 0x11, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var grp7 = []Def{
	// memory forms
	{"sgdt", 0x802, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"sidt", 0x802, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"lgdt", 0x802, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"lidt", 0x802, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"smsw", 0x802, 0x100, 0x11, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"lmsw", 0x802, 0, 0x11, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{"invlpg", 0x804, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	// register forms
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"smsw", 0x802, 0x100, 0x11, 8, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"lmsw", 0x802, 0, 0x11, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x4000, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tab0F01R7, 0},
}

var t0F01R7 = []Def{
	{"swapgs", 0x4800, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"rdtscp", 0x16, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// 0F BA bit-test group and 0F C7 group.
var grp8 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"bt", 3, 0x1100, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 4},
	{"bts", 3, 0x1D50, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"btr", 3, 0x1D50, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
	{"btc", 3, 0x1D50, 0x51, 9, 0x11, 0, 0, 0, 0, 0, 0, 0},
}

var grp9 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 5, 0x1010, 0, 0, 0, 0, 0, 0, 0, LinkOpSize, tabCmpxchgNB, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"rdrand", 0x1D, 0x1100, 0x11, 0x1009, 0, 0, 0, 0, 0, 0, 0, 0},
	{"rdseed", 0x1D, 0x1100, 0x11, 0x1009, 0, 0, 0, 0, 0, 0, 0, 0},
}

var cmpxchgNB = []Def{
	{"cmpxchg8b", 5, 0x1010, 0x11, 0x2004, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cmpxchg8b", 5, 0x1010, 0x11, 0x2004, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cmpxchg16b", 0x4000, 0x1010, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0},
}

// C6/C7 mov immediate groups and the 8F pop group.
var grp11b = []Def{
	{"mov", 0, 0xC40, 0x51, 1, 0x31, 0, 0, 0, 0, 0, 0, 0},
}

var grp11v = []Def{
	{"mov", 0, 0x1D40, 0x91, 9, 0x38, 0, 0, 0, 0, 0, 0, 0},
}

var popRM = []Def{
	{"pop", 0, 0x102, 0x11, 0x0A, 0, 0, 0, 0, 0, 0, 0, 0},
}

// Mode-, size- and dialect-linked small tables.
var t63 = []Def{
	{"arpl", 0x8002, 0, 0x13, 2, 2, 0, 0, 0, 0, 0, 0, 0},
	{"arpl", 0x8002, 0, 0x13, 2, 2, 0, 0, 0, 0, 0, 0, 0},
	{"movsxd", 0x4000, 0x1000, 0x12, 9, 3, 0, 0, 0, 0, 0, 0, 0},
}

var pushaT = []Def{
	{"pusha", 0x8001, 0x102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"pushad", 0x8003, 0x102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var popaT = []Def{
	{"popa", 0x8001, 0x102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"popad", 0x8003, 0x102, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var cbwT = []Def{
	{"cbw", 0, 0x1100, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cwde", 3, 0x1100, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cdqe", 0x4000, 0x1100, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var cwdT = []Def{
	{"cwd", 0, 0x1100, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cdq", 3, 0x1100, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cqo", 0x4000, 0x1100, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var jcxzT = []Def{
	{"jcxz", 0, 0x81, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	{"jecxz", 3, 0x81, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
	{"jrcxz", 0x4000, 0x81, 0x42, 0x81, 0, 0, 0, 0, 0, 0, 0, 0},
}

var nop90 = []Def{
	{"nop", 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 0, 0x100, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"pause", 8, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var retfIT = []Def{
	{"retf", 0, 0x82, 0x22, 0x12, 0, 0, 0, 0, 0, 0, 0, 0x10},
	{"retf", 0, 0x82, 0x22, 0x12, 0, 0, 0, 0, 0, 0, 0, 0x10},
	{"lret", 0, 0x82, 0x22, 0x12, 0, 0, 0, 0, 0, 0, 0, 0x10},
}

var retfT = []Def{
	{"retf", 0, 0x82, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
	{"retf", 0, 0x82, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
	{"lret", 0, 0x82, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0x10},
}
