package opcode

// Register name tables, indexed by register number after REX/VEX extension.

var RegNames8 = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}

// RegNames8x is used when any REX prefix is present: ah..bh become spl..dil.
var RegNames8x = [16]string{
	"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
	"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
}

var RegNames16 = [16]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
}

var RegNames32 = [16]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
}

var RegNames64 = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var RegNamesSeg = [8]string{"es", "cs", "ss", "ds", "fs", "gs", "segr6", "segr7"}

var RegNamesCR = [16]string{
	"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7",
	"cr8", "cr9", "cr10", "cr11", "cr12", "cr13", "cr14", "cr15",
}

// GPName returns the general-purpose register name for the given number,
// size in bits, and whether a REX-class prefix was seen (which switches the
// 8-bit high-byte forms to the uniform byte forms).
func GPName(r uint32, bits uint32, rex bool) string {
	r &= 15
	switch bits {
	case 8:
		if rex || r >= 8 {
			return RegNames8x[r]
		}
		return RegNames8[r&7]
	case 16:
		return RegNames16[r]
	case 64:
		return RegNames64[r]
	}
	return RegNames32[r]
}

// VecName returns the vector register name for the given number and vector
// size in bytes. Size 8 names the MMX registers.
func VecName(r uint32, size uint32) string {
	r &= 31
	switch size {
	case 8:
		return "mm" + digits(r&7)
	case 32:
		return "ymm" + digits(r)
	case 64:
		return "zmm" + digits(r)
	}
	return "xmm" + digits(r)
}

func digits(n uint32) string {
	if n < 10 {
		return string([]byte{'0' + byte(n)})
	}
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}
