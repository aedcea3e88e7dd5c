package opcode

// x87 escape tables, SSE prefix-split tables, the 0F38/0F3A maps, the
// AMD 3DNow immediate map and the table forest assembly.

// D8-DF: first 8 entries are the memory forms indexed by reg, the next 8
// the register forms.
var fpuD8 = []Def{
	{"fadd", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fmul", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fcom", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fcomp", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fsub", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fsubr", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fdiv", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fdivr", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fadd", 0x100, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fmul", 0x100, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcom", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fcomp", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fsub", 0x100, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fsubr", 0x100, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fdiv", 0x100, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fdivr", 0x100, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
}

var fpuD9 = []Def{
	{"fld", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fst", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fstp", 0x100, 0, 0x11, 0x2043, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldenv", 0x100, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"fldcw", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fnstenv", 0x100, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"fnstcw", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fld", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fxch", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabD9R2, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabD9R4, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabD9R5, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabD9R6, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabD9R7, 0},
}

var fpuD9R2 = []Def{
	{"fnop", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuD9R4 = []Def{
	{"fchs", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fabs", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"ftst", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fxam", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuD9R5 = []Def{
	{"fld1", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldl2t", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldl2e", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldpi", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldlg2", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldln2", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fldz", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuD9R6 = []Def{
	{"f2xm1", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fyl2x", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fptan", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fpatan", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fxtract", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fprem1", 0x101, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fdecstp", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fincstp", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuD9R7 = []Def{
	{"fprem", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fyl2xp1", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fsqrt", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fsincos", 0x101, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"frndint", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fscale", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fsin", 0x101, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fcos", 0x101, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDA = []Def{
	{"fiadd", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fimul", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"ficom", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 4},
	{"ficomp", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fisub", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fisubr", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fidiv", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fidivr", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovb", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcmove", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovbe", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovu", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabDARM5, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDARM5 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fucompp", 0x101, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDB = []Def{
	{"fild", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fisttp", 0x13, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fist", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fistp", 0x100, 0, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fld", 0x100, 0, 0x11, 0x2045, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fstp", 0x100, 0, 0x11, 0x2045, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovnb", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovne", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovnbe", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"fcmovnu", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabDBRM4, 0},
	{"fucomi", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 4},
	{"fcomi", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 4},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDBRM4 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fnclex", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fninit", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDC = []Def{
	{"fadd", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fmul", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fcom", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fcomp", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fsub", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fsubr", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fdiv", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fdivr", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fadd", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fmul", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fsubr", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fsub", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fdivr", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fdiv", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDD = []Def{
	{"fld", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fisttp", 0x13, 0, 0x11, 0x2004, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fst", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fstp", 0x100, 0, 0x11, 0x2044, 0, 0, 0, 0, 0, 0, 0, 0},
	{"frstor", 0x100, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fnsave", 0x100, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"fnstsw", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"ffree", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fst", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fstp", 0x100, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fucom", 0x101, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fucomp", 0x101, 0, 0x11, 0x1040, 0, 0, 0, 0, 0, 0, 0, 4},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDE = []Def{
	{"fiadd", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fimul", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"ficom", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 4},
	{"ficomp", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 4},
	{"fisub", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fisubr", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fidiv", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fidivr", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"faddp", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fmulp", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabDERM3, 0},
	{"fsubrp", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fsubp", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fdivrp", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
	{"fdivp", 0x100, 0, 0x11, 0x1040, 0xAF, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDERM3 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fcompp", 0x100, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDF = []Def{
	{"fild", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fisttp", 0x13, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fist", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fistp", 0x100, 0, 0x11, 0x2002, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fbld", 0x100, 0, 0x11, 0x2005, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fild", 0x100, 0, 0x11, 0x2004, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fbstp", 0x100, 0, 0x11, 0x2005, 0, 0, 0, 0, 0, 0, 0, 0},
	{"fistp", 0x100, 0, 0x11, 0x2004, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x100, 0, 0, 0, 0, 0, 0, 0, 0, LinkRM, tabDFRM4, 0},
	{"fucomip", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 4},
	{"fcomip", 6, 0, 0x11, 0xAF, 0x1040, 0, 0, 0, 0, 0, 0, 4},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var fpuDFRM4 = []Def{
	{"fnstsw", 0x100, 0, 2, 0xA2, 0, 0, 0, 0, 0, 0, 0, 0},
}

// SSE move and shuffle prefix tables.
var sse0F10 = []Def{
	{"movups", 0x11, 0x850000, 0x12, 0x251, 0x251, 0, 0, 0x20, 0, 0, 0, 2},
	{"movupd", 0x12, 0x850000, 0x12, 0x251, 0x251, 0, 0, 0x20, 0, 0, 0, 2},
	{"movsd", 0x12, 0x890000, 0x12, 0x44C, 0x44C, 0, 0, 0x28, 0, 0, 0, 2},
	{"movss", 0x11, 0x890000, 0x12, 0x44B, 0x44B, 0, 0, 0x28, 0, 0, 0, 2},
}

var sse0F11 = []Def{
	{"movups", 0x11, 0x850000, 0x13, 0x251, 0x251, 0, 0, 0x20, 0, 0, 0, 2},
	{"movupd", 0x12, 0x850000, 0x13, 0x251, 0x251, 0, 0, 0x20, 0, 0, 0, 2},
	{"movsd", 0x12, 0x890000, 0x13, 0x44C, 0x44C, 0, 0, 0x28, 0, 0, 0, 2},
	{"movss", 0x11, 0x890000, 0x13, 0x44B, 0x44B, 0, 0, 0x28, 0, 0, 0, 2},
}

var sse0F12 = []Def{
	{"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkMod, tab0F12M, 0},
	{"movlpd", 0x12, 0x90000, 0x12, 0x404, 0x2044, 0, 0, 0, 0, 0, 0, 2},
	{"movddup", 0x13, 0x850000, 0x12, 0x204, 0x244C, 0, 0, 0x22, 0, 0, 0, 2},
	{"movsldup", 0x13, 0x850000, 0x12, 0x204, 0x204, 0, 0, 0x21, 0, 0, 0, 2},
}

var sse0F12M = []Def{
	{"movlps", 0x11, 0x90000, 0x12, 0x404, 0x2044, 0, 0, 0, 0, 0, 0, 2},
	{"movhlps", 0x11, 0x90000, 0x12, 0x404, 0x1404, 0, 0, 0, 0, 0, 0, 2},
}

var sse0F16 = []Def{
	{"", 0x11, 0, 0, 0, 0, 0, 0, 0, 0, LinkMod, tab0F16M, 0},
	{"movhpd", 0x12, 0x90000, 0x12, 0x404, 0x2044, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"movshdup", 0x13, 0x850000, 0x12, 0x204, 0x204, 0, 0, 0x21, 0, 0, 0, 2},
}

var sse0F16M = []Def{
	{"movhps", 0x11, 0x90000, 0x12, 0x404, 0x2044, 0, 0, 0, 0, 0, 0, 2},
	{"movlhps", 0x11, 0x90000, 0x12, 0x404, 0x1404, 0, 0, 0, 0, 0, 0, 2},
}

var sse0F28 = []Def{
	{"movaps", 0x11, 0x850000, 0x12, 0x250, 0x250, 0, 0, 0x20, 0, 0, 0, 0x102},
	{"movapd", 0x12, 0x850000, 0x12, 0x250, 0x250, 0, 0, 0x20, 0, 0, 0, 0x102},
}

var sse0F29 = []Def{
	{"movaps", 0x11, 0x850000, 0x13, 0x250, 0x250, 0, 0, 0x20, 0, 0, 0, 0x102},
	{"movapd", 0x12, 0x850000, 0x13, 0x250, 0x250, 0, 0, 0x20, 0, 0, 0, 0x102},
}

var sse0F2E = []Def{
	{"ucomiss", 0x11, 0x850000, 0x12, 0x44B, 0x44B, 0, 0, 0x0A, 0, 0, 0, 6},
	{"ucomisd", 0x12, 0x850000, 0x12, 0x44C, 0x44C, 0, 0, 0x0A, 0, 0, 0, 6},
}

var sse0F2F = []Def{
	{"comiss", 0x11, 0x850000, 0x12, 0x44B, 0x44B, 0, 0, 0x0A, 0, 0, 0, 6},
	{"comisd", 0x12, 0x850000, 0x12, 0x44C, 0x44C, 0, 0, 0x0A, 0, 0, 0, 6},
}

var sse0F6E = []Def{
	{"mov", 7, 0x3000, 0x12, 0x303, 9, 0, 0, 0, 0, 0, 0, 1},
	{"mov", 0x12, 0x853000, 0x12, 0x403, 9, 0, 0, 0x08, 0, 0, 0, 3},
}

var sse0F6F = []Def{
	{"movq", 7, 0, 0x12, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	{"", 0x12, 0, 0, 0, 0, 0, 0, 0, 0, LinkVexShort, tab0F6F66, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"movdqu", 0x12, 0x850000, 0x12, 0x251, 0x251, 0, 0, 0x20, 0, 0, 0, 2},
}

var sse0F6F66 = []Def{
	{"movdqa", 0x12, 0x850000, 0x12, 0x250, 0x250, 0, 0, 0, 0, 0, 0, 0x102},
	{"", 0x20, 0, 0, 0, 0, 0, 0, 0, 0, LinkVexW, tab0F6FE, 0},
}

var sse0F6FE = []Def{
	{"vmovdqa32", 0x20, 0x850000, 0x12, 0x250, 0x250, 0, 0, 0x20, 0, 0, 0, 0x100},
	{"vmovdqa64", 0x20, 0x850000, 0x12, 0x250, 0x250, 0, 0, 0x20, 0, 0, 0, 0x100},
}

var sse0F70 = []Def{
	{"pshufw", 7, 0, 0x52, 0x303, 0x303, 0x11, 0, 0, 0, 0, 0, 0},
	{"pshufd", 0x12, 0x850000, 0x52, 0x203, 0x203, 0x11, 0, 0x21, 0, 0, 0, 2},
	{"pshuflw", 0x12, 0x850000, 0x52, 0x202, 0x202, 0x11, 0, 0x20, 0, 0, 0, 2},
	{"pshufhw", 0x12, 0x850000, 0x52, 0x202, 0x202, 0x11, 0, 0x20, 0, 0, 0, 2},
}

// Vector shift-by-immediate groups (0F 71/72/73).
var grp12 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psrlw", 7, 0x8D0200, 0x51, 0x1102, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psraw", 7, 0x8D0200, 0x51, 0x1102, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psllw", 7, 0x8D0200, 0x51, 0x1102, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var grp13 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psrld", 7, 0x8D0200, 0x51, 0x1103, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psrad", 7, 0x8D0200, 0x51, 0x1103, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"pslld", 7, 0x8D0200, 0x51, 0x1103, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var grp14 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psrlq", 7, 0x8D0200, 0x51, 0x1104, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"psrldq", 0x12, 0x8D8200, 0x51, 0x1104, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"psllq", 7, 0x8D0200, 0x51, 0x1104, 0x11, 0, 0, 0, 0, 0, 0, 2},
	{"pslldq", 0x12, 0x8D8200, 0x51, 0x1104, 0x11, 0, 0, 0, 0, 0, 0, 2},
}

var sse0F77 = []Def{
	{"emms", 7, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"vzeroupper", 0x19, 0x20000, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"vzeroall", 0x19, 0x120000, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var sse0F7E = []Def{
	{"mov", 7, 0x3000, 0x13, 9, 0x303, 0, 0, 0, 0, 0, 0, 1},
	{"mov", 0x12, 0x853000, 0x13, 9, 0x403, 0, 0, 0x08, 0, 0, 0, 3},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"movq", 0x12, 0x850000, 0x12, 0x404, 0x404, 0, 0, 0x08, 0, 0, 0, 2},
}

var sse0F7F = []Def{
	{"movq", 7, 0, 0x13, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	{"movdqa", 0x12, 0x850000, 0x13, 0x250, 0x250, 0, 0, 0, 0, 0, 0, 0x102},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"movdqu", 0x12, 0x850000, 0x13, 0x251, 0x251, 0, 0, 0x20, 0, 0, 0, 2},
}

// 0F AE: fences and save/restore state.
var grpAE = []Def{
	{"fxsave", 0x12, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"fxrstor", 0x12, 0, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"ldmxcsr", 0x11, 0x10000, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 2},
	{"stmxcsr", 0x11, 0x10000, 0x11, 0x2003, 0, 0, 0, 0, 0, 0, 0, 2},
	{"xsave", 0x1D, 0x1000, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"xrstor", 0x1D, 0x1000, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"xsaveopt", 0x1D, 0x1000, 0x11, 0x2006, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"clflush", 0x12, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"lfence", 0x12, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"mfence", 0x12, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"sfence", 0x11, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var sse0FB8 = []Def{
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"popcnt", 0x16, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
}

var sse0FBC = []Def{
	{"bsf", 3, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	{"bsf", 3, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"tzcnt", 0x1D, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
}

var sse0FBD = []Def{
	{"bsr", 3, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	{"bsr", 3, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"lzcnt", 0x1D, 0x1100, 0x12, 9, 9, 0, 0, 0, 0, 0, 0, 0},
}

var amd0F0D = []Def{
	{"prefetch", 0x1001, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"prefetchw", 0x1001, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
}

var hint0F18 = []Def{
	{"prefetchnta", 0x11, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"prefetcht0", 0x11, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"prefetcht1", 0x11, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"prefetcht2", 0x11, 0, 0x11, 0x2001, 0, 0, 0, 0, 0, 0, 0, 0x800},
	{"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 6, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
}

// 0F 1F: the canonical multi-byte NOP family.
var nop0F1F = []Def{
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
	{"nop", 8, 0x1100, 0x11, 9, 0, 0, 0, 0, 0, 0, 0, 0x40},
}

// movbe/crc32 and the BMI shift group.
var sse0F38F0 = []Def{
	{"movbe", 0x16, 0x100, 0x12, 9, 0x2009, 0, 0, 0, 0, 0, 0, 0},
	{"movbe", 0x16, 0x100, 0x12, 9, 0x2009, 0, 0, 0, 0, 0, 0, 0},
	{"crc32", 0x16, 0x1100, 0x12, 3, 1, 0, 0, 0, 0, 0, 0, 0},
}

var sse0F38F1 = []Def{
	{"movbe", 0x16, 0x100, 0x13, 0x2009, 9, 0, 0, 0, 0, 0, 0, 0},
	{"movbe", 0x16, 0x100, 0x13, 0x2009, 9, 0, 0, 0, 0, 0, 0, 0},
	{"crc32", 0x16, 0x1100, 0x12, 3, 9, 0, 0, 0, 0, 0, 0, 0},
}

var bmi0F38F7 = []Def{
	{"bextr", 0x1D, 0xA1000 | 0x20000, 0x1B, 9, 9, 9, 0, 0, 0, 0, 0, 0},
	{"shlx", 0x1D, 0xA1000 | 0x20000, 0x1B, 9, 9, 9, 0, 0, 0, 0, 0, 0},
	{"shrx", 0x1D, 0xA1000 | 0x20000, 0x1B, 9, 9, 9, 0, 0, 0, 0, 0, 0},
	{"sarx", 0x1D, 0xA1000 | 0x20000, 0x1B, 9, 9, 9, 0, 0, 0, 0, 0, 0},
}

// Scalar and packed conversion prefix tables (0F 2A/2C/2D/5A/5B).
var sse0F2A = []Def{
	{"cvtpi2ps", 0x11, 0, 0x12, 0x404, 0x303, 0, 0, 0, 0, 0, 0, 0},
	{"cvtpi2pd", 0x12, 0x200, 0x12, 0x404, 0x303, 0, 0, 0, 0, 0, 0, 0},
	{"cvtsi2sd", 0x12, 0x881000 | 0x10000, 0x12, 0x44C, 9, 0, 0, 0x0E, 0, 0, 0, 2},
	{"cvtsi2ss", 0x11, 0x881000 | 0x10000, 0x12, 0x44B, 9, 0, 0, 0x0E, 0, 0, 0, 2},
}

var sse0F2C = []Def{
	{"cvttps2pi", 0x11, 0, 0x12, 0x303, 0x404, 0, 0, 0, 0, 0, 0, 0},
	{"cvttpd2pi", 0x12, 0x200, 0x12, 0x303, 0x404, 0, 0, 0, 0, 0, 0, 0},
	{"cvttsd2si", 0x12, 0x851000, 0x12, 9, 0x44C, 0, 0, 0x0A, 0, 0, 0, 2},
	{"cvttss2si", 0x11, 0x851000, 0x12, 9, 0x44B, 0, 0, 0x0A, 0, 0, 0, 2},
}

var sse0F2D = []Def{
	{"cvtps2pi", 0x11, 0, 0x12, 0x303, 0x404, 0, 0, 0, 0, 0, 0, 0},
	{"cvtpd2pi", 0x12, 0x200, 0x12, 0x303, 0x404, 0, 0, 0, 0, 0, 0, 0},
	{"cvtsd2si", 0x12, 0x851000, 0x12, 9, 0x44C, 0, 0, 0x0E, 0, 0, 0, 2},
	{"cvtss2si", 0x11, 0x851000, 0x12, 9, 0x44B, 0, 0, 0x0E, 0, 0, 0, 2},
}

var sse0F5A = []Def{
	{"cvtps2pd", 0x12, 0x850000, 0x12, 0x204, 0xF4B, 0, 0, 0x23, 0, 0, 0, 2},
	{"cvtpd2ps", 0x12, 0x850000, 0x12, 0xF4B, 0x204, 0, 0, 0x27, 0, 0, 0, 2},
	{"cvtsd2ss", 0x12, 0x890000, 0x19, 0x44B, 0x44C, 0x44C, 0, 0x2E, 0, 0, 0, 2},
	{"cvtss2sd", 0x12, 0x890000, 0x19, 0x44C, 0x44B, 0x44B, 0, 0x2A, 0, 0, 0, 2},
}

var sse0F5B = []Def{
	{"cvtdq2ps", 0x12, 0x850000, 0x12, 0x203, 0x203, 0, 0, 0x27, 0, 0, 0, 2},
	{"cvtps2dq", 0x12, 0x850000, 0x12, 0x203, 0x203, 0, 0, 0x27, 0, 0, 0, 2},
	{"", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"cvttps2dq", 0x12, 0x850000, 0x12, 0x203, 0x203, 0, 0, 0x23, 0, 0, 0, 2},
}

var map0F38 = []Def{
	0x00: {"pshufb", 0x14, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x01: {"phaddw", 0x14, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0, 0, 0, 0, 2},
	0x02: {"phaddd", 0x14, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0, 0, 0, 0, 2},
	0x03: {"phaddsw", 0x14, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0, 0, 0, 0, 2},
	0x04: {"pmaddubsw", 0x14, 0x8D0200, 0x19, 0x102, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x05: {"phsubw", 0x14, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0, 0, 0, 0, 2},
	0x06: {"phsubd", 0x14, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0, 0, 0, 0, 2},
	0x07: {"phsubsw", 0x14, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0, 0, 0, 0, 2},
	0x08: {"psignb", 0x14, 0x8D0200, 0x19, 0x101, 0x101, 0x101, 0, 0, 0, 0, 0, 2},
	0x09: {"psignw", 0x14, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0, 0, 0, 0, 2},
	0x0A: {"psignd", 0x14, 0x8D0200, 0x19, 0x103, 0x103, 0x103, 0, 0, 0, 0, 0, 2},
	0x0B: {"pmulhrsw", 0x14, 0x8D0200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x17: {"ptest", 0x15, 0x58200, 0x12, 0x204, 0x204, 0, 0, 0, 0, 0, 0, 6},
	0x20: {"pmovsxbw", 0x15, 0x858200, 0x12, 0x202, 0xF01, 0, 0, 0x20, 0, 0, 0, 2},
	0x21: {"pmovsxbd", 0x15, 0x858200, 0x12, 0x203, 0xF01, 0, 0, 0x21, 0, 0, 0, 2},
	0x22: {"pmovsxbq", 0x15, 0x858200, 0x12, 0x204, 0xF01, 0, 0, 0x22, 0, 0, 0, 2},
	0x23: {"pmovsxwd", 0x15, 0x858200, 0x12, 0x203, 0xF02, 0, 0, 0x21, 0, 0, 0, 2},
	0x24: {"pmovsxwq", 0x15, 0x858200, 0x12, 0x204, 0xF02, 0, 0, 0x22, 0, 0, 0, 2},
	0x25: {"pmovsxdq", 0x15, 0x858200, 0x12, 0x204, 0xF03, 0, 0, 0x22, 0, 0, 0, 2},
	0x28: {"pmuldq", 0x15, 0x8D8200, 0x19, 0x104, 0x103, 0x103, 0, 0x22, 0, 0, 0, 2},
	0x29: {"pcmpeqq", 0x15, 0x8D8200, 0x19, 0x104, 0x104, 0x104, 0, 0x22, 0, 0, 0, 2},
	0x2A: {"movntdqa", 0x15, 0x858200, 0x12, 0x204, 0x2204, 0, 0, 0x20, 0, 0, 0, 0x102},
	0x2B: {"packusdw", 0x15, 0x8D8200, 0x19, 0x102, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x30: {"pmovzxbw", 0x15, 0x858200, 0x12, 0x202, 0xF01, 0, 0, 0x20, 0, 0, 0, 2},
	0x31: {"pmovzxbd", 0x15, 0x858200, 0x12, 0x203, 0xF01, 0, 0, 0x21, 0, 0, 0, 2},
	0x32: {"pmovzxbq", 0x15, 0x858200, 0x12, 0x204, 0xF01, 0, 0, 0x22, 0, 0, 0, 2},
	0x33: {"pmovzxwd", 0x15, 0x858200, 0x12, 0x203, 0xF02, 0, 0, 0x21, 0, 0, 0, 2},
	0x34: {"pmovzxwq", 0x15, 0x858200, 0x12, 0x204, 0xF02, 0, 0, 0x22, 0, 0, 0, 2},
	0x35: {"pmovzxdq", 0x15, 0x858200, 0x12, 0x204, 0xF03, 0, 0, 0x22, 0, 0, 0, 2},
	0x37: {"pcmpgtq", 0x16, 0x8D8200, 0x19, 0x104, 0x104, 0x104, 0, 0x22, 0, 0, 0, 2},
	0x38: {"pminsb", 0x15, 0x8D8200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x39: {"pminsd", 0x15, 0x8D8200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x3A: {"pminuw", 0x15, 0x8D8200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x3B: {"pminud", 0x15, 0x8D8200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x3C: {"pmaxsb", 0x15, 0x8D8200, 0x19, 0x101, 0x101, 0x101, 0, 0x20, 0, 0, 0, 2},
	0x3D: {"pmaxsd", 0x15, 0x8D8200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x3E: {"pmaxuw", 0x15, 0x8D8200, 0x19, 0x102, 0x102, 0x102, 0, 0x20, 0, 0, 0, 2},
	0x3F: {"pmaxud", 0x15, 0x8D8200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x40: {"pmulld", 0x15, 0x8D8200, 0x19, 0x103, 0x103, 0x103, 0, 0x21, 0, 0, 0, 2},
	0x41: {"phminposuw", 0x15, 0x58200, 0x12, 0x402, 0x402, 0, 0, 0, 0, 0, 0, 2},
	0xDB: {"aesimc", 0x17, 0x58200, 0x12, 0x404, 0x404, 0, 0, 0, 0, 0, 0, 2},
	0xDC: {"aesenc", 0x17, 0x8D8200, 0x19, 0x404, 0x404, 0x404, 0, 0, 0, 0, 0, 2},
	0xDD: {"aesenclast", 0x17, 0x8D8200, 0x19, 0x404, 0x404, 0x404, 0, 0, 0, 0, 0, 2},
	0xDE: {"aesdec", 0x17, 0x8D8200, 0x19, 0x404, 0x404, 0x404, 0, 0, 0, 0, 0, 2},
	0xDF: {"aesdeclast", 0x17, 0x8D8200, 0x19, 0x404, 0x404, 0x404, 0, 0, 0, 0, 0, 2},
	0xF0: {"", 0x16, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F38F0, 0},
	0xF1: {"", 0x16, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F38F1, 0},
	0xF2: {"andn", 0x1D, 0xA1000 | 0x20000, 0x19, 9, 9, 9, 0, 0, 0, 0, 0, 0},
	0xF7: {"", 0x1D, 0, 0, 0, 0, 0, 0, 0, 0, LinkPrefix, tab0F38F7, 0},
}

var map0F3A = []Def{
	0x08: {"roundps", 0x15, 0x58200, 0x52, 0x204, 0x204, 0x11, 0, 0, 0, 0, 0, 2},
	0x09: {"roundpd", 0x15, 0x58200, 0x52, 0x204, 0x204, 0x11, 0, 0, 0, 0, 0, 2},
	0x0A: {"roundss", 0x15, 0x98200, 0x59, 0x44B, 0x44B, 0x44B, 0x11, 0, 0, 0, 0, 2},
	0x0B: {"roundsd", 0x15, 0x98200, 0x59, 0x44C, 0x44C, 0x44C, 0x11, 0, 0, 0, 0, 2},
	0x0C: {"blendps", 0x15, 0xD8200, 0x59, 0x204, 0x204, 0x204, 0x11, 0, 0, 0, 0, 2},
	0x0D: {"blendpd", 0x15, 0xD8200, 0x59, 0x204, 0x204, 0x204, 0x11, 0, 0, 0, 0, 2},
	0x0E: {"pblendw", 0x15, 0xD8200, 0x59, 0x202, 0x202, 0x202, 0x11, 0, 0, 0, 0, 2},
	0x0F: {"palignr", 0x14, 0x8D0200, 0x59, 0x101, 0x101, 0x101, 0x11, 0x20, 0, 0, 0, 2},
	0x14: {"pextrb", 0x15, 0x58200, 0x53, 1, 0x1404, 0x11, 0, 0, 0, 0, 0, 2},
	0x15: {"pextrw", 0x15, 0x58200, 0x53, 2, 0x1404, 0x11, 0, 0, 0, 0, 0, 2},
	0x16: {"pextr", 0x15, 0x5B200, 0x53, 9, 0x1404, 0x11, 0, 0, 0, 0, 0, 3},
	0x17: {"extractps", 0x15, 0x58200, 0x53, 3, 0x1404, 0x11, 0, 0, 0, 0, 0, 2},
	0x20: {"pinsrb", 0x15, 0xD8200, 0x59, 0x402, 1, 0x11, 0, 0, 0, 0, 0, 2},
	0x21: {"insertps", 0x15, 0xD8200, 0x59, 0x404, 0x44B, 0x11, 0, 0, 0, 0, 0, 2},
	0x22: {"pinsr", 0x15, 0xDB200, 0x59, 0x404, 9, 0x11, 0, 0, 0, 0, 0, 3},
	0x40: {"dpps", 0x15, 0xD8200, 0x59, 0x204, 0x204, 0x204, 0x11, 0, 0, 0, 0, 2},
	0x41: {"dppd", 0x15, 0xD8200, 0x59, 0x404, 0x404, 0x404, 0x11, 0, 0, 0, 0, 2},
	0x42: {"mpsadbw", 0x15, 0xD8200, 0x59, 0x202, 0x201, 0x201, 0x11, 0, 0, 0, 0, 2},
	0x44: {"pclmulqdq", 0x18, 0xD8200, 0x59, 0x404, 0x404, 0x404, 0x11, 0, 0, 0, 0, 2},
	0x60: {"pcmpestrm", 0x16, 0x58200, 0x52, 0x404, 0x404, 0x11, 0, 0, 0, 0, 0, 2},
	0x61: {"pcmpestri", 0x16, 0x58200, 0x52, 0x404, 0x404, 0x11, 0, 0, 0, 0, 0, 2},
	0x62: {"pcmpistrm", 0x16, 0x58200, 0x52, 0x404, 0x404, 0x11, 0, 0, 0, 0, 0, 2},
	0x63: {"pcmpistri", 0x16, 0x58200, 0x52, 0x404, 0x404, 0x11, 0, 0, 0, 0, 0, 2},
	0xDF: {"aeskeygenassist", 0x17, 0x58200, 0x52, 0x404, 0x404, 0x11, 0, 0, 0, 0, 0, 2},
}

// AMD 3DNow: 0F 0F with the trailing immediate byte selecting the operation.
var map3DNow = []Def{
	0x0D: {"pi2fd", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0x1D: {"pf2id", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0x90: {"pfcmpge", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0x94: {"pfmin", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0x96: {"pfrcp", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0x9A: {"pfsub", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0x9E: {"pfadd", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xA0: {"pfcmpgt", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xA4: {"pfmax", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xA6: {"pfrcpit1", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xAA: {"pfsubr", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xAE: {"pfacc", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xB0: {"pfcmpeq", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xB4: {"pfmul", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xB6: {"pfrcpit2", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xB7: {"pmulhrw", 0x1001, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
	0xBF: {"pavgusb", 0x1002, 0, 0x52, 0x303, 0x303, 0, 0, 0, 0, 0, 0, 0},
}

// XOP start pages. The XOP extension never shipped beyond a few AMD
// generations; any byte decodes as illegal.
var mapXOP8 = []Def{}
var mapXOP9 = []Def{}
var mapXOPA = []Def{}

// Tables is the forest. Indexed by the Tab/tab constants; links store
// these indices in Def.LinkTab.
var Tables = [numTables][]Def{
	TabOneByte:   oneByteMap,
	Tab0F:        map0F,
	Tab0F38:      map0F38,
	Tab0F3A:      map0F3A,
	Tab3DNow:     map3DNow,
	TabXOP8:      mapXOP8,
	TabXOP9:      mapXOP9,
	TabXOPA:      mapXOPA,
	tabGrp1b:     grp1b,
	tabGrp1v:     grp1v,
	tabGrp1s:     grp1s,
	tabGrp2b:     grp2b,
	tabGrp2v:     grp2v,
	tabGrp2b1:    grp2b1,
	tabGrp2v1:    grp2v1,
	tabGrp2bc:    grp2bc,
	tabGrp2vc:    grp2vc,
	tabGrp3b:     grp3b,
	tabGrp3v:     grp3v,
	tabGrp4:      grp4,
	tabGrp5:      grp5,
	tabGrp6:      grp6,
	tabGrp7:      grp7,
	tab0F01R7:    t0F01R7,
	tabGrp8:      grp8,
	tabGrp9:      grp9,
	tabCmpxchgNB: cmpxchgNB,
	tabGrp11b:    grp11b,
	tabGrp11v:    grp11v,
	tabPopRM:     popRM,
	tab63:        t63,
	tabPusha:     pushaT,
	tabPopa:      popaT,
	tabCBW:       cbwT,
	tabCWD:       cwdT,
	tabJcxz:      jcxzT,
	tab90:        nop90,
	tabRetfI:     retfIT,
	tabRetf:      retfT,
	tabD8:        fpuD8,
	tabD9:        fpuD9,
	tabD9R2:      fpuD9R2,
	tabD9R4:      fpuD9R4,
	tabD9R5:      fpuD9R5,
	tabD9R6:      fpuD9R6,
	tabD9R7:      fpuD9R7,
	tabDA:        fpuDA,
	tabDARM5:     fpuDARM5,
	tabDB:        fpuDB,
	tabDBRM4:     fpuDBRM4,
	tabDC:        fpuDC,
	tabDD:        fpuDD,
	tabDE:        fpuDE,
	tabDERM3:     fpuDERM3,
	tabDF:        fpuDF,
	tabDFRM4:     fpuDFRM4,
	tab0F10:      sse0F10,
	tab0F11:      sse0F11,
	tab0F12:      sse0F12,
	tab0F12M:     sse0F12M,
	tab0F16:      sse0F16,
	tab0F16M:     sse0F16M,
	tab0F28:      sse0F28,
	tab0F29:      sse0F29,
	tab0F2E:      sse0F2E,
	tab0F2F:      sse0F2F,
	tab0F6E:      sse0F6E,
	tab0F6F:      sse0F6F,
	tab0F6F66:    sse0F6F66,
	tab0F6FE:     sse0F6FE,
	tab0F70:      sse0F70,
	tabGrp12:     grp12,
	tabGrp13:     grp13,
	tabGrp14:     grp14,
	tab0F77:      sse0F77,
	tab0F7E:      sse0F7E,
	tab0F7F:      sse0F7F,
	tab0FAE:      grpAE,
	tab0FB8:      sse0FB8,
	tab0FBC:      sse0FBC,
	tab0FBD:      sse0FBD,
	tab0F0D:      amd0F0D,
	tab0F18:      hint0F18,
	tab0F1F:      nop0F1F,
	tab0F38F0:    sse0F38F0,
	tab0F38F1:    sse0F38F1,
	tab0F38F7:    bmi0F38F7,
	tab0F2A:      sse0F2A,
	tab0F2C:      sse0F2C,
	tab0F2D:      sse0F2D,
	tab0F5A:      sse0F5A,
	tab0F5B:      sse0F5B,
}

// Illegal is the terminal entry used when a lookup runs off a table or
// lands on a zero Def.
var Illegal = Def{}

// Lookup returns the entry at index i of table t, or Illegal when the
// index is out of range. Sparse tables rely on this bound check.
func Lookup(t uint16, i uint32) *Def {
	if int(t) >= len(Tables) || int(i) >= len(Tables[t]) {
		return &Illegal
	}
	return &Tables[t][i]
}

// SwizSpec describes one MVEX swizzle table entry: memory operand form,
// byte offset multiplier and the permutation/conversion/rounding name.
type SwizSpec struct {
	MemOp       uint32
	MemOpSize   uint32
	ElementSize uint32
	Name        string
}

// SwizTables holds the MVEX swizzle specs indexed by the entry's MVEX field
// low bits, then by sss. The MVEX extension is discontinued; only the plain
// Sf32/Sf64/Si32/Si64 rows are carried, everything else decodes illegal.
var SwizTables = map[uint16][8]SwizSpec{
	4: {{0x4B, 64, 4, ""}, {0x4B, 64, 4, "cdab"}, {0x4B, 64, 4, "badc"}, {0x4B, 64, 4, "dacb"}, {0x4B, 16, 4, "aaaa"}, {0x4B, 16, 4, "bbbb"}, {0x4B, 16, 4, "cccc"}, {0x4B, 16, 4, "dddd"}},
	5: {{0x4C, 64, 8, ""}, {0x4C, 64, 8, "cdab"}, {0x4C, 64, 8, "badc"}, {0x4C, 64, 8, "dacb"}, {0x4C, 32, 8, "aaaa"}, {0x4C, 32, 8, "bbbb"}, {0x4C, 32, 8, "cccc"}, {0x4C, 32, 8, "dddd"}},
	6: {{3, 64, 4, ""}, {3, 64, 4, "cdab"}, {3, 64, 4, "badc"}, {3, 64, 4, "dacb"}, {3, 16, 4, "aaaa"}, {3, 16, 4, "bbbb"}, {3, 16, 4, "cccc"}, {3, 16, 4, "dddd"}},
	7: {{4, 64, 8, ""}, {4, 64, 8, "cdab"}, {4, 64, 8, "badc"}, {4, 64, 8, "dacb"}, {4, 32, 8, "aaaa"}, {4, 32, 8, "bbbb"}, {4, 32, 8, "cccc"}, {4, 32, 8, "dddd"}},
}

// EVEXRoundingNames are the static rounding mode names selected by the
// EVEX LL bits when rounding control applies.
var EVEXRoundingNames = [5]string{"rn-sae", "rd-sae", "ru-sae", "rz-sae", "sae"}
