package decode

import (
	"disx86/internal/obj"
	"disx86/internal/opcode"
)

// RelocLookup resolves a byte range (section offset, size) to the
// relocation whose source lies inside it. Returns (-1, nil) when none.
type RelocLookup func(offset, size uint32) (int32, *obj.Relocation)

// Decoder decodes single instructions from a section byte buffer.
// A Decoder carries no per-instruction state; Decode allocates a fresh
// record every call.
type Decoder struct {
	Mode   uint32 // 16, 32 or 64
	Syntax uint32 // dialect index consulted by dialect-linked table entries
	Relocs RelocLookup
}

// ppPrefix translates VEX.pp bits to the equivalent legacy prefix byte.
var ppPrefix = [4]uint8{0, 0x66, 0xF3, 0xF2}

// Decode decodes the instruction starting at pos. The decoder never reads
// at or past len(code); running off the end sets ErrTruncated and the
// record covers the bytes consumed so far. Every decode consumes at least
// one byte.
func (d *Decoder) Decode(code []byte, pos uint32) Inst {
	s := scan{d: d, code: code, in: Inst{Start: pos, AddressRelocation: -1, ImmediateRelocation: -1}, pos: pos}
	s.run()
	if s.in.End <= s.in.Start {
		s.in.End = s.in.Start + 1
		if s.in.End > uint32(len(code)) {
			s.in.End = uint32(len(code))
		}
	}
	return s.in
}

type scan struct {
	d     *Decoder
	code  []byte
	in    Inst
	pos   uint32
	trunc bool
}

func (s *scan) peek(ahead uint32) (byte, bool) {
	if s.pos+ahead >= uint32(len(s.code)) {
		return 0, false
	}
	return s.code[s.pos+ahead], true
}

func (s *scan) next() byte {
	b, ok := s.peek(0)
	if !ok {
		s.trunc = true
		s.in.Errors |= ErrTruncated
		return 0
	}
	s.pos++
	return b
}

func (s *scan) at(off uint32) byte {
	if off >= uint32(len(s.code)) {
		s.trunc = true
		s.in.Errors |= ErrTruncated
		return 0
	}
	return s.code[off]
}

func (s *scan) store(cat int, b uint8) {
	if s.in.Prefixes[cat] != 0 {
		s.in.Conflicts[cat]++
	}
	s.in.Prefixes[cat] = b
}

func (s *scan) run() {
	in := &s.in
	s.scanPrefixes()
	if s.trunc {
		in.End = s.pos
		return
	}

	in.AddressSize = s.addressSize()
	in.OpcodeStart1 = s.pos

	entry := s.findMapEntry()
	in.Entry = entry
	in.OperandSize = s.operandSize(entry)

	s.findOperands(entry)
	s.assignOperands(entry)
	s.vexPost(entry)
	s.findRelocations()
	s.findErrors(entry)
	s.findWarnings(entry)

	if s.trunc {
		in.Errors |= ErrTruncated
		if in.End > uint32(len(s.code)) {
			in.End = uint32(len(s.code))
		}
	}
}

// scanPrefixes consumes prefix bytes into their category slots. The VEX,
// EVEX and XOP prefixes terminate the scan since the opcode byte follows
// their payload immediately.
func (s *scan) scanPrefixes() {
	in := &s.in
	for {
		b, ok := s.peek(0)
		if !ok {
			s.trunc = true
			in.Errors |= ErrTruncated | ErrIllegal
			return
		}
		switch {
		case b == 0x26 || b == 0x2E || b == 0x36 || b == 0x3E || b == 0x64 || b == 0x65:
			s.store(CatSeg, b)
			s.pos++
		case b == 0x67:
			s.store(CatAddr, b)
			s.pos++
		case b == 0xF0:
			s.store(CatLock, b)
			s.pos++
		case b == 0x66:
			s.store(CatOpSize, b)
			s.store(CatType, b)
			s.pos++
		case b == 0xF2 || b == 0xF3:
			s.store(CatRep, b)
			s.store(CatType, b)
			s.pos++
		case s.d.Mode == 64 && b >= 0x40 && b <= 0x4F:
			s.store(CatRex, RexRex|b&0x0F)
			s.pos++
		case b == 0xC5 && s.vexLegal():
			s.pos++
			p := s.next()
			s.store(CatRep, 0xC5)
			flags := uint8(Rex2B)
			if p&0x80 == 0 {
				flags |= RexR
			}
			s.store(CatRex, flags)
			in.VexType = VexVEX
			in.VexMap = 1
			in.VexL = uint32(p>>2) & 1
			in.Vreg = uint32(^p>>3) & 0x0F
			s.storePP(p & 3)
			return
		case b == 0xC4 && s.vexLegal():
			s.pos++
			s.vex3(0)
			return
		case b == 0x8F && s.xopLegal():
			s.pos++
			s.vex3(RexXOP)
			return
		case b == 0x62 && s.evexLegal():
			s.pos++
			s.evex()
			return
		default:
			return
		}
	}
}

// vexLegal reports whether C4/C5 starts a VEX prefix here. Outside
// 64-bit mode the bytes are les/lds unless the next byte has mod == 3.
func (s *scan) vexLegal() bool {
	if s.d.Mode == 64 {
		return true
	}
	b, ok := s.peek(1)
	return ok && b >= 0xC0
}

// evexLegal reports whether 62 starts an EVEX/MVEX prefix (it is the
// bound instruction outside 64-bit mode when the next byte has mod < 3).
func (s *scan) evexLegal() bool {
	if s.d.Mode == 64 {
		return true
	}
	b, ok := s.peek(1)
	return ok && b >= 0xC0
}

// xopLegal reports whether 8F starts an XOP prefix; with mmmmm < 8 the
// byte is the pop group instead.
func (s *scan) xopLegal() bool {
	b, ok := s.peek(1)
	return ok && b&0x1F >= 8
}

func (s *scan) storePP(pp uint8) {
	if p := ppPrefix[pp&3]; p != 0 {
		s.store(CatType, p)
	}
}

// vex3 consumes the two payload bytes of a 3-byte VEX or XOP prefix.
func (s *scan) vex3(extra uint8) {
	in := &s.in
	p1 := s.next()
	p2 := s.next()
	if extra&RexXOP != 0 {
		s.store(CatRep, 0x8F)
		in.VexType = VexVEX
	} else {
		s.store(CatRep, 0xC4)
		in.VexType = VexVEX
	}
	flags := uint8(Rex3B) | extra
	if p1&0x80 == 0 {
		flags |= RexR
	}
	if p1&0x40 == 0 {
		flags |= RexX
	}
	if p1&0x20 == 0 {
		flags |= RexB
	}
	if p2&0x80 != 0 {
		flags |= RexW
	}
	s.store(CatRex, flags)
	in.VexMap = uint32(p1) & 0x1F
	in.Vreg = uint32(^p2>>3) & 0x0F
	in.VexL = uint32(p2>>2) & 1
	s.storePP(p2 & 3)
}

// evex consumes the three payload bytes of an EVEX or MVEX prefix.
func (s *scan) evex() {
	in := &s.in
	p0 := s.next()
	p1 := s.next()
	p2 := s.next()
	s.store(CatRep, 0x62)
	flags := uint8(Rex3B)
	if p0&0x80 == 0 {
		flags |= RexR
	}
	if p0&0x40 == 0 {
		flags |= RexX
	}
	if p0&0x20 == 0 {
		flags |= RexB
	}
	if p1&0x80 != 0 {
		flags |= RexW
	}
	s.store(CatRex, flags)
	if p0&0x08 != 0 {
		in.Errors |= ErrReserved
	}
	in.VexMap = uint32(p0) & 0x07
	in.Vreg = uint32(^p1>>3) & 0x0F
	if p2&0x08 == 0 {
		in.Vreg |= 0x10
	}
	if p1&0x04 != 0 {
		in.VexType = VexEVEX
		in.VexL = uint32(p2>>5) & 3
	} else {
		in.VexType = VexMVEX
		in.VexL = 2 // 512-bit vectors
	}
	in.Esss = uint32(p2)
	in.Kreg = uint32(p2) & 7
	s.storePP(p1 & 3)
}

// findMapEntry walks the table forest to the terminal entry.
func (s *scan) findMapEntry() *opcode.Def {
	in := &s.in
	var tab uint16
	var idx uint32

	if in.VexType != VexNone {
		m := in.VexMap
		if in.Prefixes[CatRex]&RexXOP != 0 {
			if m < 8 || m-8 >= uint32(len(opcode.XopPages)) {
				in.Errors |= ErrIllegal
				return &opcode.Illegal
			}
			tab = opcode.XopPages[m-8]
		} else {
			if m == 0 || m >= uint32(len(opcode.VexPages)) {
				in.Errors |= ErrReserved | ErrIllegal
				return &opcode.Illegal
			}
			tab = opcode.VexPages[m]
		}
	} else {
		tab = opcode.TabOneByte
	}

	in.OpcodeStart2 = s.pos
	idx = uint32(s.next())
	entry := opcode.Lookup(tab, idx)

	for depth := 0; entry.Link != opcode.LinkNone; depth++ {
		if depth > 16 {
			in.Errors |= ErrIllegal
			return &opcode.Illegal
		}
		var i uint32
		switch entry.Link {
		case opcode.LinkByte:
			in.OpcodeStart2 = s.pos
			i = uint32(s.next())
		case opcode.LinkReg:
			i = uint32(s.at(s.pos)>>3) & 7
		case opcode.LinkMod:
			if s.at(s.pos)>>6 == 3 {
				i = 1
			}
		case opcode.LinkModReg:
			i = uint32(s.at(s.pos)>>3) & 7
			if s.at(s.pos)>>6 == 3 {
				i |= 8
			}
		case opcode.LinkRM:
			i = uint32(s.at(s.pos)) & 7
		case opcode.LinkImmByte:
			end := s.operandEnd(entry)
			sz := s.immSize(entry)
			if sz == 0 {
				sz = 1
			}
			i = uint32(s.at(end - sz))
		case opcode.LinkMode:
			i = modeIndex(s.d.Mode)
		case opcode.LinkOpSize:
			i = modeIndex(s.operandSize(entry))
		case opcode.LinkPrefix:
			i = prefixClass(in.Prefixes[CatType])
			if i != 0 {
				in.PrefixClassUsed = true
			}
		case opcode.LinkAddrSize:
			i = modeIndex(in.AddressSize)
		case opcode.LinkVexL:
			if in.VexType != VexNone {
				i = 1 + in.VexL
			}
		case opcode.LinkVexW:
			i = uint32(in.Prefixes[CatRex]>>3) & 1
		case opcode.LinkVecSize:
			i = in.VexL
		case opcode.LinkVexShort:
			if in.VexType >= VexEVEX {
				i = 1
			}
		case opcode.LinkMvexE:
			i = (in.Esss >> 4) & 1
		case opcode.LinkDialect:
			i = s.d.Syntax
		case opcode.LinkByteAfter:
			i = uint32(s.at(in.OpcodeStart1))
		}
		entry = opcode.Lookup(entry.LinkTab, i)
	}
	return entry
}

func modeIndex(bits uint32) uint32 {
	switch bits {
	case 16:
		return 0
	case 64:
		return 2
	}
	return 1
}

func prefixClass(p uint8) uint32 {
	switch p {
	case 0x66:
		return 1
	case 0xF2:
		return 2
	case 0xF3:
		return 3
	}
	return 0
}

func (s *scan) addressSize() uint32 {
	p67 := s.in.Prefixes[CatAddr] != 0
	switch s.d.Mode {
	case 64:
		if p67 {
			return 32
		}
		return 64
	case 16:
		if p67 {
			return 32
		}
		return 16
	}
	if p67 {
		return 16
	}
	return 32
}

// operandSize resolves the integer operand size for the entry, consulting
// the allowed-prefix bitmap for the roles of 66 and REX.W.
func (s *scan) operandSize(entry *opcode.Def) uint32 {
	in := &s.in
	p66 := in.Prefixes[CatOpSize] == 0x66
	w := in.Prefixes[CatRex]&RexW != 0
	size := uint32(32)
	if s.d.Mode == 16 {
		size = 16
	}
	if entry.Prefixes&opcode.PWSize != 0 && w && s.d.Mode == 64 {
		return 64
	}
	if entry.Prefixes&opcode.P66Int != 0 && p66 {
		if size == 16 {
			return 32
		}
		return 16
	}
	return size
}

// immSize derives the immediate field size from the format code and the
// operand size.
func (s *scan) immSize(entry *opcode.Def) uint32 {
	os := s.in.OperandSize
	if os == 0 {
		os = s.operandSize(entry)
	}
	switch entry.Format & 0x1E0 {
	case opcode.FImm1:
		return 1
	case opcode.FImm2:
		return 2
	case opcode.FImm21:
		return 3
	case opcode.FImmV:
		if os == 16 {
			return 2
		}
		return 4
	case opcode.FImmX:
		return os / 8
	}
	if entry.Format&opcode.FFar != 0 {
		if os == 16 {
			return 4
		}
		return 6
	}
	return 0
}

// operandEnd computes where the instruction would end under the given
// entry without mutating scan state. Used by trailing-immediate links.
func (s *scan) operandEnd(entry *opcode.Def) uint32 {
	save := *s
	s.findOperands(entry)
	end := s.in.End
	savedTrunc := s.trunc
	savedErr := s.in.Errors
	*s = save
	s.trunc = savedTrunc
	s.in.Errors = savedErr
	return end
}

// findOperands consumes modrm, SIB, displacement and immediate fields
// according to the entry's format.
func (s *scan) findOperands(entry *opcode.Def) {
	in := &s.in
	rex := in.Prefixes[CatRex]

	if entry.Format&opcode.FModRM != 0 {
		modrm := s.next()
		in.MFlags |= MemHasModRM
		in.Mod = uint32(modrm >> 6)
		in.Reg = uint32(modrm>>3) & 7
		in.RM = uint32(modrm) & 7
		if rex&RexR != 0 {
			in.Reg |= 8
		}
		if in.Mod != 3 {
			in.MFlags |= MemHasMem
			s.memOperand()
		} else {
			if rex&RexB != 0 {
				in.RM |= 8
			}
		}
	}

	if in.VexType != VexNone {
		in.MFlags |= MemHasVex
	}

	// Direct memory operand without modrm (mov al, [moffs]).
	if entry.Format&opcode.FMOffs != 0 {
		in.MFlags |= MemHasMem
		in.AddressField = s.pos - in.Start
		in.AddressFieldSize = in.AddressSize / 8
		s.pos += in.AddressFieldSize
	}

	if sz := s.immSizeFor(entry); sz > 0 {
		in.ImmediateField = s.pos - in.Start
		in.ImmediateFieldSize = sz
		s.pos += sz
	}

	if s.pos > uint32(len(s.code)) {
		s.trunc = true
		in.Errors |= ErrTruncated
		s.pos = uint32(len(s.code))
	}
	in.End = s.pos
}

func (s *scan) immSizeFor(entry *opcode.Def) uint32 {
	sz := s.immSize(entry)
	if entry.Format&0x1F == opcode.FVexIS4 && sz == 0 {
		sz = 1
	}
	return sz
}

// memOperand decodes the memory addressing form: SIB, displacement and
// the special cases of each address size.
func (s *scan) memOperand() {
	in := &s.in
	rex := in.Prefixes[CatRex]

	if in.AddressSize == 16 {
		// 16-bit addressing: rm selects a fixed base/index pair.
		bases := [8][2]uint32{{4, 7}, {4, 8}, {6, 7}, {6, 8}, {0, 7}, {0, 8}, {6, 0}, {4, 0}}
		in.BaseReg = bases[in.RM][0]
		in.IndexReg = bases[in.RM][1]
		var dispSize uint32
		switch in.Mod {
		case 0:
			if in.RM == 6 {
				in.BaseReg = 0
				dispSize = 2
			}
		case 1:
			dispSize = 1
		case 2:
			dispSize = 2
		}
		if dispSize > 0 {
			in.AddressField = s.pos - in.Start
			in.AddressFieldSize = dispSize
			s.pos += dispSize
		}
		return
	}

	// 32/64-bit addressing.
	var dispSize uint32
	hasSIB := in.RM == 4
	if hasSIB {
		sib := s.next()
		in.MFlags |= MemHasSIB
		in.Scale = uint32(sib >> 6)
		index := uint32(sib>>3) & 7
		if rex&RexX != 0 {
			index |= 8
		}
		if index != 4 || rex&RexX != 0 {
			in.IndexReg = index + 1
		}
		base := uint32(sib) & 7
		if rex&RexB != 0 {
			base |= 8
		}
		if sib&7 == 5 && in.Mod == 0 {
			dispSize = 4
		} else {
			in.BaseReg = base + 1
		}
	} else if in.Mod == 0 && in.RM == 5 {
		dispSize = 4
		if s.d.Mode == 64 {
			in.MFlags |= MemRIPRel
		}
	} else {
		base := in.RM
		if rex&RexB != 0 {
			base |= 8
		}
		in.BaseReg = base + 1
	}

	switch in.Mod {
	case 1:
		dispSize = 1
	case 2:
		dispSize = 4
	}

	if dispSize > 0 {
		in.AddressField = s.pos - in.Start
		in.AddressFieldSize = dispSize
		s.pos += dispSize
	}
}

// assignOperands fills the five runtime operand slots from the entry's
// templates and the format's operand placement.
func (s *scan) assignOperands(entry *opcode.Def) {
	in := &s.in
	tpl := [4]uint32{uint32(entry.Dest), uint32(entry.Src1), uint32(entry.Src2), uint32(entry.Src3)}

	// Decide where the rm, reg and vvvv operands live.
	var slots [5]uint32
	n := 0
	push := func(t, src uint32) {
		if t == 0 && src == 0 {
			return
		}
		slots[n] = t | src
		n++
	}

	switch entry.Format & 0x1F {
	case opcode.FRegBits:
		b := s.at(in.OpcodeStart2)
		if tpl[0]&0xFF == 0x91 {
			// Segment register number lives in bits 3-5 of the opcode.
			in.ShortReg = uint32(b>>3) & 7
		} else {
			in.ShortReg = uint32(b) & 7
			if in.Prefixes[CatRex]&RexB != 0 {
				in.ShortReg |= 8
			}
		}
		// The opcode-register operand is the first slot that is not a
		// hard-coded register (xchg rax, r puts it second).
		placed := false
		for _, t := range tpl[:2] {
			if t == 0 {
				continue
			}
			k := t & 0xFF
			if !placed && !(k >= 0xA0 && k <= 0xC2) {
				push(t, opcode.OTOpcodeReg)
				placed = true
			} else {
				push(t, 0)
			}
		}
	case opcode.FRegRM:
		push(tpl[0], opcode.OTReg)
		push(tpl[1], opcode.OTRM)
		push(tpl[2], 0)
		push(tpl[3], 0)
	case opcode.FRMReg:
		push(tpl[0], opcode.OTRM)
		push(tpl[1], opcode.OTReg)
		push(tpl[2], 0)
	case opcode.FVexNDD:
		if in.VexType != VexNone {
			push(tpl[0], opcode.OTVexV)
			push(tpl[1], opcode.OTRM)
		} else {
			push(tpl[0], opcode.OTRM)
		}
	case opcode.FVexNDS:
		if in.VexType != VexNone {
			push(tpl[0], opcode.OTReg)
			push(tpl[1], opcode.OTVexV)
			push(tpl[2], opcode.OTRM)
			push(tpl[3], 0)
		} else {
			push(tpl[0], opcode.OTReg)
			push(tpl[2], opcode.OTRM)
			push(tpl[3], 0)
		}
	case opcode.FVexMR:
		push(tpl[0], opcode.OTRM)
		push(tpl[1], opcode.OTVexV)
		push(tpl[2], opcode.OTReg)
	case opcode.FVexRMV:
		push(tpl[0], opcode.OTReg)
		push(tpl[1], opcode.OTRM)
		push(tpl[2], opcode.OTVexV)
	case opcode.FVexIS4:
		push(tpl[0], opcode.OTReg)
		push(tpl[1], opcode.OTVexV)
		push(tpl[2], opcode.OTRM)
		push(tpl[3], opcode.OTImmBits)
	case opcode.FRM:
		// One r/m operand: the first slot that is not a hard-coded
		// register or constant takes it.
		placed := false
		for _, t := range tpl {
			if t == 0 {
				continue
			}
			k := t & 0xFF
			if !placed && !(k >= 0xA0 && k <= 0xC2) && !opcode.IsImmediate(t) {
				push(t, opcode.OTRM)
				placed = true
			} else {
				push(t, 0)
			}
		}
	default:
		for _, t := range tpl {
			if t == 0 {
				continue
			}
			src := uint32(0)
			if entry.Format&opcode.FMOffs != 0 && !opcode.IsImmediate(t) && !(t&0xFF >= 0xA0 && t&0xFF <= 0xC2) {
				src = opcode.OTDirectMem
			}
			push(t, src)
		}
	}

	// Mark immediate slots against the immediate field.
	imm := 0
	for i := 0; i < n; i++ {
		t := slots[i]
		if t&0xFF0000 != 0 {
			continue
		}
		if opcode.IsImmediate(t) || opcode.IsJumpTarget(t) {
			if imm == 0 {
				slots[i] |= opcode.OTImm
			} else {
				slots[i] |= opcode.OTImm2
			}
			imm++
		}
	}

	copy(in.Ops[:], slots[:n])
}

// vexPost interprets the EVEX z/LL/b/aaa or MVEX E/sss/kkk bits against
// the entry's auxiliary field, producing the broadcast, rounding, masking
// and compressed-displacement multiplier state.
func (s *scan) vexPost(entry *opcode.Def) {
	in := &s.in
	switch in.VexType {
	case VexEVEX:
		ev := uint32(entry.EVEX)
		isMem := in.HasMem()
		vecsize := uint32(16) << in.VexL
		elem := opcode.ElementSize(s.memTemplate(entry), in.Prefixes[CatType])

		if in.Kreg != 0 && ev&0xF0 == 0 {
			in.Errors |= ErrReserved
		}
		if in.Esss&0x80 != 0 { // z bit
			if ev&0x20 == 0 {
				in.Errors |= ErrReserved
			} else {
				in.ZeroMasking = true
			}
		}
		if in.Esss&0x10 != 0 { // b bit
			switch {
			case isMem && ev&1 != 0:
				in.Broadcast = true
			case !isMem && ev&6 != 0:
				if ev&4 != 0 {
					in.Rounding = int(in.VexL) + 1
				} else {
					in.Rounding = 5 // {sae}
				}
			default:
				in.Errors |= ErrReserved
			}
		}

		memop := vecsize
		if ev&8 != 0 {
			memop = elem
		} else if s.memTemplate(entry)&0xF00 == 0xF00 {
			memop = vecsize / 2
		}
		switch {
		case in.Broadcast:
			in.OffsetMultiplier = elem
		default:
			switch ev & 0xF000 {
			case 0x1000:
				in.OffsetMultiplier = elem
			case 0x2200:
				in.OffsetMultiplier = vecsize / 2
			case 0x2400:
				in.OffsetMultiplier = vecsize / 4
			case 0x2600:
				in.OffsetMultiplier = vecsize / 8
			default:
				in.OffsetMultiplier = memop
			}
		}

	case VexMVEX:
		sss := (in.Esss >> 5) & 7
		tab, ok := opcode.SwizTables[entry.MVEX&0x1F]
		if !ok {
			in.Errors |= ErrIllegal
			return
		}
		in.Swiz = &tab[sss]
		if entry.MVEX&0x40 != 0 {
			in.OffsetMultiplier = in.Swiz.ElementSize
		} else {
			in.OffsetMultiplier = in.Swiz.MemOpSize
		}
	}
}

// memTemplate returns the template descriptor of the r/m operand.
func (s *scan) memTemplate(entry *opcode.Def) uint32 {
	for _, t := range s.in.Ops {
		if t&0xF0000 == opcode.OTRM {
			return t & 0xFFFF
		}
	}
	return uint32(entry.Dest)
}

// findRelocations binds relocations whose source bytes overlap the
// displacement or immediate field.
func (s *scan) findRelocations() {
	in := &s.in
	if s.d.Relocs == nil {
		return
	}
	if in.AddressFieldSize > 0 {
		i, _ := s.d.Relocs(in.Start+in.AddressField, in.AddressFieldSize)
		in.AddressRelocation = i
	}
	if in.ImmediateFieldSize > 0 {
		i, _ := s.d.Relocs(in.Start+in.ImmediateField, in.ImmediateFieldSize)
		in.ImmediateRelocation = i
	}
}

func (s *scan) findErrors(entry *opcode.Def) {
	in := &s.in
	if entry.Name == "" && entry.Format&0x1F == 0 {
		in.Errors |= ErrIllegal
	}
	if entry.Set&opcode.SetOnly64 != 0 && s.d.Mode != 64 {
		in.Errors |= ErrOnly64
	}
	if entry.Set&opcode.SetNot64 != 0 && s.d.Mode == 64 {
		in.Errors |= ErrNot64
	}
	if in.Prefixes[CatLock] != 0 && entry.Prefixes&opcode.PLock == 0 {
		in.Errors |= ErrLock
	}
	if entry.Prefixes&opcode.PVexReq != 0 && in.VexType == VexNone {
		in.Errors |= ErrVexMissing
	}
	if in.VexType != VexNone &&
		entry.Prefixes&(opcode.PVex|opcode.PVexReq|opcode.PEvex|opcode.PMvex) == 0 &&
		entry.Name != "" {
		in.Errors |= ErrIllegal
	}
	if in.VexType == VexEVEX && entry.Prefixes&(opcode.PEvex|opcode.PVexReq) == 0 && entry.Name != "" {
		in.Errors |= ErrReserved
	}
}

func (s *scan) findWarnings(entry *opcode.Def) {
	in := &s.in
	for _, c := range in.Conflicts {
		if c > 0 {
			in.Warnings1 |= WarnPrefixConflict
			break
		}
	}
	p := entry.Prefixes
	if in.Prefixes[CatOpSize] == 0x66 {
		switch {
		case p&opcode.PJump != 0:
			in.Warnings1 |= Warn66Jump
		case p&(opcode.P66Int|opcode.P66Vec) == 0 && !in.PrefixClassUsed:
			in.Warnings1 |= WarnRedundant
		}
	}
	if in.Prefixes[CatAddr] != 0 {
		if p&opcode.PStack != 0 {
			in.Warnings1 |= WarnAddrStack
		} else if p&opcode.PAddrSize == 0 && !in.HasMem() {
			in.Warnings1 |= WarnRedundant
		}
	}
	if rep := in.Prefixes[CatRep]; rep == 0xF2 || rep == 0xF3 {
		allowed := in.PrefixClassUsed ||
			p&(opcode.PRep|opcode.PRepCC) != 0 ||
			rep == 0xF2 && p&opcode.PF2Vec != 0 ||
			rep == 0xF3 && p&opcode.PF3Vec != 0
		if !allowed {
			in.Warnings1 |= WarnRepMisuse
		}
	}
	if entry.Options&opcode.OptShorter != 0 {
		in.Warnings1 |= WarnShorterExists
	}
	if entry.Format&opcode.FUndoc != 0 {
		in.Warnings2 |= WarnUndocumented
	}
}
