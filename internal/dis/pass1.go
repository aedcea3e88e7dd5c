package dis

import (
	"disx86/internal/decode"
	"disx86/internal/obj"
	"disx86/internal/opcode"
)

// pass1 walks every code section linearly, decoding each instruction and
// updating the symbol table, function list and register tracer. It never
// emits text.
func (d *Disassembler) pass1() {
	for i := int32(1); i <= int32(d.sections.Len()); i++ {
		if !d.sections.Get(i).IsCode() {
			continue
		}
		d.setSection(i)
		d.pass1Section()
	}
}

func (d *Disassembler) pass1Section() {
	pos := uint32(0)
	for pos < d.sec.InitSize {
		// After ud2, bytes without an inbound label are data until the
		// next known symbol.
		if d.flagPrev == prevUD {
			if _, _, ok := d.symbols.FindByAddress(d.section, pos); !ok {
				pos = d.nextKnownSymbol(pos)
				d.flagPrev = 0
				continue
			}
			d.flagPrev = 0
		}
		d.checkLabel(pos)
		d.checkFunctionBegin(pos)

		in := d.dec.Decode(d.sec.Bytes[:d.sec.InitSize], pos)
		if in.Errors != 0 {
			// Recover locally: the byte becomes data, the cursor moves on.
			d.countErrors++
			pos++
			d.flagPrev = 0
			d.tracer.Reset()
			continue
		}

		d.updateSymbols(&in)
		d.updateTracer(&in)

		if in.IsUncond() {
			d.tracer.Reset()
			if in.Entry.Name == "ud2" || in.Entry.Name == "ud0" {
				d.flagPrev = prevUD
			} else {
				d.flagPrev = prevJump
			}
		} else if in.IsFiller() {
			d.flagPrev = prevNop
		} else {
			d.flagPrev = 0
		}

		pos = in.End
		d.checkFunctionEnd(pos)
	}
	if d.ifunc >= 0 && d.funcs.At(d.ifunc).EndUnknown() {
		d.funcs.Close(d.ifunc, d.sec.InitSize)
	}
}

// checkLabel resets the tracer at label boundaries; a label is a join
// point, so traced register state cannot survive it.
func (d *Disassembler) checkLabel(pos uint32) {
	if _, _, ok := d.symbols.FindByAddress(d.section, pos); ok {
		d.tracer.Reset()
	}
}

// checkFunctionBegin opens a function record when the walk reaches a
// symbol that looks like a function entry: a public, weak or communal
// symbol, a symbol with a nonzero size, or a position where a function
// record (a previously discovered call target) already starts.
func (d *Disassembler) checkFunctionBegin(pos uint32) {
	first, last, ok := d.symbols.FindByAddress(d.section, pos)
	if !ok {
		if pos == 0 {
			// Code at section start with no symbol still belongs to a
			// function; open an anonymous one.
			si := d.symbols.New(d.section, 0, obj.ScopeFileLoc)
			d.openFunction(d.symbols.At(si).OldIndex, pos, d.symbols.At(si).Scope)
		}
		return
	}
	for i := first; i <= last; i++ {
		sym := d.symbols.At(i)
		// Function-local labels (branch targets) do not start functions;
		// public symbols, sized symbols and known call targets do.
		starts := sym.Scope&(obj.ScopePublic|obj.ScopeWeak|obj.ScopeCommunal) != 0 ||
			sym.Size > 0
		if !starts {
			if fi := d.funcs.FindAt(d.section, pos); fi >= 0 && d.funcs.At(fi).Start == pos {
				starts = true
			}
		}
		if starts {
			d.openFunction(sym.OldIndex, pos, sym.Scope)
			return
		}
	}
}

// openFunction starts (or re-finds) the function record at pos and closes
// any record still open before it.
func (d *Disassembler) openFunction(oldSym uint32, pos uint32, scope uint32) {
	if d.ifunc >= 0 {
		f := d.funcs.At(d.ifunc)
		if f.Section == d.section && f.EndUnknown() && f.Start < pos {
			d.funcs.Close(d.ifunc, pos)
		}
	}
	d.ifunc = d.funcs.Add(obj.FuncRecord{
		Section:        d.section,
		Start:          pos,
		Scope:          scope | obj.ScopeEndUnknown,
		OldSymbolIndex: oldSym,
	})
	d.funcEnd = 0
	if sym := d.symbols.Old2New(oldSym); sym >= 0 {
		if sz := d.symbols.At(sym).Size; sz > 0 {
			d.funcEnd = pos + sz
		}
	}
}

// checkFunctionEnd closes the current function when the walk crosses its
// declared end.
func (d *Disassembler) checkFunctionEnd(pos uint32) {
	if d.ifunc < 0 {
		return
	}
	f := d.funcs.At(d.ifunc)
	if d.funcEnd > 0 && pos >= d.funcEnd && d.flagPrev&prevJump != 0 {
		d.funcs.Close(d.ifunc, pos)
		d.ifunc = -1
		return
	}
	if f.EndUnknown() {
		d.funcs.Extend(d.ifunc, pos)
	}
}

// updateSymbols digests the control-flow effects of one instruction:
// direct jump and call targets become symbols, jumps extend the current
// function, calls open new function records, recognized jump tables are
// followed, and missing relocation targets are promoted to symbols.
func (d *Disassembler) updateSymbols(in *decode.Inst) {
	// Classify the branch by its operand kinds, not by name: direct
	// targets are 0x81-0x85, indirect pointers are 0x0B-0x0D.
	var direct, indirect bool
	var isCall bool
	for _, t := range in.Ops {
		switch k := t & 0xFF; {
		case opcode.IsJumpTarget(t):
			direct = true
			isCall = k == 0x83 || k == 0x85
		case k == 0x0B || k == 0x0C || k == 0x0D:
			indirect = true
			isCall = k == 0x0C
		}
	}

	if indirect {
		// Indirect through a recognized table: jmp [table + reg*scale]
		// where the table address resolves via relocation.
		if in.HasMem() && in.IndexReg != 0 && in.AddressRelocation >= 0 {
			rel := d.relocs.At(in.AddressRelocation)
			d.followJumpTable(rel.TargetOldIndex)
			return
		}
		d.promoteRelocTargets(in)
		return
	}
	if !direct || in.ImmediateFieldSize == 0 {
		d.promoteRelocTargets(in)
		return
	}

	// Direct target: relocation wins, otherwise compute from the
	// immediate relative to the instruction end.
	var tsec int32
	var toff uint32
	if in.ImmediateRelocation >= 0 {
		rel := d.relocs.At(in.ImmediateRelocation)
		ti := d.symbols.Old2New(rel.TargetOldIndex)
		if ti < 0 {
			return
		}
		sym := d.symbols.At(ti)
		tsec = sym.Section
		toff = sym.Offset
	} else {
		delta := d.fieldValue(in, in.ImmediateField, in.ImmediateFieldSize)
		t := int64(in.End) + delta
		if t < 0 || uint32(t) > d.sec.TotalSize {
			d.countErrors++
			return
		}
		tsec = d.section
		toff = uint32(t)
	}

	d.addCodeTarget(tsec, toff, isCall)

	if isCall {
		if ci := d.callerName(); ci != "" {
			first, _, ok := d.symbols.FindByAddress(tsec, toff)
			if ok {
				d.addEdge(ci, d.symbols.Name(first))
			}
		}
	}
}

// addCodeTarget records a branch target as a symbol and maintains the
// function extents around it.
func (d *Disassembler) addCodeTarget(tsec int32, toff uint32, isCall bool) {
	inCurrent := d.ifunc >= 0 && d.funcs.At(d.ifunc).Contains(tsec, toff)
	scope := uint32(obj.ScopePublic)
	if inCurrent {
		scope = obj.ScopeLocal
	}
	si := d.symbols.New(tsec, toff, scope)
	sym := d.symbols.At(si)
	if sym.Type == 0 {
		sym.Type = opcode.OTIsCode
	}

	if isCall {
		// A call target begins a function.
		d.funcs.Add(obj.FuncRecord{
			Section:        tsec,
			Start:          toff,
			Scope:          sym.Scope | obj.ScopeEndUnknown,
			OldSymbolIndex: sym.OldIndex,
		})
		return
	}
	// A jump past the current end extends the open function.
	if d.ifunc >= 0 && tsec == d.section {
		f := d.funcs.At(d.ifunc)
		if f.EndUnknown() && toff > f.End {
			d.funcs.Extend(d.ifunc, toff)
		}
		if toff < f.Start || !f.Contains(tsec, toff) && !f.EndUnknown() {
			d.countWarns++ // jump into another function
		}
	}
}

// followJumpTable enumerates consecutive pointer-sized relocated entries
// of a recognized jump table and records each target as a code label.
// The walk stops at the first entry that is not relocated to plausible
// code, or at the next labeled address.
func (d *Disassembler) followJumpTable(tableOld uint32) {
	ti := d.symbols.Old2New(tableOld)
	if ti < 0 {
		return
	}
	table := d.symbols.At(ti)
	tsec := d.sections.Get(table.Section)
	if tsec == nil || tsec.IsCode() {
		return
	}
	if t := tsec.Type & 0xFF; t != obj.SecConst && t != obj.SecData {
		return
	}
	table.Type |= opcode.OTIsData

	limit := tsec.InitSize
	if next := d.symbols.NextAfter(table.Section, table.Offset); next >= 0 {
		if n := d.symbols.At(next).Offset; n > table.Offset && n < limit {
			limit = n
		}
	}

	// The entry stride is the size of the relocations that fill the
	// table: full pointers for direct tables, dwords for the
	// base-plus-offset layouts.
	for off := table.Offset; off < limit; {
		ri := d.relocs.FindAt(table.Section, off)
		if ri < 0 {
			break
		}
		rel := d.relocs.At(ri)
		step := rel.Size
		if step == 0 {
			step = tsec.WordSize / 8
		}
		off += step
		ei := d.symbols.Old2New(rel.TargetOldIndex)
		if ei < 0 {
			break
		}
		entry := d.symbols.At(ei)
		esec := d.sections.Get(entry.Section)
		if esec == nil || !esec.IsCode() {
			break
		}
		d.addCodeTarget(entry.Section, entry.Offset, false)
	}
	if d.pass == 1 {
		// Entries may label bytes already walked as data; ask for a rerun.
		d.repeatReq = true
	}
}

// promoteRelocTargets turns relocation targets bound to this instruction
// into symbols so that pass 2 can name them (make_missing_relocation).
func (d *Disassembler) promoteRelocTargets(in *decode.Inst) {
	for _, ri := range [2]int32{in.AddressRelocation, in.ImmediateRelocation} {
		if ri < 0 {
			continue
		}
		rel := d.relocs.At(ri)
		if rel.TargetOldIndex == 0 {
			continue
		}
		if d.symbols.Old2New(rel.TargetOldIndex) >= 0 {
			continue
		}
		// Target symbol missing entirely: fabricate an external.
		d.symbols.Add(obj.Symbol{
			Section:  obj.SectExternal,
			Scope:    obj.ScopeExternal,
			OldIndex: rel.TargetOldIndex,
		})
		d.countWarns++
	}
}

// callerName resolves the display name of the function currently open.
func (d *Disassembler) callerName() string {
	if d.ifunc < 0 {
		return ""
	}
	old := d.funcs.At(d.ifunc).OldSymbolIndex
	i := d.symbols.Old2New(old)
	if i < 0 {
		return ""
	}
	return d.symbols.Name(i)
}

// nextKnownSymbol returns the offset of the next symbol in the current
// section, or the end of the initialized bytes.
func (d *Disassembler) nextKnownSymbol(pos uint32) uint32 {
	if next := d.symbols.NextAfter(d.section, pos); next >= 0 {
		if off := d.symbols.At(next).Offset; off > pos && off <= d.sec.InitSize {
			return off
		}
	}
	return d.sec.InitSize
}

func (d *Disassembler) addEdge(caller, callee string) {
	for _, e := range d.edges {
		if e.Caller == caller && e.Callee == callee {
			return
		}
	}
	d.edges = append(d.edges, CallEdge{Caller: caller, Callee: callee})
}
