package dis

import (
	"strings"

	"disx86/internal/decode"
	"disx86/internal/obj"
)

// Dialect dispatch. One strategy is selected per run; these shims are the
// whole vtable.

func (w *writer) fileBegin() {
	w.put(w.commentSep() + "Disassembly generated by disx86")
	w.flush()
	switch w.d.syntax {
	case SyntaxMASM:
		w.fileBeginMASM()
	case SyntaxNASM:
		w.fileBeginNASM()
	default:
		w.fileBeginGAS()
	}
}

func (w *writer) fileEnd() {
	switch w.d.syntax {
	case SyntaxMASM:
		w.fileEndMASM()
	case SyntaxNASM:
		w.fileEndNASM()
	default:
		w.fileEndGAS()
	}
}

func (w *writer) segmentBegin(sec *obj.Section) {
	switch w.d.syntax {
	case SyntaxMASM:
		w.segmentBeginMASM(sec)
	case SyntaxNASM:
		w.segmentBeginNASM(sec)
	default:
		w.segmentBeginGAS(sec)
	}
}

func (w *writer) segmentEnd(sec *obj.Section) {
	switch w.d.syntax {
	case SyntaxMASM:
		w.segmentEndMASM(sec)
	case SyntaxNASM:
		w.segmentEndNASM(sec)
	default:
		w.segmentEndGAS(sec)
	}
}

func (w *writer) publicDecl(name string) {
	switch w.d.syntax {
	case SyntaxMASM:
		w.publicDeclMASM(name)
	case SyntaxNASM:
		w.publicDeclNASM(name)
	default:
		w.publicDeclGAS(name)
	}
}

func (w *writer) externDecl(name string) {
	switch w.d.syntax {
	case SyntaxMASM:
		w.externDeclMASM(name)
	case SyntaxNASM:
		w.externDeclNASM(name)
	default:
		w.externDeclGAS(name)
	}
}

func (w *writer) label(name string, isFunc, public bool) {
	switch w.d.syntax {
	case SyntaxMASM:
		w.labelMASM(name, isFunc, public)
	case SyntaxNASM:
		w.labelNASM(name, isFunc, public)
	default:
		w.labelGAS(name, isFunc, public)
	}
}

func (w *writer) dataDirective(size uint32) string {
	switch w.d.syntax {
	case SyntaxGAS:
		return w.dataDirectiveGAS(size)
	default:
		return w.dataDirectiveMASM(size)
	}
}

func (w *writer) uninitData(elem, count uint32) {
	switch w.d.syntax {
	case SyntaxMASM:
		w.uninitDataMASM(elem, count)
	case SyntaxNASM:
		w.uninitDataNASM(elem, count)
	default:
		w.uninitDataGAS(elem, count)
	}
}

// pass2 re-decodes every instruction in address order and renders the
// output. It does not mutate symbol state beyond the written marker.
func (d *Disassembler) pass2() {
	w := &writer{d: d}
	w.fileBegin()
	d.writePublicsAndExternals(w)

	for i := int32(1); i <= int32(d.sections.Len()); i++ {
		sec := d.sections.Get(i)
		if sec.Type&obj.SecGroup != 0 {
			continue
		}
		d.setSection(i)
		w.segmentBegin(sec)
		if sec.IsCode() {
			d.pass2Code(w)
		} else {
			d.pass2Data(w)
		}
		w.segmentEnd(sec)
	}
	w.fileEnd()
}

func (d *Disassembler) writePublicsAndExternals(w *writer) {
	for i := 0; i < d.symbols.Len(); i++ {
		s := d.symbols.At(int32(i))
		if s.Scope&(obj.ScopePublic|obj.ScopeWeak) != 0 && s.Section > 0 {
			w.publicDecl(d.symbols.Name(int32(i)))
		}
	}
	for i := 0; i < d.symbols.Len(); i++ {
		s := d.symbols.At(int32(i))
		if s.Section == obj.SectExternal || s.Scope&obj.ScopeExternal != 0 {
			w.externDecl(d.symbols.Name(int32(i)))
		}
	}
	w.flush()
}

// pass2Code walks one code section and emits instructions, labels and
// recovery data bytes.
func (d *Disassembler) pass2Code(w *writer) {
	var openProc string
	pos := uint32(0)
	for pos < d.sec.InitSize {
		hasLabel := false
		if _, _, ok := d.symbols.FindByAddress(d.section, pos); ok {
			hasLabel = true
		}

		// After ud2, unlabeled bytes are rendered as data until the next
		// known symbol.
		if d.flagPrev == prevUD && !hasLabel {
			end := d.nextKnownSymbol(pos)
			d.writeDataRun(w, pos, end)
			pos = end
			d.flagPrev = 0
			continue
		}

		openProc = d.writeLabels(w, pos, openProc)

		in := d.dec.Decode(d.sec.Bytes[:d.sec.InitSize], pos)
		if d.flagPrev == prevJump && !hasLabel && pos > 0 {
			in.Warnings2 |= decode.WarnUnreachable
		}
		d.noteJumpTable(&in)
		w.writeErrorsAndWarnings(&in)
		if in.Errors != 0 {
			// The offending byte is rendered as data; decoding resumes at
			// the next byte.
			w.tab(asmTab1)
			w.put(w.dataDirective(1))
			w.tab(asmTab2)
			w.put(w.hex(uint64(d.sec.Bytes[pos])))
			w.tab(asmTab3)
			w.put(w.commentSep())
			w.putf("%04X _ undecodable", pos)
			w.flush()
			pos++
			continue
		}
		if d.Verify {
			if msg := d.crossCheck(&in); msg != "" {
				w.put(w.commentSep() + "Note: " + msg)
				w.flush()
				d.countWarns++
			}
		}
		w.instruction(&in)

		switch {
		case in.IsUncond():
			if in.Entry.Name == "ud2" || in.Entry.Name == "ud0" {
				d.flagPrev = prevUD
			} else {
				d.flagPrev = prevJump
			}
		case in.IsFiller():
			d.flagPrev = prevNop
		default:
			d.flagPrev = 0
		}
		pos = in.End
	}

	if openProc != "" && d.syntax == SyntaxMASM {
		w.funcEndMASM(openProc)
	}
	if d.sec.TotalSize > d.sec.InitSize {
		w.uninitData(1, d.sec.TotalSize-d.sec.InitSize)
	}
}

// writeLabels emits all labels at pos and returns the name of the MASM
// PROC left open, if any.
func (d *Disassembler) writeLabels(w *writer, pos uint32, openProc string) string {
	first, last, ok := d.symbols.FindByAddress(d.section, pos)
	if !ok {
		return openProc
	}
	for i := first; i <= last; i++ {
		sym := d.symbols.At(i)
		name := d.symbols.Name(i)
		isFunc := d.isFunctionStart(pos)
		public := sym.Scope&(obj.ScopePublic|obj.ScopeWeak) != 0
		if isFunc && d.syntax == SyntaxMASM {
			if openProc != "" {
				w.funcEndMASM(openProc)
			}
			openProc = name
		}
		w.label(name, isFunc, public)
		sym.Scope |= obj.ScopeWritten
	}
	return openProc
}

func (d *Disassembler) isFunctionStart(pos uint32) bool {
	for i := int32(0); i < int32(d.funcs.Len()); i++ {
		f := d.funcs.At(i)
		if f.Section == d.section && f.Start == pos {
			return true
		}
	}
	return false
}

// pass2Data renders a data or constant section: relocated fields become
// pointer-sized directives with symbolic targets, raw bytes are batched.
func (d *Disassembler) pass2Data(w *writer) {
	pos := uint32(0)
	for pos < d.sec.InitSize {
		d.writeLabels(w, pos, "")

		if ri := d.relocs.FindAt(d.section, pos); ri >= 0 {
			rel := d.relocs.At(ri)
			size := rel.Size
			if size == 0 {
				size = 4
			}
			inline := d.readData(pos, size)
			w.tab(asmTab1)
			w.put(w.dataDirective(size))
			w.tab(asmTab2)
			w.put(w.relocText(ri, inline))
			w.tab(asmTab3)
			w.put(w.commentSep())
			w.putf("%04X", pos)
			w.flush()
			pos += size
			continue
		}

		end := pos + 8
		if end > d.sec.InitSize {
			end = d.sec.InitSize
		}
		if next := d.symbols.NextAfter(d.section, pos); next >= 0 {
			if n := d.symbols.At(next).Offset; n > pos && n < end {
				end = n
			}
		}
		if ri := d.relocs.FindRange(d.section, pos+1, end-pos-1); ri >= 0 && end > pos+1 {
			if n := d.relocs.At(ri).Offset; n > pos && n < end {
				end = n
			}
		}

		w.tab(asmTab1)
		w.put(w.dataDirective(1))
		w.tab(asmTab2)
		for p := pos; p < end; p++ {
			if p > pos {
				w.put(", ")
			}
			w.put(w.hex(uint64(d.sec.Bytes[p])))
		}
		w.tab(asmTab3)
		w.put(w.commentSep())
		w.putf("%04X", pos)
		w.flush()
		pos = end
	}

	if d.sec.TotalSize > d.sec.InitSize {
		d.writeLabels(w, d.sec.InitSize, "")
		w.uninitData(1, d.sec.TotalSize-d.sec.InitSize)
	}
}

// writeDataRun renders [pos, end) of the current section as data bytes.
func (d *Disassembler) writeDataRun(w *writer, pos, end uint32) {
	for pos < end {
		n := pos + 8
		if n > end {
			n = end
		}
		w.tab(asmTab1)
		w.put(w.dataDirective(1))
		w.tab(asmTab2)
		for p := pos; p < n; p++ {
			if p > pos {
				w.put(", ")
			}
			w.put(w.hex(uint64(d.sec.Bytes[p])))
		}
		w.tab(asmTab3)
		w.put(w.commentSep())
		w.putf("%04X _ filler or data", pos)
		w.flush()
		pos = n
	}
}

// noteJumpTable attaches a comment listing the discovered targets of an
// indirect jump through a recognized table.
func (d *Disassembler) noteJumpTable(in *decode.Inst) {
	if in.Entry == nil || !in.HasMem() || in.IndexReg == 0 || in.AddressRelocation < 0 {
		return
	}
	indirect := false
	for _, t := range in.Ops {
		if k := t & 0xFF; k == 0x0B || k == 0x0C {
			indirect = true
		}
	}
	if !indirect {
		return
	}
	rel := d.relocs.At(in.AddressRelocation)
	ti := d.symbols.Old2New(rel.TargetOldIndex)
	if ti < 0 {
		return
	}
	table := d.symbols.At(ti)
	var targets []string
	for off := table.Offset; len(targets) < 16; {
		ri := d.relocs.FindAt(table.Section, off)
		if ri < 0 {
			break
		}
		rel := d.relocs.At(ri)
		ei := d.symbols.Old2New(rel.TargetOldIndex)
		if ei < 0 {
			break
		}
		targets = append(targets, d.symbols.Name(ei))
		step := rel.Size
		if step == 0 {
			step = 4
		}
		off += step
	}
	if len(targets) > 0 {
		in.Comment = "switch table: " + strings.Join(targets, " ")
	}
}

// readData reads a little-endian field from the current section,
// sign-extended.
func (d *Disassembler) readData(pos, size uint32) int64 {
	var v uint64
	for i := uint32(0); i < size && pos+i < uint32(len(d.sec.Bytes)); i++ {
		v |= uint64(d.sec.Bytes[pos+i]) << (8 * i)
	}
	if size > 0 && size < 8 {
		shift := 64 - 8*size
		return int64(v<<shift) >> shift
	}
	return int64(v)
}
