package dis

import (
	"disx86/internal/obj"
)

// MASM-specific emitters. Segment directives and assume statements exist
// only in this dialect.

func (w *writer) fileBeginMASM() {
	switch {
	case w.wordSizeMax() >= 64:
		// 64-bit MASM has no .model directive.
	case w.wordSizeMax() == 32:
		w.put(".686p")
		w.flush()
		w.put(".xmm")
		w.flush()
		w.put(".model flat")
		w.flush()
	default:
		w.put(".8086")
		w.flush()
	}
	w.flush()
}

func (w *writer) fileEndMASM() {
	w.put("END")
	w.flush()
}

func (w *writer) segmentBeginMASM(sec *obj.Section) {
	class := "'DATA'"
	if sec.IsCode() {
		class = "'CODE'"
	} else if sec.Type&0xFF == obj.SecBSS {
		class = "'BSS'"
	}
	w.put(sec.Name + " SEGMENT ")
	w.put(alignName(sec.Align))
	switch sec.WordSize {
	case 16:
		w.put(" use16 ")
	case 32:
		w.put(" use32 ")
	default:
		w.put(" ")
	}
	w.put(class)
	w.flush()
	if sec.IsCode() {
		w.writeAssumeMASM(sec)
	}
}

// writeAssumeMASM emits the segment register assumptions for a code
// segment. Flat models assume everything flat.
func (w *writer) writeAssumeMASM(sec *obj.Section) {
	if sec.WordSize == 64 {
		return
	}
	w.tab(asmTab1)
	w.put("assume")
	w.tab(asmTab2)
	if sec.Group != 0 || sec.WordSize == 32 {
		w.put("cs:flat, ds:flat, ss:flat")
	} else {
		w.put("cs:" + sec.Name)
	}
	w.flush()
	for i := range w.d.assumes {
		w.d.assumes[i] = obj.SectFlat
	}
}

func (w *writer) segmentEndMASM(sec *obj.Section) {
	w.put(sec.Name + " ENDS")
	w.flush()
	w.flush()
}

func (w *writer) publicDeclMASM(name string) {
	w.put("PUBLIC " + name)
	w.flush()
}

func (w *writer) externDeclMASM(name string) {
	w.put("EXTRN " + name + ":near")
	w.flush()
}

// labelMASM writes a code label. Functions become PROC blocks; the
// PUBLIC declaration is written in the file header, not here.
func (w *writer) labelMASM(name string, isFunc, public bool) {
	if isFunc {
		w.put(name + " PROC")
		w.flush()
		return
	}
	w.put(name + ":")
	w.flush()
}

func (w *writer) funcEndMASM(name string) {
	w.put(name + " ENDP")
	w.flush()
}

func (w *writer) dataDirectiveMASM(size uint32) string {
	switch size {
	case 2:
		return "dw"
	case 4:
		return "dd"
	case 6:
		return "df"
	case 8:
		return "dq"
	}
	return "db"
}

func (w *writer) uninitDataMASM(elem, count uint32) {
	w.tab(asmTab1)
	w.put(w.dataDirectiveMASM(elem))
	w.tab(asmTab2)
	w.putf("%d dup (?)", count)
	w.flush()
}

func alignName(align uint32) string {
	switch {
	case align >= 8:
		return "page"
	case align >= 4:
		return "para"
	case align >= 2:
		return "dword"
	case align >= 1:
		return "word"
	}
	return "byte"
}

// wordSizeMax returns the widest word size of any section, used by the
// file header.
func (w *writer) wordSizeMax() uint32 {
	max := uint32(16)
	for i := int32(1); i <= int32(w.d.sections.Len()); i++ {
		if s := w.d.sections.Get(i); s != nil && s.WordSize > max {
			max = s.WordSize
		}
	}
	return max
}
