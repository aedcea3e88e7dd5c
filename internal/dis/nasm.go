package dis

import "disx86/internal/obj"

// NASM/YASM-specific emitters.

func (w *writer) fileBeginNASM() {
	if w.wordSizeMax() >= 64 {
		w.put("default rel")
		w.flush()
	}
	w.flush()
}

func (w *writer) fileEndNASM() {}

func (w *writer) segmentBeginNASM(sec *obj.Section) {
	w.putf("SECTION %s align=%d", sec.Name, uint32(1)<<sec.Align)
	if sec.Type&0xFF == obj.SecBSS {
		w.put(" nobits")
	}
	switch sec.WordSize {
	case 16:
		w.put(" use16")
	case 32:
		w.put(" use32")
	case 64:
		w.put(" use64")
	}
	w.flush()
}

func (w *writer) segmentEndNASM(sec *obj.Section) {
	w.flush()
}

func (w *writer) publicDeclNASM(name string) {
	w.put("global " + name)
	w.flush()
}

func (w *writer) externDeclNASM(name string) {
	w.put("extern " + name)
	w.flush()
}

func (w *writer) labelNASM(name string, isFunc, public bool) {
	w.put(name + ":")
	w.flush()
}

func (w *writer) dataDirectiveNASM(size uint32) string {
	return w.dataDirectiveMASM(size)
}

func (w *writer) uninitDataNASM(elem, count uint32) {
	w.tab(asmTab1)
	switch elem {
	case 2:
		w.put("resw")
	case 4:
		w.put("resd")
	case 8:
		w.put("resq")
	default:
		w.put("resb")
		count *= elem
	}
	w.tab(asmTab2)
	w.putf("%d", count)
	w.flush()
}
