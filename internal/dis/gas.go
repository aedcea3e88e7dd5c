package dis

import "disx86/internal/obj"

// GAS-specific emitters. Output is AT&T syntax; the operand rendering
// lives in instr.go.

func (w *writer) fileBeginGAS() {
	w.flush()
}

func (w *writer) fileEndGAS() {}

func (w *writer) segmentBeginGAS(sec *obj.Section) {
	switch {
	case sec.IsCode():
		w.put(".text")
	case sec.Type&0xFF == obj.SecBSS:
		w.put(".bss")
	case sec.Type&0xFF == obj.SecConst:
		w.put(".section .rodata")
	default:
		w.put(".data")
	}
	w.flush()
	if sec.Align > 0 {
		w.putf(".balign %d", uint32(1)<<sec.Align)
		w.flush()
	}
}

func (w *writer) segmentEndGAS(sec *obj.Section) {
	w.flush()
}

func (w *writer) publicDeclGAS(name string) {
	w.put(".globl " + name)
	w.flush()
}

func (w *writer) externDeclGAS(name string) {
	// GAS treats undefined names as external; record it as commentary.
	w.put(w.commentSep() + "extern " + name)
	w.flush()
}

func (w *writer) labelGAS(name string, isFunc, public bool) {
	if isFunc {
		w.put(".type " + name + ", @function")
		w.flush()
	}
	w.put(name + ":")
	w.flush()
}

func (w *writer) dataDirectiveGAS(size uint32) string {
	switch size {
	case 2:
		return ".word"
	case 4:
		return ".long"
	case 8:
		return ".quad"
	}
	return ".byte"
}

func (w *writer) uninitDataGAS(elem, count uint32) {
	w.tab(asmTab1)
	w.put(".zero")
	w.tab(asmTab2)
	w.putf("%d", elem*count)
	w.flush()
}
