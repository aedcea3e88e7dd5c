package dis

import (
	"fmt"

	"golang.org/x/arch/x86/x86asm"

	"disx86/internal/decode"
)

// crossCheck compares a decode against the golang.org/x/arch reference
// decoder and reports a mismatch in instruction length. The reference
// decoder predates EVEX, so those encodings are skipped, and a reference
// failure on bytes we decoded is not reported (our tables are wider in
// places).
func (d *Disassembler) crossCheck(in *decode.Inst) string {
	if in.VexType >= decode.VexEVEX {
		return ""
	}
	if in.Start >= d.sec.InitSize {
		return ""
	}
	ref, err := x86asm.Decode(d.sec.Bytes[in.Start:d.sec.InitSize], int(d.sec.WordSize))
	if err != nil {
		return ""
	}
	if uint32(ref.Len) != in.Len() {
		return fmt.Sprintf("reference decoder disagrees on length: %d vs %d (%s)",
			ref.Len, in.Len(), ref.Op)
	}
	return ""
}
