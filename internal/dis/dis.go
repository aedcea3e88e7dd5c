// Package dis drives the two-pass disassembly: pass 1 discovers labels,
// functions and symbol types by walking every code section; pass 2
// re-decodes the same bytes and renders assembler text in one of three
// dialects. The caller populates sections, symbols and relocations
// through the builder API, calls Go, and drains the output buffer.
package dis

import (
	"bytes"

	"github.com/pkg/errors"

	"disx86/internal/decode"
	"disx86/internal/obj"
)

// Syntax selects the output dialect. The value doubles as the index used
// by dialect-linked opcode table entries.
type Syntax uint32

const (
	SyntaxMASM Syntax = iota
	SyntaxNASM
	SyntaxGAS
)

// Executable type passed to Init.
const (
	ExeObject     = 0 // relocatable object
	ExePIC        = 1 // position independent shared object
	ExeExecutable = 2 // addresses relocated to a fixed image base
)

// FlagPrevious values describing the previous instruction.
const (
	prevNop    = 1
	prevJump   = 2
	prevUD     = 6
	prevAlign16 = 0x100
	prevAlign32 = 0x200
)

// CodeMode classification of the current position.
const (
	modeCode    = 1
	modeDubious = 2
	modeData    = 4
)

// maxPasses bounds pass-1 reruns requested by late discoveries.
const maxPasses = 3

// CallEdge records one resolved direct call discovered by pass 1,
// consumed by the call-graph builder.
type CallEdge struct {
	Caller string
	Callee string
}

// Disassembler is the top-level driver. Populate it with Init,
// AddSection, AddSymbol and AddRelocation, then call Go and read Output.
type Disassembler struct {
	syntax    Syntax
	exeType   uint32
	imageBase int64

	sections *obj.SectionList
	symbols  *obj.SymbolTable
	relocs   obj.RelocationIndex
	funcs    obj.FuncList

	out bytes.Buffer

	// Verify enables the cross-check of plain decodes against the
	// golang.org/x/arch reference decoder; mismatches become output
	// comments.
	Verify bool

	// pass state
	pass      int
	repeatReq bool
	section   int32
	sec       *obj.Section
	dec       decode.Decoder
	tracer    Tracer
	ifunc     int32 // current function record, -1 = none
	funcEnd   uint32
	flagPrev  uint32
	codeMode  uint32

	assumes     [6]int32 // es, cs, ss, ds, fs, gs
	countErrors int
	countWarns  int
	edges       []CallEdge
}

// New returns a disassembler emitting the given dialect.
func New(syntax Syntax) *Disassembler {
	d := &Disassembler{
		syntax:   syntax,
		sections: obj.NewSectionList(),
		symbols:  obj.NewSymbolTable(),
		ifunc:    -1,
	}
	return d
}

// Init sets the executable type and image base. ExeExecutable means the
// addresses have already been relocated to the image base.
func (d *Disassembler) Init(exeType uint32, imageBase int64) {
	d.exeType = exeType
	d.imageBase = imageBase
}

// AddSection registers a section. The byte buffer is borrowed until Go
// returns. Returns the 1-based section index.
func (d *Disassembler) AddSection(buf []byte, initSize, totalSize, addr, typ, align, wordSize uint32, name string) int32 {
	if initSize > uint32(len(buf)) {
		initSize = uint32(len(buf))
	}
	if totalSize < initSize {
		totalSize = initSize
	}
	return d.sections.Add(obj.Section{
		Bytes:     buf,
		Addr:      addr,
		InitSize:  initSize,
		TotalSize: totalSize,
		Type:      typ,
		Align:     align,
		WordSize:  wordSize,
		Name:      name,
	})
}

// AddSymbol registers a symbol and returns its old index (assigning one
// when the caller passes 0).
func (d *Disassembler) AddSymbol(section int32, offset, size, typ, scope, oldIndex uint32, name, dllName string) uint32 {
	i := d.symbols.Add(obj.Symbol{
		Section:  section,
		Offset:   offset,
		Size:     size,
		Type:     typ,
		Scope:    scope,
		OldIndex: oldIndex,
		Name:     name,
		DLLName:  dllName,
	})
	return d.symbols.At(i).OldIndex
}

// AddRelocation registers a relocation or cross-reference.
func (d *Disassembler) AddRelocation(section int32, offset uint32, addend int32, typ, size, targetOld, refOld uint32) {
	d.relocs.Add(obj.Relocation{
		Section:        section,
		Offset:         offset,
		Type:           typ,
		Size:           size,
		Addend:         addend,
		TargetOldIndex: targetOld,
		RefOldIndex:    refOld,
	})
}

// AddSectionGroup registers a section group and returns its index.
// Members point at the group through their Group field.
func (d *Disassembler) AddSectionGroup(name string, member int32) int32 {
	gi := d.sections.Add(obj.Section{Type: obj.SecGroup, Name: name})
	if m := d.sections.Get(member); m != nil {
		m.Group = gi
	}
	return gi
}

// CallEdges returns the direct call edges discovered by pass 1, for the
// call-graph side output. Valid after Go.
func (d *Disassembler) CallEdges() []CallEdge { return d.edges }

// Output returns the rendered text. Valid after Go.
func (d *Disassembler) Output() []byte { return d.out.Bytes() }

// ErrorCount and WarningCount report the run-level totals.
func (d *Disassembler) ErrorCount() int   { return d.countErrors }
func (d *Disassembler) WarningCount() int { return d.countWarns }

// Go runs both passes. Only gross input invariants are returned as
// errors; everything recoverable becomes inline output commentary.
func (d *Disassembler) Go() error {
	if err := d.initialErrorCheck(); err != nil {
		return err
	}
	d.relocs.Sort()
	d.fixRelocationTargets()

	for d.pass = 1; d.pass <= maxPasses; d.pass++ {
		d.repeatReq = false
		d.pass1()
		if !d.repeatReq {
			break
		}
	}

	d.symbols.SanitizeNames()
	d.countWarns += d.symbols.NamesChanged
	d.symbols.AssignNames()

	d.pass2()
	return nil
}

// initialErrorCheck validates the caller-supplied tables before any
// decoding starts.
func (d *Disassembler) initialErrorCheck() error {
	for i := int32(1); i <= int32(d.sections.Len()); i++ {
		s := d.sections.Get(i)
		if s.Type&obj.SecGroup != 0 {
			continue
		}
		if s.InitSize > s.TotalSize {
			return errors.Errorf("dis: section %q: initialized size %d exceeds total size %d",
				s.Name, s.InitSize, s.TotalSize)
		}
		if s.InitSize > uint32(len(s.Bytes)) {
			return errors.Errorf("dis: section %q: initialized size %d exceeds buffer size %d",
				s.Name, s.InitSize, len(s.Bytes))
		}
	}
	d.relocs.Sort()
	for i := int32(0); i < int32(d.relocs.Len()); i++ {
		r := d.relocs.At(i)
		sec := d.sections.Get(r.Section)
		if sec == nil {
			return errors.Errorf("dis: relocation %d: source section %d does not exist", i, r.Section)
		}
		if r.Offset+r.Size > sec.TotalSize {
			return errors.Errorf("dis: relocation %d: source offset 0x%X outside section %q", i, r.Offset, sec.Name)
		}
	}
	if i := d.relocs.CheckOverlap(); i >= 0 {
		r := d.relocs.At(i)
		return errors.Wrapf(errOverlap, "dis: relocation at section %d offset 0x%X", r.Section, r.Offset)
	}
	return nil
}

var errOverlap = errors.New("overlapping relocation sources")

// fixRelocationTargets resolves image-relative target symbols to a
// concrete (section, offset) when the sections are known.
func (d *Disassembler) fixRelocationTargets() {
	for i := 0; i < d.symbols.Len(); i++ {
		s := d.symbols.At(int32(i))
		if s.Section != obj.SectImageRel {
			continue
		}
		if sec, off, ok := d.sections.FindByAddress(s.Offset); ok {
			s.Section = sec
			s.Offset = off
		}
	}
}

// relocLookup returns the decoder's relocation binding hook for the
// current section.
func (d *Disassembler) relocLookup() decode.RelocLookup {
	section := d.section
	return func(offset, size uint32) (int32, *obj.Relocation) {
		i := d.relocs.FindRange(section, offset, size)
		if i < 0 {
			return -1, nil
		}
		return i, d.relocs.At(i)
	}
}

// setSection prepares the decoder for a section walk.
func (d *Disassembler) setSection(i int32) {
	d.section = i
	d.sec = d.sections.Get(i)
	d.dec = decode.Decoder{
		Mode:   d.sec.WordSize,
		Syntax: uint32(d.syntax),
		Relocs: d.relocLookup(),
	}
	d.tracer.Reset()
	d.ifunc = -1
	d.funcEnd = 0
	d.flagPrev = 0
	d.codeMode = modeCode
}
