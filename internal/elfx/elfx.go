// Package elfx loads x86/x86-64 ELF object files and shared objects and
// feeds their sections, symbols and relocations into the disassembler
// builder API.
package elfx

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"

	"disx86/internal/dis"
	"disx86/internal/obj"
)

var (
	ErrNotELF = fmt.Errorf("elfx: not an ELF file")
	ErrNotX86 = fmt.Errorf("elfx: not x86 or x86-64 (EM_386/EM_X86_64)")
	ErrNoCode = fmt.Errorf("elfx: no executable section found")
)

// File wraps a debug/elf.File validated to be an x86-family object.
type File struct {
	ELF  *elf.File
	Path string
}

// Open opens an ELF file and validates the machine type.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "elfx: open")
	}
	ef, err := elf.NewFile(f)
	if err != nil {
		f.Close()
		return nil, pkgerrors.Wrapf(ErrNotELF, "%v", err)
	}
	if ef.Machine != elf.EM_X86_64 && ef.Machine != elf.EM_386 {
		ef.Close()
		return nil, ErrNotX86
	}
	return &File{ELF: ef, Path: path}, nil
}

// Close releases the underlying file.
func (f *File) Close() error { return f.ELF.Close() }

// WordSize returns the segment word size implied by the ELF class.
func (f *File) WordSize() uint32 {
	if f.ELF.Class == elf.ELFCLASS64 {
		return 64
	}
	return 32
}

// ExeType maps the ELF type onto the disassembler's executable kinds.
func (f *File) ExeType() uint32 {
	switch f.ELF.Type {
	case elf.ET_DYN:
		return dis.ExePIC
	case elf.ET_EXEC:
		return dis.ExeExecutable
	}
	return dis.ExeObject
}

// Load populates the disassembler with every allocatable section, the
// symbol table and all SHT_RELA/SHT_REL relocations. Returns the number
// of code sections loaded.
func (f *File) Load(d *dis.Disassembler) (int, error) {
	d.Init(f.ExeType(), 0)
	wordSize := f.WordSize()

	// ELF section index -> disassembler section index.
	secMap := make([]int32, len(f.ELF.Sections))
	code := 0
	for i, s := range f.ELF.Sections {
		if s.Flags&elf.SHF_ALLOC == 0 || s.Type == elf.SHT_NULL {
			continue
		}
		typ := uint32(obj.SecConst)
		switch {
		case s.Flags&elf.SHF_EXECINSTR != 0:
			typ = obj.SecCode
			code++
		case s.Type == elf.SHT_NOBITS:
			typ = obj.SecBSS
		case s.Flags&elf.SHF_WRITE != 0:
			typ = obj.SecData
		}

		var data []byte
		initSize := uint32(0)
		if s.Type != elf.SHT_NOBITS {
			var err error
			data, err = s.Data()
			if err != nil {
				return 0, pkgerrors.Wrapf(err, "elfx: read section %s", s.Name)
			}
			initSize = uint32(len(data))
		}
		align := uint32(0)
		for a := s.Addralign; a > 1; a >>= 1 {
			align++
		}
		secMap[i] = d.AddSection(data, initSize, uint32(s.Size), uint32(s.Addr), typ, align, wordSize, s.Name)
	}
	if code == 0 {
		return 0, ErrNoCode
	}

	if err := f.loadSymbols(d, secMap); err != nil {
		return code, err
	}
	if err := f.loadRelocations(d, secMap); err != nil {
		return code, err
	}
	return code, nil
}

// loadSymbols ingests the symbol table. The old index handed to the
// disassembler is the ELF symbol table index, which is what relocation
// entries refer to.
func (f *File) loadSymbols(d *dis.Disassembler, secMap []int32) error {
	syms, err := f.ELF.Symbols()
	if err != nil {
		if err == elf.ErrNoSymbols {
			return nil
		}
		return pkgerrors.Wrap(err, "elfx: symbols")
	}
	for i, s := range syms {
		oldIndex := uint32(i + 1) // debug/elf drops the null entry
		if elf.ST_TYPE(s.Info) == elf.STT_SECTION || elf.ST_TYPE(s.Info) == elf.STT_FILE {
			// Section symbols keep their old index but carry no name.
			if int(s.Section) < len(secMap) && secMap[s.Section] > 0 {
				d.AddSymbol(secMap[s.Section], uint32(s.Value), 0, 0, obj.ScopeFileLoc, oldIndex, "", "")
			}
			continue
		}

		section := int32(obj.SectExternal)
		scope := uint32(obj.ScopeExternal)
		switch {
		case s.Section == elf.SHN_UNDEF:
		case s.Section == elf.SHN_ABS:
			section = obj.SectAbsolute
			scope = obj.ScopeFileLoc
		case int(s.Section) < len(secMap) && secMap[s.Section] > 0:
			section = secMap[s.Section]
			switch elf.ST_BIND(s.Info) {
			case elf.STB_GLOBAL:
				scope = obj.ScopePublic
			case elf.STB_WEAK:
				scope = obj.ScopeWeak
			default:
				scope = obj.ScopeFileLoc
			}
		default:
			continue
		}
		d.AddSymbol(section, uint32(s.Value), uint32(s.Size), 0, scope, oldIndex, s.Name, "")
	}
	return nil
}

// loadRelocations parses the raw SHT_RELA/SHT_REL sections and maps the
// ELF relocation types onto the disassembler's taxonomy.
func (f *File) loadRelocations(d *dis.Disassembler, secMap []int32) error {
	for _, s := range f.ELF.Sections {
		if s.Type != elf.SHT_RELA && s.Type != elf.SHT_REL {
			continue
		}
		target := int(s.Info)
		if target >= len(secMap) || secMap[target] == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return pkgerrors.Wrapf(err, "elfx: read %s", s.Name)
		}
		if f.ELF.Class == elf.ELFCLASS64 {
			f.parseRela64(d, secMap[target], data, s.Type == elf.SHT_RELA)
		} else {
			f.parseRel32(d, secMap[target], data, s.Type == elf.SHT_RELA)
		}
	}
	return nil
}

func (f *File) parseRela64(d *dis.Disassembler, section int32, data []byte, hasAddend bool) {
	bo := f.ELF.ByteOrder
	entry := 16
	if hasAddend {
		entry = 24
	}
	for off := 0; off+entry <= len(data); off += entry {
		roff := bo.Uint64(data[off:])
		rinfo := bo.Uint64(data[off+8:])
		var addend int64
		if hasAddend {
			addend = int64(bo.Uint64(data[off+16:]))
		}
		sym := uint32(rinfo >> 32)
		typ, size := mapRelX64(uint32(rinfo & 0xFFFFFFFF))
		if typ == obj.RelUnknown {
			continue
		}
		if typ&obj.RelSelf != 0 {
			// The disassembler expects the distance from source to
			// instruction pointer folded into the addend.
			addend += int64(size)
		}
		d.AddRelocation(section, uint32(roff), int32(addend), typ, size, sym, 0)
	}
}

func (f *File) parseRel32(d *dis.Disassembler, section int32, data []byte, hasAddend bool) {
	bo := f.ELF.ByteOrder
	entry := 8
	if hasAddend {
		entry = 12
	}
	for off := 0; off+entry <= len(data); off += entry {
		roff := bo.Uint32(data[off:])
		rinfo := bo.Uint32(data[off+4:])
		var addend int64
		if hasAddend {
			addend = int64(int32(bo.Uint32(data[off+8:])))
		}
		sym := rinfo >> 8
		typ, size := mapRel386(rinfo & 0xFF)
		if typ == obj.RelUnknown {
			continue
		}
		if typ&obj.RelSelf != 0 {
			addend += int64(size)
		}
		d.AddRelocation(section, roff, int32(addend), typ, size, sym, 0)
	}
}

// mapRelX64 translates an x86-64 relocation type to (taxonomy, size).
func mapRelX64(t uint32) (uint32, uint32) {
	switch elf.R_X86_64(t) {
	case elf.R_X86_64_64:
		return obj.RelDirect, 8
	case elf.R_X86_64_32, elf.R_X86_64_32S:
		return obj.RelDirect, 4
	case elf.R_X86_64_16:
		return obj.RelDirect, 2
	case elf.R_X86_64_8:
		return obj.RelDirect, 1
	case elf.R_X86_64_PC32:
		return obj.RelSelf, 4
	case elf.R_X86_64_PC16:
		return obj.RelSelf, 2
	case elf.R_X86_64_PC8:
		return obj.RelSelf, 1
	case elf.R_X86_64_PLT32:
		return obj.RelSelfPLT, 4
	case elf.R_X86_64_GOTPCREL, elf.R_X86_64_GOTPCRELX, elf.R_X86_64_REX_GOTPCRELX:
		return obj.RelSelfGOT, 4
	}
	return obj.RelUnknown, 0
}

// mapRel386 translates a 386 relocation type to (taxonomy, size).
func mapRel386(t uint32) (uint32, uint32) {
	switch elf.R_386(t) {
	case elf.R_386_32:
		return obj.RelDirect, 4
	case elf.R_386_PC32:
		return obj.RelSelf, 4
	case elf.R_386_16:
		return obj.RelDirect, 2
	case elf.R_386_PC16:
		return obj.RelSelf, 2
	case elf.R_386_8:
		return obj.RelDirect, 1
	case elf.R_386_PC8:
		return obj.RelSelf, 1
	case elf.R_386_PLT32:
		return obj.RelSelfPLT, 4
	case elf.R_386_GOTPC:
		return obj.RelSelfGOT, 4
	}
	return obj.RelUnknown, 0
}

// ByteOrder returns the file's byte order.
func (f *File) ByteOrder() binary.ByteOrder { return f.ELF.ByteOrder }
