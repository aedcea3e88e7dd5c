package main

import (
	"debug/elf"
	"flag"
	"fmt"

	"disx86/internal/elfx"
)

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	in := fs.String("in", "", "input ELF file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("info: --in is required")
	}

	f, err := elfx.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("%s: %s, %d-bit, type %v\n", *in, f.ELF.Machine, f.WordSize(), f.ELF.Type)

	nsym := 0
	if syms, err := f.ELF.Symbols(); err == nil {
		nsym = len(syms)
	}
	nrel := 0
	for _, s := range f.ELF.Sections {
		fmt.Printf("  %-20s %-12v addr 0x%08x size 0x%06x align %d\n",
			s.Name, s.Type, s.Addr, s.Size, s.Addralign)
		if (s.Type == elf.SHT_RELA || s.Type == elf.SHT_REL) && s.Entsize > 0 {
			nrel += int(s.Size / s.Entsize)
		}
	}
	fmt.Printf("  %d symbol(s), %d relocation(s)\n", nsym, nrel)
	return nil
}
