package main

import (
	"flag"
	"fmt"
	"os"

	"disx86/internal/dis"
	"disx86/internal/elfx"
)

func parseSyntax(name string) (dis.Syntax, error) {
	switch name {
	case "masm":
		return dis.SyntaxMASM, nil
	case "nasm", "":
		return dis.SyntaxNASM, nil
	case "gas":
		return dis.SyntaxGAS, nil
	}
	return 0, fmt.Errorf("unknown syntax %q (want masm, nasm or gas)", name)
}

func cmdDisasm(args []string) error {
	fs := flag.NewFlagSet("disasm", flag.ExitOnError)
	in := fs.String("in", "", "input ELF file")
	out := fs.String("out", "", "output file (default stdout)")
	syntaxName := fs.String("syntax", "nasm", "output dialect: masm, nasm or gas")
	verify := fs.Bool("verify", false, "cross-check decodes against the reference decoder")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("disasm: --in is required")
	}
	syntax, err := parseSyntax(*syntaxName)
	if err != nil {
		return err
	}

	f, err := elfx.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	d := dis.New(syntax)
	d.Verify = *verify
	ncode, err := f.Load(d)
	if err != nil {
		return err
	}
	if err := d.Go(); err != nil {
		return err
	}

	if *out == "" {
		_, err = os.Stdout.Write(d.Output())
	} else {
		err = os.WriteFile(*out, d.Output(), 0644)
	}
	if err != nil {
		return fmt.Errorf("disasm: write output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "disasm: %d code section(s), %d error(s), %d warning(s)\n",
		ncode, d.ErrorCount(), d.WarningCount())
	return nil
}
