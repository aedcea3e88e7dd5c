package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "disasm":
		err = cmdDisasm(os.Args[2:])
	case "callgraph":
		err = cmdCallgraph(os.Args[2:])
	case "info":
		err = cmdInfo(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `disx86 — x86/x86-64 object file disassembler

Usage:
  disx86 disasm    --in <file> [--syntax masm|nasm|gas] [--out <file>]   Disassemble to assembler text
  disx86 callgraph --in <file> --out <dir>                                Write DOT call graph from call edges
  disx86 info      --in <file>                                            Print section/symbol/relocation summary

Flags:
  --in <file>        Input ELF object or shared library
  --out <path>       Output file or directory (default stdout)
  --syntax <name>    Output dialect: masm, nasm (default) or gas
  --verify           Cross-check decodes against the reference decoder
`)
}
