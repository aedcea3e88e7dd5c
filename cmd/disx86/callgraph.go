package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zboralski/lattice/render"

	"disx86/internal/callgraph"
	"disx86/internal/dis"
	"disx86/internal/elfx"
)

func cmdCallgraph(args []string) error {
	fs := flag.NewFlagSet("callgraph", flag.ExitOnError)
	in := fs.String("in", "", "input ELF file")
	out := fs.String("out", "", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("callgraph: --in is required")
	}

	f, err := elfx.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	d := dis.New(dis.SyntaxNASM)
	if _, err := f.Load(d); err != nil {
		return err
	}
	if err := d.Go(); err != nil {
		return err
	}

	g := callgraph.Build(d.CallEdges())
	dot := render.DOT(g, "callgraph")

	if *out == "" {
		fmt.Print(dot)
		return nil
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		return fmt.Errorf("callgraph: mkdir: %w", err)
	}
	path := filepath.Join(*out, "callgraph.dot")
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return fmt.Errorf("callgraph: write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "callgraph: %d edge(s) -> %s\n", len(d.CallEdges()), path)
	return nil
}
