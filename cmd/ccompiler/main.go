package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	ccompiler "github.com/NathanVRyver/compiler"
)

type args struct {
	verbose    *bool
	tokensOnly *bool
	astOnly    *bool
	triple     *string
}

func readArgs() *args {
	a := &args{
		verbose:    flag.Bool("v", false, "Dump the token stream and symbol table"),
		tokensOnly: flag.Bool("tokens-only", false, "Stop after lexing and print the token stream"),
		astOnly:    flag.Bool("ast-only", false, "Stop after parsing and print the AST"),
		triple:     flag.String("target", "", "Override the target triple (default x86_64-unknown-linux-gnu)"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()
	// flag.Parse stops at the first positional argument, so a -v given
	// after the file names is picked up here.
	var rest []string
	for _, arg := range flag.Args() {
		if arg == "-v" {
			*a.verbose = true
			continue
		}
		rest = append(rest, arg)
	}

	if len(rest) < 1 {
		log.Fatal("Usage: ccompiler <input_file> [output_file] [-v]")
	}
	inputPath := rest[0]
	outputPath := "output.ll"
	if len(rest) >= 2 {
		outputPath = rest[1]
	}

	opts := ccompiler.Options{Verbose: *a.verbose}
	if *a.triple != "" {
		opts.TargetTriple = *a.triple
	}

	if *a.tokensOnly {
		runTokensOnly(inputPath)
		return
	}
	if *a.astOnly {
		runAstOnly(inputPath)
		return
	}

	fmt.Printf("Compiling %s\n", inputPath)
	result, err := ccompiler.CompileFile(inputPath, opts)
	if err != nil {
		fatal(err)
	}

	if *a.verbose {
		dumpTokens(result.Tokens)
		dumpScope(result.Scope)
		dumpIdentifierRefs(result.AST)
	}

	if err := ccompiler.WriteOutput(outputPath, result.IR); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", outputPath)
}

func runTokensOnly(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Can't open input file: %s", err.Error())
	}
	lex := ccompiler.NewLexer(src)
	for {
		tok := lex.Next()
		fmt.Println(tok.String())
		if tok.Kind == ccompiler.EndOfInput {
			break
		}
	}
}

func runAstOnly(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Can't open input file: %s", err.Error())
	}
	parser := ccompiler.NewParser(src)
	prog, err := parser.Parse()
	if err != nil {
		fatal(err)
	}
	fmt.Println(prog.PrettyString())
}

// fatal prints err and exits. A CompileErrors value (more than one error
// recorded by the parser's panic-mode recovery) is printed one per line
// instead of collapsing it to Go's default slice formatting.
func fatal(err error) {
	if errs, ok := err.(ccompiler.CompileErrors); ok {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}
	log.Fatal(err)
}

// dumpIdentifierRefs walks the AST with Inspect to list every identifier
// reference in source order, the "odd one-off traversal that only cares
// about a couple of node types" Inspect exists for.
func dumpIdentifierRefs(prog *ccompiler.ProgramNode) {
	fmt.Println("-- identifier references --")
	ccompiler.Inspect(prog, func(n ccompiler.AstNode) bool {
		if id, ok := n.(*ccompiler.IdentifierNode); ok {
			fmt.Println(id.Name)
		}
		return true
	})
}

func dumpTokens(tokens []ccompiler.Token) {
	fmt.Println("-- tokens --")
	for _, t := range tokens {
		fmt.Println(t.String())
	}
}

func dumpScope(s *ccompiler.Scope) {
	if s == nil {
		return
	}
	fmt.Println("-- global symbols --")
	for _, name := range s.Names() {
		fmt.Println(name)
	}
}
