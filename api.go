package ccompiler

import (
	"fmt"
	"io"
	"os"
)

// Result is everything a successful compilation produces, returned together
// so the driver can serve -v dumps without re-running any stage.
type Result struct {
	Tokens []Token
	AST    *ProgramNode
	Scope  *Scope
	IR     string
}

// CompileString runs the full pipeline over already-read source text. name
// is used only for the `source_filename` preamble comment.
func CompileString(src []byte, name string, opts Options) (*Result, error) {
	opts.SourceFilename = name

	lex := NewLexer(src)
	var tokens []Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EndOfInput {
			break
		}
	}

	parser := NewParser(src)
	prog, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	analyzer := NewAnalyzer()
	if err := analyzer.Analyze(prog); err != nil {
		return nil, err
	}

	gen := NewGenerator(opts)
	ir, err := gen.Generate(prog)
	if err != nil {
		return nil, err
	}

	return &Result{Tokens: tokens, AST: prog, Scope: analyzer.GlobalScope(), IR: ir}, nil
}

// CompileFile opens path, runs CompileString over its contents, and releases
// the file handle on every exit path, success or failure (spec.md §5's
// "resources are acquired at pipeline entry and released in reverse order on
// every exit path").
func CompileFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CompileError{Class: ClassIO, Message: fmt.Sprintf("cannot open %s: %v", path, err)}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, CompileError{Class: ClassIO, Message: fmt.Sprintf("cannot stat %s: %v", path, err)}
	}
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, CompileError{Class: ClassIO, Message: fmt.Sprintf("cannot read %s: %v", path, err)}
	}

	return CompileString(buf, path, opts)
}

// WriteOutput creates path and writes ir to it, the inverse side of the
// resource-acquisition discipline CompileFile follows on the input side.
func WriteOutput(path, ir string) error {
	f, err := os.Create(path)
	if err != nil {
		return CompileError{Class: ClassIO, Message: fmt.Sprintf("cannot create %s: %v", path, err)}
	}
	defer f.Close()
	if _, err := f.WriteString(ir); err != nil {
		return CompileError{Class: ClassIO, Message: fmt.Sprintf("cannot write %s: %v", path, err)}
	}
	return nil
}
