package ccompiler

// Options controls the behavior of a single compilation run. It is a small,
// concrete, typed struct — the same shape as the teacher's own
// CompilerConfig in grammar_compiler.go — rather than the teacher's
// stringly-typed Config map used elsewhere for the grammar loader, because
// this compiler's option set is fixed and small.
type Options struct {
	// TargetTriple is emitted verbatim in the IR preamble. Defaults to
	// "x86_64-unknown-linux-gnu" when empty.
	TargetTriple string

	// SourceFilename is emitted as a leading comment in the generated IR,
	// naming the input file the IR was produced from.
	SourceFilename string

	// Verbose records whether the driver's -v flag was given. No compilation
	// stage reads it; the driver itself prints the token stream and symbol
	// table dumps from the returned Result.
	Verbose bool
}

const defaultTargetTriple = "x86_64-unknown-linux-gnu"

// triple returns the configured target triple, defaulting when unset.
func (o Options) triple() string {
	if o.TargetTriple == "" {
		return defaultTargetTriple
	}
	return o.TargetTriple
}
