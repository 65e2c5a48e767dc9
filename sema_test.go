package ccompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeSource(t *testing.T, src string) error {
	t.Helper()
	p := NewParser([]byte(src))
	prog, err := p.Parse()
	require.NoError(t, err)
	return NewAnalyzer().Analyze(prog)
}

func TestAnalyzeValidProgram(t *testing.T) {
	err := analyzeSource(t, `
		int add(int a, int b) { return a + b; }
		int main() { int r = add(1, 2); return r; }
	`)
	assert.NoError(t, err)
}

func TestAnalyzeUndeclaredIdentifier(t *testing.T) {
	// S4
	err := analyzeSource(t, "int main() { return x; }")
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Equal(t, ClassSemantic, ce.Class)
	assert.Equal(t, "Undeclared identifier: x", ce.Message)
}

func TestAnalyzeRedeclarationSameScope(t *testing.T) {
	// S5
	err := analyzeSource(t, "int main() { int i; int i; }")
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Equal(t, ClassSemantic, ce.Class)
	assert.Contains(t, ce.Message, "Redeclaration of symbol")
}

func TestAnalyzeScopeDiscipline(t *testing.T) {
	// P5: a name declared inside a compound statement is not visible outside
	// it, but is visible inside.
	err := analyzeSource(t, `
		int main() {
			{ int n; n = 1; }
			return n;
		}
	`)
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Equal(t, "Undeclared identifier: n", ce.Message)
}

func TestAnalyzeParametersVisibleInBody(t *testing.T) {
	err := analyzeSource(t, "int id(int x) { return x; }")
	assert.NoError(t, err)
}

func TestAnalyzeCallArityMismatch(t *testing.T) {
	// P6
	err := analyzeSource(t, `
		int add(int a, int b) { return a + b; }
		int main() { return add(1); }
	`)
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Contains(t, ce.Message, "Argument count mismatch")
}

func TestAnalyzeCallOfNonFunction(t *testing.T) {
	err := analyzeSource(t, `
		int main() {
			int x;
			return x(1);
		}
	`)
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Contains(t, ce.Message, "Call to non-function symbol")
}

func TestAnalyzeForHeaderScope(t *testing.T) {
	// A for loop whose header assigns to variables declared before the loop
	// analyzes cleanly, and those variables stay visible after it.
	err := analyzeSource(t, `
		int main() {
			int i;
			int result;
			for (i = 0; i < 5; i = i + 1) result = result + i;
			return result;
		}
	`)
	assert.NoError(t, err)
}

func TestAnalyzeUnknownTypeName(t *testing.T) {
	// The grammar only ever hands the analyzer "int"/"char"/"void" (or a
	// registered struct name), so this path is exercised directly against a
	// hand-built node rather than through the parser.
	fn := NewFunctionDeclNode("foo", "main", nil, NewCompoundStmtNode(nil, Span{}), Span{})
	prog := NewProgramNode([]Decl{fn}, Span{})
	err := NewAnalyzer().Analyze(prog)
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Contains(t, ce.Message, "Unknown type name")
}
