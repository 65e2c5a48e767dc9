package ccompiler

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateIR(t *testing.T, src string) string {
	t.Helper()
	p := NewParser([]byte(src))
	prog, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, NewAnalyzer().Analyze(prog))
	ir, err := NewGenerator(Options{}).Generate(prog)
	require.NoError(t, err)
	return ir
}

func TestCodegenScenarioS1(t *testing.T) {
	ir := generateIR(t, "int main() { return 42; }")
	assert.Contains(t, ir, "define i32 @main()")
	assert.NotContains(t, ir, "alloca")
	assert.Contains(t, ir, "%t0 = add i32 42, 0")
	assert.Contains(t, ir, "ret i32 %t0")
	assert.Contains(t, ir, "ret i32 0")
	assert.True(t, strings.HasSuffix(strings.TrimRight(ir, "\n"), "}"))
}

func TestCodegenScenarioS2(t *testing.T) {
	ir := generateIR(t, `
		int add(int a, int b) { return a + b; }
		int main() { return add(2, 3); }
	`)
	assert.Contains(t, ir, "define i32 @add(i32 %a, i32 %b)")
	assert.Contains(t, ir, "define i32 @main()")
	assert.Regexp(t, regexp.MustCompile(`call i32 @add\(i32 %t\d+, i32 %t\d+\)`), ir)
	// Parameters are used directly, never loaded.
	addBody := ir[strings.Index(ir, "define i32 @add"):strings.Index(ir, "define i32 @main")]
	assert.NotContains(t, addBody, "load")
	assert.Contains(t, addBody, "%a")
	assert.Contains(t, addBody, "%b")
}

func TestCodegenScenarioS3(t *testing.T) {
	ir := generateIR(t, `
		int main() {
			int i; int result;
			for (i = 0; i < 5; i = i + 1) result = result + i;
			return result;
		}
	`)
	for _, label := range []string{"label0:", "label1:", "label2:", "label3:"} {
		assert.Contains(t, ir, label)
	}
	assert.Equal(t, 2, strings.Count(ir, "br label %label0"))
}

func TestCodegenScenarioS6(t *testing.T) {
	ir := generateIR(t, `
		int puts(int s);
		int main() { return puts("hi\n"); }
	`)
	assert.Contains(t, ir, `@str.0 = private constant [4 x i8] c"hi\0A\00"`)
	assert.Contains(t, ir, "getelementptr [4 x i8], [4 x i8]* @str.0")
}

func TestCodegenDeduplicatesIdenticalStringLiterals(t *testing.T) {
	ir := generateIR(t, `
		int puts(int s);
		int main() {
			puts("same");
			puts("same");
			return 0;
		}
	`)
	assert.Equal(t, 1, strings.Count(ir, "private constant"))
}

func TestCodegenWellFormedness(t *testing.T) {
	// P7, in part: exactly one entry: per define, and every br targets a
	// label defined in the IR. The %tN def-before-use part is not checked.
	ir := generateIR(t, `
		int main() {
			int i;
			if (i < 1) { i = 1; } else { i = 2; }
			return i;
		}
	`)
	defines := regexp.MustCompile(`define[^\n]*\n`).FindAllStringIndex(ir, -1)
	require.Len(t, defines, 1)
	assert.Equal(t, 1, strings.Count(ir, "entry:"))

	labelRe := regexp.MustCompile(`(\w+):`)
	labels := map[string]bool{}
	for _, m := range labelRe.FindAllStringSubmatch(ir, -1) {
		labels[m[1]] = true
	}
	brTargetRe := regexp.MustCompile(`br(?: i1 %\w+,)? label %(\w+)(?:, label %(\w+))?`)
	for _, m := range brTargetRe.FindAllStringSubmatch(ir, -1) {
		for _, g := range m[1:] {
			if g != "" {
				assert.True(t, labels[g], "branch target %s must be a defined label", g)
			}
		}
	}
}

func TestCodegenWhileLoopLabels(t *testing.T) {
	ir := generateIR(t, `
		int main() {
			int i;
			while (i < 5) { i = i + 1; }
			return i;
		}
	`)
	assert.Contains(t, ir, "label0:")
	assert.Contains(t, ir, "label1:")
	assert.Contains(t, ir, "label2:")
}

func TestCodegenUnaryOperators(t *testing.T) {
	ir := generateIR(t, "int main() { return -5; }")
	assert.Contains(t, ir, "sub i32 0, %t0")
}

func TestCodegenGlobalVariable(t *testing.T) {
	ir := generateIR(t, `
		int counter = 5;
		int bump() { counter = counter + 1; return counter; }
	`)
	assert.Contains(t, ir, "@counter = global i32 5")
	assert.Contains(t, ir, "load i32, i32* @counter")
	assert.Contains(t, ir, "store i32 %t2, i32* @counter")
}

func TestCodegenUnsupportedUnaryRejected(t *testing.T) {
	p := NewParser([]byte("int main() { int x; return &x; }"))
	prog, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, NewAnalyzer().Analyze(prog))
	_, err = NewGenerator(Options{}).Generate(prog)
	require.Error(t, err)
	ce := err.(CompileError)
	assert.Equal(t, ClassCodegen, ce.Class)
}
