package ccompiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyStringLabelsTopLevelIf(t *testing.T) {
	prog := parseProgram(t, `
		int main() {
			if (1) { return 1; } else { return 2; }
		}
	`)
	out := prog.PrettyString()
	assert.Contains(t, out, "cond: ")
	assert.Contains(t, out, "then: ")
	assert.Contains(t, out, "else: ")
}

// A for-loop nested as the "then" branch of an if must keep its own
// init:/cond:/incr:/body: field labels, not just the if's own labels.
func TestPrettyStringPreservesLabelsOneLevelDeep(t *testing.T) {
	prog := parseProgram(t, `
		int main() {
			if (1) for (i = 0; i < 1; i = i + 1) { return 0; }
		}
	`)
	out := prog.PrettyString()
	require.Contains(t, out, "then: ")
	assert.Contains(t, out, "init: ")
	assert.Contains(t, out, "cond: ")
	assert.Contains(t, out, "incr: ")
	assert.Contains(t, out, "body: ")

	thenIdx := strings.Index(out, "then: ")
	initIdx := strings.Index(out, "init: ")
	require.True(t, thenIdx >= 0 && initIdx >= 0)
	assert.Greater(t, initIdx, thenIdx, "the nested for-loop's own labels must appear after the if's then: label")
}
