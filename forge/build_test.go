package forge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOutput(t *testing.T) {
	testCases := []struct {
		name   string
		output string
		want   BuildStatus
	}{
		{
			name:   "legacy compiled",
			output: "[⠊] Compiling...\n[⠒] Compiling 12 files with 0.8.19\n[⠢] Solc 0.8.19 finished in 1.20s\nCompiler run successful\n",
			want:   BuildCompiled,
		},
		{
			name:   "compiled with warnings",
			output: "Compiling 3 files with Solc 0.8.24\nCompiler run successful with warnings:\nWarning (2072): Unused local variable.\n",
			want:   BuildCompiled,
		},
		{
			name:   "no change",
			output: "[⠊] Compiling...\nNo files changed, compilation skipped\n",
			want:   BuildNoChange,
		},
		{
			name:   "colored",
			output: "\x1b[32mCompiler run successful!\x1b[0m\n",
			want:   BuildCompiled,
		},
		{
			name:   "error",
			output: "Compiler run failed:\nError (7576): Undeclared identifier.\n",
			want:   BuildFailed,
		},
		{name: "empty", output: "", want: BuildFailed},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyOutput(tt.output))
		})
	}
}

func TestBuildStatus(t *testing.T) {
	assert.True(t, BuildCompiled.OK())
	assert.True(t, BuildNoChange.OK())
	assert.False(t, BuildFailed.OK())
	assert.Equal(t, "no change", BuildNoChange.String())
}

func TestRunner_MissingBinary(t *testing.T) {
	r := NewRunner("blacksmith-no-such-forge-binary", t.TempDir())
	_, err := r.Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForgeNotFound))
}

func TestNewRunner_Default(t *testing.T) {
	assert.Equal(t, DefaultBinary, NewRunner("", ".").Binary)
}
