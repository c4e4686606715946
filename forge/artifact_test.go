package forge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacksmith-sol/blacksmith/gen"
)

const artifactFixture = `{
	"abi": [
		{"type": "function", "name": "count", "inputs": [], "outputs": [{"name": "", "type": "uint256", "internalType": "uint256"}], "stateMutability": "view"},
		{"type": "function", "name": "increment", "inputs": [], "outputs": [], "stateMutability": "nonpayable"}
	],
	"bytecode": {"object": "0x6080", "sourceMap": "", "linkReferences": {}},
	"methodIdentifiers": {"count()": "06661abd", "increment()": "d09de08a"}
}`

func TestArtifactPath(t *testing.T) {
	got := ArtifactPath("out", gen.Target{Name: "Counter", Source: "src/nested/Counter.sol"})
	assert.Equal(t, filepath.Join("out", "Counter.sol", "Counter.json"), got)
}

func TestLoadABI(t *testing.T) {
	out := t.TempDir()
	writeFile(t, out, "Counter.sol/Counter.json", artifactFixture)

	abi, err := LoadABI(out, gen.Target{Name: "Counter", Source: "src/Counter.sol"})
	require.NoError(t, err)
	require.Len(t, abi, 2)
	assert.Equal(t, "count", abi[0].Name)
	assert.Equal(t, "uint256", abi[0].Outputs[0].InternalType)
	assert.Equal(t, gen.NonPayable, abi[1].StateMutability)
}

func TestLoadABI_Missing(t *testing.T) {
	_, err := LoadABI(t.TempDir(), gen.Target{Name: "Nope", Source: "src/Nope.sol"})
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestParseArtifact_Errors(t *testing.T) {
	_, err := ParseArtifact([]byte("{"))
	assert.Error(t, err)

	_, err = ParseArtifact([]byte(`{"bytecode": {}}`))
	assert.Error(t, err)

	_, err = ParseArtifact([]byte(`{"abi": {"not": "a list"}}`))
	assert.Error(t, err)
}
