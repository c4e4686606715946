package forge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacksmith-sol/blacksmith/gen"
)

const cacheFixture = `{
	"_format": "ethers-rs-sol-cache-3",
	"paths": {"artifacts": "out", "build_infos": "out/build-info", "sources": "src", "tests": "test", "scripts": "script", "libraries": ["lib"]},
	"files": {
		"src/Vault.sol": {
			"lastModificationDate": 1690000000000,
			"sourceName": "src/Vault.sol",
			"artifacts": {
				"Vault": {"0.8.19+commit.7dd6d404.Linux.gcc": "Vault.sol/Vault.json"},
				"IVault": {"0.8.19+commit.7dd6d404.Linux.gcc": "Vault.sol/IVault.json"}
			}
		},
		"src/tokens/Token.sol": {
			"sourceName": "src/tokens/Token.sol",
			"artifacts": {"Token": {"0.8.19": {"default": {"path": "Token.sol/Token.json"}}}}
		},
		"src/test/Vault.t.sol": {
			"sourceName": "src/test/Vault.t.sol",
			"artifacts": {"VaultTest": {}}
		},
		"src/test/blacksmith/Vault.bs.sol": {
			"sourceName": "src/test/blacksmith/Vault.bs.sol",
			"artifacts": {"VaultBS": {}}
		},
		"lib/forge-std/src/Test.sol": {
			"sourceName": "lib/forge-std/src/Test.sol",
			"artifacts": {"Test": {}}
		},
		"test/Token.t.sol": {
			"sourceName": "test/Token.t.sol",
			"artifacts": {"TokenTest": {}}
		},
		"srcx/Other.sol": {
			"sourceName": "srcx/Other.sol",
			"artifacts": {"Other": {}}
		}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadCache(t *testing.T) {
	file := writeFile(t, t.TempDir(), "cache/solidity-files-cache.json", cacheFixture)

	targets, err := ReadCache(file, SourceFilter{SourceDir: "src", SkipDirs: []string{"src/test", "test"}})
	require.NoError(t, err)
	assert.Equal(t, []gen.Target{
		{Name: "IVault", Source: "src/Vault.sol"},
		{Name: "Vault", Source: "src/Vault.sol"},
		{Name: "Token", Source: "src/tokens/Token.sol"},
	}, targets)
}

func TestReadCache_NoFilter(t *testing.T) {
	file := writeFile(t, t.TempDir(), "cache.json", cacheFixture)
	targets, err := ReadCache(file, SourceFilter{})
	require.NoError(t, err)
	assert.Len(t, targets, 8)
}

func TestReadCache_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadCache(filepath.Join(dir, "missing.json"), SourceFilter{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.json", "{not json")
	_, err = ReadCache(bad, SourceFilter{})
	assert.Error(t, err)
}

func TestSourceFilter_Keep(t *testing.T) {
	f := SourceFilter{SourceDir: "src/", SkipDirs: []string{"src/test"}}
	assert.True(t, f.Keep("src/A.sol"))
	assert.True(t, f.Keep("src/nested/B.sol"))
	assert.False(t, f.Keep("src/test/A.t.sol"))
	assert.False(t, f.Keep("srcx/A.sol"))
	assert.False(t, f.Keep("lib/x/src/A.sol"))
}
