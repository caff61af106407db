package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestWriteTree(t *testing.T) {
	root := WriteTree(t, map[string]string{
		"a/b/c.d.ts": "x",
		"top.d.ts":   "y",
	})

	data, err := os.ReadFile(filepath.Join(root, "a", "b", "c.d.ts"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	data, err = os.ReadFile(filepath.Join(root, "top.d.ts"))
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))
}

func TestSampleTree(t *testing.T) {
	root := SampleTree(t)
	for _, rel := range []string{"index.d.ts", "auth/auth-taxonomy.d.ts", "node_modules/pkg/pkg-taxonomy.d.ts"} {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, map[string]any{"user_id": 1})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded["user_id"])
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, map[string]any{"user_id": 1})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(1), decoded["user_id"])
}
