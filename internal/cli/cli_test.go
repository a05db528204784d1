package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/docfs/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against root with args and returns stdout
func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--root", root, "-v", "1"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func seedRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "a.txt"), []byte("hello"), 0o644))
	return root
}

func TestInfo_JSON(t *testing.T) {
	root := seedRoot(t)

	out, err := run(t, root, "info", "--json")
	require.NoError(t, err)

	var dto requests.RootDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	assert.Equal(t, "textdocument", dto.RootID)
	assert.Equal(t, "textdocument:", dto.DocumentID)
	assert.Equal(t, []string{"text/plain"}, dto.MimeTypes)
}

func TestLs(t *testing.T) {
	root := seedRoot(t)

	out, err := run(t, root, "ls", "textdocument:notes")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "5 B")
	assert.Contains(t, out, "textdocument:notes/a.txt")

	out, err = run(t, root, "ls", "--json")
	require.NoError(t, err)
	var dtos []requests.EntryDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "textdocument:notes", dtos[0].ID)
}

func TestLs_Errors(t *testing.T) {
	root := seedRoot(t)

	_, err := run(t, root, "ls", "textdocument:notes/a.txt")
	assert.Error(t, err)
	_, err = run(t, root, "ls", "--sort", "colour")
	assert.Error(t, err)
	_, err = run(t, root, "ls", "garbage")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	root := seedRoot(t)

	out, err := run(t, root, "resolve", filepath.Join(root, "notes", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "textdocument:notes/a.txt\n", out)

	out, err = run(t, root, "resolve", "textdocument:notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "notes")+"\n", out)
}

func TestCreateStatRm(t *testing.T) {
	root := seedRoot(t)

	out, err := run(t, root, "create", "textdocument:notes", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "textdocument:notes/b.txt\n", out)

	out, err = run(t, root, "create", "--dir", "textdocument:", "drafts")
	require.NoError(t, err)
	assert.Equal(t, "textdocument:drafts\n", out)
	assert.DirExists(t, filepath.Join(root, "drafts"))

	out, err = run(t, root, "stat", "textdocument:notes/b.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "supports-write|supports-delete")

	_, err = run(t, root, "rm", "textdocument:notes/b.txt")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(root, "notes", "b.txt"))

	_, err = run(t, root, "rm", "textdocument:drafts")
	assert.Error(t, err, "directories are not deletable")
}

func TestConfigLayering(t *testing.T) {
	root := seedRoot(t)
	cfgPath := filepath.Join(t.TempDir(), "docfs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("namespace: fromfile\ntitle: File Title\n"), 0o600))
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DOCFS_TITLE=Env Title\n"), 0o600))

	out, err := run(t, root, "--config", cfgPath, "--env-file", envPath, "info", "--json")
	require.NoError(t, err)

	var dto requests.RootDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	assert.Equal(t, "fromfile", dto.RootID)
	assert.Equal(t, "Env Title", dto.Title, "env overrides the config file")
}

func TestUnknownStorage(t *testing.T) {
	_, err := run(t, t.TempDir(), "--storage", "tape", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tape")
}
