package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "色名,系統色名,マンセル値,RGB,説明\n" +
	"紅,あざやかな赤,3R 4/14,#D7003A,紅花で染めた色。古くから使われた。\n" +
	"藍,暗い青,2PB 3/5,,藍で染めた色。\n" +
	"山吹,あざやかな赤みの黄,10YR 7.5/13,248 169 0,山吹の花の色。\n"

// withCatalog runs the command from an empty directory with IROQUIZ_SOURCES
// pointing at a small CSV file.
func withCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "colors.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	t.Setenv("IROQUIZ_SOURCES", path)
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	err := Execute(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "iroquiz (devel)\n", out)
}

func TestCatalogList(t *testing.T) {
	path := withCatalog(t)

	out, err := execute(t, "", "catalog", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "紅")
	assert.Contains(t, out, "#D7003A")
	assert.Contains(t, out, "#F8A900")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "source       "+path)
	assert.Contains(t, out, "records      3")
}

func TestCatalogShow(t *testing.T) {
	path := withCatalog(t)

	out, err := execute(t, "", "catalog", "show", "紅")
	require.NoError(t, err)
	assert.Contains(t, out, "あざやかな赤")
	assert.Contains(t, out, "3R 4/14")
	assert.Contains(t, out, "1. 紅花で染めた色。")
	assert.Contains(t, out, "2. 古くから使われた。")
	assert.Contains(t, out, "from "+path)
}

func TestCatalogShow_NotFound(t *testing.T) {
	withCatalog(t)

	_, err := execute(t, "", "catalog", "show", "鴇")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCatalog_LoadError(t *testing.T) {
	withCatalog(t)
	t.Setenv("IROQUIZ_SOURCES", filepath.Join(t.TempDir(), "missing.csv"))

	_, err := execute(t, "", "catalog", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data load error")
}

func TestPlayPlain(t *testing.T) {
	withCatalog(t)

	out, err := execute(t, "\nq\n", "play", "--plain", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Q1")
	assert.Contains(t, out, "Choose one of the options first.")
	assert.Contains(t, out, "Questions: 0")
}
