package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/palette-manager/internal/config"
)

// newProject returns a project dir with git staging off and an isolated home
func newProject(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	cfg := config.Default()
	cfg.AutoStage = false
	require.NoError(t, config.Save(dir, cfg))
	return dir
}

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "pal", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	found := make(map[string]bool)
	for _, c := range cmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"convert", "info", "similar", "list", "add", "fav", "folder", "export", "import", "share", "status"} {
		assert.True(t, found[name], "missing subcommand %s", name)
	}
}

func TestConvertCmd(t *testing.T) {
	dir := newProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hex to rgb", []string{"#1F91DC", "--to", "rgb"}, "rgb(31, 145, 220)\n"},
		{"rgb to hex", []string{"rgb(31, 145, 220)"}, "#1F91DC\n"},
		{"short hex", []string{"#fff", "--to", "hsl"}, "hsl(0, 0%, 100%)\n"},
		{"explicit source", []string{"hsv(0, 100%, 100%)", "--from", "hsv"}, "#FF0000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, dir, append([]string{"convert"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCmd_All(t *testing.T) {
	out, err := execute(t, newProject(t), "convert", "#1F91DC", "--to", "all")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, out, "rgba(31, 145, 220, 1)")
}

func TestConvertCmd_Errors(t *testing.T) {
	dir := newProject(t)

	_, err := execute(t, dir, "convert", "not-a-color")
	assert.ErrorContains(t, err, "invalid color")

	_, err = execute(t, dir, "convert", "#FFFFFF", "--to", "cmyk")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, dir, "convert", "rgb(300, 0, 0)", "--from", "rgb")
	assert.ErrorContains(t, err, "invalid color")
}

func TestInfoCmd(t *testing.T) {
	out, err := execute(t, newProject(t), "info", "#000")
	require.NoError(t, err)
	assert.Contains(t, out, "#000000")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "#FFFFFF", "contrast color for black")
}

func TestSimilarCmd_SeedIsReproducible(t *testing.T) {
	dir := newProject(t)

	first, err := execute(t, dir, "similar", "#1F91DC", "-n", "4", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, dir, "similar", "#1F91DC", "-n", "4", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	assert.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 4)
}

func TestSimilarCmd_RejectsHugeCount(t *testing.T) {
	_, err := execute(t, newProject(t), "similar", "#1F91DC", "-n", "2000000000")
	assert.ErrorContains(t, err, "count must be at most 100")
}

func TestAddListAndFav(t *testing.T) {
	dir := newProject(t)

	out, err := execute(t, dir, "add", "Sky", "rgb(135, 206, 235)", "--tag", "blue", "--tag", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "Added sky (#87CEEB, cool)")

	out, err = execute(t, dir, "list", "--filter", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "#87CEEB")
	assert.Equal(t, 1, strings.Count(out, "\n"))

	out, err = execute(t, dir, "list", "--filter", "sky", "--format", "rgb")
	require.NoError(t, err)
	assert.Contains(t, out, "rgb(135, 206, 235)")

	out, err = execute(t, dir, "fav", "sky")
	require.NoError(t, err)
	assert.Equal(t, "sky added to favorites\n", out)

	out, err = execute(t, dir, "list", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "sky")
	assert.Equal(t, 1, strings.Count(out, "\n"))

	_, err = execute(t, dir, "fav", "missing")
	assert.Error(t, err)
}

func TestListCmd_Errors(t *testing.T) {
	dir := newProject(t)

	_, err := execute(t, dir, "list", "--sort", "hue")
	assert.ErrorContains(t, err, "unknown sort field")

	_, err = execute(t, dir, "list", "--temp", "hot")
	assert.ErrorContains(t, err, "unknown temperature")

	_, err = execute(t, dir, "list", "--folder", "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestFolderCommands(t *testing.T) {
	dir := newProject(t)

	out, err := execute(t, dir, "folder", "create", "Blues", "-d", "ocean tones")
	require.NoError(t, err)
	assert.Contains(t, out, "Created folder Blues (blues)")
	_, err = execute(t, dir, "folder", "create", "Yellows")
	require.NoError(t, err)

	out, err = execute(t, dir, "folder", "add", "Blues", "zzh-blue")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 1 color(s) to Blues")

	out, err = execute(t, dir, "folder", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "blues")
	assert.Contains(t, out, "1 colors")

	out, err = execute(t, dir, "folder", "list", "blues")
	require.NoError(t, err)
	assert.Contains(t, out, "ocean tones")
	assert.Contains(t, out, "zzh-blue")

	_, err = execute(t, dir, "folder", "move", "zzh-blue", "blues", "yellows")
	require.NoError(t, err)
	out, err = execute(t, dir, "list", "--folder", "yellows")
	require.NoError(t, err)
	assert.Contains(t, out, "zzh-blue")

	_, err = execute(t, dir, "folder", "remove", "yellows", "zzh-blue")
	require.NoError(t, err)
	out, err = execute(t, dir, "list", "--folder", "yellows")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = execute(t, dir, "folder", "delete", "blues")
	require.NoError(t, err)
	_, err = execute(t, dir, "folder", "list", "blues")
	assert.ErrorContains(t, err, "folder not found")
}

func TestShareAndOpen(t *testing.T) {
	src := newProject(t)
	_, err := execute(t, src, "add", "Sky", "#87CEEB")
	require.NoError(t, err)
	_, err = execute(t, src, "folder", "create", "Blues")
	require.NoError(t, err)
	_, err = execute(t, src, "folder", "add", "blues", "sky", "zzh-blue")
	require.NoError(t, err)

	out, err := execute(t, src, "share", "blues")
	require.NoError(t, err)
	link := strings.TrimSpace(out)
	assert.Contains(t, link, "shared=")

	dst := newProject(t)
	out, err = execute(t, dst, "share", "open", link, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Blues: 2 colors")

	out, err = execute(t, dst, "share", "open", link)
	require.NoError(t, err)
	assert.Contains(t, out, "1 new colors, 1 already in palette")

	out, err = execute(t, dst, "share", "open", link)
	require.NoError(t, err)
	assert.Contains(t, out, `imported as "Blues (1)"`)

	_, err = execute(t, dst, "share", "open", "garbage")
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	src := newProject(t)
	_, err := execute(t, src, "add", "Sky", "#87CEEB")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "palette.csv")
	_, err = execute(t, src, "export", "--format", "csv", "-o", file)
	require.NoError(t, err)

	out, err := execute(t, newProject(t), "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 of 6 colors (5 already present)")

	out, err = execute(t, src, "export", "--format", "css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {"))
	assert.Contains(t, out, "--color-sky: #87CEEB;")

	_, err = execute(t, src, "export", "--format", "pdf")
	assert.Error(t, err)
}

func TestStatusCmd(t *testing.T) {
	dir := newProject(t)
	_, err := execute(t, dir, "fav", "zzh-blue")
	require.NoError(t, err)
	_, err = execute(t, dir, "folder", "create", "Blues")
	require.NoError(t, err)

	out, err := execute(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Colors:    5 (1 favorites)")
	assert.Contains(t, out, "Folders:   1 (5 colors unassigned)")
	assert.Contains(t, out, "Git:       not a repository")
}
