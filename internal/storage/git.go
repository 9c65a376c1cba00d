package storage

import (
	"os"
	"os/exec"
	"strings"

	"github.com/lunit-heesungyang/palette-manager/internal/logging"
)

// StagePaletteFiles stages palette.yaml and every folder file for git commit.
func (s *Storage) StagePaletteFiles() {
	paths := []string{s.PalettePath()}
	entries, _ := os.ReadDir(s.FoldersDir())
	for _, e := range entries {
		if !e.IsDir() {
			paths = append(paths, s.FolderPath(strings.TrimSuffix(e.Name(), ".md")))
		}
	}
	s.gitAdd(paths...)
}

func (s *Storage) stage(paths ...string) {
	if s.AutoStage {
		s.gitAdd(paths...)
	}
}

func (s *Storage) stageRemoval(path string) {
	if !s.AutoStage {
		return
	}
	cmd := exec.Command("git", "rm", "--cached", "--quiet", "--ignore-unmatch", path)
	cmd.Dir = s.ProjectRoot
	_ = cmd.Run() // Ignore errors
}

// gitAdd stages files to git. Silently fails if not a git repo.
func (s *Storage) gitAdd(paths ...string) {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}

	if len(existing) == 0 {
		return
	}

	args := append([]string{"add"}, existing...)
	cmd := exec.Command("git", args...)
	cmd.Dir = s.ProjectRoot
	if err := cmd.Run(); err != nil {
		logging.Debug(subsystem, "git add skipped: %v", err)
	}
}

// HasStagedChanges checks if there are staged changes to commit
func (s *Storage) HasStagedChanges() bool {
	cmd := exec.Command("git", "diff", "--cached", "--stat", "--", s.PaletteDir)
	cmd.Dir = s.ProjectRoot
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) != ""
}

// IsGitRepo checks if the project root is a git repository
func (s *Storage) IsGitRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = s.ProjectRoot
	return cmd.Run() == nil
}
