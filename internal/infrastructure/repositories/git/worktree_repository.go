package git

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bumpit/internal/domain/repositories"
)

// WorktreeRepository reads working-tree status with go-git.
type WorktreeRepository struct{}

var _ repositories.WorktreeRepository = (*WorktreeRepository)(nil)

// NewWorktreeRepository creates a go-git backed worktree inspector.
func NewWorktreeRepository() *WorktreeRepository {
	return &WorktreeRepository{}
}

// IsPristine opens the repository containing dir (searching parent
// directories for .git) and reports whether its status is clean. Untracked
// files count as changes unless git would ignore them, including through
// the user's and the system's excludes files. A directory outside any
// repository has no status to report and counts as pristine.
func (it *WorktreeRepository) IsPristine(_ context.Context, dir string) (bool, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logger.Warnf("%s is not inside a git repository, skipping the pristine check", dir)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}

	workTree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	excludes, err := loadExcludes()
	if err != nil {
		return false, err
	}
	workTree.Excludes = append(workTree.Excludes, excludes...)

	status, err := workTree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree status: %w", err)
	}

	if !status.IsClean() {
		logger.Debugf("Working tree changes:\n%s", status.String())
		return false, nil
	}
	return true, nil
}

// loadExcludes collects the ignore patterns git reads outside the
// repository: core.excludesfile from the global and system configs, or the
// XDG default ignore file when no global excludesfile is configured.
func loadExcludes() ([]gitignore.Pattern, error) {
	rootFS := osfs.New("/")

	global, err := gitignore.LoadGlobalPatterns(rootFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load global git excludes: %w", err)
	}
	if len(global) == 0 {
		if global, err = loadXDGPatterns(); err != nil {
			return nil, err
		}
	}

	system, err := gitignore.LoadSystemPatterns(rootFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load system git excludes: %w", err)
	}
	return append(global, system...), nil
}

// loadXDGPatterns reads $XDG_CONFIG_HOME/git/ignore, falling back to
// ~/.config/git/ignore. A missing file yields no patterns.
func loadXDGPatterns() ([]gitignore.Pattern, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil //nolint:nilerr // no home, no user excludes
		}
		configHome = filepath.Join(home, ".config")
	}

	path := filepath.Join(configHome, "git", "ignore")
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return patterns, nil
}
