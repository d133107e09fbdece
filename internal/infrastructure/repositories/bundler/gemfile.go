package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rios0rios0/bumpit/internal/domain/entities"
)

// dependencyPattern matches a Gemfile dependency declaration such as
// `gem "rails", "7.1.0", require: false` and captures the gem name.
var dependencyPattern = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"].*$`)

// PatchGemfile rewrites the version literal of every outdated gem in content.
// Only the first occurrence of the current version on a matching declaration
// line is replaced; every other line is kept byte for byte. The result is
// newline-terminated.
func PatchGemfile(content string, outdated entities.Outdated) string {
	if len(outdated) == 0 {
		return content
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for i, line := range lines {
		match := dependencyPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		dep, ok := outdated[match[1]]
		if !ok || dep.CurrentVersion == "" {
			continue
		}
		lines[i] = strings.Replace(line, dep.CurrentVersion, dep.LatestVersion, 1)
	}

	return strings.Join(lines, "\n") + "\n"
}

// writeFileAtomic replaces path with content through a rename so readers
// never observe a partially written manifest.
func writeFileAtomic(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmpFile.Name()

	if _, err = tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmpFile.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
