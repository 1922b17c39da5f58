package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/justlaunchdoom/jld/internal/launch"
	"github.com/spf13/afero"
)

// ProgressCallback is called to report progress during scanning
// current: number of directories processed so far
// total: total number of directories to process
// message: status message (e.g., directory name being processed)
type ProgressCallback func(current, total int, message string)

// PwadFile is a loadable file found in one of the pwad directories
type PwadFile struct {
	Path      string `json:"path"`
	Selected  bool   `json:"selected"`
	TxtPath   string `json:"txt_path,omitempty"` // companion readme, empty if none
	Directory string `json:"directory"`
}

// ListPwadFiles returns the loadable files directly inside dir, sorted by
// name. Hidden files and subdirectories are skipped.
func ListPwadFiles(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !launch.IsLoadable(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// CompanionText returns the .txt file next to path with the same base name,
// or "" if there is none.
func CompanionText(fs afero.Fs, path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	txt := filepath.Join(filepath.Dir(path), stem+".txt")
	if txt == path {
		return ""
	}
	ok, err := afero.Exists(fs, txt)
	if err != nil || !ok {
		return ""
	}
	return txt
}

// ScanDirectories lists the loadable files of every directory in dirs, in
// directory order, marking the ones in selected. A directory that cannot be
// read is skipped; its error is joined into the returned error while the
// files from the other directories are still returned.
// If progressCallback is not nil, it will be called to report progress.
func ScanDirectories(fs afero.Fs, dirs, selected []string, progressCallback ProgressCallback) ([]PwadFile, error) {
	isSelected := make(map[string]bool, len(selected))
	for _, p := range selected {
		isSelected[p] = true
	}

	total := len(dirs)
	if progressCallback != nil {
		progressCallback(0, total, fmt.Sprintf("Found %d directories to scan", total))
	}

	var (
		files []PwadFile
		errs  []error
	)
	for i, dir := range dirs {
		if progressCallback != nil {
			progressCallback(i, total, fmt.Sprintf("Scanning: %s", dir))
		}

		paths, err := ListPwadFiles(fs, dir)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to scan %s: %w", dir, err))
			if progressCallback != nil {
				progressCallback(i+1, total, fmt.Sprintf("Completed: %s (error)", dir))
			}
			continue
		}

		for _, p := range paths {
			files = append(files, PwadFile{
				Path:      p,
				Selected:  isSelected[p],
				TxtPath:   CompanionText(fs, p),
				Directory: dir,
			})
		}

		if progressCallback != nil {
			progressCallback(i+1, total, fmt.Sprintf("Completed: %s (%d files)", dir, len(paths)))
		}
	}

	return files, errors.Join(errs...)
}

// Selection returns the selected paths that the scan found, keeping the
// order of selected. Selections whose file has gone away are dropped.
func Selection(files []PwadFile, selected []string) []string {
	found := make(map[string]bool, len(files))
	for _, f := range files {
		found[f.Path] = true
	}

	out := make([]string, 0, len(selected))
	for _, p := range selected {
		if found[p] && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// Paths returns the path of every file
func Paths(files []PwadFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

// DirectoryGroup is the files found in one pwad directory
type DirectoryGroup struct {
	Directory string
	Files     []PwadFile
}

// GroupByDirectory groups files by the directory they were found in, in the
// order the directories were first seen.
func GroupByDirectory(files []PwadFile) []DirectoryGroup {
	var groups []DirectoryGroup
	index := make(map[string]int)
	for _, f := range files {
		i, ok := index[f.Directory]
		if !ok {
			i = len(groups)
			index[f.Directory] = i
			groups = append(groups, DirectoryGroup{Directory: f.Directory})
		}
		groups[i].Files = append(groups[i].Files, f)
	}
	return groups
}
