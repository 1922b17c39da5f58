package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrNotInList is returned when selecting a path that was never added
	ErrNotInList = errors.New("path is not in the list")
	// ErrEmptyPath is returned when adding an empty path
	ErrEmptyPath = errors.New("path is empty")
	// ErrNoSelection is returned when an operation needs a selected entry
	ErrNoSelection = errors.New("nothing selected")
)

// AddExecutable adds an engine executable. The first one added is selected.
// Adding a path that is already listed is a no-op and returns false.
func (c *Config) AddExecutable(path string) (bool, error) {
	return addEntry(&c.DoomExecutables, &c.SelectedExecutable, path)
}

// RemoveExecutable removes an engine executable, clearing the selection if
// it pointed at it.
func (c *Config) RemoveExecutable(path string) bool {
	return removeEntry(&c.DoomExecutables, &c.SelectedExecutable, path)
}

// SelectExecutable makes path the engine to launch
func (c *Config) SelectExecutable(path string) error {
	return selectEntry(c.DoomExecutables, &c.SelectedExecutable, path)
}

// AddIWAD adds a game data file. The first one added is selected.
func (c *Config) AddIWAD(path string) (bool, error) {
	return addEntry(&c.IWADs, &c.SelectedIWAD, path)
}

// RemoveIWAD removes a game data file, clearing the selection if it pointed
// at it.
func (c *Config) RemoveIWAD(path string) bool {
	return removeEntry(&c.IWADs, &c.SelectedIWAD, path)
}

// SelectIWAD makes path the game data file to launch with
func (c *Config) SelectIWAD(path string) error {
	return selectEntry(c.IWADs, &c.SelectedIWAD, path)
}

// AddConfigFile adds an engine config file passed with -config
func (c *Config) AddConfigFile(path string) (bool, error) {
	return addEntry(&c.ConfigFiles, &c.SelectedConfig, path)
}

// RemoveConfigFile removes an engine config file
func (c *Config) RemoveConfigFile(path string) bool {
	return removeEntry(&c.ConfigFiles, &c.SelectedConfig, path)
}

// SelectConfigFile makes path the engine config to launch with. An empty
// path launches without -config.
func (c *Config) SelectConfigFile(path string) error {
	if path == "" {
		c.SelectedConfig = ""
		return nil
	}
	return selectEntry(c.ConfigFiles, &c.SelectedConfig, path)
}

// AddPwadDirectory adds a directory to scan for content files
func (c *Config) AddPwadDirectory(dir string) (bool, error) {
	if dir == "" {
		return false, ErrEmptyPath
	}
	if slices.Contains(c.PwadDirectories, dir) {
		return false, nil
	}
	c.PwadDirectories = append(c.PwadDirectories, dir)
	return true, nil
}

// RemovePwadDirectory stops scanning dir and drops selected files that were
// found directly in it.
func (c *Config) RemovePwadDirectory(dir string) bool {
	idx := slices.Index(c.PwadDirectories, dir)
	if idx < 0 {
		return false
	}
	c.PwadDirectories = slices.Delete(c.PwadDirectories, idx, idx+1)
	c.SelectedPwads = slices.DeleteFunc(c.SelectedPwads, func(p string) bool {
		return sameDir(filepath.Dir(p), dir)
	})
	return true
}

// SelectPwad marks a content file for launch. Files are passed to the engine
// in the order they were selected.
func (c *Config) SelectPwad(path string) bool {
	if path == "" || slices.Contains(c.SelectedPwads, path) {
		return false
	}
	c.SelectedPwads = append(c.SelectedPwads, path)
	return true
}

// DeselectPwad unmarks a content file
func (c *Config) DeselectPwad(path string) bool {
	idx := slices.Index(c.SelectedPwads, path)
	if idx < 0 {
		return false
	}
	c.SelectedPwads = slices.Delete(c.SelectedPwads, idx, idx+1)
	return true
}

// ClearPwadSelection unmarks every content file
func (c *Config) ClearPwadSelection() {
	c.SelectedPwads = []string{}
}

// SetCustomParams stores extra arguments appended to every launch
func (c *Config) SetCustomParams(params string) {
	c.CustomParams = strings.TrimSpace(params)
}

func addEntry(list *[]string, selected *string, path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	if slices.Contains(*list, path) {
		return false, nil
	}
	*list = append(*list, path)
	if *selected == "" {
		*selected = path
	}
	return true, nil
}

func removeEntry(list *[]string, selected *string, path string) bool {
	idx := slices.Index(*list, path)
	if idx < 0 {
		return false
	}
	*list = slices.Delete(*list, idx, idx+1)
	if *selected == path {
		*selected = ""
	}
	return true
}

func selectEntry(list []string, selected *string, path string) error {
	if !slices.Contains(list, path) {
		return fmt.Errorf("%w: %s", ErrNotInList, path)
	}
	*selected = path
	return nil
}

func sameDir(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
