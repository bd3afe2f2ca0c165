package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.tmx
var LevelsFS embed.FS

// ErrLevelNotFound is returned when a level file does not exist.
var ErrLevelNotFound = errors.New("levels: level not found")

const (
	levelPrefix = "lvl_"
	levelExt    = ".tmx"
)

// FirstLevel is where a new game starts.
const FirstLevel = "lvl_1.tmx"

// LevelNumber extracts N from a lvl_N.tmx name.
func LevelNumber(name string) (int, bool) {
	s, ok := strings.CutPrefix(name, levelPrefix)
	if !ok {
		return 0, false
	}
	s, ok = strings.CutSuffix(s, levelExt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextLevelName returns lvl_{N+1}.tmx for lvl_N.tmx.
func NextLevelName(name string) (string, error) {
	n, ok := LevelNumber(name)
	if !ok {
		return "", fmt.Errorf("levels: %q is not a numbered level", name)
	}
	return fmt.Sprintf("%s%d%s", levelPrefix, n+1, levelExt), nil
}

// Names lists the numbered levels in fsys in play order.
func Names(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, levelPrefix+"*"+levelExt)
	if err != nil {
		return nil, fmt.Errorf("levels: glob: %w", err)
	}
	names := matches[:0]
	for _, m := range matches {
		if _, ok := LevelNumber(m); ok {
			names = append(names, m)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, _ := LevelNumber(names[i])
		b, _ := LevelNumber(names[j])
		return a < b
	})
	return names, nil
}

// Exists reports whether a level file is present in fsys.
func Exists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}
