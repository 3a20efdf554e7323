package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/busterclone/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevel parses the embedded TMX level with the given stem name.
func LoadLevel(name string) (*leveldata.Layout, error) {
	layout, err := leveldata.LoadTMX(assetFS, fmt.Sprintf("%s/%s.tmx", levelsDir, name))
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", name, err)
	}
	return layout, nil
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	return names, err
}

// ResolveLevel loads an embedded level by name, or a TMX file from disk
// when arg ends in ".tmx".
func ResolveLevel(arg string) (*leveldata.Layout, error) {
	if !strings.HasSuffix(arg, ".tmx") {
		return LoadLevel(arg)
	}
	dir, file := filepath.Split(arg)
	if dir == "" {
		dir = "."
	}
	return leveldata.LoadTMX(os.DirFS(dir), file)
}
