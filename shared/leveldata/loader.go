package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a TMX file into a Layout. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Object order inside each group is level order.
//
// Object groups:
//   - Platforms, Checkpoints: plain rectangles
//   - Collectibles: rectangles with an optional "type" property (default "health")
//   - PlayerSpawn: first object's position
//   - Level: first object's properties bossRoomX, respawnX, respawnY
func LoadTMX(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width: float64(levelMap.Width * levelMap.TileWidth),
	}

	spawnFound, levelFound := false, false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				layout.Platforms = append(layout.Platforms, objectRect(o))
			}
		case "Collectibles":
			for _, o := range og.Objects {
				kind := CollectibleKind(o.Properties.GetString("type"))
				if kind == "" {
					kind = CollectibleHealth
				}
				layout.Collectibles = append(layout.Collectibles, Collectible{Rect: objectRect(o), Kind: kind})
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				layout.Checkpoints = append(layout.Checkpoints, objectRect(o))
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.PlayerSpawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case "Level":
			if len(og.Objects) > 0 {
				props := og.Objects[0].Properties
				layout.BossRoomX = props.GetFloat("bossRoomX")
				layout.RespawnPoint = Point{
					X: props.GetFloat("respawnX"),
					Y: props.GetFloat("respawnY"),
				}
				levelFound = true
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w: missing PlayerSpawn object", tmxPath, ErrInvalidLevel)
	}
	if !levelFound {
		return nil, fmt.Errorf("%s: %w: missing Level object", tmxPath, ErrInvalidLevel)
	}
	return layout, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Layout, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func objectRect(o *tiled.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
