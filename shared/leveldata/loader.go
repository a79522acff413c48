package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevelInfo parses a TMX file and returns its level select metadata. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevelInfo(fsys fs.FS, tmxPath string) (LevelInfo, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return LevelInfo{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	info := LevelInfo{
		Map:    stem,
		Accent: DefaultAccent,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if props := levelMap.Properties; props != nil {
		info.Name = props.GetString("name")
		info.Order = props.GetInt("order")
	}
	if info.Name == "" {
		info.Name = stem
	}
	if levelMap.BackgroundColor != nil {
		info.Accent = color.RGBAModel.Convert(levelMap.BackgroundColor).(color.RGBA)
	}
	return info, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// their metadata sorted by order, then by map name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]LevelInfo, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make([]LevelInfo, 0, len(matches))
	for _, p := range matches {
		info, err := LoadLevelInfo(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, info)
	}

	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].Map < levels[j].Map
	})
	return levels, nil
}
