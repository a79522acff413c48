package assets

import (
	"embed"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/leveldata"
)

//go:embed levels/*.tmx
var assetFS embed.FS

// LoadLevels returns a level select entry for every embedded map
func LoadLevels() ([]components.LevelEntry, error) {
	infos, err := leveldata.LoadAllLevels(assetFS, cfg.LevelSelect.LevelsDir)
	if err != nil {
		return nil, err
	}

	levels := make([]components.LevelEntry, 0, len(infos))
	for _, info := range infos {
		levels = append(levels, components.LevelEntry{
			Map:    info.Map,
			Name:   info.Name,
			Accent: info.Accent,
		})
	}
	return levels, nil
}
