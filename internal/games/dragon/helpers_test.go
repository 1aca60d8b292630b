package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// solidImage returns a fully opaque w x h image.
func solidImage(w, h int) *core.Image {
	img := core.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, core.Cell{Rune: '#', Color: core.ColorGreen})
		}
	}
	return img
}

// solidArt builds a sprite set of opaque blocks sized for cfg.
func solidArt(cfg config.DragonConfig) assets.Set {
	return assets.Set{
		Background:   core.NewImage(1, 1),
		ObstacleEnd:  solidImage(cfg.Obstacles.Width, cfg.Obstacles.PieceHeight),
		ObstacleBody: solidImage(cfg.Obstacles.Width, cfg.Obstacles.PieceHeight),
		CreatureUp:   solidImage(cfg.Creature.Width, cfg.Creature.Height),
		CreatureDown: solidImage(cfg.Creature.Width, cfg.Creature.Height),
	}
}

func obstacleArt(set assets.Set) ObstacleArt {
	return ObstacleArt{End: set.ObstacleEnd, Body: set.ObstacleBody}
}

// pixelConfig mirrors a 568x512 pixel playfield with 32 pixel sprites.
func pixelConfig() config.DragonConfig {
	return config.DragonConfig{
		Timing: config.Timing{FPS: 60},
		World:  config.World{Width: 568, Height: 512},
		Creature: config.Creature{
			X:             50,
			Width:         32,
			Height:        32,
			UpSpeed:       0.2,
			DownSpeed:     0.18,
			ClimbDuration: 150,
			InitialClimb:  2,
			FlapPeriod:    500,
		},
		Obstacles: config.Obstacles{
			Width:         80,
			PieceHeight:   32,
			ScrollSpeed:   0.18,
			SpawnInterval: 3000,
		},
	}
}
