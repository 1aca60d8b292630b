// Package assets loads the game's sprites.
//
// Each sprite is a small YAML file named after its logical name:
//
//	color: bright-green
//	rows:
//	  - " ████ "
//
// Rows must share the same rune width; spaces are transparent. The default
// sprites are embedded in the binary, and a directory with the same file
// names can replace them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Logical sprite names.
const (
	NameBackground   = "background"
	NameObstacleEnd  = "obstacle-end"
	NameObstacleBody = "obstacle-body"
	NameCreatureUp   = "creature-up"
	NameCreatureDown = "creature-down"
)

// Names lists every sprite the game needs, in load order.
var Names = []string{
	NameBackground,
	NameObstacleEnd,
	NameObstacleBody,
	NameCreatureUp,
	NameCreatureDown,
}

// ErrCorrupt is wrapped by every error caused by a sprite file's content.
var ErrCorrupt = errors.New("corrupt sprite")

//go:embed sprites/*.yaml
var embedded embed.FS

// Embedded returns the built-in sprites.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded sprites: %v", err))
	}
	return sub
}

// Open returns the sprite source for dir, or the built-in sprites when dir
// is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// Set holds the decoded sprites.
type Set struct {
	Background   *core.Image
	ObstacleEnd  *core.Image
	ObstacleBody *core.Image
	CreatureUp   *core.Image
	CreatureDown *core.Image
}

// Get returns a sprite by logical name, or nil for unknown names.
func (s Set) Get(name string) *core.Image {
	switch name {
	case NameBackground:
		return s.Background
	case NameObstacleEnd:
		return s.ObstacleEnd
	case NameObstacleBody:
		return s.ObstacleBody
	case NameCreatureUp:
		return s.CreatureUp
	case NameCreatureDown:
		return s.CreatureDown
	default:
		return nil
	}
}

// Dimensions are the sprite sizes the simulation was configured for.
// The background may be any size; it is tiled.
type Dimensions struct {
	CreatureW, CreatureH int
	ObstacleW, PieceH    int
}

// DimensionsFor derives the expected sprite sizes from the game config.
func DimensionsFor(cfg config.DragonConfig) Dimensions {
	return Dimensions{
		CreatureW: cfg.Creature.Width,
		CreatureH: cfg.Creature.Height,
		ObstacleW: cfg.Obstacles.Width,
		PieceH:    cfg.Obstacles.PieceHeight,
	}
}

// Load reads and decodes every sprite from fsys and checks it against dims.
// Any failure is fatal for the game, so the first error is returned.
func Load(fsys fs.FS, dims Dimensions) (Set, error) {
	var set Set
	for _, name := range Names {
		img, err := loadOne(fsys, name)
		if err != nil {
			return Set{}, err
		}

		switch name {
		case NameBackground:
			set.Background = img
		case NameObstacleEnd:
			set.ObstacleEnd = img
		case NameObstacleBody:
			set.ObstacleBody = img
		case NameCreatureUp:
			set.CreatureUp = img
		case NameCreatureDown:
			set.CreatureDown = img
		}

		if err := checkSize(name, img, dims); err != nil {
			return Set{}, err
		}
	}
	return set, nil
}

func loadOne(fsys fs.FS, name string) (*core.Image, error) {
	file := name + ".yaml"
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", file, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", file, err)
	}
	return img, nil
}

func checkSize(name string, img *core.Image, dims Dimensions) error {
	var w, h int
	switch name {
	case NameCreatureUp, NameCreatureDown:
		w, h = dims.CreatureW, dims.CreatureH
	case NameObstacleEnd, NameObstacleBody:
		w, h = dims.ObstacleW, dims.PieceH
	default:
		return nil
	}
	if img.Width() != w || img.Height() != h {
		return fmt.Errorf("assets: %s is %dx%d, config expects %dx%d: %w",
			name, img.Width(), img.Height(), w, h, ErrCorrupt)
	}
	return nil
}

// spriteFile is the on-disk sprite format.
type spriteFile struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Decode parses a sprite file into an image.
func Decode(data []byte) (*core.Image, error) {
	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(sf.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrCorrupt)
	}

	color, err := core.ParseColor(sf.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	width := utf8.RuneCountInString(sf.Rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrCorrupt)
	}

	img := core.NewImage(width, len(sf.Rows))
	for y, row := range sf.Rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d is %d wide, expected %d", ErrCorrupt, y, n, width)
		}
		x := 0
		for _, r := range row {
			if r != ' ' {
				img.Set(x, y, core.Cell{Rune: r, Color: color})
			}
			x++
		}
	}
	return img, nil
}
