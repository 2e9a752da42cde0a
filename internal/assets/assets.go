// Package assets loads the game's text sprites. The sprite files are embedded
// in the binary and parsed once at startup.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Sprite names, one file each under sprites/.
const (
	Background = "background"
	Bird1      = "bird1"
	Bird2      = "bird2"
	Pipe       = "pipe"
	Base       = "base"
	GameOver   = "gameover"
	Message    = "message"
)

var required = []string{Background, Bird1, Bird2, Pipe, Base, GameOver, Message}

// Set holds every sprite the renderer needs.
type Set struct {
	Background *Sprite
	Birds      [2]*Sprite // resting and flapping frames
	Pipe       *Sprite    // bottom piece, cap on the first row
	Base       *Sprite
	GameOver   *Sprite
	Message    *Sprite
}

// Load parses the embedded sprites.
func Load() (*Set, error) {
	return LoadFS(embedded)
}

// LoadFS parses sprites from sprites/<name>.txt in fsys. A missing or empty
// file is an error.
func LoadFS(fsys fs.FS) (*Set, error) {
	sprites := make(map[string]*Sprite, len(required))
	for _, name := range required {
		path := "sprites/" + name + ".txt"
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot load %s: %w", name, err)
		}
		s, err := Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("assets: cannot parse %s: %w", name, err)
		}
		sprites[name] = s
	}

	return &Set{
		Background: sprites[Background],
		Birds:      [2]*Sprite{sprites[Bird1], sprites[Bird2]},
		Pipe:       sprites[Pipe],
		Base:       sprites[Base],
		GameOver:   sprites[GameOver],
		Message:    sprites[Message],
	}, nil
}

// Sprite is a rectangular block of runes. Spaces are transparent.
type Sprite struct {
	rows [][]rune
	w, h int
}

// Parse builds a sprite from text. Trailing blank lines are dropped and
// shorter lines are padded with spaces.
func Parse(text string) (*Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, fmt.Errorf("empty sprite")
	}

	rows := make([][]rune, len(lines))
	w := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > w {
			w = len(rows[i])
		}
	}
	for i, r := range rows {
		for len(r) < w {
			r = append(r, ' ')
		}
		rows[i] = r
	}
	return &Sprite{rows: rows, w: w, h: len(rows)}, nil
}

// Width returns the sprite width in cells.
func (s *Sprite) Width() int {
	return s.w
}

// Height returns the sprite height in cells.
func (s *Sprite) Height() int {
	return s.h
}

// At returns the rune at (x, y), or a space outside the sprite.
func (s *Sprite) At(x, y int) rune {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return ' '
	}
	return s.rows[y][x]
}

// Row returns line y as a string.
func (s *Sprite) Row(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	return string(s.rows[y])
}

// FlipV returns a copy with the rows in reverse order.
func (s *Sprite) FlipV() *Sprite {
	rows := make([][]rune, s.h)
	for y := range s.rows {
		rows[s.h-1-y] = append([]rune(nil), s.rows[y]...)
	}
	return &Sprite{rows: rows, w: s.w, h: s.h}
}

// Scale returns a nearest-neighbour resample of the sprite to w×h cells.
// Non-positive dimensions are raised to 1.
func (s *Sprite) Scale(w, h int) *Sprite {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == s.w && h == s.h {
		return s
	}

	rows := make([][]rune, h)
	for y := 0; y < h; y++ {
		sy := y * s.h / h
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			row[x] = s.rows[sy][x*s.w/w]
		}
		rows[y] = row
	}
	return &Sprite{rows: rows, w: w, h: h}
}
