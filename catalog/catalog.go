// Package catalog loads piece definitions from YAML so games can ship their
// own shape sets. A default set equivalent to the standard tetrominoes is
// embedded in the binary.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/minofall/mino"
)

//go:embed pieces.yaml
var defaultYAML []byte

type pieceFile struct {
	Pieces []pieceEntry `yaml:"pieces"`
}

type pieceEntry struct {
	Name   string   `yaml:"name"`
	Colour string   `yaml:"colour"`
	Box    int      `yaml:"box"`
	Static bool     `yaml:"static"`
	Cells  [][2]int `yaml:"cells"` // [row, col] pairs
}

var colours = map[string]mino.Colour{
	"none":   mino.ColourNone,
	"cyan":   mino.ColourCyan,
	"yellow": mino.ColourYellow,
	"purple": mino.ColourPurple,
	"green":  mino.ColourGreen,
	"red":    mino.ColourRed,
	"blue":   mino.ColourBlue,
	"orange": mino.ColourOrange,
}

// Load reads piece definitions from YAML.
func Load(r io.Reader) ([]mino.PieceDef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}

	var file pieceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}
	if len(file.Pieces) == 0 {
		return nil, fmt.Errorf("catalog: no pieces defined")
	}

	defs := make([]mino.PieceDef, 0, len(file.Pieces))
	for _, entry := range file.Pieces {
		def, err := entry.toDef()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadFile reads piece definitions from a YAML file on disk.
func LoadFile(path string) ([]mino.PieceDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded standard piece set.
func Default() []mino.PieceDef {
	defs, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		// The embedded catalog ships with the binary; failing to parse
		// it is a build defect, not a runtime condition.
		panic(err)
	}
	return defs
}

func (e pieceEntry) toDef() (mino.PieceDef, error) {
	if e.Name == "" {
		return mino.PieceDef{}, fmt.Errorf("catalog: piece with empty name")
	}
	colour, ok := colours[e.Colour]
	if !ok {
		return mino.PieceDef{}, fmt.Errorf("catalog: piece %q: unknown colour %q", e.Name, e.Colour)
	}
	if len(e.Cells) == 0 {
		return mino.PieceDef{}, fmt.Errorf("catalog: piece %q: no cells", e.Name)
	}
	if !e.Static && e.Box <= 0 {
		return mino.PieceDef{}, fmt.Errorf("catalog: piece %q: bounding box %d", e.Name, e.Box)
	}

	cells := make([]mino.Point, len(e.Cells))
	for i, rc := range e.Cells {
		p := mino.Point{Row: rc[0], Col: rc[1]}
		if !e.Static && (p.Row < 0 || p.Row >= e.Box || p.Col < 0 || p.Col >= e.Box) {
			return mino.PieceDef{}, fmt.Errorf("catalog: piece %q: cell %+v outside %dx%d box",
				e.Name, p, e.Box, e.Box)
		}
		cells[i] = p
	}

	return mino.PieceDef{
		Name:   e.Name,
		Colour: colour,
		Box:    e.Box,
		Cells:  cells,
		Static: e.Static,
	}, nil
}
