package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"polygon-renderer/internal/mathutil"
	"polygon-renderer/internal/raster"
)

// jsonScene matches the scene file schema.
type jsonScene struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background string      `json:"background"`
	Output     string      `json:"output"`
	Shapes     []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Name    string      `json:"name"`
	Points  [][]float64 `json:"points"` // [x, y] or [x, y, z]
	Fill    string      `json:"fill"`
	Outline string      `json:"outline"`
}

// Parse reads a JSON scene file. A missing width or height is left zero
// for the caller to fill in with DefaultSize. Shapes with fewer than three points are
// kept; they are reported when the scene is rendered.
func Parse(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	sc, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

// Decode parses scene JSON.
func Decode(raw []byte) (*Scene, error) {
	var js jsonScene
	if err := json.Unmarshal(raw, &js); err != nil {
		return nil, err
	}
	if js.Width < 0 || js.Height < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", js.Width, js.Height)
	}

	sc := &Scene{
		Name:   js.Name,
		Width:  js.Width,
		Height: js.Height,
		Output: js.Output,
	}
	if js.Background != "" {
		bg, err := ParseColor(js.Background)
		if err != nil {
			return nil, err
		}
		sc.Background = bg
	}

	for i, s := range js.Shapes {
		shape := raster.Shape{Name: s.Name}
		if shape.Name == "" {
			shape.Name = fmt.Sprintf("shape%d", i)
		}
		for j, p := range s.Points {
			if len(p) < 2 || len(p) > 3 {
				return nil, fmt.Errorf("shape %d point %d: want 2 or 3 coordinates, got %d", i, j, len(p))
			}
			v := mathutil.NewVertex(p[0], p[1], 0)
			if len(p) == 3 {
				v.Z = p[2]
			}
			shape.Vertices = append(shape.Vertices, v)
		}
		var err error
		if shape.Fill, err = optColor(s.Fill); err != nil {
			return nil, fmt.Errorf("shape %d fill: %w", i, err)
		}
		if shape.Outline, err = optColor(s.Outline); err != nil {
			return nil, fmt.Errorf("shape %d outline: %w", i, err)
		}
		sc.Shapes = append(sc.Shapes, shape)
	}
	return sc, nil
}

func optColor(s string) (*raster.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseColor(s string) (raster.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		hex = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("scene: parse color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("scene: parse color %q", s)
	}
	return raster.Color(v), nil
}
