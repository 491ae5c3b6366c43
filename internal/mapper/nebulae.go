package mapper

import (
	"planets-generator/internal/genconfig"
)

// Palette is one nebula kind and the colours it may take.
type Palette struct {
	Kind   string   `json:"kind"`
	Colors []string `json:"colors"`
}

type NebulaParams struct {
	Enabled     bool       `json:"enabled"`
	CountLambda float64    `json:"count_lambda"`
	MaxCount    int        `json:"max_count"`
	RadiusLY    FloatRange `json:"radius_ly"`
	DistanceLY  FloatRange `json:"distance_ly"`
	Brightness  FloatRange `json:"brightness"`
	Opacity     FloatRange `json:"opacity"`
	Palettes    []Palette  `json:"palettes"`
}

var nebulaPalettes = []Palette{
	{Kind: string(genconfig.NebulaEmission), Colors: []string{"#ff4f6d", "#ff7b9c", "#d94cff"}},
	{Kind: string(genconfig.NebulaReflection), Colors: []string{"#6fa8ff", "#8fd3ff", "#b6c8ff"}},
	{Kind: string(genconfig.NebulaDark), Colors: []string{"#3b2f2f", "#4a3b36", "#2a2320"}},
}

func MapNebulae(n genconfig.NebulaSettings) NebulaParams {
	p := NebulaParams{
		Enabled:     n.EnableNebulae,
		CountLambda: lerp(0.3, 4, n.NebulaDensity),
		MaxCount:    8,
		RadiusLY:    FloatRange{Min: lerp(0.5, 4, n.NebulaSize), Max: lerp(2, 20, n.NebulaSize)},
		DistanceLY:  FloatRange{Min: 2, Max: 60},
		Brightness:  FloatRange{Min: lerp(0.1, 0.5, n.NebulaBrightness), Max: lerp(0.3, 1, n.NebulaBrightness)},
		Opacity:     FloatRange{Min: lerp(0.1, 0.4, n.NebulaDensity), Max: lerp(0.3, 0.9, n.NebulaDensity)},
		Palettes:    nebulaPalettes,
	}

	for _, palette := range nebulaPalettes {
		if palette.Kind == string(n.NebulaPalette) {
			p.Palettes = []Palette{palette}
		}
	}
	return p
}
