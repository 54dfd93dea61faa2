package scene

import "image/color"

// Colors shared by the screens
var (
	ColorSky    = color.RGBA{135, 196, 235, 255}
	ColorGround = color.RGBA{86, 160, 72, 255}
	ColorNet    = color.RGBA{240, 240, 240, 255}
	ColorBall   = color.RGBA{245, 130, 40, 255}
	ColorText   = color.RGBA{20, 20, 30, 255}
	ColorShade  = color.RGBA{0, 0, 0, 140}
)

var characterColors = map[string]color.RGBA{
	"maskdude":   {230, 200, 60, 255},
	"ninjafrog":  {80, 170, 90, 255},
	"pinkman":    {235, 120, 170, 255},
	"virtualguy": {90, 130, 220, 255},
}

// CharacterColor returns the placeholder body colour of a roster character
func CharacterColor(id string) color.RGBA {
	if c, ok := characterColors[id]; ok {
		return c
	}
	return color.RGBA{160, 160, 160, 255}
}
