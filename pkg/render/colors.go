package render

import "image/color"

var (
	White      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Yellow     = color.RGBA{0xff, 0xff, 0x00, 0xff}
	FieldGreen = color.RGBA{0x00, 0x99, 0x29, 0xff}

	DefaultHomeColor = color.RGBA{0xb8, 0x12, 0x33, 0xff}
	DefaultAwayColor = color.RGBA{0x29, 0x38, 0x61, 0xff}
)

// Colors holds the team colors used for end zones and play bars.
type Colors struct {
	Home color.RGBA
	Away color.RGBA
}

func DefaultColors() Colors {
	return Colors{
		Home: DefaultHomeColor,
		Away: DefaultAwayColor,
	}
}
