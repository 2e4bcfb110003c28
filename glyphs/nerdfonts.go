package glyphs

// NerdFonts lists the icon collections patched into Nerd Fonts v3.
// Ranges do not overlap across sets.
var NerdFonts = MustTable(
	Set{Name: "Octicons", Ranges: []Range{
		{0xF400, 0xF533},
		{0x2665, 0x2665},
		{0x26A1, 0x26A1},
	}},
	Set{Name: "IEC Power Symbols", Ranges: []Range{
		{0x23FB, 0x23FE},
		{0x2B58, 0x2B58},
	}},
	Set{Name: "Pomicons", Ranges: []Range{
		{0xE000, 0xE00A},
	}},
	Set{Name: "Powerline Symbols", Ranges: []Range{
		{0xE0A0, 0xE0A2},
		{0xE0B0, 0xE0B3},
	}},
	Set{Name: "Powerline Extra Symbols", Ranges: []Range{
		{0xE0A3, 0xE0A3},
		{0xE0B4, 0xE0C8},
		{0xE0CA, 0xE0CA},
		{0xE0CC, 0xE0D7},
	}},
	Set{Name: "Font Awesome Extension", Ranges: []Range{
		{0xE200, 0xE2A9},
	}},
	Set{Name: "Weather Icons", Ranges: []Range{
		{0xE300, 0xE3E3},
	}},
	Set{Name: "Seti-UI + Custom", Ranges: []Range{
		{0xE5FA, 0xE6B5},
	}},
	Set{Name: "Devicons", Ranges: []Range{
		{0xE700, 0xE7C5},
	}},
	Set{Name: "Codicons", Ranges: []Range{
		{0xEA60, 0xEC1E},
	}},
	Set{Name: "Font Awesome", Ranges: []Range{
		{0xED00, 0xEFCE},
		{0xF000, 0xF2FF},
	}},
	Set{Name: "Font Logos/Font Linux", Ranges: []Range{
		{0xF300, 0xF372},
	}},
	Set{Name: "Material Design Icons", Ranges: []Range{
		{0xF0001, 0xF1AF0},
	}},
)
