package diffview

// Style names one of the fixed rendering roles a cell can have. The mapping from Style
// to concrete colors lives in Formats; this package never interprets the directive
// strings.
type Style int

const (
	StyleText Style = iota
	StyleTitle
	StyleMargin
	StyleAdded
	StyleRemoved
	StyleRemovedMargin
	StyleAddedMargin
	StyleFiller
)

// Formats maps each Style to an ANSI SGR directive (the part between "\x1b[" and "m",
// ex: "30;48;5;224"). Styles absent from the map render with "0" (terminal defaults).
type Formats map[Style]string

// DefaultFormats returns a 256-color scheme: black-on-pink removals, black-on-green
// additions, grey margins and filler.
func DefaultFormats() Formats {
	return Formats{
		StyleText:          "0",
		StyleTitle:         "1;36",
		StyleMargin:        "38;5;245",
		StyleAdded:         "30;48;5;194",
		StyleRemoved:       "30;48;5;224",
		StyleRemovedMargin: "30;48;5;217",
		StyleAddedMargin:   "30;48;5;114",
		StyleFiller:        "48;5;253",
	}
}

// wrap styles text with the directive for style. The escape sequences are zero-width,
// so wrapping never changes a cell's display width.
func (f Formats) wrap(style Style, text string) string {
	directive, ok := f[style]
	if !ok || directive == "" {
		directive = "0"
	}
	return "\x1b[" + directive + "m" + text + "\x1b[0m"
}
