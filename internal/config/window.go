package config

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	MinWidth  = 400
	MinHeight = 300
	MaxSize   = 4096
)

// ValidateWindowSize reports whether a window size is within the supported
// range
func ValidateWindowSize(width, height int) bool {
	return width >= MinWidth && height >= MinHeight &&
		width <= MaxSize && height <= MaxSize
}

// ApplyWindowSizeDefaults replaces a width or height below the minimum with
// its default. Oversized values are kept; the window system clamps those.
func ApplyWindowSizeDefaults(width, height *int) {
	if *width < MinWidth {
		*width = DefaultWidth
	}
	if *height < MinHeight {
		*height = DefaultHeight
	}
}
