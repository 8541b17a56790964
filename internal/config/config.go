package config

// Face geometry
const (
	// RadiusMargin divides the half-extent of the frame when sizing the
	// face, reserving a margin so the circle never touches the edge.
	RadiusMargin = 1.1

	// Hand lengths as fractions of the circle radius (0 hub, 1 rim)
	HourHandLength   = 0.5
	MinuteHandLength = 0.9
	SecondHandLength = 0.9

	// Rim tick lengths, anchored inward from the circumference
	HourTickLength   = 0.15
	MinuteTickLength = 0.05
)

// Aspect-ratio correction
// A terminal character cell is taller than wide, so the face is composed at
// width/AspectRatio and stretched back out horizontally. The ratio is
// adjustable at runtime within the bounds below; the bounds keep it away
// from values that would collapse the frame.
const (
	DefaultAspectRatio = 2.0
	MinAspectRatio     = 0.5
	MaxAspectRatio     = 8.0
	AspectRatioStep    = 0.1
)

// Appearance
const (
	// Minute ticks use a fixed neutral gray, independent of theme, so they
	// read as grid markers rather than part of the palette.
	MinuteTickR = 0x58
	MinuteTickG = 0x58
	MinuteTickB = 0x58
)
