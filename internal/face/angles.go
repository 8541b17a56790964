package face

import "time"

// Angles holds the three hand angles in degrees. 0 points at 12 o'clock
// and angles increase clockwise, so 90 is 3 o'clock.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AnglesAt derives the hand angles from the wall-clock time t. When the
// tick interval is one second or longer the sub-second term is dropped;
// the coarser stepping is invisible at that cadence, and keeping it would
// make two frames a second apart differ in the minute hand too.
func AnglesAt(t time.Time, tick time.Duration) Angles {
	sec := float64(t.Second())
	if tick < time.Second {
		sec += float64(t.Nanosecond()) / float64(time.Second)
	}
	min := float64(t.Minute())
	hour := float64(t.Hour() % 12)

	return Angles{
		Second: sec / 60 * 360,
		Minute: (min + sec/60) / 60 * 360,
		Hour:   (hour + min/60) / 12 * 360,
	}
}
