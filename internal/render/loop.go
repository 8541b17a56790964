package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/termtick/termtick/internal/config"
	"github.com/termtick/termtick/internal/face"
)

// Options configures the clock loop.
type Options struct {
	Palette      face.Palette
	Show         face.Options
	TickInterval time.Duration
	AspectRatio  float64
}

// Loop drives the clock: it alternates between waiting for terminal events
// and producing one frame per tick. All mutable state, the aspect ratio and
// the renderer's previous frame, is touched only by the loop goroutine.
type Loop struct {
	screen   tcell.Screen
	renderer *Renderer
	opts     Options
	ratio    float64

	// now is swapped out in tests to pin the rendered time.
	now func() time.Time
}

// NewLoop returns a loop rendering to screen. The screen must already be
// initialized; the caller keeps ownership and restores the terminal after
// Run returns.
func NewLoop(screen tcell.Screen, opts Options) *Loop {
	return &Loop{
		screen:   screen,
		renderer: NewRenderer(screen),
		opts:     opts,
		ratio:    opts.AspectRatio,
		now:      time.Now,
	}
}

// Run renders frames until a quit key arrives or rendering fails. Key
// events adjust the live aspect ratio and redraw immediately; resize events
// force a full repaint at the new dimensions. Frames are produced strictly
// sequentially, each diffed against exactly the frame rendered before it.
func (l *Loop) Run() error {
	ticker := time.NewTicker(l.opts.TickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				// Screen finalized, pump is done.
				return
			}
			events <- ev
		}
	}()

	if err := l.tick(); err != nil {
		return err
	}

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
				l.handleKey(ev)
				if err := l.tick(); err != nil {
					return err
				}
			case *tcell.EventResize:
				l.screen.Sync()
				l.renderer.Invalidate()
				if err := l.tick(); err != nil {
					return err
				}
			}

		case <-ticker.C:
			if err := l.tick(); err != nil {
				return err
			}
		}
	}
}

// tick produces and displays one frame: compose at the narrowed logical
// width, stretch out to the terminal width, then hand off to the diffing
// renderer.
func (l *Loop) tick() error {
	width, height := l.screen.Size()
	if width < 1 || height < 1 {
		return fmt.Errorf("terminal reports unusable size %dx%d", width, height)
	}

	logicalWidth, err := face.LogicalWidth(width, l.ratio)
	if err != nil {
		return err
	}

	a := face.AnglesAt(l.now(), l.opts.TickInterval)
	frame := face.Compose(logicalWidth, height, a, l.opts.Palette, l.opts.Show)
	frame = face.Stretch(frame, width)

	return l.renderer.Render(frame)
}

func (l *Loop) handleKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case '+', '=':
		// Narrower cell ratio, wider clock.
		l.ratio = clampRatio(l.ratio - config.AspectRatioStep)
	case '-':
		l.ratio = clampRatio(l.ratio + config.AspectRatioStep)
	case '0':
		l.ratio = clampRatio(l.opts.AspectRatio)
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}

// clampRatio keeps the aspect ratio inside its configured bounds so key
// repeats can never collapse or explode the frame.
func clampRatio(ratio float64) float64 {
	if ratio < config.MinAspectRatio {
		return config.MinAspectRatio
	}
	if ratio > config.MaxAspectRatio {
		return config.MaxAspectRatio
	}
	return ratio
}
