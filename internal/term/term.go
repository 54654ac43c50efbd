// Package term draws a game in a terminal with tcell. Each cell takes two
// columns so the board looks square.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"gridgames/internal/control"
	"gridgames/pkg/core"
	"gridgames/pkg/game"
)

// DefaultRefresh is the redraw period.
const DefaultRefresh = 33 * time.Millisecond

// Frontend renders snapshots of a game and feeds key presses back to it.
type Frontend struct {
	screen  tcell.Screen
	game    *game.Game
	log     *slog.Logger
	refresh time.Duration
	status  string
	brush   control.Brush
}

// New binds screen to g. The screen must already be initialized.
func New(screen tcell.Screen, g *game.Game, log *slog.Logger) *Frontend {
	if log == nil {
		log = slog.Default()
	}
	return &Frontend{screen: screen, game: g, log: log, refresh: DefaultRefresh}
}

// Run redraws until ctx is done or the quit key is pressed.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(f.refresh)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			done, err := f.Handle(ev)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			f.Draw()
		case <-ticker.C:
			f.Draw()
		}
	}
}

// Handle applies a single event. It reports true when the user asked to quit.
func (f *Frontend) Handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		err := control.Apply(f.game, actionFor(ev))
		switch {
		case errors.Is(err, control.ErrQuit):
			return true, nil
		case errors.Is(err, core.ErrClosed):
			return true, err
		case err != nil:
			f.status = err.Error()
			f.log.Debug("key rejected", "key", ev.Name(), "err", err)
		default:
			f.status = ""
		}
	case *tcell.EventMouse:
		f.mouse(ev)
	}
	return false, nil
}

// mouse paints with the left button. Terminals report a held button as a
// stream of Button1 events, so only the first one after a release is a press.
func (f *Frontend) mouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		f.brush.Release()
		return
	}
	x, y := ev.Position()
	col, row := x/2, y
	if size := f.game.Config().BoardSize; col >= size || row >= size {
		return
	}
	var err error
	if f.brush.Held() {
		err = f.brush.Drag(f.game, col, row)
	} else {
		err = f.brush.Press(f.game, col, row)
	}
	if err != nil && !errors.Is(err, core.ErrUnsupported) {
		f.status = err.Error()
	}
}

func actionFor(ev *tcell.EventKey) control.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return control.Quit
	case tcell.KeyEnter:
		return control.Resume
	case tcell.KeyRune:
		return control.Runes[ev.Rune()]
	}
	return control.None
}

// Draw paints the latest snapshot and a status line below it.
func (f *Frontend) Draw() {
	frame := f.game.Snapshot()
	f.screen.Clear()
	styles := make([]tcell.Style, len(frame.Palette))
	for i, c := range frame.Palette {
		styles[i] = tcell.StyleDefault.Background(toTcell(c))
	}
	last := len(styles) - 1
	w := frame.Size.W
	for i, v := range frame.Cells {
		idx := int(v)
		if idx > last {
			idx = last
		}
		if idx < 0 {
			continue
		}
		col, row := i%w, i/w
		f.screen.SetContent(col*2, row, ' ', nil, styles[idx])
		f.screen.SetContent(col*2+1, row, ' ', nil, styles[idx])
	}
	f.drawText(0, frame.Size.H, f.statusLine(frame))
	if f.status != "" {
		f.drawText(0, frame.Size.H+1, f.status)
	}
	f.screen.Show()
}

func (f *Frontend) statusLine(frame game.Frame) string {
	state := "paused"
	if frame.Running {
		state = "running"
	}
	parts := []string{
		f.game.Variant(),
		fmt.Sprintf("%dx%d", frame.Size.W, frame.Size.H),
		fmt.Sprintf("iter %d", frame.Iteration),
		state,
	}
	if n, err := f.game.LivingCells(); err == nil {
		parts = append(parts, fmt.Sprintf("living %d", n))
	}
	if err := f.game.Err(); err != nil {
		parts = append(parts, "halted: "+err.Error())
	}
	return strings.Join(parts, " | ")
}

func (f *Frontend) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range s {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
