// Package driver implements the render-await-dispatch loop of §4.7/§5:
// render a frame, capture the drawn-rects ledger, drain any pending
// events, then block on the input source and apply whatever it returns
// before rendering again. Grounded on the teacher's screen ownership and
// panic-safety conventions in cmd/thicc/micro.go.
package driver

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	goerrors "github.com/go-errors/errors"
	"github.com/mitchellh/go-homedir"

	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/component"
	"github.com/ellery/record/internal/record/config"
	"github.com/ellery/record/internal/record/input"
	"github.com/ellery/record/internal/record/surface"
)

// sizer is satisfied by input sources that know their terminal dimensions
// (both input.TerminalSource and input.TestingSource).
type sizer interface {
	Size() (int, int)
}

// screenFlusher is satisfied by input sources that can push a rendered
// Surface to a live screen (only input.TerminalSource, in practice; a
// Testing source has nowhere to flush to and the driver skips it).
type screenFlusher interface {
	Flush(s *surface.Surface)
}

// Driver owns one engine invocation end to end.
type Driver struct {
	State   *record.RecordState
	UI      *record.UiState
	Input   input.Source
	Reducer *record.Reducer
	Config  config.EngineConfig

	lastRect      record.Rect
	lastRectFound bool
	lastSurface   *surface.Surface
	logger        *log.Logger
}

// New wires a Driver around a validated RecordState and an input source.
func New(state *record.RecordState, src input.Source, cfg config.EngineConfig) *Driver {
	return &Driver{
		State:   state,
		UI:      record.NewUiState(),
		Input:   src,
		Reducer: record.NewReducer(),
		Config:  cfg,
		logger:  debugLogger(cfg),
	}
}

func debugLogger(cfg config.EngineConfig) *log.Logger {
	if !cfg.Debug {
		return log.New(os.Stderr, "", 0)
	}
	f, err := os.OpenFile("record-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(os.Stderr, "", 0)
	}
	return log.New(f, "record: ", log.LstdFlags)
}

// Run executes the driver loop until the user accepts or cancels,
// returning the (possibly mutated) RecordState on success, or a
// Cancelled-kind error. A deferred recover in Run tears the terminal
// down even if drawing panics and returns the panic as a Bug-kind error,
// mirroring
// cmd/thicc/micro.go's deferred recover() around screen.Fini().
func (d *Driver) Run() (state *record.RecordState, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.teardown()
			stack := goerrors.Wrap(r, 2).ErrorStack()
			d.logger.Printf("panic recovered: %v\n%s\n%s", r, stack, debug.Stack())
			err = record.ErrBugWith(fmt.Sprintf("panic: %v", r))
		}
	}()
	defer d.teardown()

	for {
		w, h := d.termSize()
		surf := d.render(w, h)
		d.captureSelectionRect(surf)

		if d.Config.Debug {
			d.renderDebugOverlay(surf)
		}
		if flusher, ok := d.Input.(screenFlusher); ok {
			flusher.Flush(surf)
		}
		if d.Config.DumpPath != "" {
			if werr := d.dumpState(); werr != nil {
				return nil, werr
			}
		}

		ev, pending := d.nextEvent()
		update := d.Reducer.Reduce(d.State, d.UI, ev, h, d.lastRect, d.lastRectFound)
		finished, result, rerr := d.apply(update)
		if finished {
			return result, rerr
		}
		_ = pending
	}
}

// nextEvent drains the pending FIFO before blocking on the input source,
// per §4.7's "pending events drained before new input".
func (d *Driver) nextEvent() (record.Event, bool) {
	if ev, ok := d.Reducer.Dequeue(); ok {
		return ev, true
	}
	events, err := d.Input.NextEvents()
	if err != nil || len(events) == 0 {
		return record.Event{Kind: record.EventNone}, false
	}
	for _, extra := range events[1:] {
		d.Reducer.Enqueue(extra)
	}
	return events[0], false
}

func (d *Driver) termSize() (int, int) {
	if sz, ok := d.Input.(sizer); ok {
		return sz.Size()
	}
	return 80, 24
}

func (d *Driver) render(w, h int) *surface.Surface {
	surf := surface.New(w, h)
	surf.SetScrollY(d.UI.ScrollOffsetY)
	app := component.AppView{State: d.State, UI: d.UI, Glyphs: component.Glyphs{UseUnicode: d.Config.UseUnicode}, Width: w, Height: h}
	surf.DrawComponent(0, 0, app)
	d.lastSurface = surf
	return surf
}

func (d *Driver) captureSelectionRect(surf *surface.Surface) {
	id := selectionComponentID(d.UI.SelectionKey)
	if id == "" {
		d.lastRectFound = false
		return
	}
	r, ok := surf.DrawnRectFor(id)
	d.lastRectFound = ok
	if ok {
		d.lastRect = record.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}
}

func selectionComponentID(k record.SelectionKey) string {
	if k.Kind == record.SelNone {
		return ""
	}
	return component.SelectableItemID(k).String()
}

// renderDebugOverlay superimposes the drawn-rects ledger on the frame
// just rendered into surf, before that frame is flushed (the SUPPLEMENTED
// FEATURES debug overlay). The frame itself is not rendered again.
func (d *Driver) renderDebugOverlay(surf *surface.Surface) {
	surf.DrawDebugOverlay()
}

func (d *Driver) teardown() {
	if closer, ok := d.Input.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (d *Driver) dumpPath() (string, error) {
	if d.Config.DumpPath != "~" {
		return d.Config.DumpPath, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", record.ErrWriteFileWith(err)
	}
	return home + "/.record-dump.json", nil
}

func (d *Driver) dumpState() error {
	path, err := d.dumpPath()
	if err != nil {
		return err
	}
	data, err := record.MarshalState(d.State)
	if err != nil {
		return record.ErrSerializeJsonWith(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return record.ErrWriteFileWith(err)
	}
	return nil
}
