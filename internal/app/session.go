package app

import (
	"github.com/dshills/xxcmd/internal/controller"
	"github.com/dshills/xxcmd/internal/input/mode"
	"github.com/dshills/xxcmd/internal/record"
	"github.com/dshills/xxcmd/internal/renderer"
	"github.com/dshills/xxcmd/internal/renderer/backend"
)

// RendererOptions maps the display settings onto the renderer.
func (app *Application) RendererOptions() renderer.Options {
	d := app.cfg.Display
	return renderer.Options{
		ShowLabels:         d.ShowLabels,
		AlignCommands:      d.AlignCommands,
		BracketLabels:      d.BracketLabels,
		BoldLabels:         d.BoldLabels,
		LabelPadding:       d.LabelPadding,
		ShowCommands:       d.ShowCommands,
		WholeLineSelection: d.WholeLineSelection,
		Border:             d.DrawWindowBorder,
		Footer:             d.DisplayHelpFooter,
		FlashDuration:      d.FlashDuration.Std(),
	}
}

// Run starts the interactive console on b with query preset. A query
// with exactly one match runs that command without opening the console.
// When a command is chosen the terminal is restored and the process is
// replaced, so Run only returns on quit or error.
func (app *Application) Run(b backend.Backend, query string) error {
	if app.store.Len() == 0 && query == "" {
		return ErrNoDatabase
	}
	log := app.log.WithComponent("console")

	r := renderer.New(b, app.RendererOptions())
	ctrl := controller.New(app.store, app.cfg.ControllerOptions(), controller.NotifierFunc(r.Flash))
	ctrl.Modes().OnChange(func(from, to mode.Mode) {
		log.Debug("mode %s -> %s", from, to)
	})

	ctrl.Start(query)
	if rec, ok := ctrl.Autorun(); ok {
		log.Info("autorun %q", query)
		return app.Execute(rec)
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	rec, err := app.loop(b, r, ctrl)
	b.Shutdown()
	if err != nil || rec == nil {
		return err
	}
	return app.Execute(rec)
}

// loop draws and handles events until the user quits or picks a record.
func (app *Application) loop(b backend.Backend, r *renderer.Renderer, ctrl *controller.Controller) (*record.Record, error) {
	log := app.log.WithComponent("console")
	for {
		r.Draw(ctrl)

		ev := b.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			out, err := ctrl.HandleKey(ev.Key)
			if err != nil {
				// Save failures were flashed; the session goes on.
				log.Error("%s: %v", ev.Key, err)
			}
			if out.Quit {
				return nil, nil
			}
			if out.Run != nil {
				return out.Run, nil
			}
		case backend.EventResize:
			log.Debug("resize %dx%d", ev.Width, ev.Height)
		}
	}
}
