package main

import (
	"fmt"
	"os"
	"time"

	stance "github.com/TimothyDexter/FiveM-StanceModifier"
	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/TimothyDexter/FiveM-StanceModifier/settings"
	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
)

const (
	frameDuration = 16 * time.Millisecond
	tapDuration   = 60 * time.Millisecond
)

// Demo drives a stance controller from the keyboard against a simulated character.
type Demo struct {
	screen tcell.Screen

	c    *player.Controller
	kb   *Keyboard
	ch   *Character
	opts player.Opts

	last player.TickResult
}

// The following program runs a stance controller in the terminal. An optional settings file path may
// be passed, which is created with the default settings if it does not exist.
func main() {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	f, err := os.OpenFile("stance-demo.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetOutput(f)

	if err := stance.InitSentry(s); err != nil {
		log.Warnf("sentry: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	if addr := os.Getenv("STANCE_STATSVIEW"); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	demo, err := NewDemo(log, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	cue, err := NewCue()
	if err != nil {
		// Non-fatal, the demo can run without sound
		log.Warnf("audio initialization failed: %v", err)
	}
	defer cue.Close()
	demo.c.Handle(handler{ch: demo.ch, cue: cue})

	demo.run()
	demo.screen.Fini()
}

func loadSettings() (settings.Settings, error) {
	if len(os.Args) < 2 {
		s := settings.DefaultSettings()
		return s, settings.ApplyEnv(&s)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

// NewDemo sets up the screen and a controller for a new simulated character.
func NewDemo(log *logrus.Logger, s settings.Settings) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &Demo{screen: screen, kb: NewKeyboard(), opts: s.Opts()}
	d.ch = NewCharacter(time.Now)
	d.c, err = stance.New(log, s, player.Providers{
		Input:       d.kb,
		Pose:        d.ch,
		Environment: d.ch,
		Camera:      d.ch,
		Restraints:  d.ch,
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return d, nil
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		now := time.Now()
		switch ev.Rune() {
		case 'q':
			return false
		case 'c':
			d.kb.Tap(player.ControlStance, now, tapDuration)
		case 'z':
			d.kb.Tap(player.ControlStance, now, d.opts.HoldThreshold+100*time.Millisecond)
		case 'x':
			d.kb.Tap(player.ControlCancel, now, frameDuration)
		case 'f':
			d.kb.Tap(player.ControlFlip, now, tapDuration)
		case 'e':
			d.kb.Toggle(player.ControlAim, now)
		case 'w':
			d.kb.Repeat(player.ControlMoveForward, now)
		case 's':
			d.kb.Repeat(player.ControlMoveBackward, now)
		case 'a':
			d.kb.Repeat(player.ControlMoveLeft, now)
		case 'd':
			d.kb.Repeat(player.ControlMoveRight, now)
		case 'g':
			d.ch.NextWeapon()
		case 'r':
			d.ch.Running = !d.ch.Running
		case 'l':
			d.ch.Falling = !d.ch.Falling
		case 'm':
			d.ch.CloseCombat = !d.ch.CloseCombat
		case 'v':
			d.ch.InVehicle = !d.ch.InVehicle
		case 'o':
			d.ch.InWater = !d.ch.InWater
		case 'j':
			d.ch.Restrained = !d.ch.Restrained
		case 'p':
			d.ch.ToggleFirstPerson()
		case 'b':
			crouch, prone := d.c.Blocking()
			d.c.SetBlocking(!crouch, prone)
		case 'n':
			crouch, prone := d.c.Blocking()
			d.c.SetBlocking(crouch, !prone)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *Demo) run() {
	ticker := time.NewTicker(frameDuration) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			d.kb.Frame(time.Now())
			res := d.c.Tick()
			if res.Changed() || res.Outcome != player.TickOutcomeNormal {
				d.last = res
			}
			d.draw()
		}
	}
}
