package main

import (
	"fmt"
	"strings"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/TimothyDexter/FiveM-StanceModifier/player/component"
	"github.com/gdamore/tcell/v2"
)

var (
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleValue  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarn   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var postureGlyphs = map[player.Posture]rune{
	player.PostureIdle:    'I',
	player.PostureStealth: 'S',
	player.PostureCrouch:  'C',
	player.PostureProne:   'P',
}

const help = "c tap  z hold  x cancel  f flip  e aim  wasd move  g weapon  r run  l fall  m melee  " +
	"v vehicle  o water  j restrain  p camera  b block crouch  n block prone  q quit"

func (d *Demo) text(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *Demo) field(y int, label, value string, style tcell.Style) {
	d.text(2, y, styleLabel, label)
	d.text(18, y, style, value)
}

func flag(name string, on bool) string {
	if on {
		return name
	}
	return strings.Repeat("·", len(name))
}

func (d *Demo) draw() {
	d.screen.Clear()
	c, ch := d.c, d.ch

	posture := c.Posture().String()
	if c.IsProne() {
		posture += " (" + c.Orientation().String() + ")"
	}
	d.field(1, "posture", posture, styleActive)

	if pc, ok := c.Prone().(*component.ProneComponent); ok {
		d.field(2, "prone", strings.Join([]string{
			flag("diving", pc.Diving()), flag("crawling", pc.Crawling()),
			flag("aiming", pc.Aiming()), flag("drawing", pc.Drawing()),
		}, " "), styleValue)
	}
	crouchBlocked, proneBlocked := c.Blocking()
	d.field(3, "blocking", fmt.Sprintf("crouch=%v prone=%v", crouchBlocked, proneBlocked), styleValue)
	d.field(4, "heading", fmt.Sprintf("%.2f  turned %+.2f", ch.Heading(), ch.Turned()), styleValue)
	d.field(5, "weapon", ch.CurrentWeapon(), styleValue)

	immune := styleValue
	if ch.immune {
		immune = styleWarn
	}
	d.field(6, "damage immune", fmt.Sprint(ch.immune), immune)
	d.field(7, "environment", strings.Join([]string{
		flag("running", ch.Running), flag("falling", ch.Falling), flag("melee", ch.CloseCombat),
		flag("vehicle", ch.InVehicle), flag("water", ch.InWater), flag("restrained", ch.Restrained),
		flag("first-person", ch.view == player.ViewModeFirstPerson),
	}, " "), styleValue)

	last := fmt.Sprintf("%s -> %s (%s)", d.last.Previous, d.last.Posture, d.last.Outcome)
	lastStyle := styleValue
	if d.last.Err != nil {
		last += ": " + d.last.Err.Error()
		lastStyle = styleWarn
	}
	d.field(8, "last change", last, lastStyle)

	y := 10
	for ev := range ch.events.Iter() {
		d.text(2, y, styleLabel, ev)
		y++
	}

	// The character and a marker in the direction it faces.
	const cx, cy = 64, 4
	v := game.HeadingVector(ch.Heading())
	d.screen.SetContent(cx, cy, postureGlyphs[c.Posture()], nil, styleActive)
	d.screen.SetContent(cx+int(game.Round32(v.X()*6, 0)), cy-int(game.Round32(v.Y()*3, 0)), '*', nil, styleValue)

	_, height := d.screen.Size()
	d.text(2, height-1, styleLabel, help)
	d.screen.Show()
}
