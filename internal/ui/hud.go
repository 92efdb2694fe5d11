//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"cellmap/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 140, G: 170, B: 220, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

var keyHelp = []string{
	"space  pause",
	"n      single step",
	"r      reset same seed",
	"s      reset new seed",
	"1      neighbour heatmap",
	"q/esc  quit",
}

// HUD renders the board statistics panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	title    string
	snapshot core.ParameterSnapshot

	controls     []hudControl
	setter       core.FloatParameterSetter
	panelOffsetX int
}

type hudControl struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: strings.ToUpper(sim.Name())}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControl{control: ctrl})
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the parameter snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		c := &h.controls[i]
		p, ok := h.snapshot.Lookup(c.control.Key)
		c.hasValue = false
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			c.value = v
			c.hasValue = true
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		switch {
		case image.Pt(px, my).In(c.minusRect):
			h.adjust(c, -1)
		case image.Pt(px, my).In(c.plusRect):
			h.adjust(c, 1)
		}
	}
}

func (h *HUD) adjust(c *hudControl, direction float64) {
	step := c.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := c.control.Clamp(c.value + direction*step)
	// Snap to the step grid so repeated clicks do not accumulate drift.
	target = math.Round(target/step) * step
	if h.setter.SetFloatParameter(c.control.Key, target) {
		c.value = target
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, textColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, textColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	text.Draw(h.panel, fmt.Sprintf("TPS %.1f", ebiten.ActualTPS()), face, panelPadding, y, dimColor)
	y += lineHeight * 2

	for i := range h.controls {
		y = h.drawControl(&h.controls[i], y)
	}

	y += lineHeight
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *hudControl, y int) int {
	face := basicfont.Face7x13
	top := y - headerBaseline
	c.plusRect = image.Rect(h.width-panelPadding-buttonSize, top, h.width-panelPadding, top+buttonSize)
	c.minusRect = image.Rect(c.plusRect.Min.X-buttonGap-buttonSize, top, c.plusRect.Min.X-buttonGap, top+buttonSize)

	text.Draw(h.panel, c.control.Label, face, panelPadding, y, textColor)
	y += lineHeight
	value := "--"
	if c.hasValue {
		value = strconv.FormatFloat(c.value, 'f', 2, 64)
	}
	text.Draw(h.panel, value, face, panelPadding, y, textColor)
	h.drawButton(c.minusRect, "-", c.hasValue && c.value > c.control.Min)
	h.drawButton(c.plusRect, "+", c.hasValue && c.value < c.control.Max)
	return y + lineHeight
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := textColor
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 18
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 14
)
