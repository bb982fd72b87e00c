// SPDX-License-Identifier: Unlicense OR MIT

// Command superdemo shows decorated cards: rounded corners, shadows,
// borders, aspect ratios, rotation and check propagation.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/image/colornames"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/decor"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title(cfg.Title),
			app.Size(unit.Dp(cfg.Width), unit.Dp(cfg.Height)),
		)
		if err := run(w, cfg, logger); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window, cfg Config, logger *slog.Logger) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	cards, err := showcase(th, cfg.Card, w.Invalidate, logger)
	if err != nil {
		return err
	}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			for _, c := range cards {
				c.detach()
			}
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			layoutCards(gtx, cards)
			e.Frame(gtx.Ops)
		}
	}
}

func layoutCards(gtx layout.Context, cards []*card) layout.Dimensions {
	children := make([]layout.FlexChild, len(cards))
	for i, c := range cards {
		children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, c.Layout)
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

// showcase builds the demo cards from the configured style.
func showcase(th *material.Theme, style CardConfig, invalidate func(), logger *slog.Logger) ([]*card, error) {
	base, err := style.Attrs()
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(style.Color)
	if err != nil {
		return nil, fmt.Errorf("card color: %w", err)
	}
	opts := []decor.Option{decor.WithLogger(logger)}
	events := &eventLog{log: logger}

	decorate := func(label string, c color.NRGBA, want image.Point, cfg attr.Config) *card {
		k := newCard(th, label, c, want, invalidate)
		k.Delegate = decor.New(k, cfg, opts...)
		k.AddVisibleChangeListener(events).
			AddAttachChangeListener(events).
			AddCheckedChangeListener(events)
		return k
	}

	rounded := decorate("rounded", bg, image.Pt(0, 64), base)

	circleCfg := base
	circleCfg.Circle = true
	circleCfg.AspectRatio = attr.Ratio1x1.Value()
	circleCfg.CornerRadius = 0
	circleCfg.AutoStartRotate = true
	circle := decorate("spin", rgb(colornames.Lightskyblue), image.Pt(96, 96), circleCfg)
	circle.limit = image.Pt(96, 96)

	stepCfg := base
	stepCfg.SmoothRotate = false
	stepCfg.CanvasRotate = true
	stepCfg.AutoStartRotate = true
	stepCfg.RotateInterval = 4 * stepCfg.RotateInterval
	stepped := decorate("step", rgb(colornames.Khaki), image.Pt(0, 64), stepCfg)

	wideCfg := base
	wideCfg.AspectRatio = attr.Ratio16x9.Value()
	wideCfg.FixOrientation = attr.Horizontal
	wide := decorate("16:9", rgb(colornames.Lavender), image.Pt(0, 0), wideCfg)
	wide.limit = image.Pt(320, 0)

	groupCfg := base
	groupCfg.AutoCheckable = true
	groupCfg.TransitiveCheckToChild = true
	group := decorate("", rgb(colornames.Whitesmoke), image.Pt(0, 96), groupCfg)
	group.on = rgb(colornames.Lightsteelblue)
	for _, label := range []string{"a", "b", "c"} {
		childCfg := attr.DefaultConfig()
		childCfg.CornerRadius = 8
		childCfg.ReceiveCheckFromParent = true
		child := decorate(label, rgb(colornames.Gainsboro), image.Pt(0, 48), childCfg)
		child.on = rgb(colornames.Cornflowerblue)
		group.add(child)
	}

	return []*card{rounded, circle, stepped, wide, group}, nil
}

func rgb(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// eventLog logs the decoration lifecycle.
type eventLog struct {
	log *slog.Logger
}

func (l *eventLog) VisibleChanged(h decor.Host, visible bool) {
	l.log.Debug("visibility", "card", name(h), "visible", visible)
}

func (l *eventLog) AttachChanged(h decor.Host, attached bool) {
	l.log.Debug("attach", "card", name(h), "attached", attached)
}

func (l *eventLog) CheckedChanged(h decor.Host, checked bool) {
	l.log.Info("checked", "card", name(h), "checked", checked)
}

func name(h decor.Host) string {
	if c, ok := h.(*card); ok && c.label != "" {
		return c.label
	}
	return fmt.Sprintf("%T", h)
}
