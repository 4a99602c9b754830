package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Keycap is a rounded key with a centered label.
type Keycap struct {
	bg     *canvas.Rectangle
	label  *canvas.Text
	dimmed bool
	obj    fyne.CanvasObject
}

// NewKeycap builds a keycap of at least size with the given label.
func NewKeycap(text string, textSize float32, size fyne.Size) *Keycap {
	k := &Keycap{}
	k.bg = canvas.NewRectangle(KeycapColor)
	k.bg.CornerRadius = CornerRadius
	k.bg.SetMinSize(size)

	k.label = canvas.NewText(text, TextColor)
	k.label.TextSize = textSize
	k.label.TextStyle.Bold = true
	k.label.Alignment = fyne.TextAlignCenter

	padded := container.New(layout.NewCustomPaddedLayout(0, 0, 8, 8), k.label)
	k.obj = container.NewStack(k.bg, container.NewCenter(padded))
	return k
}

// CanvasObject returns the object to place in a container.
func (k *Keycap) CanvasObject() fyne.CanvasObject {
	return k.obj
}

// Text returns the current label.
func (k *Keycap) Text() string {
	return k.label.Text
}

// Dimmed reports whether the label is drawn at reduced opacity.
func (k *Keycap) Dimmed() bool {
	return k.dimmed
}

// SetDimmed draws the label at half opacity when dimmed is true.
func (k *Keycap) SetDimmed(dimmed bool) {
	k.dimmed = dimmed
	if dimmed {
		k.label.Color = withAlpha(TextColor, DimmedTextAlpha)
	} else {
		k.label.Color = TextColor
	}
	k.label.Refresh()
}

// TappableContainer wraps a canvas object and reports taps on it.
type TappableContainer struct {
	widget.BaseWidget
	Content         fyne.CanvasObject
	OnTappedPrimary func()
}

func NewTappableContainer(c fyne.CanvasObject, onP func()) *TappableContainer {
	t := &TappableContainer{
		Content:         c,
		OnTappedPrimary: onP,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}
