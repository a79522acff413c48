package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// faces holds the text/v2 faces shared by the ebitenui windows
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	return faces{
		title:  &text.GoTextFace{Source: fontSource, Size: 18},
		normal: &text.GoTextFace{Source: fontSource, Size: 12},
		small:  &text.GoTextFace{Source: fontSource, Size: 10},
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func confirmButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// tabButtonImage shows the selected tab through the disabled state
func tabButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{120, 80, 30, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 220, 180, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func newButton(label string, face *text.Face, img *widget.ButtonImage, minW, minH int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, minH)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, face, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newLabel(label string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{Idle: c}),
	)
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func newColumn(spacing int, padding *widget.Insets) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func newTextInput(face *text.Face, minW int, placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

// centeredWindow returns a root container holding a fixed-size window in the
// middle of the screen.
func centeredWindow(bg, window color.Color, w, h int) (root, content *widget.Container) {
	root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(12)
	content = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(window)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(content)
	return root, content
}
