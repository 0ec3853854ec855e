package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const WelcomeText = "📚 Welcome to Booksy Collection"

var (
	plainSplashColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	shadowColor      = color.NRGBA{A: 0x80}
)

// NewSplash builds the welcome screen. With a background image the text sits
// on a translucent band over the picture; without one it is black on grey.
func NewSplash(bg image.Image) fyne.CanvasObject {
	title := canvas.NewText(WelcomeText, color.Black)
	title.TextSize = 28
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	if bg == nil {
		return container.NewStack(
			canvas.NewRectangle(plainSplashColor),
			container.NewCenter(title),
		)
	}

	picture := canvas.NewImageFromImage(bg)
	picture.FillMode = canvas.ImageFillStretch

	title.Color = color.White
	band := canvas.NewRectangle(shadowColor)
	band.SetMinSize(fyne.NewSize(500, 80))

	return container.NewStack(
		picture,
		container.NewCenter(container.NewStack(band, container.NewCenter(title))),
	)
}
