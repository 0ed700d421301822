package portrait

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/image/draw"

	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

// maxAspect bounds the drawn height to maxAspect×width pixels.
const maxAspect = 2

// upperHalf draws the top pixel in the foreground and the bottom pixel in
// the background, so one cell holds two vertically stacked pixels.
const upperHalf = "▀"

// Render draws img as ANSI half-block art, width cells wide. The height
// follows the image's aspect ratio, capped at width rows. Transparent areas take the theme
// background.
func Render(img image.Image, width int) string {
	if img == nil || width <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	pxHeight := width * b.Dy() / b.Dx()
	if pxHeight > maxAspect*width {
		pxHeight = maxAspect * width
	}
	if pxHeight < 2 {
		pxHeight = 2
	}
	if pxHeight%2 == 1 {
		pxHeight++
	}

	canvas := Scale(img, width, pxHeight)

	var sb strings.Builder
	for y := 0; y < pxHeight; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := canvas.RGBAAt(x, y)
			bottom := canvas.RGBAAt(x, y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(upperHalf))
		}
	}
	return sb.String()
}

// Scale resizes img to w×h pixels over the theme background.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBAModel.Convert(theme.BgDark)
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Placeholder renders a framed box holding alt text, used when the image is
// missing or still loading.
func Placeholder(alt string, width int) string {
	if width < 8 {
		width = 8
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(width/2).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Render(alt)
}
