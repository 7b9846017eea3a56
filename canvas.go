package boldtools

import (
	"strings"

	"github.com/carbocation/pfx"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MMPerInch converts a figure size expressed in inches to the millimeter
// coordinates that canvas works in.
const MMPerInch = 25.4

// ChartFonts loads the Go fonts that ship with golang.org/x/image, so that
// chart output does not depend on fonts being installed on the host.
func ChartFonts() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("go")

	if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, pfx.Err(err)
	}
	if err := family.LoadFont(gobold.TTF, 0, canvas.FontBold); err != nil {
		return nil, pfx.Err(err)
	}

	return family, nil
}

// WriteCanvas saves a canvas to disk, choosing the output format from the
// file extension. Raster formats are rendered at roughly 300 DPI.
func WriteCanvas(c *canvas.Canvas, path string) error {
	switch ext := strings.ToLower(path); {
	case strings.HasSuffix(ext, ".png"),
		strings.HasSuffix(ext, ".jpg"),
		strings.HasSuffix(ext, ".jpeg"),
		strings.HasSuffix(ext, ".tif"),
		strings.HasSuffix(ext, ".tiff"):
		return pfx.Err(renderers.Write(path, c, canvas.DPMM(12.0)))
	}

	return pfx.Err(renderers.Write(path, c))
}
