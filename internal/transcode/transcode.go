// Package transcode converts uploaded images to the gateway's canonical
// storage format: PNG at a fixed width with the aspect ratio preserved.
package transcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Register decoders for the upload formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// TargetWidth is the width in pixels of every stored image.
const TargetWidth = 720

// ToPNG decodes data as an image, resizes it to TargetWidth preserving the
// aspect ratio, and re-encodes it as PNG. Undecodable input is an error.
func ToPNG(data []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("transcode: decode image: %w", err)
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("transcode: empty %s image", format)
	}

	dstH := (srcH*TargetWidth + srcW/2) / srcW
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, TargetWidth, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("transcode: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
