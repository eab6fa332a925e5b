package transcode

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestImage produces an encoded w×h image using the given encoder.
func encodeTestImage(t *testing.T, w, h int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output must be a valid PNG")
	return img
}

func TestToPNG_ResizesToTargetWidth(t *testing.T) {
	src := encodeTestImage(t, 1000, 800, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})

	out, err := ToPNG(src)
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, TargetWidth, img.Bounds().Dx())
	assert.Equal(t, 576, img.Bounds().Dy(), "height must scale proportionally")
}

func TestToPNG_AcceptsJPEG(t *testing.T) {
	src := encodeTestImage(t, 360, 360, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
	})

	out, err := ToPNG(src)
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, TargetWidth, img.Bounds().Dx())
	assert.Equal(t, TargetWidth, img.Bounds().Dy())
}

func TestToPNG_UpscalesSmallImages(t *testing.T) {
	src := encodeTestImage(t, 72, 9, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})

	out, err := ToPNG(src)
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, TargetWidth, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestToPNG_RejectsNonImage(t *testing.T) {
	_, err := ToPNG([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestToPNG_RejectsEmptyInput(t *testing.T) {
	_, err := ToPNG(nil)
	assert.Error(t, err)
}
