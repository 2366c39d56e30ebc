package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const avatarMaxDim = 512

// NormalizeAvatar decodes an uploaded image, caps it at avatarMaxDim pixels
// on the longest side and re-encodes it as lossy WebP.
func NormalizeAvatar(r io.Reader) (*bytes.Buffer, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > avatarMaxDim || h > avatarMaxDim {
		if w >= h {
			h = h * avatarMaxDim / w
			w = avatarMaxDim
		} else {
			w = w * avatarMaxDim / h
			h = avatarMaxDim
		}
		if h < 1 {
			h = 1
		}
		if w < 1 {
			w = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return &buf, nil
}
