package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	webpMaxWidth  = 1600
	webpMaxHeight = 1600
	webpQuality   = 80
)

// EncodeWebP re-encodes a jpeg/png upload as webp, downscaling keep-aspect to
// fit 1600x1600 so hero and gallery images land web-ready. Returns the data
// unchanged with ok=false when the input is not a decodable raster image.
func EncodeWebP(data []byte) ([]byte, bool, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, false, nil
	}

	src = downscale(src, webpMaxWidth, webpMaxHeight)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, false, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), true, nil
}

func downscale(src image.Image, maxW, maxH int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
