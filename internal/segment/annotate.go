package segment

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var annotationColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// Annotate draws the winning contour and the measured dimensions onto a
// copy of the source frame and returns it JPEG-encoded. The source frame is
// not modified; the returned bytes are owned by the caller.
func Annotate(img gocv.Mat, contours gocv.PointsVector, idx int, m Measurement) ([]byte, error) {
	frame := img.Clone()
	defer frame.Close()

	gocv.DrawContours(&frame, contours, idx, annotationColor, 2)
	gocv.PutText(&frame, fmt.Sprintf("Width: %dpx", m.PixelWidth),
		image.Pt(20, 30), gocv.FontHersheySimplex, 0.7, annotationColor, 2)
	gocv.PutText(&frame, fmt.Sprintf("Length: %dpx", m.PixelLength),
		image.Pt(20, 60), gocv.FontHersheySimplex, 0.7, annotationColor, 2)

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return nil, fmt.Errorf("encode annotated frame: %w", err)
	}
	defer buf.Close()

	// The buffer's backing store is freed on Close; hand back a copy.
	raw := buf.GetBytes()
	encoded := make([]byte, len(raw))
	copy(encoded, raw)
	return encoded, nil
}
