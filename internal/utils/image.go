package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Décodeurs pour les formats acceptés à l'upload
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// CompressImage redimensionne une image pour que son plus grand côté ne dépasse
// pas maxDimension, puis la ré-encode en JPEG. Transformation pure, sans
// dépendance au reste de l'application : (bytes, maxDimension) → bytes.
func CompressImage(data []byte, maxDimension int) ([]byte, error) {
	if maxDimension <= 0 {
		return nil, fmt.Errorf("dimension maximale invalide: %d", maxDimension)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image illisible: %v", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxDimension || h > maxDimension {
		if w >= h {
			h = h * maxDimension / w
			w = maxDimension
		} else {
			w = w * maxDimension / h
			h = maxDimension
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("erreur encodage JPEG: %v", err)
	}
	return buf.Bytes(), nil
}
