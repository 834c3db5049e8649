// wplace-hallofshame - hall of shame panel renderer
// Copyright (C) 2026  The wplace-hallofshame authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package imageio reads and writes panel buffers as image files.
//
// Decoding supports PNG, BMP, TIFF and WebP. Encoding supports PNG, BMP
// and TIFF; the format is chosen from the file name extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder

	render "github.com/cfpwastaken/wplace-hallofshame"
)

// ErrUnknownFormat is returned for file names without a supported extension.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output file format.
type Format int

// Supported output formats.
const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor selects the output format from the extension of name.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
}

// Decode reads an image and converts it to a buffer.
// The second result is the name of the detected format.
func Decode(r io.Reader) (*render.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	if img.Bounds().Empty() {
		return nil, format, fmt.Errorf("empty %s image", format)
	}
	return render.FromImage(img), format, nil
}

// Load reads the image file at path.
func Load(path string) (*render.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *render.Buffer, format Format) error {
	img := buf.Image()
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}
}

// Save writes buf to path, using the format implied by the extension.
func Save(path string, buf *render.Buffer) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(f, buf, format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Scale enlarges buf by an integer factor, repeating every pixel
// factor×factor times. Factors below 2 return buf unchanged.
func Scale(buf *render.Buffer, factor int) *render.Buffer {
	if factor < 2 {
		return buf
	}
	res := render.NewBuffer(buf.Width*factor, buf.Height*factor)
	dst, src := res.Image(), buf.Image()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return res
}
