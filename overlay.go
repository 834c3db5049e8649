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

package render

import "fmt"

// Fits reports whether panel placed at (x, y) lies entirely inside base.
func Fits(base, panel *Buffer, x, y int) bool {
	return x >= 0 && y >= 0 &&
		x+panel.Width <= base.Width && y+panel.Height <= base.Height
}

// Overlay copies panel into base with its top-left corner at (x, y).
// Pixels of base are replaced, including their alpha; nothing is blended.
// The caller must make sure that the panel fits, see Fits.
func Overlay(base, panel *Buffer, x, y int) {
	base.Blit(panel, x, y)
}

// CheckedOverlay is like Overlay, but returns ErrOverlayBounds instead of
// panicking when the panel does not fit.
func CheckedOverlay(base, panel *Buffer, x, y int) error {
	if !Fits(base, panel, x, y) {
		return fmt.Errorf("%dx%d panel at (%d, %d) on %dx%d base: %w",
			panel.Width, panel.Height, x, y, base.Width, base.Height, ErrOverlayBounds)
	}
	Overlay(base, panel, x, y)
	return nil
}
