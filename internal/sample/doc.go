// Package sample reads colours out of image files.
//
// Images are decoded once and kept in a Cache keyed by path, so repeated
// samples from the same screenshot or mockup do not hit the disk again. A
// sample is either a single pixel or the alpha-weighted average of a small
// square patch around it, returned as a *colour.Colour ready for conversion
// and manipulation.
//
// # Coordinate System
//
// Coordinates are 0-based with origin at the top-left of the image bounds.
// Patches that extend past the edge are clipped.
package sample
