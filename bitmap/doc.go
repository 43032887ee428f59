// Package bitmap loads BMP files into composite.Image values.
//
// Only the common Windows layout is accepted: a BITMAPFILEHEADER followed by
// an info header of at least 40 bytes, one plane, 24 or 32 bits per pixel
// and no compression. Rows may be stored bottom-up or top-down; the result is
// always top-down BGRA8.
//
// 24-bit images are decoded with golang.org/x/image/bmp and get alpha 255.
// 32-bit images keep the 4th byte of every pixel as alpha, which that
// package discards for 40-byte headers, so their rows are copied directly.
package bitmap
