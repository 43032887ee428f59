package composite

import (
	"bytes"
	"image"
	"math/rand"
	"testing"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/internal/wide"
)

const sentinel = 0xAB

func filledImage(w, h int, c pixfx.BGRA) *Image {
	im := NewImage(w, h)
	im.Fill(c)
	return im
}

func randomImage(rng *rand.Rand, w, h int) *Image {
	im := NewImage(w, h)
	rng.Read(im.Data)
	return im
}

func sentinelBuffer(w, h int) *pixfx.PixelBuffer {
	buf := pixfx.NewPixelBuffer(w, h)
	for i := range buf.Data() {
		buf.Data()[i] = sentinel
	}
	return buf
}

func drawBoth(w, h int, bg, sprite *Image, at Placement) (scalar, vector *pixfx.PixelBuffer) {
	scalar = sentinelBuffer(w, h)
	vector = sentinelBuffer(w, h)
	DrawScalar(scalar, bg, sprite, at)
	DrawVector(vector, bg, sprite, at)
	return scalar, vector
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name        string
		front, back pixfx.BGRA
		want        pixfx.BGRA
	}{
		{"opaque front", pixfx.BGRA{B: 10, G: 20, R: 30, A: 255}, pixfx.BGRA{B: 200, G: 200, R: 200}, pixfx.BGRA{B: 10, G: 20, R: 30, A: 255}},
		{"transparent front", pixfx.BGRA{B: 10, G: 20, R: 30, A: 0}, pixfx.BGRA{B: 1, G: 2, R: 3, A: 7}, pixfx.BGRA{B: 1, G: 2, R: 3, A: 255}},
		{"half", pixfx.BGRA{B: 200, A: 128}, pixfx.BGRA{B: 100}, pixfx.BGRA{B: 149, A: 255}},
		{"truncates", pixfx.BGRA{B: 100, A: 77}, pixfx.BGRA{B: 200, A: 255}, pixfx.BGRA{B: 169, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.front, tt.back); got != tt.want {
				t.Errorf("Blend() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlendTile_MatchesBlend(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for f := 0; f < 256; f += 17 {
				front := pixfx.BGRA{B: uint8(f), G: uint8(255 - f), R: uint8(b), A: uint8(a)}
				back := pixfx.BGRA{B: uint8(b), G: uint8(f), R: uint8(255 - b), A: uint8(f)}
				var fv, bv wide.U8x16
				for k := 0; k < 4; k++ {
					front.Put(fv[k*4:])
					back.Put(bv[k*4:])
				}
				out := blendTile(bv, fv)
				want := Blend(front, back)
				for k := 0; k < 4; k++ {
					if got := pixfx.LoadBGRA(out[k*4:]); got != want {
						t.Fatalf("a=%d b=%d f=%d lane %d: got %+v, want %+v", a, b, f, k, got, want)
					}
				}
			}
		}
	}
}

func TestDraw_Identity(t *testing.T) {
	bgColor := pixfx.BGRA{B: 40, G: 80, R: 120, A: 3}
	fgColor := pixfx.BGRA{B: 200, G: 150, R: 100}
	bg := filledImage(9, 5, bgColor)

	tests := []struct {
		name  string
		alpha uint8
		want  pixfx.BGRA
	}{
		{"alpha 255 shows sprite", 255, pixfx.BGRA{B: 200, G: 150, R: 100, A: 255}},
		{"alpha 0 shows background", 0, bgColor.Opaque()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fgColor
			c.A = tt.alpha
			sprite := filledImage(9, 5, c)
			for _, draw := range []func(*pixfx.PixelBuffer, *Image, *Image, Placement){DrawScalar, DrawVector} {
				buf := sentinelBuffer(9, 5)
				draw(buf, bg, sprite, Placement{})
				for y := 0; y < 5; y++ {
					for x := 0; x < 9; x++ {
						if got := buf.GetPixel(x, y); got != tt.want {
							t.Fatalf("(%d,%d) = %+v, want %+v", x, y, got, tt.want)
						}
					}
				}
			}
		})
	}
}

func TestDraw_LeftEdgeStraddle(t *testing.T) {
	gray := pixfx.BGRA{B: 128, G: 128, R: 128, A: 255}
	bg := filledImage(8, 4, gray)
	sprite := filledImage(4, 4, pixfx.White)

	scalar, vector := drawBoth(8, 4, bg, sprite, Placement{X: -2, Y: 0})
	if !bytes.Equal(scalar.Data(), vector.Data()) {
		t.Fatal("vector output differs from scalar")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := gray
			if x < 2 {
				want = pixfx.White
			}
			if got := vector.GetPixel(x, y); got != want {
				t.Errorf("(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestDraw_ClipsToSmallerExtent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bg := randomImage(rng, 6, 3)
	sprite := randomImage(rng, 3, 3)

	scalar, vector := drawBoth(10, 5, bg, sprite, Placement{X: 2, Y: 1})
	if !bytes.Equal(scalar.Data(), vector.Data()) {
		t.Fatal("vector output differs from scalar")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			got := vector.GetPixel(x, y)
			inside := x < 6 && y < 3
			if !inside && got != (pixfx.BGRA{B: sentinel, G: sentinel, R: sentinel, A: sentinel}) {
				t.Errorf("(%d,%d) outside background was written: %+v", x, y, got)
			}
			if inside && got.A != 255 {
				t.Errorf("(%d,%d) alpha = %d, want 255", x, y, got.A)
			}
		}
	}
}

func TestDraw_VectorMatchesScalarRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		bw, bh := 1+rng.Intn(37), 1+rng.Intn(9)
		sw, sh := rng.Intn(14), rng.Intn(9)
		dw, dh := 1+rng.Intn(41), 1+rng.Intn(11)
		at := Placement{X: rng.Intn(bw+sw+10) - sw - 5, Y: rng.Intn(bh+sh+6) - sh - 3}

		bg := randomImage(rng, bw, bh)
		sprite := randomImage(rng, sw, sh)
		scalar, vector := drawBoth(dw, dh, bg, sprite, at)
		if !bytes.Equal(scalar.Data(), vector.Data()) {
			idx := 0
			for idx < len(scalar.Data()) && scalar.Data()[idx] == vector.Data()[idx] {
				idx++
			}
			px := idx / 4
			t.Fatalf("case %d: bg %dx%d sprite %dx%d buf %dx%d at %+v: first diff at (%d,%d)",
				i, bw, bh, sw, sh, dw, dh, at, px%dw, px/dw)
		}
	}
}

func TestDraw_AllEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bg := randomImage(rng, 23, 11)
	sprite := randomImage(rng, 6, 5)
	for y := -6; y <= 12; y++ {
		for x := -7; x <= 24; x++ {
			at := Placement{X: x, Y: y}
			scalar, vector := drawBoth(23, 11, bg, sprite, at)
			if !bytes.Equal(scalar.Data(), vector.Data()) {
				t.Fatalf("placement %+v: vector output differs from scalar", at)
			}
		}
	}
}

func TestDraw_FullyOutside(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bg := randomImage(rng, 16, 8)
	sprite := randomImage(rng, 4, 4)
	for _, at := range []Placement{{X: -4, Y: 0}, {X: 16, Y: 2}, {X: 3, Y: -4}, {X: 3, Y: 8}, {X: -100, Y: -100}} {
		scalar, vector := drawBoth(16, 8, bg, sprite, at)
		if !bytes.Equal(scalar.Data(), vector.Data()) {
			t.Fatalf("placement %+v: vector output differs from scalar", at)
		}
		for y := 0; y < 8; y++ {
			for x := 0; x < 16; x++ {
				want := bg.Pixel(x, y).Opaque()
				if got := vector.GetPixel(x, y); got != want {
					t.Fatalf("placement %+v (%d,%d) = %+v, want %+v", at, x, y, got, want)
				}
			}
		}
	}
}

func TestDraw_EmptyInputs(t *testing.T) {
	bg := filledImage(4, 4, pixfx.White)
	tests := []struct {
		name       string
		bg, sprite *Image
	}{
		{"nil sprite", bg, nil},
		{"empty sprite", bg, NewImage(0, 3)},
		{"short sprite data", bg, &Image{Width: 4, Height: 4, Data: make([]byte, 8)}},
		{"empty background", NewImage(0, 0), bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scalar, vector := drawBoth(4, 4, tt.bg, tt.sprite, Placement{})
			if !bytes.Equal(scalar.Data(), vector.Data()) {
				t.Fatal("vector output differs from scalar")
			}
		})
	}
}

func TestComputeOverlap(t *testing.T) {
	buf := pixfx.NewPixelBuffer(10, 8)
	bg := NewImage(12, 6)
	sprite := NewImage(4, 4)
	tests := []struct {
		at   Placement
		clip image.Rectangle
		spr  image.Rectangle
	}{
		{Placement{X: 1, Y: 1}, image.Rect(0, 0, 10, 6), image.Rect(1, 1, 5, 5)},
		{Placement{X: -2, Y: -3}, image.Rect(0, 0, 10, 6), image.Rect(0, 0, 2, 1)},
		{Placement{X: 8, Y: 4}, image.Rect(0, 0, 10, 6), image.Rect(8, 4, 10, 6)},
		{Placement{X: 10, Y: 0}, image.Rect(0, 0, 10, 6), image.Rectangle{}},
	}
	for _, tt := range tests {
		ov := ComputeOverlap(buf, bg, sprite, tt.at)
		if ov.Clip != tt.clip {
			t.Errorf("%+v: Clip = %v, want %v", tt.at, ov.Clip, tt.clip)
		}
		if ov.Sprite != tt.spr {
			t.Errorf("%+v: Sprite = %v, want %v", tt.at, ov.Sprite, tt.spr)
		}
	}
}

func TestImageFromBytes(t *testing.T) {
	if _, err := ImageFromBytes(-1, 2, nil); err == nil {
		t.Error("negative width: expected error")
	}
	if _, err := ImageFromBytes(2, 2, make([]byte, 15)); err == nil {
		t.Error("short data: expected error")
	}
	im, err := ImageFromBytes(2, 2, make([]byte, 20))
	if err != nil {
		t.Fatalf("ImageFromBytes: %v", err)
	}
	if len(im.Data) != 16 {
		t.Errorf("len(Data) = %d, want 16", len(im.Data))
	}
}

func BenchmarkDraw(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	bg := randomImage(rng, FrameWidth, FrameHeight)
	sprite := randomImage(rng, 150, 150)
	buf := pixfx.NewPixelBuffer(FrameWidth, FrameHeight)
	at := Centered(bg, sprite)

	b.Run("scalar", func(b *testing.B) {
		b.SetBytes(int64(len(buf.Data())))
		for i := 0; i < b.N; i++ {
			DrawScalar(buf, bg, sprite, at)
		}
	})
	b.Run("vector", func(b *testing.B) {
		b.SetBytes(int64(len(buf.Data())))
		for i := 0; i < b.N; i++ {
			DrawVector(buf, bg, sprite, at)
		}
	})
}
