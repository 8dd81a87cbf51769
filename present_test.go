package softwillow

import "testing"

func TestARGBToRGBA(t *testing.T) {
	src := []uint32{0xFF112233, 0x80FF0000, 0x00FFFFFF}
	dst := make([]byte, 4*len(src))
	argbToRGBA(dst, src)

	want := []byte{
		0x11, 0x22, 0x33, 0xFF,
		0x80, 0x00, 0x00, 0x80, // premultiplied
		0x00, 0x00, 0x00, 0x00,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestPresentersFanOut(t *testing.T) {
	var calls []int
	p := Presenters{
		PresenterFunc(func(px []uint32, w, h int) { calls = append(calls, len(px)+w+h) }),
		nil,
		PresenterFunc(func(px []uint32, w, h int) { calls = append(calls, -1) }),
	}
	p.Present(make([]uint32, 6), 3, 2)
	if len(calls) != 2 || calls[0] != 11 || calls[1] != -1 {
		t.Errorf("unexpected calls %v", calls)
	}
}
