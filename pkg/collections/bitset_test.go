package collections

import "testing"

func TestBitset_SetTest(t *testing.T) {
	b := NewBitset(100)

	b.Set(0)
	b.Set(50)
	b.Set(99)

	if !b.Test(0) || !b.Test(50) || !b.Test(99) {
		t.Error("expected bits 0, 50, 99 to be set")
	}
	if b.Test(1) {
		t.Error("expected bit 1 to be clear")
	}
}

func TestBitset_OutOfRange(t *testing.T) {
	b := NewBitset(10)

	b.Set(-1)
	b.Set(10)
	b.Set(1000)

	if b.Test(-1) || b.Test(10) || b.Test(1000) {
		t.Error("out-of-range indices must never read as set")
	}
}

func BenchmarkBitset_Set(b *testing.B) {
	bs := NewBitset(1000000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bs.Set(i % 1000000)
	}
}

func BenchmarkBitset_Test(b *testing.B) {
	bs := NewBitset(1000000)
	for i := 0; i < 1000000; i++ {
		if i%2 == 0 {
			bs.Set(i)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bs.Test(i % 1000000)
	}
}
