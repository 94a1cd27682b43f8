package region

import (
	"fmt"
	"testing"
)

func BenchmarkPush(b *testing.B) {
	r, err := Reserve(1 << 24) // 16 MiB
	if err != nil {
		b.Fatalf("Reserve failed: %v", err)
	}
	defer r.Release()

	sizes := []uint64{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if r.Free() < size {
					r.Clear()
				}
				if _, err := r.Push(size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPushPop(b *testing.B) {
	r, err := Reserve(1 << 16)
	if err != nil {
		b.Fatalf("Reserve failed: %v", err)
	}
	defer r.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Push(64); err != nil {
			b.Fatal(err)
		}
		if err := r.Pop(64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScratch(b *testing.B) {
	r, err := Reserve(1 << 20)
	if err != nil {
		b.Fatalf("Reserve failed: %v", err)
	}
	defer r.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scratch := r.ScratchBegin()
		for j := 0; j < 8; j++ {
			if _, err := r.Push(128); err != nil {
				b.Fatal(err)
			}
		}
		scratch.End()
	}
}

func BenchmarkPushStr(b *testing.B) {
	r, err := Reserve(1 << 20)
	if err != nil {
		b.Fatalf("Reserve failed: %v", err)
	}
	defer r.Release()

	payload := "the quick brown fox jumps over the lazy dog"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r.Free() < uint64(StrHeaderSize+len(payload)) {
			r.Clear()
		}
		if _, err := r.PushStr(payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegionVsBuiltin(b *testing.B) {
	b.Run("region", func(b *testing.B) {
		r, err := Reserve(1 << 24)
		if err != nil {
			b.Fatalf("Reserve failed: %v", err)
		}
		defer r.Release()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if r.Free() < 64 {
				r.Clear()
			}
			if _, err := r.Push(64); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 64)
		}
	})
}
