package dynvec_test

import (
	"testing"

	"github.com/hupe1980/dynvec"
)

func BenchmarkPushBack(b *testing.B) {
	v := dynvec.New[int]()
	defer v.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPushBack_Reserved(b *testing.B) {
	v := dynvec.New[int]()
	defer v.Close()

	if err := v.Reserve(b.N); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAt(b *testing.B) {
	v, err := dynvec.NewWithSize[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		sum += *v.At(i & 1023)
	}
	_ = sum
}

func BenchmarkInsertFront(b *testing.B) {
	v := dynvec.New[int]()
	defer v.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Insert(0, i); err != nil {
			b.Fatal(err)
		}
	}
}
