package bitmapx

import (
	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/exp/constraints"
)

// From builds a bitmap with the provided values set.
func From[T constraints.Integer](values ...T) *roaring.Bitmap {
	m := roaring.New()
	for _, v := range values {
		m.Add(uint32(v))
	}
	return m
}
