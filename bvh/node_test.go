package bvh

import (
	"testing"
	"unsafe"
)

func TestNodeIsThirtyTwoBytes(t *testing.T) {
	if size := unsafe.Sizeof(node{}); size != 32 {
		t.Fatalf("expected node to be 32 bytes; got %d", size)
	}
}
