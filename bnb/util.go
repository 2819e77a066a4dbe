package bnb

import "unsafe"

// sizeOfInt is the platform's native int width, used by
// AllocatedMemoryBytes to account for the frame-offset slices shared by
// SearchStack and SearchTrail.
const sizeOfInt = int(unsafe.Sizeof(int(0)))

// sizeOf reports the size, in bytes, of a value of type T. It exists so
// AllocatedMemoryBytes can account for the entries slice without the
// caller needing to name T explicitly.
func sizeOf[T any](zero T) int {
	return int(unsafe.Sizeof(zero))
}
