//go:build !amd64

package board

// hardwarePEXT is nil off amd64; lookups use the multiply/shift index.
var hardwarePEXT func(src, mask uint64) uint64
