// Package visitor offers generic visitors for common container types.
// It provides reflection-backed iteration over structs, maps, slices and arrays,
// with simple callback-based traversal. Struct fields are read through xunsafe,
// so unexported fields are visited as well.
package visitor
