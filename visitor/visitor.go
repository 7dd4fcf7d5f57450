package visitor

// Visitor iterates over (key, element) pairs: struct field name and value, slice index and element, or map key and value.
// The callback returning (false, nil) stops the iteration, an error stops it and is returned.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
