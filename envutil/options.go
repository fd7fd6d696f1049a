package envutil

// Option adjusts a Reader before it is returned from Bool, SlogLevel or
// Lower.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies the value used when the variable is unset.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}
