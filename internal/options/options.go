// Package options implements the functional option pattern shared by the
// public configuration surfaces of this module.
//
// An Option is a plain function so that package-level constructors can be
// written without boilerplate:
//
//	type WeibullOption = options.Option[*weibullConfig]
//
//	func WithWindow(n int) WeibullOption {
//	    return func(cfg *weibullConfig) error {
//	        if n < 1 {
//	            return fmt.Errorf("window must be >= 1, got %d", n)
//	        }
//	        cfg.window = n
//	        return nil
//	    }
//	}
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] func(T) error

// Apply runs opts against target in order and stops at the first error.
// Nil options are skipped so callers can assemble option slices conditionally.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError adapts a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}
