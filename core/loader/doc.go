// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is
// enabled and registers its routes on a fiber router.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registered features; LoadAll loads the enabled ones in
// registration order.
package loader
