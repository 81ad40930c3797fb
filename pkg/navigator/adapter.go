package navigator

import "github.com/oakwood-commons/navx/internal/traverse"

// Resolver is the interface for path resolution. The comma-ok result is
// false when the path did not resolve.
type Resolver interface {
	Resolve(root interface{}, path string) (interface{}, bool)
}

var currentResolver Resolver = defaultResolver{}

// SetResolver overrides the global resolver used by NavigateTo. Passing
// nil keeps the current resolver.
func SetResolver(r Resolver) {
	if r != nil {
		currentResolver = r
	}
}

// DefaultResolver returns the built-in dot-path resolver.
func DefaultResolver() Resolver {
	return defaultResolver{}
}

// Resolve delegates to the current resolver.
func Resolve(root interface{}, path string) (interface{}, bool) {
	return currentResolver.Resolve(root, path)
}

type defaultResolver struct{}

func (defaultResolver) Resolve(root interface{}, path string) (interface{}, bool) {
	return traverse.Walk(root, traverse.Split(path))
}
