package htree

// Option configures an HTree during creation.
//
// Example:
//
//	// Default placement inside the unit box
//	tree := htree.New[float64](8)
//
//	// Vertical trunk
//	tree := htree.New(8, htree.WithRoot(htree.Seg(0.5, 0.25, 0.5, 0.75)))
type Option[T Float] func(*options[T])

// options holds optional configuration for HTree creation.
type options[T Float] struct {
	root   Segment[T]
	custom bool
}

// defaultOptions returns the canonical configuration.
func defaultOptions[T Float]() options[T] {
	return options[T]{root: canonicalRoot[T]()}
}

// WithRoot sets the trunk segment. The fractal is the image of the
// canonical one under the similarity taking the canonical trunk onto
// root, so proportions and traversal order are unchanged.
//
// A zero-length root is accepted and collapses every segment onto
// root.Start.
func WithRoot[T Float](root Segment[T]) Option[T] {
	return func(o *options[T]) {
		o.root = root
		o.custom = true
	}
}
