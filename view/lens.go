package view

import "errors"

// ErrLensNotImplemented is returned by ToGraphViewFromLens: the lens-backed
// construction path is explicitly deferred. Calling it must fail with this
// documented error rather than silently returning a wrong view.
var ErrLensNotImplemented = errors.New("view: to_graph_view(from_graph_lens(...)) is not yet implemented")

// ToGraphViewFromLens would build a GraphView over a lens into some larger
// host structure instead of an owned PatternGraph. That port does not
// exist yet; this always fails rather than return an incomplete view.
func ToGraphViewFromLens[Extra any](lens any) (*GraphView[Extra], error) {
	return nil, ErrLensNotImplemented
}
