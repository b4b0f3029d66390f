package containers

// Root is the singleton container at the top of the tree. Its
// children are monitors; it has no parent.
type Root struct {
	Base
}

// NewRoot constructs the (only) root container. The [Tree] arena
// creates exactly one of these, in [NewTree].
func NewRoot() *Root {
	r := &Root{Base: newBase(KindRoot)}
	return r
}
