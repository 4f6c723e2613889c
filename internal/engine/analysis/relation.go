package analysis

// Relation is a many-to-many association with forward and reverse indices.
// The zero value is not usable; use NewRelation or ReconstructRelation.
type Relation[A comparable, B comparable] struct {
	forward map[A]map[B]struct{}
	reverse map[B]map[A]struct{}
}

func NewRelation[A comparable, B comparable]() *Relation[A, B] {
	return &Relation[A, B]{
		forward: make(map[A]map[B]struct{}),
		reverse: make(map[B]map[A]struct{}),
	}
}

// ReconstructRelation rebuilds a relation from its forward adjacency map.
// Keys with no values are dropped.
func ReconstructRelation[A comparable, B comparable](forward map[A][]B) *Relation[A, B] {
	r := NewRelation[A, B]()
	for a, bs := range forward {
		for _, b := range bs {
			r.Add(a, b)
		}
	}
	return r
}

func (r *Relation[A, B]) Add(a A, b B) {
	fw, ok := r.forward[a]
	if !ok {
		fw = make(map[B]struct{})
		r.forward[a] = fw
	}
	fw[b] = struct{}{}

	rv, ok := r.reverse[b]
	if !ok {
		rv = make(map[A]struct{})
		r.reverse[b] = rv
	}
	rv[a] = struct{}{}
}

func (r *Relation[A, B]) Contains(a A, b B) bool {
	_, ok := r.forward[a][b]
	return ok
}

// Forward returns the values associated with a, in no particular order.
func (r *Relation[A, B]) Forward(a A) []B {
	set := r.forward[a]
	out := make([]B, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	return out
}

// Reverse returns the keys associated with b, in no particular order.
func (r *Relation[A, B]) Reverse(b B) []A {
	set := r.reverse[b]
	out := make([]A, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	return out
}

// Domain returns every key with at least one value.
func (r *Relation[A, B]) Domain() []A {
	out := make([]A, 0, len(r.forward))
	for a := range r.forward {
		out = append(out, a)
	}
	return out
}

// Size is the number of pairs.
func (r *Relation[A, B]) Size() int {
	n := 0
	for _, set := range r.forward {
		n += len(set)
	}
	return n
}

// ForwardMap copies the relation into a plain adjacency map.
func (r *Relation[A, B]) ForwardMap() map[A][]B {
	out := make(map[A][]B, len(r.forward))
	for a := range r.forward {
		out[a] = r.Forward(a)
	}
	return out
}
