package godec

// TupleN are fixed-arity heterogeneous values. On the wire they are JSON
// arrays of their components; the decode and encode packages provide the
// matching combinators, and auto serializes any TupleN field positionally.

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// TupleArity marks the TupleN family for reflection-driven coders.

func (Tuple2[A, B]) TupleArity() int                   { return 2 }
func (Tuple3[A, B, C]) TupleArity() int                { return 3 }
func (Tuple4[A, B, C, D]) TupleArity() int             { return 4 }
func (Tuple5[A, B, C, D, E]) TupleArity() int          { return 5 }
func (Tuple6[A, B, C, D, E, F]) TupleArity() int       { return 6 }
func (Tuple7[A, B, C, D, E, F, G]) TupleArity() int    { return 7 }
func (Tuple8[A, B, C, D, E, F, G, H]) TupleArity() int { return 8 }
