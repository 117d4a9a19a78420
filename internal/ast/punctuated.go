package ast

import (
	"iter"

	"lunar/internal/token"
)

// Pair is one element of a Punctuated sequence: either an End value or a
// value followed by its separator.
type Pair[T any] struct {
	value T
	punct *token.Reference
}

// EndPair builds a pair without a separator.
func EndPair[T any](v T) Pair[T] {
	return Pair[T]{value: v}
}

// Value returns the element.
func (p Pair[T]) Value() T { return p.value }

// Punctuation returns the separator, or nil for an End pair.
func (p Pair[T]) Punctuation() *token.Reference { return p.punct }

// IsEnd reports whether the pair has no separator.
func (p Pair[T]) IsEnd() bool { return p.punct == nil }

// Punctuated is a separated list. Only the last pair may be an End pair;
// the only way to build one is through PunctuatedBuilder.
type Punctuated[T any] struct {
	pairs []Pair[T]
}

// Len returns the number of elements.
func (p Punctuated[T]) Len() int { return len(p.pairs) }

// IsEmpty reports whether there are no elements.
func (p Punctuated[T]) IsEmpty() bool { return len(p.pairs) == 0 }

// Pair returns the i-th pair.
func (p Punctuated[T]) Pair(i int) Pair[T] { return p.pairs[i] }

// First returns the first pair.
func (p Punctuated[T]) First() (Pair[T], bool) {
	if len(p.pairs) == 0 {
		return Pair[T]{}, false
	}
	return p.pairs[0], true
}

// Last returns the last pair.
func (p Punctuated[T]) Last() (Pair[T], bool) {
	if len(p.pairs) == 0 {
		return Pair[T]{}, false
	}
	return p.pairs[len(p.pairs)-1], true
}

// Pairs iterates pairs in order.
func (p Punctuated[T]) Pairs() iter.Seq2[int, Pair[T]] {
	return func(yield func(int, Pair[T]) bool) {
		for i, pair := range p.pairs {
			if !yield(i, pair) {
				return
			}
		}
	}
}

// Values iterates the elements in order, skipping separators.
func (p Punctuated[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, pair := range p.pairs {
			if !yield(pair.value) {
				return
			}
		}
	}
}

// Slice copies the elements into a new slice.
func (p Punctuated[T]) Slice() []T {
	out := make([]T, 0, len(p.pairs))
	for _, pair := range p.pairs {
		out = append(out, pair.value)
	}
	return out
}

// Open turns p back into a builder. If the last pair is an End pair its
// value is handed to the caller, who must push it with a separator or
// pass it to Finish to get a valid sequence again.
func (p Punctuated[T]) Open() (b *PunctuatedBuilder[T], last T, hadEnd bool) {
	b = &PunctuatedBuilder[T]{pairs: append([]Pair[T](nil), p.pairs...)}
	if n := len(b.pairs); n > 0 && b.pairs[n-1].IsEnd() {
		last = b.pairs[n-1].value
		b.pairs = b.pairs[:n-1]
		return b, last, true
	}
	return b, last, false
}

func (p Punctuated[T]) appendItems(l *itemList) {
	for _, pair := range p.pairs {
		switch v := any(pair.value).(type) {
		case *token.Reference:
			l.tok(v)
		case Node:
			l.add(v)
		}
		l.tok(pair.punct)
	}
}

// PunctuatedBuilder holds only separated pairs, so whatever it builds
// satisfies the Punctuated invariant.
type PunctuatedBuilder[T any] struct {
	pairs []Pair[T]
}

// NewPunctuatedBuilder returns an empty builder.
func NewPunctuatedBuilder[T any]() *PunctuatedBuilder[T] {
	return &PunctuatedBuilder[T]{}
}

// Push appends v followed by sep. sep must not be nil.
func (b *PunctuatedBuilder[T]) Push(v T, sep *token.Reference) *PunctuatedBuilder[T] {
	if sep == nil {
		panic("ast: PunctuatedBuilder.Push without a separator")
	}
	b.pairs = append(b.pairs, Pair[T]{value: v, punct: sep})
	return b
}

// Len returns the number of pairs pushed so far.
func (b *PunctuatedBuilder[T]) Len() int { return len(b.pairs) }

// Finish closes the sequence with a final End value.
func (b *PunctuatedBuilder[T]) Finish(end T) Punctuated[T] {
	pairs := append(b.pairs, EndPair(end))
	b.pairs = nil
	return Punctuated[T]{pairs: pairs}
}

// Build closes the sequence keeping the trailing separator, if any.
func (b *PunctuatedBuilder[T]) Build() Punctuated[T] {
	pairs := b.pairs
	b.pairs = nil
	return Punctuated[T]{pairs: pairs}
}

// PunctuatedOf builds a comma separated sequence of values using sep for
// every separator. An empty values slice gives an empty sequence.
func PunctuatedOf[T any](sep func() *token.Reference, values ...T) Punctuated[T] {
	if len(values) == 0 {
		return Punctuated[T]{}
	}
	b := NewPunctuatedBuilder[T]()
	for _, v := range values[:len(values)-1] {
		b.Push(v, sep())
	}
	return b.Finish(values[len(values)-1])
}

// MapPunctuated applies f to every element and g to every separator.
func MapPunctuated[T, U any](p Punctuated[T], f func(T) U, g func(*token.Reference) *token.Reference) Punctuated[U] {
	out := Punctuated[U]{pairs: make([]Pair[U], 0, len(p.pairs))}
	for _, pair := range p.pairs {
		v := f(pair.value)
		var sep *token.Reference
		if pair.punct != nil {
			sep = g(pair.punct)
		}
		out.pairs = append(out.pairs, Pair[U]{value: v, punct: sep})
	}
	return out
}
