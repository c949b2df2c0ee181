package lencode

import "github.com/sam0x17/lencode/iobuf"

// Tuples compose like records: field encodings concatenated, no length
// prefix. This package hand-writes the small arities actually exercised by
// its own tests and users; each further arity is a handful of lines
// following an identical pattern.

// Tuple2 is a 2-element tuple (T1, T2).
type Tuple2[A, B any] struct {
	A A
	B B
}

func EncodeTuple2[A, B any](sink iobuf.Sink, v Tuple2[A, B], encA func(iobuf.Sink, A) error, encB func(iobuf.Sink, B) error) error {
	if err := encA(sink, v.A); err != nil {
		return err
	}

	return encB(sink, v.B)
}

func DecodeTuple2[A, B any](src iobuf.Source, decA func(iobuf.Source) (A, error), decB func(iobuf.Source) (B, error)) (Tuple2[A, B], error) {
	var out Tuple2[A, B]

	a, err := decA(src)
	if err != nil {
		return out, err
	}

	b, err := decB(src)
	if err != nil {
		return out, err
	}

	out.A, out.B = a, b

	return out, nil
}

// Tuple3 is a 3-element tuple (T1, T2, T3).
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

func EncodeTuple3[A, B, C any](sink iobuf.Sink, v Tuple3[A, B, C], encA func(iobuf.Sink, A) error, encB func(iobuf.Sink, B) error, encC func(iobuf.Sink, C) error) error {
	if err := encA(sink, v.A); err != nil {
		return err
	}

	if err := encB(sink, v.B); err != nil {
		return err
	}

	return encC(sink, v.C)
}

func DecodeTuple3[A, B, C any](src iobuf.Source, decA func(iobuf.Source) (A, error), decB func(iobuf.Source) (B, error), decC func(iobuf.Source) (C, error)) (Tuple3[A, B, C], error) {
	var out Tuple3[A, B, C]

	a, err := decA(src)
	if err != nil {
		return out, err
	}

	b, err := decB(src)
	if err != nil {
		return out, err
	}

	c, err := decC(src)
	if err != nil {
		return out, err
	}

	out.A, out.B, out.C = a, b, c

	return out, nil
}

// Tuple4 is a 4-element tuple (T1, T2, T3, T4).
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

func EncodeTuple4[A, B, C, D any](sink iobuf.Sink, v Tuple4[A, B, C, D], encA func(iobuf.Sink, A) error, encB func(iobuf.Sink, B) error, encC func(iobuf.Sink, C) error, encD func(iobuf.Sink, D) error) error {
	if err := encA(sink, v.A); err != nil {
		return err
	}

	if err := encB(sink, v.B); err != nil {
		return err
	}

	if err := encC(sink, v.C); err != nil {
		return err
	}

	return encD(sink, v.D)
}

func DecodeTuple4[A, B, C, D any](src iobuf.Source, decA func(iobuf.Source) (A, error), decB func(iobuf.Source) (B, error), decC func(iobuf.Source) (C, error), decD func(iobuf.Source) (D, error)) (Tuple4[A, B, C, D], error) {
	var out Tuple4[A, B, C, D]

	a, err := decA(src)
	if err != nil {
		return out, err
	}

	b, err := decB(src)
	if err != nil {
		return out, err
	}

	c, err := decC(src)
	if err != nil {
		return out, err
	}

	d, err := decD(src)
	if err != nil {
		return out, err
	}

	out.A, out.B, out.C, out.D = a, b, c, d

	return out, nil
}
