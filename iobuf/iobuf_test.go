package iobuf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sam0x17/lencode/errs"
	"github.com/stretchr/testify/require"
)

func TestSliceSink(t *testing.T) {
	s := NewSliceSink(4)
	require.NoError(t, s.WriteAll([]byte("ab")))
	require.NoError(t, s.WriteAll([]byte("cd")))
	require.Equal(t, []byte("abcd"), s.Bytes())
	require.Equal(t, 4, s.Len())

	s.Reset()
	require.Equal(t, 0, s.Len())
}

func TestFixedSink(t *testing.T) {
	buf := make([]byte, 4)
	s := NewFixedSink(buf)
	require.NoError(t, s.WriteAll([]byte("ab")))
	require.NoError(t, s.WriteAll([]byte("cd")))
	require.Equal(t, []byte("abcd"), s.Bytes())

	err := s.WriteAll([]byte("x"))
	require.ErrorIs(t, err, errs.ErrWriterOutOfSpace)
}

func TestSliceSource(t *testing.T) {
	s := NewSliceSource([]byte("hello"))
	b, err := s.ReadExact(2)
	require.NoError(t, err)
	require.Equal(t, []byte("he"), b)
	require.Equal(t, 3, s.Remaining())
	require.Equal(t, 2, s.Pos())

	b, err = s.ReadExact(3)
	require.NoError(t, err)
	require.Equal(t, []byte("llo"), b)

	_, err = s.ReadExact(1)
	require.ErrorIs(t, err, errs.ErrReaderOutOfData)
}

func TestPooledSink(t *testing.T) {
	s := NewPooledSink()
	require.NoError(t, s.WriteAll([]byte("hi")))
	require.Equal(t, []byte("hi"), s.Bytes())
	require.Equal(t, 2, s.Len())
	s.Release()
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	require.NoError(t, s.WriteAll([]byte("data")))
	require.Equal(t, "data", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("boom") }

func TestWriterSink_Error(t *testing.T) {
	s := NewWriterSink(failingWriter{})
	err := s.WriteAll([]byte("x"))
	require.ErrorIs(t, err, errs.ErrWriterOutOfSpace)
}

func TestReaderSource(t *testing.T) {
	s := NewReaderSource(bytes.NewReader([]byte("hello")))
	b, err := s.ReadExact(5)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)

	_, err = s.ReadExact(1)
	require.ErrorIs(t, err, errs.ErrReaderOutOfData)
}
