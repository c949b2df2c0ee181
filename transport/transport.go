// Package transport adds an optional whole-stream compression wrapper
// around an already-encoded lencode stream. It sits outside the wire format
// itself: the core Encode/Decode surface never varies by algorithm (the
// flagged byte/string header always hardcodes zstd), but a caller shipping
// a large encoded blob over a slow link can choose a faster or more
// aggressive algorithm for the whole payload at once.
//
// The wrapper format is a single byte (compress.Algorithm), a varint
// uncompressed-length hint, a varint compressed body length, then the body
// itself:
//
//	[algorithm:1][raw_len:varint][body_len:varint][body:body_len bytes]
//
// raw_len declares the uncompressed payload length; Unwrap verifies the
// decompressed output against it and fails with InvalidData on mismatch.
// body_len is what lets Unwrap read exactly the compressed body from a
// Source that exposes no other notion of "how much is left".
package transport

import (
	"github.com/sam0x17/lencode/compress"
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/iobuf"
	"github.com/sam0x17/lencode/varint"
)

// Wrap compresses payload with algo and writes the transport-wrapped form
// to sink.
func Wrap(sink iobuf.Sink, algo compress.Algorithm, payload []byte) error {
	codec, err := compress.GetCodec(algo)
	if err != nil {
		return errs.Invalid("transport: %v", err)
	}

	body, err := codec.Compress(payload)
	if err != nil {
		return errs.Other("transport: %s compression failed: %v", algo, err)
	}

	if err := sink.WriteAll([]byte{byte(algo)}); err != nil {
		return err
	}

	if err := varint.EncodeUvarint64(sink, uint64(len(payload))); err != nil {
		return err
	}

	if err := varint.EncodeUvarint64(sink, uint64(len(body))); err != nil {
		return err
	}

	return sink.WriteAll(body)
}

// Unwrap reads a transport-wrapped stream from src and returns the
// decompressed payload.
func Unwrap(src iobuf.Source) ([]byte, error) {
	tag, err := src.ReadExact(1)
	if err != nil {
		return nil, err
	}

	algo := compress.Algorithm(tag[0])

	codec, err := compress.GetCodec(algo)
	if err != nil {
		return nil, errs.Invalid("transport: %v", err)
	}

	rawLen, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	bodyLen, err := varint.DecodeUvarint64(src)
	if err != nil {
		return nil, err
	}

	body, err := src.ReadExact(int(bodyLen))
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, errs.Invalid("transport: %s decompression failed: %v", algo, err)
	}

	if uint64(len(payload)) != rawLen {
		return nil, errs.Invalid("transport: decompressed %d bytes, header declared %d", len(payload), rawLen)
	}

	return payload, nil
}
