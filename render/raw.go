// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mandelcalc/matrix"
	"github.com/klauspost/compress/zstd"
)

// Raw dump layout (inside a single zstd frame, all integers little-endian):
//
//	magic   [4]byte  "MNDL"
//	version uint32   rawVersion
//	rows    uint32
//	cols    uint32
//	limit   int32
//	body    rows*cols int32, row-major
const rawVersion uint32 = 1

var rawMagic = [4]byte{'M', 'N', 'D', 'L'}

// maxRawCells bounds the allocation a dump header may request.
const maxRawCells = 1 << 30

type rawHeader struct {
	Magic   [4]byte
	Version uint32
	Rows    uint32
	Cols    uint32
	Limit   int32
}

// WriteRaw streams m to w as a zstd-compressed raw dump.
// Errors: matrix.ErrNilMatrix, ErrInvalidLimit, matrix.ErrValueOutOfRange, I/O errors.
func WriteRaw(w io.Writer, m *matrix.Dense, limit int32) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteRaw: %w", err)
	}
	if limit <= 0 {
		return fmt.Errorf("WriteRaw: %w", ErrInvalidLimit)
	}
	if err := matrix.ValidateRange(m, 0, limit); err != nil {
		return fmt.Errorf("WriteRaw: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("WriteRaw: zstd encode: %w", err)
	}
	hdr := rawHeader{
		Magic:   rawMagic,
		Version: rawVersion,
		Rows:    uint32(m.Rows()),
		Cols:    uint32(m.Cols()),
		Limit:   limit,
	}
	if err = binary.Write(enc, binary.LittleEndian, &hdr); err == nil {
		err = binary.Write(enc, binary.LittleEndian, m.Data())
	}
	if err != nil {
		_ = enc.Close()
		return fmt.Errorf("WriteRaw: %w", err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("WriteRaw: zstd encode: %w", err)
	}

	return nil
}

// ReadRaw decodes a dump written by WriteRaw and returns the matrix and its limit.
// Errors: ErrBadDump (wrong magic or version, empty or oversized shape,
// truncated body, entries outside [0, limit]), zstd decode errors.
func ReadRaw(r io.Reader) (*matrix.Dense, int32, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("ReadRaw: zstd decode: %w", err)
	}
	defer dec.Close()

	var hdr rawHeader
	if err = binary.Read(dec, binary.LittleEndian, &hdr); err != nil {
		return nil, 0, fmt.Errorf("ReadRaw: header: %w", badDump(err))
	}
	switch {
	case hdr.Magic != rawMagic:
		return nil, 0, fmt.Errorf("ReadRaw: magic %q: %w", hdr.Magic[:], ErrBadDump)
	case hdr.Version != rawVersion:
		return nil, 0, fmt.Errorf("ReadRaw: version %d: %w", hdr.Version, ErrBadDump)
	case hdr.Rows == 0 || hdr.Cols == 0 || uint64(hdr.Rows)*uint64(hdr.Cols) > maxRawCells:
		return nil, 0, fmt.Errorf("ReadRaw: shape %dx%d: %w", hdr.Rows, hdr.Cols, ErrBadDump)
	case hdr.Limit <= 0:
		return nil, 0, fmt.Errorf("ReadRaw: limit %d: %w", hdr.Limit, ErrBadDump)
	}

	m, err := matrix.NewDense(int(hdr.Rows), int(hdr.Cols))
	if err != nil {
		return nil, 0, fmt.Errorf("ReadRaw: %w", err)
	}
	if err = binary.Read(dec, binary.LittleEndian, m.Data()); err != nil {
		return nil, 0, fmt.Errorf("ReadRaw: body: %w", badDump(err))
	}
	if err = matrix.ValidateRange(m, 0, hdr.Limit); err != nil {
		return nil, 0, fmt.Errorf("ReadRaw: %w: %w", ErrBadDump, err)
	}

	return m, hdr.Limit, nil
}

// badDump maps short reads onto ErrBadDump and passes other errors through.
func badDump(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrBadDump, err)
	}

	return err
}
