package region

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
)

// StrHeaderSize is the number of bytes the length prefix of a Str record
// occupies inside the region.
const StrHeaderSize = 8

// ErrNilStr is returned when an operation is invoked on an absent record.
var ErrNilStr = errors.New("region: nil string record")

// Str is a length-prefixed byte record stored inside a region: an 8-byte
// little-endian length followed by exactly that many payload bytes, no
// terminator. A Str is a view; the region's cursor governs its validity.
type Str struct {
	rec []byte // length prefix + payload, carved from the region
}

// PushStr stores s as one record in the region and returns a view of it.
func (r *Region) PushStr(s string) (*Str, error) {
	rec, err := r.pushRecord(uint64(len(s)))
	if err != nil {
		return nil, err
	}
	copy(rec[StrHeaderSize:], s)
	return &Str{rec: rec}, nil
}

// PushStrBytes stores b as one record in the region and returns a view of
// it. A nil slice stores an empty record.
func (r *Region) PushStrBytes(b []byte) (*Str, error) {
	rec, err := r.pushRecord(uint64(len(b)))
	if err != nil {
		return nil, err
	}
	copy(rec[StrHeaderSize:], b)
	return &Str{rec: rec}, nil
}

func (r *Region) pushRecord(n uint64) ([]byte, error) {
	if r == nil {
		return nil, ErrNilRegion
	}
	if n > math.MaxUint64-StrHeaderSize {
		return nil, ErrSizeOverflow
	}
	rec, err := r.Push(StrHeaderSize + n)
	if err != nil {
		return nil, err
	}
	binary.LittleEndian.PutUint64(rec[:StrHeaderSize], n)
	return rec, nil
}

// PopStr retracts exactly the record's header plus payload from the region.
// The record must be the most recent still-live allocation; popping it out
// of order corrupts unrelated data (LIFO discipline, not detected). The Str
// is invalidated.
func (r *Region) PopStr(s *Str) error {
	if s == nil || s.rec == nil {
		return ErrNilStr
	}
	if err := r.Pop(StrHeaderSize + s.Len()); err != nil {
		return err
	}
	s.rec = nil
	return nil
}

// Len returns the stored payload length. Zero for an absent record.
func (s *Str) Len() uint64 {
	if s == nil || s.rec == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(s.rec[:StrHeaderSize])
}

// Bytes returns the payload bytes, valid while the record is live.
func (s *Str) Bytes() []byte {
	if s == nil || s.rec == nil {
		return nil
	}
	return s.rec[StrHeaderSize:]
}

// String returns a copy of the payload.
func (s *Str) String() string {
	return string(s.Bytes())
}

// WriteTo streams the payload to w, retrying on partial writes until all
// bytes are written or the sink fails. A nil w writes to standard output.
// The returned count is the actual progress; a truncated flush reports the
// sink's error, or io.ErrShortWrite when the sink makes no progress without
// reporting one.
func (s *Str) WriteTo(w io.Writer) (int64, error) {
	if s == nil || s.rec == nil {
		return 0, ErrNilStr
	}
	if w == nil {
		w = os.Stdout
	}

	payload := s.rec[StrHeaderSize:]
	var total int64
	for total < int64(len(payload)) {
		n, err := w.Write(payload[total:])
		if n > 0 {
			total += int64(n)
		}
		if err != nil {
			return total, err
		}
		if n <= 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// Flush is WriteTo with the outcome discarded, for callers that treat the
// sink as best-effort. A no-op on an absent record.
func (s *Str) Flush(w io.Writer) {
	_, _ = s.WriteTo(w)
}
