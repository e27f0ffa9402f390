package crc32c

import "io"

// Reader wraps an io.Reader, tracking a running CRC-32C checksum of every
// byte actually read through it.
type Reader struct {
	r   io.Reader
	crc uint32
}

// NewReader wraps r, starting the checksum from zero.
func NewReader(r io.Reader) *Reader {
	return NewReaderWithSeed(r, 0)
}

// NewReaderWithSeed wraps r, starting the checksum from seed (typically
// the checksum of a stream this one continues).
func NewReaderWithSeed(r io.Reader, seed uint32) *Reader {
	return &Reader{r: r, crc: seed}
}

// Read pulls from the inner reader into p, then folds the bytes it
// actually reported reading into the running checksum — even on a short
// read or a non-nil error, so the checksum always reflects exactly the
// bytes that crossed the boundary.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.crc = Append(r.crc, p[:n])
	}
	return n, err
}

// Checksum returns the CRC-32C of all bytes read so far.
func (r *Reader) Checksum() uint32 { return r.crc }

// Unwrap returns the inner reader.
func (r *Reader) Unwrap() io.Reader { return r.r }
