package digest

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"golang.org/x/crypto/blake2b"

	"chartleap/internal/domain"
)

// Fingerprint returns a short hex digest of a trace.
//
// It hashes the kind, display metadata and the IEEE-754 bits of every
// sample with BLAKE2b-256 and truncates to 10 bytes (20 hex chars). All
// NaNs hash alike, so two runs over the same input always agree.
func Fingerprint(t domain.Trace) string {
	h := newHash()
	writeString(h, string(t.Kind()))
	m := t.Meta()
	writeString(h, m.Name)
	writeString(h, m.Color)
	writeFloat(h, m.Width)
	writeString(h, m.Category.String())

	switch v := t.(type) {
	case *domain.LineTrace:
		writeSamples(h, v.X)
		writeSamples(h, v.Y)
	case *domain.FieldTrace:
		writeSamples(h, v.XGrid)
		writeSamples(h, v.YGrid)
		writeUint(h, uint64(len(v.Z)))
		for _, row := range v.Z {
			writeSamples(h, row)
		}
		c := v.Contours
		writeString(h, c.Coloring)
		writeFloat(h, c.Start)
		writeFloat(h, c.End)
		writeFloat(h, c.Size)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}

func writeUint(h hash.Hash, n uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	h.Write(b[:])
}

func writeString(h hash.Hash, s string) {
	writeUint(h, uint64(len(s)))
	h.Write([]byte(s))
}

func writeFloat(h hash.Hash, f float64) {
	if math.IsNaN(f) {
		f = math.NaN()
	}
	writeUint(h, math.Float64bits(f))
}

func writeSamples(h hash.Hash, s domain.Samples) {
	writeUint(h, uint64(len(s)))
	for _, f := range s {
		writeFloat(h, f)
	}
}

// newHash returns an unkeyed BLAKE2b-256. blake2b.New256 only fails for
// keys longer than 64 bytes, so an error here is a programming bug.
func newHash() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("digest: blake2b: " + err.Error())
	}
	return h
}
