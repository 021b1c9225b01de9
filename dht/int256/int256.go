// Package int256 implements the 256 bit identifiers used for node ids and content keys.
package int256

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"math/bits"

	"github.com/james-lawrence/discv5/internal/errorsx"
)

// Bits in an identifier.
const Bits = 256

// New hashes b into an identifier.
func New[Y string | []byte](b Y) (ret T) {
	v := sha256.Sum256([]byte(b))
	copy(ret.bits[:], v[:])
	return
}

func Random() (id T) {
	n, err := rand.Read(id.bits[:])
	if err != nil {
		panic(err)
	}
	if n < len(id.bits[:]) {
		panic(io.ErrShortWrite)
	}

	return id
}

func Zero() (id T) {
	return id
}

// CmpTo compares a and b by their distance to target.
// returns -1 if a is closer to target.
// return 0 if they are equal distance.
// return 1 if b is closer to target.
func CmpTo(target T, a T, b T) int {
	return target.Distance(a).Cmp(target.Distance(b))
}

// T is a big endian 256 bit identifier.
type T struct {
	bits [32]uint8
}

func (me T) String() string {
	return hex.EncodeToString(me.bits[:])
}

func (me T) Bytes() []byte {
	return me.bits[:]
}

// LeadingZeros counts the zero bits before the most significant set bit.
func (me T) LeadingZeros() int {
	for i, b := range me.bits {
		if b != 0 {
			return i*8 + bits.LeadingZeros8(b)
		}
	}
	return Bits
}

// BitLen is the position of the most significant set bit, 0 for the zero id.
func (me T) BitLen() int {
	return Bits - me.LeadingZeros()
}

func (me *T) SetBit(index int, val bool) {
	var orVal uint8
	if val {
		orVal = 1 << (7 - index%8)
	}
	var mask uint8 = ^(1 << (7 - index%8))
	me.bits[index/8] = me.bits[index/8]&mask | orVal
}

func (me T) GetBit(index int) bool {
	return me.bits[index/8]>>(7-index%8)&1 == 1
}

func (l T) Cmp(r T) int {
	return bytes.Compare(l.bits[:], r.bits[:])
}

func (l T) Equal(r T) bool {
	return l == r
}

func (me T) IsZero() bool {
	return me == T{}
}

func (me *T) Xor(a, b *T) *T {
	for i := range me.bits {
		me.bits[i] = a.bits[i] ^ b.bits[i]
	}

	return me
}

// Distance in the XOR metric.
func (a T) Distance(b T) (ret T) {
	ret.Xor(&a, &b)
	return
}

func FromBytes(b []byte) (ret T, err error) {
	if len(b) != len(ret.bits) {
		return ret, errorsx.Errorf("invalid identifier length %d, expected %d", len(b), len(ret.bits))
	}
	copy(ret.bits[:], b)
	return ret, nil
}

func FromByteArray(b [32]byte) (ret T) {
	ret.bits = b
	return ret
}
