package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityIsMultiplicativeIdentity(t *testing.T) {
	id := Identity()
	for _, v := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
		require.Equal(t, v, id.MulVector(v))
	}
}

func TestZeroOperatorOfZeroBytesIsIdentity(t *testing.T) {
	require.Equal(t, Identity(), ZeroOperator(0))
}

func TestSquareMatchesDoubleApplication(t *testing.T) {
	g := Generator()
	sq := g.Square()
	for _, v := range []uint32{1, 0x1234, 0xFFFFFFFF} {
		want := g.MulVector(g.MulVector(v))
		require.Equal(t, want, sq.MulVector(v))
	}
}

func TestComposeAppliesRightOperandFirst(t *testing.T) {
	g := Generator()
	sq := g.Square()

	composed := g.Compose(&sq) // g after sq
	for _, v := range []uint32{1, 0x1234, 0xFFFFFFFF} {
		want := g.MulVector(sq.MulVector(v))
		require.Equal(t, want, composed.MulVector(v))
	}
}

// ZeroOperator(n) applies G once per zero bit (8*n of them), so applying
// G 8*n times by hand must agree with the closed-form matrix for small n.
func TestZeroOperatorMatchesRepeatedGenerator(t *testing.T) {
	g := Generator()
	for _, n := range []uint64{1, 2, 3, 5, 8, 13} {
		op := ZeroOperator(n)
		for _, v := range []uint32{1, 0xABCD1234} {
			want := v
			for i := uint64(0); i < n*8; i++ {
				want = g.MulVector(want)
			}
			require.Equalf(t, want, op.MulVector(v), "n=%d v=%#x", n, v)
		}
	}
}

func TestZeroOperatorIsConsistentUnderComposition(t *testing.T) {
	// Advancing by a+b zero bytes must equal advancing by a, then by b.
	a, b := uint64(37), uint64(91)
	combined := ZeroOperator(a + b)

	opA := ZeroOperator(a)
	opB := ZeroOperator(b)
	composed := opB.Compose(&opA) // apply opA first, then opB

	require.Equal(t, combined, composed)
}
