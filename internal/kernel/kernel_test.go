package kernel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendDispatchesToSoftwareWhenNoHardware(t *testing.T) {
	if HasHardware() {
		t.Skip("process has hardware CRC-32C support; see TestHardwareAgreesWithSoftware")
	}
	rng := rand.New(rand.NewSource(21))
	data := make([]byte, 4096)
	rng.Read(data)
	require.Equal(t, SoftwareChecksum(0, data), Append(0, data))
}

// TestHardwareAgreesWithSoftware checks the hardware and software kernels
// produce identical results across the lengths that exercise every phase
// boundary of the three-way parallel loop: sub-word, mid-block, and the
// three block-multiple boundaries (LONG=8192, SHORT=256).
func TestHardwareAgreesWithSoftware(t *testing.T) {
	if !HasHardware() {
		t.Skip("no hardware CRC-32C instruction available on this platform")
	}

	lengths := []int{
		0, 1, 3, 7, 8, 9, 15, 16, 17,
		255, 256, 257,
		3*256 - 1, 3 * 256, 3*256 + 1,
		8191, 8192, 8193,
		3*8192 - 1, 3 * 8192, 3*8192 + 1,
		3*8192 + 3*256 + 13,
	}

	rng := rand.New(rand.NewSource(99))
	for _, n := range lengths {
		data := make([]byte, n)
		rng.Read(data)

		for _, seed := range []uint32{0, 0xFFFFFFFF, 0xA5A5A5A5} {
			want := SoftwareChecksum(seed, data)
			got := HardwareChecksum(seed, data)
			require.Equalf(t, want, got, "length=%d seed=%#x", n, seed)
		}
	}
}

func TestAppendTotalOverEmptyInput(t *testing.T) {
	for _, seed := range []uint32{0, 1, 0xFFFFFFFF} {
		require.Equal(t, seed, Append(seed, nil))
		require.Equal(t, seed, Append(seed, []byte{}))
	}
}
