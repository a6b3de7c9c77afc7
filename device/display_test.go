package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pendant/fixedpoint"
	"pendant/protocol"
	"pendant/transport"
)

func TestSendDisplayWritesThreeBlocks(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, testOptions())

	frame := protocol.DisplayFrame{
		JogMode:     protocol.JogStep,
		Coordinate:  protocol.CoordinatePrimary,
		Axis1:       12.5,
		Axis2:       -3.0001,
		FeedRate:    250,
		SpindleRate: 8000,
	}
	require.NoError(t, d.SendDisplay(frame))

	writes := tr.written()
	require.Len(t, writes, 3)

	var payload []byte
	for _, block := range writes {
		require.Len(t, block, transport.BlockSize)
		assert.EqualValues(t, protocol.DisplayReportID, block[0])
		payload = append(payload, block[1:]...)
	}

	expected, err := protocol.EncodeDisplay(frame)
	require.NoError(t, err)
	assert.Equal(t, expected, payload)
}

func TestSendDisplayAbortsOnBlockFailure(t *testing.T) {
	tr := newFakeTransport()
	tr.failWrite = 2

	d := New(tr, testOptions())
	err := d.SendDisplay(protocol.DisplayFrame{Axis1: 1})
	require.Error(t, err)

	// The first block went through, the second failed and the third
	// was never attempted.
	assert.Len(t, tr.written(), 1)
	assert.Equal(t, 2, tr.attempts)
}

func TestSendDisplayRejectsOutOfRangeAxis(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, testOptions())

	err := d.SendDisplay(protocol.DisplayFrame{Axis3: -70000})
	assert.ErrorIs(t, err, fixedpoint.ErrOutOfRange)
	assert.Empty(t, tr.written(), "blocks written despite encoding failure")
}

func TestSendDisplayRequiresOpenTransport(t *testing.T) {
	tr := newFakeTransport()
	require.NoError(t, tr.Close())

	d := New(tr, testOptions())
	assert.ErrorIs(t, d.SendDisplay(protocol.DisplayFrame{}), transport.ErrClosed)
}

// Clearing sends the blank frame twice; the hardware misses a single
// write often enough that the double send is load-bearing.
func TestClearDisplaySendsBlankFrameTwice(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, testOptions())

	require.NoError(t, d.ClearDisplay())

	writes := tr.written()
	require.Len(t, writes, 6)

	// payload[3] (the control byte) lands at offset 4 of the first
	// block; the blank frame carries JogNone and the primary
	// coordinate bit clear.
	for _, first := range [][]byte{writes[0], writes[3]} {
		assert.EqualValues(t, protocol.JogNone, first[4])
	}
	assert.Equal(t, writes[0], writes[3], "the two clear frames differ")
}
