package mbus_test

import (
	"testing"

	"github.com/mbus-go/mbus"
	"github.com/mbus-go/mbus/frame"
	"github.com/mbus-go/mbus/vib"
	"github.com/stretchr/testify/require"
)

func longFrameS5() []byte {
	return []byte{
		0x68, 0x3C, 0x3C, 0x68, 0x08, 0x08, 0x72, 0x78, 0x03, 0x49, 0x11, 0x77, 0x04, 0x0E, 0x16,
		0x0A, 0x00, 0x00, 0x00, 0x0C, 0x78, 0x78, 0x03, 0x49, 0x11, 0x04, 0x13, 0x31, 0xD4, 0x00,
		0x00, 0x42, 0x6C, 0x00, 0x00, 0x44, 0x13, 0x00, 0x00, 0x00, 0x00, 0x04, 0x6D, 0x0B, 0x0B,
		0xCD, 0x13, 0x02, 0x27, 0x00, 0x00, 0x09, 0xFD, 0x0E, 0x02, 0x09, 0xFD, 0x0F, 0x06, 0x0F,
		0x00, 0x01, 0x75, 0x13, 0xD3, 0x16,
	}
}

func TestDecodeLongFrameS5(t *testing.T) {
	telegram, err := mbus.Decode(longFrameS5())
	require.NoError(t, err)
	require.Equal(t, frame.KindLong, telegram.Frame.Kind)

	require.Equal(t, uint32(11490378), telegram.Header.Identification)
	require.Equal(t, byte(0x0E), telegram.Header.Version)

	require.NotEmpty(t, telegram.Stream.Records)
	require.False(t, telegram.Stream.MoreFollows)
	require.Equal(t, []byte{0x00, 0x01, 0x75, 0x13}, telegram.Stream.ManufacturerTail)

	first := telegram.Stream.Records[0]
	require.Equal(t, vib.QuantityIdentificationNumber, first.Quantity)
	require.Equal(t, 11490378.0, first.Value)

	volume := telegram.Stream.Records[1]
	require.Equal(t, vib.QuantityVolume, volume.Quantity)
	require.Equal(t, vib.UnitCubicMeter, volume.Units.At(0).Name)
	require.Equal(t, 54321.0, volume.Value)
}

func TestDecodeChecksumCorruptionS6(t *testing.T) {
	data := longFrameS5()
	data[10] ^= 0xFF

	_, err := mbus.Decode(data)
	require.Error(t, err)
}

func TestDecodeSingleCharacterAck(t *testing.T) {
	telegram, err := mbus.Decode([]byte{0xE5})
	require.NoError(t, err)
	require.Equal(t, frame.KindSingleCharacter, telegram.Frame.Kind)
	require.Empty(t, telegram.Stream.Records)
}

func TestDecodeShortFrameHasNoStream(t *testing.T) {
	// C=0x08 (RspUd, acd=0, dfc=0), A=0x08, CS=C+A=0x10
	telegram, err := mbus.Decode([]byte{0x10, 0x08, 0x08, 0x10, 0x16})
	require.NoError(t, err)
	require.Equal(t, frame.KindShort, telegram.Frame.Kind)
	require.Empty(t, telegram.Stream.Records)
}
