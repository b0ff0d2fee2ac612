package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingPongRoundTrip(t *testing.T) {
	frame := EncodePing(PingMessage{Timestamp: 123.456})
	assert.LessOrEqual(t, len(frame), MaxMessageSize)

	length, id, err := DecodeHeader(frame)
	require.NoError(t, err)
	assert.Equal(t, len(frame), length)
	assert.Equal(t, MessagePing, id)

	decoded, err := DecodePing(frame)
	require.NoError(t, err)
	assert.Equal(t, 123.456, decoded.Timestamp)

	pongFrame := EncodePong(PongMessage{Timestamp: 789})
	decodedPong, err := DecodePong(pongFrame)
	require.NoError(t, err)
	assert.Equal(t, 789.0, decodedPong.Timestamp)
}

func TestWatchdogRoundTrip(t *testing.T) {
	frame := EncodeWatchdog(WatchdogMessage{Enabled: true, TimeoutSeconds: 2.5})
	_, id, err := DecodeHeader(frame)
	require.NoError(t, err)
	assert.Equal(t, MessageWatchdog, id)

	decoded, err := DecodeWatchdog(frame)
	require.NoError(t, err)
	assert.True(t, decoded.Enabled)
	assert.Equal(t, 2.5, decoded.TimeoutSeconds)
}

func TestPWMRoundTrip(t *testing.T) {
	frame := EncodePWM(PWMMessage{FrequencyHz: 20000})
	decoded, err := DecodePWM(frame)
	require.NoError(t, err)
	assert.Equal(t, uint16(20000), decoded.FrequencyHz)
}

func TestMotorThrottleClamping(t *testing.T) {
	frame := EncodeMotor(MotorMessage{LeftThrottle: 2.0, RightThrottle: -5.0})
	decoded, err := DecodeMotor(frame)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), decoded.LeftThrottle)
	assert.Equal(t, float32(-1.0), decoded.RightThrottle)
}

func TestEveryFrameFitsWithinMaxMessageSize(t *testing.T) {
	frames := [][]byte{
		EncodePing(PingMessage{}),
		EncodePong(PongMessage{}),
		EncodeWatchdog(WatchdogMessage{}),
		EncodePWM(PWMMessage{}),
		EncodeMotor(MotorMessage{}),
	}
	for _, f := range frames {
		assert.LessOrEqual(t, len(f), MaxMessageSize)
		assert.Equal(t, int(f[0]), len(f))
	}
}

func TestDecodeHeaderRejectsShortFrame(t *testing.T) {
	_, _, err := DecodeHeader([]byte{0x01})
	assert.Error(t, err)
}
