// Package transport implements the packed little-endian wire message framing
// exchanged with the robot's firmware (spec §6), and a thin wrapper around
// the serial link those messages travel over.
package transport

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// MessageID identifies the kind of record a frame carries. Values are fixed
// by the firmware's wire protocol: new kinds are appended, never reordered,
// and a retired kind's ID is never reused.
type MessageID uint8

const (
	MessagePing     MessageID = 0x01
	MessagePong     MessageID = 0x02
	MessageWatchdog MessageID = 0x03
	MessagePWM      MessageID = 0x04
	MessageMotor    MessageID = 0x10
)

// MaxMessageSize is the largest permitted encoded record, firmware side
// buffers are sized to this bound.
const MaxMessageSize = 256

// Every record's first byte is its total length in bytes (including this
// header) and its second byte is the MessageID.
const headerSize = 2

// PingMessage and PongMessage carry a timestamp, in seconds, round-tripped
// by the peer to measure link latency.
type PingMessage struct {
	Timestamp float64
}

type PongMessage struct {
	Timestamp float64
}

// WatchdogMessage (re)configures the firmware's dead-man's switch: if
// Enabled and no message arrives within TimeoutSeconds, the firmware must
// stop the motors.
type WatchdogMessage struct {
	Enabled        bool
	TimeoutSeconds float64
}

// PWMMessage sets the motor driver's PWM frequency, in Hz.
type PWMMessage struct {
	FrequencyHz uint16
}

// MotorMessage directly commands the left/right motor throttles, each
// clamped to [-1, 1].
type MotorMessage struct {
	LeftThrottle  float32
	RightThrottle float32
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EncodePing encodes a PingMessage frame.
func EncodePing(m PingMessage) []byte {
	buf := make([]byte, headerSize+8)
	buf[0] = byte(len(buf))
	buf[1] = byte(MessagePing)
	binary.LittleEndian.PutUint64(buf[headerSize:], floatBits(m.Timestamp))
	return buf
}

// EncodePong encodes a PongMessage frame.
func EncodePong(m PongMessage) []byte {
	buf := make([]byte, headerSize+8)
	buf[0] = byte(len(buf))
	buf[1] = byte(MessagePong)
	binary.LittleEndian.PutUint64(buf[headerSize:], floatBits(m.Timestamp))
	return buf
}

// EncodeWatchdog encodes a WatchdogMessage frame.
func EncodeWatchdog(m WatchdogMessage) []byte {
	buf := make([]byte, headerSize+1+8)
	buf[0] = byte(len(buf))
	buf[1] = byte(MessageWatchdog)
	if m.Enabled {
		buf[headerSize] = 1
	}
	binary.LittleEndian.PutUint64(buf[headerSize+1:], floatBits(m.TimeoutSeconds))
	return buf
}

// EncodePWM encodes a PWMMessage frame.
func EncodePWM(m PWMMessage) []byte {
	buf := make([]byte, headerSize+2)
	buf[0] = byte(len(buf))
	buf[1] = byte(MessagePWM)
	binary.LittleEndian.PutUint16(buf[headerSize:], m.FrequencyHz)
	return buf
}

// EncodeMotor encodes a MotorMessage frame, clamping both throttles to
// [-1, 1] before writing them.
func EncodeMotor(m MotorMessage) []byte {
	left := clamp32(m.LeftThrottle, -1, 1)
	right := clamp32(m.RightThrottle, -1, 1)

	buf := make([]byte, headerSize+8)
	buf[0] = byte(len(buf))
	buf[1] = byte(MessageMotor)
	binary.LittleEndian.PutUint32(buf[headerSize:], float32bits(left))
	binary.LittleEndian.PutUint32(buf[headerSize+4:], float32bits(right))
	return buf
}

// DecodeHeader reads the length and MessageID from the start of frame,
// without validating the payload. Returns an error if frame is shorter than
// a header or declares a length outside [headerSize, MaxMessageSize].
func DecodeHeader(frame []byte) (length int, id MessageID, err error) {
	if len(frame) < headerSize {
		return 0, 0, errors.New("transport: frame shorter than header")
	}
	length = int(frame[0])
	if length < headerSize || length > MaxMessageSize {
		return 0, 0, errors.Errorf("transport: invalid frame length %d", length)
	}
	return length, MessageID(frame[1]), nil
}

// DecodePing decodes a PingMessage payload. frame must be exactly the
// length its header declares.
func DecodePing(frame []byte) (PingMessage, error) {
	if len(frame) != headerSize+8 {
		return PingMessage{}, errors.New("transport: malformed ping frame")
	}
	return PingMessage{Timestamp: bitsToFloat(binary.LittleEndian.Uint64(frame[headerSize:]))}, nil
}

// DecodePong decodes a PongMessage payload.
func DecodePong(frame []byte) (PongMessage, error) {
	if len(frame) != headerSize+8 {
		return PongMessage{}, errors.New("transport: malformed pong frame")
	}
	return PongMessage{Timestamp: bitsToFloat(binary.LittleEndian.Uint64(frame[headerSize:]))}, nil
}

// DecodeWatchdog decodes a WatchdogMessage payload.
func DecodeWatchdog(frame []byte) (WatchdogMessage, error) {
	if len(frame) != headerSize+1+8 {
		return WatchdogMessage{}, errors.New("transport: malformed watchdog frame")
	}
	return WatchdogMessage{
		Enabled:        frame[headerSize] != 0,
		TimeoutSeconds: bitsToFloat(binary.LittleEndian.Uint64(frame[headerSize+1:])),
	}, nil
}

// DecodePWM decodes a PWMMessage payload.
func DecodePWM(frame []byte) (PWMMessage, error) {
	if len(frame) != headerSize+2 {
		return PWMMessage{}, errors.New("transport: malformed PWM frame")
	}
	return PWMMessage{FrequencyHz: binary.LittleEndian.Uint16(frame[headerSize:])}, nil
}

// DecodeMotor decodes a MotorMessage payload.
func DecodeMotor(frame []byte) (MotorMessage, error) {
	if len(frame) != headerSize+8 {
		return MotorMessage{}, errors.New("transport: malformed motor frame")
	}
	return MotorMessage{
		LeftThrottle:  bitsToFloat32(binary.LittleEndian.Uint32(frame[headerSize:])),
		RightThrottle: bitsToFloat32(binary.LittleEndian.Uint32(frame[headerSize+4:])),
	}, nil
}
