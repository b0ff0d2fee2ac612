package transport

import "math"

func floatBits(v float64) uint64    { return math.Float64bits(v) }
func bitsToFloat(v uint64) float64  { return math.Float64frombits(v) }
func float32bits(v float32) uint32  { return math.Float32bits(v) }
func bitsToFloat32(v uint32) float32 { return math.Float32frombits(v) }
