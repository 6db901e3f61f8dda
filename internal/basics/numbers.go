package basics

import (
	"math"
	"strconv"
	"strings"
)

// Number is any integer or float type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Add(a, b float64) float64 {
	return a + b
}

// Floor returns the greatest integer less than or equal to n.
func Floor(n float64) int {
	return int(math.Floor(n))
}

// ToStr formats n with the fewest digits that represent it exactly.
// Whole numbers keep a trailing ".0" so the result always reads as a float.
func ToStr(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if math.IsInf(n, 0) || math.IsNaN(n) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func SumList(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// SumMixedList sums values of any numeric type as a float64.
func SumMixedList[N Number](values []N) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum
}

// ToKV pairs k with the square of v.
func ToKV[N Number](k string, v N) (string, float64) {
	f := float64(v)
	return k, f * f
}

func MakeMultiplier(multiplier float64) func(float64) float64 {
	return func(n float64) float64 {
		return n * multiplier
	}
}
