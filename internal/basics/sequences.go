package basics

// Sequence is any type len can measure element-wise.
type Sequence interface {
	~string | ~[]byte | ~[]int | ~[]float64 | ~[]string | ~[]interface{}
}

// Element pairs a sequence with its length.
type Element[S Sequence] struct {
	Value  S
	Length int
}

func ElementLength[S Sequence](values []S) []Element[S] {
	elements := make([]Element[S], 0, len(values))
	for _, v := range values {
		elements = append(elements, Element[S]{Value: v, Length: len(v)})
	}
	return elements
}

// SafeFirstElement returns the first element and true, or the zero value and
// false for an empty slice.
func SafeFirstElement[T any](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[0], true
}

// SafelyGetValue returns m[key] when present, otherwise def.
func SafelyGetValue[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

const DefaultZoomFactor = 2

// ZoomArray repeats every element factor times in place.
func ZoomArray(values []int, factor int) []int {
	if factor <= 0 {
		return []int{}
	}

	zoomed := make([]int, 0, len(values)*factor)
	for _, v := range values {
		for i := 0; i < factor; i++ {
			zoomed = append(zoomed, v)
		}
	}
	return zoomed
}
