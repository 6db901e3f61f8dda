package util

import "fmt"

// KeyError is returned when a path segment cannot be resolved in a nested map.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("'%s'", e.Key)
}

// AccessNestedMap walks m following path and returns the value found at the end.
// An absent key, or a value that is not a map where one is needed, yields a *KeyError
// naming the segment that failed.
func AccessNestedMap(m map[string]interface{}, path ...string) (interface{}, error) {
	var current interface{} = m

	for _, key := range path {
		nested, ok := asMap(current)
		if !ok {
			return nil, &KeyError{Key: key}
		}

		value, ok := nested[key]
		if !ok {
			return nil, &KeyError{Key: key}
		}
		current = value
	}

	return current, nil
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, m != nil
	default:
		return nil, false
	}
}
