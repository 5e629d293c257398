package caster

import "encoding/json"

// JSONCaster decodes raw JSON payloads into values of T.
type JSONCaster[T any] struct{}

func (jc JSONCaster[T]) From(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
