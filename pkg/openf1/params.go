package openf1

import (
	"fmt"
	"net/url"
	"strings"
)

type Param struct {
	Key   string
	Value any
}

// Params is an ordered set of query parameters. Unlike url.Values it encodes
// in insertion order.
type Params []Param

func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

func (p Params) Encode() string {
	parts := make([]string, 0, len(p))
	for _, kv := range p {
		parts = append(parts, url.QueryEscape(kv.Key)+"="+url.QueryEscape(fmt.Sprint(kv.Value)))
	}
	return strings.Join(parts, "&")
}
