package iugu

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Params is a nested request body. It is sent as form pairs using the
// bracket convention the billing API expects:
//
//	payer[address][city]=Recife
//	items[][description]=Order 10&items[][price_cents]=15000
//
// Nil values are skipped. Map keys are written in sorted order, so fields of
// one slice element always stay contiguous.
type Params map[string]any

// Encode serialises p as an application/x-www-form-urlencoded body.
func (p Params) Encode() string {
	pairs := make([]string, 0, len(p))
	encodeMap(&pairs, "", p)
	return strings.Join(pairs, "&")
}

func encodeMap(pairs *[]string, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "[" + k + "]"
		}
		encodeValue(pairs, key, m[k])
	}
}

func encodeValue(pairs *[]string, key string, v any) {
	switch t := v.(type) {
	case nil:
		return
	case Params:
		encodeMap(pairs, key, t)
	case map[string]any:
		encodeMap(pairs, key, t)
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		encodeMap(pairs, key, m)
	case []Params:
		for _, e := range t {
			encodeMap(pairs, key+"[]", e)
		}
	case []any:
		for _, e := range t {
			encodeValue(pairs, key+"[]", e)
		}
	case []string:
		for _, e := range t {
			encodeValue(pairs, key+"[]", e)
		}
	case *string:
		if t == nil {
			return
		}
		encodeValue(pairs, key, *t)
	default:
		*pairs = append(*pairs, key+"="+rawURLEncode(scalarString(t)))
	}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// rawURLEncode escapes like RFC 3986: spaces become %20, not '+'.
func rawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func optional(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
