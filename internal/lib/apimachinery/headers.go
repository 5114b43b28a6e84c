package apimachinery

import "net/http"

// HeaderInput is a tagged representation of the header shapes callers
// naturally have on hand: an ordered list of name/value pairs, a plain
// single-valued map, or an http.Header. Exactly one shape is carried; the
// zero value carries none and normalizes to an empty header set.
type HeaderInput struct {
	pairs  [][2]string
	values map[string]string
	header http.Header
}

// HeadersFromPairs returns a HeaderInput wrapping an ordered list of
// name/value pairs. Repeated names are preserved as multi-valued headers.
func HeadersFromPairs(pairs ...[2]string) HeaderInput {
	return HeaderInput{pairs: pairs}
}

// HeadersFromMap returns a HeaderInput wrapping a plain single-valued map.
func HeadersFromMap(values map[string]string) HeaderInput {
	return HeaderInput{values: values}
}

// HeadersFromHTTP returns a HeaderInput wrapping an existing http.Header.
// The header is copied during normalization; the original is never mutated.
func HeadersFromHTTP(header http.Header) HeaderInput {
	return HeaderInput{header: header}
}

// normalize converts any of the supported shapes into a fresh http.Header.
// It never returns nil.
func (h HeaderInput) normalize() http.Header {
	normalized := http.Header{}
	for _, pair := range h.pairs {
		normalized.Add(pair[0], pair[1])
	}
	for name, value := range h.values {
		normalized.Add(name, value)
	}
	for name, values := range h.header {
		for _, value := range values {
			normalized.Add(name, value)
		}
	}
	return normalized
}
