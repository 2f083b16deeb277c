package pipeline

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// EncodeResult serializes res for caches and stores. Edge and path labels
// are byte slices of the text and may split a multi-byte character, so the
// encoding must keep arbitrary bytes. JSON does not: it rewrites invalid
// UTF-8 as U+FFFD. BSON strings are length-prefixed and round-trip as is.
func EncodeResult(res *Result) ([]byte, error) {
	data, err := bson.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return data, nil
}

// DecodeResult is the inverse of [EncodeResult].
func DecodeResult(data []byte) (*Result, error) {
	var res Result
	if err := bson.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &res, nil
}
