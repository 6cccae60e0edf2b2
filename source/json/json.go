// Package json decodes JSON documents into the goshape value model with field
// order preserved, backed by goccy/go-json.
package json

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	goshape "github.com/reoring/goshape"
)

// DecodeBytes decodes a JSON object into an ordered *goshape.Object.
func DecodeBytes(b []byte) (*goshape.Object, error) {
	return DecodeReader(bytes.NewReader(b))
}

// DecodeReader decodes a JSON object from r into an ordered *goshape.Object.
func DecodeReader(r io.Reader) (*goshape.Object, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, parseIssue(err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, goshape.Issues{{
			Code:    goshape.CodeInvalidType,
			Message: "expected JSON object",
			Hint:    fmt.Sprintf("top-level token %v", tok),
		}}
	}
	return decodeObject(dec)
}

func decodeObject(dec *j.Decoder) (*goshape.Object, error) {
	obj := goshape.NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, parseIssue(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, parseIssue(fmt.Errorf("unexpected object key token %v", tok))
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.MustSet(key, val)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, parseIssue(err)
	}
	return obj, nil
}

func decodeList(dec *j.Decoder) (*goshape.List, error) {
	list := goshape.NewList()
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		if err := list.Append(val); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, parseIssue(err)
	}
	return list, nil
}

func decodeValue(dec *j.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, parseIssue(err)
	}
	if d, ok := tok.(j.Delim); ok {
		switch d {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		}
		return nil, parseIssue(fmt.Errorf("unexpected delimiter %v", d))
	}
	if n, ok := tok.(j.Number); ok {
		return stdjson.Number(n), nil
	}
	return tok, nil
}

func parseIssue(err error) error {
	return goshape.Issues{{
		Code:    goshape.CodeParseError,
		Message: err.Error(),
		Cause:   err,
	}}
}
