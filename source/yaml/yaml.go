// Package yaml decodes YAML documents into the goshape value model with field
// order preserved, backed by gopkg.in/yaml.v3 nodes (mapping nodes keep their
// key order, unlike map[string]any decoding).
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goshape "github.com/reoring/goshape"
	yamlv3 "gopkg.in/yaml.v3"
)

// DecodeBytes decodes the first YAML document in data into an ordered
// *goshape.Object.
func DecodeBytes(data []byte) (*goshape.Object, error) {
	docs, err := DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, parseIssue(errors.New("empty YAML input"))
	}
	return docs[0], nil
}

// DecodeAll decodes every document in a (possibly multi-document) YAML stream
// into ordered objects.
func DecodeAll(r io.Reader) ([]*goshape.Object, error) {
	dec := yamlv3.NewDecoder(r)
	var out []*goshape.Object
	for {
		var doc yamlv3.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, parseIssue(err)
		}
		v, err := fromNode(&doc, map[*yamlv3.Node]bool{})
		if err != nil {
			return nil, err
		}
		obj, ok := v.(*goshape.Object)
		if !ok {
			return nil, goshape.Issues{{
				Code:    goshape.CodeInvalidType,
				Message: "expected YAML mapping document",
				Hint:    fmt.Sprintf("got %T", v),
			}}
		}
		out = append(out, obj)
	}
	return out, nil
}

func fromNode(n *yamlv3.Node, busy map[*yamlv3.Node]bool) (any, error) {
	if busy[n] {
		return nil, parseIssue(errors.New("YAML alias refers to itself"))
	}
	busy[n] = true
	defer delete(busy, n)

	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0], busy)
	case yamlv3.MappingNode:
		obj := goshape.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, parseIssue(err)
			}
			val, err := fromNode(n.Content[i+1], busy)
			if err != nil {
				return nil, err
			}
			obj.MustSet(key, val)
		}
		return obj, nil
	case yamlv3.SequenceNode:
		list := goshape.NewList()
		for _, c := range n.Content {
			val, err := fromNode(c, busy)
			if err != nil {
				return nil, err
			}
			if err := list.Append(val); err != nil {
				return nil, err
			}
		}
		return list, nil
	case yamlv3.AliasNode:
		return fromNode(n.Alias, busy)
	default: // scalar
		var out any
		if err := n.Decode(&out); err != nil {
			return nil, parseIssue(err)
		}
		return out, nil
	}
}

func parseIssue(err error) error {
	return goshape.Issues{{
		Code:    goshape.CodeParseError,
		Message: err.Error(),
		Cause:   err,
	}}
}
