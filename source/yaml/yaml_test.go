package yaml_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	goshape "github.com/reoring/goshape"
	srcyaml "github.com/reoring/goshape/source/yaml"
)

func TestDecodeBytes_PreservesFieldOrder(t *testing.T) {
	doc := []byte("zeta: 1\nalpha:\n  b: x\n  a: y\nlist:\n  - 1\n  - two\n")
	obj, err := srcyaml.DecodeBytes(doc)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "list"}, obj.Keys()); diff != "" {
		t.Fatalf("top-level key order mismatch (-want +got):\n%s", diff)
	}
	nested, _ := obj.Get("alpha")
	if diff := cmp.Diff([]string{"b", "a"}, nested.(*goshape.Object).Keys()); diff != "" {
		t.Fatalf("nested key order mismatch (-want +got):\n%s", diff)
	}
	lv, _ := obj.Get("list")
	list := lv.(*goshape.List)
	if list.Len() != 2 || list.At(1) != "two" {
		t.Fatalf("sequence decoded wrong: len=%d", list.Len())
	}
}

func TestDecodeAll_MultiDocument(t *testing.T) {
	stream := "name: first\n---\nname: second\n"
	docs, err := srcyaml.DecodeAll(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("want 2 documents, got %d", len(docs))
	}
	if v, _ := docs[1].Get("name"); v != "second" {
		t.Fatalf("second document lost: %v", v)
	}
}

func TestDecode_AnchorsAndAliases(t *testing.T) {
	doc := []byte("base: &b\n  kind: shared\nref: *b\n")
	obj, err := srcyaml.DecodeBytes(doc)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	ref, _ := obj.Get("ref")
	if v, _ := ref.(*goshape.Object).Get("kind"); v != "shared" {
		t.Fatalf("alias not resolved: %v", v)
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	if _, err := srcyaml.DecodeBytes([]byte("- just\n- a list\n")); err == nil {
		t.Fatalf("non-mapping document must fail")
	}
	if _, err := srcyaml.DecodeBytes([]byte("")); err == nil {
		t.Fatalf("empty input must fail")
	}
}
