package blockstate

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestReencodeJSON(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "slash escape", src: `{"model": "a\/b"}`, want: "a/b"},
		{name: "surrogate pair", src: `{"model": "\ud83d\ude00"}`, want: "\U0001F600"},
		{name: "plain", src: `{"model": "stone"}`, want: "stone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := reencodeJSON([]byte(tt.src))
			if err != nil {
				t.Fatalf("reencodeJSON() error = %v", err)
			}
			var got struct {
				Model string `yaml:"model"`
			}
			if err := yaml.Unmarshal(out, &got); err != nil {
				t.Fatalf("yaml rejects %q: %v", out, err)
			}
			if got.Model != tt.want {
				t.Errorf("model = %q, want %q", got.Model, tt.want)
			}
		})
	}
}

func TestReencodeJSON_KeepsShape(t *testing.T) {
	src := "{\n  \"a\": [1, 2.5, true, null],\n  \"b\": {\"c\": \"d\\/e\", \"e\": []}\n}"
	out, err := reencodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("reencodeJSON() error = %v", err)
	}
	var n yaml.Node
	if err := yaml.Unmarshal(out, &n); err != nil {
		t.Fatalf("yaml rejects %q: %v", out, err)
	}
	top := n.Content[0]
	if len(top.Content) != 4 || top.Content[0].Value != "a" || top.Content[2].Value != "b" {
		t.Fatalf("unexpected top level in %q", out)
	}
	if top.Content[2].Line != 3 {
		t.Errorf("key b on line %d, want 3", top.Content[2].Line)
	}
	if list := top.Content[1]; len(list.Content) != 4 || list.Content[1].Value != "2.5" || list.Content[3].ShortTag() != "!!null" {
		t.Errorf("array = %q", out)
	}
}

func TestParseDocument_JSONEscapes(t *testing.T) {
	src := `{
  "ccl_marker": "1",
  "block_variants": "", "inventory_variants": "",
  "defaults": { "model": "mymod:block\/lamp", "textures": { "all": "blocks\/lamp" } },
  "variants": {}
}`
	doc, err := ParseDocument([]byte(src), NewParser())
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if *doc.Defaults.Model != "mymod:block/lamp" || doc.Defaults.Textures["all"] != "blocks/lamp" {
		t.Errorf("defaults = %+v", doc.Defaults)
	}

	if _, err := ParseDocument([]byte(`{"variants": {"normal": {"model": "a\/b"}}}`), NewParser()); !errors.Is(err, ErrNotCCL) {
		t.Errorf("err = %v, want ErrNotCCL", err)
	}
}

func TestParseDocument_JSONEscapesKeepLines(t *testing.T) {
	src := `{
  "ccl_marker": "1",
  "block_variants": "", "inventory_variants": "",
  "defaults": { "model": "a\/b", "weight": 0 },
  "variants": {}
}`
	_, err := ParseDocument([]byte(src), NewParser())
	var e *Error
	if !errors.As(err, &e) || !errors.Is(err, ErrDeserialization) {
		t.Fatalf("err = %v, want a deserialization *Error", err)
	}
	if e.Path != "defaults.weight" || e.Line != 4 {
		t.Errorf("path %q line %d, want defaults.weight line 4", e.Path, e.Line)
	}
}

func TestMarkerlessJSON(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{`{"variants": {}}`, true},
		{`{"ccl_marker": "1"}`, false},
		{`["ccl_marker"]`, false},
		{`not json`, false},
	}
	for _, tt := range tests {
		if got := markerlessJSON([]byte(tt.src)); got != tt.want {
			t.Errorf("markerlessJSON(%s) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
