package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bethropolis/repo-structure/internal/tree"
)

func sampleTree() *tree.Node {
	return &tree.Node{
		Name: "repo",
		Type: tree.TypeDirectory,
		Children: []*tree.Node{
			{
				Name: "src",
				Type: tree.TypeDirectory,
				Children: []*tree.Node{
					{Name: "main.go", Type: tree.TypeFile},
				},
			},
			{Name: "empty", Type: tree.TypeDirectory},
			{Name: "README.md", Type: tree.TypeFile},
		},
	}
}

func TestPrintJSONOmitsEmptyChildren(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf)

	if err := p.Print(sampleTree()); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, `"children":[]`) || strings.Contains(out, `"children": []`) {
		t.Errorf("empty children serialized: %s", out)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "repo" || decoded["type"] != "directory" {
		t.Errorf("unexpected root fields: %v", decoded)
	}

	children, ok := decoded["children"].([]interface{})
	if !ok || len(children) != 3 {
		t.Fatalf("unexpected children: %v", decoded["children"])
	}
	empty := children[1].(map[string]interface{})
	if _, present := empty["children"]; present {
		t.Error("empty directory carries a children field")
	}
	file := children[2].(map[string]interface{})
	if _, present := file["children"]; present {
		t.Error("file node carries a children field")
	}
}

func TestPrintJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithPretty(true)

	if err := p.Print(sampleTree()); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"name\"") {
		t.Errorf("pretty output not indented: %q", buf.String())
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithFormat(FormatText)

	if err := p.Print(sampleTree()); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	got := buf.String()
	want := "repo/\n" +
		"├── src/\n" +
		"│   └── main.go\n" +
		"├── empty/\n" +
		"└── README.md\n"
	if got != want {
		t.Errorf("text rendering mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestValidFormat(t *testing.T) {
	for _, name := range []string{"json", "text"} {
		if !ValidFormat(name) {
			t.Errorf("ValidFormat(%q) = false", name)
		}
	}
	if ValidFormat("yaml") {
		t.Error("ValidFormat accepted an unknown format")
	}
}
