package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetAllTopicsLoad(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics embedded")
	}
	for _, topic := range topics {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	one, err := GetTopic("strategies")
	if err != nil {
		t.Fatalf("GetTopic(strategies) error = %v", err)
	}
	if !strings.Contains(all, one) {
		t.Error("GetTopics(*) should contain every individual topic")
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

// Every topic must start with a level-1 heading so the rendered output reads
// as a document, not a fragment.
func TestTopicsStartWithTitle(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	parser := goldmark.DefaultParser()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		root := parser.Parse(text.NewReader([]byte(content)))
		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok {
			t.Errorf("topic %q does not start with a heading", topic)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q starts with an H%d, want H1", topic, heading.Level)
		}
	}
}
