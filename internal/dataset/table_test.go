package dataset

import (
	"reflect"
	"testing"
)

func labeled(body string, labels map[string]string) Row {
	return Row{Body: body, Labels: labels}
}

func TestMatchesCoercesLooseBooleans(t *testing.T) {
	table := NewTable([]Row{
		labeled("a", map[string]string{"happy": "TRUE"}),
		labeled("b", map[string]string{"happy": "false"}),
		labeled("c", map[string]string{"happy": "1"}),
		labeled("d", map[string]string{"happy": "0"}),
		labeled("e", map[string]string{"happy": "NaN"}),
		labeled("f", map[string]string{"happy": ""}),
	})

	matches, ok := table.Matches("happy")
	if !ok {
		t.Fatalf("expected coercible label")
	}
	if !reflect.DeepEqual(matches, []string{"a", "c"}) {
		t.Fatalf("unexpected matches: %#v", matches)
	}
}

func TestMatchesRejectsNonBooleanLabel(t *testing.T) {
	table := NewTable([]Row{
		labeled("a", map[string]string{"happy": "TRUE"}),
		labeled("b", map[string]string{"happy": "mostly"}),
	})
	if _, ok := table.Matches("happy"); ok {
		t.Fatalf("expected non-coercible label to be rejected")
	}
}

func TestTagsCaseInsensitive(t *testing.T) {
	table := NewTable([]Row{
		labeled("a", map[string]string{"Happy": "TRUE", "sad": "FALSE"}),
	})
	if !table.HasTag("HAPPY") || !table.HasTag("happy") {
		t.Fatalf("expected case-insensitive tag lookup")
	}
	if table.HasTag("bored") {
		t.Fatalf("unexpected tag match")
	}
	if got := table.Tags(); !reflect.DeepEqual(got, []string{"happy", "sad"}) {
		t.Fatalf("unexpected tags: %#v", got)
	}
}

func TestMatchesSkipsRowsWithoutLabel(t *testing.T) {
	table := NewTable([]Row{
		labeled("a", map[string]string{"happy": "TRUE"}),
		labeled("b", map[string]string{"sad": "TRUE"}),
	})
	matches, ok := table.Matches("happy")
	if !ok || len(matches) != 1 || matches[0] != "a" {
		t.Fatalf("unexpected matches: %#v ok=%v", matches, ok)
	}
}
