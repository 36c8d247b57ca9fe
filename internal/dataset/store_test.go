package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const testCSV = `HITId,Answer,Answer.f1.happy.raw,Answer.f1.sad.raw
1,"A bright morning walk by the river.",TRUE,FALSE
2,"Everything felt heavy today.",FALSE,TRUE
3,"Lunch with an old friend, lots of laughing.",TRUE,FALSE
4,"",TRUE,FALSE
`

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestImportCSVAndTable(t *testing.T) {
	s := openTestStore(t)

	n, err := s.ImportCSV(writeCSV(t, testCSV))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 imported entries (empty body skipped), got %d", n)
	}

	table, err := s.Table()
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}

	happy, ok := table.Matches("happy")
	if !ok || len(happy) != 2 {
		t.Fatalf("unexpected happy matches: %#v ok=%v", happy, ok)
	}
	sad, ok := table.Matches("sad")
	if !ok || len(sad) != 1 || sad[0] != "Everything felt heavy today." {
		t.Fatalf("unexpected sad matches: %#v ok=%v", sad, ok)
	}
}

func TestImportCSVReplacesPrevious(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.ImportCSV(writeCSV(t, testCSV)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	n, err := s.ImportCSV(writeCSV(t, `Answer,Answer.f1.calm.raw
"Just one quiet entry.",TRUE
`))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 entry after re-import, got %d", n)
	}

	table, err := s.Table()
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if table.Len() != 1 || table.HasTag("happy") {
		t.Fatalf("old corpus not replaced: len=%d tags=%#v", table.Len(), table.Tags())
	}
}

func TestImportCSVMissingBodyColumn(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ImportCSV(writeCSV(t, "Text,Answer.f1.happy.raw\nhello,TRUE\n"))
	if err == nil {
		t.Fatalf("expected error for missing Answer column")
	}
}
