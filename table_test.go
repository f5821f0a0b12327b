package huffpress

import (
	"testing"
)

func TestBuildTable(t *testing.T) {
	// The classic textbook distribution.  With the list-based merge order,
	// equal-frequency ties resolve by position, giving exactly these codes.
	ft := FreqTable{
		{Sym: 'a', Freq: 5},
		{Sym: 'b', Freq: 9},
		{Sym: 'c', Freq: 12},
		{Sym: 'd', Freq: 13},
		{Sym: 'e', Freq: 16},
		{Sym: 'f', Freq: 45},
	}
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	actual := BuildTable(root)

	expect := Table{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}
	if len(actual) != len(expect) {
		t.Fatalf("expected %d codes, got %d", len(expect), len(actual))
	}
	for sym, code := range expect {
		if actual[sym] != code {
			t.Errorf("wrong code for %q:\n\texpect: %s\n\tactual: %s", rune(sym), code, actual[sym])
		}
	}
}

func TestBuildTable_SingleLeafRoot(t *testing.T) {
	root, err := BuildTree(CountString("zzzz"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := BuildTable(root)
	if len(table) != 1 {
		t.Fatalf("expected 1 code, got %d", len(table))
	}
	if code := table['z']; code != "0" {
		t.Errorf("expected code \"0\", got %s", code)
	}
}

func TestBuildTable_PrefixFree(t *testing.T) {
	type testRow struct {
		name  string
		input string
	}

	testData := [...]testRow{
		{name: "scenario-aaab", input: "aaab"},
		{name: "ties", input: "aabbccdd"},
		{name: "skewed", input: "aaaaaaaabbbbcccdde"},
		{name: "pangram", input: "the quick brown fox jumps over the lazy dog"},
		{name: "with-controls", input: "line one\nline two\n\ttabbed\n"},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ft := CountString(row.input)
			root, err := BuildTree(ft)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			table := BuildTable(root)

			if len(table) != len(ft) {
				t.Errorf("expected %d codes, got %d", len(ft), len(table))
			}
			for _, pair := range ft {
				code, found := table[pair.Sym]
				if !found {
					t.Errorf("symbol %q missing from table", rune(pair.Sym))
					continue
				}
				if code.Len() == 0 {
					t.Errorf("symbol %q has an empty code", rune(pair.Sym))
				}
			}
			for symA, codeA := range table {
				for symB, codeB := range table {
					if symA == symB {
						continue
					}
					if codeA.IsPrefixOf(codeB) {
						t.Errorf("code %s for %q is a prefix of code %s for %q",
							codeA, rune(symA), codeB, rune(symB))
					}
				}
			}
		})
	}
}
