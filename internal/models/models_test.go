package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBankYAML(t *testing.T) {
	bank := &Bank{
		Title:     "Bible Basics",
		ShortName: "bible-basics",
		Questions: []Question{
			{Type: Single, Question: "Who built the ark?", Answer: "Noah", Reference: "Genesis 6"},
			{Type: HomeRun, Question: "How many books are in the Protestant Bible?", Answer: "66"},
		},
	}

	data, err := yaml.Marshal(bank)
	if err != nil {
		t.Fatalf("Failed to marshal bank: %v", err)
	}
	if !strings.Contains(string(data), "type: HR") {
		t.Errorf("Expected hit type to be written as its tag, got:\n%s", data)
	}

	bank2, err := ParseBank(data)
	if err != nil {
		t.Fatalf("Failed to parse bank: %v", err)
	}
	if bank2.Questions[0].Reference != "Genesis 6" {
		t.Errorf("Expected reference %q, got %q", "Genesis 6", bank2.Questions[0].Reference)
	}
	if bank2.Questions[1].Type != HomeRun {
		t.Errorf("Expected hit type %s, got %s", HomeRun, bank2.Questions[1].Type)
	}
}

func TestParseBankRejectsBadQuestions(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "title: nothing\nquestions: []\n"},
		{"unknown hit type", "questions:\n  - type: 4B\n    question: q\n    answer: a\n"},
		{"missing answer", "questions:\n  - type: 1B\n    question: q\n"},
		{"missing question", "questions:\n  - type: 1B\n    answer: a\n"},
		{"not yaml", "questions: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBank([]byte(tt.yaml)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestBankSaveAndList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "banks")

	banks, err := ListBanks(dir)
	if err != nil {
		t.Fatalf("ListBanks on missing dir: %v", err)
	}
	if len(banks) != 0 {
		t.Fatalf("Expected no banks, got %v", banks)
	}

	bank := &Bank{
		Title:     "Tiny",
		ShortName: "tiny",
		Questions: []Question{{Type: Triple, Question: "q", Answer: "a"}},
	}
	path, err := bank.Save(dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	banks, err = ListBanks(dir)
	if err != nil {
		t.Fatalf("ListBanks: %v", err)
	}
	if len(banks) != 1 || banks[0] != "tiny" {
		t.Errorf("Expected [tiny], got %v", banks)
	}

	loaded, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if loaded.CountByType()[Triple] != 1 {
		t.Errorf("Expected one triple, got %v", loaded.CountByType())
	}

	if _, err := (&Bank{Title: "no name"}).Save(dir); err == nil {
		t.Error("Expected error saving a bank without a short name")
	}
}

func TestBasesMask(t *testing.T) {
	for mask := uint8(0); mask < 8; mask++ {
		b := BasesFromMask(mask)
		if b.Mask() != mask {
			t.Errorf("mask %d round-tripped to %d", mask, b.Mask())
		}
	}
	b := Bases{First: true, Third: true}
	if b.Count() != 2 {
		t.Errorf("Expected 2 runners, got %d", b.Count())
	}
	if b.String() != "1-3" {
		t.Errorf("Expected 1-3, got %s", b.String())
	}
	if !BasesFromMask(7).Loaded() || !(Bases{}).Empty() {
		t.Error("Loaded/Empty disagree with the mask")
	}
}

func TestTeamsNormalize(t *testing.T) {
	defaults := DefaultTeams()

	got := Teams{
		AwayName: "   ",
		HomeName: "  The Very Long Team Name  ",
		AwayIcon: IconRed,
		HomeIcon: IconRed,
	}.Normalize(defaults)

	if got.AwayName != DefaultAwayName {
		t.Errorf("Expected blank away name to fall back, got %q", got.AwayName)
	}
	if got.HomeName != "The Very Lon" {
		t.Errorf("Expected home name truncated to 12 runes, got %q", got.HomeName)
	}
	if got.HomeIcon == got.AwayIcon {
		t.Errorf("Expected distinct icons, both are %s", got.HomeIcon)
	}

	zh := Teams{AwayName: "客隊", HomeName: "主隊", AwayIcon: IconYellow, HomeIcon: "purple"}.Normalize(defaults)
	if zh.AwayName != "客隊" || zh.HomeIcon != IconRed {
		t.Errorf("Unexpected normalization: %+v", zh)
	}
}
