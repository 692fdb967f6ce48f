package rules

import (
	"testing"

	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/entity"
)

func TestClosestName(t *testing.T) {
	candidates := []string{"Boss Key", "Coin", "Master Sword"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"one edit away", "Boss Keg", "Boss Key"},
		{"short name tight limit", "Coim", "Coin"},
		{"short name over limit", "Corn Dog", ""},
		{"long name three edits", "Mister Sord", "Master Sword"},
		{"nothing close", "Hookshot", ""},
		{"exact match", "Coin", "Coin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestName(tt.input, candidates); got != tt.want {
				t.Errorf("closestName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClosestNameTieBreaksAlphabetically(t *testing.T) {
	if got := closestName("Mop", []string{"Mod", "Map"}); got != "Map" {
		t.Errorf("closestName = %q, want Map", got)
	}
}

func TestUnknownErrorsWithoutSuggestion(t *testing.T) {
	items, err := entity.BuildItemTable([]entity.ItemDescriptor{{ID: 1, Name: "Coin"}})
	if err != nil {
		t.Fatalf("build item table: %v", err)
	}

	itemErr := UnknownItemError("Hookshot", items)
	if !apperrors.IsCode(itemErr, apperrors.CodeRulesUnknownItem) {
		t.Errorf("code = %s, want %s", apperrors.GetCode(itemErr), apperrors.CodeRulesUnknownItem)
	}
	if _, ok := apperrors.GetMetadata(itemErr)["Suggestion"]; ok {
		t.Errorf("suggestion present for a distant name: %v", itemErr)
	}
	if got := apperrors.GetMetadata(itemErr)["Item"]; got != "Hookshot" {
		t.Errorf("item metadata = %q, want Hookshot", got)
	}

	locations, err := entity.BuildLocationTable([]entity.LocationDescriptor{{ID: 1, Name: "Vault"}})
	if err != nil {
		t.Fatalf("build location table: %v", err)
	}

	locErr := UnknownLocationError("Throne Room", locations)
	if !apperrors.IsCode(locErr, apperrors.CodeRulesUnknownLocation) {
		t.Errorf("code = %s, want %s", apperrors.GetCode(locErr), apperrors.CodeRulesUnknownLocation)
	}
	if _, ok := apperrors.GetMetadata(locErr)["Suggestion"]; ok {
		t.Errorf("suggestion present for a distant name: %v", locErr)
	}
}
