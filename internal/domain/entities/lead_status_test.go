package entities

import "testing"

func TestClassifyLead(t *testing.T) {
	tests := []struct {
		followups   int64
		conversions int64
		want        LeadStatus
	}{
		{0, 0, LeadStatusAwaiting},
		{1, 0, LeadStatusOneMessage},
		{2, 0, LeadStatusTwoMessages},
		{3, 0, LeadStatusThreePlus},
		{42, 0, LeadStatusThreePlus},
		{0, 1, LeadStatusConverted},
		{5, 1, LeadStatusConverted},
		{5, 3, LeadStatusConverted},
		{-1, 0, LeadStatusAwaiting},
		{2, -4, LeadStatusTwoMessages},
	}

	for _, tt := range tests {
		if got := ClassifyLead(tt.followups, tt.conversions); got != tt.want {
			t.Errorf("ClassifyLead(%d, %d) = %q, want %q", tt.followups, tt.conversions, got, tt.want)
		}
	}
}

func TestClassifyLeadAlwaysValid(t *testing.T) {
	for f := int64(-2); f < 10; f++ {
		for c := int64(-2); c < 4; c++ {
			s := ClassifyLead(f, c)
			if !s.Valid() {
				t.Fatalf("ClassifyLead(%d, %d) returned unknown status %q", f, c, s)
			}
			if c >= 1 && s != LeadStatusConverted {
				t.Fatalf("conversions=%d must classify as converted, got %q", c, s)
			}
		}
	}
}

func TestLeadStatusLabels(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range LeadStatuses() {
		label := s.Label()
		if label == "" || label == string(s) {
			t.Errorf("status %q has no label", s)
		}
		if seen[label] {
			t.Errorf("duplicated label %q", label)
		}
		seen[label] = true
	}
	if LeadStatus("outro").Valid() {
		t.Error("unknown status reported as valid")
	}
}

func TestConversionRate(t *testing.T) {
	if got := ConversionRate(3, 0); got != 0 {
		t.Errorf("rate with zero leads = %v, want 0", got)
	}
	if got := ConversionRate(1, 4); got != 25 {
		t.Errorf("rate = %v, want 25", got)
	}
}
