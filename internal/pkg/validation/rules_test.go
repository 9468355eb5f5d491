package validation

import "testing"

func TestValidRollNo(t *testing.T) {
	tests := []struct {
		rollNo string
		want   bool
	}{
		{"22MCF1R01", true},
		{"21MCF1R31", true},
		{"23MDS2A07", true},
		{"22mcf1r01", false},
		{"2MCF1R01", false},
		{"22MCF1R1", false},
		{"22MCFR01", false},
		{"", false},
		{"22MCF1R015", false},
	}
	for _, tt := range tests {
		if got := ValidRollNo(tt.rollNo); got != tt.want {
			t.Errorf("ValidRollNo(%q) = %v, want %v", tt.rollNo, got, tt.want)
		}
	}
}

func TestBatchFromRollNo(t *testing.T) {
	tests := []struct {
		rollNo string
		want   int
	}{
		{"22MCF1R01", 2025},
		{"21MCF1R31", 2024},
		{"19MDS2A07", 2022},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := BatchFromRollNo(tt.rollNo); got != tt.want {
			t.Errorf("BatchFromRollNo(%q) = %d, want %d", tt.rollNo, got, tt.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	const domain = "student.nitw.ac.in"
	tests := []struct {
		email string
		want  bool
	}{
		{"22mcf1r01@student.nitw.ac.in", true},
		{"First.Last@STUDENT.NITW.AC.IN", true},
		{"someone@gmail.com", false},
		{"no-at-sign.student.nitw.ac.in", false},
		{"", false},
		{"a b@student.nitw.ac.in", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email, domain); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}

	if !ValidEmail("anyone@anywhere.org", "") {
		t.Error("empty domain should accept any well-formed address")
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"str0ngpass", true},
		{"a1a1a1a1", true},
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPassword(tt.password); got != tt.want {
			t.Errorf("ValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	if !ValidCGPA(0) || !ValidCGPA(10) || ValidCGPA(-0.1) || ValidCGPA(10.1) {
		t.Error("ValidCGPA bounds wrong")
	}
	if !ValidPercentage(0) || !ValidPercentage(100) || ValidPercentage(-1) || ValidPercentage(100.5) {
		t.Error("ValidPercentage bounds wrong")
	}
}
