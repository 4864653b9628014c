package policy

import (
	"reflect"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantValid    bool
		wantErrors   []string
		wantStrength Strength
	}{
		{
			name:      "empty password fails every required rule",
			password:  "",
			wantValid: false,
			wantErrors: []string{
				"Password must be at least 8 characters long",
				"Password must contain at least one uppercase letter",
				"Password must contain at least one lowercase letter",
				"Password must contain at least one number",
				"Password must contain at least one special character",
			},
			wantStrength: StrengthWeak,
		},
		{
			name:      "lowercase dictionary word",
			password:  "password",
			wantValid: false,
			wantErrors: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one number",
				"Password must contain at least one special character",
			},
			wantStrength: StrengthFair,
		},
		{
			name:         "missing special character only",
			password:     "Password1",
			wantValid:    false,
			wantErrors:   []string{"Password must contain at least one special character"},
			wantStrength: StrengthGood,
		},
		{
			name:         "valid but penalized for common fragment",
			password:     "Password1!",
			wantValid:    true,
			wantStrength: StrengthStrong,
		},
		{
			name:         "long varied password scores full marks",
			password:     "MyStr0ng!P@ssw0rd",
			wantValid:    true,
			wantStrength: StrengthStrong,
		},
		{
			name:      "digits only",
			password:  "11111111",
			wantValid: false,
			wantErrors: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one lowercase letter",
				"Password must contain at least one special character",
			},
			wantStrength: StrengthWeak,
		},
		{
			name:      "non-ASCII letters count toward length only",
			password:  "àéîõüÀÉÎ",
			wantValid: false,
			wantErrors: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one lowercase letter",
				"Password must contain at least one number",
				"Password must contain at least one special character",
			},
			wantStrength: StrengthWeak,
		},
		{
			name:         "denylist match is case-insensitive and unanchored",
			password:     "xXPaSsWoRd9!xX",
			wantValid:    true,
			wantStrength: StrengthStrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.password)

			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if !reflect.DeepEqual(got.Errors, tt.wantErrors) {
				t.Errorf("Errors = %q, want %q", got.Errors, tt.wantErrors)
			}
			if got.Strength != tt.wantStrength {
				t.Errorf("Strength = %q, want %q", got.Strength, tt.wantStrength)
			}
			if got.Valid != (len(got.Errors) == 0) {
				t.Errorf("Valid = %v disagrees with %d errors", got.Valid, len(got.Errors))
			}
		})
	}
}

// "xXPaSsWoRd9!xX" passes every required rule yet still gets penalized for
// containing "password"; the table above asserts it stays valid. This test
// pins the penalty itself: removing the fragment raises the score.
func TestEvaluateDenylistPenalizesScoreOnly(t *testing.T) {
	with := Evaluate("Password1!")
	without := Evaluate("Dasswort1!")

	if !with.Valid || !without.Valid {
		t.Fatalf("both passwords should be valid, got %v and %v", with.Valid, without.Valid)
	}
	if !hasNoCommonFragment("Dasswort1!") {
		t.Fatal("control password unexpectedly matches the denylist")
	}
	if hasNoCommonFragment("Password1!") {
		t.Fatal("expected denylist match for Password1!")
	}
}

// Appending characters can lower the rating: a trailing run of three
// identical characters costs the no-repeat advisory weight.
func TestEvaluateLongerCanBeWeaker(t *testing.T) {
	short := Evaluate("Qwerty1!")
	long := Evaluate("Qwerty1!!!")

	if short.Strength != StrengthStrong {
		t.Fatalf("Evaluate(%q).Strength = %q, want %q", "Qwerty1!", short.Strength, StrengthStrong)
	}
	if long.Strength != StrengthGood {
		t.Fatalf("Evaluate(%q).Strength = %q, want %q", "Qwerty1!!!", long.Strength, StrengthGood)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	for _, password := range []string{"", "password", "Password1!", "11111111"} {
		first := Evaluate(password)
		second := Evaluate(password)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Evaluate(%q) returned different results on repeated calls", password)
		}
	}
}

// Evaluate is total: any byte sequence, including broken UTF-8 and very long
// inputs, yields a result.
func TestEvaluateTotality(t *testing.T) {
	inputs := []string{
		"\xff\xfe\xfd",
		string([]byte{0x00, 0x01, 0x02}),
		strings.Repeat("Aa1!", 10_000),
		"🎉🎊🎈🎁🎂🍰🧁🍪",
	}

	for _, input := range inputs {
		got := Evaluate(input)
		if got.Strength == "" {
			t.Errorf("Evaluate(%q) returned empty strength", input)
		}
	}
}

func TestEvaluateSpecialCharacterSet(t *testing.T) {
	for _, r := range specialChars {
		password := "Abcdef1" + string(r)
		if got := Evaluate(password); !got.Valid {
			t.Errorf("Evaluate(%q).Valid = false, want true (special char %q)", password, r)
		}
	}

	// A character outside the set does not count as a special character.
	got := Evaluate("Abcdefg1§")
	if got.Valid {
		t.Errorf("Evaluate(%q).Valid = true, want false", "Abcdefg1§")
	}
}

func TestEvaluateTripleRepeat(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"aabbcc", true},
		{"aaabbb", false},
		{"abababab", true},
		{"xxXXxx", true}, // case-sensitive: xxXX has no triple
		{"ééébcd", false},
		{"", true},
	}

	for _, tt := range tests {
		if got := hasNoTripleRepeat(tt.password); got != tt.want {
			t.Errorf("hasNoTripleRepeat(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestEvaluateAllDigits(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"12345678", false},
		{"1234567a", true},
		{"", true},
		{"١٢٣٤", true}, // non-ASCII digits are not decimal digits here
	}

	for _, tt := range tests {
		if got := isNotAllDigits(tt.password); got != tt.want {
			t.Errorf("isNotAllDigits(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
