package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"kim@example.com", "admin@howdohome.co.kr", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "kim", "kim@", "@example.com", "kim@example", "kim example@x.kr"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"010-1234-5678",
		"01012345678",
		"02-123-4567",
		"031-1234-5678",
		" 010-1234-5678 ",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{
		"",
		"1234-5678",
		"010-12-5678",
		"010-1234-567",
		"+82-10-1234-5678",
		"전화주세요",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("passwords under 8 characters must be rejected")
	}
	if ok, msg := ValidatePassword("longenough"); !ok {
		t.Errorf("ValidatePassword rejected a valid password: %s", msg)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"거실 시공 사진.jpg", "거실_시공_사진.jpg"},
		{"../../etc/passwd", "etc_passwd"},
		{"a b?c*.png", "a_b_c_.png"},
		{"   ", "file"},
		{"...", "file"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultString(t *testing.T) {
	if got := DefaultString("", "uploads"); got != "uploads" {
		t.Errorf("DefaultString fallback = %q", got)
	}
	if got := DefaultString("gallery", "uploads"); got != "gallery" {
		t.Errorf("DefaultString value = %q", got)
	}
}
