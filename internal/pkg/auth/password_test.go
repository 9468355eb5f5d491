package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("str0ngpass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "str0ngpass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "str0ngpass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrongpass1") {
		t.Error("wrong password accepted")
	}
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 characters", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("20 draws produced a single code, generator looks stuck")
	}
}
