package pyimpl

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		wantSlot string
		wantErr  bool
	}{
		{"python3_10", "3.10", false},
		{"python3_9", "3.9", false},
		{"python3.9", "3.9", false},
		{"python3.10", "3.10", false},
		{"python2_7", "2.7", false},
		{"pypy3", "0", false},
		{"pypy", "0", false},
		{"pypy3_10", "3.10", false},
		{"python", "", true},
		{"python3", "", true},
		{"python4_0", "", true},
		{"ruby3_1", "", true},
		{"python3_10_1", "", true},
		{"python3-10", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			impl, err := Parse(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.token, impl)
				}
				if !errors.Is(err, ErrMalformedIdentifier) {
					t.Errorf("Parse(%q) error = %v, want ErrMalformedIdentifier", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.token, err)
			}
			if impl.Slot != tt.wantSlot {
				t.Errorf("Parse(%q).Slot = %q, want %q", tt.token, impl.Slot, tt.wantSlot)
			}
			if impl.Token != tt.token {
				t.Errorf("Parse(%q).Token = %q", tt.token, impl.Token)
			}
		})
	}
}

func TestParseAll_StopsAtFirstError(t *testing.T) {
	_, err := ParseAll([]string{"python3_10", "bogus", "python3_11"})
	if !errors.Is(err, ErrMalformedIdentifier) {
		t.Fatalf("ParseAll() error = %v, want ErrMalformedIdentifier", err)
	}
}

func TestImplementation_Flag(t *testing.T) {
	impl, err := Parse("python3.10")
	if err != nil {
		t.Fatal(err)
	}
	if got := impl.Flag(); got != "python_targets_python3.10" {
		t.Errorf("Flag() = %q, want %q", got, "python_targets_python3.10")
	}
}

func TestImplementation_RuntimePackage(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"python3_12", "dev-lang/python"},
		{"pypy3", "dev-python/pypy3"},
		{"pypy3_10", "dev-python/pypy3"},
	}

	for _, tt := range tests {
		impl, err := Parse(tt.token)
		if err != nil {
			t.Fatal(err)
		}
		if got := impl.RuntimePackage(); got != tt.want {
			t.Errorf("RuntimePackage(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestImplementation_Supported(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"python3_12", true},
		{"python3.13", true},
		{"python3_6", false},
		{"python2_7", false},
		{"pypy3", true},
	}

	for _, tt := range tests {
		impl, err := Parse(tt.token)
		if err != nil {
			t.Fatal(err)
		}
		if got := impl.Supported(); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
