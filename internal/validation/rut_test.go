package validation

import "testing"

func TestComputeRUTCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		base string
		want byte
	}{
		{
			name: "eight digit RUT",
			base: "12345678",
			want: '5',
		},
		{
			name: "repeated digits",
			base: "11111111",
			want: '1',
		},
		{
			name: "single digit mapping to nine",
			base: "1",
			want: '9',
		},
		{
			name: "single digit mapping to K",
			base: "6",
			want: 'K',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRUTCheckDigit(tt.base)
			if got != tt.want {
				t.Fatalf("ComputeRUTCheckDigit(%q) = %q, want %q", tt.base, got, tt.want)
			}
			// The algorithm is deterministic.
			if again := ComputeRUTCheckDigit(tt.base); again != got {
				t.Fatalf("ComputeRUTCheckDigit(%q) = %q on second call, want %q", tt.base, again, got)
			}
		})
	}
}

func TestNormalizeRUT(t *testing.T) {
	tests := []struct {
		name string
		rut  string
		want string
	}{
		{
			name: "numeric RUT gets check digit",
			rut:  "12345678",
			want: "12345678-5",
		},
		{
			name: "already normalized RUT is unchanged",
			rut:  "12345678-5",
			want: "12345678-5",
		},
		{
			name: "empty string is unchanged",
			rut:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRUT(tt.rut)
			if got != tt.want {
				t.Fatalf("NormalizeRUT(%q) = %q, want %q", tt.rut, got, tt.want)
			}
			// Normalizing twice must not change the value again.
			if twice := NormalizeRUT(got); twice != tt.want {
				t.Fatalf("NormalizeRUT(NormalizeRUT(%q)) = %q, want %q", tt.rut, twice, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"987654321", true},
		{"12345678", false},
		{"1234567890", false},
		{"98765432a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.valid {
			t.Fatalf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.valid)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"cliente@ejemplo.com", true},
		{"a@b.cl", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.valid {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}
