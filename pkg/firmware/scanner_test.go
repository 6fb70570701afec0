package firmware

import (
	"reflect"
	"testing"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     []int
	}{
		{
			name:     "single occurrence",
			haystack: "xxBLECTFxx",
			needle:   "BLECTF",
			want:     []int{2},
		},
		{
			name:     "multiple occurrences ascending",
			haystack: "BLECTF..BLECTF....BLECTF",
			needle:   "BLECTF",
			want:     []int{0, 8, 18},
		},
		{
			name:     "overlapping occurrences are reported",
			haystack: "aaaa",
			needle:   "aa",
			want:     []int{0, 1, 2},
		},
		{
			name:     "no match is empty, not an error",
			haystack: "nothing here",
			needle:   "BLECTF",
			want:     nil,
		},
		{
			name:     "match at end of buffer",
			haystack: "....BLECTF",
			needle:   "BLECTF",
			want:     []int{4},
		},
		{
			name:     "empty needle matches nothing",
			haystack: "abc",
			needle:   "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAll([]byte(tt.haystack), []byte(tt.needle))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAll() = %v, want %v", got, tt.want)
			}
		})
	}
}
