package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{25, 12, 3},
		{12, 5, 3},
		{100, 1, 100},
		{7, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{-3, 1}, {0, 1}, {1, 1}, {7, 7}} {
		if got := NormalizePage(tc.in); got != tc.want {
			t.Fatalf("NormalizePage(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePageSize(t *testing.T) {
	if got := NormalizePageSize(0); got != DefaultPageSize {
		t.Fatalf("expected default page size, got %d", got)
	}
	if got := NormalizePageSize(5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(2, 5); got != 5 {
		t.Fatalf("Offset(2,5) = %d, want 5", got)
	}
	if got := Offset(0, 5); got != 0 {
		t.Fatalf("Offset(0,5) = %d, want 0", got)
	}
}
