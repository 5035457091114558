package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	n := Params{}.Normalize()
	if n.Page != DefaultPage || n.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults %+v", n)
	}

	n = Params{Page: -3, Limit: 1000}.Normalize()
	if n.Page != DefaultPage {
		t.Fatalf("negative page should normalize to default, got %d", n.Page)
	}
	if n.Limit != MaxLimit {
		t.Fatalf("oversized limit should clamp to max, got %d", n.Limit)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := (Params{}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for defaults, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{25, 10, 3},
		{30, 10, 3},
		{0, 10, 0},
		{1, 10, 1},
		{9, 0, 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(Params{Page: 3, Limit: 10}, 25)
	if env.Page != 3 || env.Limit != 10 || env.Total != 25 || env.TotalPages != 3 {
		t.Fatalf("unexpected envelope %+v", env)
	}
}
