package primitive

import "testing"

func TestIfTrue(t *testing.T) {
	tests := []struct {
		name string
		cond bool
		t    int
		f    int
		want int
	}{
		{name: "true", cond: true, t: 1, f: 2, want: 1},
		{name: "false", cond: false, t: 1, f: 2, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IfTrue(tt.cond, tt.t, tt.f); got != tt.want {
				t.Errorf("IfTrue() = %v, want %v", got, tt.want)
			}
		})
	}
}
