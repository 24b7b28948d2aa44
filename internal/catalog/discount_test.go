package catalog

import "testing"

func TestDisplayDiscount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		priceCents int
		percent    int
		want       int
	}{
		{"no discount", 630, 0, 630},
		{"ten percent", 630, 10, 567},
		{"rounds half up", 625, 10, 563},
		{"full discount", 630, 100, 0},
		{"over full clamps", 630, 150, 0},
		{"negative percent ignored", 630, -5, 630},
		{"zero price", 0, 10, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := DisplayDiscount(tc.priceCents, tc.percent); got != tc.want {
				t.Fatalf("DisplayDiscount(%d, %d) = %d, want %d", tc.priceCents, tc.percent, got, tc.want)
			}
		})
	}
}
