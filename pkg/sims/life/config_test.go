package life

import "testing"

func TestFromMap(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{"nil", nil, DefaultConfig()},
		{"all keys", map[string]string{"w": "64", "h": "32", "fill": "0.25", "seed": "-7"}, Config{Width: 64, Height: 32, Fill: 0.25, Seed: -7}},
		{"invalid ignored", map[string]string{"w": "-3", "h": "x", "fill": "1.5", "seed": "abc"}, DefaultConfig()},
		{"nan fill ignored", map[string]string{"fill": "NaN"}, DefaultConfig()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromMap(tc.in); got != tc.want {
				t.Fatalf("FromMap(%v)=%+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestConfigMapRoundTrip(t *testing.T) {
	c := Config{Width: 9, Height: 4, Fill: 0.125, Seed: 77}
	if got := FromMap(c.Map()); got != c {
		t.Fatalf("FromMap(Map())=%+v, expected %+v", got, c)
	}
}
