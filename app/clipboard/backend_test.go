package clipboard

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		goos, display, wayland string
		want                   backend
	}{
		{"darwin", "", "", native},
		{"windows", "", "", native},
		{"linux", ":0", "", native},
		{"linux", ":0", "wayland-0", wayland},
		{"linux", "", "wayland-0", wayland},
		{"linux", "", "", command},
		{"plan9", ":0", "", command},
	}

	for _, tt := range tests {
		got := detect(tt.goos, tt.display, tt.wayland)
		if got != tt.want {
			t.Errorf("%s/%q/%q: expected %s, got %s", tt.goos, tt.display, tt.wayland, tt.want, got)
		}
	}
}
