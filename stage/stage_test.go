package stage

import "testing"

func TestFind(t *testing.T) {
	tt := []struct {
		name  string
		lines []string
		want  string
		ok    bool
	}{
		{
			name:  "present",
			lines: []string{"Build Architecture: amd64", "Fail-Stage: build", "Build-Time: 12"},
			want:  "build",
			ok:    true,
		},
		{
			name:  "preserves-case",
			lines: []string{"Fail-Stage: Install-Deps"},
			want:  "Install-Deps",
			ok:    true,
		},
		{
			name:  "absent",
			lines: []string{"Build Architecture: amd64", "Build-Time: 12"},
			want:  "",
			ok:    false,
		},
		{
			name:  "first-wins",
			lines: []string{"Fail-Stage: build", "Fail-Stage: apt-get-update"},
			want:  "build",
			ok:    true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Find(tc.lines)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Find(%v) = %q, %v; want %q, %v", tc.lines, got, ok, tc.want, tc.ok)
			}
		})
	}
}
