package safety

import "testing"

func Test_Filter_IsAllowed_Cases(t *testing.T) {
	tests := []struct {
		name      string
		allowlist []string
		denylist  []string
		ups       string
		want      bool
	}{
		{
			name: "empty lists allow everything",
			ups:  "anyups",
			want: true,
		},
		{
			name:      "nil lists allow everything",
			allowlist: nil,
			denylist:  nil,
			ups:       "anyups",
			want:      true,
		},
		{
			name:      "in allowlist is allowed",
			allowlist: []string{"rackups", "deskups"},
			ups:       "rackups",
			want:      true,
		},
		{
			name:      "not in allowlist is denied",
			allowlist: []string{"rackups", "deskups"},
			ups:       "basement",
			want:      false,
		},
		{
			name:     "in denylist is denied",
			denylist: []string{"prod-ups"},
			ups:      "prod-ups",
			want:     false,
		},
		{
			name:      "denylist wins over allowlist",
			allowlist: []string{"rackups", "prod-ups"},
			denylist:  []string{"prod-ups"},
			ups:       "prod-ups",
			want:      false,
		},
		{
			name:     "glob pattern in denylist matches",
			denylist: []string{"prod-*"},
			ups:      "prod-rack2",
			want:     false,
		},
		{
			name:      "glob pattern in allowlist matches",
			allowlist: []string{"lab-*"},
			ups:       "lab-bench",
			want:      true,
		},
		{
			name:      "glob pattern no match in allowlist",
			allowlist: []string{"lab-*"},
			ups:       "rackups",
			want:      false,
		},
		{
			name:      "malformed pattern never matches",
			allowlist: []string{"[unclosed"},
			ups:       "rackups",
			want:      false,
		},
		{
			name:     "malformed denylist pattern does not deny",
			denylist: []string{"[unclosed"},
			ups:      "rackups",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.allowlist, tt.denylist)
			if got := f.IsAllowed(tt.ups); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.ups, got, tt.want)
			}
		})
	}
}
