package branding

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "scoop-searchr"},
		{"HomeDir", HomeDir(), ".scoop-searchr"},
		{"EnvPrefix", EnvPrefix(), "SCOOP_SEARCHR"},
		{"EnvVar", EnvVar("root"), "SCOOP_SEARCHR_ROOT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
	if Description() == "" || DisplayName() == "" {
		t.Error("Description and DisplayName must not be empty")
	}
}
