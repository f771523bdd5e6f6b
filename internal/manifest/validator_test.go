package manifest

import (
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"git.json", "hub.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-version.json", "required"},
		{"invalid-bin-number.json", "type"},
		{"multi.json", "minItems"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, but got valid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Severity != SeverityError {
					t.Errorf("issue %+v: severity = %q, want %q", issue, issue.Severity, SeverityError)
				}
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateFile_CorruptJSON(t *testing.T) {
	if _, err := ValidateFile(testPath("corrupt.json")); err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}
}

func TestValidate_NoDuplicateIssues(t *testing.T) {
	result, err := Validate([]byte(`{"version":"1","bin":[5, 6]}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	seen := make(map[string]bool)
	for _, issue := range result.Issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if seen[key] {
			t.Errorf("duplicate issue %+v", issue)
		}
		seen[key] = true
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		warn    bool
	}{
		{"1.0", false},
		{"2.3.4", false},
		{"v1.2.3", false},
		{"1.0.0-beta.1", false},
		{"2.43.0.windows.1", true},
		{"nightly", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			issue := CheckVersion(tt.version)
			if (issue != nil) != tt.warn {
				t.Fatalf("CheckVersion(%q) = %+v, want warning=%v", tt.version, issue, tt.warn)
			}
			if issue != nil && issue.Severity != SeverityWarning {
				t.Errorf("Severity = %q, want %q", issue.Severity, SeverityWarning)
			}
		})
	}
}
