package extensions

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extensions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, `---
- name: local_mcms
  items:
    - id: mcms
      url: /local/mcms/index.php
      text: Pages
      icon: i/settings
- name: local_envf
  items:
    - id: help
      url: https://help.example.org
      text: Help
      newwindow: true
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config) != 2 {
		t.Fatalf("Load() returned %d providers, want 2", len(config))
	}
	if config[0].Name != "local_mcms" || config[1].Name != "local_envf" {
		t.Errorf("Load() lost file order: %+v", config)
	}
	if !config[1].Items[0].NewWindow {
		t.Error("newwindow flag not parsed")
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	t.Setenv("ENVF_TEST_HELP_URL", "https://help.example.org")
	path := writeFile(t, `---
- name: local_envf
  items:
    - id: help
      url: "{{ENVF_TEST_HELP_URL}}"
      text: Help
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := config[0].Items[0].URL; got != "https://help.example.org" {
		t.Errorf("URL = %q, want expanded variable", got)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	_, err := NewLoader("/nonexistent/path/extensions.yaml").Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "- name: [unterminated")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() with invalid yaml should return error")
	}
}

func TestExpandTemplateVariables(t *testing.T) {
	t.Setenv("ENVF_TEST_HOST", "lms.example.org")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single variable", "url: https://{{ENVF_TEST_HOST}}/", "url: https://lms.example.org/"},
		{"spaces inside braces", "url: {{ ENVF_TEST_HOST }}", "url: lms.example.org"},
		{"unset variable", "url: {{ENVF_TEST_UNSET_VARIABLE}}", "url: "},
		{"no variables", "url: /local/mcms/", "url: /local/mcms/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandTemplateVariables([]byte(tt.input)))
			if got != tt.expected {
				t.Errorf("expandTemplateVariables() = %q, want %q", got, tt.expected)
			}
		})
	}
}
