package descriptor

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, file string) *Descriptor {
	t.Helper()
	d, err := ParseFile(testPath(file))
	if err != nil {
		t.Fatalf("ParseFile(%s) error: %v", file, err)
	}
	return d
}

func TestDefaultValidator_Valid(t *testing.T) {
	v, err := DefaultValidator()
	if err != nil {
		t.Fatalf("DefaultValidator error: %v", err)
	}

	for _, file := range []string{"valid-full.json", "valid-no-meta.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := v.Validate(mustParse(t, file))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if !result.Valid {
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestDefaultValidator_EmptyIdentifier(t *testing.T) {
	v, err := DefaultValidator()
	if err != nil {
		t.Fatalf("DefaultValidator error: %v", err)
	}
	result, err := v.Validate(mustParse(t, "schema-empty-identifier.json"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected empty identifier to be rejected")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/identifier" && issue.Keyword == "minLength" {
			found = true
		}
		if issue.Message == "" {
			t.Errorf("issue at %s has empty message", issue.Path)
		}
	}
	if !found {
		t.Errorf("expected a minLength issue at /identifier, got %+v", result.Issues)
	}
}

func TestDefaultValidator_NullMeta(t *testing.T) {
	v, err := DefaultValidator()
	if err != nil {
		t.Fatalf("DefaultValidator error: %v", err)
	}
	result, err := v.Validate(mustParse(t, "valid-null-meta.json"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Error("expected null meta to fail the object type check")
	}
}

func TestNewValidator_YAMLSchema(t *testing.T) {
	v, err := NewValidator(testPath("strict.schema.yaml"))
	if err != nil {
		t.Fatalf("NewValidator error: %v", err)
	}

	if err := v.Check(mustParse(t, "valid-full.json")); err != nil {
		t.Errorf("valid-full.json should pass the strict schema: %v", err)
	}

	err = v.Check(mustParse(t, "valid-no-meta.json"))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !strings.Contains(ve.Error(), testPath("valid-no-meta.json")) {
		t.Errorf("error should name the file: %v", ve)
	}
	if len(ve.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestNewValidator_NotFound(t *testing.T) {
	if _, err := NewValidator(testPath("nonexistent.schema.json")); err == nil {
		t.Fatal("expected error for missing schema file")
	}
}

func TestNewValidator_BadSchema(t *testing.T) {
	if _, err := NewValidator(testPath("invalid-syntax.json")); err == nil {
		t.Fatal("expected error for unparsable schema")
	}
}
