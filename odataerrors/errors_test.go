package odataerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassificationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ClassificationError{
			Segment:  "$value",
			Position: 2,
			Message:  "unexpected kind in path segment before $value: action",
			Cause:    cause,
		}

		msg := err.Error()
		want := "classification error at segment $value (index 2): unexpected kind in path segment before $value: action: underlying error"
		if msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ClassificationError{Position: -1}
		if err.Error() != "classification error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with segment only", func(t *testing.T) {
		err := &ClassificationError{Segment: "$count", Position: -1}
		if err.Error() != "classification error at segment $count" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ClassificationError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrClassification", func(t *testing.T) {
		err := &ClassificationError{Message: "test"}
		if !errors.Is(err, ErrClassification) {
			t.Error("ClassificationError should match ErrClassification")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ClassificationError{}
		if errors.Is(err, ErrOptionNotAllowed) {
			t.Error("ClassificationError should not match ErrOptionNotAllowed")
		}
		if errors.Is(err, ErrKeyPredicate) {
			t.Error("ClassificationError should not match ErrKeyPredicate")
		}
	})

	t.Run("As extracts ClassificationError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ClassificationError{Segment: "$ref", Position: 1})
		var clsErr *ClassificationError
		if !errors.As(err, &clsErr) {
			t.Fatal("errors.As should succeed")
		}
		if clsErr.Segment != "$ref" {
			t.Errorf("unexpected segment: %s", clsErr.Segment)
		}
		if clsErr.Position != 1 {
			t.Errorf("unexpected position: %d", clsErr.Position)
		}
	})
}

func TestOptionNotAllowedError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &OptionNotAllowedError{
			Option:       "$expand",
			ResourceKind: "entitySetCount",
			Message:      "no options are applicable to a count segment",
		}
		want := "system query option not allowed: $expand on entitySetCount: no options are applicable to a count segment"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &OptionNotAllowedError{}
		if err.Error() != "system query option not allowed" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with option only", func(t *testing.T) {
		err := &OptionNotAllowedError{Option: "$search"}
		if err.Error() != "system query option not allowed: $search" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &OptionNotAllowedError{Option: "$top"}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrOptionNotAllowed", func(t *testing.T) {
		err := &OptionNotAllowedError{Option: "$filter"}
		if !errors.Is(err, ErrOptionNotAllowed) {
			t.Error("OptionNotAllowedError should match ErrOptionNotAllowed")
		}
		if errors.Is(err, ErrClassification) {
			t.Error("OptionNotAllowedError should not match ErrClassification")
		}
	})
}

func TestKeyPredicateError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &KeyPredicateError{
			EntitySet:    "Products",
			Property:     "ID",
			Literal:      "'abc'",
			ExpectedType: "Edm.Int32",
		}
		want := `key predicate error in Products.ID: literal "'abc'" is not a valid Edm.Int32`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &KeyPredicateError{}
		if err.Error() != "key predicate error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrKeyPredicate", func(t *testing.T) {
		err := &KeyPredicateError{EntitySet: "Orders"}
		if !errors.Is(err, ErrKeyPredicate) {
			t.Error("KeyPredicateError should match ErrKeyPredicate")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("boom")
		err := &ConfigError{
			Option:  "WithSchema",
			Value:   nil,
			Message: "schema must not be nil",
			Cause:   cause,
		}
		want := "configuration error for WithSchema: schema must not be nil: boom"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with value", func(t *testing.T) {
		err := &ConfigError{Option: "format", Value: "xml", Message: "unsupported output format"}
		want := "configuration error for format (value: xml): unsupported output format"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}
