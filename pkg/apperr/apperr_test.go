package apperr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rmoreira/quizcraft/pkg/apperr"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		apperr.ErrValidation,
		apperr.ErrAuthentication,
		apperr.ErrForbidden,
		apperr.ErrNotFound,
		apperr.ErrConflict,
		apperr.ErrStorage,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinels %v and %v must not match", a, b)
			}
		}
	}
}

func TestStorageWrapping(t *testing.T) {
	cause := errors.New("disk on fire")
	err := apperr.Storage("insert row", cause)

	if !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("expected ErrStorage match, got: %v", err)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("storage error must not match ErrNotFound")
	}
	// original cause text is retained for logs
	if got := err.Error(); !strings.Contains(got, "disk on fire") || !strings.Contains(got, "insert row") {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestWrappedSentinelSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("activity 42: %w", apperr.ErrForbidden)
	err = fmt.Errorf("update: %w", err)
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden through wrapping, got: %v", err)
	}
}
