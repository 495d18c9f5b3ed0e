package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProvider marks network or API failures from the content provider.
	// The operation that triggered the call aborts with no partial result.
	ErrProvider = errors.New("provider error")
	// ErrQuotaDeclined marks an expensive call the operator refused to pay
	// for. Callers short-circuit instead of retrying.
	ErrQuotaDeclined = errors.New("quota declined")
	// ErrPersistence marks model save/load failures. These are absorbed at
	// the model store boundary and never fatal.
	ErrPersistence = errors.New("persistence error")
	// ErrInput marks malformed operator input. Local to interactive loops,
	// which re-prompt instead of propagating.
	ErrInput = errors.New("input error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProvider
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
