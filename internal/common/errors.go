// Package common defines shared constants and sentinel errors used across
// the personql server layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorDuplicateName = errors.New("duplicate name")

	// Remote snapshot errors.
	ErrorRemoteStatus = errors.New("unexpected remote status")
)

// DuplicateNameError reports an attempt to store a second person under an
// existing name. It matches ErrorDuplicateName via errors.Is.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrorDuplicateName, e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrorDuplicateName
}
