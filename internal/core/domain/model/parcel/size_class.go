package parcel

import (
	"fmt"
	"strings"

	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// SizeClass is the declared physical size of a parcel.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// SizeClassFromString parses a size class from its string representation,
// ignoring case and surrounding whitespace.
func SizeClassFromString(s string) (SizeClass, error) {
	size := SizeClass(strings.ToLower(strings.TrimSpace(s)))
	if err := size.Validate(); err != nil {
		return "", err
	}
	return size, nil
}

// Validate checks that the size class is one of the enumerated values.
func (s SizeClass) Validate() error {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("size class",
		fmt.Errorf("%q is not a valid size class", string(s)))
}

// String implements fmt.Stringer.
func (s SizeClass) String() string {
	return string(s)
}
