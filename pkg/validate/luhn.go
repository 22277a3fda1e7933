package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn checks an external payment reference number.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
