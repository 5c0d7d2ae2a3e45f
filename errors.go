package flw

import ierr "github.com/KriaaCompany/flw-sdk/internal/errors"

// Errors raised by the SDK itself. Match them with flw.Is. Failures of the
// HTTP transport are returned exactly as the transport produced them and
// match none of these.
var (
	ErrCallback   = ierr.ErrCallback
	ErrDecode     = ierr.ErrDecode
	ErrEncode     = ierr.ErrEncode
	ErrConfig     = ierr.ErrConfig
	ErrValidation = ierr.ErrValidation
	ErrNotFound   = ierr.ErrNotFound
)

// Is reports whether err is, or is marked with, target
func Is(err, target error) bool {
	return ierr.Is(err, target)
}

// Hints returns the user-facing hints attached to an SDK error
func Hints(err error) []string {
	return ierr.GetAllHints(err)
}
