package docfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	platformerrors "github.com/jmgilman/go/errors"
)

// Error codes specific to the document provider. Not-found and denied
// reuse platformerrors.CodeNotFound and platformerrors.CodeForbidden.
const (
	// CodeNotADirectory indicates a child listing was requested on a non-directory
	CodeNotADirectory platformerrors.ErrorCode = "NOT_A_DIRECTORY"

	// CodeInitFailed indicates the provider root could not be established
	CodeInitFailed platformerrors.ErrorCode = "INIT_FAILED"

	// CodeCanceled indicates the caller abandoned the operation
	CodeCanceled platformerrors.ErrorCode = "CANCELED"
)

// NotFoundf returns a not-found error
func NotFoundf(format string, args ...any) error {
	return platformerrors.Newf(platformerrors.CodeNotFound, format, args...)
}

// Deniedf returns a denied error
func Deniedf(format string, args ...any) error {
	return platformerrors.Newf(platformerrors.CodeForbidden, format, args...)
}

// NotADirectoryf returns a not-a-directory error
func NotADirectoryf(format string, args ...any) error {
	return platformerrors.Newf(CodeNotADirectory, format, args...)
}

// InitFailed wraps the cause of a failed provider initialization
func InitFailed(err error, format string, args ...any) error {
	if err == nil {
		return platformerrors.Newf(CodeInitFailed, format, args...)
	}
	return platformerrors.Wrapf(err, CodeInitFailed, format, args...)
}

// Canceled wraps a context error. An expired deadline is a timeout, any
// other cancellation is CodeCanceled. The context error stays in the chain.
func Canceled(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return platformerrors.Wrap(err, platformerrors.CodeTimeout, "operation timed out")
	}
	return platformerrors.Wrap(err, CodeCanceled, "operation canceled")
}

// IsNotFound reports whether err is a not-found failure
func IsNotFound(err error) bool {
	return platformerrors.GetCode(err) == platformerrors.CodeNotFound
}

// IsDenied reports whether err is a denied failure
func IsDenied(err error) bool {
	return platformerrors.GetCode(err) == platformerrors.CodeForbidden
}

// IsNotADirectory reports whether err is a not-a-directory failure
func IsNotADirectory(err error) bool {
	return platformerrors.GetCode(err) == CodeNotADirectory
}

// IsCanceled reports whether err came from an abandoned or expired context
func IsCanceled(err error) bool {
	code := platformerrors.GetCode(err)
	return code == CodeCanceled || code == platformerrors.CodeTimeout
}

// IsInitFailed reports whether err is a fatal initialization failure
func IsInitFailed(err error) bool {
	return platformerrors.GetCode(err) == CodeInitFailed
}

// ClassifyFSError maps a storage error onto the provider's error codes.
// Errors that are already classified pass through unchanged.
func ClassifyFSError(err error, op, target string) error {
	if err == nil {
		return nil
	}
	var platformErr platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return err
	}

	msg := fmt.Sprintf("%s %s", op, target)
	switch {
	// ENOTDIR means a path component is a regular file, so the target cannot exist.
	// ELOOP is a symlink cycle, which resolves to nothing, the same as a dangling link.
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.ELOOP):
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, msg)
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.Wrap(err, platformerrors.CodeForbidden, msg)
	case errors.Is(err, fs.ErrExist):
		return platformerrors.Wrap(err, platformerrors.CodeAlreadyExists, msg)
	default:
		return platformerrors.Wrap(err, platformerrors.CodeInternal, msg)
	}
}
