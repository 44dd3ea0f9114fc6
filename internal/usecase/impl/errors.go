package impl

import (
	domainerrors "github.com/dac-os/auth/internal/domain/errors"

	"github.com/pkg/errors"
)

// asAppError keeps errors the repositories already classified and reports anything else as a database failure.
func asAppError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
