// services/errors.go
package services

import (
	"errors"

	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

// storeError translates raw store errors into the application taxonomy.
// AppErrors pass through untouched so validation failures keep their status.
func storeError(resource string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, store.ErrNotFound) {
		return utils.NewNotFoundError(resource)
	}
	return utils.NewStoreUnavailableError(err)
}
