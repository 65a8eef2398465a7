package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/utils/errors"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorHTTPCode(err), ErrorResponse{
		Code:    customError(err).ErrorCode(),
		Message: customError(err).Error(),
	})
}

func errorHTTPCode(err error) int {
	return customError(err).ErrorHTTPCode()
}

// customError unwraps err into the error taxonomy; anything unknown is internal.
func customError(err error) errors.CustomError {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return errors.SetCustomError(constant.ErrInternal)
}

// toastText is the shopper-facing wording for a failed request.
func toastText(err error) string {
	switch customError(err).Type() {
	case constant.ErrOutOfStock:
		return constant.ToastOutOfStock
	case constant.ErrNotFound:
		return constant.ToastNotFound
	case constant.ErrEmptyCart:
		return constant.ToastEmptyCart
	case constant.ErrInvalidRequest:
		return constant.ToastInvalid
	case constant.ErrUnauthorize:
		return constant.ToastLoginFailed
	case constant.ErrStorage:
		return constant.ToastStorageFailed
	case constant.ErrConfirmationRequired:
		return constant.ToastResetConfirm
	default:
		return constant.ToastGenericError
	}
}
