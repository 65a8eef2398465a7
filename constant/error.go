package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrStorage
	ErrOutOfStock
	ErrEmptyCart
	ErrConfirmationRequired
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "incorrect username or password",
	ErrStorage:              "unable to save data",
	ErrOutOfStock:           "product is out of stock",
	ErrEmptyCart:            "cart is empty",
	ErrConfirmationRequired: "confirmation required",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrStorage:              http.StatusInsufficientStorage,
	ErrOutOfStock:           http.StatusConflict,
	ErrEmptyCart:            http.StatusBadRequest,
	ErrConfirmationRequired: http.StatusPreconditionRequired,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrStorage:              "0005",
	ErrOutOfStock:           "0006",
	ErrEmptyCart:            "0007",
	ErrConfirmationRequired: "0008",
}
