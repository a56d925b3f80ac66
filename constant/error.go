package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrConflict
	ErrForbidden
	ErrDistributionInvalid
	ErrAllocationBelowPicked
	ErrOverReview
	ErrQuantityOutOfRange
	ErrChallanRequired
	ErrInvalidDispatchStatus
	ErrNothingToDispatch
	ErrDuplicateRequest
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrConflict:              "data was modified by another request, reload and retry",
	ErrForbidden:             "forbidden",
	ErrDistributionInvalid:   "invalid batch distribution",
	ErrAllocationBelowPicked: "allocation is below picked quantity",
	ErrOverReview:            "reviewed quantity exceeds picked quantity",
	ErrQuantityOutOfRange:    "quantity out of range",
	ErrChallanRequired:       "challan must be generated before dispatch",
	ErrInvalidDispatchStatus: "invalid dispatch status",
	ErrNothingToDispatch:     "nothing left to dispatch",
	ErrDuplicateRequest:      "request is already being processed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrConflict:              http.StatusConflict,
	ErrForbidden:             http.StatusForbidden,
	ErrDistributionInvalid:   http.StatusBadRequest,
	ErrAllocationBelowPicked: http.StatusBadRequest,
	ErrOverReview:            http.StatusBadRequest,
	ErrQuantityOutOfRange:    http.StatusBadRequest,
	ErrChallanRequired:       http.StatusBadRequest,
	ErrInvalidDispatchStatus: http.StatusBadRequest,
	ErrNothingToDispatch:     http.StatusBadRequest,
	ErrDuplicateRequest:      http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrConflict:              "0005",
	ErrForbidden:             "0006",
	ErrDistributionInvalid:   "0007",
	ErrAllocationBelowPicked: "0008",
	ErrOverReview:            "0009",
	ErrQuantityOutOfRange:    "0010",
	ErrChallanRequired:       "0011",
	ErrInvalidDispatchStatus: "0012",
	ErrNothingToDispatch:     "0013",
	ErrDuplicateRequest:      "0014",
}
