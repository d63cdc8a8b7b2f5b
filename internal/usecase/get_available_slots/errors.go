package get_available_slots

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("get_available_slots: resource not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_available_slots: invalid date range")

	// ErrRangeTooWide возвращается, когда диапазон дат превышает максимальный
	ErrRangeTooWide = errors.New("get_available_slots: date range is too wide")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
