package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceInactive возвращается, когда ресурс выведен из эксплуатации
	ErrResourceInactive = errors.New("create_booking: resource is not active")

	// ErrResourceUnderMaintenance возвращается, когда ресурс на обслуживании в указанную дату
	ErrResourceUnderMaintenance = errors.New("create_booking: resource is under maintenance")

	// ErrInvalidTimeSlot возвращается, когда интервал не ложится на фиксированную сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: interval does not match a fixed slot")

	// ErrInvalidDate возвращается при попытке бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда бронирование нарушает minNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrOwnerConflict возвращается, когда у владельца уже есть бронирование в это время
	ErrOwnerConflict = errors.New("create_booking: owner already has a booking at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
