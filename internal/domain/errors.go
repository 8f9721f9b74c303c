package domain

import "errors"

var (
	ErrUnsupportedPeriod   = errors.New("period not supported")
	ErrUnsupportedLanguage = errors.New("language not supported")
	ErrInvalidAmount       = errors.New("amount must be a number")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrAmountTooLarge      = errors.New("amount is too large")
	ErrInvalidWeight       = errors.New("weight must be a number")
	ErrNegativeWeight      = errors.New("weight must not be negative")
	ErrWeightTooLarge      = errors.New("weight is too large")
)
