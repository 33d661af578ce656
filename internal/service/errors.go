package service

import "errors"

var (
	// ErrNoQuestions means there is nothing to review in the requested bank.
	ErrNoQuestions = errors.New("no questions to review")
	// ErrInvalidInput wraps every validation failure returned by the services.
	ErrInvalidInput = errors.New("invalid input")
)
