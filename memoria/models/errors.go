package models

import "errors"

// DEFINICION DE ERRORES
var (
	ErrUnknownProcess       = errors.New("unknown process")
	ErrPageOutOfRange       = errors.New("page out of range")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrDuplicateProcess     = errors.New("duplicate process")
	ErrInvalidPageCount     = errors.New("invalid page count")
	ErrInvalidPID           = errors.New("invalid pid")
	ErrUnknownAlgorithm     = errors.New("unknown algorithm")
)
