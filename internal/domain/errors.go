package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrInvalidRange se devuelve antes de ejecutar el motor cuando from/to faltan o from > to.
	ErrInvalidRange = fmt.Errorf("%w: rango de fechas inválido", ErrInvalidInput)
	// ErrRangeTooLarge el desglose mensual supera el máximo de días configurado.
	ErrRangeTooLarge = fmt.Errorf("%w: rango de fechas demasiado amplio", ErrInvalidInput)
)
