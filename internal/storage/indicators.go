package storage

import (
	"errors"
	"time"
)

// ErrUnknownIndicator indica que el nombre pedido no corresponde a ninguna
// serie conocida.
var ErrUnknownIndicator = errors.New("indicador desconocido")

// IndicatorValue es un punto de una serie de indicador económico (UF, dólar,
// euro, IPC, IMACEC, tasa de desempleo).
type IndicatorValue struct {
	Fecha time.Time `json:"fecha"`
	Valor float64   `json:"valor"`
}
