package export

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// minutesToTime formatea minutos como HH:MM para planillas y PDF.
func minutesToTime(minutes float64) string {
	if minutes <= 0 {
		return "0:00"
	}
	total := int(minutes)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// formatRut agrega los puntos de miles al cuerpo del rut: 12345678-9 queda
// 12.345.678-9. Ruts sin guión se devuelven tal cual.
func formatRut(rut string) string {
	parts := strings.SplitN(rut, "-", 2)
	if len(parts) != 2 {
		return rut
	}

	body := strings.ReplaceAll(parts[0], ".", "")
	n, err := strconv.Atoi(body)
	if err != nil {
		return rut
	}

	var b strings.Builder
	digits := strconv.Itoa(n)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String() + "-" + parts[1]
}
