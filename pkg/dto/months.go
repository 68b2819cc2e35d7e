package dto

import "time"

// Spanish month names, display-only. The typed time.Month is the source
// of truth everywhere else; these strings never flow back into logic.
var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthAbbrevs = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// MonthName returns the full Spanish name for a month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// MonthAbbrev returns the short Spanish name for a month.
func MonthAbbrev(m time.Month) string {
	return monthAbbrevs[m-1]
}
