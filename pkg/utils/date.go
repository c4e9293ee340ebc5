package utils

import "time"

// FirstDayOfMonth retorna a meia-noite do primeiro dia do mês da data, em UTC.
// A data é convertida para UTC antes de extrair o mês para que o período não
// dependa do fuso do servidor.
func FirstDayOfMonth(date time.Time) time.Time {
	utc := date.UTC()
	return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
}
