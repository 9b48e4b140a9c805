package utils

import "time"

// TruncateToDay normaliza uma data para meia-noite no fuso original
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
