package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundUpToStep arredonda um valor inteiro para cima até o próximo múltiplo de step
func RoundUpToStep(value int64, step int64) int64 {
	if step <= 1 {
		return value
	}
	return ((value + step - 1) / step) * step
}

// Float64Ptr retorna um ponteiro para o valor informado
func Float64Ptr(f float64) *float64 {
	return &f
}

// Int64Ptr retorna um ponteiro para o valor informado
func Int64Ptr(i int64) *int64 {
	return &i
}
