package optimizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/wb-promote-cli/pkg/clierrors"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		from         string
		to           string
		defaultDays  int
		expectedFrom string
		expectedTo   string
		expectedDays int
		hasError     bool
	}{
		{
			name:         "Sem datas - janela padrão termina ontem",
			defaultDays:  3,
			expectedFrom: "2026-08-20",
			expectedTo:   "2026-08-22",
			expectedDays: 3,
		},
		{
			name:         "Sem datas - janela de um dia",
			defaultDays:  1,
			expectedFrom: "2026-08-22",
			expectedTo:   "2026-08-22",
			expectedDays: 1,
		},
		{
			name:         "Datas explícitas válidas",
			from:         "2026-08-01",
			to:           "2026-08-03",
			defaultDays:  3,
			expectedFrom: "2026-08-01",
			expectedTo:   "2026-08-03",
			expectedDays: 3,
		},
		{
			name:         "Mesma data para início e fim",
			from:         "2026-08-10",
			to:           "2026-08-10",
			defaultDays:  7,
			expectedFrom: "2026-08-10",
			expectedTo:   "2026-08-10",
			expectedDays: 1,
		},
		{
			name:         "Intervalo de exatamente 31 dias é aceito",
			from:         "2026-07-01",
			to:           "2026-07-31",
			defaultDays:  3,
			expectedFrom: "2026-07-01",
			expectedTo:   "2026-07-31",
			expectedDays: 31,
		},
		{
			name:        "Só a data inicial é erro",
			from:        "2026-08-01",
			defaultDays: 3,
			hasError:    true,
		},
		{
			name:        "Só a data final é erro",
			to:          "2026-08-03",
			defaultDays: 3,
			hasError:    true,
		},
		{
			name:        "Início depois do fim é erro",
			from:        "2026-08-10",
			to:          "2026-08-01",
			defaultDays: 3,
			hasError:    true,
		},
		{
			name:        "Intervalo acima de 31 dias é erro",
			from:        "2026-07-01",
			to:          "2026-08-01",
			defaultDays: 3,
			hasError:    true,
		},
		{
			name:        "Formato de data inválido é erro",
			from:        "01/08/2026",
			to:          "2026-08-03",
			defaultDays: 3,
			hasError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, dates, err := ResolveDateRange(tt.from, tt.to, tt.defaultDays, now)

			if tt.hasError {
				assert.Error(t, err)
				assert.True(t, clierrors.IsValidation(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFrom, period.From)
			assert.Equal(t, tt.expectedTo, period.To)
			assert.Equal(t, tt.expectedDays, period.Days)
			assert.Len(t, dates, tt.expectedDays)
			assert.Equal(t, tt.expectedFrom, dates[0])
			assert.Equal(t, tt.expectedTo, dates[len(dates)-1])
		})
	}
}
