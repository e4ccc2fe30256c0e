package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-valuation/internal/domain"
	"github.com/jhoicas/inventory-valuation/internal/domain/entity"
	"github.com/jhoicas/inventory-valuation/internal/domain/inventory"
)

// La reconstrucción reanudada desde un checkpoint debe coincidir con la reconstrucción completa.
func TestCheckpoint_EquivalenteAReconstruccionCompleta(t *testing.T) {
	cuts := []int{-60, -30, -1, 0}
	for seed := int64(1); seed <= 10; seed++ {
		events := randomEvents(seed, 500, 6)
		full := inventory.ReplayEvents(events, windowStart)

		for _, cut := range cuts {
			at := day(cut)

			base := inventory.NewReplay(at)
			i := 0
			for ; i < len(events) && events[i].OccurredAt.Before(at); i++ {
				base.Apply(events[i])
			}
			cp, err := base.Checkpoint(at)
			require.NoError(t, err)

			resumed, err := inventory.ResumeReplay(cp, windowStart)
			require.NoError(t, err)
			for ; i < len(events); i++ {
				resumed.Apply(events[i])
			}

			assert.Equal(t, snapshot(full), snapshot(resumed.Finish()), "seed %d corte %d", seed, cut)
		}
	}
}

// Cadena mensual: el checkpoint al inicio de cada mes alimenta la ventana siguiente.
func TestCheckpoint_CadenaDeVentanas(t *testing.T) {
	events := []entity.StockEvent{
		ev("K", day(-3), 10, price("2.00"), entity.ReasonInitialStock),
		ev("K", day(5), -4, nil, entity.ReasonSold),
		ev("K", day(40), 6, price("3.00"), entity.ReasonManualUpdate),
		ev("K", day(45), -2, nil, entity.ReasonExpired),
	}
	february := day(31)

	jan := inventory.NewReplay(windowStart)
	i := 0
	for ; events[i].OccurredAt.Before(february); i++ {
		jan.Apply(events[i])
	}
	cp, err := jan.Checkpoint(february)
	require.NoError(t, err)
	janTotals := jan.Finish()

	feb, err := inventory.ResumeReplay(cp, february)
	require.NoError(t, err)
	for ; i < len(events); i++ {
		feb.Apply(events[i])
	}
	febTotals := feb.Finish()

	assertBucket(t, janTotals.Ending, 6, "12.0000", "cierre enero")
	assertBucket(t, febTotals.Opening, 6, "12.0000", "apertura febrero")
	assertBucket(t, febTotals.Purchases, 6, "18.0000", "compras febrero")
	assertBucket(t, febTotals.WriteOff, 2, "5.0000", "bajas febrero")
	assertBucket(t, febTotals.Ending, 10, "25.0000", "cierre febrero")
}

func TestCheckpoint_RechazaCorteAnteriorAlUltimoEvento(t *testing.T) {
	r := inventory.NewReplay(windowStart)
	r.Apply(ev("L", day(2), 1, price("1.00"), entity.ReasonManualUpdate))

	_, err := r.Checkpoint(day(2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.Checkpoint(day(3))
	assert.NoError(t, err)
}

func TestResumeReplay_RechazaCheckpointPosteriorAlInicio(t *testing.T) {
	cp, err := inventory.NewReplay(windowStart).Checkpoint(day(10))
	require.NoError(t, err)

	_, err = inventory.ResumeReplay(cp, windowStart)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckpoint_EsUnaCopia(t *testing.T) {
	r := inventory.NewReplay(windowStart)
	r.Apply(ev("M", day(-2), 3, price("1.00"), entity.ReasonInitialStock))
	cp, err := r.Checkpoint(day(-1))
	require.NoError(t, err)

	r.Apply(ev("M", day(1), -3, nil, entity.ReasonSold))

	assert.Equal(t, int64(3), cp.Positions["M"].Quantity, "el checkpoint no ve eventos posteriores")
}
