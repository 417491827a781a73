package sim_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"cbdc-sim/internal/model"
	"cbdc-sim/internal/scenario"
	"cbdc-sim/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryColumns(t *testing.T) {
	h := sim.History{
		{"gdp": 1, "zeta": 2},
		{"gdp": 1, "alpha": 3},
	}

	cols := h.Columns()
	fixed := model.StateFieldNames()
	require.Len(t, cols, len(fixed)+2)
	assert.Equal(t, fixed, cols[:len(fixed)])
	// Extension keys follow the schema, in lexical order.
	assert.Equal(t, []string{"alpha", "zeta"}, cols[len(fixed):])
}

func TestResultFinal(t *testing.T) {
	empty := &sim.Result{}
	assert.Nil(t, empty.Final())

	r := &sim.Result{History: sim.History{{"gdp": 1}, {"gdp": 2}}}
	assert.Equal(t, 2.0, r.Final()["gdp"])
}

func TestWriteHistoryCSV(t *testing.T) {
	cfg := scenario.Default()
	cfg.Horizon = 3
	engine, err := sim.New(cfg)
	require.NoError(t, err)
	result, err := engine.Run()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, sim.WriteHistoryCSV(path, result.History))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus one row per snapshot, every row with the same width.
	require.Len(t, rows, 1+len(result.History))
	assert.Equal(t, "period", rows[0][0])
	assert.Equal(t, len(result.History.Columns())+1, len(rows[0]))
	for i, row := range rows[1:] {
		assert.Len(t, row, len(rows[0]), "row %d", i)
	}

	// Extension keys that appear mid-run leave empty cells in earlier rows.
	assert.Contains(t, rows[0], "money_velocity")
}
