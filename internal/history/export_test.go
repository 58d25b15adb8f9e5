package history

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridsim/power-triangle/internal/model"
)

func TestExportCSV(t *testing.T) {
	store := NewStore(10)
	store.Add(model.Result{ActivePower: 100, ApparentPower: 125, ReactivePower: 75, PowerFactor: 0.8, Angle: 0.6435011087932844})
	store.Add(model.Result{ActivePower: 50, ApparentPower: 50, ReactivePower: 0, PowerFactor: 1, Angle: 0})

	dir := t.TempDir()
	path, err := store.ExportCSV(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), ExportFilePrefix))
	assert.True(t, strings.HasSuffix(path, ExportFileExtension))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + two snapshots

	assert.Equal(t, exportHeader, records[0])

	// Oldest snapshot first in the file.
	assert.Equal(t, "100.000000", records[1][1])
	assert.Equal(t, "125.000000", records[1][2])
	assert.Equal(t, "75.000000", records[1][3])
	assert.Equal(t, "0.800000", records[1][4])

	assert.Equal(t, "50.000000", records[2][1])
	assert.Equal(t, "1.000000", records[2][4])
	assert.Equal(t, "0.000000", records[2][5])
}

func TestExportCSV_EmptyHistory(t *testing.T) {
	store := NewStore(10)

	_, err := store.ExportCSV(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is empty")
}

func TestExportCSV_BadDirectory(t *testing.T) {
	store := NewStore(10)
	store.Add(model.Result{})

	_, err := store.ExportCSV(filepath.Join(t.TempDir(), "does", "not", "exist"))
	require.Error(t, err)
}
