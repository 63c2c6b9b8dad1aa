package expense

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLedger() *Ledger {
	return NewLedger(
		Expense{ID: 1, Date: "2025-01-01", Description: "Coffee", Amount: dec("3")},
		Expense{ID: 2, Date: "2025-01-02", Description: "Books, pens and a very long description", Amount: dec("15.99")},
	)
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, sampleLedger()))

	want := "id,date,description,amount\r\n" +
		"1,2025-01-01,Coffee,3\r\n" +
		"2,2025-01-02,\"Books, pens and a very long description\",15.99\r\n"
	assert.Equal(t, want, buf.String())
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, sampleLedger()))

	back, err := DecodeLedger(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleLedger().Expenses()[1].Description, back.Expenses()[1].Description)
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportYAML(&buf, sampleLedger()))

	want := `- id: 1
  date: "2025-01-01"
  description: Coffee
  amount: 3
- id: 2
  date: "2025-01-02"
  description: Books, pens and a very long description
  amount: 15.99
`
	assert.Equal(t, want, buf.String())
}

func TestParseExportFormat(t *testing.T) {
	for _, s := range []string{"csv", "CSV", "json", "yaml"} {
		_, err := ParseExportFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseExportFormat("xml")
	assert.Error(t, err)
}

func TestExportFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, ExportFile(filename, sampleLedger(), CSV))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id,date,description,amount")
}

func TestExportFile_Failures(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		err := ExportFile(filepath.Join(t.TempDir(), "nope", "out.csv"), sampleLedger(), CSV)
		assert.ErrorIs(t, err, ErrExportFailed)
		assert.NotErrorIs(t, err, ErrExportPermission)
		var xerr *ExportError
		assert.ErrorAs(t, err, &xerr)
	})

	t.Run("permission denied", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced")
		}
		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0o500))
		t.Cleanup(func() { os.Chmod(dir, 0o700) })

		err := ExportFile(filepath.Join(dir, "out.csv"), sampleLedger(), CSV)
		assert.ErrorIs(t, err, ErrExportPermission)
		assert.NotErrorIs(t, err, ErrExportFailed)
	})
}

func TestExportError_Kind(t *testing.T) {
	denied := &ExportError{Filename: "out.csv", Err: &fs.PathError{Op: "open", Path: "out.csv", Err: fs.ErrPermission}}
	assert.ErrorIs(t, denied, ErrExportPermission)
	assert.NotErrorIs(t, denied, ErrExportFailed)
	assert.ErrorIs(t, denied, fs.ErrPermission)

	other := &ExportError{Filename: "out.csv", Err: &fs.PathError{Op: "open", Path: "out.csv", Err: fs.ErrNotExist}}
	assert.ErrorIs(t, other, ErrExportFailed)
	assert.NotErrorIs(t, other, ErrExportPermission)
}
