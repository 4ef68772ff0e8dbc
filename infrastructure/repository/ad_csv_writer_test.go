package repository

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

func TestAdCSVWriterWriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ads.csv")
	writer := NewAdCSVWriter(path)

	rows := []domain.AdRow{
		{ID: "1", Name: "Anúncio, com vírgula", CallToActionTypes: "SHOP_NOW, LEARN_MORE", AccountID: "act_111"},
		{ID: "2", EffectiveStatus: "ACTIVE", AccountID: "act_222"},
	}

	require.NoError(t, writer.WriteRows(context.Background(), rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.AdRowColumns, records[0])
	assert.Equal(t, rows[0].Values(), records[1])
	assert.Equal(t, rows[1].Values(), records[2])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestAdCSVWriterWithoutRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ads.csv")

	require.NoError(t, NewAdCSVWriter(path).WriteRows(context.Background(), nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,created_time,updated_time,name,call_to_action_types,website_urls,effective_status,account_id\n", string(content))
}
