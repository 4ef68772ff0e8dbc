package utils

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleepRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleepZeroDuration(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), 0))
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	err := WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "id\n1\n")
		return err
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomicPermissions(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		perm os.FileMode
	}{
		{name: "Saída legível por outros usuários", perm: 0o644},
		{name: "Token restrito ao dono", perm: 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.perm.String()+".csv")

			err := WriteFileAtomic(path, tt.perm, func(w io.Writer) error {
				_, err := io.WriteString(w, "id\n")
				return err
			})
			require.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.perm, info.Mode().Perm())
		})
	}
}

func TestWriteFileAtomicKeepsPreviousContentOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.csv")
	require.NoError(t, os.WriteFile(path, []byte("antigo"), 0o600))

	err := WriteFileAtomic(path, 0o600, func(w io.Writer) error {
		io.WriteString(w, "parcial")
		return errors.New("falhou")
	})
	require.Error(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "antigo", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "EAAGm0PX4Z...", MaskToken("EAAGm0PX4ZCpsBAKZA"))
	assert.Equal(t, "***", MaskToken("short"))
}
