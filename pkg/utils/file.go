package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto, usado como sufixo de arquivos temporários
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// WriteFileAtomic escreve em um arquivo temporário no mesmo diretório e o renomeia
// para path, de modo que leitores nunca vejam um arquivo pela metade.
// O arquivo final fica com as permissões perm, independente da umask.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
	}

	suffix, err := GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar nome temporário: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.%s.tmp", path, suffix)
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}

	if err := f.Chmod(perm); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("erro ao ajustar permissões: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("erro ao fechar arquivo temporário: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("erro ao renomear arquivo temporário: %w", err)
	}

	return nil
}
