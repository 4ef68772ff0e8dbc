package repository

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/pkg/utils"
)

type AdRowWriter interface {
	WriteRows(ctx context.Context, rows []domain.AdRow) error
}

// O arquivo de saída é lido por outros processos do pipeline
const outputFileMode = 0o644

type adCSVWriter struct {
	path string
}

func NewAdCSVWriter(path string) AdRowWriter {
	return &adCSVWriter{path: path}
}

// WriteRows grava cabeçalho e linhas de uma vez; o arquivo anterior só é
// substituído quando tudo foi escrito.
func (w *adCSVWriter) WriteRows(_ context.Context, rows []domain.AdRow) error {
	err := utils.WriteFileAtomic(w.path, outputFileMode, func(out io.Writer) error {
		writer := csv.NewWriter(out)
		if err := writer.Write(domain.AdRowColumns); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writer.Write(row.Values()); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"path": w.path,
		"rows": len(rows),
	}).Info("Arquivo de anúncios salvo")

	return nil
}
