package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vittahub/internal/infrastructure/catalog"
	"vittahub/internal/repository"
)

func newTestProcedureUsecase() ProcedureUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewProcedureUsecase(log, repository.NewProcedureRepository(catalog.Procedures()))
}

func TestProcedureUsecase_ListProcedures(t *testing.T) {
	uc := newTestProcedureUsecase()

	procedures, err := uc.ListProcedures(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, procedures.Total)

	// Prices carry the pt-BR label
	assert.Equal(t, "Consulta Cardiológica", procedures.Procedures[0].Name)
	assert.Equal(t, "R$ 250,00", procedures.Procedures[0].PriceLabel)
}

func TestProcedureUsecase_ListProceduresFiltered(t *testing.T) {
	uc := newTestProcedureUsecase()

	procedures, err := uc.ListProcedures(context.Background(), "ELETRO")
	require.NoError(t, err)
	require.Equal(t, 1, procedures.Total)
	assert.Equal(t, "Eletrocardiograma (ECG)", procedures.Procedures[0].Name)

	procedures, err = uc.ListProcedures(context.Background(), "ressonância")
	require.NoError(t, err)
	assert.Equal(t, 0, procedures.Total)
}
