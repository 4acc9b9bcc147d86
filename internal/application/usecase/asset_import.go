package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/domain"
)

// Import crea los activos fila por fila. Las filas inválidas se reportan y no detienen el resto;
// un error de infraestructura o el agotamiento de números sí corta la importación.
func (uc *AssetUseCase) Import(ctx context.Context, actorID int64, rows []dto.AssetRequest) (*dto.ImportResult, error) {
	res := &dto.ImportResult{
		Created: make([]dto.AssetResponse, 0, len(rows)),
		Failed:  []dto.ImportFailure{},
	}
	for i, in := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out, err := uc.Create(ctx, actorID, in)
		if err == nil {
			res.Created = append(res.Created, *out)
			continue
		}
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			res.Failed = append(res.Failed, dto.ImportFailure{Line: i + 1, Message: "datos inválidos", Fields: verr.Fields})
		case errors.Is(err, domain.ErrConstraintViolation):
			res.Failed = append(res.Failed, dto.ImportFailure{Line: i + 1, Message: "referencia inexistente"})
		default:
			return res, err
		}
	}
	uc.log.Info().Int("created", len(res.Created)).Int("failed", len(res.Failed)).Msg("importación de activos")
	return res, nil
}
