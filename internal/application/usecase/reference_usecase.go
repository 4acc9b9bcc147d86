package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Inventario-activos/internal/domain"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

// ReferenceUseCase expone las opciones id → nombre de marcas, categorías, salones y usuarios.
type ReferenceUseCase struct {
	repo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo}
}

// Options lista las opciones del tipo indicado (brand, category, room, user).
func (uc *ReferenceUseCase) Options(ctx context.Context, kind string) ([]entity.Option, error) {
	k := entity.ReferenceKind(strings.ToLower(strings.TrimSpace(kind)))
	if !k.Valid() {
		verr := &domain.ValidationError{}
		verr.Add("kind", "debe ser uno de: brand, category, room, user")
		return nil, verr
	}
	opts, err := uc.repo.ListOptions(ctx, k)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = []entity.Option{}
	}
	return opts, nil
}
