package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/application/validation"
	"github.com/jhoicas/Inventario-activos/internal/domain"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

// DefaultMaxNumberAttempts intentos para obtener un número de activo libre.
const DefaultMaxNumberAttempts = 5

// AssetConfig parámetros opcionales del caso de uso.
type AssetConfig struct {
	MaxNumberAttempts int
	Now               func() time.Time
	Logger            *zerolog.Logger
	Metrics           Metrics
}

// AssetUseCase casos de uso del inventario de activos: alta con número generado,
// edición completa, borrado individual y masivo, y listado con filtros.
type AssetUseCase struct {
	repo        repository.AssetRepository
	refs        repository.ReferenceRepository
	txRunner    TxRunner
	generator   inventory.NumberGenerator
	maxAttempts int
	now         func() time.Time
	log         zerolog.Logger
	metrics     Metrics
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(
	repo repository.AssetRepository,
	refs repository.ReferenceRepository,
	txRunner TxRunner,
	generator inventory.NumberGenerator,
	cfg AssetConfig,
) *AssetUseCase {
	uc := &AssetUseCase{
		repo:        repo,
		refs:        refs,
		txRunner:    txRunner,
		generator:   generator,
		maxAttempts: cfg.MaxNumberAttempts,
		now:         cfg.Now,
		log:         zerolog.Nop(),
		metrics:     cfg.Metrics,
	}
	if cfg.Logger != nil {
		uc.log = *cfg.Logger
	}
	if uc.maxAttempts <= 0 {
		uc.maxAttempts = DefaultMaxNumberAttempts
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.metrics == nil {
		uc.metrics = noopMetrics{}
	}
	return uc
}

// GenerateNumber devuelve un número de 18 caracteres que no existe al momento de generarlo.
// Falla con domain.ErrGenerationExhausted si no lo consigue en maxAttempts intentos.
func (uc *AssetUseCase) GenerateNumber(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		number, ok, err := uc.candidate(ctx)
		if err != nil {
			return "", err
		}
		if ok {
			return number, nil
		}
	}
	return "", domain.ErrGenerationExhausted
}

// candidate toma un valor del generador y lo descarta si no tiene 18 caracteres o ya existe.
func (uc *AssetUseCase) candidate(ctx context.Context) (string, bool, error) {
	number := uc.generator.Next()
	if !inventory.ValidNumber(number) {
		uc.log.Warn().Str("number", number).Msg("número generado con longitud inválida")
		return "", false, nil
	}
	exists, err := uc.repo.ExistsByNumber(ctx, number)
	if err != nil {
		return "", false, fmt.Errorf("verificar número: %w", err)
	}
	if exists {
		uc.metrics.NumberCollision()
		uc.log.Warn().Str("number", number).Msg("colisión de número de activo, reintentando")
		return "", false, nil
	}
	return number, true, nil
}

// Create valida la entrada, asigna un número nuevo y persiste el activo.
// Date vacío toma la fecha de hoy; UserID cero toma actorID.
func (uc *AssetUseCase) Create(ctx context.Context, actorID int64, in dto.AssetRequest) (*dto.AssetResponse, error) {
	now := uc.now()
	asset, err := uc.validate(ctx, in, actorID, entity.DateOnly(now))
	if err != nil {
		uc.metrics.ObserveOperation("create", resultOf(err))
		return nil, err
	}
	asset.CreatedAt = now
	asset.UpdatedAt = now

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		number, ok, err := uc.candidate(ctx)
		if err != nil {
			uc.metrics.ObserveOperation("create", "error")
			return nil, err
		}
		if !ok {
			continue
		}
		asset.Number = number
		err = uc.repo.Create(ctx, asset)
		if errors.Is(err, domain.ErrDuplicate) {
			// Otro alta tomó el mismo número entre la verificación y el insert.
			uc.metrics.NumberCollision()
			uc.log.Warn().Str("number", number).Int("attempt", attempt).Msg("número duplicado al insertar, reintentando")
			continue
		}
		if err != nil {
			uc.metrics.ObserveOperation("create", resultOf(err))
			return nil, err
		}
		uc.metrics.ObserveOperation("create", "ok")
		return uc.reload(ctx, asset)
	}
	uc.metrics.ObserveOperation("create", "exhausted")
	uc.log.Error().Int("attempts", uc.maxAttempts).Msg("no se pudo generar un número de activo único")
	return nil, domain.ErrGenerationExhausted
}

// GetByID obtiene un activo por ID.
func (uc *AssetUseCase) GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return toAssetResponse(asset), nil
}

// Update reemplaza todos los campos editables del activo. Number nunca cambia.
// Date y UserID omitidos conservan el valor almacenado.
func (uc *AssetUseCase) Update(ctx context.Context, id int64, in dto.AssetRequest) (*dto.AssetResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		uc.metrics.ObserveOperation("update", "not_found")
		return nil, domain.ErrNotFound
	}
	next, err := uc.validate(ctx, in, current.UserID, current.Date)
	if err != nil {
		uc.metrics.ObserveOperation("update", resultOf(err))
		return nil, err
	}
	next.ID = current.ID
	next.Number = current.Number
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, next); err != nil {
		uc.metrics.ObserveOperation("update", resultOf(err))
		return nil, err
	}
	uc.metrics.ObserveOperation("update", "ok")
	return uc.reload(ctx, next)
}

// Delete elimina un activo por ID. domain.ErrNotFound si no existe.
func (uc *AssetUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.metrics.ObserveOperation("delete", "error")
		return err
	}
	if !deleted {
		uc.metrics.ObserveOperation("delete", "not_found")
		return domain.ErrNotFound
	}
	uc.metrics.ObserveOperation("delete", "ok")
	return nil
}

// BulkDelete elimina todos los ids que existan y reporta los que no se encontraron,
// sin abortar el lote por un faltante. Los ids repetidos se procesan una sola vez.
func (uc *AssetUseCase) BulkDelete(ctx context.Context, in dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	if err := validation.Struct(in).Err(); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(in.IDs))
	for _, id := range in.IDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	var out *dto.BulkDeleteResponse
	err := uc.txRunner.Run(ctx, func(assets repository.AssetRepository) error {
		res := &dto.BulkDeleteResponse{Deleted: []int64{}, NotFound: []int64{}}
		for _, id := range ids {
			deleted, err := assets.Delete(ctx, id)
			if err != nil {
				return err
			}
			if deleted {
				res.Deleted = append(res.Deleted, id)
			} else {
				res.NotFound = append(res.NotFound, id)
			}
		}
		out = res
		return nil
	})
	if err != nil {
		uc.metrics.ObserveOperation("bulk_delete", "error")
		return nil, err
	}
	uc.metrics.ObserveOperation("bulk_delete", "ok")
	uc.log.Info().Int("deleted", len(out.Deleted)).Int("not_found", len(out.NotFound)).Msg("borrado masivo de activos")
	return out, nil
}

// List lista activos con filtros, búsqueda, orden y paginación.
func (uc *AssetUseCase) List(ctx context.Context, in dto.AssetListRequest) (*dto.AssetListResponse, error) {
	q, err := toAssetQuery(in)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// All recorre página a página todos los activos que cumplen la consulta, a partir de in.Offset.
// La secuencia es finita y se detiene al primer error.
func (uc *AssetUseCase) All(ctx context.Context, in dto.AssetListRequest) iter.Seq2[dto.AssetResponse, error] {
	return func(yield func(dto.AssetResponse, error) bool) {
		page := in
		if page.Limit <= 0 {
			page.Limit = dto.MaxLimit
		}
		for {
			res, err := uc.List(ctx, page)
			if err != nil {
				yield(dto.AssetResponse{}, err)
				return
			}
			for _, item := range res.Items {
				if !yield(item, nil) {
					return
				}
			}
			page.Offset += len(res.Items)
			if len(res.Items) < res.Page.Limit || page.Offset >= res.Page.Total {
				return
			}
		}
	}
}

// DisplayMeta color e ícono de una condición. Entra en pánico si la condición no es del enum.
func (uc *AssetUseCase) DisplayMeta(c entity.Condition) entity.DisplayMeta {
	return c.Meta()
}

// Conditions lista las condiciones con etiqueta y metadatos de presentación.
func (uc *AssetUseCase) Conditions() []dto.ConditionOption {
	out := make([]dto.ConditionOption, 0, len(entity.Conditions))
	for _, c := range entity.Conditions {
		meta := c.Meta()
		out = append(out, dto.ConditionOption{Value: c, Label: c.Label(), Color: meta.Color, Icon: meta.Icon})
	}
	return out
}

// validate aplica las reglas de campo y verifica las claves foráneas, acumulando todas las fallas.
func (uc *AssetUseCase) validate(
	ctx context.Context,
	in dto.AssetRequest,
	defaultUserID int64,
	defaultDate time.Time,
) (*entity.Asset, error) {
	in.Name = strings.TrimSpace(in.Name)
	// Las fallas de decodificación van primero: su mensaje prevalece sobre "es requerido".
	verr := &domain.ValidationError{}
	for _, f := range in.Invalid {
		verr.Add(f.Field, f.Message)
	}
	for _, f := range validation.Struct(in).Fields {
		verr.Add(f.Field, f.Message)
	}

	date := defaultDate
	if in.Date != "" && !verr.Has("date") {
		parsed, err := time.ParseInLocation(dto.DateLayout, in.Date, defaultDate.Location())
		if err != nil {
			verr.Add("date", "fecha inválida")
		}
		date = parsed
	}

	userID := in.UserID
	if userID == 0 {
		userID = defaultUserID
	}
	if userID <= 0 && !verr.Has("user_id") {
		verr.Add("user_id", "es requerido")
	}

	refs := []struct {
		field string
		kind  entity.ReferenceKind
		id    int64
	}{
		{"brand_id", entity.ReferenceBrand, in.BrandID},
		{"category_id", entity.ReferenceCategory, in.CategoryID},
		{"room_id", entity.ReferenceRoom, in.RoomID},
		{"user_id", entity.ReferenceUser, userID},
	}
	for _, ref := range refs {
		if ref.id <= 0 || verr.Has(ref.field) {
			continue
		}
		ok, err := uc.refs.Exists(ctx, ref.kind, ref.id)
		if err != nil {
			return nil, fmt.Errorf("verificar %s: %w", ref.field, err)
		}
		if !ok {
			verr.Add(ref.field, "no existe")
		}
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return &entity.Asset{
		Name:       in.Name,
		Quantity:   *in.Quantity,
		BrandID:    in.BrandID,
		CategoryID: in.CategoryID,
		RoomID:     in.RoomID,
		UserID:     userID,
		Condition:  entity.Condition(in.Condition),
		Date:       date,
	}, nil
}

// reload relee el activo para incluir los nombres de sus relaciones.
func (uc *AssetUseCase) reload(ctx context.Context, asset *entity.Asset) (*dto.AssetResponse, error) {
	stored, err := uc.repo.GetByID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return toAssetResponse(asset), nil
	}
	return toAssetResponse(stored), nil
}

func toAssetQuery(in dto.AssetListRequest) (repository.AssetQuery, error) {
	verr := &domain.ValidationError{}
	in.DefaultPage()

	sort := repository.AssetSort(strings.ToLower(strings.TrimSpace(in.Sort)))
	if !sort.Valid() {
		verr.Add("sort", "columna no ordenable")
	}
	var desc bool
	switch strings.ToLower(strings.TrimSpace(in.Direction)) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		verr.Add("direction", "debe ser asc o desc")
	}
	conditions := make([]entity.Condition, 0, len(in.Conditions))
	for _, c := range in.Conditions {
		cond := entity.Condition(strings.ToLower(strings.TrimSpace(c)))
		if !cond.Valid() {
			verr.Add("condition", "debe ser uno de: new, used, damaged")
			continue
		}
		conditions = append(conditions, cond)
	}
	if err := verr.Err(); err != nil {
		return repository.AssetQuery{}, err
	}
	return repository.AssetQuery{
		Filter: repository.AssetFilter{
			CategoryIDs: in.CategoryIDs,
			RoomIDs:     in.RoomIDs,
			BrandIDs:    in.BrandIDs,
			Conditions:  conditions,
		},
		Search: strings.TrimSpace(in.Search),
		Sort:   sort,
		Desc:   desc,
		Limit:  in.Limit,
		Offset: in.Offset,
	}, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConstraintViolation):
		return "constraint"
	}
	return "error"
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:            a.ID,
		Number:        a.Number,
		Name:          a.Name,
		Quantity:      a.Quantity,
		BrandID:       a.BrandID,
		Brand:         a.BrandName,
		CategoryID:    a.CategoryID,
		Category:      a.CategoryName,
		RoomID:        a.RoomID,
		Room:          a.RoomName,
		Condition:     a.Condition,
		ConditionMeta: a.Condition.Meta(),
		Date:          a.Date.Format(dto.DateLayout),
		UserID:        a.UserID,
		User:          a.UserName,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
