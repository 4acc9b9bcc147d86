package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
	"github.com/jhoicas/Inventario-activos/internal/domain"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const actorID int64 = 1

var fixedNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

// seqGenerator devuelve los valores dados en orden y luego un contador creciente.
type seqGenerator struct {
	mu     sync.Mutex
	values []string
	n      int64
}

func (g *seqGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.values) > 0 {
		v := g.values[0]
		g.values = g.values[1:]
		return v
	}
	g.n++
	return inventory.FormatNumber(g.n)
}

// countingMetrics registra llamadas para verificar la instrumentación.
type countingMetrics struct {
	mu         sync.Mutex
	ops        map[string]int
	collisions int
}

func (m *countingMetrics) ObserveOperation(op, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ops == nil {
		m.ops = map[string]int{}
	}
	m.ops[op+":"+result]++
}

func (m *countingMetrics) NumberCollision() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collisions++
}

type fixture struct {
	store   *memory.Store
	uc      *usecase.AssetUseCase
	gen     *seqGenerator
	metrics *countingMetrics
}

func newFixture(t *testing.T, preset ...string) *fixture {
	t.Helper()
	store := memory.NewStore()
	for id := int64(1); id <= 5; id++ {
		store.PutReference(entity.ReferenceBrand, id, fmt.Sprintf("Marca %d", id))
		store.PutReference(entity.ReferenceCategory, id, fmt.Sprintf("Categoría %d", id))
		store.PutReference(entity.ReferenceRoom, id, fmt.Sprintf("Salón %d", id))
	}
	store.PutReference(entity.ReferenceUser, 1, "Ana")
	store.PutReference(entity.ReferenceUser, 2, "Luis")

	gen := &seqGenerator{values: preset}
	metrics := &countingMetrics{}
	uc := usecase.NewAssetUseCase(
		memory.NewAssetRepository(store),
		memory.NewReferenceRepository(store),
		memory.NewTxRunner(store),
		gen,
		usecase.AssetConfig{Now: func() time.Time { return fixedNow }, Metrics: metrics},
	)
	return &fixture{store: store, uc: uc, gen: gen, metrics: metrics}
}

func qty(v int64) *int64 { return &v }

func validInput() dto.AssetRequest {
	return dto.AssetRequest{
		Name: "Laptop", Quantity: qty(3), BrandID: 1, CategoryID: 1, RoomID: 1, Condition: "new",
	}
}

func (f *fixture) create(t *testing.T, mutate func(*dto.AssetRequest)) *dto.AssetResponse {
	t.Helper()
	in := validInput()
	if mutate != nil {
		mutate(&in)
	}
	out, err := f.uc.Create(context.Background(), actorID, in)
	require.NoError(t, err)
	return out
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, se obtuvo %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return verr.FieldNames()
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Escenario_ValoresPorDefecto(t *testing.T) {
	f := newFixture(t)
	out := f.create(t, nil)

	assert.Len(t, out.Number, entity.NumberLength)
	assert.Equal(t, "Laptop", out.Name)
	assert.Equal(t, int64(3), out.Quantity)
	assert.Equal(t, entity.ConditionNew, out.Condition)
	assert.Equal(t, "2026-03-15", out.Date, "la fecha por defecto es hoy")
	assert.Equal(t, actorID, out.UserID, "el usuario por defecto es el actor")
	assert.Equal(t, "Ana", out.User)
	assert.Equal(t, "Marca 1", out.Brand)
	assert.Equal(t, "Categoría 1", out.Category)
	assert.Equal(t, "Salón 1", out.Room)
	assert.Equal(t, entity.DisplayMeta{Color: "success", Icon: "check-circle"}, out.ConditionMeta)
	assert.Equal(t, 1, f.metrics.ops["create:ok"])
}

func TestCreate_FechaYUsuarioExplicitos(t *testing.T) {
	f := newFixture(t)
	out := f.create(t, func(in *dto.AssetRequest) {
		in.Date = "2025-12-01"
		in.UserID = 2
	})
	assert.Equal(t, "2025-12-01", out.Date)
	assert.Equal(t, int64(2), out.UserID)
	assert.Equal(t, "Luis", out.User)
}

func TestCreate_NumerosUnicos(t *testing.T) {
	f := newFixture(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		out := f.create(t, nil)
		assert.Len(t, out.Number, entity.NumberLength)
		assert.False(t, seen[out.Number], "número repetido: %s", out.Number)
		seen[out.Number] = true
	}
}

func TestCreate_ValidacionReportaCampos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.AssetRequest)
		fields []string
	}{
		{"cantidad negativa", func(in *dto.AssetRequest) { in.Quantity = qty(-1) }, []string{"quantity"}},
		{"condición desconocida", func(in *dto.AssetRequest) { in.Condition = "broken" }, []string{"condition"}},
		{"marca inexistente", func(in *dto.AssetRequest) { in.BrandID = 99 }, []string{"brand_id"}},
		{"dos campos a la vez", func(in *dto.AssetRequest) {
			in.Quantity = qty(-1)
			in.Condition = "broken"
		}, []string{"quantity", "condition"}},
		{"referencias inexistentes", func(in *dto.AssetRequest) {
			in.CategoryID = 42
			in.RoomID = 43
			in.UserID = 44
		}, []string{"category_id", "room_id", "user_id"}},
		{"faltan requeridos", func(in *dto.AssetRequest) {
			in.Name = "   "
			in.Quantity = nil
			in.Condition = ""
		}, []string{"name", "quantity", "condition"}},
		{"fecha inválida", func(in *dto.AssetRequest) { in.Date = "2026-02-30" }, []string{"date"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			tc.mutate(&in)
			out, err := f.uc.Create(context.Background(), actorID, in)
			assert.Nil(t, out)
			assert.ElementsMatch(t, tc.fields, fieldsOf(t, err))
		})
	}
}

func TestCreate_SinActorNiUsuario(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), 0, validInput())
	assert.Equal(t, []string{"user_id"}, fieldsOf(t, err))
}

func TestCreate_ReintentaAnteColision(t *testing.T) {
	const taken = "000000000000000777"
	f := newFixture(t, taken)
	first := f.create(t, nil)
	require.Equal(t, taken, first.Number)

	f.gen.values = []string{taken, "short", taken}
	second := f.create(t, nil)
	assert.NotEqual(t, taken, second.Number)
	assert.Len(t, second.Number, entity.NumberLength)
	assert.Equal(t, 2, f.metrics.collisions)
}

func TestCreate_GeneracionAgotada(t *testing.T) {
	const taken = "000000000000000777"
	f := newFixture(t, taken)
	f.create(t, nil)

	f.gen.values = []string{taken, taken, taken, taken, taken}
	out, err := f.uc.Create(context.Background(), actorID, validInput())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrGenerationExhausted)
	assert.Equal(t, 1, f.metrics.ops["create:exhausted"])
}

func TestCreate_Concurrente_NumerosUnicos(t *testing.T) {
	f := newFixture(t)
	const n = 50
	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.uc.Create(context.Background(), actorID, validInput())
			if assert.NoError(t, err) {
				numbers <- out.Number
			}
		}()
	}
	wg.Wait()
	close(numbers)
	seen := map[string]bool{}
	for num := range numbers {
		assert.False(t, seen[num], "número repetido: %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

// dupOnceRepo simula que otro alta inserta el mismo número entre la verificación y el insert.
type dupOnceRepo struct {
	repository.AssetRepository
	once sync.Once
}

func (r *dupOnceRepo) Create(ctx context.Context, a *entity.Asset) error {
	var dup bool
	r.once.Do(func() { dup = true })
	if dup {
		return domain.ErrDuplicate
	}
	return r.AssetRepository.Create(ctx, a)
}

func TestCreate_DuplicadoEnInsert_Reintenta(t *testing.T) {
	store := memory.NewStore()
	store.SeedDemo()
	uc := usecase.NewAssetUseCase(
		&dupOnceRepo{AssetRepository: memory.NewAssetRepository(store)},
		memory.NewReferenceRepository(store),
		memory.NewTxRunner(store),
		&seqGenerator{values: []string{"000000000000000001", "000000000000000002"}},
		usecase.AssetConfig{},
	)
	out, err := uc.Create(context.Background(), 1, validInput())
	require.NoError(t, err)
	assert.Equal(t, "000000000000000002", out.Number)
}

func TestGenerateNumber(t *testing.T) {
	f := newFixture(t, "000000000000000010")
	f.create(t, nil)

	f.gen.values = []string{"000000000000000010", "000000000000000011"}
	n, err := f.uc.GenerateNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "000000000000000011", n)

	f.gen.values = []string{"x", "y", "z", "w", "v"}
	_, err = f.uc.GenerateNumber(context.Background())
	assert.ErrorIs(t, err, domain.ErrGenerationExhausted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_NoCambiaNumero(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, func(in *dto.AssetRequest) { in.Date = "2026-01-10" })

	in := validInput()
	in.Name = "Laptop reparada"
	in.Quantity = qty(1)
	in.Condition = "damaged"
	in.RoomID = 2
	out, err := f.uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.Number, out.Number)
	assert.Equal(t, "Laptop reparada", out.Name)
	assert.Equal(t, int64(1), out.Quantity)
	assert.Equal(t, entity.ConditionDamaged, out.Condition)
	assert.Equal(t, "Salón 2", out.Room)
	assert.Equal(t, "2026-01-10", out.Date, "fecha omitida conserva la almacenada")
	assert.Equal(t, created.UserID, out.UserID, "usuario omitido conserva el almacenado")
	assert.Equal(t, entity.DisplayMeta{Color: "danger", Icon: "sparkles"}, out.ConditionMeta)

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Number, got.Number)
}

func TestUpdate_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Update(context.Background(), 999, validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_Validacion(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, nil)
	in := validInput()
	in.BrandID = 77
	in.Quantity = qty(-5)
	_, err := f.uc.Update(context.Background(), created.ID, in)
	assert.ElementsMatch(t, []string{"brand_id", "quantity"}, fieldsOf(t, err))
}

func TestGetByID_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / BulkDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, nil)

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, f.uc.Delete(context.Background(), created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.Delete(context.Background(), 4242), domain.ErrNotFound)
}

func TestBulkDelete_Parcial(t *testing.T) {
	f := newFixture(t)
	existing := f.create(t, nil)
	keep := f.create(t, nil)
	const missing int64 = 9999

	out, err := f.uc.BulkDelete(context.Background(), dto.BulkDeleteRequest{IDs: []int64{existing.ID, missing, existing.ID}})
	require.NoError(t, err)
	assert.Equal(t, []int64{existing.ID}, out.Deleted)
	assert.Equal(t, []int64{missing}, out.NotFound)

	_, err = f.uc.GetByID(context.Background(), keep.ID)
	assert.NoError(t, err, "los activos fuera del lote se conservan")
}

func TestBulkDelete_SinIDs(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.BulkDelete(context.Background(), dto.BulkDeleteRequest{})
	assert.Equal(t, []string{"ids"}, fieldsOf(t, err))
}

// ──────────────────────────────────────────────────────────────────────────────
// List / All
// ──────────────────────────────────────────────────────────────────────────────

func seedForList(t *testing.T, f *fixture) {
	t.Helper()
	rows := []struct {
		name      string
		category  int64
		room      int64
		brand     int64
		condition string
		quantity  int64
	}{
		{"Proyector", 5, 2, 1, "new", 1},
		{"Silla", 5, 3, 2, "used", 30},
		{"Mesa", 5, 4, 2, "used", 10},
		{"Laptop", 4, 2, 3, "damaged", 2},
		{"Monitor", 5, 2, 3, "damaged", 7},
	}
	for _, r := range rows {
		f.create(t, func(in *dto.AssetRequest) {
			in.Name = r.name
			in.CategoryID = r.category
			in.RoomID = r.room
			in.BrandID = r.brand
			in.Condition = r.condition
			in.Quantity = qty(r.quantity)
		})
	}
}

func names(items []dto.AssetResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestList_FiltrosANDyOR(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)

	out, err := f.uc.List(context.Background(), dto.AssetListRequest{
		CategoryIDs: []int64{5},
		RoomIDs:     []int64{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Proyector", "Silla", "Monitor"}, names(out.Items))
	assert.Equal(t, 3, out.Page.Total)
	for _, it := range out.Items {
		assert.Equal(t, int64(5), it.CategoryID)
		assert.Contains(t, []int64{2, 3}, it.RoomID)
	}
}

func TestList_FiltroCondicionYMarca(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)

	out, err := f.uc.List(context.Background(), dto.AssetListRequest{
		Conditions: []string{"damaged", "new"},
		BrandIDs:   []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Monitor"}, names(out.Items))
}

func TestList_OrdenPorDefectoEsCreacion(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)
	out, err := f.uc.List(context.Background(), dto.AssetListRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Proyector", "Silla", "Mesa", "Laptop", "Monitor"}, names(out.Items))
	assert.Equal(t, dto.DefaultLimit, out.Page.Limit)
}

func TestList_OrdenYDireccion(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)

	out, err := f.uc.List(context.Background(), dto.AssetListRequest{Sort: "quantity", Direction: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Silla", "Mesa", "Monitor", "Laptop", "Proyector"}, names(out.Items))

	out, err = f.uc.List(context.Background(), dto.AssetListRequest{Sort: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Mesa", "Monitor", "Proyector", "Silla"}, names(out.Items))
}

func TestList_Busqueda(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)

	cases := []struct {
		search string
		want   []string
	}{
		{"LAPTOP", []string{"Laptop"}},
		{"marca 2", []string{"Silla", "Mesa"}},
		{"salón 4", []string{"Mesa"}},
		{"30", []string{"Silla"}},
		{"ana", []string{"Proyector", "Silla", "Mesa", "Laptop", "Monitor"}},
		{"categoría 4", []string{"Laptop"}},
		{"inexistente", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.search, func(t *testing.T) {
			out, err := f.uc.List(context.Background(), dto.AssetListRequest{Search: tc.search})
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(out.Items))
		})
	}
}

func TestList_BusquedaPorNumero(t *testing.T) {
	f := newFixture(t, "000000000000123456")
	created := f.create(t, nil)
	out, err := f.uc.List(context.Background(), dto.AssetListRequest{Search: "123456"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, created.ID, out.Items[0].ID)
}

func TestList_Paginacion(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)
	out, err := f.uc.List(context.Background(), dto.AssetListRequest{PageRequest: dto.PageRequest{Limit: 2, Offset: 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mesa", "Laptop"}, names(out.Items))
	assert.Equal(t, 5, out.Page.Total)
}

func TestList_ParametrosInvalidos(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.List(context.Background(), dto.AssetListRequest{
		Sort: "price", Direction: "sideways", Conditions: []string{"broken"},
	})
	assert.ElementsMatch(t, []string{"sort", "direction", "condition"}, fieldsOf(t, err))
}

func TestAll_RecorrePaginas(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)

	var got []string
	for item, err := range f.uc.All(context.Background(), dto.AssetListRequest{PageRequest: dto.PageRequest{Limit: 2}}) {
		require.NoError(t, err)
		got = append(got, item.Name)
	}
	assert.Equal(t, []string{"Proyector", "Silla", "Mesa", "Laptop", "Monitor"}, got)
}

func TestAll_CorteTemprano(t *testing.T) {
	f := newFixture(t)
	seedForList(t, f)

	var got []string
	for item, err := range f.uc.All(context.Background(), dto.AssetListRequest{PageRequest: dto.PageRequest{Limit: 2}}) {
		require.NoError(t, err)
		got = append(got, item.Name)
		if len(got) == 3 {
			break
		}
	}
	assert.Len(t, got, 3)
}

func TestAll_PropagaError(t *testing.T) {
	f := newFixture(t)
	var errs int
	for _, err := range f.uc.All(context.Background(), dto.AssetListRequest{Sort: "nope"}) {
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		errs++
	}
	assert.Equal(t, 1, errs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Condiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDisplayMeta(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, entity.DisplayMeta{Color: "success", Icon: "check-circle"}, f.uc.DisplayMeta(entity.ConditionNew))
	assert.Equal(t, entity.DisplayMeta{Color: "warning", Icon: "at-symbol"}, f.uc.DisplayMeta(entity.ConditionUsed))
	assert.Equal(t, entity.DisplayMeta{Color: "danger", Icon: "sparkles"}, f.uc.DisplayMeta(entity.ConditionDamaged))
	assert.Panics(t, func() { f.uc.DisplayMeta("broken") })
}

func TestConditions(t *testing.T) {
	f := newFixture(t)
	opts := f.uc.Conditions()
	require.Len(t, opts, 3)
	assert.Equal(t, dto.ConditionOption{Value: "used", Label: "Used", Color: "warning", Icon: "at-symbol"}, opts[1])
}
