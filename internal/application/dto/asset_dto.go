package dto

import (
	"time"

	"github.com/jhoicas/Inventario-activos/internal/domain"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

// DateLayout formato de fecha de un activo en entradas y salidas.
const DateLayout = "2006-01-02"

// AssetRequest entrada para crear o editar un activo (edición completa).
// Number no forma parte de la entrada: se genera al crear y es de solo lectura.
// Date y UserID son opcionales: por defecto hoy y el usuario autenticado.
type AssetRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Quantity   *int64 `json:"quantity" validate:"required,min=0"`
	BrandID    int64  `json:"brand_id" validate:"required,gt=0"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	RoomID     int64  `json:"room_id" validate:"required,gt=0"`
	Condition  string `json:"condition" validate:"required,oneof=new used damaged"`
	Date       string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UserID     int64  `json:"user_id,omitempty" validate:"omitempty,gt=0"`

	// Invalid fallas de decodificación (tipo JSON o celda CSV) detectadas antes de validar.
	// Se reportan junto con el resto de fallas de campo.
	Invalid []domain.FieldError `json:"-" validate:"-"`
}

// MarkInvalid registra que el campo no pudo decodificarse.
func (r *AssetRequest) MarkInvalid(field, message string) {
	r.Invalid = append(r.Invalid, domain.FieldError{Field: field, Message: message})
}

// AssetResponse salida de un activo con los nombres de sus relaciones.
type AssetResponse struct {
	ID            int64              `json:"id" csv:"id"`
	Number        string             `json:"number" csv:"number"`
	Name          string             `json:"name" csv:"name"`
	Quantity      int64              `json:"quantity" csv:"quantity"`
	BrandID       int64              `json:"brand_id" csv:"-"`
	Brand         string             `json:"brand" csv:"brand"`
	CategoryID    int64              `json:"category_id" csv:"-"`
	Category      string             `json:"category" csv:"category"`
	RoomID        int64              `json:"room_id" csv:"-"`
	Room          string             `json:"room" csv:"room"`
	Condition     entity.Condition   `json:"condition" csv:"condition"`
	ConditionMeta entity.DisplayMeta `json:"condition_meta" csv:"-"`
	Date          string             `json:"date" csv:"date"`
	UserID        int64              `json:"user_id" csv:"-"`
	User          string             `json:"user" csv:"user"`
	CreatedAt     time.Time          `json:"created_at" csv:"-"`
	UpdatedAt     time.Time          `json:"updated_at" csv:"-"`
}

// AssetListRequest filtros, búsqueda, orden y paginación del listado.
// Filtros vacíos no restringen; varios valores en un filtro se combinan con OR.
type AssetListRequest struct {
	CategoryIDs []int64
	RoomIDs     []int64
	BrandIDs    []int64
	Conditions  []string
	Search      string
	Sort        string
	Direction   string
	PageRequest
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// BulkDeleteRequest body para POST /api/assets/bulk-delete.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// BulkDeleteResponse resultado por id de un borrado masivo.
type BulkDeleteResponse struct {
	Deleted  []int64 `json:"deleted"`
	NotFound []int64 `json:"not_found"`
}

// ConditionOption condición con su etiqueta y metadatos de presentación.
type ConditionOption struct {
	Value entity.Condition `json:"value"`
	Label string           `json:"label"`
	Color string           `json:"color"`
	Icon  string           `json:"icon"`
}

// ImportFailure fila de una importación que no se pudo crear. Line es 1-based sin contar el encabezado.
type ImportFailure struct {
	Line    int                 `json:"line"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// ImportResult resumen de una importación masiva.
type ImportResult struct {
	Created []AssetResponse `json:"created"`
	Failed  []ImportFailure `json:"failed"`
}
