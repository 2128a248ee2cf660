package models

// Asset — основная модель актива, используемая в бизнес-логике и хранилище.
// Идентификатор назначается хранилищем, CreatedAt ставится один раз при
// создании и больше не меняется.
type Asset struct {
	ID            int     `json:"id"`             // Уникальный идентификатор
	Name          string  `json:"name"`           // Название актива
	Category      string  `json:"category"`       // Категория
	Location      string  `json:"location"`       // Местоположение
	Status        string  `json:"status"`         // Статус, например "active" или "inactive"
	PurchasePrice float64 `json:"purchase_price"` // Цена покупки
	CreatedAt     string  `json:"created_at"`     // Время создания, UTC, ISO-8601
}

// DummyAsset используется для приёма данных из JSON-запроса на создание,
// прежде чем конвертировать их в Asset.
type DummyAsset struct {
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	Status        string  `json:"status" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"`
}

// PatchAsset описывает частичное обновление актива (merge-patch):
// перезаписываются только поля, присутствующие в запросе и не равные null,
// nil-поля остаются нетронутыми.
type PatchAsset struct {
	Name          *string  `json:"name" validate:"omitempty,min=1"`
	Category      *string  `json:"category" validate:"omitempty,min=1"`
	Location      *string  `json:"location" validate:"omitempty,min=1"`
	Status        *string  `json:"status" validate:"omitempty,min=1"`
	PurchasePrice *float64 `json:"purchase_price" validate:"omitempty,gte=0"`
}
