package models

// FilterAssets — параметры фильтрации списка активов, передаваемые в слой
// доступа к данным. Все условия независимы и соединяются по "И".
// Пустая строка или nil означает отсутствие условия.
type FilterAssets struct {
	Name     string   // Подстрока в названии, без учёта регистра
	Category string   // Подстрока в категории, без учёта регистра
	Status   string   // Точное совпадение статуса, без учёта регистра
	MinPrice *float64 // Нижняя граница цены (nil — без ограничения)
	MaxPrice *float64 // Верхняя граница цены (nil — без ограничения)
}
