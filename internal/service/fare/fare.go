package fare

import (
	"math"

	"dispatch/internal/entities"
)

// Константы — часть контракта: оценка должна быть воспроизводимой
// при разборе споров по конкретной доставке.
const (
	// перевод градусов в километры по широте
	degreesToKm = 111.0
	// тариф за километр
	perKmRate = 100.0
	// базовая цена когда тариф не выбран
	DefaultBasePrice int64 = 500
)

const (
	multiplierLight  = 1.0
	multiplierMedium = 1.3
	multiplierHeavy  = 1.6
)

type Estimator struct{}

func New() *Estimator {
	return &Estimator{}
}

// Estimate считает плоское евклидово расстояние между точками (без роутинга),
// умножает на тариф, добавляет базовую цену выбранного типа доставки и
// применяет весовой множитель к сумме. Чистая функция.
func (e *Estimator) Estimate(
	pickupLat, pickupLng, dropoffLat, dropoffLng float64,
	weight entities.WeightClassType,
	basePrice int64,
) int64 {
	if basePrice <= 0 {
		basePrice = DefaultBasePrice
	}

	distanceKm := math.Sqrt(
		math.Pow(dropoffLat-pickupLat, 2)+
			math.Pow(dropoffLng-pickupLng, 2),
	) * degreesToKm

	distanceFare := distanceKm * perKmRate

	multiplier := multiplierLight
	switch weight {
	case entities.WeightMedium:
		multiplier = multiplierMedium
	case entities.WeightHeavy:
		multiplier = multiplierHeavy
	}

	return int64(math.Round((float64(basePrice) + distanceFare) * multiplier))
}
