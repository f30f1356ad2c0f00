package usecase

import (
	"math/rand"
	"time"

	"github.com/commute-map/internal/domain"
)

// HouseCount - количество синтетических домов вокруг офиса
const HouseCount = 100

// RandomSource - источник равномерных значений в [0, 1). Подходит *rand.Rand.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource возвращает источник с seed от текущего времени
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateHouses разбрасывает HouseCount точек вокруг center. У точки один случайный
// знак для обеих осей, и она лежит в пределах одного градуса от center.
func GenerateHouses(center domain.GeoPoint, rng RandomSource) []domain.GeoPoint {
	houses := make([]domain.GeoPoint, 0, HouseCount)
	for i := 0; i < HouseCount; i++ {
		direction := 2.0
		if rng.Float64() < 0.5 {
			direction = -2.0
		}
		houses = append(houses, domain.GeoPoint{
			Lat: center.Lat + rng.Float64()/direction,
			Lng: center.Lng + rng.Float64()/direction,
		})
	}
	return houses
}
