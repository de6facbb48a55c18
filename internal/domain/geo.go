package domain

import "math"

// EarthRadiusKm радиус Земли в километрах для формулы гаверсинусов
const EarthRadiusKm = 6371.0

// HaversineKm возвращает расстояние по дуге большого круга между двумя
// точками в километрах. Используется та же форма (через acos), что и в
// SQL-запросах геопоиска, чтобы результаты совпадали.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := radians(lat1)
	rlat2 := radians(lat2)
	dlng := radians(lng2) - radians(lng1)

	cosine := math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(dlng) +
		math.Sin(rlat1)*math.Sin(rlat2)

	// Защита от выхода за область определения acos из-за ошибок округления
	cosine = math.Min(1, math.Max(-1, cosine))

	return EarthRadiusKm * math.Acos(cosine)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
