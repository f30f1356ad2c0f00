package usecase

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/commute-map/internal/domain"
)

const (
	workdaysPerYear = 260
	commutesPerYear = workdaysPerYear * 2
	gasLitreCost    = 1.5
	secondsPerDay   = 60 * 60 * 24
)

// Вычисляются во время выполнения в float64, чтобы округление совпадало с браузером.
var (
	litresPerKM = 10.0 / 100
	litreCostKM = litresPerKM * gasLitreCost
)

// DistancePresenter - превращает участок маршрута в годовую оценку поездок
type DistancePresenter struct {
	defaultLocale language.Tag
}

// NewDistancePresenter - locale (BCP 47) используется, если запрос его не задал
func NewDistancePresenter(locale string) *DistancePresenter {
	return &DistancePresenter{defaultLocale: parseLocale(locale, language.English)}
}

// EstimateCommute считает дни и стоимость. ok равен false, если нет расстояния или
// времени либо результат не помещается в int.
func (p *DistancePresenter) EstimateCommute(leg *domain.Leg) (domain.CommuteEstimate, bool) {
	if leg == nil || leg.Distance == nil || leg.Duration == nil {
		return domain.CommuteEstimate{}, false
	}

	days, ok := floorInt(float64(commutesPerYear) * leg.Duration.Value / secondsPerDay)
	if !ok {
		return domain.CommuteEstimate{}, false
	}
	cost, ok := floorInt((leg.Distance.Value / 1000) * litreCostKM * float64(commutesPerYear))
	if !ok {
		return domain.CommuteEstimate{}, false
	}

	return domain.CommuteEstimate{
		Days: days,
		Cost: cost,
	}, true
}

// floorInt округляет v вниз; false для NaN, бесконечности и значений вне диапазона int
func floorInt(v float64) (int, bool) {
	f := math.Floor(v)
	if math.IsNaN(f) || f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int(f), true
}

// Present возвращает данные панели расстояния или nil, если показывать нечего
func (p *DistancePresenter) Present(leg *domain.Leg, locale string) *domain.CommuteSummary {
	estimate, ok := p.EstimateCommute(leg)
	if !ok {
		return nil
	}

	printer := message.NewPrinter(parseLocale(locale, p.defaultLocale))

	return &domain.CommuteSummary{
		DistanceText:  leg.Distance.Text,
		DurationText:  leg.Duration.Text,
		Days:          estimate.Days,
		Cost:          estimate.Cost,
		CostFormatted: printer.Sprintf("%d", estimate.Cost),
	}
}

func parseLocale(locale string, fallback language.Tag) language.Tag {
	if locale == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	return tags[0]
}
