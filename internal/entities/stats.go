package entities

// PeriodTotals — агрегат за сегодня, неделю и месяц; окна пересекаются,
// сегодняшние записи входят во все три.
type PeriodTotals struct {
	Today int64
	Week  int64
	Month int64
}

type AdminStats struct {
	Deliveries       PeriodTotals
	Revenue          PeriodTotals
	RecentDeliveries []Delivery
}
