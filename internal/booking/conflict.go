package booking

import "github.com/Osama-oo1909415/hall-booking/internal/domain"

// Overlaps сообщает, пересекаются ли полуоткрытые интервалы. Касание
// концами пересечением не считается.
func Overlaps(a, b domain.Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// FindConflict возвращает первую бронь из existing, пересекающую candidate,
// пропуская excludeID. Если слот свободен, возвращает nil.
func FindConflict(candidate domain.Interval, existing []*domain.Reservation, excludeID string) *domain.Reservation {
	for _, r := range existing {
		if r == nil || (excludeID != "" && r.ID == excludeID) {
			continue
		}
		if Overlaps(candidate, r.Interval()) {
			return r
		}
	}
	return nil
}
