package availability

// SlotCatalog is the fixed set of bookable times offered by every partner
// workshop. The order is the canonical display order and is not strictly
// chronological spacing: there is a gap between 10:30 AM and 12:00 PM and
// another between 12:30 PM and 01:30 PM.
var SlotCatalog = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"12:00 PM",
	"12:30 PM",
	"01:30 PM",
	"02:00 PM",
	"03:00 PM",
	"04:30 PM",
	"05:00 PM",
	"05:30 PM",
}

// DayNames holds the Monday-first weekday labels shown in the mobile app.
var DayNames = [7]string{"LUN", "MAR", "MIÉ", "JUE", "VIE", "SÁB", "DOM"}

// MonthNames indexes month names by the zero-based month of CalendarCursor.
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// IsCatalogSlot reports whether s is one of the fixed bookable times.
func IsCatalogSlot(s string) bool {
	for _, slot := range SlotCatalog {
		if slot == s {
			return true
		}
	}
	return false
}
