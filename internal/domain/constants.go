package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pricing constants
const (
	// DaysPerWeek количество дней в недельном тарифе
	DaysPerWeek = 7

	// DaysPerMonth количество дней в месячном тарифе
	// Тарификация использует фиксированный 30-дневный месяц
	DaysPerMonth = 30
)

// Business validation constants
const (
	MinRentalDays       = 1
	MaxRentalDays       = 365 // 1 year
	MinQuantity         = 1
	MaxQuantity         = 100
	MaxCategoryLen      = 100
	MaxTimezoneLen      = 64
	MaxRulesPerResource = 50

	// MaxScheduleWindowDays максимальный размер окна запроса расписания
	MaxScheduleWindowDays = 366
)
