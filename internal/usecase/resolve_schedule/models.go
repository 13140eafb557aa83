package resolve_schedule

import "time"

// Request модель запроса на расчет расписания доступности ресурса
type Request struct {
	ResourceID  int64     // ID ресурса
	WindowStart time.Time // Начало окна запроса (UTC)
	WindowEnd   time.Time // Конец окна запроса (UTC)
}

// Response модель ответа с расписанием доступности
type Response struct {
	ResourceID  int64      // ID ресурса
	WindowStart time.Time  // Начало окна запроса
	WindowEnd   time.Time  // Конец окна запроса
	Intervals   []Interval // Отсортированные непересекающиеся интервалы доступности
}

// Interval интервал доступности [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}
