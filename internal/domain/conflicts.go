package domain

import (
	"fmt"
	"time"
)

// CheckAvailability проверяет, хватает ли в пуле свободных ресурсов
// требуемых категорий на окно заявки
//
// Ресурс удовлетворяет заявке, если среди его развёрнутых интервалов
// есть один, целиком покрывающий окно. Отчёты носят рекомендательный
// характер: детектор ничего не резервирует и не блокирует - ответ
// "теоретически свободно", а не "атомарно зарезервировано"
//
// Неизвестная категория (в пуле нет ни одного ресурса с ней) даёт
// обычный отчёт о нулевой доступности, не отдельный вид ошибки
func CheckAvailability(req *BookingRequest, pool []*Resource) []ConflictReport {
	reports := make([]ConflictReport, 0)

	for _, rc := range req.RequiredCategories {
		need := rc.Quantity
		if need < 1 {
			need = 1
		}

		have := 0
		for _, resource := range pool {
			if resource.CategoryName() != rc.Category {
				continue
			}
			if Satisfies(resource, req.Start, req.End) {
				have++
			}
		}

		switch {
		case have == 0:
			reports = append(reports, ConflictReport{
				Category: rc.Category,
				Severity: SeverityError,
				Message:  fmt.Sprintf("No %s available for this time slot", rc.Category),
			})
		case have < need:
			reports = append(reports, ConflictReport{
				Category: rc.Category,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Only %d of %d %s available for this time slot", have, need, rc.Category),
			})
		}
	}

	return reports
}

// Satisfies проверяет, что ресурс целиком покрывает окно [start, end)
// одним развёрнутым интервалом
func Satisfies(resource *Resource, start, end time.Time) bool {
	for _, interval := range Resolve(resource, start, end) {
		if !interval.Start.After(start) && !interval.End.Before(end) {
			return true
		}
	}
	return false
}
