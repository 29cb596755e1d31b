package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// The list-valued fields on budgets, prayer goals and reset plans live in
// JSONB columns. Each list type round-trips through driver.Valuer/sql.Scanner
// so sqlx can read and write them like any other column.

func jsonbValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonbScan(src, dst any) error {
	if src == nil {
		return nil
	}
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return errors.New("unsupported source type for jsonb scan")
	}
}

type IncomeSources []IncomeSource

func (l IncomeSources) Value() (driver.Value, error) { return jsonbValue([]IncomeSource(l)) }
func (l *IncomeSources) Scan(src any) error          { return jsonbScan(src, l) }

type BudgetCategories []BudgetCategory

func (l BudgetCategories) Value() (driver.Value, error) { return jsonbValue([]BudgetCategory(l)) }
func (l *BudgetCategories) Scan(src any) error          { return jsonbScan(src, l) }

type WeeklyCheckins []WeeklyCheckin

func (l WeeklyCheckins) Value() (driver.Value, error) { return jsonbValue([]WeeklyCheckin(l)) }
func (l *WeeklyCheckins) Scan(src any) error          { return jsonbScan(src, l) }

type WeeklyReflections []WeeklyReflection

func (l WeeklyReflections) Value() (driver.Value, error) { return jsonbValue([]WeeklyReflection(l)) }
func (l *WeeklyReflections) Scan(src any) error          { return jsonbScan(src, l) }

type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonbValue([]string(l)) }
func (l *StringList) Scan(src any) error          { return jsonbScan(src, l) }

// Contains reports membership without caring about order.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
