package service

import (
	"errors"
	"strconv"
	"time"
)

// ── 字段级历史比对 ──
//
// 更新请求中的非 nil 字段逐一与存量值比对，不一致的字段各产出一条
// 变更记录；记录与更新本身在同一事务内落库，保证审计轨迹与数据一致

// ErrInvalidDate 日期字段格式非法（统一 "2006-01-02"）
var ErrInvalidDate = errors.New("日期格式非法")

const dateLayout = "2006-01-02"

// fieldChange 单个字段的变更
type fieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// historyDiff 变更收集器，按字段类型提供比对方法；
// 比对的同时把新值写回目标字段，调用方据此决定是否执行更新
type historyDiff struct {
	changes []fieldChange
}

func (d *historyDiff) str(field string, target *string, incoming *string) {
	if incoming == nil || *incoming == *target {
		return
	}
	d.changes = append(d.changes, fieldChange{Field: field, OldValue: *target, NewValue: *incoming})
	*target = *incoming
}

func (d *historyDiff) float(field string, target *float64, incoming *float64) {
	if incoming == nil || *incoming == *target {
		return
	}
	d.changes = append(d.changes, fieldChange{
		Field:    field,
		OldValue: strconv.FormatFloat(*target, 'f', -1, 64),
		NewValue: strconv.FormatFloat(*incoming, 'f', -1, 64),
	})
	*target = *incoming
}

func (d *historyDiff) boolean(field string, target *bool, incoming *bool) {
	if incoming == nil || *incoming == *target {
		return
	}
	d.changes = append(d.changes, fieldChange{
		Field:    field,
		OldValue: strconv.FormatBool(*target),
		NewValue: strconv.FormatBool(*incoming),
	})
	*target = *incoming
}

func (d *historyDiff) date(field string, target *time.Time, incoming *string) error {
	if incoming == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *incoming)
	if err != nil {
		return ErrInvalidDate
	}
	if parsed.Equal(*target) {
		return nil
	}
	d.changes = append(d.changes, fieldChange{
		Field:    field,
		OldValue: target.Format(dateLayout),
		NewValue: parsed.Format(dateLayout),
	})
	*target = parsed
	return nil
}

// datePtr 可空日期字段比对（员工离职日期等）
func (d *historyDiff) datePtr(field string, target **time.Time, incoming *string) error {
	if incoming == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *incoming)
	if err != nil {
		return ErrInvalidDate
	}
	old := ""
	if *target != nil {
		if parsed.Equal(**target) {
			return nil
		}
		old = (*target).Format(dateLayout)
	}
	d.changes = append(d.changes, fieldChange{
		Field:    field,
		OldValue: old,
		NewValue: parsed.Format(dateLayout),
	})
	*target = &parsed
	return nil
}

// parseDate 解析统一格式的日期串
func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// parseDatePtr 解析可空日期串
func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
