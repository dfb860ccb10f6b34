package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday день недели в том виде, в котором он хранится и передается по API ("Monday")
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Week дни недели в порядке отображения в форме (неделя начинается с понедельника)
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday разбирает день недели без учета регистра ("monday", "MONDAY")
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Week {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf возвращает день недели для даты
func WeekdayOf(t time.Time) Weekday {
	// time.Sunday == 0, в Week воскресенье последнее
	return Week[(int(t.Weekday())+6)%7]
}

// IsValid возвращает true для одного из семи дней недели
func (d Weekday) IsValid() bool {
	return d.Index() >= 0
}

// Index возвращает позицию дня в неделе (0 - понедельник) или -1
func (d Weekday) Index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return -1
}

// Previous возвращает предыдущий день недели; для понедельника ok == false
func (d Weekday) Previous() (Weekday, bool) {
	i := d.Index()
	if i <= 0 {
		return "", false
	}
	return Week[i-1], true
}

func (d Weekday) String() string {
	return string(d)
}
