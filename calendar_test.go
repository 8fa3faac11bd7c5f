package awscron

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestAWSWeekday(t *testing.T) {
	// 2024-03-10 is a Sunday; the following days walk the whole week.
	for i, expected := range []int{1, 2, 3, 4, 5, 6, 7} {
		d := time.Date(2024, time.March, 10+i, 0, 0, 0, 0, time.UTC)
		if got := awsWeekday[d.Weekday()]; got != expected {
			t.Errorf("awsWeekday[%v] = %d, want %d", d.Weekday(), got, expected)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, test := range tests {
		if got := daysInMonth(test.year, test.month); got != test.expected {
			t.Errorf("daysInMonth(%d, %v) = %d, want %d", test.year, test.month, got, test.expected)
		}
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		day      int
		expected bool
	}{
		{2024, time.June, 14, true},  // Friday
		{2024, time.June, 15, false}, // Saturday
		{2024, time.June, 16, false}, // Sunday
		{2024, time.June, 17, true},  // Monday
		{2024, time.June, 0, false},
		{2024, time.June, 31, false}, // June has 30 days
		{2024, time.June, 32, false},
		{2024, time.February, 29, true},  // leap Thursday
		{2023, time.February, 29, false}, // not a leap year
	}

	for _, test := range tests {
		if got := isWeekday(test.year, test.month, test.day); got != test.expected {
			t.Errorf("isWeekday(%d, %v, %d) = %v, want %v", test.year, test.month, test.day, got, test.expected)
		}
	}
}

func TestDaysFromWeekdayEnumerated(t *testing.T) {
	// Sundays of March 2024.
	f := Field{Kind: Enumerated, Values: []int{1}}
	expected := []int{3, 10, 17, 24, 31}
	if got := daysFromWeekday(2024, time.March, f); !reflect.DeepEqual(got, expected) {
		t.Errorf("sundays = %v, want %v", got, expected)
	}

	// Mondays and Wednesdays of February 2023.
	f = Field{Kind: Enumerated, Values: []int{2, 4}}
	expected = []int{1, 6, 8, 13, 15, 20, 22, 27}
	if got := daysFromWeekday(2023, time.February, f); !reflect.DeepEqual(got, expected) {
		t.Errorf("mon+wed = %v, want %v", got, expected)
	}
}

func TestDaysFromWeekdayLast(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		weekday  int
		expected []int
	}{
		{2024, time.March, 5, []int{28}},    // last Thursday
		{2024, time.March, 1, []int{31}},    // last Sunday
		{2024, time.February, 5, []int{29}}, // leap-day Thursday
	}

	for _, test := range tests {
		f := Field{Kind: LastWeekdayOfMonth, Weekday: test.weekday}
		if got := daysFromWeekday(test.year, test.month, f); !reflect.DeepEqual(got, test.expected) {
			t.Errorf("last weekday %d of %d-%v = %v, want %v", test.weekday, test.year, test.month, got, test.expected)
		}
	}
}

func TestDaysFromWeekdayNth(t *testing.T) {
	// Second Sunday of March 2024.
	f := Field{Kind: NthWeekdayOfMonth, Weekday: 1, N: 2}
	if got := daysFromWeekday(2024, time.March, f); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("second sunday = %v, want [10]", got)
	}

	// February 2023 has no fifth Tuesday.
	f = Field{Kind: NthWeekdayOfMonth, Weekday: 3, N: 5}
	if got := daysFromWeekday(2023, time.February, f); len(got) != 0 {
		t.Errorf("fifth tuesday = %v, want empty", got)
	}
}

func TestDaysForLastDay(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		offset   int
		expected []int
	}{
		{2024, time.February, 0, []int{29}},
		{2023, time.February, 0, []int{28}},
		{2024, time.June, 3, []int{27}},
		{2024, time.December, 0, []int{31}},
	}

	for _, test := range tests {
		got, err := daysForLastDay(test.year, test.month, test.offset)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("daysForLastDay(%d, %v, %d) = %v, want %v", test.year, test.month, test.offset, got, test.expected)
		}
	}
}

func TestDaysForNearestWeekday(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		day      int
		expected []int
	}{
		{2024, time.June, 15, []int{14}},    // Saturday resolves back to Friday
		{2024, time.September, 1, []int{2}}, // Sunday the 1st resolves forward to Monday
		{2024, time.June, 12, []int{12}},    // already a weekday
		{2024, time.March, 31, []int{29}},   // Sunday the 31st stays in March
		{2024, time.April, 31, []int{30}},   // day past month end resolves to Tuesday the 30th
	}

	for _, test := range tests {
		got, err := daysForNearestWeekday(test.year, test.month, test.day)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("daysForNearestWeekday(%d, %v, %d) = %v, want %v", test.year, test.month, test.day, got, test.expected)
		}
	}
}

func TestDaysForNearestWeekdayExhausted(t *testing.T) {
	// June 2024 ends Saturday the 29th / Sunday the 30th; day 31 leaves no
	// weekday inside the five-offset window.
	_, err := daysForNearestWeekday(2024, time.June, 31)
	if !errors.Is(err, ErrResolutionExhausted) {
		t.Fatalf("err = %v, want ErrResolutionExhausted", err)
	}
}
