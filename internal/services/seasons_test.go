package services

import "testing"

func TestParseMonthRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []MonthRange
	}{
		{name: "simple range", text: "4-10月", want: []MonthRange{{Start: 4, End: 10}}},
		{name: "wrap around range", text: "11-2月", want: []MonthRange{{Start: 11, End: 2}}},
		{name: "two ranges", text: "6-8月, 11-2月", want: []MonthRange{{Start: 6, End: 8}, {Start: 11, End: 2}}},
		{name: "single trailing month", text: "3-5月, 9月", want: []MonthRange{{Start: 3, End: 5}, {Start: 9, End: 9}}},
		{name: "out of range values dropped", text: "13-20月", want: nil},
		{name: "no digits", text: "abc", want: nil},
		{name: "empty text", text: "", want: nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := ParseMonthRanges(testCase.text)
			if len(got) != len(testCase.want) {
				t.Fatalf("expected %d ranges, got %#v", len(testCase.want), got)
			}
			for index, monthRange := range got {
				if monthRange != testCase.want[index] {
					t.Fatalf("range %d: expected %#v, got %#v", index, testCase.want[index], monthRange)
				}
			}
		})
	}
}

func TestIsMonthInRange(t *testing.T) {
	tests := []struct {
		name       string
		month      int
		monthRange MonthRange
		want       bool
	}{
		{name: "inside plain range", month: 7, monthRange: MonthRange{Start: 4, End: 10}, want: true},
		{name: "boundary start", month: 4, monthRange: MonthRange{Start: 4, End: 10}, want: true},
		{name: "boundary end", month: 10, monthRange: MonthRange{Start: 4, End: 10}, want: true},
		{name: "outside plain range", month: 3, monthRange: MonthRange{Start: 4, End: 10}, want: false},
		{name: "wrap contains december", month: 12, monthRange: MonthRange{Start: 11, End: 2}, want: true},
		{name: "wrap contains january", month: 1, monthRange: MonthRange{Start: 11, End: 2}, want: true},
		{name: "wrap excludes june", month: 6, monthRange: MonthRange{Start: 11, End: 2}, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := IsMonthInRange(testCase.month, testCase.monthRange); got != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}

func TestIsGoodSeasonNow(t *testing.T) {
	if !IsGoodSeasonNow("11-2月", 12) {
		t.Fatalf("expected december to fall in the wrap range")
	}
	if IsGoodSeasonNow("4-10月", 12) {
		t.Fatalf("expected december outside a summer range")
	}
	if IsGoodSeasonNow("四季皆宜", 6) {
		t.Fatalf("expected unparsable text to never match")
	}
}
