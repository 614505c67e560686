package weather

import "testing"

func TestDescribeCodeKnown(t *testing.T) {
	cases := map[int]string{
		0:  "Clear Sky",
		1:  "Mainly Clear",
		2:  "Partly Cloudy",
		3:  "Overcast",
		45: "Fog",
		48: "Depositing Rime Fog",
		51: "Light Drizzle",
		53: "Moderate Drizzle",
		55: "Dense Drizzle",
		61: "Light Rain",
		63: "Moderate Rain",
		65: "Heavy Rain",
		71: "Light Snow",
		73: "Moderate Snow",
		75: "Heavy Snow",
		80: "Light Rain Showers",
		81: "Moderate Rain Showers",
		82: "Heavy Rain Showers",
		95: "Thunderstorm",
	}
	if len(cases) != len(weatherCodes) {
		t.Fatalf("table has %d codes, want %d", len(weatherCodes), len(cases))
	}
	for code, want := range cases {
		if got := DescribeCode(code); got != want {
			t.Errorf("DescribeCode(%d) = %q; want %q", code, got, want)
		}
	}
}

func TestDescribeCodeFallback(t *testing.T) {
	for _, code := range []int{-1, 4, 56, 96, 99, 999} {
		if got := DescribeCode(code); got != UnknownCondition {
			t.Errorf("DescribeCode(%d) = %q; want %q", code, got, UnknownCondition)
		}
		if got := CodeIcon(code); got != unknownIcon {
			t.Errorf("CodeIcon(%d) = %q; want %q", code, got, unknownIcon)
		}
	}
}

func TestDescribeCodeIsPure(t *testing.T) {
	for _, code := range []int{0, 1, 95, 999, -1} {
		first := DescribeCode(code)
		if second := DescribeCode(code); first != second {
			t.Errorf("DescribeCode(%d) changed between calls: %q then %q", code, first, second)
		}
	}
}
