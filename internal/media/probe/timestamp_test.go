package probe

import "testing"

func TestParseTimestampWellFormedValues(t *testing.T) {
	cases := []struct {
		value string
		want  int64
	}{
		{"00:00:00.00", 0},
		{"00:00:00.01", 10},
		{"00:00:01.00", 1000},
		{"00:01:00.00", 60000},
		{"01:00:00.00", 3600000},
		{"00:02:22.86", 142860},
		{"23:59:59.99", 86399990},
	}
	for _, tc := range cases {
		got, ok := ParseTimestamp(tc.value)
		if !ok {
			t.Fatalf("expected %q to parse", tc.value)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d ms, got %d", tc.value, tc.want, got)
		}
	}
}

func TestParseTimestampRejectsMalformedValues(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"00:00:00",
		"0:00:00.00",
		"00-00-00.00",
		"00:00:00,00",
		"00:00:00.000",
		"aa:bb:cc.dd",
		"00:75:00.00",
		"00:00:99.00",
		" 00:00:00.00",
	}
	for _, value := range cases {
		if ms, ok := ParseTimestamp(value); ok {
			t.Fatalf("expected %q to be rejected, got %d ms", value, ms)
		}
	}
}
