package geom

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value     Value
		isPercent bool
		unit      Unit
		amount    float64
	}

	tests := map[string]tc{
		"Fixed": {
			value:     Fixed(100),
			isPercent: false,
			unit:      UnitFixed,
			amount:    100,
		},
		"Percent": {
			value:     Percent(50),
			isPercent: true,
			unit:      UnitPercent,
			amount:    50,
		},
		"zero value is fixed zero": {
			value:     Value{},
			isPercent: false,
			unit:      UnitFixed,
			amount:    0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsPercent(); got != tt.isPercent {
				t.Errorf("IsPercent() = %v, want %v", got, tt.isPercent)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Of(t *testing.T) {
	type tc struct {
		value    Value
		base     float64
		expected float64
	}

	tests := map[string]tc{
		"fixed ignores base": {
			value:    Fixed(50),
			base:     100,
			expected: 50,
		},
		"fixed negative": {
			value:    Fixed(-10),
			base:     100,
			expected: -10,
		},
		"percent 50 of 200": {
			value:    Percent(50),
			base:     200,
			expected: 100,
		},
		"percent 0": {
			value:    Percent(0),
			base:     200,
			expected: 0,
		},
		"percent 100": {
			value:    Percent(100),
			base:     320,
			expected: 320,
		},
		"percent above 100 is not clamped": {
			value:    Percent(150),
			base:     200,
			expected: 300,
		},
		"negative percent is not clamped": {
			value:    Percent(-25),
			base:     200,
			expected: -50,
		},
		"fractional percent": {
			value:    Percent(12.5),
			base:     80,
			expected: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Of(tt.base); got != tt.expected {
				t.Errorf("Of(%v) = %v, want %v", tt.base, got, tt.expected)
			}
		})
	}
}

func TestValue_Of_Linear(t *testing.T) {
	for p := 0.0; p <= 100; p += 5 {
		for _, base := range []float64{0, 1, 37, 320, 1024} {
			want := base * p / 100
			if got := Percent(p).Of(base); got != want {
				t.Errorf("Percent(%v).Of(%v) = %v, want %v", p, base, got, want)
			}
		}
	}
}

func TestValue_String(t *testing.T) {
	tests := map[string]struct {
		value Value
		want  string
	}{
		"fixed":          {value: Fixed(10), want: "10"},
		"fixed fraction": {value: Fixed(2.5), want: "2.5"},
		"percent":        {value: Percent(50), want: "50%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
