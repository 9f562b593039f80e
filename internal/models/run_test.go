package models

import "testing"

func TestRunParams_Validate(t *testing.T) {
	ok := RunParams{Epsilon: 0.3, MinPoints: 3, Representatives: 50}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
	cases := []RunParams{
		{Epsilon: -0.1, MinPoints: 3, Representatives: 50},
		{Epsilon: 0.3, MinPoints: 0, Representatives: 50},
		{Epsilon: 0.3, MinPoints: 3, Representatives: 0},
	}
	for i, p := range cases {
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: invalid params accepted: %+v", i, p)
		}
	}
}
