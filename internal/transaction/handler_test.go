package transaction

import "testing"

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{name: "float", in: float64(500), want: 500},
		{name: "string", in: "500", want: 500},
		{name: "string decimal", in: "1250.75", want: 1250.75},
		{name: "bad string", in: "beşyüz", wantErr: true},
		{name: "nil", in: nil, wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerceAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("coerceAmount(%v) = %f, want %f", tc.in, got, tc.want)
			}
		})
	}
}
