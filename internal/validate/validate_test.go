package validate

import "testing"

func TestReleaseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "2020/1/4", want: "2020-01-04"},
		{name: "december", raw: "2019/12/24", want: "2019-12-24"},
		{name: "zero padded", raw: "2020/01/04", want: "2020-01-04"},
		{name: "non-numeric day", raw: "2020/1/e", wantErr: true},
		{name: "wrong separator", raw: "2020-1-4", wantErr: true},
		{name: "missing part", raw: "2020/1", wantErr: true},
		{name: "month out of range", raw: "2020/13/1", wantErr: true},
		{name: "day out of range", raw: "2020/2/30", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "not a string", raw: 2020.0, wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReleaseDate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReleaseDate(%v) = %q, want error", tt.raw, got)
				}
				if err.Error() != "Error in release date field format" {
					t.Errorf("message = %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("ReleaseDate(%v): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ReleaseDate(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int
		wantMsg string
	}{
		{name: "number", raw: 37.0, want: 37},
		{name: "numeric string", raw: "55", want: 55},
		{name: "zero", raw: 0.0, wantMsg: "Invalid value '0' for Int() age field"},
		{name: "negative", raw: -5.0, wantMsg: "Invalid value '-5' for Int() age field"},
		{name: "non-numeric string", raw: "abc", wantMsg: "Invalid value 'abc' for Int() age field"},
		{name: "nil", raw: nil, wantMsg: "Invalid value '<nil>' for Int() age field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Age(tt.raw)
			if tt.wantMsg != "" {
				if err == nil {
					t.Fatalf("Age(%v) = %d, want error", tt.raw, got)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Age(%v): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Age(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGender(t *testing.T) {
	for _, g := range []string{"male", "female"} {
		if got, err := Gender(g); err != nil || got != g {
			t.Errorf("Gender(%q) = %q, %v", g, got, err)
		}
	}
	tests := []struct {
		raw     any
		wantMsg string
	}{
		{raw: "Male", wantMsg: "Invalid value 'Male' for gender, acceptable values are male/female"},
		{raw: "other", wantMsg: "Invalid value 'other' for gender, acceptable values are male/female"},
		{raw: nil, wantMsg: "Invalid value '<nil>' for gender, acceptable values are male/female"},
		{raw: 1.0, wantMsg: "Invalid value '1' for gender, acceptable values are male/female"},
	}
	for _, tt := range tests {
		_, err := Gender(tt.raw)
		if err == nil {
			t.Fatalf("Gender(%v): want error", tt.raw)
		}
		if err.Error() != tt.wantMsg {
			t.Errorf("Gender(%v) message = %q, want %q", tt.raw, err.Error(), tt.wantMsg)
		}
	}
}
