// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import "testing"

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1:30.5", 90.5, false}, // one colon: hours implicitly 0
		{"1:02:03.0", 3723.0, false},
		{"0:00.00", 0, false},
		{"12:34:56", 45296, false},
		{"90", 0, true},        // no colon
		{"1:2:3:4", 0, true},   // too many colons
		{"1:xx", 0, true},      // non-numeric component
		{"", 0, true},
	}
	for _, test := range tests {
		got, err := DurationSeconds(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("DurationSeconds(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("DurationSeconds(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestDecimal(t *testing.T) {
	if v, err := Decimal("17.75"); err != nil || v != 17.75 {
		t.Errorf("Decimal(\"17.75\") = %v, %v", v, err)
	}
	if _, err := Decimal("n/a"); err == nil {
		t.Error("Decimal(\"n/a\") succeeded, want error")
	}
}
