// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"fmt"
	"strconv"
	"strings"
)

// DurationSeconds converts a clock duration of the form "h:mm:ss" or
// "mm:ss" (fractional seconds allowed) to seconds. With a single
// colon the hours component is implicitly zero. Any other number of
// colons is a format error.
func DurationSeconds(s string) (float64, error) {
	parts := strings.Split(s, ":")
	var hs, ms, ss string
	switch len(parts) {
	case 2:
		hs, ms, ss = "0", parts[0], parts[1]
	case 3:
		hs, ms, ss = parts[0], parts[1], parts[2]
	default:
		return 0, fmt.Errorf("malformed duration %q", s)
	}
	h, err := Decimal(hs)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q: %v", s, err)
	}
	m, err := Decimal(ms)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q: %v", s, err)
	}
	sec, err := Decimal(ss)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q: %v", s, err)
	}
	return h*3600 + m*60 + sec, nil
}

// Decimal converts a base-10 floating point literal.
func Decimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", s)
	}
	return v, nil
}
