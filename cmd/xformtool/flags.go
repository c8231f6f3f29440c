package main

import (
	"fmt"
	"strconv"
	"strings"
)

// vec3Flag parses "x,y,z" into three floats.
type vec3Flag [3]float32

func (v *vec3Flag) String() string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

func (v *vec3Flag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var out vec3Flag
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = float32(f)
	}
	*v = out
	return nil
}
