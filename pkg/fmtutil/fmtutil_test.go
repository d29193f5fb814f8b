package fmtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNum(t *testing.T) {
	cases := map[int]string{
		0:         "0",
		7:         "7",
		999:       "999",
		1000:      "1,000",
		1234567:   "1,234,567",
		-42000:    "-42,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, Num(in))
	}
}
