package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDecimal(t *testing.T) {
	assert.Equal(t, 1.5, ExtractDecimal("1.5 tỷ"))
	assert.Equal(t, 2.0, ExtractDecimal("Giá 2 tỷ"))
	assert.Equal(t, 3.2, ExtractDecimal("3.2"))
	assert.Equal(t, 0.0, ExtractDecimal("thỏa thuận"))
	assert.Equal(t, 0.0, ExtractDecimal(""))
}

func TestExtractLeadingInt(t *testing.T) {
	assert.Equal(t, 40.0, ExtractLeadingInt("40 m²"))
	assert.Equal(t, 75.5, ExtractLeadingInt("75.5"))
	assert.Equal(t, 120.0, ExtractLeadingInt("120m2"))
	assert.Equal(t, 0.0, ExtractLeadingInt("chưa rõ"))
	assert.Equal(t, 0.0, ExtractLeadingInt(""))
}
