package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageResponse(t *testing.T) {
	page := NewPageResponse(1, 10, 25, nil)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	middle := NewPageResponse(2, 10, 25, nil)
	assert.True(t, middle.HasNext)
	assert.True(t, middle.HasPrev)

	last := NewPageResponse(3, 10, 25, nil)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestNewPageResponseExactFit(t *testing.T) {
	page := NewPageResponse(2, 10, 20, nil)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestNewPageResponseEmpty(t *testing.T) {
	page := NewPageResponse(1, 20, 0, nil)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestNewPageResponseBeyondLastPage(t *testing.T) {
	page := NewPageResponse(9, 10, 25, nil)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}
