package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Unit(t *testing.T) {
	assert.Equal(t, UnitGram, CategoryFlower.Unit())
	assert.Equal(t, UnitGram, CategoryExtract.Unit())
	assert.Equal(t, UnitEach, CategoryEdible.Unit())
	assert.Equal(t, UnitEach, CategoryAccessory.Unit())
	assert.Equal(t, UnitEach, CategoryDrink.Unit())
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryFlower.Valid())
	assert.True(t, CategoryDrink.Valid())
	assert.False(t, Category("Merch").Valid())
	assert.False(t, Category("").Valid())
}
