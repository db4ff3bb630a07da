package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesExistingEntry(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 2)
	cart.Add("G24N001", 3)

	require.Len(t, cart.Items, 1, "adding the same product twice must not create a second entry")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddAppendsNewEntriesInOrder(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 1)
	cart.Add("S92B003", 1)
	cart.Add("D18P005", 1)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, "G24N001", cart.Items[0].ProductID)
	assert.Equal(t, "S92B003", cart.Items[1].ProductID)
	assert.Equal(t, "D18P005", cart.Items[2].ProductID)
}

func TestCartAddClampsQuantityToOne(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 0)
	cart.Add("S92B003", -4)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCartRemove(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 2)
	cart.Add("S92B003", 1)

	cart.Remove("G24N001")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "S92B003", cart.Items[0].ProductID)
}

func TestCartRemoveMissingIsNoop(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 2)

	cart.Remove("NOPE")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartUpdateQuantities(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 2)
	cart.Add("S92B003", 1)
	cart.Add("D18P005", 4)

	cart.UpdateQuantities(map[string]int{
		"G24N001": 5,
		"S92B003": 0, // clamps to 1
		"D18R006": 9, // not in the cart, ignored
	})

	require.Len(t, cart.Items, 3)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity, "zero must clamp to 1, never empty or negative")
	assert.Equal(t, 4, cart.Items[2].Quantity, "entries missing from the map keep their quantity")
}

func TestCartUpdateQuantitiesNeverProducesNonPositive(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 3)

	cart.UpdateQuantities(map[string]int{"G24N001": -7})

	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartClear(t *testing.T) {
	cart := Cart{}
	cart.Add("G24N001", 2)
	cart.Add("S92B003", 1)

	cart.Clear()

	assert.Empty(t, cart.Items)
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 3, ParseQuantity("3"))
	assert.Equal(t, 1, ParseQuantity(""))
	assert.Equal(t, 1, ParseQuantity("abc"))
	assert.Equal(t, 1, ParseQuantity("0"))
	assert.Equal(t, 1, ParseQuantity("-2"))
}
