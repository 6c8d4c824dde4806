package plantgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantStepDecay(t *testing.T) {
	plant, err := DefaultDefinition().Build()
	require.NoError(t, err)

	assert.Equal(t, 50.0, plant.StepAt(0))
	assert.Equal(t, 50.0, plant.StepAt(1))
	assert.InDelta(t, 50/1.7, plant.StepAt(2), 1e-12)
	assert.InDelta(t, 50/(1.7*1.7*1.7*1.7*1.7), plant.StepAt(6), 1e-12)
}

func TestPlantGrow(t *testing.T) {
	def := DefaultDefinition()
	def.Generations = 3
	plant, err := def.Build()
	require.NoError(t, err)

	var seen []int
	for n, frame := range plant.Grow() {
		seen = append(seen, n)
		assert.Equal(t, plant.Generation(n), frame.Commands)
		assert.Equal(t, plant.StepAt(n), frame.Interpreter.Step)
		assert.Equal(t, def.Start, frame.Start)

		ops, err := frame.Interpreter.Execute(frame.Commands, frame.Start)
		require.NoError(t, err)
		expected, err := plant.Execute(n)
		require.NoError(t, err)
		assert.Equal(t, expected, ops)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestDefaultPlantFirstGeneration(t *testing.T) {
	plant, err := DefaultDefinition().Build()
	require.NoError(t, err)

	assert.Equal(t, "X", plant.Generation(0))
	assert.Equal(t, "F[+FX][-FX][++X][--X]FFX", plant.Generation(1))

	ops, err := plant.Execute(0)
	require.NoError(t, err)
	require.Len(t, ops, 1, "the axiom X draws forward")
	assert.InDelta(t, 0, ops[0].To.X, 1e-9)
	assert.InDelta(t, -150, ops[0].To.Y, 1e-9)
}
