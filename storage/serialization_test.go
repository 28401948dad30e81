package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorSerialization(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		vector := []float32{0.1, -0.5, 0.0, 1.25, -3.75}

		data := MarshalVector(vector)
		decoded, err := UnmarshalVector(data)
		require.NoError(t, err)
		assert.Equal(t, vector, decoded)
	})

	t.Run("empty vector", func(t *testing.T) {
		data := MarshalVector(nil)
		decoded, err := UnmarshalVector(data)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("multi-byte length prefix", func(t *testing.T) {
		// 200 elements pushes the varint count past one byte.
		vector := make([]float32, 200)
		for i := range vector {
			vector[i] = float32(i) * 0.25
		}

		data := MarshalVector(vector)
		decoded, err := UnmarshalVector(data)
		require.NoError(t, err)
		assert.Equal(t, vector, decoded)
	})

	t.Run("truncated data", func(t *testing.T) {
		data := MarshalVector([]float32{0.1, 0.2, 0.3})
		_, err := UnmarshalVector(data[:len(data)-2])
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := UnmarshalVector(nil)
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}
