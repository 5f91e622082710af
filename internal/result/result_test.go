package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	t.Run("Zero value is pending", func(t *testing.T) {
		var r Result[string]
		assert.True(t, r.IsPending())
		assert.False(t, r.IsSuccess())
		assert.False(t, r.IsFailure())
	})

	t.Run("Success holds exactly the success case", func(t *testing.T) {
		r := Success("Xin chào")
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsPending())
		assert.False(t, r.IsFailure())

		value, ok := r.Value()
		assert.True(t, ok)
		assert.Equal(t, "Xin chào", value)

		_, ok = r.Message()
		assert.False(t, ok)
	})

	t.Run("Failure holds exactly the failure case", func(t *testing.T) {
		r := Failure[string]("API 오류")
		assert.True(t, r.IsFailure())
		assert.False(t, r.IsPending())
		assert.False(t, r.IsSuccess())

		message, ok := r.Message()
		assert.True(t, ok)
		assert.Equal(t, "API 오류", message)

		_, ok = r.Value()
		assert.False(t, ok)
	})

	t.Run("Pending exposes neither value nor message", func(t *testing.T) {
		r := Pending[int]()
		assert.True(t, r.IsPending())

		_, ok := r.Value()
		assert.False(t, ok)
		_, ok = r.Message()
		assert.False(t, ok)
	})
}
