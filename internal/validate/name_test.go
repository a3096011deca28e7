package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Run("accepts", func(t *testing.T) {
		for _, in := range []string{
			"1",
			"hello",
			"hello world",
			"my-name",
			"my_name",
			"my.name",
			"  trimmed  ",
		} {
			assert.NoError(t, Name(in), "Name(%q)", in)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		for _, in := range []string{
			"",
			"   ",
			"name@here",
			"hello!",
			"path/name",
		} {
			assert.Error(t, Name(in), "Name(%q)", in)
		}
	})

	t.Run("rejects too long", func(t *testing.T) {
		long := make([]byte, 65)
		for i := range long {
			long[i] = 'a'
		}
		assert.Error(t, Name(string(long)))
	})

	t.Run("accepts max length", func(t *testing.T) {
		max := make([]byte, 64)
		for i := range max {
			max[i] = 'a'
		}
		assert.NoError(t, Name(string(max)))
	})
}
