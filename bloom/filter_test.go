package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/wikictx/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URL tests positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://wiki.example.com/wiki/spaces/TEAM/pages/1")

		assert.True(t, f.Test("https://wiki.example.com/wiki/spaces/TEAM/pages/1"))
	})

	t.Run("unseen URL tests negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://wiki.example.com/wiki/spaces/TEAM/pages/1")

		assert.False(t, f.Test("https://wiki.example.com/wiki/spaces/TEAM/pages/2"))
	})

	t.Run("test-and-add reports prior membership", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)

		assert.False(t, f.TestAndAdd("https://wiki.example.com/a"))
		assert.True(t, f.TestAndAdd("https://wiki.example.com/a"))
	})

	t.Run("no false negatives over many URLs", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(10000, 0.01)
		for i := 0; i < 5000; i++ {
			f.Add(fmt.Sprintf("https://wiki.example.com/wiki/spaces/TEAM/pages/%d", i))
		}
		for i := 0; i < 5000; i++ {
			assert.True(t, f.Test(fmt.Sprintf("https://wiki.example.com/wiki/spaces/TEAM/pages/%d", i)))
		}
	})
}
