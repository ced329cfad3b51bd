//go:build !rand_noarray

package luabind

import (
	"testing"

	"github.com/Shopify/go-lua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleMethodInPlace(t *testing.T) {
	l := newTestState(t, 7)
	eval(t, l, `
		local a = array{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
		a:shuffle()
		return a
	`)
	got := numbers(t, l, -1)
	require.Len(t, got, 15)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	assert.ElementsMatch(t, want, got)
	assert.NotEqual(t, want, got)
}

func TestShuffleGlobal(t *testing.T) {
	l := newTestState(t, 8)
	eval(t, l, `
		local empty = {}
		shuffle(empty)
		assert(#empty == 0)

		local one = {"x"}
		shuffle(one)
		assert(one[1] == "x")

		local a = {"a", "b", "c", "d"}
		local returned = shuffle(a)
		assert(returned == nil)
		return a
	`)
	require.Equal(t, lua.TypeTable, l.TypeOf(-1))
	assert.Equal(t, 4, l.RawLength(-1))
}

func TestShuffleKeepsTableIdentity(t *testing.T) {
	l := newTestState(t, 9)
	eval(t, l, `
		local x, y, z = {}, function() end, {1}
		local a = {x, y, z}
		for i = 1, 20 do
			shuffle(a)
			local found = {}
			for _, v in ipairs(a) do found[v] = true end
			assert(found[x] and found[y] and found[z] and #a == 3)
		end
	`)
}

func TestSample(t *testing.T) {
	l := newTestState(t, 10)
	eval(t, l, `
		local x = {'a', 'b', 'c', 'd'}
		for i = 1, 100 do
			local s = sample(x)
			local ok = false
			for _, v in ipairs(x) do if v == s then ok = true end end
			assert(ok, "sampled value not in array")
			local m = array(x):sample()
			assert(m == 'a' or m == 'b' or m == 'c' or m == 'd')
		end
		assert(sample({}) == nil)
		assert(array{}:sample() == nil)
	`)
}

func TestSampleMany(t *testing.T) {
	l := newTestState(t, 11)
	eval(t, l, `
		local a = array{1, 2, 3, 4, 5}
		for i = 1, 100 do
			local s = a:sample(3)
			assert(#s == 3)
			local seen = {}
			for _, v in ipairs(s) do
				assert(v >= 1 and v <= 5)
				assert(not seen[v], "duplicate " .. v)
				seen[v] = true
			end
		end
		assert(#a:sample(0) == 0)
		assert(a[1] == 1 and a[5] == 5, "source must not change")
	`)

	err := lua.DoString(l, `return sample({1, 2, 3, 4, 5}, 6)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestNonArrayArgumentFails(t *testing.T) {
	l := newTestState(t, 12)
	err := lua.DoString(l, `return shuffle(5)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}
