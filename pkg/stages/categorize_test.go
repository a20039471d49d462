package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/pkg/providers"
)

func TestFlattenCategories(t *testing.T) {
	categories := []providers.Category{
		{Name: "焼き物", Items: []providers.CategorizedItem{
			{Name: "うなぎの蒲焼", Price: "¥2,400"},
			{Name: "焼き鳥"},
		}},
		{Name: "揚げ物", Items: []providers.CategorizedItem{
			{Name: "天ぷら盛り合わせ", Price: "¥1,800"},
		}},
	}
	tokens := []providers.Token{
		{Text: "うなぎの蒲焼 ¥2,400", Box: providers.Box{{X: 10, Y: 20}, {X: 90, Y: 20}, {X: 90, Y: 40}, {X: 10, Y: 40}}},
	}

	items := flattenCategories(categories, tokens)
	require.Len(t, items, 3)

	t.Run("indexes run sequentially across categories", func(t *testing.T) {
		for i, item := range items {
			assert.Equal(t, i, item.Index)
		}
	})

	t.Run("carries category, text, and price", func(t *testing.T) {
		assert.Equal(t, "焼き物", items[0].Category)
		assert.Equal(t, "うなぎの蒲焼", items[0].SourceText)
		assert.Equal(t, "¥2,400", items[0].Price)
		assert.Equal(t, "揚げ物", items[2].Category)
		assert.Empty(t, items[1].Price)
	})

	t.Run("attaches box only for matched tokens", func(t *testing.T) {
		assert.Equal(t, [][2]int{{10, 20}, {90, 20}, {90, 40}, {10, 40}}, items[0].Box)
		assert.Nil(t, items[1].Box)
		assert.Nil(t, items[2].Box)
	})

	t.Run("empty categories yield no items", func(t *testing.T) {
		assert.Empty(t, flattenCategories(nil, tokens))
		assert.Empty(t, flattenCategories([]providers.Category{{Name: "empty"}}, tokens))
	})
}

func TestMatchTokenBox(t *testing.T) {
	tokens := []providers.Token{
		{Text: "味噌汁", Box: providers.Box{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}},
		{Text: "特製ラーメン 大盛", Box: providers.Box{{X: 5, Y: 5}, {X: 9, Y: 5}, {X: 9, Y: 7}, {X: 5, Y: 7}}},
	}

	t.Run("exact match", func(t *testing.T) {
		box, ok := matchTokenBox("味噌汁", tokens)
		require.True(t, ok)
		assert.Equal(t, [][2]int{{1, 1}, {2, 1}, {2, 2}, {1, 2}}, box)
	})

	t.Run("token containing the name matches", func(t *testing.T) {
		box, ok := matchTokenBox("特製ラーメン", tokens)
		require.True(t, ok)
		assert.Equal(t, [][2]int{{5, 5}, {9, 5}, {9, 7}, {5, 7}}, box)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := matchTokenBox("寿司", tokens)
		assert.False(t, ok)
	})
}
