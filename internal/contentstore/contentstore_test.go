package contentstore

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strivefit/strivefit/internal/model"
)

func newTestStore(t *testing.T) *contentstore {
	t.Helper()
	store, err := New(path.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("creating contentstore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeededWorkouts(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	t.Run("full library", func(t *testing.T) {
		workouts, err := store.Workouts("")
		assert.Nil(err)
		assert.Len(workouts, 6)
	})

	t.Run("category filter", func(t *testing.T) {
		workouts, err := store.Workouts("Strength")
		assert.Nil(err)
		assert.Len(workouts, 2)
		for _, w := range workouts {
			assert.Equal("Strength", w.Category)
		}
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		workouts, err := store.Workouts("Underwater")
		assert.Nil(err)
		assert.Empty(workouts)
	})
}

func TestBlogPosts(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	posts, err := store.BlogPosts()
	assert.Nil(err)
	assert.NotEmpty(posts)

	t.Run("index omits bodies", func(t *testing.T) {
		for _, p := range posts {
			assert.Empty(p.Body)
		}
	})

	t.Run("fetch by id includes body", func(t *testing.T) {
		post, err := store.BlogPost(posts[0].ID)
		assert.Nil(err)
		assert.NotEmpty(post.Body)
	})

	t.Run("at least one premium post is seeded", func(t *testing.T) {
		premium := 0
		for _, p := range posts {
			if p.Premium {
				premium++
			}
		}
		assert.Greater(premium, 0)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.BlogPost("does-not-exist")
		assert.ErrorIs(err, model.ErrorPostNotFound)
	})
}
