package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		content   string
		wantTitle string
		wantErr   error
	}{
		{name: "valid article", title: "Hello", content: "World", wantTitle: "Hello"},
		{name: "empty content", title: "Hello", content: "", wantTitle: "Hello"},
		{name: "title is trimmed", title: "  Hello  ", content: "x", wantTitle: "Hello"},
		{name: "empty title", title: "", wantErr: ErrInvalidTitle},
		{name: "blank title", title: " \t\n", wantErr: ErrInvalidTitle},
		{name: "title at limit", title: strings.Repeat("a", MaxTitleLength), wantTitle: strings.Repeat("a", MaxTitleLength)},
		{name: "title over limit", title: strings.Repeat("a", MaxTitleLength+1), wantErr: ErrTitleTooLong},
		{name: "multibyte title at limit", title: strings.Repeat("ж", MaxTitleLength), wantTitle: strings.Repeat("ж", MaxTitleLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArticle(tt.title, tt.content)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, a.ID)
			assert.Equal(t, tt.wantTitle, a.Title)
			assert.Equal(t, tt.content, a.Content)
		})
	}
}

func TestArticle_Update(t *testing.T) {
	a := &Article{ID: 3, Title: "Old", Content: "old body"}

	require.NoError(t, a.Update("New", ""))

	assert.Equal(t, &Article{ID: 3, Title: "New", Content: ""}, a)
}

func TestArticle_Update_InvalidLeavesArticleUntouched(t *testing.T) {
	a := &Article{ID: 3, Title: "Old", Content: "old body"}

	err := a.Update("", "new body")

	assert.ErrorIs(t, err, ErrInvalidTitle)
	assert.Equal(t, &Article{ID: 3, Title: "Old", Content: "old body"}, a)
}

func TestArticle_Keys(t *testing.T) {
	a := &Article{}
	a.SetID(42)

	assert.Equal(t, int64(42), a.GetID())
}

func TestArticle_Clone(t *testing.T) {
	a := &Article{ID: 1, Title: "Hello"}

	c := a.Clone()
	c.Title = "Changed"

	assert.Equal(t, "Hello", a.Title)
	assert.NotSame(t, a, c)
}
