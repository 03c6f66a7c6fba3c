package article

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxTitleLength = 255

var (
	ErrInvalidTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong    = errors.New("title cannot be longer than 255 characters")
	ErrArticleNotFound = errors.New("article not found")
)

type Article struct {
	ID      int64
	Title   string
	Content string
}

func NewArticle(title, content string) (*Article, error) {
	a := &Article{}
	if err := a.Update(title, content); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces title and content; the article is left untouched on error.
func (a *Article) Update(title, content string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	a.Title = title
	a.Content = content
	return nil
}

func (a *Article) GetID() int64 {
	return a.ID
}

func (a *Article) SetID(id int64) {
	a.ID = id
}

func (a *Article) Clone() *Article {
	c := *a
	return &c
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
