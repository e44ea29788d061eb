package services

import (
	"testing"

	"plateful/entity"
	"plateful/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentService(db *gorm.DB) *ContentService {
	return NewContentService(repository.NewContentRepository(db))
}

func TestPopupShownOncePerDevice(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	once, err := svc.CreatePopup(&PopupIn{Title: "welcome", DisplayFrequency: entity.PopupOnce})
	require.NoError(t, err)
	always, err := svc.CreatePopup(&PopupIn{Title: "promo of the week", DisplayFrequency: entity.PopupAlways})
	require.NoError(t, err)

	// a fresh device gets a token minted for it
	popups, token, err := svc.PopupsForDevice("")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, popups, 2)

	require.NoError(t, svc.MarkPopupSeen(once.ID, token))
	require.NoError(t, svc.MarkPopupSeen(always.ID, token))
	// marking twice is harmless
	require.NoError(t, svc.MarkPopupSeen(once.ID, token))

	popups, _, err = svc.PopupsForDevice(token)
	require.NoError(t, err)
	require.Len(t, popups, 1)
	assert.Equal(t, always.ID, popups[0].ID)

	// a different device still sees everything
	other, _, err := svc.PopupsForDevice("")
	require.NoError(t, err)
	assert.Len(t, other, 2)
}

func TestArticleSlugLookupIsPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)

	cat, err := svc.CreateCategory("news")
	require.NoError(t, err)

	_, err = svc.CreateArticle(&ArticleIn{CategoryID: cat.ID, Title: "Hello", Slug: "hello", Published: true})
	require.NoError(t, err)
	_, err = svc.CreateArticle(&ArticleIn{CategoryID: cat.ID, Title: "Draft", Slug: "draft", Published: false})
	require.NoError(t, err)

	a, err := svc.ArticleBySlug("hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", a.Title)

	_, err = svc.ArticleBySlug("draft")
	assert.Error(t, err)
}
