package services

import (
	"strings"

	"plateful/entity"
	"plateful/repository"

	"github.com/google/uuid"
)

type ContentService struct {
	Repo *repository.ContentRepository
}

func NewContentService(repo *repository.ContentRepository) *ContentService {
	return &ContentService{Repo: repo}
}

// ----- Banners -----

func (s *ContentService) ActiveBanners() ([]entity.Banner, error) {
	return s.Repo.ListActiveBanners()
}

type BannerIn struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
	LinkURL  string `json:"linkUrl"`
	Position int    `json:"position"`
}

func (s *ContentService) CreateBanner(in *BannerIn) (*entity.Banner, error) {
	b := &entity.Banner{
		Title: in.Title, ImageURL: in.ImageURL, LinkURL: in.LinkURL,
		Position: in.Position, IsActive: true,
	}
	if err := s.Repo.CreateBanner(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *ContentService) SetBannerActive(id uint, active bool) error {
	affected, err := s.Repo.UpdateBanner(id, map[string]any{"is_active": active})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ContentService) DeleteBanner(id uint) error {
	affected, err := s.Repo.DeleteBanner(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- Popups -----

// PopupsForDevice returns the popups a device should still see. An empty
// token gets a fresh one so the once-per-device rule can stick on the next
// call.
func (s *ContentService) PopupsForDevice(deviceToken string) ([]entity.Popup, string, error) {
	deviceToken = strings.TrimSpace(deviceToken)
	if deviceToken == "" {
		deviceToken = uuid.NewString()
	}
	popups, err := s.Repo.ListPopupsForDevice(deviceToken)
	if err != nil {
		return nil, "", err
	}
	return popups, deviceToken, nil
}

// MarkPopupSeen records the view; frequency=once popups disappear for this
// device afterwards.
func (s *ContentService) MarkPopupSeen(popupID uint, deviceToken string) error {
	if strings.TrimSpace(deviceToken) == "" {
		return ErrNotFound
	}
	return s.Repo.MarkPopupViewed(popupID, deviceToken)
}

type PopupIn struct {
	Title            string `json:"title" binding:"required"`
	Body             string `json:"body"`
	ImageURL         string `json:"imageUrl"`
	DisplayFrequency string `json:"displayFrequency" binding:"omitempty,oneof=once always"`
}

func (s *ContentService) CreatePopup(in *PopupIn) (*entity.Popup, error) {
	p := &entity.Popup{
		Title: in.Title, Body: in.Body, ImageURL: in.ImageURL,
		DisplayFrequency: in.DisplayFrequency, IsActive: true,
	}
	if p.DisplayFrequency == "" {
		p.DisplayFrequency = entity.PopupAlways
	}
	if err := s.Repo.CreatePopup(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----- Blog -----

type ArticleIn struct {
	CategoryID uint   `json:"categoryId" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	Body       string `json:"body"`
	Language   string `json:"language"`
	Published  bool   `json:"published"`
}

func (s *ContentService) CreateCategory(name string) (*entity.BlogCategory, error) {
	c := &entity.BlogCategory{Name: name}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentService) ListCategories() ([]entity.BlogCategory, error) {
	return s.Repo.ListCategories()
}

func (s *ContentService) CreateArticle(in *ArticleIn) (*entity.BlogArticle, error) {
	a := &entity.BlogArticle{
		CategoryID: in.CategoryID,
		Title:      in.Title,
		Slug:       slugify(in.Slug),
		Body:       in.Body,
		Language:   in.Language,
		Published:  in.Published,
	}
	if a.Language == "" {
		a.Language = "en"
	}
	if err := s.Repo.CreateArticle(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ContentService) UpdateArticle(id uint, in *ArticleIn) error {
	affected, err := s.Repo.UpdateArticle(id, map[string]any{
		"category_id": in.CategoryID, "title": in.Title,
		"slug": slugify(in.Slug), "body": in.Body,
		"language": in.Language, "published": in.Published,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ContentService) ArticleBySlug(slug string) (*entity.BlogArticle, error) {
	return s.Repo.GetArticleBySlug(slug)
}

func (s *ContentService) ListArticles(categoryID uint, limit, offset int) ([]entity.BlogArticle, error) {
	return s.Repo.ListPublishedArticles(categoryID, limit, offset)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
