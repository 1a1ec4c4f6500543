package services

import (
	"github.com/auy1jlll/pizza-vx-sub010/entity"
	"github.com/auy1jlll/pizza-vx-sub010/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) Categories() ([]entity.MenuCategory, error) {
	return s.Repo.ListCategories()
}

type CategoryMenu struct {
	Category entity.MenuCategory `json:"category"`
	Items    []entity.MenuItem   `json:"items"`
}

func (s *CatalogService) MenuForCategory(slug string) (*CategoryMenu, error) {
	cat, err := s.Repo.FindCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListItemsByCategory(cat.ID)
	if err != nil {
		return nil, err
	}
	return &CategoryMenu{Category: *cat, Items: items}, nil
}

func (s *CatalogService) ItemDetail(id uint) (*entity.MenuItem, error) {
	return s.Repo.GetItemDetail(id)
}
