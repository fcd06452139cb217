package usecase

import (
	"career-compass/internal/catalog"
	"career-compass/internal/domain/skillext"
)

type ExtractionResult struct {
	Skills     []string
	Categories map[string][]string
}

type ExtractionUsecase interface {
	FromText(text string) ExtractionResult
	FromList(items []string) ExtractionResult
}

type Extraction struct {
	catalog *catalog.Store
}

func NewExtractionUsecase(store *catalog.Store) *Extraction {
	return &Extraction{catalog: store}
}

func (u *Extraction) FromText(text string) ExtractionResult {
	skills := skillext.ExtractFromText(text, u.catalog.SkillNames())
	return u.result(skills)
}

func (u *Extraction) FromList(items []string) ExtractionResult {
	skills := skillext.ExtractFromList(items, u.catalog.SkillNames())
	return u.result(skills)
}

func (u *Extraction) result(skills []string) ExtractionResult {
	return ExtractionResult{
		Skills:     skills,
		Categories: skillext.Categorize(skills, u.catalog.Categories()),
	}
}
