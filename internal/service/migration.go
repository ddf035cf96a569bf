package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var nameUnsafe = regexp.MustCompile(`[^a-z0-9_-]+`)

// RelatedItem is a legacy "related item" exported from the old catalog
type RelatedItem struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	ImageURL    string `yaml:"image_url"`
	Type        string `yaml:"type"`
	Owner       string `yaml:"owner"`
	Dataset     string `yaml:"dataset"`
}

type relatedItemsFile struct {
	RelatedItems []RelatedItem `yaml:"related_items"`
}

// LoadRelatedItems parses a legacy export
func LoadRelatedItems(r io.Reader) ([]RelatedItem, error) {
	var file relatedItemsFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse related items: %w", err)
	}
	return file.RelatedItems, nil
}

// MigrationResult summarises an import run
type MigrationResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}

// MigrationService runs the one-off data migrations of the CLI
type MigrationService struct {
	packageRepo repository.PackageRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	markdown    goldmark.Markdown
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(packageRepo repository.PackageRepositoryInterface, userRepo repository.UserRepositoryInterface) *MigrationService {
	return &MigrationService{
		packageRepo: packageRepo,
		userRepo:    userRepo,
		markdown:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// ImportRelatedItems turns legacy related items into showcases.
// An item whose title is already used by a showcase is skipped unless allowDuplicates is set,
// in which case it is stored as duplicate_<name>_<related-id>.
func (s *MigrationService) ImportRelatedItems(ctx context.Context, items []RelatedItem, allowDuplicates bool) (*MigrationResult, error) {
	log := logger.WithContext(ctx)
	result := &MigrationResult{}

	for _, item := range items {
		name := titleToName(item.Title)

		_, err := s.packageRepo.GetByTitle(item.Title, models.PackageTypeShowcase)
		switch {
		case err == nil && !allowDuplicates:
			log.WithField("related_id", item.ID).Warnf("skipping related item %q: a showcase with this title exists", item.Title)
			result.Skipped++
			continue
		case err == nil:
			name = truncateName(fmt.Sprintf("duplicate_%s_%s", name, titleToName(item.ID)))
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return result, fmt.Errorf("failed to look up showcase title: %w", err)
		}

		if err := s.importItem(item, name); err != nil {
			log.WithField("related_id", item.ID).Errorf("failed to migrate related item: %v", err)
			result.Failed = append(result.Failed, item.ID)
			continue
		}
		result.Created++
	}

	log.WithFields(map[string]interface{}{
		"created": result.Created,
		"skipped": result.Skipped,
		"failed":  len(result.Failed),
	}).Info("related items migrated")
	return result, nil
}

// importItem resolves every reference before writing, then stores the showcase and its
// dataset link together so a failed item leaves nothing behind
func (s *MigrationService) importItem(item RelatedItem, name string) error {
	exists, err := s.packageRepo.ExistsByName(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("name %q is already in use", name)
	}

	var datasetIDs []uuid.UUID
	if item.Dataset != "" {
		dataset, err := s.packageRepo.GetByNameOrID(item.Dataset, models.PackageTypeDataset)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("dataset %q not found", item.Dataset)
			}
			return err
		}
		datasetIDs = append(datasetIDs, dataset.ID)
	}

	pkg := &models.Package{
		Name:                  name,
		Title:                 item.Title,
		Notes:                 item.Description,
		Type:                  models.PackageTypeShowcase,
		State:                 models.PackageStateActive,
		URL:                   item.URL,
		ImageURL:              item.ImageURL,
		ReuseType:             legacyReuseType(item.Type),
		OriginalRelatedItemID: item.ID,
	}
	if item.Owner != "" {
		if owner, err := s.userRepo.GetByNameOrID(item.Owner); err == nil {
			pkg.CreatorUserID = &owner.ID
		}
	}

	return s.packageRepo.CreateShowcaseWithDatasets(pkg, datasetIDs)
}

// MarkdownToHTML renders the notes of every active showcase from markdown to HTML
func (s *MigrationService) MarkdownToHTML(ctx context.Context) (int, error) {
	showcases, _, err := s.packageRepo.ListByType(models.PackageTypeShowcase, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list showcases: %w", err)
	}

	migrated := 0
	for i := range showcases {
		html, err := s.RenderMarkdown(showcases[i].Notes)
		if err != nil {
			return migrated, fmt.Errorf("failed to render notes of %s: %w", showcases[i].Name, err)
		}
		if err := s.packageRepo.Patch(showcases[i].ID, map[string]interface{}{"notes": html}); err != nil {
			return migrated, fmt.Errorf("failed to update notes of %s: %w", showcases[i].Name, err)
		}
		migrated++
	}

	logger.WithContext(ctx).WithField("count", migrated).Info("all notes were migrated successfully")
	return migrated, nil
}

// RenderMarkdown converts markdown source to HTML
func (s *MigrationService) RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func legacyReuseType(t string) models.ReuseType {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "paper":
		return models.ReuseTypeResearch
	case "news_article", "news":
		return models.ReuseTypeNewsArticle
	}
	if r := models.ReuseType(strings.ToLower(t)); r.IsValid() {
		return r
	}
	return models.ReuseTypeOther
}

// titleToName lowercases s and replaces every run of unsafe characters with "-"
func titleToName(s string) string {
	name := strings.Trim(nameUnsafe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-"), "-")
	for len(name) < 2 {
		name += "_"
	}
	return truncateName(name)
}

func truncateName(name string) string {
	if len(name) > 100 {
		return name[:100]
	}
	return name
}
