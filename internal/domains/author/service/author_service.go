package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"poemsite-backend/internal/content"
	"poemsite-backend/internal/domains/author"
	"poemsite-backend/internal/shared/utils"
)

// summaryPoemLimit: số bài thơ tối đa trên mỗi tác giả trong /api/authors.
const summaryPoemLimit = 3

// Route phục vụ file tĩnh từ poems root, dùng để build image_url.
const poemFilesRoute = "/poem-files/"

// authorService là merge layer: database là một nguồn, cây thư mục thơ
// (qua content.Resolver) là nguồn còn lại.
type authorService struct {
	repo     author.Repository
	resolver *content.Resolver
}

func NewAuthorService(repo author.Repository, resolver *content.Resolver) author.Service {
	return &authorService{
		repo:     repo,
		resolver: resolver,
	}
}

// MergedList gộp tác giả từ database và folder. Slug đã có trong DB thì
// folder không bao giờ shadow; folder-only author lấy name derive từ slug.
func (s *authorService) MergedList(ctx context.Context) ([]author.Ref, error) {
	dbAuthors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]author.Ref, 0, len(dbAuthors))
	existing := make(map[string]struct{}, len(dbAuthors))
	for _, a := range dbAuthors {
		refs = append(refs, author.Ref{Name: a.Name, Slug: a.Slug})
		existing[a.Slug] = struct{}{}
	}

	for _, slug := range s.resolver.AuthorDirs() {
		if _, ok := existing[slug]; ok {
			continue
		}
		refs = append(refs, author.Ref{
			Name: utils.DisplayNameFromSlug(slug),
			Slug: slug,
		})
	}

	// Sort theo display name, không phải slug.
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })

	return refs, nil
}

// Summaries build payload cho GET /api/authors: DB authors trước, rồi bổ
// sung các tác giả chỉ có trên folder.
func (s *authorService) Summaries(ctx context.Context) ([]author.Summary, error) {
	dbAuthors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]author.Summary, 0, len(dbAuthors))
	existing := make(map[string]struct{}, len(dbAuthors))

	for _, a := range dbAuthors {
		poems, err := s.repo.PoemSummaries(ctx, a.ID, summaryPoemLimit)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, s.buildSummary(a.Name, a.Slug, poems))
		existing[a.Slug] = struct{}{}
	}

	for _, slug := range s.resolver.AuthorDirs() {
		if _, ok := existing[slug]; ok {
			continue
		}

		folderPoems := s.resolver.ListPoemFolders(slug)
		if len(folderPoems) > summaryPoemLimit {
			folderPoems = folderPoems[:summaryPoemLimit]
		}

		poems := make([]author.PoemSummary, 0, len(folderPoems))
		for _, p := range folderPoems {
			poems = append(poems, author.PoemSummary{
				Title:     p.Title,
				Slug:      p.Slug,
				CreatedAt: p.CreatedAt,
			})
		}

		summaries = append(summaries, s.buildSummary(utils.DisplayNameFromSlug(slug), slug, poems))
	}

	return summaries, nil
}

func (s *authorService) buildSummary(name, slug string, poems []author.PoemSummary) author.Summary {
	profile := s.resolver.AuthorProfile(slug)

	if poems == nil {
		poems = []author.PoemSummary{}
	}

	return author.Summary{
		Name:     name,
		Slug:     slug,
		Poems:    poems,
		Bio:      profile.Bio,
		ImageURL: imageURL(profile.ImageRel),
	}
}

// Page gộp bài thơ từ cả hai nguồn, tag source tương ứng. Cùng một slug
// có thể xuất hiện hai lần, một lần mỗi nguồn, không dedupe chéo nguồn.
func (s *authorService) Page(ctx context.Context, slug string) (*author.PageView, error) {
	dbAuthor, err := s.repo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, author.ErrAuthorNotFound) {
		return nil, err
	}

	var poems []author.PoemSummary

	if dbAuthor != nil {
		dbPoems, err := s.repo.PoemSummaries(ctx, dbAuthor.ID, 0)
		if err != nil {
			return nil, err
		}
		for _, p := range dbPoems {
			p.Source = author.SourceDB
			poems = append(poems, p)
		}
	}

	for _, p := range s.resolver.ListPoemFolders(slug) {
		poems = append(poems, author.PoemSummary{
			Title:     p.Title,
			Slug:      p.Slug,
			CreatedAt: p.CreatedAt,
			Source:    author.SourceFile,
		})
	}

	if len(poems) == 0 && dbAuthor == nil {
		return nil, author.ErrAuthorNotFound
	}

	utils.SortNewestFirst(poems, func(p author.PoemSummary) *time.Time { return p.CreatedAt })

	name := utils.DisplayNameFromSlug(slug)
	if dbAuthor != nil {
		name = dbAuthor.Name
	}

	profile := s.resolver.AuthorProfile(slug)

	return &author.PageView{
		Name:     name,
		Slug:     slug,
		Bio:      profile.Bio,
		ImageURL: imageURL(profile.ImageRel),
		Poems:    poems,
	}, nil
}

func imageURL(rel *string) *string {
	if rel == nil {
		return nil
	}
	u := poemFilesRoute + *rel
	return &u
}
