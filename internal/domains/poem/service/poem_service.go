package service

import (
	"context"
	"errors"
	"sort"

	"poemsite-backend/internal/content"
	"poemsite-backend/internal/domains/author"
	"poemsite-backend/internal/domains/poem"
	"poemsite-backend/internal/shared/utils"
)

type poemService struct {
	authors  author.Repository
	repo     poem.Repository
	resolver *content.Resolver
}

func NewPoemService(authors author.Repository, repo poem.Repository, resolver *content.Resolver) poem.Service {
	return &poemService{
		authors:  authors,
		repo:     repo,
		resolver: resolver,
	}
}

// Page merge DB row với file trên disk cho một bài thơ.
//
// Title: DB title → title derive từ tên file theo lang → derive từ slug.
// CreatedAt: DB trước, filesystem sau.
// Content: file content cho ngôn ngữ được yêu cầu; content trong DB chỉ
// tham gia vào existence check.
func (s *poemService) Page(ctx context.Context, authorSlug, poemSlug, lang string) (*poem.PageView, error) {
	lang = content.NormalizeLang(lang)

	dbAuthor, err := s.authors.GetBySlug(ctx, authorSlug)
	if err != nil && !errors.Is(err, author.ErrAuthorNotFound) {
		return nil, err
	}

	var dbPoem *poem.Poem
	if dbAuthor != nil {
		dbPoem, err = s.repo.GetByAuthorAndSlug(ctx, dbAuthor.ID, poemSlug)
		if err != nil && !errors.Is(err, poem.ErrPoemNotFound) {
			return nil, err
		}
	}

	files := s.resolver.PoemFiles(authorSlug, poemSlug)

	title := ""
	if dbPoem != nil {
		title = dbPoem.Title
	}
	if title == "" {
		title = files.Titles[lang]
	}
	if title == "" {
		title = utils.DisplayNameFromSlug(poemSlug)
	}

	createdAt := files.CreatedAt
	if dbPoem != nil && dbPoem.CreatedAt != nil {
		createdAt = dbPoem.CreatedAt
	}

	pageContent := content.ReadLanguageContent(files.Paths[lang])

	// Ngôn ngữ nào thực sự có nội dung: đọc thật chứ không chỉ check
	// file tồn tại, vì file rỗng không được tính.
	var availableLangs []string
	hasAny := pageContent != ""
	for _, l := range content.Languages {
		if content.ReadLanguageContent(files.Paths[l]) != "" {
			availableLangs = append(availableLangs, l)
			hasAny = true
		}
	}
	if dbPoem != nil && dbPoem.Content != "" {
		hasAny = true
	}

	if !hasAny {
		return nil, poem.ErrPoemNotFound
	}

	authorName := utils.DisplayNameFromSlug(authorSlug)
	if dbAuthor != nil {
		authorName = dbAuthor.Name
	}

	return &poem.PageView{
		AuthorName:     authorName,
		AuthorSlug:     authorSlug,
		Slug:           poemSlug,
		Title:          title,
		Lang:           lang,
		CreatedAt:      createdAt,
		Content:        pageContent,
		AvailableLangs: availableLangs,
		OtherPoems:     s.sidebar(authorSlug, poemSlug),
	}, nil
}

// sidebar liệt kê các bài khác của cùng tác giả, chỉ từ folder, sort
// ascending theo title. Bài đang xem bị loại (quyết định cố định).
func (s *poemService) sidebar(authorSlug, excludeSlug string) []poem.SidebarItem {
	var items []poem.SidebarItem
	for _, p := range s.resolver.ListPoemFolders(authorSlug) {
		if p.Slug == excludeSlug {
			continue
		}
		items = append(items, poem.SidebarItem{Slug: p.Slug, Title: p.Title})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Title < items[j].Title })
	return items
}
