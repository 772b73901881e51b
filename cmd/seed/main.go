package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"bookcatalog/internal/apperr"
	"bookcatalog/internal/author"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/postgres"
	"bookcatalog/internal/publisher"
)

type seedBook struct {
	title     string
	year      int
	publisher string
	authors   []string
}

var (
	seedAuthors = []string{
		"Machado de Assis", "Clarice Lispector", "Jorge Amado", "Graciliano Ramos",
		"Cecília Meireles", "Carlos Drummond de Andrade", "Guimarães Rosa", "Rachel de Queiroz",
	}
	seedPublishers = []string{"Companhia das Letras", "Record", "José Olympio", "Nova Fronteira", "Rocco"}
	seedBooks      = []seedBook{
		{"Dom Casmurro", 1899, "Nova Fronteira", []string{"Machado de Assis"}},
		{"A Hora da Estrela", 1977, "Rocco", []string{"Clarice Lispector"}},
		{"Capitães da Areia", 1937, "Companhia das Letras", []string{"Jorge Amado"}},
		{"Vidas Secas", 1938, "Record", []string{"Graciliano Ramos"}},
		{"Grande Sertão: Veredas", 1956, "Nova Fronteira", []string{"Guimarães Rosa"}},
		{"O Quinze", 1930, "José Olympio", []string{"Rachel de Queiroz"}},
		{"Antologia Poética", 1962, "Record", []string{"Carlos Drummond de Andrade", "Cecília Meireles"}},
	}
)

func main() {
	generated := flag.Int("generated", 0, "Number of extra generated books")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := postgres.Open(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", postgres.RedactDSN(cfg.Database.DSN), err)
	}
	defer pool.Close()

	timeout := cfg.Database.QueryTimeout
	authors := author.NewService(author.NewPostgresRepo(pool, timeout))
	publishers := publisher.NewService(publisher.NewPostgresRepo(pool, timeout))
	books := book.NewService(book.NewPostgresRepo(pool, timeout))

	for _, name := range seedAuthors {
		if _, err := authors.Add(ctx, name); err != nil && !skippable(err) {
			log.Fatalf("Failed to seed author %q: %v", name, err)
		}
	}
	for _, name := range seedPublishers {
		if _, err := publishers.Add(ctx, name); err != nil && !skippable(err) {
			log.Fatalf("Failed to seed publisher %q: %v", name, err)
		}
	}

	authorIDs, publisherIDs, err := loadIDs(ctx, authors, publishers)
	if err != nil {
		log.Fatalf("Failed to load seeded ids: %v", err)
	}

	drafts := make([]book.Draft, 0, len(seedBooks)+*generated)
	for _, sb := range seedBooks {
		d := book.Draft{
			Title:           sb.title,
			PublicationDate: time.Date(sb.year, time.January, 1, 0, 0, 0, 0, time.UTC),
			PublisherID:     publisherIDs[sb.publisher],
		}
		for _, name := range sb.authors {
			d.AuthorIDs = append(d.AuthorIDs, authorIDs[name])
		}
		drafts = append(drafts, d)
	}
	drafts = append(drafts, generateDrafts(*generated, authorIDs, publisherIDs)...)

	added := 0
	for _, d := range drafts {
		if _, err := books.Add(ctx, d); err != nil {
			if skippable(err) {
				continue
			}
			log.Fatalf("Failed to seed book %q: %v", d.Title, err)
		}
		added++
	}

	all, err := books.List(ctx)
	if err != nil {
		log.Fatalf("Failed to count books: %v", err)
	}
	log.Printf("Seed done: added=%d total_books=%d", added, len(all))
}

func skippable(err error) bool {
	return apperr.KindOf(err) == apperr.KindDuplicate
}

func loadIDs(ctx context.Context, authors *author.Service, publishers *publisher.Service) (map[string]int64, map[string]int64, error) {
	as, err := authors.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	ps, err := publishers.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	authorIDs := make(map[string]int64, len(as))
	for _, a := range as {
		authorIDs[a.Name] = a.ID
	}
	publisherIDs := make(map[string]int64, len(ps))
	for _, p := range ps {
		publisherIDs[p.Name] = p.ID
	}
	return authorIDs, publisherIDs, nil
}

func generateDrafts(n int, authorIDs, publisherIDs map[string]int64) []book.Draft {
	if n <= 0 || len(publisherIDs) == 0 {
		return nil
	}
	aIDs := make([]int64, 0, len(authorIDs))
	for _, id := range authorIDs {
		aIDs = append(aIDs, id)
	}
	pIDs := make([]int64, 0, len(publisherIDs))
	for _, id := range publisherIDs {
		pIDs = append(pIDs, id)
	}

	drafts := make([]book.Draft, 0, n)
	for i := 0; i < n; i++ {
		d := book.Draft{
			Title:           fmt.Sprintf("Generated Book %d", i+1),
			PublicationDate: time.Date(1950+rand.Intn(75), time.January, 1, 0, 0, 0, 0, time.UTC),
			PublisherID:     pIDs[rand.Intn(len(pIDs))],
		}
		for j := rand.Intn(3); j >= 0 && len(aIDs) > 0; j-- {
			d.AuthorIDs = append(d.AuthorIDs, aIDs[rand.Intn(len(aIDs))])
		}
		drafts = append(drafts, d)
	}
	return drafts
}
