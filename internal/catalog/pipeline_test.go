package catalog_test

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/veena-verse/bookshop-backend/internal/catalog"
    "github.com/veena-verse/bookshop-backend/internal/model"
)

func strPtr(s string) *string { return &s }

func sampleBooks() []model.Book {
    base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
    return []model.Book{
        {
            ID: 1, Title: "Zed", Author: "Nina Hale", Genre: "fiction",
            Price: 10, CreatedAt: base,
        },
        {
            ID: 2, Title: "Ann", Author: "Omar Reyes", Genre: "poetry",
            Price: 5, CreatedAt: base.Add(2 * time.Hour),
        },
        {
            ID: 3, Title: "Mid", Author: "bella chu", Genre: "fiction",
            Price:       5,
            Description: strPtr("A sweeping dystopian epic about memory."),
            CreatedAt:   base.Add(time.Hour),
        },
    }
}

func titles(books []model.Book) []string {
    out := make([]string, 0, len(books))
    for _, b := range books {
        out = append(out, b.Title)
    }
    return out
}

func TestGenreAllIsNoOp(t *testing.T) {
    in := sampleBooks()
    got := catalog.Apply(in, "", catalog.GenreAll, catalog.SortTitleAsc)
    assert.Len(t, got, len(in))

    ids := map[uint64]bool{}
    for _, b := range got {
        ids[b.ID] = true
    }
    for _, b := range in {
        assert.True(t, ids[b.ID], "book %d missing from unfiltered result", b.ID)
    }
}

func TestGenreFilterExactMatch(t *testing.T) {
    got := catalog.Apply(sampleBooks(), "", "fiction", catalog.SortTitleAsc)
    require.Len(t, got, 2)
    for _, b := range got {
        assert.Equal(t, "fiction", b.Genre)
    }

    // Genre matching is case-sensitive.
    got = catalog.Apply(sampleBooks(), "", "Fiction", catalog.SortTitleAsc)
    assert.Empty(t, got)
}

func TestSearchMatchesEveryResult(t *testing.T) {
    in := sampleBooks()
    got := catalog.Apply(in, "  NiNa ", catalog.GenreAll, catalog.SortTitleAsc)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)

    // Whitespace-only query keeps all records.
    got = catalog.Apply(in, "   ", catalog.GenreAll, catalog.SortTitleAsc)
    assert.Len(t, got, len(in))
}

func TestSearchHitsDescriptionSubstring(t *testing.T) {
    // "dystopia" is a substring of "dystopian" in the description.
    got := catalog.Apply(sampleBooks(), "dystopia", catalog.GenreAll, catalog.SortTitleAsc)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(3), got[0].ID)
}

func TestSearchHitsISBN(t *testing.T) {
    in := sampleBooks()
    in[0].ISBN = strPtr("978-0141439518")
    got := catalog.Apply(in, "0141439518", catalog.GenreAll, catalog.SortTitleAsc)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)
}

func TestTitleSortReverses(t *testing.T) {
    in := sampleBooks()
    asc := catalog.Apply(in, "", catalog.GenreAll, catalog.SortTitleAsc)
    desc := catalog.Apply(in, "", catalog.GenreAll, catalog.SortTitleDesc)
    require.Len(t, asc, 3)
    require.Len(t, desc, 3)
    for i := range asc {
        assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
    }
    assert.Equal(t, []string{"Ann", "Mid", "Zed"}, titles(asc))
}

func TestAuthorSortCaseFolded(t *testing.T) {
    got := catalog.Apply(sampleBooks(), "", catalog.GenreAll, catalog.SortAuthorAsc)
    // "bella chu" sorts before "Nina Hale" when case-folded.
    assert.Equal(t, []string{"Mid", "Zed", "Ann"}, titles(got))
}

func TestPriceSortIsStable(t *testing.T) {
    // {Zed: 10} {Ann: 5} {Mid: 5} -> Ann and Mid keep input order, Zed last.
    got := catalog.Apply(sampleBooks(), "", catalog.GenreAll, catalog.SortPriceAsc)
    assert.Equal(t, []string{"Ann", "Mid", "Zed"}, titles(got))

    got = catalog.Apply(sampleBooks(), "", catalog.GenreAll, catalog.SortPriceDesc)
    assert.Equal(t, []string{"Zed", "Ann", "Mid"}, titles(got))
}

func TestMissingPriceSortsAsZero(t *testing.T) {
    in := sampleBooks()
    in[0].Price = 0 // records with no price compare as zero
    got := catalog.Apply(in, "", catalog.GenreAll, catalog.SortPriceAsc)
    assert.Equal(t, "Zed", got[0].Title)
}

func TestNewestFirstRegardlessOfInputOrder(t *testing.T) {
    in := sampleBooks()
    got := catalog.Apply(in, "", catalog.GenreAll, catalog.SortNewest)
    require.Len(t, got, 3)
    assert.Equal(t, uint64(2), got[0].ID, "most recently created record must come first")
    assert.Equal(t, uint64(3), got[1].ID)
    assert.Equal(t, uint64(1), got[2].ID)

    // Reversed input yields the same ordering.
    rev := []model.Book{in[2], in[1], in[0]}
    got = catalog.Apply(rev, "", catalog.GenreAll, catalog.SortNewest)
    assert.Equal(t, uint64(2), got[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
    in := sampleBooks()
    want := titles(in)
    _ = catalog.Apply(in, "ann", "poetry", catalog.SortPriceDesc)
    assert.Equal(t, want, titles(in))
}

func TestGenres(t *testing.T) {
    got := catalog.Genres(sampleBooks())
    assert.Equal(t, []string{"fiction", "poetry"}, got)
}

func TestValidSort(t *testing.T) {
    assert.True(t, catalog.ValidSort(catalog.SortNewest))
    assert.True(t, catalog.ValidSort(catalog.SortPriceDesc))
    assert.False(t, catalog.ValidSort("price"))
    assert.False(t, catalog.ValidSort(""))
}
