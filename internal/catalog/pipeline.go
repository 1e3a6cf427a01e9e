// Package catalog implements the storefront's query pipeline: the pure
// transformation that turns an unordered batch of book records plus
// user-supplied search/filter/sort parameters into the ordered list the
// catalog displays.  The same pipeline runs against records fetched from
// the database and against the fixed in-memory catalog of the cart demo.
package catalog

import (
    "sort"
    "strings"

    "github.com/veena-verse/bookshop-backend/internal/model"
)

// GenreAll is the sentinel genre filter meaning "no genre filter".
const GenreAll = "all"

// Sort keys accepted by Apply.  A key decomposes into a field and a
// direction except SortNewest, which always means most recently created
// first.
const (
    SortTitleAsc   = "title_asc"
    SortTitleDesc  = "title_desc"
    SortAuthorAsc  = "author_asc"
    SortAuthorDesc = "author_desc"
    SortPriceAsc   = "price_asc"
    SortPriceDesc  = "price_desc"
    SortNewest     = "newest"
)

// DefaultSort is applied when the caller supplies an empty or unknown
// sort key.
const DefaultSort = SortTitleAsc

// Apply runs the three pipeline stages (search, genre filter, sort) over
// a copy of records and returns the ordered result.  The input slice is
// never mutated.  Absent optional fields degrade to comparison defaults
// (empty string, zero price) rather than failing, and the sort is stable
// so records with equal keys keep their relative order from the
// filtering stages.
func Apply(records []model.Book, searchQuery, genreFilter, sortKey string) []model.Book {
    out := make([]model.Book, len(records))
    copy(out, records)

    if q := strings.ToLower(strings.TrimSpace(searchQuery)); q != "" {
        out = filterSearch(out, q)
    }
    if genreFilter != "" && genreFilter != GenreAll {
        out = filterGenre(out, genreFilter)
    }
    sortRecords(out, sortKey)
    return out
}

// filterSearch keeps records where the case-folded query occurs as a
// substring in at least one of title, author, genre, ISBN or
// description.  Plain substring containment, OR-combined; no
// tokenization or ranking.
func filterSearch(records []model.Book, q string) []model.Book {
    kept := records[:0]
    for _, b := range records {
        if strings.Contains(strings.ToLower(b.Title), q) ||
            strings.Contains(strings.ToLower(b.Author), q) ||
            strings.Contains(strings.ToLower(b.Genre), q) ||
            (b.ISBN != nil && strings.Contains(strings.ToLower(*b.ISBN), q)) ||
            (b.Description != nil && strings.Contains(strings.ToLower(*b.Description), q)) {
            kept = append(kept, b)
        }
    }
    return kept
}

// filterGenre keeps only exact, case-sensitive genre matches.
func filterGenre(records []model.Book, genre string) []model.Book {
    kept := records[:0]
    for _, b := range records {
        if b.Genre == genre {
            kept = append(kept, b)
        }
    }
    return kept
}

// sortRecords orders records in place by the given sort key.  "newest"
// means descending by creation time; the original storefront sorted
// ascending and reversed, which is the same ordering expressed in two
// steps.
func sortRecords(records []model.Book, sortKey string) {
    var less func(a, b model.Book) bool
    switch sortKey {
    case SortTitleDesc:
        less = func(a, b model.Book) bool {
            return strings.ToLower(a.Title) > strings.ToLower(b.Title)
        }
    case SortAuthorAsc:
        less = func(a, b model.Book) bool {
            return strings.ToLower(a.Author) < strings.ToLower(b.Author)
        }
    case SortAuthorDesc:
        less = func(a, b model.Book) bool {
            return strings.ToLower(a.Author) > strings.ToLower(b.Author)
        }
    case SortPriceAsc:
        less = func(a, b model.Book) bool { return a.Price < b.Price }
    case SortPriceDesc:
        less = func(a, b model.Book) bool { return a.Price > b.Price }
    case SortNewest:
        less = func(a, b model.Book) bool { return a.CreatedAt.After(b.CreatedAt) }
    case SortTitleAsc:
        fallthrough
    default:
        less = func(a, b model.Book) bool {
            return strings.ToLower(a.Title) < strings.ToLower(b.Title)
        }
    }
    sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

// Genres returns the distinct genres of records, sorted lexicographically.
// The storefront renders these as filter tabs next to the GenreAll tab.
func Genres(records []model.Book) []string {
    seen := make(map[string]bool, len(records))
    var out []string
    for _, b := range records {
        if b.Genre != "" && !seen[b.Genre] {
            seen[b.Genre] = true
            out = append(out, b.Genre)
        }
    }
    sort.Strings(out)
    return out
}

// ValidSort reports whether key is one of the accepted sort keys.
func ValidSort(key string) bool {
    switch key {
    case SortTitleAsc, SortTitleDesc, SortAuthorAsc, SortAuthorDesc,
        SortPriceAsc, SortPriceDesc, SortNewest:
        return true
    }
    return false
}
