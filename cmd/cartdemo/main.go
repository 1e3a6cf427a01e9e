// cartdemo is a standalone cart demonstration over a fixed catalog.  It
// reuses the storefront's query pipeline for browsing and persists the
// cart as a single snapshot in Redis, so the cart survives between runs
// the way the original demo page survived reloads.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/veena-verse/bookshop-backend/internal/cart"
	"github.com/veena-verse/bookshop-backend/internal/catalog"
	"github.com/veena-verse/bookshop-backend/internal/config"
)

const cartKey = "veena-verse:cartdemo"

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cartdemo <command> [args]

commands:
  list [-search q] [-genre g] [-sort key]   browse the demo catalog
  add <book-id>                             add a book to the cart
  remove <book-id>                          remove a book from the cart
  show                                      print the cart
  checkout                                  place the demo order and clear the cart`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Fatal("cartdemo: redis is required to persist the cart (set REDIS_ADDR)")
	}
	store := cart.NewRedisStore(rdb, cartKey)
	books := demoBooks()

	switch os.Args[1] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		search := fs.String("search", "", "search title, author, genre or ISBN")
		genre := fs.String("genre", catalog.GenreAll, "genre filter")
		sortKey := fs.String("sort", catalog.DefaultSort, "sort key")
		_ = fs.Parse(os.Args[2:])
		if !catalog.ValidSort(*sortKey) {
			log.Fatalf("unknown sort key %q", *sortKey)
		}
		for _, b := range catalog.Apply(books, *search, *genre, *sortKey) {
			fmt.Printf("%3d  %-28s %-22s %-16s Rs. %.2f\n", b.ID, b.Title, b.Author, b.Genre, b.Price)
		}

	case "add", "remove":
		if len(os.Args) < 3 {
			usage()
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			log.Fatalf("invalid book id %q", os.Args[2])
		}
		c, err := store.Load(ctx)
		if err != nil {
			log.Fatalf("load cart: %v", err)
		}
		if os.Args[1] == "add" {
			if !c.Add(books, id) {
				log.Fatalf("no book with id %d", id)
			}
		} else {
			c.Remove(id)
		}
		if err := store.Save(ctx, c); err != nil {
			log.Fatalf("save cart: %v", err)
		}
		fmt.Printf("cart: %d item(s), total Rs. %s\n", c.Count(), c.Total())

	case "show":
		c, err := store.Load(ctx)
		if err != nil {
			log.Fatalf("load cart: %v", err)
		}
		if c.Empty() {
			fmt.Println("your cart is empty")
			return
		}
		for _, it := range c.Items() {
			fmt.Printf("%3d  %-28s %-22s x%d  Rs. %.2f\n", it.BookID, it.Title, it.Author, it.Quantity, it.Price)
		}
		fmt.Printf("total: Rs. %s\n", c.Total())

	case "checkout":
		c, err := store.Load(ctx)
		if err != nil {
			log.Fatalf("load cart: %v", err)
		}
		total := c.Total()
		if !c.Checkout() {
			fmt.Println("your cart is empty")
			return
		}
		if err := store.Save(ctx, c); err != nil {
			log.Fatalf("save cart: %v", err)
		}
		fmt.Printf("order placed for Rs. %s (this is a demo, nothing was charged)\n", total)

	default:
		usage()
	}
}
