package cart_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/veena-verse/bookshop-backend/internal/cart"
    "github.com/veena-verse/bookshop-backend/internal/model"
)

func demoBooks() []model.Book {
    return []model.Book{
        {ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "classic", Price: 12.99},
        {ID: 2, Title: "1984", Author: "George Orwell", Genre: "fiction", Price: 13.99},
        {ID: 3, Title: "Leaves of Grass", Author: "Walt Whitman", Genre: "poetry", Price: 12.99},
    }
}

func TestAddMergesQuantity(t *testing.T) {
    c := cart.New()
    books := demoBooks()

    require.True(t, c.Add(books, 1))
    require.True(t, c.Add(books, 1))

    items := c.Items()
    require.Len(t, items, 1, "repeat add must not create a second line item")
    assert.Equal(t, uint32(2), items[0].Quantity)
    assert.Equal(t, "The Great Gatsby", items[0].Title)
    assert.Equal(t, uint32(2), c.Count())
}

func TestAddUnknownIDIsNoOp(t *testing.T) {
    c := cart.New()
    assert.False(t, c.Add(demoBooks(), 999))
    assert.True(t, c.Empty())
}

func TestRemove(t *testing.T) {
    c := cart.New()
    books := demoBooks()
    c.Add(books, 1)
    c.Add(books, 2)

    c.Remove(1)
    items := c.Items()
    require.Len(t, items, 1)
    assert.Equal(t, uint64(2), items[0].BookID)

    // Removing a non-existent id leaves the cart unchanged.
    c.Remove(42)
    assert.Len(t, c.Items(), 1)
}

func TestTotalTwoDecimals(t *testing.T) {
    c := cart.New()
    books := demoBooks()
    assert.Equal(t, "0.00", c.Total())

    c.Add(books, 1) // 12.99
    c.Add(books, 2) // 13.99
    c.Add(books, 2) // 13.99 again, quantity 2
    assert.Equal(t, "40.97", c.Total())
}

func TestCheckout(t *testing.T) {
    c := cart.New()
    assert.False(t, c.Checkout(), "checkout on empty cart does nothing")

    c.Add(demoBooks(), 3)
    assert.True(t, c.Checkout())
    assert.True(t, c.Empty(), "checkout clears the entire cart")
}

func TestSnapshotRoundTrip(t *testing.T) {
    c := cart.New()
    books := demoBooks()
    c.Add(books, 1)
    c.Add(books, 3)
    c.Add(books, 3)

    data, err := c.Snapshot()
    require.NoError(t, err)

    got := cart.FromSnapshot(data)
    assert.Equal(t, c.Items(), got.Items())
    assert.Equal(t, c.Total(), got.Total())
}

func TestFromSnapshotMalformed(t *testing.T) {
    // Corrupt stored data must land on an empty cart, not a crash.
    c := cart.FromSnapshot([]byte(`{"not":"a cart"`))
    assert.True(t, c.Empty())

    c = cart.FromSnapshot(nil)
    assert.True(t, c.Empty())
}
