package sqldb

import (
	"database/sql"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/wansing/chronicle/core"
)

func openTestDB(t *testing.T) *sql.DB {

	t.Helper()

	dir, err := ioutil.TempDir("", "chronicle-test")
	if err != nil {
		t.Fatalf("tempdir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	db, err := sql.Open("sqlite3", filepath.Join(dir, "test.sqlite3"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestArticleDB(t *testing.T) {

	db := NewArticleDB(openTestDB(t))

	const author = 1

	// insert assigns an id and yields a draft

	a, err := db.InsertArticle(author)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("no id assigned")
	}
	if a.AuthorID != author || a.Title != "" || a.Published != nil {
		t.Fatalf("unexpected draft: %+v", a)
	}
	if a.Created == 0 || a.Updated == 0 {
		t.Fatalf("timestamps not set: %+v", a)
	}

	// get missing

	if _, err := db.GetArticle(a.ID + 1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("get missing: got %v, want ErrNotFound", err)
	}

	// conditional writes require the matching author

	if _, err := db.SetFields(a.ID, author+1, "t", "c", "i"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("set fields with wrong author: got %v, want ErrNotFound", err)
	}

	edited, err := db.SetFields(a.ID, author, "Title", "Content", "⭐")
	if err != nil {
		t.Fatalf("set fields: %v", err)
	}
	if edited.Title != "Title" || edited.Content != "Content" || edited.Icon != "⭐" {
		t.Errorf("fields not written: %+v", edited)
	}
	if edited.Published != nil {
		t.Errorf("set fields touched the published timestamp")
	}

	// publish roundtrip

	published, err := db.SetPublished(a.ID, author, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.Published == nil {
		t.Fatalf("still a draft")
	}

	unpublished, err := db.SetPublished(a.ID, author, false)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.Published != nil {
		t.Fatalf("still published")
	}
	if unpublished.Updated < published.Updated {
		t.Errorf("updated timestamp went backwards")
	}

	// delete

	if err := db.DeleteArticle(a.ID, author+1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("delete with wrong author: got %v, want ErrNotFound", err)
	}
	if err := db.DeleteArticle(a.ID, author); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetArticle(a.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("get after delete: got %v, want ErrNotFound", err)
	}
}

func TestPublishedArticlesOrder(t *testing.T) {

	db := NewArticleDB(openTestDB(t))

	const author = 1

	// three published, one draft

	var ids []int
	for i := 0; i < 4; i++ {
		a, err := db.InsertArticle(author)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		ids = append(ids, a.ID)
	}
	for _, id := range ids[:3] {
		if _, err := db.SetPublished(id, author, true); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	list, err := db.PublishedArticles()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d articles, want 3", len(list))
	}

	// published in id order and ties break by id descending,
	// so the result is newest first either way

	for i, a := range list {
		if a.Published == nil {
			t.Fatalf("draft in list: %+v", a)
		}
		if want := ids[2-i]; a.ID != want {
			t.Errorf("position %d: got id %d, want %d", i, a.ID, want)
		}
	}
}

func TestUserDB(t *testing.T) {

	db := NewUserDB(openTestDB(t))

	u, err := db.InsertUser(" Alice@Example.com ")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if u.Name() != "alice@example.com" {
		t.Errorf("name not cleaned: %q", u.Name())
	}

	if err := db.SetPassword(u, "secret"); err != nil {
		t.Fatalf("set password: %v", err)
	}

	if _, err := db.LoginUser("alice@example.com", "wrong"); err == nil {
		t.Errorf("login with wrong password succeeded")
	}

	logged, err := db.LoginUser("Alice@Example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Id() != u.Id() {
		t.Errorf("login id: got %d, want %d", logged.Id(), u.Id())
	}

	got, err := db.GetUser(u.Id())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "alice@example.com" {
		t.Errorf("get name: %q", got.Name())
	}
}
