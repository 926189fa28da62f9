package sqldb

import (
	"database/sql"
	"errors"
	"time"

	"github.com/wansing/chronicle/core"
)

type ArticleDB struct {
	*sql.DB
	del           *sql.Stmt
	get           *sql.Stmt
	insert        *sql.Stmt
	listPublished *sql.Stmt
	setFields     *sql.Stmt
	setPublished  *sql.Stmt
}

func NewArticleDB(db *sql.DB) *ArticleDB {

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS article (
			id INTEGER PRIMARY KEY,
			authorId int(11) NOT NULL,
			title varchar(256) NOT NULL,
			content mediumtext NOT NULL,
			icon varchar(64) NOT NULL,
			ts_published int(11) NULL,
			ts_created int(11) NOT NULL,
			ts_updated int(11) NOT NULL
		);`)
	if err != nil {
		panic(err)
	}

	var articleDB = &ArticleDB{}
	articleDB.DB = db
	articleDB.del = mustPrepare(db, "DELETE FROM article WHERE id = ? AND authorId = ?")
	articleDB.get = mustPrepare(db, "SELECT id, authorId, title, content, icon, ts_published, ts_created, ts_updated FROM article WHERE id = ? LIMIT 1")
	articleDB.insert = mustPrepare(db, "INSERT INTO article (authorId, title, content, icon, ts_published, ts_created, ts_updated) VALUES (?, '', '', '', NULL, ?, ?)")
	articleDB.listPublished = mustPrepare(db, "SELECT id, authorId, title, content, icon, ts_published, ts_created, ts_updated FROM article WHERE ts_published IS NOT NULL ORDER BY ts_published DESC, id DESC")
	articleDB.setFields = mustPrepare(db, "UPDATE article SET title = ?, content = ?, icon = ?, ts_updated = ? WHERE id = ? AND authorId = ?")
	articleDB.setPublished = mustPrepare(db, "UPDATE article SET ts_published = ?, ts_updated = ? WHERE id = ? AND authorId = ?")
	return articleDB
}

func scanArticle(row interface {
	Scan(dest ...interface{}) error
}) (*core.Article, error) {
	var a = &core.Article{}
	var published sql.NullInt64
	err := row.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Content, &a.Icon, &published, &a.Created, &a.Updated)
	if err != nil {
		return nil, err
	}
	if published.Valid {
		a.Published = &published.Int64
	}
	return a, nil
}

func (db *ArticleDB) GetArticle(id int) (*core.Article, error) {
	a, err := scanArticle(db.get.QueryRow(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NotFound(id)
	}
	return a, err
}

func (db *ArticleDB) InsertArticle(authorID int) (*core.Article, error) {
	now := time.Now().Unix()
	result, err := db.insert.Exec(authorID, now, now)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return db.GetArticle(int(id))
}

func (db *ArticleDB) SetFields(id int, authorID int, title, content, icon string) (*core.Article, error) {
	result, err := db.setFields.Exec(title, content, icon, time.Now().Unix(), id, authorID)
	return db.conditionalWrite(id, result, err)
}

func (db *ArticleDB) SetPublished(id int, authorID int, publish bool) (*core.Article, error) {
	var published sql.NullInt64
	now := time.Now().Unix()
	if publish {
		published = sql.NullInt64{Int64: now, Valid: true}
	}
	result, err := db.setPublished.Exec(published, now, id, authorID)
	return db.conditionalWrite(id, result, err)
}

// conditionalWrite checks the result of an "UPDATE ... WHERE id = ? AND authorId = ?"
// statement. AuthorId never changes, so zero affected rows means the article is
// gone, lost to a concurrent delete.
// MySQL reports changed rows, not matched rows, so the connection must use
// clientFoundRows=true there, or an update which writes identical values would
// look like a missing row.
func (db *ArticleDB) conditionalWrite(id int, result sql.Result, err error) (*core.Article, error) {
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, core.NotFound(id)
	}
	return db.GetArticle(id)
}

func (db *ArticleDB) DeleteArticle(id int, authorID int) error {
	result, err := db.del.Exec(id, authorID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.NotFound(id)
	}
	return nil
}

func (db *ArticleDB) PublishedArticles() ([]*core.Article, error) {

	rows, err := db.listPublished.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles = []*core.Article{}

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}
