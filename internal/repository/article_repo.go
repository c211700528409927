package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/content-publish-api/internal/database"
	"github.com/content-publish-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `
	a.id, a.slug, a.title, a.content_md, a.content_html, a.cover_image_url,
	a.status, a.category_id, a.published_at, a.created_at, a.updated_at,
	c.id, c.slug, c.name, c.created_at
`

const articleFrom = `FROM articles a LEFT JOIN categories c ON c.id = a.category_id`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, slug, title, content_md, content_html, cover_image_url,
			status, category_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Slug, article.Title, article.ContentMD, article.ContentHTML,
		nullString(article.CoverImageURL), article.Status, article.CategoryID,
		article.PublishedAt, article.CreatedAt, article.UpdatedAt,
	)
	return err
}

// GetByID retrieves an article by ID regardless of status
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` `+articleFrom+` WHERE a.id = $1`, id)
	return scanArticle(row)
}

// GetPublishedBySlug retrieves a published article by its slug
func (r *articleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` `+articleFrom+` WHERE a.slug = $1 AND a.status = $2`,
		slug, models.StatusPublished,
	)
	return scanArticle(row)
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// ListPublished retrieves published articles, newest first. limit <= 0
// means no limit.
func (r *articleRepo) ListPublished(ctx context.Context, limit int) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` ` + articleFrom + `
		WHERE a.status = $1 ORDER BY a.published_at DESC`
	args := []interface{}{models.StatusPublished}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.queryArticles(ctx, query, args...)
}

// ListByCategorySlug retrieves published articles in a category, newest first
func (r *articleRepo) ListByCategorySlug(ctx context.Context, categorySlug string) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` ` + articleFrom + `
		WHERE a.status = $1 AND c.slug = $2 ORDER BY a.published_at DESC`
	return r.queryArticles(ctx, query, models.StatusPublished, categorySlug)
}

// ListByTagName retrieves published articles carrying a tag, newest first
func (r *articleRepo) ListByTagName(ctx context.Context, tagName string) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` ` + articleFrom + `
		JOIN article_tags at ON at.article_id = a.id
		JOIN tags t ON t.id = at.tag_id
		WHERE a.status = $1 AND t.name = $2 ORDER BY a.published_at DESC`
	return r.queryArticles(ctx, query, models.StatusPublished, tagName)
}

// ListAll retrieves every article including drafts, newest created first
func (r *articleRepo) ListAll(ctx context.Context) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` ` + articleFrom + ` ORDER BY a.created_at DESC`
	return r.queryArticles(ctx, query)
}

// UpdateStatus sets the article status and, on publish, the publish time
func (r *articleRepo) UpdateStatus(ctx context.Context, id string, status models.ArticleStatus, publishedAt *time.Time) error {
	query := `UPDATE articles SET status = $1, published_at = COALESCE($2, published_at), updated_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, status, publishedAt, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an article
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func (r *articleRepo) queryArticles(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var coverImage sql.NullString
	var publishedAt sql.NullTime
	var catID, catSlug, catName sql.NullString
	var catCreatedAt sql.NullTime

	err := row.Scan(
		&article.ID, &article.Slug, &article.Title, &article.ContentMD, &article.ContentHTML,
		&coverImage, &article.Status, &article.CategoryID, &publishedAt,
		&article.CreatedAt, &article.UpdatedAt,
		&catID, &catSlug, &catName, &catCreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	article.CoverImageURL = coverImage.String
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	if catID.Valid {
		article.Category = &models.Category{
			ID:        catID.String,
			Slug:      catSlug.String,
			Name:      catName.String,
			CreatedAt: catCreatedAt.Time,
		}
	}

	return &article, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
