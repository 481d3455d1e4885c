package database

import (
	"database/sql"
	"fmt"
)

// postRepository handles database operations for locally stored posts
type postRepository struct {
	db *DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *DB) PostRepository {
	return &postRepository{db: db}
}

// GetPublishedPosts returns published posts, newest first. Content is not
// loaded for listings.
func (r *postRepository) GetPublishedPosts() ([]Post, error) {
	rows, err := r.db.Query(`
		SELECT id, title, slug, excerpt, created_at, updated_at
		FROM posts
		WHERE published = 1
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get published posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Excerpt,
			&post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		post.Published = true
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// GetPostBySlug returns the published post with the given slug, including its
// content, or nil when no such post exists
func (r *postRepository) GetPostBySlug(slug string) (*Post, error) {
	var post Post
	err := r.db.QueryRow(`
		SELECT id, title, slug, content, excerpt, created_at, updated_at
		FROM posts
		WHERE slug = ? AND published = 1
	`, slug).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	post.Published = true
	return &post, nil
}
