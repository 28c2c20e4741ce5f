package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openclass/lms-api/internal/models"
)

// AnnouncementRepository provides persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

type announcementAuthorRow struct {
	models.Announcement
	AuthorEmail     string    `db:"author_email"`
	AuthorFirstName string    `db:"author_first_name"`
	AuthorLastName  string    `db:"author_last_name"`
	AuthorImageURL  string    `db:"author_profile_image_url"`
	AuthorCreatedAt time.Time `db:"author_created_at"`
	AuthorUpdatedAt time.Time `db:"author_updated_at"`
}

// ListWithAuthors returns announcements joined with their author, newest
// first.
func (r *AnnouncementRepository) ListWithAuthors(ctx context.Context) ([]models.AnnouncementWithAuthor, error) {
	const query = `SELECT a.id, a.title, a.content, a.author_id, a.created_at,
u.email AS author_email, u.first_name AS author_first_name, u.last_name AS author_last_name,
u.profile_image_url AS author_profile_image_url, u.created_at AS author_created_at, u.updated_at AS author_updated_at
FROM announcements a
INNER JOIN users u ON u.id = a.author_id
ORDER BY a.created_at DESC`
	rows := []announcementAuthorRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	announcements := make([]models.AnnouncementWithAuthor, 0, len(rows))
	for _, row := range rows {
		announcements = append(announcements, models.AnnouncementWithAuthor{
			Announcement: row.Announcement,
			Author: models.User{
				ID:              row.AuthorID,
				Email:           row.AuthorEmail,
				FirstName:       row.AuthorFirstName,
				LastName:        row.AuthorLastName,
				ProfileImageURL: row.AuthorImageURL,
				CreatedAt:       row.AuthorCreatedAt,
				UpdatedAt:       row.AuthorUpdatedAt,
			},
		})
	}
	return announcements, nil
}

// Create inserts an announcement, stamping created_at server-side.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO announcements (title, content, author_id, created_at)
VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &announcement.ID, query, announcement.Title, announcement.Content, announcement.AuthorID, announcement.CreatedAt); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}
